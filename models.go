package main

// Check statuses, ordered from best to worst for report rendering.
const (
	StatusPass    = "pass"
	StatusFail    = "fail"
	StatusWarning = "warning"
	StatusBlocked = "blocked"
	StatusLog     = "log"
)

// CheckResult is the one row schema every check emits. Records are
// display-ready: ActualValue and RequiredValue are pre-formatted
// strings, Log carries a one-line machine-readable payload. Empty
// string means "not set" for ElementID, ElementNameLong, Comment and
// Log. Records are never mutated after construction; checks only
// append new ones.
type CheckResult struct {
	ElementID       string
	ElementType     string
	ElementName     string
	ElementNameLong string
	CheckStatus     string
	ActualValue     string
	RequiredValue   string
	Comment         string
	Log             string
}

// CountStatuses tallies records by lowercased status. Records with an
// empty status land under "unknown".
func CountStatuses(results []CheckResult) map[string]int {
	counts := make(map[string]int)
	for _, r := range results {
		status := NormalizeText(r.CheckStatus)
		if status == "" {
			status = "unknown"
		}
		counts[status]++
	}
	return counts
}

// filterByType returns records matching (or not matching) an element type.
func filterByType(results []CheckResult, elementType string, match bool) []CheckResult {
	var out []CheckResult
	for _, r := range results {
		if (r.ElementType == elementType) == match {
			out = append(out, r)
		}
	}
	return out
}
