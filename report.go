package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var (
	reportDivider = strings.Repeat("=", 100)
	sectionRule   = strings.Repeat("-", 100)
)

// BuildCompleteReport renders the parse and compliance record
// sequences into one text document. Output is byte-identical for
// identical inputs; generatedAt feeds the single timestamped header
// line, the only non-deterministic content.
func BuildCompleteReport(modelPath string, generatedAt time.Time, parseResults, complianceResults []CheckResult) string {
	lines := []string{
		reportDivider,
		"IFC COMPLETE REPORT (PARSE + BARCELONA COMPLIANCE)",
		reportDivider,
		fmt.Sprintf("IFC file      : %s", modelPath),
		fmt.Sprintf("Generated at  : %s", generatedAt.Format("2006-01-02T15:04:05")),
		"",
	}

	lines = append(lines, buildParseSection(parseResults)...)
	lines = append(lines, buildComplianceSection(complianceResults)...)
	lines = append(lines, reportDivider)
	return strings.Join(lines, "\n") + "\n"
}

func buildParseSection(results []CheckResult) []string {
	summaryRows := filterByType(results, "Summary", true)
	detailRows := filterByType(results, "Summary", false)
	statusCounts := CountStatuses(results)

	lines := []string{
		"A) IFC PARSE SUMMARY",
		sectionRule,
		fmt.Sprintf("Total parse rows: %d (summary=%d, details=%d)", len(results), len(summaryRows), len(detailRows)),
		"",
		"1) STATUS DISTRIBUTION",
		sectionRule,
		fmt.Sprintf("%-12s %8s", "Status", "Count"),
		sectionRule,
	}

	for _, status := range []string{StatusPass, StatusWarning, StatusFail, StatusBlocked, StatusLog, "unknown"} {
		if count, ok := statusCounts[status]; ok {
			lines = append(lines, fmt.Sprintf("%-12s %8d", strings.ToUpper(status), count))
		}
	}

	lines = append(lines,
		"",
		"2) ENTITY COUNTS",
		sectionRule,
		fmt.Sprintf("%-30s %8s %12s", "Entity Type", "Count", "Status"),
		sectionRule,
	)

	countRows := 0
	for _, row := range summaryRows {
		entityType, ok := strings.CutSuffix(row.ElementName, " Count")
		if !ok {
			continue
		}
		countRows++
		lines = append(lines, fmt.Sprintf("%-30s %8s %12s",
			clip(entityType, 30), row.ActualValue, strings.ToUpper(row.CheckStatus)))
	}
	if countRows == 0 {
		lines = append(lines, "No entity count rows were generated.")
	}

	lines = append(lines,
		"",
		"3) SAMPLED ELEMENTS",
		sectionRule,
		fmt.Sprintf("%3s %-18s %-34s %-24s %-17s", "#", "Type", "Name", "GlobalId", "Note"),
		sectionRule,
	)

	if len(detailRows) > 0 {
		for i, row := range detailRows {
			globalID := row.ElementID
			if globalID == "" {
				globalID = "-"
			}
			lines = append(lines, fmt.Sprintf("%3d %-18s %-34s %-24s %-17s",
				i+1,
				clip(row.ElementType, 18),
				clip(row.ElementName, 34),
				clip(globalID, 24),
				clip(row.CheckStatus, 17)))
		}
	} else {
		lines = append(lines, "No element-level sample rows found.")
	}

	lines = append(lines, "", "4) PARSE WARNINGS / FAILURES / BLOCKED", sectionRule)
	noteworthy := 0
	for _, row := range results {
		switch NormalizeText(row.CheckStatus) {
		case StatusWarning, StatusFail, StatusBlocked:
		default:
			continue
		}
		noteworthy++
		lines = append(lines, fmt.Sprintf("- [%s] %s | %s",
			strings.ToUpper(row.CheckStatus), row.ElementType, row.ElementName))
		if row.Comment != "" {
			lines = append(lines, fmt.Sprintf("  comment: %s", row.Comment))
		}
		if row.Log != "" {
			lines = append(lines, fmt.Sprintf("  log    : %s", row.Log))
		}
	}
	if noteworthy == 0 {
		lines = append(lines, "No warnings, failures, or blocked items.")
	}

	lines = append(lines, "")
	return lines
}

func buildComplianceSection(results []CheckResult) []string {
	summaryRows := filterByType(results, "Summary", true)
	spaceRows := filterByType(results, "IfcSpace", true)
	statusCounts := CountStatuses(spaceRows)

	lines := []string{
		"B) BARCELONA SPACE COMPLIANCE",
		sectionRule,
		fmt.Sprintf("Total space checks: %d", len(spaceRows)),
		"",
		"1) COMPLIANCE STATUS COUNTS",
		sectionRule,
		fmt.Sprintf("%-12s %8s", "Status", "Count"),
		sectionRule,
	}

	for _, status := range []string{StatusPass, StatusFail, StatusWarning, StatusBlocked, StatusLog, "unknown"} {
		if count, ok := statusCounts[status]; ok {
			lines = append(lines, fmt.Sprintf("%-12s %8d", strings.ToUpper(status), count))
		}
	}

	lines = append(lines,
		"",
		"2) SPACE-BY-SPACE RESULTS",
		sectionRule,
		fmt.Sprintf("%3s %-26s %-8s %-34s %-26s", "#", "Space", "Status", "Measured", "Required"),
		sectionRule,
	)

	if len(spaceRows) > 0 {
		for i, row := range spaceRows {
			lines = append(lines, fmt.Sprintf("%3d %-26s %-8s %-34s %-26s",
				i+1,
				clip(row.ElementName, 26),
				clip(strings.ToUpper(row.CheckStatus), 8),
				clip(row.ActualValue, 34),
				clip(row.RequiredValue, 26)))
		}
	} else {
		lines = append(lines, "No IfcSpace rows found.")
	}

	lines = append(lines, "", "3) NON-COMPLIANT DETAILS", sectionRule)
	flagged := 0
	for _, row := range spaceRows {
		switch NormalizeText(row.CheckStatus) {
		case StatusFail, StatusWarning, StatusBlocked:
		default:
			continue
		}
		flagged++
		lines = append(lines, fmt.Sprintf("- [%s] %s", strings.ToUpper(row.CheckStatus), row.ElementName))
		if row.Comment != "" {
			lines = append(lines, fmt.Sprintf("  reasons: %s", row.Comment))
		}
	}
	if flagged == 0 {
		lines = append(lines, "All checked spaces are compliant.")
	}

	lines = append(lines, "", "4) COMPLIANCE SUMMARY ROWS", sectionRule)
	if len(summaryRows) > 0 {
		for _, row := range summaryRows {
			lines = append(lines, fmt.Sprintf("- %s: %s", row.ElementName, row.ActualValue))
			if row.Comment != "" {
				lines = append(lines, fmt.Sprintf("  comment: %s", row.Comment))
			}
		}
	} else {
		lines = append(lines, "No summary rows produced.")
	}

	lines = append(lines, "")
	return lines
}

// clip truncates display cells to width with a "..." marker. Display
// only; the underlying record is never touched.
func clip(value string, width int) string {
	runes := []rune(value)
	if len(runes) <= width {
		return value
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// WriteReportFile writes report content under outputDir, named after
// the model file plus a timestamp.
func WriteReportFile(content, outputDir, modelPath string, at time.Time) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", err
	}
	base := strings.TrimSuffix(filepath.Base(modelPath), filepath.Ext(modelPath))
	if base == "" {
		base = "model"
	}
	filename := fmt.Sprintf("%s_report_%s.txt", sanitizeFilename(base), at.Format("20060102_150405"))
	path := filepath.Join(outputDir, filename)
	return path, os.WriteFile(path, []byte(content), 0644)
}

func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer("/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	return replacer.Replace(s)
}
