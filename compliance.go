package main

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"unicode/utf16"
)

// complianceCheckName tags compliance rows in storage and summaries.
const complianceCheckName = "barcelona_space_compliance"

// spaceAudit is the machine-readable audit payload embedded in each
// compliance row's Log field. Pointers keep "not found" distinct from
// zero when serialized.
type spaceAudit struct {
	Space     string       `json:"space"`
	SpaceType *string      `json:"space_type"`
	Measured  measuredPair `json:"measured"`
	Required  requiredPair `json:"required"`
	Status    string       `json:"status"`
	Reasons   []string     `json:"reasons"`
}

// summaryAudit is the Log payload of the compliance summary row.
type summaryAudit struct {
	TotalSpacesInput      int     `json:"total_spaces_input"`
	TotalSpacesChecked    int     `json:"total_spaces_checked"`
	PassedCount           int     `json:"passed_count"`
	FailedCount           int     `json:"failed_count"`
	WarningsCount         int     `json:"warnings_count"`
	ComplianceRatePercent float64 `json:"compliance_rate_percent"`
}

type measuredPair struct {
	AreaM2  *float64 `json:"area_m2"`
	HeightM *float64 `json:"height_m"`
}

type requiredPair struct {
	MinAreaM2  *float64 `json:"min_area_m2"`
	MinHeightM *float64 `json:"min_height_m"`
}

// EvaluateSpace runs classification, extraction and the rule table
// over one space and builds its result record. Reasons accumulate in a
// fixed order (type, area, height); an empty list means PASS, in which
// case the canned satisfied message replaces the list.
func EvaluateSpace(rs RuleSet, space *Entity) CheckResult {
	name := space.Name
	if name == "" {
		name = fmt.Sprintf("IfcSpace #%d", space.ExpressID)
	}

	spaceType := ClassifySpace(rs, space.Name, space.LongName, space.ObjectType)
	area, areaFound := ExtractArea(space)
	height, heightFound := ExtractHeight(space)

	var reasons []string
	var requiredArea, requiredHeight *float64

	if spaceType == SpaceTypeUnknown {
		reasons = append(reasons, "Could not infer space type")
	} else if rule, ok := rs.Rules[spaceType]; !ok {
		reasons = append(reasons, fmt.Sprintf("Unrecognized space type: %s", spaceType))
	} else {
		requiredArea = &rule.MinAreaM2
		requiredHeight = &rule.MinHeightM
	}

	if !areaFound {
		reasons = append(reasons, "Area not found.")
	} else if requiredArea != nil && area < *requiredArea {
		reasons = append(reasons, fmt.Sprintf("Area %.3f m2 < required %.3f m2.", area, *requiredArea))
	}

	if !heightFound {
		reasons = append(reasons, "Height not found.")
	} else if requiredHeight != nil && height < *requiredHeight {
		reasons = append(reasons, fmt.Sprintf("Height %.3f m < required %.3f m.", height, *requiredHeight))
	}

	status := StatusFail
	if len(reasons) == 0 {
		status = StatusPass
		reasons = []string{"Meets minimum area and height requirements."}
	}

	audit := spaceAudit{
		Space:    name,
		Measured: measuredPair{AreaM2: floatIfFound(area, areaFound), HeightM: floatIfFound(height, heightFound)},
		Required: requiredPair{MinAreaM2: requiredArea, MinHeightM: requiredHeight},
		Status:   strings.ToUpper(status),
		Reasons:  reasons,
	}
	if spaceType != SpaceTypeUnknown {
		audit.SpaceType = &spaceType
	}

	return CheckResult{
		ElementID:       space.GlobalID,
		ElementType:     "IfcSpace",
		ElementName:     name,
		ElementNameLong: space.LongName,
		CheckStatus:     status,
		ActualValue: fmt.Sprintf(
			"space_type=%s, area_m2=%s, height_m=%s",
			labelOrUnknown(spaceType), formatMeasure(area, areaFound), formatMeasure(height, heightFound),
		),
		RequiredValue: fmt.Sprintf(
			"min_area_m2=%s, min_height_m=%s",
			formatThreshold(requiredArea), formatThreshold(requiredHeight),
		),
		Comment: strings.Join(reasons, "; "),
		Log:     marshalASCII(audit),
	}
}

// CheckSpaceCompliance evaluates every IfcSpace in the model and
// appends exactly one summary record. It never errors: a model with no
// spaces yields only the zero-count summary.
func CheckSpaceCompliance(model *Model, rs RuleSet) []CheckResult {
	var results []CheckResult

	spaces, _ := model.ByType("IfcSpace")

	passed := 0
	failed := 0
	warnings := 0

	for _, space := range spaces {
		record := EvaluateSpace(rs, space)
		if record.CheckStatus == StatusPass {
			passed++
		} else {
			failed++
		}
		results = append(results, record)
	}

	checked := len(spaces)
	rate := 0.0
	if checked > 0 {
		rate = roundTo2(float64(passed) / float64(checked) * 100.0)
	}

	summaryStatus := StatusPass
	if failed > 0 {
		summaryStatus = StatusFail
	}
	comment := "Computed from provided Barcelona rules"
	if checked == 0 {
		comment = "No IfcSpace elements found"
	}

	summaryLog := marshalASCII(summaryAudit{
		TotalSpacesInput:      checked,
		TotalSpacesChecked:    checked,
		PassedCount:           passed,
		FailedCount:           failed,
		WarningsCount:         warnings,
		ComplianceRatePercent: rate,
	})

	results = append(results, CheckResult{
		ElementType: "Summary",
		ElementName: "Barcelona Space Compliance Summary",
		CheckStatus: summaryStatus,
		ActualValue: fmt.Sprintf(
			"checked=%d, passed=%d, failed=%d, warnings=%d, rate=%.2f%%",
			checked, passed, failed, warnings, rate,
		),
		RequiredValue: "All checked spaces should meet minimum area and height by inferred space type",
		Comment:       comment,
		Log:           summaryLog,
	})

	return results
}

func floatIfFound(value float64, found bool) *float64 {
	if !found {
		return nil
	}
	return &value
}

func labelOrUnknown(spaceType string) string {
	if spaceType == SpaceTypeUnknown {
		return "unknown"
	}
	return spaceType
}

func formatMeasure(value float64, found bool) string {
	if !found {
		return "None"
	}
	return fmt.Sprintf("%.3f", value)
}

func formatThreshold(value *float64) string {
	if value == nil {
		return "None"
	}
	return fmt.Sprintf("%.3f", *value)
}

// marshalASCII serializes an audit payload as one ASCII-safe JSON
// line so the report file stays readable regardless of terminal
// encoding. Non-ASCII runes become \uXXXX escapes.
func marshalASCII(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	var b strings.Builder
	for _, r := range string(data) {
		switch {
		case r < 0x80:
			b.WriteRune(r)
		case r <= 0xffff:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			hi, lo := utf16.EncodeRune(r)
			fmt.Fprintf(&b, `\u%04x\u%04x`, hi, lo)
		}
	}
	return b.String()
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
