package main

import (
	"fmt"
	"strings"
)

const parseCheckName = "ifc_parse"

// DefaultEntityTypes is the inventory pass category list when the
// config does not override it.
var DefaultEntityTypes = []string{
	"IfcProject",
	"IfcSite",
	"IfcBuilding",
	"IfcBuildingStorey",
	"IfcSpace",
	"IfcWall",
	"IfcSlab",
	"IfcDoor",
	"IfcWindow",
	"IfcColumn",
	"IfcBeam",
}

// normalizeEntityTypes parses a configured category list; a comma
// separated string or slice both work, empty input falls back to the
// defaults.
func normalizeEntityTypes(configured []string) []string {
	var parsed []string
	for _, raw := range configured {
		for _, chunk := range strings.Split(raw, ",") {
			chunk = strings.TrimSpace(chunk)
			if chunk != "" {
				parsed = append(parsed, chunk)
			}
		}
	}
	if len(parsed) == 0 {
		return append([]string(nil), DefaultEntityTypes...)
	}
	return parsed
}

// CheckModelParse inventories the model: one schema row, then per
// category a count row and up to sampleLimit sampled element rows, and
// one overall row. A category the model cannot resolve becomes a
// blocked row and the pass continues; nothing here returns an error.
func CheckModelParse(model *Model, entityTypes []string, sampleLimit int) []CheckResult {
	var results []CheckResult
	typeList := normalizeEntityTypes(entityTypes)
	if sampleLimit < 1 {
		sampleLimit = 1
	}

	schema := model.Schema
	if schema == "" {
		schema = "unknown"
	}
	results = append(results, CheckResult{
		ElementType:   "Summary",
		ElementName:   "Model Schema",
		CheckStatus:   StatusLog,
		ActualValue:   schema,
		RequiredValue: "Readable IFC schema",
		Comment:       "Parsed model schema successfully",
	})

	totalCount := 0

	for _, entityType := range typeList {
		elements, err := model.ByType(entityType)
		if err != nil {
			results = append(results, CheckResult{
				ElementType:   "Summary",
				ElementName:   fmt.Sprintf("%s Parse", entityType),
				CheckStatus:   StatusBlocked,
				ActualValue:   "0",
				RequiredValue: "Parsable entity type",
				Comment:       fmt.Sprintf("Could not parse %s", entityType),
				Log:           err.Error(),
			})
			continue
		}

		count := len(elements)
		totalCount += count

		countRecord := CheckResult{
			ElementType:   "Summary",
			ElementName:   fmt.Sprintf("%s Count", entityType),
			CheckStatus:   StatusPass,
			ActualValue:   fmt.Sprintf("%d", count),
			RequiredValue: ">= 1 recommended",
		}
		if count == 0 {
			countRecord.CheckStatus = StatusWarning
			countRecord.Comment = fmt.Sprintf("No %s elements found", entityType)
		}
		results = append(results, countRecord)

		for i, element := range elements {
			if i >= sampleLimit {
				break
			}
			name := element.Name
			if name == "" {
				name = fmt.Sprintf("%s #%d", entityType, element.ExpressID)
			}
			results = append(results, CheckResult{
				ElementID:       element.GlobalID,
				ElementType:     entityType,
				ElementName:     name,
				ElementNameLong: element.LongName,
				CheckStatus:     StatusLog,
				ActualValue:     fmt.Sprintf("Parsed %s (express_id=%d)", entityType, element.ExpressID),
				RequiredValue:   "Parsable IFC entity",
			})
		}
	}

	overall := CheckResult{
		ElementType:   "Summary",
		ElementName:   "Overall Parse",
		CheckStatus:   StatusPass,
		ActualValue:   fmt.Sprintf("%d parsed entities across %d types", totalCount, len(typeList)),
		RequiredValue: "> 0 parsed entities",
		Comment:       "Model parsed successfully",
	}
	if totalCount == 0 {
		overall.CheckStatus = StatusWarning
		overall.Comment = "Model readable but no entities found for configured types"
	}
	results = append(results, overall)

	return results
}
