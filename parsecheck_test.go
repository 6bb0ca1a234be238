package main

import (
	"strings"
	"testing"
)

func TestCheckModelParseCountsAndSamples(t *testing.T) {
	model := testModel(
		testSpace(1, "GID-1", "Bedroom 01", "Master Bedroom"),
		testSpace(2, "GID-2", "Bedroom 02", ""),
		testSpace(3, "GID-3", "Bedroom 03", ""),
		testSpace(4, "GID-4", "Bedroom 04", ""),
		&Entity{ExpressID: 10, GlobalID: "GID-W", Type: "IfcWall", Name: "Wall 01"},
	)

	results := CheckModelParse(model, []string{"IfcSpace", "IfcWall", "IfcDoor"}, 2)

	if results[0].ElementName != "Model Schema" || results[0].CheckStatus != StatusLog {
		t.Fatalf("first record must be the schema log row, got %+v", results[0])
	}
	if results[0].ActualValue != "IFC4" {
		t.Fatalf("unexpected schema value: %q", results[0].ActualValue)
	}

	var countRows, sampleRows int
	for _, r := range results {
		switch {
		case strings.HasSuffix(r.ElementName, " Count"):
			countRows++
			if r.ElementName == "IfcDoor Count" {
				if r.CheckStatus != StatusWarning {
					t.Errorf("empty category must warn, got %q", r.CheckStatus)
				}
				if r.Comment != "No IfcDoor elements found" {
					t.Errorf("unexpected warning comment: %q", r.Comment)
				}
			}
		case r.ElementType != "Summary":
			sampleRows++
		}
	}

	if countRows != 3 {
		t.Fatalf("expected 3 count rows, got %d", countRows)
	}
	// 4 spaces clipped to 2 samples, 1 wall.
	if sampleRows != 3 {
		t.Fatalf("expected sample limit to cap rows at 3, got %d", sampleRows)
	}

	overall := results[len(results)-1]
	if overall.ElementName != "Overall Parse" || overall.CheckStatus != StatusPass {
		t.Fatalf("unexpected overall row: %+v", overall)
	}
	if overall.ActualValue != "5 parsed entities across 3 types" {
		t.Fatalf("unexpected overall actual value: %q", overall.ActualValue)
	}
}

func TestCheckModelParseBlockedCategoryContinues(t *testing.T) {
	model := testModel(testSpace(1, "GID-1", "Bedroom 01", ""))

	results := CheckModelParse(model, []string{"IfcBogus", "IfcSpace"}, 3)

	var blocked *CheckResult
	for i := range results {
		if results[i].CheckStatus == StatusBlocked {
			blocked = &results[i]
		}
	}
	if blocked == nil {
		t.Fatalf("expected a blocked record for the unknown category")
	}
	if blocked.ElementName != "IfcBogus Parse" {
		t.Fatalf("unexpected blocked row name: %q", blocked.ElementName)
	}
	if blocked.Comment != "Could not parse IfcBogus" {
		t.Fatalf("unexpected blocked comment: %q", blocked.Comment)
	}
	if !strings.Contains(blocked.Log, "IfcBogus") {
		t.Fatalf("blocked log must carry the underlying failure text: %q", blocked.Log)
	}

	// The run continued: the space category still produced rows.
	overall := results[len(results)-1]
	if overall.CheckStatus != StatusPass {
		t.Fatalf("blocked category must not abort the pass: %+v", overall)
	}
}

func TestCheckModelParseUnnamedElementFallback(t *testing.T) {
	model := testModel(testSpace(42, "GID-X", "", ""))

	results := CheckModelParse(model, []string{"IfcSpace"}, 3)
	var sample *CheckResult
	for i := range results {
		if results[i].ElementType == "IfcSpace" {
			sample = &results[i]
		}
	}
	if sample == nil {
		t.Fatalf("expected a sampled element row")
	}
	if sample.ElementName != "IfcSpace #42" {
		t.Fatalf("unexpected fallback name: %q", sample.ElementName)
	}
}

func TestNormalizeEntityTypes(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil falls back to defaults", nil, DefaultEntityTypes},
		{"comma separated string", []string{"IfcSpace, IfcWall"}, []string{"IfcSpace", "IfcWall"}},
		{"blank chunks dropped", []string{" , IfcSpace, "}, []string{"IfcSpace"}},
		{"slice passthrough", []string{"IfcDoor", "IfcWindow"}, []string{"IfcDoor", "IfcWindow"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := normalizeEntityTypes(tc.in)
			if len(got) != len(tc.want) {
				t.Fatalf("normalizeEntityTypes(%v) = %v, want %v", tc.in, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("normalizeEntityTypes(%v) = %v, want %v", tc.in, got, tc.want)
				}
			}
		})
	}
}
