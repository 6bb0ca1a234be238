package main

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestResultsCSVRoundTrip(t *testing.T) {
	parseResults, complianceResults := buildTestRun(t)
	all := append(append([]CheckResult{}, parseResults...), complianceResults...)

	path := filepath.Join(t.TempDir(), "results.csv")
	if err := WriteResultsCSV(path, all); err != nil {
		t.Fatalf("WriteResultsCSV failed: %v", err)
	}

	parsed, err := ReadResultsCSV(path)
	if err != nil {
		t.Fatalf("ReadResultsCSV failed: %v", err)
	}
	if len(parsed) != len(all) {
		t.Fatalf("round trip changed record count: %d != %d", len(parsed), len(all))
	}
	if !reflect.DeepEqual(parsed, all) {
		t.Fatalf("round trip changed record content")
	}
	if !reflect.DeepEqual(CountStatuses(parsed), CountStatuses(all)) {
		t.Fatalf("round trip changed status counts: %v != %v", CountStatuses(parsed), CountStatuses(all))
	}
}

func TestReadResultsCSVRejectsWrongShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")
	if _, err := ReadResultsCSV(path); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
