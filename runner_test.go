package main

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestRunChecksEndToEnd(t *testing.T) {
	db, err := InitDB(":memory:")
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	defer db.Close()

	cfg := Config{
		ReportOutputDir: t.TempDir(),
		SampleLimit:     3,
		Location:        time.UTC,
	}

	result, err := RunChecks(cfg, db, DefaultRuleSet(), writeTestModel(t))
	if err != nil {
		t.Fatalf("RunChecks failed: %v", err)
	}

	data, err := os.ReadFile(result.ReportPath)
	if err != nil {
		t.Fatalf("report file not written: %v", err)
	}
	report := string(data)
	if !strings.Contains(report, "A) IFC PARSE SUMMARY") || !strings.Contains(report, "B) BARCELONA SPACE COMPLIANCE") {
		t.Fatalf("report missing sections:\n%s", report)
	}

	// Both fixture spaces meet their rules.
	summary := result.ComplianceResults[len(result.ComplianceResults)-1]
	if summary.CheckStatus != StatusPass {
		t.Fatalf("expected pass summary, got %+v", summary)
	}
	if !strings.Contains(summary.ActualValue, "checked=2, passed=2, failed=0") {
		t.Fatalf("unexpected summary counts: %q", summary.ActualValue)
	}

	stored, err := GetCheckResults(db, result.RunID, complianceCheckName)
	if err != nil {
		t.Fatalf("GetCheckResults failed: %v", err)
	}
	if len(stored) != len(result.ComplianceResults) {
		t.Fatalf("stored %d compliance records, want %d", len(stored), len(result.ComplianceResults))
	}

	line := FormatRunSummary(result)
	if !strings.Contains(line, "[pass]") || !strings.Contains(line, result.ReportPath) {
		t.Fatalf("unexpected run summary: %q", line)
	}
}

func TestRunChecksMissingModel(t *testing.T) {
	db, err := InitDB(":memory:")
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	defer db.Close()

	cfg := Config{ReportOutputDir: t.TempDir(), SampleLimit: 3, Location: time.UTC}
	if _, err := RunChecks(cfg, db, DefaultRuleSet(), "/no/such/model.json"); err == nil {
		t.Fatalf("expected error for missing model document")
	}
}
