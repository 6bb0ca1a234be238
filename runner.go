package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"
)

// RunResult carries everything one check run produced.
type RunResult struct {
	RunID             int64
	ModelPath         string
	ReportPath        string
	ParseResults      []CheckResult
	ComplianceResults []CheckResult
}

// RunChecks executes one full run over a model document: load, parse
// check, compliance check, report render + write, persist. Check
// failures become records, not errors; only the I/O boundary (model
// read, report write, database) can fail here.
func RunChecks(cfg Config, db *sql.DB, rs RuleSet, modelPath string) (RunResult, error) {
	model, err := LoadModel(modelPath)
	if err != nil {
		return RunResult{}, err
	}
	log.Printf("checking %s (schema=%s, entities=%d)", modelPath, model.Schema, model.EntityCount())

	parseResults := CheckModelParse(model, cfg.EntityTypes, cfg.SampleLimit)
	complianceResults := CheckSpaceCompliance(model, rs)

	now := time.Now().In(cfg.Location)
	report := BuildCompleteReport(modelPath, now, parseResults, complianceResults)
	reportPath, err := WriteReportFile(report, cfg.ReportOutputDir, modelPath, now)
	if err != nil {
		return RunResult{}, fmt.Errorf("write report: %w", err)
	}

	runID, err := InsertCheckRun(db, modelPath, model.Schema, reportPath, now)
	if err != nil {
		return RunResult{}, fmt.Errorf("store run: %w", err)
	}
	if _, err := InsertCheckResults(db, runID, parseCheckName, parseResults); err != nil {
		return RunResult{}, fmt.Errorf("store parse results: %w", err)
	}
	if _, err := InsertCheckResults(db, runID, complianceCheckName, complianceResults); err != nil {
		return RunResult{}, fmt.Errorf("store compliance results: %w", err)
	}

	return RunResult{
		RunID:             runID,
		ModelPath:         modelPath,
		ReportPath:        reportPath,
		ParseResults:      parseResults,
		ComplianceResults: complianceResults,
	}, nil
}

// FormatRunSummary returns a one-line human summary of a run, built
// from the compliance summary record.
func FormatRunSummary(result RunResult) string {
	status := "unknown"
	detail := "no summary record"
	for _, r := range result.ComplianceResults {
		if r.ElementType == "Summary" && r.CheckStatus != StatusBlocked {
			status = r.CheckStatus
			detail = r.ActualValue
		}
	}
	return fmt.Sprintf("Compliance check %s [%s]: %s (report: %s)",
		result.ModelPath, status, detail, result.ReportPath)
}
