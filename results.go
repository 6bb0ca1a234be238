package main

import (
	"encoding/csv"
	"fmt"
	"os"
)

var resultCSVHeader = []string{
	"element_id",
	"element_type",
	"element_name",
	"element_name_long",
	"check_status",
	"actual_value",
	"required_value",
	"comment",
	"log",
}

// WriteResultsCSV serializes a record sequence to a UTF-8 delimited
// file, one row per record plus a header, in sequence order.
func WriteResultsCSV(path string, results []CheckResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create results file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(resultCSVHeader); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			r.ElementID,
			r.ElementType,
			r.ElementName,
			r.ElementNameLong,
			r.CheckStatus,
			r.ActualValue,
			r.RequiredValue,
			r.Comment,
			r.Log,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// ReadResultsCSV parses a file written by WriteResultsCSV back into
// records, preserving order.
func ReadResultsCSV(path string) ([]CheckResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open results file: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse results file: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("results file %s is empty", path)
	}
	if len(rows[0]) != len(resultCSVHeader) {
		return nil, fmt.Errorf("results file %s: expected %d columns, got %d", path, len(resultCSVHeader), len(rows[0]))
	}

	var results []CheckResult
	for _, row := range rows[1:] {
		results = append(results, CheckResult{
			ElementID:       row[0],
			ElementType:     row[1],
			ElementName:     row[2],
			ElementNameLong: row[3],
			CheckStatus:     row[4],
			ActualValue:     row[5],
			RequiredValue:   row[6],
			Comment:         row[7],
			Log:             row[8],
		})
	}
	return results, nil
}
