package main

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS check_runs (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		model_path  TEXT NOT NULL,
		schema      TEXT DEFAULT '',
		report_path TEXT DEFAULT '',
		created_at  DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_check_runs_created_at ON check_runs(created_at);

	CREATE TABLE IF NOT EXISTS check_results (
		id                INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id            INTEGER NOT NULL,
		check_name        TEXT NOT NULL,
		position          INTEGER NOT NULL,
		element_id        TEXT DEFAULT '',
		element_type      TEXT NOT NULL,
		element_name      TEXT NOT NULL,
		element_name_long TEXT DEFAULT '',
		check_status      TEXT NOT NULL,
		actual_value      TEXT DEFAULT '',
		required_value    TEXT DEFAULT '',
		comment           TEXT DEFAULT '',
		log               TEXT DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_check_results_run ON check_results(run_id);
	CREATE INDEX IF NOT EXISTS idx_check_results_status ON check_results(check_status);
	`
	_, err = db.Exec(schema)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// InsertCheckRun records one run and returns its id.
func InsertCheckRun(db *sql.DB, modelPath, schema, reportPath string, at time.Time) (int64, error) {
	res, err := db.Exec(
		`INSERT INTO check_runs (model_path, schema, report_path, created_at) VALUES (?, ?, ?, ?)`,
		modelPath, schema, reportPath, at,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// InsertCheckResults stores a record sequence for a run in one
// transaction, keeping the sequence order in the position column.
func InsertCheckResults(db *sql.DB, runID int64, checkName string, results []CheckResult) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO check_results (run_id, check_name, position, element_id, element_type, element_name,
		 element_name_long, check_status, actual_value, required_value, comment, log)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	inserted := 0
	for i, r := range results {
		_, err := stmt.Exec(
			runID, checkName, i, r.ElementID, r.ElementType, r.ElementName,
			r.ElementNameLong, r.CheckStatus, r.ActualValue, r.RequiredValue, r.Comment, r.Log,
		)
		if err != nil {
			return inserted, err
		}
		inserted++
	}

	return inserted, tx.Commit()
}

// GetCheckResults returns a run's records for one check in sequence order.
func GetCheckResults(db *sql.DB, runID int64, checkName string) ([]CheckResult, error) {
	rows, err := db.Query(
		`SELECT element_id, element_type, element_name, element_name_long, check_status,
		 actual_value, required_value, comment, log
		 FROM check_results WHERE run_id = ? AND check_name = ? ORDER BY position`,
		runID, checkName,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []CheckResult
	for rows.Next() {
		var r CheckResult
		err := rows.Scan(
			&r.ElementID, &r.ElementType, &r.ElementName, &r.ElementNameLong, &r.CheckStatus,
			&r.ActualValue, &r.RequiredValue, &r.Comment, &r.Log,
		)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// GetRunStatusCounts tallies stored statuses for one run.
func GetRunStatusCounts(db *sql.DB, runID int64) (map[string]int, error) {
	rows, err := db.Query(
		`SELECT check_status, COUNT(*) FROM check_results WHERE run_id = ? GROUP BY check_status`,
		runID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
