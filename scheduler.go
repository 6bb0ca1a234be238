package main

import (
	"database/sql"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/slack-go/slack"
)

// StartCheckScheduler starts a cron-based scheduler that re-checks
// every model document in the watched directory and posts a summary
// to the report channel when Slack is configured.
// The schedule is a standard 5-field cron expression (minute hour day-of-month month day-of-week).
// Examples: "0 7 * * *" (daily 7am), "0 7 * * 1" (Mondays 7am).
func StartCheckScheduler(cfg Config, db *sql.DB, api *slack.Client) {
	schedule := strings.TrimSpace(cfg.CheckSchedule)
	if schedule == "" {
		log.Println("Scheduled checks disabled (check_schedule not set)")
		return
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	sched, err := parser.Parse(schedule)
	if err != nil {
		log.Printf("Invalid check_schedule '%s': %v, scheduled checks disabled", schedule, err)
		return
	}

	log.Printf("Checks scheduled (cron: %s) over %s", schedule, cfg.ModelDir)

	go func() {
		for {
			now := time.Now().In(cfg.Location)
			next := sched.Next(now)
			wait := next.Sub(now)
			log.Printf("Next check at %s (in %s)", next.Format("Mon Jan 2 15:04"), wait.Round(time.Minute))

			time.Sleep(wait)
			CheckModelDir(cfg, db, api)
		}
	}()
}

// CheckModelDir runs checks over every model document in the watched
// directory. Per-model failures are logged and do not stop the sweep.
func CheckModelDir(cfg Config, db *sql.DB, api *slack.Client) {
	paths, err := filepath.Glob(filepath.Join(cfg.ModelDir, "*.json"))
	if err != nil {
		log.Printf("Error listing %s: %v", cfg.ModelDir, err)
		return
	}
	if len(paths) == 0 {
		log.Printf("No model documents found in %s", cfg.ModelDir)
		return
	}

	rs, err := cfg.RuleSet()
	if err != nil {
		log.Printf("Error loading rules: %v", err)
		return
	}

	for _, path := range paths {
		result, err := RunChecks(cfg, db, rs, path)
		if err != nil {
			log.Printf("Check run failed for %s: %v", path, err)
			continue
		}
		summary := FormatRunSummary(result)
		log.Println(summary)

		if api != nil && cfg.SlackConfigured() {
			if err := PostRunSummary(api, cfg.ReportChannelID, summary); err != nil {
				log.Printf("Error posting run summary: %v", err)
			}
		}
	}
}
