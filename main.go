package main

import (
	"log"
	"os"

	"github.com/slack-go/slack"
)

func main() {
	cfg := LoadConfig()

	db, err := InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to init database: %v", err)
	}
	defer db.Close()

	if err := os.MkdirAll(cfg.ReportOutputDir, 0755); err != nil {
		log.Fatalf("Failed to create report output dir: %v", err)
	}

	rs, err := cfg.RuleSet()
	if err != nil {
		log.Fatalf("Failed to load rules: %v", err)
	}

	var api *slack.Client
	if cfg.SlackConfigured() {
		api = slack.New(cfg.SlackBotToken)
	}

	// One-shot mode: model paths on the command line.
	if len(os.Args) > 1 {
		for _, path := range os.Args[1:] {
			result, err := RunChecks(cfg, db, rs, path)
			if err != nil {
				log.Fatalf("Check run failed for %s: %v", path, err)
			}
			summary := FormatRunSummary(result)
			log.Println(summary)
			if api != nil {
				if err := PostRunSummary(api, cfg.ReportChannelID, summary); err != nil {
					log.Printf("Error posting run summary: %v", err)
				}
			}
		}
		return
	}

	if cfg.CheckSchedule != "" {
		log.Println("Starting BIM compliance check bot...")
		StartCheckScheduler(cfg, db, api)
		select {}
	}

	if cfg.ModelDir != "" {
		CheckModelDir(cfg, db, api)
		return
	}

	log.Fatalf("Nothing to do: pass model document paths or set model_dir/check_schedule")
}
