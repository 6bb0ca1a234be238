package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ModelDir        string   `yaml:"model_dir"`
	DBPath          string   `yaml:"db_path"`
	ReportOutputDir string   `yaml:"report_output_dir"`
	RulesPath       string   `yaml:"rules_path"`
	EntityTypes     []string `yaml:"entity_types"`
	SampleLimit     int      `yaml:"sample_limit"`
	CheckSchedule   string   `yaml:"check_schedule"`
	Timezone        string   `yaml:"timezone"`

	SlackBotToken   string `yaml:"slack_bot_token"`
	ReportChannelID string `yaml:"report_channel_id"`

	Location *time.Location `yaml:"-"`
}

func LoadConfig() Config {
	var cfg Config

	// Load from config.yaml if it exists
	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", configPath, err)
		}
		log.Printf("Loaded config from %s", configPath)
	}

	// Env vars override YAML values
	envOverride(&cfg.ModelDir, "MODEL_DIR")
	envOverride(&cfg.DBPath, "DB_PATH")
	envOverride(&cfg.ReportOutputDir, "REPORT_OUTPUT_DIR")
	envOverride(&cfg.RulesPath, "RULES_PATH")
	envOverrideInt(&cfg.SampleLimit, "SAMPLE_LIMIT")
	envOverride(&cfg.CheckSchedule, "CHECK_SCHEDULE")
	envOverride(&cfg.Timezone, "TIMEZONE")
	envOverride(&cfg.SlackBotToken, "SLACK_BOT_TOKEN")
	envOverride(&cfg.ReportChannelID, "REPORT_CHANNEL_ID")

	if types := os.Getenv("ENTITY_TYPES"); types != "" {
		cfg.EntityTypes = nil
		for _, t := range strings.Split(types, ",") {
			t = strings.TrimSpace(t)
			if t != "" {
				cfg.EntityTypes = append(cfg.EntityTypes, t)
			}
		}
	}

	applyConfigDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	return cfg
}

func applyConfigDefaults(cfg *Config) {
	if cfg.DBPath == "" {
		cfg.DBPath = "./bimcheck.db"
	}
	if cfg.ReportOutputDir == "" {
		cfg.ReportOutputDir = "./reports"
	}
	if cfg.SampleLimit == 0 {
		cfg.SampleLimit = 3
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Local"
	}
}

func validateConfig(cfg *Config) error {
	if cfg.SampleLimit < 1 {
		return fmt.Errorf("invalid sample_limit '%d': must be >= 1", cfg.SampleLimit)
	}

	if strings.EqualFold(cfg.Timezone, "Local") {
		cfg.Location = time.Local
	} else {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return fmt.Errorf("invalid timezone '%s': %w", cfg.Timezone, err)
		}
		cfg.Location = loc
	}

	if cfg.RulesPath != "" {
		if _, err := LoadRuleSet(cfg.RulesPath); err != nil {
			return fmt.Errorf("invalid rules_path '%s': %w", cfg.RulesPath, err)
		}
	}

	if cfg.ReportChannelID != "" && cfg.SlackBotToken == "" {
		return fmt.Errorf("report_channel_id is set but slack_bot_token is not")
	}

	if cfg.CheckSchedule != "" && cfg.ModelDir == "" {
		return fmt.Errorf("check_schedule is set but model_dir is not")
	}

	return nil
}

// RuleSet resolves the effective rule set: file override when
// configured, built-in defaults otherwise.
func (c Config) RuleSet() (RuleSet, error) {
	if c.RulesPath == "" {
		return DefaultRuleSet(), nil
	}
	return LoadRuleSet(c.RulesPath)
}

// SlackConfigured reports whether summary notifications can be sent.
func (c Config) SlackConfigured() bool {
	return c.SlackBotToken != "" && c.ReportChannelID != ""
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}

func envOverrideInt(field *int, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			log.Fatalf("invalid %s '%s': %v", envKey, val, err)
		}
		*field = parsed
	}
}
