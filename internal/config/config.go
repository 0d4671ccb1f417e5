package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Chat struct {
		// AnswerDelayMS simulates the external model latency.
		AnswerDelayMS int `yaml:"answer_delay_ms"`
		// GeneratorTimeoutMS bounds a single generation call.
		GeneratorTimeoutMS int `yaml:"generator_timeout_ms"`
	} `yaml:"chat"`

	Renewal struct {
		// FailureRate is the simulated payment failure probability.
		FailureRate float64 `yaml:"failure_rate"`
		// RenewalSchedule and ExpirySchedule are cron specs.
		RenewalSchedule string `yaml:"renewal_schedule"`
		ExpirySchedule  string `yaml:"expiry_schedule"`
	} `yaml:"renewal"`

	Seed struct {
		Demo bool `yaml:"demo"`
	} `yaml:"seed"`
}

var AppConfig *Config

// GetConfig returns the loaded configuration, loading it on first use.
func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

// LoadConfig reads configuration from config.yaml, or from environment
// variables when DATABASE_URL is set (test and container mode). Either
// way the defaults below fill anything left unset.
func LoadConfig() {
	var cfg Config

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.DSN = dbURL
		cfg.Server.Env = os.Getenv("SERVER_ENV")
		cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
		if v := os.Getenv("ANSWER_DELAY_MS"); v != "" {
			cfg.Chat.AnswerDelayMS, _ = strconv.Atoi(v)
		}
		if v := os.Getenv("RENEWAL_FAILURE_RATE"); v != "" {
			cfg.Renewal.FailureRate, _ = strconv.ParseFloat(v, 64)
		}
		cfg.Seed.Demo = os.Getenv("SEED_DEMO_DATA") == "true"
	} else {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}
	}

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Chat.AnswerDelayMS == 0 {
		cfg.Chat.AnswerDelayMS = 2000
	}
	if cfg.Chat.GeneratorTimeoutMS == 0 {
		cfg.Chat.GeneratorTimeoutMS = 30000
	}
	if cfg.Renewal.FailureRate == 0 {
		cfg.Renewal.FailureRate = 0.1
	}
	if cfg.Renewal.RenewalSchedule == "" {
		cfg.Renewal.RenewalSchedule = "@hourly"
	}
	if cfg.Renewal.ExpirySchedule == "" {
		cfg.Renewal.ExpirySchedule = "@every 6h"
	}
}

// GeneratorTimeout returns the per-call generation timeout.
func (c *Config) GeneratorTimeout() time.Duration {
	return time.Duration(c.Chat.GeneratorTimeoutMS) * time.Millisecond
}

// AnswerDelay returns the simulated model latency.
func (c *Config) AnswerDelay() time.Duration {
	return time.Duration(c.Chat.AnswerDelayMS) * time.Millisecond
}
