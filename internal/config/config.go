package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	AI struct {
		APIKey  string `yaml:"api_key"`
		Model   string `yaml:"model"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"ai"`
	News struct {
		APIKey      string `yaml:"api_key"`
		MaxArticles int    `yaml:"max_articles"`
	} `yaml:"news"`
	Analysis struct {
		PeriodDays  int `yaml:"period_days"`
		HistoryDays int `yaml:"history_days"`
	} `yaml:"analysis"`
	Cache struct {
		Enabled    *bool  `yaml:"enabled"`
		TTLSeconds int    `yaml:"ttl_seconds"`
		Path       string `yaml:"path"`
	} `yaml:"cache"`
	Schedule struct {
		WatchCron string `yaml:"watch_cron"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

// CacheEnabled reports whether the response cache should be used.
// Defaults to true when the config does not say otherwise.
func (c *Config) CacheEnabled() bool {
	return c.Cache.Enabled == nil || *c.Cache.Enabled
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; a .env file
// in the working directory is loaded first when present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.AI.APIKey = v
	}
	if v := os.Getenv("FINSIGHT_AI_MODEL"); v != "" {
		cfg.AI.Model = v
	}
	if v := os.Getenv("FINSIGHT_AI_BASE_URL"); v != "" {
		cfg.AI.BaseURL = v
	}
	if v := os.Getenv("NEWSAPI_KEY"); v != "" {
		cfg.News.APIKey = v
	}
	if v := os.Getenv("FINSIGHT_CACHE_PATH"); v != "" {
		cfg.Cache.Path = v
	}
	if v := os.Getenv("FINSIGHT_CACHE_TTL"); v != "" {
		if ttl, err := strconv.Atoi(v); err == nil {
			cfg.Cache.TTLSeconds = ttl
		}
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.AI.Model == "" {
		cfg.AI.Model = "gpt-4o-mini"
	}
	if cfg.News.MaxArticles == 0 {
		cfg.News.MaxArticles = 5
	}
	if cfg.Analysis.PeriodDays == 0 {
		cfg.Analysis.PeriodDays = 30
	}
	if cfg.Analysis.HistoryDays == 0 {
		cfg.Analysis.HistoryDays = 200
	}
	if cfg.Cache.TTLSeconds == 0 {
		cfg.Cache.TTLSeconds = 3600
	}
	if cfg.Cache.Path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cfg.Cache.Path = filepath.Join(home, ".finsight", "cache.db")
	}
	if cfg.Schedule.WatchCron == "" {
		cfg.Schedule.WatchCron = "0 0 17 * * 1-5"
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.News.MaxArticles < 0 {
		return fmt.Errorf("news.max_articles must not be negative")
	}
	if c.Analysis.PeriodDays <= 0 {
		return fmt.Errorf("analysis.period_days must be positive")
	}
	if c.Analysis.HistoryDays <= 0 {
		return fmt.Errorf("analysis.history_days must be positive")
	}
	if c.Cache.TTLSeconds <= 0 {
		return fmt.Errorf("cache.ttl_seconds must be positive")
	}
	return nil
}
