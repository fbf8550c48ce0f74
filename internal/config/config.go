package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Ticker string `yaml:"ticker"`
	Market struct {
		Timezone     string `yaml:"timezone"`
		LookbackDays int    `yaml:"lookback_days"`
	} `yaml:"market"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Model struct {
		Path          string `yaml:"path"`
		BBStdStrategy string `yaml:"bb_std_strategy"`
	} `yaml:"model"`
	Webhook struct {
		URL string `yaml:"url"`
	} `yaml:"webhook"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		LiveCron string `yaml:"live_cron"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

var tickerPattern = regexp.MustCompile(`^[\^]?[A-Z0-9][A-Z0-9.\-=]{0,11}$`)

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
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
	if v := os.Getenv("TICKER"); v != "" {
		cfg.Ticker = v
	}
	if v := os.Getenv("MARKET_TIMEZONE"); v != "" {
		cfg.Market.Timezone = v
	}
	if v := os.Getenv("LOOKBACK_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			cfg.Market.LookbackDays = days
		}
	}
	if v := os.Getenv("MODEL_PATH"); v != "" {
		cfg.Model.Path = v
	}
	if v := os.Getenv("BB_STD_STRATEGY"); v != "" {
		cfg.Model.BBStdStrategy = v
	}
	if v := os.Getenv("TRADINGVIEW_WEBHOOK_URL"); v != "" {
		cfg.Webhook.URL = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("BARS_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("BARS_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CRON_LIVE"); v != "" {
		cfg.Schedule.LiveCron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Ticker == "" {
		cfg.Ticker = "TSLA"
	}
	if cfg.Market.Timezone == "" {
		cfg.Market.Timezone = "America/New_York"
	}
	if cfg.Market.LookbackDays == 0 {
		cfg.Market.LookbackDays = 250
	}
	if cfg.Model.Path == "" {
		cfg.Model.Path = "data/tsla_model.json"
	}
	if cfg.Model.BBStdStrategy == "" {
		cfg.Model.BBStdStrategy = "half_band_gap"
	}
	if cfg.Schedule.LiveCron == "" {
		// Hourly on the half hour during regular session hours, Mon-Fri.
		cfg.Schedule.LiveCron = "0 30 9-16 * * 1-5"
	}

	return cfg, nil
}

// Validate checks that all required fields are set and well-formed.
// Failures here are configuration errors, raised before any run starts.
func (c *Config) Validate() error {
	if !tickerPattern.MatchString(c.Ticker) {
		return fmt.Errorf("ticker %q is malformed", c.Ticker)
	}
	if _, err := time.LoadLocation(c.Market.Timezone); err != nil {
		return fmt.Errorf("market.timezone: %w", err)
	}
	if c.Market.LookbackDays < 60 {
		return fmt.Errorf("market.lookback_days must be at least 60 to cover indicator warm-up, got %d", c.Market.LookbackDays)
	}
	if c.Model.Path == "" {
		return fmt.Errorf("model.path is required")
	}
	switch c.Model.BBStdStrategy {
	case "half_band_gap", "band_width_percent":
	default:
		return fmt.Errorf("model.bb_std_strategy must be half_band_gap or band_width_percent, got %q", c.Model.BBStdStrategy)
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	return nil
}
