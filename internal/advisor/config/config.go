package config

import (
	"time"

	"golang-equity-advisor/pkg/config"
)

// Analyzer holds analyzer-specific configuration.
type Analyzer struct {
	MaxConcurrentTasks int `mapstructure:"max_concurrent_tasks"`

	RedisStreamAnalyzeTimeout         time.Duration `mapstructure:"redis_stream_analyze_timeout"`
	RedisStreamAnalyzeRetryInterval   time.Duration `mapstructure:"redis_stream_analyze_retry_interval"`
	RedisStreamAnalyzeMaxIdleDuration time.Duration `mapstructure:"redis_stream_analyze_max_idle_duration"`
	RedisStreamAnalyzeMaxRetry        int           `mapstructure:"redis_stream_analyze_max_retry"`

	ProviderTimeout time.Duration `mapstructure:"provider_timeout"`
	AITimeout       time.Duration `mapstructure:"ai_timeout"`
}

// MaxConcurrency returns the configured worker bound, defaulting to 3.
func (a Analyzer) MaxConcurrency() int {
	if a.MaxConcurrentTasks <= 0 {
		return 3
	}
	return a.MaxConcurrentTasks
}

// Gemini holds the configuration for the Gemini API.
type Gemini struct {
	APIKey              string `mapstructure:"api_key"`
	Model               string `mapstructure:"model"`
	BaseURL             string `mapstructure:"base_url"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
	MaxTokenPerMinute   int    `mapstructure:"max_token_per_minute"`
}

// AI holds configuration for AI providers.
type AI struct {
	Provider string `mapstructure:"provider"`
}

// Telegram holds configuration for the Telegram notifier.
type Telegram struct {
	Enabled  bool   `mapstructure:"enabled"`
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// YahooFinance holds the configuration for the Yahoo Finance API.
type YahooFinance struct {
	BaseURL             string `mapstructure:"base_url"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// AlphaVantage holds the configuration for the Alpha Vantage API.
type AlphaVantage struct {
	BaseURL             string `mapstructure:"base_url"`
	APIKey              string `mapstructure:"api_key"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// News holds news-harvesting configuration.
type News struct {
	WindowDays         int      `mapstructure:"window_days"`
	MaxNews            int      `mapstructure:"max_news"`
	BlacklistedDomains []string `mapstructure:"blacklisted_domains"`
}

// Scheduler holds the watchlist scheduler configuration.
type Scheduler struct {
	WatchlistCron string `mapstructure:"watchlist_cron"`
}

// Config holds the full configuration shared by the advisor binaries.
type Config struct {
	App          config.App      `mapstructure:"app"`
	Logger       config.Logger   `mapstructure:"logger"`
	Database     config.Database `mapstructure:"database"`
	Redis        config.Redis    `mapstructure:"redis"`
	API          config.API      `mapstructure:"api"`
	Analyzer     Analyzer        `mapstructure:"analyzer"`
	Gemini       Gemini          `mapstructure:"gemini"`
	AI           AI              `mapstructure:"ai"`
	Telegram     Telegram        `mapstructure:"telegram"`
	YahooFinance YahooFinance    `mapstructure:"yahoo_finance"`
	AlphaVantage AlphaVantage    `mapstructure:"alpha_vantage"`
	News         News            `mapstructure:"news"`
	Scheduler    Scheduler       `mapstructure:"scheduler"`
}

// Load loads the advisor configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
