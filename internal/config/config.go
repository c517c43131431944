package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port     string
	APIKey   string
	RedisURL string

	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	YahooBaseURL string

	FetchRetries        int
	FetchInitialDelayMS int

	WatchSymbols  []string
	QuotePollSecs int

	SSHPort        int
	SSHHostKeyPath string

	TelegramBotToken string
}

func Load() *Config {
	cfg := &Config{
		APIKey:           os.Getenv("API_KEY"),
		RedisURL:         os.Getenv("REDIS_URL"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL:    strings.TrimSpace(os.Getenv("GEMINI_BASE_URL")),
		YahooBaseURL:     strings.TrimSpace(os.Getenv("YAHOO_BASE_URL")),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	cfg.Port = strings.TrimSpace(os.Getenv("PORT"))
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set, defaulting to localhost:6379")
		cfg.RedisURL = "localhost:6379"
	}

	// A missing model credential is an expected runtime condition, not a
	// startup failure: generated news and recommendations serve fallback data.
	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set, generated content will use fallback data")
	}

	cfg.GeminiModel = strings.TrimSpace(os.Getenv("GEMINI_MODEL"))
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = "gemini-2.0-flash-001"
	}

	cfg.FetchRetries = 2
	if v := strings.TrimSpace(os.Getenv("FETCH_RETRIES")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.FetchRetries = n
		}
	}

	cfg.FetchInitialDelayMS = 1000
	if v := strings.TrimSpace(os.Getenv("FETCH_INITIAL_DELAY_MS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.FetchInitialDelayMS = n
		}
	}

	cfg.WatchSymbols = []string{"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA"}
	if v := strings.TrimSpace(os.Getenv("WATCH_SYMBOLS")); v != "" {
		var symbols []string
		for _, s := range strings.Split(v, ",") {
			if s = strings.ToUpper(strings.TrimSpace(s)); s != "" {
				symbols = append(symbols, s)
			}
		}
		if len(symbols) > 0 {
			cfg.WatchSymbols = symbols
		}
	}

	cfg.QuotePollSecs = 60
	if v := os.Getenv("QUOTE_POLL_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.QuotePollSecs = n
		}
	}

	cfg.SSHPort = 2222
	if v := strings.TrimSpace(os.Getenv("SSH_PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SSHPort = n
		}
	}

	cfg.SSHHostKeyPath = strings.TrimSpace(os.Getenv("SSH_HOST_KEY_PATH"))
	if cfg.SSHHostKeyPath == "" {
		cfg.SSHHostKeyPath = ".ssh/stockdeck_host_key"
	}

	return cfg
}
