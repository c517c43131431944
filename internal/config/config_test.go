package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("FETCH_RETRIES", "")
	t.Setenv("FETCH_INITIAL_DELAY_MS", "")
	t.Setenv("WATCH_SYMBOLS", "")
	t.Setenv("QUOTE_POLL_SECS", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.RedisURL != "localhost:6379" {
		t.Fatalf("expected default redis url, got %s", cfg.RedisURL)
	}
	if cfg.GeminiModel != "gemini-2.0-flash-001" {
		t.Fatalf("expected default model, got %s", cfg.GeminiModel)
	}
	if cfg.FetchRetries != 2 || cfg.FetchInitialDelayMS != 1000 {
		t.Fatalf("unexpected fetch defaults: %+v", cfg)
	}
	want := []string{"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA"}
	if !reflect.DeepEqual(cfg.WatchSymbols, want) {
		t.Fatalf("expected default watch symbols %v, got %v", want, cfg.WatchSymbols)
	}
	if cfg.QuotePollSecs != 60 {
		t.Fatalf("expected default poll secs 60, got %d", cfg.QuotePollSecs)
	}
}

func TestLoadWithEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_URL", "redis:6379")
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("FETCH_RETRIES", "0")
	t.Setenv("FETCH_INITIAL_DELAY_MS", "250")
	t.Setenv("WATCH_SYMBOLS", "reliance.ns, tcs.ns ,INFY.NS")
	t.Setenv("QUOTE_POLL_SECS", "120")

	cfg := Load()
	if cfg.Port != "9090" || cfg.GeminiAPIKey != "key" || cfg.RedisURL != "redis:6379" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.GeminiModel != "gemini-2.5-pro" {
		t.Fatalf("expected model override, got %s", cfg.GeminiModel)
	}
	if cfg.FetchRetries != 0 {
		t.Fatalf("expected zero retries honored, got %d", cfg.FetchRetries)
	}
	if cfg.FetchInitialDelayMS != 250 {
		t.Fatalf("expected delay 250, got %d", cfg.FetchInitialDelayMS)
	}
	want := []string{"RELIANCE.NS", "TCS.NS", "INFY.NS"}
	if !reflect.DeepEqual(cfg.WatchSymbols, want) {
		t.Fatalf("expected normalized watch symbols %v, got %v", want, cfg.WatchSymbols)
	}
	if cfg.QuotePollSecs != 120 {
		t.Fatalf("expected poll secs 120, got %d", cfg.QuotePollSecs)
	}

	t.Setenv("QUOTE_POLL_SECS", "bad")
	t.Setenv("FETCH_RETRIES", "-3")
	cfg = Load()
	if cfg.QuotePollSecs != 60 {
		t.Fatalf("invalid poll secs should fall back to default, got %d", cfg.QuotePollSecs)
	}
	if cfg.FetchRetries != 2 {
		t.Fatalf("negative retries should fall back to default, got %d", cfg.FetchRetries)
	}
}
