package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.CatalogURL != defaultCatalogURL {
		t.Fatalf("CatalogURL = %q, want %q", cfg.CatalogURL, defaultCatalogURL)
	}
	if cfg.CartBackend != CartMemory {
		t.Fatalf("CartBackend = %q, want %q", cfg.CartBackend, CartMemory)
	}
	if cfg.CartTTL != defaultCartTTL {
		t.Fatalf("CartTTL = %v, want %v", cfg.CartTTL, defaultCartTTL)
	}
	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
	if cfg.StockSeed != 0 {
		t.Fatalf("StockSeed = %d, want 0", cfg.StockSeed)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
catalog_url = "  http://127.0.0.1:18080/products  "
cart_backend = " Redis "
redis_addr = "10.0.0.5:6380"
cart_session = " kiosk-1 "
cart_ttl = "90m"
log_file = "~/logs/shop.log"
log_level = "DEBUG"
stock_seed = 42
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.CatalogURL != "http://127.0.0.1:18080/products" {
		t.Fatalf("CatalogURL = %q", cfg.CatalogURL)
	}
	if cfg.CartBackend != CartRedis || cfg.RedisAddr != "10.0.0.5:6380" || cfg.CartSession != "kiosk-1" {
		t.Fatalf("cart settings = %q %q %q", cfg.CartBackend, cfg.RedisAddr, cfg.CartSession)
	}
	if cfg.CartTTL != 90*time.Minute {
		t.Fatalf("CartTTL = %v, want 90m", cfg.CartTTL)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	if cfg.LogLevel != "debug" || cfg.StockSeed != 42 {
		t.Fatalf("LogLevel=%q StockSeed=%d", cfg.LogLevel, cfg.StockSeed)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SHOPFRONT_CATALOG_URL", "http://mock:18080/products")
	t.Setenv("SHOPFRONT_STOCK_SEED", "7")

	path := writeConfig(t, `
catalog_url = "http://file/products"
log_level = "warn"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.CatalogURL != "http://mock:18080/products" {
		t.Fatalf("CatalogURL = %q, want env override", cfg.CatalogURL)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("LogLevel = %q, want file value warn", cfg.LogLevel)
	}
	if cfg.StockSeed != 7 {
		t.Fatalf("StockSeed = %d, want 7", cfg.StockSeed)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cases := []struct {
		name string
		body string
		want string
	}{
		{"invalid toml", `catalog_url = [`, "parse config"},
		{"unknown backend", `cart_backend = "postgres"`, "cart_backend"},
		{"bad ttl", `cart_ttl = "soon"`, "cart_ttl"},
		{"negative ttl", `cart_ttl = "-1h"`, "cart_ttl"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Load error = %v, want it to mention %q", err, tc.want)
			}
		})
	}
}

func TestLoad_EnvErrors(t *testing.T) {
	cases := []struct {
		name, key, value, want string
	}{
		{"bad seed", "SHOPFRONT_STOCK_SEED", "lots", "parse env"},
		{"negative seed", "SHOPFRONT_STOCK_SEED", "-3", "parse env"},
		{"bad ttl", "SHOPFRONT_CART_TTL", "soon", "parse env"},
		{"zero ttl", "SHOPFRONT_CART_TTL", "0s", "SHOPFRONT_CART_TTL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			t.Setenv(tc.key, tc.value)

			_, err := Load(writeConfig(t, ""))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Load error = %v, want it to mention %q", err, tc.want)
			}
		})
	}
}

func TestLoad_EnvTTLOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SHOPFRONT_CART_TTL", "90m")

	cfg, err := Load(writeConfig(t, `cart_ttl = "2h"`))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.CartTTL != 90*time.Minute {
		t.Fatalf("CartTTL = %s, want 1h30m0s", cfg.CartTTL)
	}
	if cfg.StockSeed != 0 {
		t.Fatalf("StockSeed = %d, want 0 when SHOPFRONT_STOCK_SEED is unset", cfg.StockSeed)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	if want := filepath.Join(home, "a/b"); got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
