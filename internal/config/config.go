package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	env "github.com/caarlos0/env/v10"
	toml "github.com/pelletier/go-toml/v2"
)

// Cart backends.
const (
	CartMemory = "memory"
	CartRedis  = "redis"
)

// Config captures the storefront's runtime settings.
type Config struct {
	CatalogURL  string
	CartBackend string
	RedisAddr   string
	CartSession string
	CartTTL     time.Duration
	LogFile     string
	LogLevel    string
	StockSeed   uint64 // zero seeds from the clock
}

const (
	defaultConfigPath = "~/.config/shopfront/config.toml"
	defaultCatalogURL = "https://fakestoreapi.com/products/"
	defaultRedisAddr  = "127.0.0.1:6379"
	defaultCartTTL    = 24 * time.Hour
	defaultLogFile    = "~/.local/share/shopfront/shopfront.log"
	defaultLogLevel   = "info"
)

type fileConfig struct {
	CatalogURL  string `toml:"catalog_url"`
	CartBackend string `toml:"cart_backend"`
	RedisAddr   string `toml:"redis_addr"`
	CartSession string `toml:"cart_session"`
	CartTTL     string `toml:"cart_ttl"`
	LogFile     string `toml:"log_file"`
	LogLevel    string `toml:"log_level"`
	StockSeed   uint64 `toml:"stock_seed"`
}

// envConfig lists the environment overrides. Unset variables leave the file
// values untouched; typed fields are parsed by env and stay nil when unset.
type envConfig struct {
	CatalogURL  string         `env:"SHOPFRONT_CATALOG_URL"`
	CartBackend string         `env:"SHOPFRONT_CART_BACKEND"`
	RedisAddr   string         `env:"SHOPFRONT_REDIS_ADDR"`
	CartSession string         `env:"SHOPFRONT_CART_SESSION"`
	CartTTL     *time.Duration `env:"SHOPFRONT_CART_TTL"`
	LogFile     string         `env:"SHOPFRONT_LOG_FILE"`
	LogLevel    string         `env:"SHOPFRONT_LOG_LEVEL"`
	StockSeed   *uint64        `env:"SHOPFRONT_STOCK_SEED"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		CatalogURL:  defaultCatalogURL,
		CartBackend: CartMemory,
		RedisAddr:   defaultRedisAddr,
		CartTTL:     defaultCartTTL,
		LogFile:     mustExpand(defaultLogFile),
		LogLevel:    defaultLogLevel,
	}
}

// Load reads the config file, falling back to defaults when it is missing,
// then applies environment overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	var raw fileConfig
	bytes, err := readFile(resolved)
	if err != nil {
		return Config{}, err
	}
	if bytes != nil {
		if err := toml.Unmarshal(bytes, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	var overrides envConfig
	if err := env.Parse(&overrides); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	raw.CatalogURL = override(raw.CatalogURL, overrides.CatalogURL)
	raw.CartBackend = override(raw.CartBackend, overrides.CartBackend)
	raw.RedisAddr = override(raw.RedisAddr, overrides.RedisAddr)
	raw.CartSession = override(raw.CartSession, overrides.CartSession)
	raw.LogFile = override(raw.LogFile, overrides.LogFile)
	raw.LogLevel = override(raw.LogLevel, overrides.LogLevel)

	cfg, err := build(raw)
	if err != nil {
		return Config{}, err
	}
	if overrides.CartTTL != nil {
		if *overrides.CartTTL <= 0 {
			return Config{}, fmt.Errorf("SHOPFRONT_CART_TTL must be positive, got %s", *overrides.CartTTL)
		}
		cfg.CartTTL = *overrides.CartTTL
	}
	if overrides.StockSeed != nil {
		cfg.StockSeed = *overrides.StockSeed
	}
	return cfg, nil
}

func build(raw fileConfig) (Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(raw.CatalogURL); v != "" {
		cfg.CatalogURL = v
	}
	if v := strings.ToLower(strings.TrimSpace(raw.CartBackend)); v != "" {
		if v != CartMemory && v != CartRedis {
			return Config{}, fmt.Errorf("cart_backend %q: want %q or %q", raw.CartBackend, CartMemory, CartRedis)
		}
		cfg.CartBackend = v
	}
	if v := strings.TrimSpace(raw.RedisAddr); v != "" {
		cfg.RedisAddr = v
	}
	cfg.CartSession = strings.TrimSpace(raw.CartSession)
	if v := strings.TrimSpace(raw.CartTTL); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("cart_ttl: %w", err)
		}
		if ttl <= 0 {
			return Config{}, fmt.Errorf("cart_ttl must be positive, got %s", v)
		}
		cfg.CartTTL = ttl
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.ToLower(strings.TrimSpace(raw.LogLevel)); v != "" {
		cfg.LogLevel = v
	}
	cfg.StockSeed = raw.StockSeed

	return cfg, nil
}

func readFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return bytes, nil
}

func override(current, value string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return current
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
