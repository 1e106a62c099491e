package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/five82/shopfront/internal/cart"
	"github.com/five82/shopfront/internal/catalog"
	"github.com/five82/shopfront/internal/config"
	"github.com/five82/shopfront/internal/logging"
	"github.com/five82/shopfront/internal/prefs"
	"github.com/five82/shopfront/internal/state"
	"github.com/five82/shopfront/internal/ui"
)

const (
	serviceName      = "shopfront"
	redisPingTimeout = 3 * time.Second
	sharedCartPoll   = 5 * time.Second
)

// Options configure the shopfront application. Non-zero fields override the
// config file and environment.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/shopfront/prefs.toml
	EnvFile    string // empty loads ./.env when present
	Endpoint   string
	Cart       string
	Seed       uint64
}

// Run boots the storefront TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	if err := loadEnv(opts.EnvFile); err != nil {
		return err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := applyOverrides(&cfg, opts); err != nil {
		return err
	}

	logger, closer, err := logging.Open(cfg.LogFile, serviceName, cfg.LogLevel)
	defer func() { _ = closer.Close() }()
	if err != nil {
		fmt.Fprintf(os.Stderr, "shopfront: logging disabled: %v\n", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := catalog.NewClient(cfg.CatalogURL)
	if err != nil {
		return fmt.Errorf("init catalog client: %w", err)
	}

	backend, closeCart, err := openCart(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeCart()

	store := &state.Store{}
	loader := state.NewLoader(client, store, newRand(cfg.StockSeed), logger)
	toasts := ui.NewToaster()
	basket := state.NewBasket(store, backend, toasts)

	logger.Info("starting shopfront",
		slog.String("catalog", client.Endpoint()),
		slog.String("cart_backend", cfg.CartBackend),
		slog.Uint64("stock_seed", cfg.StockSeed),
	)

	var cartRefresh time.Duration
	if cfg.CartBackend == config.CartRedis {
		cartRefresh = sharedCartPoll
	}

	return ui.Run(ui.Options{
		Context:     ctx,
		Store:       store,
		Loader:      loader,
		Basket:      basket,
		Cart:        backend,
		Toasts:      toasts,
		ThemeName:   userPrefs.Theme,
		Columns:     userPrefs.Columns,
		PrefsPath:   opts.PrefsPath,
		Logger:      logger,
		CartRefresh: cartRefresh,
	})
}

// PrintLogs writes the newest n log records at or above level to w. It
// resolves the log file the same way Run does.
func PrintLogs(w io.Writer, opts Options, n int, level string) error {
	if err := loadEnv(opts.EnvFile); err != nil {
		return err
	}
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	lines, err := logging.Tail(cfg.LogFile, n, logging.ParseLevel(level))
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write logs: %w", err)
		}
	}
	return nil
}

// loadEnv copies a .env file into the process environment without touching
// variables that are already set. An explicit path must exist.
func loadEnv(path string) error {
	if strings.TrimSpace(path) != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load env file: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

func applyOverrides(cfg *config.Config, opts Options) error {
	if v := strings.TrimSpace(opts.Endpoint); v != "" {
		cfg.CatalogURL = v
	}
	if v := strings.ToLower(strings.TrimSpace(opts.Cart)); v != "" {
		if v != config.CartMemory && v != config.CartRedis {
			return fmt.Errorf("unknown cart backend %q", opts.Cart)
		}
		cfg.CartBackend = v
	}
	if opts.Seed != 0 {
		cfg.StockSeed = opts.Seed
	}
	return nil
}

// openCart builds the configured cart backend. The Redis backend is checked
// before the UI starts so a bad address fails fast instead of on the first
// add to cart.
func openCart(ctx context.Context, cfg config.Config, logger *slog.Logger) (cart.Backend, func(), error) {
	if cfg.CartBackend != config.CartRedis {
		return cart.NewMemory(), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	session := cfg.CartSession
	if session == "" {
		session = uuid.NewString()
	}
	backend := cart.NewRedis(client, session, cfg.CartTTL)

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := backend.Ping(pingCtx); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("connect cart redis at %s: %w", cfg.RedisAddr, err)
	}

	logger.Info("redis cart ready", slog.String("key", backend.Key()), slog.Duration("ttl", cfg.CartTTL))
	return backend, func() { _ = client.Close() }, nil
}

// newRand returns the stock source. Zero seeds from the clock so every run
// draws fresh quantities.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
