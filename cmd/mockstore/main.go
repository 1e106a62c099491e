package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	env "github.com/caarlos0/env/v10"

	"github.com/five82/shopfront/internal/logging"
	"github.com/five82/shopfront/internal/mockstore"
)

type settings struct {
	Addr     string        `env:"MOCKSTORE_ADDR" envDefault:":18080"`
	Delay    time.Duration `env:"MOCKSTORE_DELAY"`
	Fail     bool          `env:"MOCKSTORE_FAIL"`
	LogLevel string        `env:"MOCKSTORE_LOG_LEVEL" envDefault:"info"`
}

func main() {
	os.Exit(run())
}

func run() int {
	var cfg settings
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "mockstore: parse env: %v\n", err)
		return 1
	}

	logger := logging.New("mockstore", cfg.LogLevel)

	products, err := mockstore.Fixture()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mockstore: %v\n", err)
		return 1
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mockstore.NewRouter(products, mockstore.Options{Delay: cfg.Delay, Fail: cfg.Fail}, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("mockstore listening", "addr", cfg.Addr, "products", len(products))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "mockstore: %v\n", err)
			return 1
		}
	case <-ctx.Done():
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelShutdown()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(os.Stderr, "mockstore: shutdown: %v\n", err)
			return 1
		}
	}
	return 0
}
