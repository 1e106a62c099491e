package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/shopfront/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config path (optional, defaults to ~/.config/shopfront/config.toml)")
	prefsPath := flag.String("prefs", "", "preferences path (optional)")
	envFile := flag.String("env", "", "env file to load (optional, defaults to ./.env when present)")
	endpoint := flag.String("endpoint", "", "catalog URL override")
	cartBackend := flag.String("cart", "", "cart backend override: memory or redis")
	seed := flag.Uint64("seed", 0, "stock seed override; 0 keeps the configured seed")
	logLines := flag.Int("logs", 0, "print the newest N log records and exit")
	logLevel := flag.String("logs-level", "info", "minimum level for -logs")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		EnvFile:    *envFile,
		Endpoint:   *endpoint,
		Cart:       *cartBackend,
		Seed:       *seed,
	}
	if *logLines > 0 {
		if err := app.PrintLogs(os.Stdout, opts, *logLines, *logLevel); err != nil {
			fmt.Fprintf(os.Stderr, "shopfront: %v\n", err)
			return 1
		}
		return 0
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "shopfront: %v\n", err)
		return 1
	}
	return 0
}
