// Package config loads shopfront's runtime configuration.
//
// Settings come from ~/.config/shopfront/config.toml, then from SHOPFRONT_*
// environment variables (a .env file in the working directory is loaded into
// the environment by the app package before Load runs). A missing file means
// defaults; a malformed one is an error.
//
//	catalog_url  = "https://fakestoreapi.com/products/"
//	cart_backend = "memory"          # or "redis"
//	redis_addr   = "127.0.0.1:6379"
//	cart_session = ""                # empty generates one per run
//	cart_ttl     = "24h"
//	log_file     = "~/.local/share/shopfront/shopfront.log"
//	log_level    = "info"
//	stock_seed   = 0                 # 0 seeds from the clock
//
// Paths beginning with ~ are expanded against the user's home directory.
package config
