// Package app is the composition root for shopfront.
//
// Run loads the environment and configuration, opens the log file, builds
// the catalog client and the cart backend, and hands the wired state to the
// UI:
//
//	Run()
//	 ├─> godotenv.Load()       optional .env
//	 ├─> config.Load()         TOML + SHOPFRONT_* overrides
//	 ├─> logging.Open()        JSON log file (TUI owns the terminal)
//	 ├─> catalog.NewClient()   product API
//	 ├─> openCart()            memory, or Redis after a ping
//	 ├─> state.NewLoader()     seeded stock source
//	 ├─> state.NewBasket()     cart dispatch + toasts
//	 └─> ui.Run()              blocks until quit
//
// Configuration and cart connection failures are returned before the UI
// starts. A catalog fetch failure is not: it is logged and the grid keeps
// its loading placeholders.
package app
