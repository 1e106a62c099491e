// Package state holds the storefront's catalog view state and the actions
// that change it.
//
// # Overview
//
// Store is a mutex-guarded container shared between the catalog loader, which
// writes once from a background command, and the UI, which reads snapshots
// and applies filter and selection actions from its event loop.
//
//	Loader (Cmd goroutine)          UI (Update loop)
//	┌──────────────────┐           ┌──────────────────────┐
//	│ BeginLoad()      │           │ FilterCategory(c)    │
//	│ FetchProducts()  │           │ SelectVariant(...)   │
//	│ AssignStock()    │──────────→│ Snapshot() → render  │
//	│ Populate()       │  (mutex)  │ Basket.Add(id)       │
//	└──────────────────┘           └──────────────────────┘
//
// # Catalog Sets
//
// Populate installs the loaded catalog as both the full set and the displayed
// set. Filters never compose: each of ShowAll, FilterCategory, FilterInStock
// and FilterOutOfStock recomputes the displayed set from the full set. The
// store does not remember which filter is active.
//
// # Selections
//
// Variant selections are keyed by product id and created on first use. They
// are never removed while the view is mounted. Products with no stock reject
// selection changes.
//
// # Loading
//
// Loader.Load runs at most once per Mount. Unmounting flips the token but does
// not cancel the request; a response that arrives after unmount is dropped
// without touching the store. A failed fetch leaves the store loading forever
// and is only logged.
//
// # Cart
//
// Basket.Add composes a CartLine from the product and its selection and hands
// it to a Dispatcher. The cart itself is owned by the dispatcher. Each call
// yields exactly one Notification.
package state
