// Package ui renders the storefront as a Bubble Tea program.
//
// The model reads catalog state from a state.Store snapshot and writes back
// only through the store's filter and selection operations and the basket.
// A product card grid is the main view; /product/{id} opens a scrollable
// detail page. Toasts implement state.Notifier.
package ui
