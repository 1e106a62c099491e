package state

import (
	"sync"
	"time"

	"github.com/five82/shopfront/internal/catalog"
)

// Selection is the per-product variant choice. Empty fields are unselected.
type Selection struct {
	Size  string
	Color string
}

func (s Selection) with(kind catalog.VariantKind, value string) Selection {
	switch kind {
	case catalog.VariantSize:
		s.Size = value
	case catalog.VariantColor:
		s.Color = value
	}
	return s
}

// Value returns the selected label for kind.
func (s Selection) Value(kind catalog.VariantKind) string {
	switch kind {
	case catalog.VariantSize:
		return s.Size
	case catalog.VariantColor:
		return s.Color
	default:
		return ""
	}
}

// Snapshot represents the latest catalog state available to the UI.
type Snapshot struct {
	Products    []catalog.Product // full set, in load order
	Displayed   []catalog.Product // latest filter result
	Selections  map[int64]Selection
	Loading     bool
	Loaded      bool
	LastUpdated time.Time
}

// Product looks up a product in the full set.
func (s Snapshot) Product(id int64) (catalog.Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Product{}, false
}

// Store coordinates access to the catalog state. The zero value is ready to
// use and starts empty and not loading.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// BeginLoad marks the store as waiting on the catalog fetch.
func (s *Store) BeginLoad() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Loading = true
}

// Populate installs a freshly loaded catalog as both the full and the
// displayed set and clears the loading flag.
func (s *Store) Populate(products []catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Products = cloneProducts(products)
	s.snapshot.Displayed = cloneProducts(products)
	s.snapshot.Loading = false
	s.snapshot.Loaded = true
	s.snapshot.LastUpdated = time.Now()
}

// ShowAll resets the displayed set to the full catalog.
func (s *Store) ShowAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.display(cloneProducts(s.snapshot.Products))
}

// FilterCategory displays only products in category.
func (s *Store) FilterCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.display(catalog.FilterCategory(s.snapshot.Products, category))
}

// FilterInStock displays only products with stock remaining.
func (s *Store) FilterInStock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.display(catalog.FilterInStock(s.snapshot.Products))
}

// FilterOutOfStock displays only products with no stock.
func (s *Store) FilterOutOfStock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.display(catalog.FilterOutOfStock(s.snapshot.Products))
}

func (s *Store) display(products []catalog.Product) {
	s.snapshot.Displayed = products
	s.snapshot.LastUpdated = time.Now()
}

// SelectVariant records value as the product's selection for kind, keeping
// the other kind's selection. It reports whether anything changed; unknown
// and out-of-stock products are never updated.
func (s *Store) SelectVariant(productID int64, kind catalog.VariantKind, value string) bool {
	if kind != catalog.VariantSize && kind != catalog.VariantColor {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.snapshot.Product(productID)
	if !ok || !product.InStock() {
		return false
	}

	current, exists := s.snapshot.Selections[productID]
	next := current.with(kind, value)
	if exists && next == current {
		return false
	}
	if s.snapshot.Selections == nil {
		s.snapshot.Selections = make(map[int64]Selection)
	}
	s.snapshot.Selections[productID] = next
	return true
}

// ProductSelection returns a product together with its current selection,
// read under one lock so an add-to-cart never mixes two selection states.
func (s *Store) ProductSelection(productID int64) (catalog.Product, Selection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.snapshot.Product(productID)
	if !ok {
		return catalog.Product{}, Selection{}, false
	}
	return p, s.snapshot.Selections[productID], true
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Products = cloneProducts(s.snapshot.Products)
	snap.Displayed = cloneProducts(s.snapshot.Displayed)
	if len(s.snapshot.Selections) > 0 {
		snap.Selections = make(map[int64]Selection, len(s.snapshot.Selections))
		for id, sel := range s.snapshot.Selections {
			snap.Selections[id] = sel
		}
	}
	return snap
}

func cloneProducts(items []catalog.Product) []catalog.Product {
	if items == nil {
		return nil
	}
	dup := make([]catalog.Product, len(items))
	copy(dup, items)
	return dup
}
