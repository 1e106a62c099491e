package state

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/five82/shopfront/internal/catalog"
)

// Mount is the lifetime token of one mounted catalog view. Unmounting only
// suppresses the state write of a pending load; the request keeps running.
type Mount struct {
	mounted atomic.Bool
	started atomic.Bool
}

// Mounted reports whether results may still be applied.
func (m *Mount) Mounted() bool {
	return m != nil && m.mounted.Load()
}

// Unmount discards any result that arrives afterwards.
func (m *Mount) Unmount() {
	if m != nil {
		m.mounted.Store(false)
	}
}

// Loader populates a Store from the catalog once per mount.
type Loader struct {
	fetcher catalog.ProductFetcher
	store   *Store
	rng     catalog.Rand
	logger  *slog.Logger
}

// NewLoader builds a Loader. rng drives stock synthesis and should be seeded
// by the caller; logger may be nil.
func NewLoader(fetcher catalog.ProductFetcher, store *Store, rng catalog.Rand, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{
		fetcher: fetcher,
		store:   store,
		rng:     rng,
		logger:  logger,
	}
}

// Mount returns a fresh mounted token.
func (l *Loader) Mount() *Mount {
	m := &Mount{}
	m.mounted.Store(true)
	return m
}

// Load fetches the catalog and, if mount is still mounted when the response
// arrives, assigns stock and populates the store. A mount loads at most once;
// later calls return immediately.
//
// A fetch failure is logged and returned, and the store stays in the loading
// state: the view keeps its placeholders and shows no error.
func (l *Loader) Load(ctx context.Context, mount *Mount) error {
	if mount == nil || !mount.started.CompareAndSwap(false, true) {
		return nil
	}

	l.store.BeginLoad()
	products, err := l.fetcher.FetchProducts(ctx)
	if err != nil {
		l.logger.Error("catalog fetch failed", slog.String("error", err.Error()))
		return fmt.Errorf("fetch catalog: %w", err)
	}

	if !mount.Mounted() {
		l.logger.Debug("catalog response discarded after unmount", slog.Int("products", len(products)))
		return nil
	}

	catalog.AssignStock(products, l.rng)
	l.store.Populate(products)
	l.logger.Info("catalog loaded", slog.Int("products", len(products)))
	return nil
}
