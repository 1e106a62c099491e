package cart

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/five82/shopfront/internal/state"
)

// Memory is an in-process cart that lives as long as the program.
type Memory struct {
	mu   sync.Mutex
	cart Cart
	now  func() time.Time
}

var _ Backend = (*Memory)(nil)

// NewMemory returns an empty in-memory cart.
func NewMemory() *Memory {
	return &Memory{
		cart: Cart{ID: uuid.NewString()},
		now:  time.Now,
	}
}

// DispatchAddToCart implements state.Dispatcher.
func (m *Memory) DispatchAddToCart(_ context.Context, line state.CartLine) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cart.Apply(line, m.now())
	return nil
}

// Cart returns a copy of the cart.
func (m *Memory) Cart(context.Context) (Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cart.clone(), nil
}
