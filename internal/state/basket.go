package state

import (
	"context"
	"errors"
	"fmt"

	"github.com/five82/shopfront/internal/catalog"
)

// Notification messages shown for add-to-cart outcomes.
const (
	MessageAdded      = "Added to cart"
	MessageOutOfStock = "This product is out of stock"
)

var (
	// ErrOutOfStock is matched by every OutOfStockError.
	ErrOutOfStock = errors.New("product is out of stock")
	// ErrUnknownProduct is returned for ids missing from the loaded catalog.
	ErrUnknownProduct = errors.New("unknown product")
)

// OutOfStockError reports an add-to-cart attempt on a product with no stock.
type OutOfStockError struct {
	ProductID int64
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("product %d: %v", e.ProductID, ErrOutOfStock)
}

func (e *OutOfStockError) Unwrap() error {
	return ErrOutOfStock
}

// CartLine is the product snapshot handed to the cart, extended with the
// variant selection at the time of the click.
type CartLine struct {
	catalog.Product
	SelectedSize  string `json:"selectedSize"`
	SelectedColor string `json:"selectedColor"`
}

// Dispatcher receives add-to-cart records. The cart's own state and
// reduction rules live behind it.
type Dispatcher interface {
	DispatchAddToCart(ctx context.Context, line CartLine) error
}

// NotificationKind distinguishes success and failure toasts.
type NotificationKind int

const (
	NotifySuccess NotificationKind = iota
	NotifyFailure
)

// Notification is a user-facing toast.
type Notification struct {
	Kind    NotificationKind
	Message string
}

// Notifier surfaces notifications to the user.
type Notifier interface {
	Notify(n Notification)
}

// Basket turns add-to-cart clicks into dispatches and notifications.
type Basket struct {
	store    *Store
	dispatch Dispatcher
	notify   Notifier
}

// NewBasket wires a Basket to its collaborators.
func NewBasket(store *Store, dispatch Dispatcher, notify Notifier) *Basket {
	return &Basket{store: store, dispatch: dispatch, notify: notify}
}

// Add dispatches the product with its current selection. Every call on a
// known product produces exactly one notification: a failure when the product
// is out of stock (nothing is dispatched) or the dispatch fails, a success
// otherwise.
func (b *Basket) Add(ctx context.Context, productID int64) (CartLine, error) {
	product, sel, ok := b.store.ProductSelection(productID)
	if !ok {
		return CartLine{}, fmt.Errorf("add product %d: %w", productID, ErrUnknownProduct)
	}
	if !product.InStock() {
		b.notify.Notify(Notification{Kind: NotifyFailure, Message: MessageOutOfStock})
		return CartLine{}, &OutOfStockError{ProductID: productID}
	}

	line := CartLine{
		Product:       product,
		SelectedSize:  sel.Size,
		SelectedColor: sel.Color,
	}
	if err := b.dispatch.DispatchAddToCart(ctx, line); err != nil {
		b.notify.Notify(Notification{Kind: NotifyFailure, Message: "Could not add to cart"})
		return CartLine{}, fmt.Errorf("dispatch add to cart: %w", err)
	}
	b.notify.Notify(Notification{Kind: NotifySuccess, Message: MessageAdded})
	return line, nil
}
