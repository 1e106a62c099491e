// Package cart implements the cart collaborators the storefront dispatches
// add-to-cart records to.
package cart

import (
	"context"
	"time"

	"github.com/five82/shopfront/internal/state"
)

// Cart represents a shopping cart for one storefront session.
type Cart struct {
	ID        string    `json:"id"`
	Items     []Item    `json:"items"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Item is a single cart line. Variants of the same product are separate items.
type Item struct {
	ProductID int64   `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Size      string  `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
	Quantity  int     `json:"quantity"`
}

// Reader exposes the cart contents to the UI.
type Reader interface {
	Cart(ctx context.Context) (Cart, error)
}

// Backend is a cart that accepts storefront dispatches and can be read back.
type Backend interface {
	state.Dispatcher
	Reader
}

// FindItemIndex returns the index of the item matching product and variant,
// or -1.
func (c *Cart) FindItemIndex(productID int64, size, color string) int {
	for i := range c.Items {
		it := c.Items[i]
		if it.ProductID == productID && it.Size == size && it.Color == color {
			return i
		}
	}
	return -1
}

// Apply reduces an add-to-cart record into the cart: a matching item gains
// one unit, anything else is appended with quantity one.
func (c *Cart) Apply(line state.CartLine, now time.Time) {
	if idx := c.FindItemIndex(line.ID, line.SelectedSize, line.SelectedColor); idx >= 0 {
		c.Items[idx].Quantity++
	} else {
		c.Items = append(c.Items, Item{
			ProductID: line.ID,
			Title:     line.Title,
			Price:     line.Price,
			Image:     line.Image,
			Size:      line.SelectedSize,
			Color:     line.SelectedColor,
			Quantity:  1,
		})
	}
	c.UpdatedAt = now
}

// ItemCount returns the total number of units in the cart.
func (c *Cart) ItemCount() int {
	var count int
	for _, it := range c.Items {
		count += it.Quantity
	}
	return count
}

// Total returns the cart value.
func (c *Cart) Total() float64 {
	var total float64
	for _, it := range c.Items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

func (c Cart) clone() Cart {
	c.Items = append([]Item(nil), c.Items...)
	return c
}
