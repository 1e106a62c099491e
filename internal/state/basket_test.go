package state

import (
	"context"
	"errors"
	"testing"

	"github.com/five82/shopfront/internal/catalog"
)

type recordingDispatcher struct {
	lines []CartLine
	err   error
}

func (d *recordingDispatcher) DispatchAddToCart(_ context.Context, line CartLine) error {
	d.lines = append(d.lines, line)
	return d.err
}

type recordingNotifier struct {
	notes []Notification
}

func (n *recordingNotifier) Notify(note Notification) {
	n.notes = append(n.notes, note)
}

func newTestBasket(products []catalog.Product) (*Basket, *Store, *recordingDispatcher, *recordingNotifier) {
	store := &Store{}
	store.Populate(products)
	d := &recordingDispatcher{}
	n := &recordingNotifier{}
	return NewBasket(store, d, n), store, d, n
}

func TestBasket_AddOutOfStock(t *testing.T) {
	basket, _, d, n := newTestBasket(sampleProducts())

	_, err := basket.Add(context.Background(), 2)
	if !errors.Is(err, ErrOutOfStock) {
		t.Fatalf("Add error = %v, want ErrOutOfStock", err)
	}
	var oos *OutOfStockError
	if !errors.As(err, &oos) || oos.ProductID != 2 {
		t.Fatalf("Add error = %#v, want *OutOfStockError for product 2", err)
	}
	if len(d.lines) != 0 {
		t.Fatalf("dispatch calls = %d, want 0", len(d.lines))
	}
	if len(n.notes) != 1 || n.notes[0].Kind != NotifyFailure || n.notes[0].Message != MessageOutOfStock {
		t.Fatalf("notifications = %#v, want one out-of-stock failure", n.notes)
	}
}

func TestBasket_AddWithoutSelection(t *testing.T) {
	basket, _, d, n := newTestBasket(sampleProducts())

	line, err := basket.Add(context.Background(), 1)
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if len(d.lines) != 1 {
		t.Fatalf("dispatch calls = %d, want 1", len(d.lines))
	}
	got := d.lines[0]
	if got.ID != 1 || got.Title != "Backpack" || got.SelectedSize != "" || got.SelectedColor != "" {
		t.Fatalf("dispatched = %#v, want product 1 with empty selection", got)
	}
	if line != got {
		t.Fatalf("returned line %#v != dispatched %#v", line, got)
	}
	if len(n.notes) != 1 || n.notes[0].Kind != NotifySuccess || n.notes[0].Message != MessageAdded {
		t.Fatalf("notifications = %#v, want one success", n.notes)
	}
}

func TestBasket_AddCarriesCurrentSelection(t *testing.T) {
	basket, store, d, _ := newTestBasket(sampleProducts())

	store.SelectVariant(4, catalog.VariantSize, "L")
	if _, err := basket.Add(context.Background(), 4); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	store.SelectVariant(4, catalog.VariantColor, "Red")
	if _, err := basket.Add(context.Background(), 4); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	if len(d.lines) != 2 {
		t.Fatalf("dispatch calls = %d, want 2", len(d.lines))
	}
	if d.lines[0].SelectedSize != "L" || d.lines[0].SelectedColor != "" {
		t.Fatalf("first dispatch = %#v, want size L, no color", d.lines[0])
	}
	if d.lines[1].SelectedSize != "L" || d.lines[1].SelectedColor != "Red" {
		t.Fatalf("second dispatch = %#v, want L/Red", d.lines[1])
	}
}

func TestBasket_DispatchFailureNotifiesOnce(t *testing.T) {
	basket, _, d, n := newTestBasket(sampleProducts())
	d.err = errors.New("redis down")

	_, err := basket.Add(context.Background(), 1)
	if !errors.Is(err, d.err) {
		t.Fatalf("Add error = %v, want %v", err, d.err)
	}
	if len(d.lines) != 1 {
		t.Fatalf("dispatch calls = %d, want 1", len(d.lines))
	}
	if len(n.notes) != 1 || n.notes[0].Kind != NotifyFailure {
		t.Fatalf("notifications = %#v, want exactly one failure", n.notes)
	}
}

func TestBasket_AddUnknownProduct(t *testing.T) {
	basket, _, d, n := newTestBasket(sampleProducts())

	_, err := basket.Add(context.Background(), 404)
	if !errors.Is(err, ErrUnknownProduct) {
		t.Fatalf("Add error = %v, want ErrUnknownProduct", err)
	}
	if len(d.lines) != 0 || len(n.notes) != 0 {
		t.Fatalf("unknown product produced dispatches %d / notifications %d", len(d.lines), len(n.notes))
	}
}

// Two upstream records, stocks [0,5], filtered and added with a jewelery
// selection.
func TestScenario_FilterSelectAndAdd(t *testing.T) {
	var store Store
	loader := NewLoader(&fakeFetcher{products: []catalog.Product{
		{ID: 1, Category: catalog.CategoryElectronics, Title: "SSD"},
		{ID: 2, Category: catalog.CategoryJewelery, Title: "Ring"},
	}}, &store, &scriptedRand{
		ints:   []int{3, 4},
		floats: []float64{0.05, 0.6},
	}, nil)
	if err := loader.Load(context.Background(), loader.Mount()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	store.FilterInStock()
	if got := ids(store.Snapshot().Displayed); !equalIDs(got, []int64{2}) {
		t.Fatalf("in-stock = %v, want [2]", got)
	}
	store.FilterOutOfStock()
	if got := ids(store.Snapshot().Displayed); !equalIDs(got, []int64{1}) {
		t.Fatalf("out-of-stock = %v, want [1]", got)
	}

	d := &recordingDispatcher{}
	n := &recordingNotifier{}
	basket := NewBasket(&store, d, n)

	store.SelectVariant(2, catalog.VariantColor, "Gold")
	store.SelectVariant(2, catalog.VariantSize, "Small")
	if _, err := basket.Add(context.Background(), 2); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	if len(d.lines) != 1 {
		t.Fatalf("dispatch calls = %d, want 1", len(d.lines))
	}
	if d.lines[0].SelectedColor != "Gold" || d.lines[0].SelectedSize != "Small" {
		t.Fatalf("dispatched = %#v, want Gold/Small", d.lines[0])
	}
	if len(n.notes) != 1 || n.notes[0].Kind != NotifySuccess {
		t.Fatalf("notifications = %#v, want one success", n.notes)
	}
}

func TestBasket_AddWhileSelectionChanges(t *testing.T) {
	basket, store, d, _ := newTestBasket(sampleProducts())
	sizes := []string{"S", "M", "L"}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := range 200 {
			store.SelectVariant(4, catalog.VariantSize, sizes[i%len(sizes)])
		}
	}()
	for range 50 {
		if _, err := basket.Add(context.Background(), 4); err != nil {
			t.Fatalf("Add returned error: %v", err)
		}
	}
	<-done

	for _, line := range d.lines {
		switch line.SelectedSize {
		case "", "S", "M", "L":
		default:
			t.Fatalf("dispatched size %q, want one of the selected sizes", line.SelectedSize)
		}
		if line.ID != 4 {
			t.Fatalf("dispatched product %d, want 4", line.ID)
		}
	}
}
