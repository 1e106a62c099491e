package mockstore

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/five82/shopfront/internal/catalog"
)

func newTestServer(t *testing.T, opts Options) *httptest.Server {
	t.Helper()
	products, err := Fixture()
	if err != nil {
		t.Fatalf("Fixture: %v", err)
	}
	srv := httptest.NewServer(NewRouter(products, opts, slog.New(slog.NewTextHandler(io.Discard, nil))))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, dest any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if dest != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestFixture_CoversEveryCategory(t *testing.T) {
	products, err := Fixture()
	if err != nil {
		t.Fatalf("Fixture: %v", err)
	}
	for _, c := range catalog.Categories() {
		if len(catalog.FilterCategory(products, c)) == 0 {
			t.Fatalf("fixture has no %q products", c)
		}
	}
	for _, p := range products {
		if p.Stock != 0 {
			t.Fatalf("fixture product %d carries stock %d", p.ID, p.Stock)
		}
	}
}

func TestClientFetchesFromMockStore(t *testing.T) {
	srv := newTestServer(t, Options{})

	client, err := catalog.NewClient(srv.URL + "/products/")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	products, err := client.FetchProducts(context.Background())
	if err != nil {
		t.Fatalf("FetchProducts: %v", err)
	}
	want, _ := Fixture()
	if len(products) != len(want) {
		t.Fatalf("got %d products, want %d", len(products), len(want))
	}
	if products[0].Rating.Count != want[0].Rating.Count {
		t.Fatalf("rating not decoded: %+v", products[0].Rating)
	}
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t, Options{})

	var one catalog.Product
	if status := getJSON(t, srv.URL+"/products/3", &one); status != http.StatusOK || one.ID != 3 {
		t.Fatalf("GET /products/3 = %d %+v", status, one)
	}
	if status := getJSON(t, srv.URL+"/products/999", nil); status != http.StatusNotFound {
		t.Fatalf("GET /products/999 = %d, want 404", status)
	}
	if status := getJSON(t, srv.URL+"/products/abc", nil); status != http.StatusBadRequest {
		t.Fatalf("GET /products/abc = %d, want 400", status)
	}

	var limited []catalog.Product
	if status := getJSON(t, srv.URL+"/products?limit=2", &limited); status != http.StatusOK || len(limited) != 2 {
		t.Fatalf("GET ?limit=2 = %d, %d products", status, len(limited))
	}
	if status := getJSON(t, srv.URL+"/products?limit=-1", nil); status != http.StatusBadRequest {
		t.Fatalf("GET ?limit=-1 = %d, want 400", status)
	}

	var jewelery []catalog.Product
	getJSON(t, srv.URL+"/products/category/jewelery", &jewelery)
	if len(jewelery) == 0 {
		t.Fatalf("category route returned nothing")
	}
	for _, p := range jewelery {
		if p.Category != catalog.CategoryJewelery {
			t.Fatalf("category route returned %q", p.Category)
		}
	}

	var categories []string
	getJSON(t, srv.URL+"/products/categories", &categories)
	if len(categories) != len(catalog.Categories()) {
		t.Fatalf("categories = %v", categories)
	}
}

func TestFailOption(t *testing.T) {
	srv := newTestServer(t, Options{Fail: true})

	client, err := catalog.NewClient(srv.URL + "/products")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.FetchProducts(context.Background()); err == nil {
		t.Fatalf("FetchProducts returned nil error against a failing store")
	}
	if status := getJSON(t, srv.URL+"/health", nil); status != http.StatusOK {
		t.Fatalf("health = %d, want 200", status)
	}
}

func TestDelayHonorsClientContext(t *testing.T) {
	srv := newTestServer(t, Options{Delay: time.Minute})

	client, err := catalog.NewClient(srv.URL + "/products")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := client.FetchProducts(ctx); err == nil {
		t.Fatalf("FetchProducts returned nil error after the context expired")
	}
}
