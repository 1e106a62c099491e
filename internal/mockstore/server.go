// Package mockstore serves a fakestore-compatible product catalog for local
// development and tests.
package mockstore

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/five82/shopfront/internal/catalog"
)

//go:embed testdata/products.json
var fixture []byte

// Options tune the mock server's behavior.
type Options struct {
	// Delay is added before every catalog response.
	Delay time.Duration
	// Fail makes catalog routes answer 500, for exercising the client's
	// failure path.
	Fail bool
}

// Fixture returns the embedded product list.
func Fixture() ([]catalog.Product, error) {
	var products []catalog.Product
	if err := json.Unmarshal(fixture, &products); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return products, nil
}

// NewRouter returns the catalog routes backed by products.
func NewRouter(products []catalog.Product, opts Options, logger *slog.Logger) http.Handler {
	h := &handler{products: products, opts: opts}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(requestLogging(logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/products", func(r chi.Router) {
		r.Use(h.simulate)
		r.Get("/", h.list)
		r.Get("/categories", h.categories)
		r.Get("/category/{category}", h.byCategory)
		r.Get("/{id}", h.get)
	})
	return r
}

type handler struct {
	products []catalog.Product
	opts     Options
}

func (h *handler) simulate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.opts.Delay > 0 {
			select {
			case <-time.After(h.opts.Delay):
			case <-r.Context().Done():
				return
			}
		}
		if h.opts.Fail {
			writeError(w, http.StatusInternalServerError, "catalog unavailable")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	products, err := limit(h.products, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *handler) categories(w http.ResponseWriter, _ *http.Request) {
	seen := make(map[string]bool)
	out := make([]string, 0, 4)
	for _, p := range h.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handler) byCategory(w http.ResponseWriter, r *http.Request) {
	products, err := limit(catalog.FilterCategory(h.products, chi.URLParam(r, "category")), r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	for _, p := range h.products {
		if p.ID == id {
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	writeError(w, http.StatusNotFound, "product not found")
}

// limit applies the fakestore ?limit=N query parameter.
func limit(products []catalog.Product, r *http.Request) ([]catalog.Product, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return products, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("invalid limit %q", raw)
	}
	if n < len(products) {
		return products[:n], nil
	}
	return products, nil
}

func requestLogging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.InfoContext(r.Context(), "http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", chimw.GetReqID(r.Context())),
			)
		})
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent; nothing meaningful can be done if encoding fails.
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
