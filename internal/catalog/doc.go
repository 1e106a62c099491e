// Package catalog provides the product catalog client and the pure helpers
// the storefront derives from catalog records.
//
// # Overview
//
// The catalog is read-only. A single GET against the configured endpoint
// returns a JSON array of products:
//
//	client, err := catalog.NewClient("https://fakestoreapi.com/products/")
//	if err != nil {
//		return err
//	}
//	products, err := client.FetchProducts(ctx)
//
// Upstream records carry no inventory, so AssignStock synthesizes a stock
// level per product from a seedable random source. Stock only drives UI
// affordances; nothing is reserved or decremented.
//
// # Files
//
//   - client.go: HTTP client and the ProductFetcher interface
//   - types.go: Product and the fixed category list
//   - variants.go: category to size/color lookup and swatch colors
//   - stock.go: synthetic stock assignment
//   - filter.go: category and stock predicates
//   - display.go: routes, excerpts, prices and stock badges
//
// # Variants
//
// Variants are derived from the category, never stored. Clothing,
// electronics and jewelery each map to a fixed ordered list of sizes and
// colors; every other category has none, and cards omit the selectors.
package catalog
