package catalog

// FilterCategory returns the products whose category equals category.
func FilterCategory(products []Product, category string) []Product {
	return filterProducts(products, func(p Product) bool { return p.Category == category })
}

// FilterInStock returns the products with stock remaining.
func FilterInStock(products []Product) []Product {
	return filterProducts(products, func(p Product) bool { return p.Stock > 0 })
}

// FilterOutOfStock returns the products with no stock.
func FilterOutOfStock(products []Product) []Product {
	return filterProducts(products, func(p Product) bool { return p.Stock == 0 })
}

// CountInStock splits products into in-stock and out-of-stock counts.
func CountInStock(products []Product) (inStock, outOfStock int) {
	for _, p := range products {
		if p.Stock > 0 {
			inStock++
		} else {
			outOfStock++
		}
	}
	return inStock, outOfStock
}

func filterProducts(products []Product, keep func(Product) bool) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
