package catalog

// Product mirrors one element of the catalog API response. Stock is not part
// of the upstream record; it is synthesized by AssignStock after loading.
type Product struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
	Stock       int     `json:"stock,omitempty"`
}

// Rating is the upstream review summary.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// InStock reports whether the product can be added to a cart.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// Known catalog categories.
const (
	CategoryMens        = "men's clothing"
	CategoryWomens      = "women's clothing"
	CategoryJewelery    = "jewelery"
	CategoryElectronics = "electronics"
)

var categoryOrder = []string{
	CategoryMens,
	CategoryWomens,
	CategoryJewelery,
	CategoryElectronics,
}

// Categories returns the fixed category filter order.
func Categories() []string {
	out := make([]string, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}
