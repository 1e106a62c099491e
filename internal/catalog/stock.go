package catalog

const (
	maxStock          = 20
	outOfStockPercent = 0.2
)

// Rand is the subset of *math/rand/v2.Rand used for stock synthesis.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// AssignStock attaches a synthetic stock level to every product in place.
// Each product first draws a uniform quantity in [1,20]; a second pass then
// zeroes it with 20% probability.
func AssignStock(products []Product, rng Rand) {
	for i := range products {
		products[i].Stock = rng.IntN(maxStock) + 1
	}
	for i := range products {
		if rng.Float64() < outOfStockPercent {
			products[i].Stock = 0
		}
	}
}
