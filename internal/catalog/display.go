package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	excerptRunes  = 90
	lowStockLimit = 5
	productRoute  = "/product/"
)

// ProductPath returns the router target for a product detail page.
func ProductPath(id int64) string {
	return productRoute + strconv.FormatInt(id, 10)
}

// ParseProductPath extracts the product id from a /product/{id} path.
func ParseProductPath(path string) (int64, bool) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(path), productRoute)
	if !ok || rest == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Excerpt returns the first 90 characters of a description followed by an
// ellipsis. The ellipsis is always appended, even for short descriptions.
func Excerpt(description string) string {
	runes := []rune(description)
	if len(runes) > excerptRunes {
		runes = runes[:excerptRunes]
	}
	return string(runes) + "..."
}

// FormatPrice renders a price the way product cards show it.
func FormatPrice(price float64) string {
	return "$ " + strconv.FormatFloat(price, 'f', -1, 64)
}

// StockLevel classifies a stock quantity for badge rendering.
type StockLevel int

const (
	StockOut StockLevel = iota
	StockLow
	StockAvailable
)

// LevelFor returns the badge level for a stock quantity.
func LevelFor(stock int) StockLevel {
	switch {
	case stock <= 0:
		return StockOut
	case stock <= lowStockLimit:
		return StockLow
	default:
		return StockAvailable
	}
}

// StockBadge returns the badge label for a stock quantity.
func StockBadge(stock int) string {
	switch LevelFor(stock) {
	case StockOut:
		return "Out of Stock"
	case StockLow:
		return fmt.Sprintf("Only %d left", stock)
	default:
		return fmt.Sprintf("In Stock (%d)", stock)
	}
}
