package catalog

import "strings"

// VariantKind names a selectable product attribute.
type VariantKind string

const (
	VariantSize  VariantKind = "size"
	VariantColor VariantKind = "color"
)

// VariantOptions lists the size and color labels offered for a product.
// Either list may be empty.
type VariantOptions struct {
	Sizes  []string
	Colors []string
}

// Options returns the labels for the given kind.
func (v VariantOptions) Options(kind VariantKind) []string {
	switch kind {
	case VariantSize:
		return v.Sizes
	case VariantColor:
		return v.Colors
	default:
		return nil
	}
}

var (
	clothingVariants = VariantOptions{
		Sizes:  []string{"XS", "S", "M", "L", "XL", "XXL"},
		Colors: []string{"Black", "White", "Navy", "Gray", "Red"},
	}
	electronicsVariants = VariantOptions{
		Sizes:  []string{"128GB", "256GB", "512GB"},
		Colors: []string{"Black", "White", "Silver", "Gold"},
	}
	jeweleryVariants = VariantOptions{
		Sizes:  []string{"Small", "Medium", "Large"},
		Colors: []string{"Gold", "Silver", "Rose Gold"},
	}
)

// Variants returns the variant labels for a product's category. Unknown
// categories get no variants.
func Variants(p Product) VariantOptions {
	switch p.Category {
	case CategoryMens, CategoryWomens:
		return cloneVariants(clothingVariants)
	case CategoryElectronics:
		return cloneVariants(electronicsVariants)
	case CategoryJewelery:
		return cloneVariants(jeweleryVariants)
	default:
		return VariantOptions{}
	}
}

func cloneVariants(v VariantOptions) VariantOptions {
	return VariantOptions{
		Sizes:  append([]string(nil), v.Sizes...),
		Colors: append([]string(nil), v.Colors...),
	}
}

const fallbackColorHex = "#CCCCCC"

var colorHex = map[string]string{
	"Black":     "#000000",
	"White":     "#FFFFFF",
	"Navy":      "#001f3f",
	"Gray":      "#808080",
	"Red":       "#FF4136",
	"Silver":    "#DDDDDD",
	"Gold":      "#FFD700",
	"Rose Gold": "#E8B4B8",
}

// ColorHex maps a color label to its swatch color. Display only.
func ColorHex(name string) string {
	if hex, ok := colorHex[strings.TrimSpace(name)]; ok {
		return hex
	}
	return fallbackColorHex
}
