package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shopfront/internal/catalog"
	"github.com/five82/shopfront/internal/state"
)

// summaryLine describes the displayed set relative to the full set.
func summaryLine(s state.Snapshot) string {
	shown := len(s.Displayed)

	var b strings.Builder
	fmt.Fprintf(&b, "Showing %d products", shown)
	if shown != len(s.Products) {
		fmt.Fprintf(&b, " of %d total", len(s.Products))
	}
	inStock, outOfStock := catalog.CountInStock(s.Displayed)
	fmt.Fprintf(&b, " • %d in stock", inStock)
	if outOfStock > 0 {
		fmt.Fprintf(&b, ", %d out of stock", outOfStock)
	}
	return b.String()
}

// cartLabel shows the cart's unit count and, once it has items, its value.
func cartLabel(count int, total float64) string {
	label := fmt.Sprintf("Cart (%d items)", count)
	if count == 1 {
		label = "Cart (1 item)"
	}
	if count > 0 {
		label += " " + catalog.FormatPrice(math.Round(total*100)/100)
	}
	return label
}

// renderHeader renders the title bar and the summary line.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	left := []string{
		bg.Render("shopfront", styles.Logo),
		bg.Render("Latest Products", styles.Text.Bold(true)),
	}
	if m.route != "" {
		left = append(left, bg.Render(m.route, styles.AccentText))
	}
	right := bg.Render(cartLabel(m.cartCount, m.cartTotal), styles.AccentText)

	leftText := bg.Join(left, "  ")
	gap := m.width - 2 - lipgloss.Width(leftText) - lipgloss.Width(right)
	title := styles.Header.Width(m.width).Render(leftText + bg.Spaces(gap) + right)

	var summary string
	if m.snapshot.Loaded {
		summary = summaryLine(m.snapshot)
	} else {
		summary = m.spinner.View() + " Loading products..."
	}
	sub := lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
		m.theme.Styles().WithBackground(m.theme.Background).MutedText.Render(summary),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.Background)))

	return title + "\n" + sub
}
