package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shopfront/internal/catalog"
)

// initDetailViewport sizes the product page viewport.
func (m *Model) initDetailViewport() {
	m.detail = viewport.New(m.width, m.bodyHeight())
}

// updateDetailViewport re-renders the product page for the current route.
func (m *Model) updateDetailViewport() {
	if m.route == "" {
		return
	}
	m.detail.Width = m.width
	m.detail.Height = m.bodyHeight()
	m.detail.SetContent(m.renderDetailContent())
}

// renderDetailContent renders the page behind /product/{id}.
func (m Model) renderDetailContent() string {
	styles := m.theme.Styles()
	id, ok := catalog.ParseProductPath(m.route)
	if !ok {
		return styles.DangerText.Render("Unknown route " + m.route)
	}
	p, ok := m.snapshot.Product(id)
	if !ok {
		return styles.DangerText.Render(fmt.Sprintf("Product %d not found", id))
	}

	width := m.width - 4
	if width > 100 {
		width = 100
	}
	if width < 20 {
		width = 20
	}
	wrap := lipgloss.NewStyle().Width(width)
	label := styles.MutedText.Bold(true).Width(10)

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(wrap.Render(p.Title)))
	b.WriteString("\n\n")

	b.WriteString(label.Render("Category") + styles.Text.Render(titleCase(p.Category)) + "\n")
	b.WriteString(label.Render("Price") + styles.Text.Bold(true).Render(catalog.FormatPrice(p.Price)) + "\n")
	b.WriteString(label.Render("Stock") + styles.BadgeStyle(p.Stock).Render(catalog.StockBadge(p.Stock)) + "\n")
	if p.Rating.Count > 0 {
		rating := fmt.Sprintf("★ %.1f (%d reviews)", p.Rating.Rate, p.Rating.Count)
		b.WriteString(label.Render("Rating") + styles.WarningText.Render(rating) + "\n")
	}

	sel := m.snapshot.Selections[p.ID]
	variants := catalog.Variants(p)
	if len(variants.Sizes) > 0 {
		b.WriteString(label.Render("Sizes") + styles.Text.Render(markSelected(variants.Sizes, sel.Size)) + "\n")
	}
	if len(variants.Colors) > 0 {
		b.WriteString(label.Render("Colors") + styles.Text.Render(markSelected(variants.Colors, sel.Color)) + "\n")
	}
	if p.Image != "" {
		b.WriteString(label.Render("Image") + styles.FaintText.Render(p.Image) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Text.Render(wrap.Render(p.Description)))
	b.WriteString("\n")

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// markSelected lists options with the selected one bracketed.
func markSelected(options []string, selected string) string {
	out := make([]string, len(options))
	for i, o := range options {
		if o == selected {
			out[i] = "[" + o + "]"
		} else {
			out[i] = o
		}
	}
	return strings.Join(out, "  ")
}
