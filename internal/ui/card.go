package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shopfront/internal/catalog"
	"github.com/five82/shopfront/internal/state"
)

const (
	titleLines   = 2
	excerptLines = 3
	// border + title + excerpt + spacer + price + badge + size + color + button
	cardHeight = 2 + titleLines + excerptLines + 1 + 1 + 1 + 1 + 1 + 1
	swatch     = "●"
)

// renderCard draws one product card at the given outer width.
func (m Model) renderCard(p catalog.Product, sel state.Selection, width int, focused bool) string {
	inner := width - 4 // border + padding
	if inner < 8 {
		inner = 8
	}

	cardBg := m.theme.Surface
	border := m.theme.Border
	if focused {
		cardBg = m.theme.FocusBg
		border = m.theme.BorderFocus
	}
	styles := m.theme.Styles().WithBackground(cardBg)
	bg := NewBgStyle(cardBg)

	dimmed := !p.InStock()
	titleStyle := styles.Text.Bold(true)
	bodyStyle := styles.MutedText
	priceStyle := styles.Text.Bold(true)
	if dimmed {
		titleStyle = styles.FaintText
		bodyStyle = styles.FaintText
		priceStyle = styles.FaintText.Bold(true)
	}

	var lines []string
	wrap := lipgloss.NewStyle().Width(inner)
	for _, l := range fitLines(wrap.Render(p.Title), titleLines) {
		lines = append(lines, bg.Render(truncate(l, inner), titleStyle))
	}
	for _, l := range clipLines(wrap.Render(catalog.Excerpt(p.Description)), excerptLines, inner) {
		lines = append(lines, bg.Render(l, bodyStyle))
	}
	lines = append(lines, "")

	lines = append(lines, alignRight(bg, bg.Render(catalog.FormatPrice(p.Price), priceStyle), inner))
	lines = append(lines, alignRight(bg, styles.BadgeStyle(p.Stock).Render(catalog.StockBadge(p.Stock)), inner))

	variants := catalog.Variants(p)
	if len(variants.Sizes) > 0 {
		lines = append(lines, m.sizeRow(variants.Sizes, sel.Size, dimmed, styles, bg))
	}
	if len(variants.Colors) > 0 {
		lines = append(lines, m.colorRow(variants.Colors, sel.Color, dimmed, styles, bg, inner))
	}
	for len(lines) < cardHeight-3 {
		lines = append(lines, "")
	}
	lines = append(lines, alignRight(bg, m.cartButton(p, focused), inner))

	for i, l := range lines {
		lines[i] = bg.FillLine(l, inner)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		BorderBackground(lipgloss.Color(m.theme.Background)).
		Background(lipgloss.Color(cardBg)).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
}

func (m Model) sizeRow(sizes []string, selected string, dimmed bool, styles Styles, bg BgStyle) string {
	chips := make([]string, 0, len(sizes))
	for _, size := range sizes {
		switch {
		case dimmed:
			chips = append(chips, bg.Render(size, styles.FaintText))
		case size == selected:
			chips = append(chips, styles.Selected.Render(size))
		default:
			chips = append(chips, bg.Render(size, styles.Text))
		}
	}
	label := styles.MutedText.Bold(true)
	if dimmed {
		label = styles.FaintText
	}
	return bg.Render("Size", label) + bg.Space() + bg.Join(chips, " ")
}

func (m Model) colorRow(colors []string, selected string, dimmed bool, styles Styles, bg BgStyle, inner int) string {
	swatches := make([]string, 0, len(colors))
	for _, color := range colors {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(catalog.ColorHex(color)))
		if dimmed {
			style = styles.FaintText
		}
		mark := swatch
		if color == selected && !dimmed {
			mark = "◉"
		}
		swatches = append(swatches, bg.Render(mark, style))
	}
	label := styles.MutedText.Bold(true)
	if dimmed {
		label = styles.FaintText
	}
	row := bg.Render("Color", label) + bg.Space() + bg.Join(swatches, " ")
	if selected != "" && !dimmed {
		name := bg.Render(selected, styles.Text)
		if lipgloss.Width(row)+2+lipgloss.Width(name) <= inner {
			row += bg.Spaces(2) + name
		}
	}
	return row
}

func (m Model) cartButton(p catalog.Product, focused bool) string {
	style := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	if !p.InStock() {
		return style.
			Background(lipgloss.Color(m.theme.SurfaceAlt)).
			Foreground(lipgloss.Color(m.theme.Faint)).
			Render("Out of Stock")
	}
	bgColor := m.theme.SurfaceAlt
	fgColor := m.theme.Text
	if focused {
		bgColor = m.theme.Accent
		fgColor = m.theme.Background
	}
	return style.
		Background(lipgloss.Color(bgColor)).
		Foreground(lipgloss.Color(fgColor)).
		Render("Add to cart")
}

func alignRight(bg BgStyle, content string, width int) string {
	pad := width - lipgloss.Width(content)
	return bg.Spaces(pad) + content
}

// renderSkeletonCard draws a placeholder card while the catalog loads.
func (m Model) renderSkeletonCard(width int) string {
	inner := width - 4
	if inner < 8 {
		inner = 8
	}
	block := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SurfaceAlt)).Background(lipgloss.Color(m.theme.Surface))
	bg := NewBgStyle(m.theme.Surface)

	widths := []int{inner, inner * 2 / 3, 0, inner, inner, inner / 2, 0, inner / 3, inner / 4}
	lines := make([]string, 0, cardHeight-2)
	for _, w := range widths {
		lines = append(lines, bg.FillLine(block.Render(strings.Repeat("░", w)), inner))
	}
	for len(lines) < cardHeight-2 {
		lines = append(lines, bg.FillLine("", inner))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderMuted)).
		BorderBackground(lipgloss.Color(m.theme.Background)).
		Background(lipgloss.Color(m.theme.Surface)).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
}
