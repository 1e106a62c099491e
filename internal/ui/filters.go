package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shopfront/internal/catalog"
	"github.com/five82/shopfront/internal/state"
)

// filterKind identifies a filter control. It is only used to highlight the
// last pressed control; the store keeps no record of which filter produced
// the displayed set.
type filterKind int

const (
	filterAll filterKind = iota
	filterMens
	filterWomens
	filterJewelery
	filterElectronics
	filterInStock
	filterOutOfStock
)

type filterControl struct {
	kind  filterKind
	key   string
	label string
}

var filterControls = []filterControl{
	{filterAll, "0", "All"},
	{filterMens, "1", "Men's Clothing"},
	{filterWomens, "2", "Women's Clothing"},
	{filterJewelery, "3", "Jewelery"},
	{filterElectronics, "4", "Electronics"},
	{filterInStock, "s", "In Stock Only"},
	{filterOutOfStock, "o", "Out of Stock"},
}

var categoryFilters = map[filterKind]string{
	filterMens:        catalog.CategoryMens,
	filterWomens:      catalog.CategoryWomens,
	filterJewelery:    catalog.CategoryJewelery,
	filterElectronics: catalog.CategoryElectronics,
}

// applyFilter replaces the store's displayed set for kind.
func applyFilter(store *state.Store, kind filterKind) {
	switch kind {
	case filterInStock:
		store.FilterInStock()
	case filterOutOfStock:
		store.FilterOutOfStock()
	case filterAll:
		store.ShowAll()
	default:
		store.FilterCategory(categoryFilters[kind])
	}
}

// renderFilterBar renders the filter buttons.
func (m Model) renderFilterBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	bg := NewBgStyle(m.theme.Background)

	segments := make([]string, 0, len(filterControls))
	for _, c := range filterControls {
		keyStyle := styles.AccentText
		labelStyle := styles.MutedText
		switch c.kind {
		case filterInStock:
			labelStyle = styles.SuccessText.Bold(false)
		case filterOutOfStock:
			labelStyle = styles.DangerText.Bold(false)
		}
		if c.kind == m.lastFilter {
			segments = append(segments, styles.Selected.Render(" "+c.key+" "+c.label+" "))
			continue
		}
		segments = append(segments, bg.Render(" "+c.key, keyStyle)+bg.Space()+bg.Render(c.label+" ", labelStyle))
	}

	bar := bg.Join(segments, " ")
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, bar,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.Background)))
}
