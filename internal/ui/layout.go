package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	skeletonCards = 6
	cardGap       = 1
	// minCardWidth is the narrowest card the automatic layout produces; it
	// fits the widest size row and three lines of excerpt.
	minCardWidth = 37
)

// columnsFor returns the grid column count for a terminal width. A pinned
// value from preferences wins as long as cards stay at least minCardWidth
// wide; otherwise it is lowered until they do.
func columnsFor(width, pinned int) int {
	if pinned > 0 {
		for pinned > 1 && cardWidthFor(width, pinned) < minCardWidth {
			pinned--
		}
		return pinned
	}
	switch {
	case width >= 152:
		return 4
	case width >= 114:
		return 3
	case width >= 76:
		return 2
	default:
		return 1
	}
}

func cardWidthFor(width, cols int) int {
	w := (width - (cols-1)*cardGap) / cols
	if w < 12 {
		w = 12
	}
	return w
}

// visibleRows returns the first row to draw and how many rows fit in height
// while keeping focusRow on screen.
func visibleRows(height, totalRows, focusRow int) (first, count int) {
	count = height / cardHeight
	if count < 1 {
		count = 1
	}
	if count > totalRows {
		count = totalRows
	}
	if focusRow >= count {
		first = focusRow - count + 1
	}
	return first, count
}

// renderGrid draws the displayed products as card rows.
func (m Model) renderGrid(height int) string {
	products := m.snapshot.Displayed
	if len(products) == 0 {
		styles := m.theme.Styles()
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
			styles.MutedText.Render("No products match this filter."))
	}

	cols := columnsFor(m.width, m.columns)
	width := cardWidthFor(m.width, cols)
	totalRows := (len(products) + cols - 1) / cols
	first, count := visibleRows(height, totalRows, m.focus/cols)

	rows := make([]string, 0, count)
	for r := first; r < first+count; r++ {
		cards := make([]string, 0, cols*2)
		for c := 0; c < cols; c++ {
			idx := r*cols + c
			if idx >= len(products) {
				break
			}
			if c > 0 {
				cards = append(cards, strings.Repeat(" ", cardGap))
			}
			p := products[idx]
			cards = append(cards, m.renderCard(p, m.snapshot.Selections[p.ID], width, idx == m.focus))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderSkeleton draws placeholder cards while products load.
func (m Model) renderSkeleton(height int) string {
	cols := columnsFor(m.width, m.columns)
	width := cardWidthFor(m.width, cols)
	_, count := visibleRows(height, (skeletonCards+cols-1)/cols, 0)

	card := m.renderSkeletonCard(width)
	rows := make([]string, 0, count)
	for r := 0; r < count; r++ {
		cards := make([]string, 0, cols*2)
		for c := 0; c < cols && r*cols+c < skeletonCards; c++ {
			if c > 0 {
				cards = append(cards, strings.Repeat(" ", cardGap))
			}
			cards = append(cards, card)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
