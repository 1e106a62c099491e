package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// truncate shortens a string to the given rune limit, adding an ellipsis.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// titleCase capitalizes each space-separated word of a category label.
func titleCase(value string) string {
	words := strings.Fields(value)
	for i, w := range words {
		runes := []rune(w)
		words[i] = strings.ToUpper(string(runes[0])) + string(runes[1:])
	}
	return strings.Join(words, " ")
}

// fitLines cuts or pads a block to exactly n lines.
func fitLines(block string, n int) []string {
	lines := strings.Split(block, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}

// clipLines is fitLines for wrapped prose: trailing padding is trimmed and,
// when lines are dropped, the last kept line ends in "..." within width.
func clipLines(block string, n, width int) []string {
	all := strings.Split(block, "\n")
	lines := fitLines(block, n)
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	if len(all) <= n {
		return lines
	}
	last := lines[n-1]
	if strings.HasSuffix(last, "...") {
		return lines
	}
	for last != "" && lipgloss.Width(last)+3 > width {
		runes := []rune(last)
		last = string(runes[:len(runes)-1])
	}
	lines[n-1] = strings.TrimRight(last, " ") + "..."
	return lines
}

// wrapIndex clamps i into [0, n) by wrapping around.
func wrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}
