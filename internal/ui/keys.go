package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the storefront.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Back       key.Binding

	// Filters
	ShowAll     key.Binding
	Mens        key.Binding
	Womens      key.Binding
	Jewelery    key.Binding
	Electronics key.Binding
	InStock     key.Binding
	OutOfStock  key.Binding

	// Grid navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Card actions
	NextSize  key.Binding
	PrevSize  key.Binding
	NextColor key.Binding
	PrevColor key.Binding
	AddToCart key.Binding
	View      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back to products"),
		),

		ShowAll: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "All"),
		),
		Mens: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Men's Clothing"),
		),
		Womens: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Women's Clothing"),
		),
		Jewelery: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Jewelery"),
		),
		Electronics: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "Electronics"),
		),
		InStock: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "In Stock Only"),
		),
		OutOfStock: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Out of Stock"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "Move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "Move right"),
		),

		NextSize: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "Next size"),
		),
		PrevSize: key.NewBinding(
			key.WithKeys("Z"),
			key.WithHelp("Z", "Previous size"),
		),
		NextColor: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Next color"),
		),
		PrevColor: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "Previous color"),
		),
		AddToCart: key.NewBinding(
			key.WithKeys("a", "enter"),
			key.WithHelp("a", "Add to cart"),
		),
		View: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "View product"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddToCart, k.NextSize, k.NextColor, k.View, k.CycleTheme, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ShowAll, k.Mens, k.Womens, k.Jewelery, k.Electronics, k.InStock, k.OutOfStock},
		{k.Up, k.Down, k.Left, k.Right},
		{k.NextSize, k.PrevSize, k.NextColor, k.PrevColor, k.AddToCart, k.View},
		{k.Back, k.CycleTheme, k.Help, k.Quit},
	}
}
