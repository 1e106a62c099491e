package ui

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shopfront/internal/cart"
	"github.com/five82/shopfront/internal/catalog"
	"github.com/five82/shopfront/internal/prefs"
	"github.com/five82/shopfront/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Loader    *state.Loader
	Basket    *state.Basket
	Cart      cart.Reader
	Toasts    *Toaster
	ThemeName string
	Columns   int // zero follows the terminal width
	PrefsPath string
	Logger    *slog.Logger

	// CartRefresh re-reads the cart count on this cadence so a shared cart
	// session reflects additions from elsewhere. Zero disables it.
	CartRefresh time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	store     *state.Store
	loader    *state.Loader
	mount     *state.Mount
	basket    *state.Basket
	cart      cart.Reader
	toasts    *Toaster
	prefsPath string
	logger    *slog.Logger

	cartRefresh time.Duration

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	detail  viewport.Model

	theme   Theme
	columns int
	width   int
	height  int
	ready   bool

	snapshot   state.Snapshot
	cartCount  int
	cartTotal  float64
	focus      int // index into snapshot.Displayed
	lastFilter filterKind
	route      string // "" for the grid, otherwise /product/{id}
	showHelp   bool
}

// New creates a new Bubble Tea model. A mount token is taken from the loader
// immediately; it is released when the program quits.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}
	toasts := opts.Toasts
	if toasts == nil {
		toasts = NewToaster()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	var mount *state.Mount
	if opts.Loader != nil {
		mount = opts.Loader.Mount()
	}

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		ctx:       ctx,
		store:     store,
		loader:    opts.Loader,
		mount:     mount,
		basket:    opts.Basket,
		cart:      opts.Cart,
		toasts:    toasts,
		prefsPath: prefsPath,
		logger:    logger,

		cartRefresh: opts.CartRefresh,

		keys:     DefaultKeyMap(),
		help:     help.New(),
		spinner:  spin,
		theme:    GetTheme(opts.ThemeName),
		columns:  opts.Columns,
		snapshot: store.Snapshot(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.loader != nil {
		cmds = append(cmds, loadCmd(m.ctx, m.loader, m.mount))
	}
	if m.cart != nil {
		cmds = append(cmds, cartCountCmd(m.ctx, m.cart))
		if m.cartRefresh > 0 {
			cmds = append(cmds, cartTickCmd(m.cartRefresh))
		}
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initDetailViewport()
		}
		m.ready = true
		m.updateDetailViewport()
		return m, nil

	case spinner.TickMsg:
		if m.snapshot.Loaded {
			return m, nil
		}
		// Keeps spinning while the first load is pending, including after
		// a failed fetch.
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadDoneMsg:
		m.refresh()
		return m, nil

	case addResultMsg:
		if msg.err != nil && !errors.Is(msg.err, state.ErrOutOfStock) {
			m.logger.Warn("add to cart failed", slog.Int64("product_id", msg.productID), slog.Any("error", msg.err))
		}
		cmds := []tea.Cmd{toastExpiryCmd(m.toasts)}
		if m.cart != nil {
			cmds = append(cmds, cartCountCmd(m.ctx, m.cart))
		}
		m.refresh()
		return m, tea.Batch(cmds...)

	case cartCountMsg:
		if msg.err != nil {
			m.logger.Warn("read cart failed", slog.Any("error", msg.err))
			return m, nil
		}
		m.cartCount = msg.count
		m.cartTotal = msg.total
		return m, nil

	case toastExpiryMsg:
		return m, toastExpiryCmd(m.toasts)

	case cartTickMsg:
		if m.cart == nil || m.cartRefresh <= 0 {
			return m, nil
		}
		return m, tea.Batch(cartCountCmd(m.ctx, m.cart), cartTickCmd(m.cartRefresh))
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.mount.Unmount()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Columns: m.columns}); err != nil {
			m.logger.Warn("save prefs failed", slog.Any("error", err))
		}
		m.updateDetailViewport()
		return m, nil

	case key.Matches(msg, m.keys.AddToCart):
		return m, m.addFocused()

	case key.Matches(msg, m.keys.NextSize):
		m.cycleVariant(catalog.VariantSize, 1)
		return m, nil
	case key.Matches(msg, m.keys.PrevSize):
		m.cycleVariant(catalog.VariantSize, -1)
		return m, nil
	case key.Matches(msg, m.keys.NextColor):
		m.cycleVariant(catalog.VariantColor, 1)
		return m, nil
	case key.Matches(msg, m.keys.PrevColor):
		m.cycleVariant(catalog.VariantColor, -1)
		return m, nil
	}

	if m.route != "" {
		return m.handleDetailKey(msg)
	}
	return m.handleGridKey(msg)
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		m.route = ""
		return m, nil
	}
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	filters := []struct {
		binding key.Binding
		kind    filterKind
	}{
		{m.keys.ShowAll, filterAll},
		{m.keys.Mens, filterMens},
		{m.keys.Womens, filterWomens},
		{m.keys.Jewelery, filterJewelery},
		{m.keys.Electronics, filterElectronics},
		{m.keys.InStock, filterInStock},
		{m.keys.OutOfStock, filterOutOfStock},
	}
	for _, f := range filters {
		if key.Matches(msg, f.binding) {
			applyFilter(m.store, f.kind)
			m.lastFilter = f.kind
			m.focus = 0
			m.refresh()
			return m, nil
		}
	}

	cols := columnsFor(m.width, m.columns)
	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-cols)
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(cols)
	case key.Matches(msg, m.keys.View):
		if p, ok := m.focusedProduct(); ok {
			m.route = catalog.ProductPath(p.ID)
			m.updateDetailViewport()
			m.detail.GotoTop()
		}
	}
	return m, nil
}

func (m *Model) moveFocus(delta int) {
	next := m.focus + delta
	if next < 0 || next >= len(m.snapshot.Displayed) {
		return
	}
	m.focus = next
}

// focusedProduct returns the product on the current route, or the focused
// grid card.
func (m Model) focusedProduct() (catalog.Product, bool) {
	if m.route != "" {
		id, ok := catalog.ParseProductPath(m.route)
		if !ok {
			return catalog.Product{}, false
		}
		return m.snapshot.Product(id)
	}
	if m.focus < 0 || m.focus >= len(m.snapshot.Displayed) {
		return catalog.Product{}, false
	}
	return m.snapshot.Displayed[m.focus], true
}

// cycleVariant steps the focused product's selection through its options.
// The store ignores the change for out-of-stock products.
func (m *Model) cycleVariant(kind catalog.VariantKind, delta int) {
	p, ok := m.focusedProduct()
	if !ok {
		return
	}
	options := catalog.Variants(p).Options(kind)
	if len(options) == 0 {
		return
	}

	next := 0
	current := slices.Index(options, m.snapshot.Selections[p.ID].Value(kind))
	switch {
	case current >= 0:
		next = wrapIndex(current+delta, len(options))
	case delta < 0:
		next = len(options) - 1
	}
	if m.store.SelectVariant(p.ID, kind, options[next]) {
		m.refresh()
	}
}

func (m Model) addFocused() tea.Cmd {
	if m.basket == nil {
		return nil
	}
	p, ok := m.focusedProduct()
	if !ok {
		return nil
	}
	return addToCartCmd(m.ctx, m.basket, p.ID)
}

// refresh pulls a fresh snapshot and keeps focus in range.
func (m *Model) refresh() {
	m.snapshot = m.store.Snapshot()
	if m.focus >= len(m.snapshot.Displayed) {
		m.focus = max(0, len(m.snapshot.Displayed)-1)
	}
	m.updateDetailViewport()
}

// bodyHeight is the space left under the header and filter bar and above
// the footer.
func (m Model) bodyHeight() int {
	return max(1, m.height-4)
}

func (m Model) renderMain() string {
	height := m.bodyHeight()

	var body string
	switch {
	case m.route != "":
		body = m.detail.View()
	case !m.snapshot.Loaded:
		body = m.renderSkeleton(height)
	default:
		body = m.renderGrid(height)
	}
	body = lipgloss.NewStyle().
		Width(m.width).
		Height(height).
		MaxHeight(height).
		Render(body)

	screen := lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), m.renderFilterBar(), body)
	screen = overlayBottomRight(screen, m.renderToasts(), m.width)
	return screen + "\n" + m.renderFooter()
}

// Messages

type loadDoneMsg struct{ err error }

type addResultMsg struct {
	productID int64
	line      state.CartLine
	err       error
}

type cartCountMsg struct {
	count int
	total float64
	err   error
}

type toastExpiryMsg struct{}

type cartTickMsg time.Time

// Commands

func loadCmd(ctx context.Context, loader *state.Loader, mount *state.Mount) tea.Cmd {
	return func() tea.Msg {
		return loadDoneMsg{err: loader.Load(ctx, mount)}
	}
}

func addToCartCmd(ctx context.Context, basket *state.Basket, productID int64) tea.Cmd {
	return func() tea.Msg {
		line, err := basket.Add(ctx, productID)
		return addResultMsg{productID: productID, line: line, err: err}
	}
}

func cartCountCmd(ctx context.Context, reader cart.Reader) tea.Cmd {
	return func() tea.Msg {
		c, err := reader.Cart(ctx)
		if err != nil {
			return cartCountMsg{err: err}
		}
		return cartCountMsg{count: c.ItemCount(), total: c.Total()}
	}
}

func cartTickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return cartTickMsg(t)
	})
}

// toastExpiryCmd wakes the program when the next toast expires so it is
// removed from the screen.
func toastExpiryCmd(toasts *Toaster) tea.Cmd {
	wait, ok := toasts.NextExpiry()
	if !ok {
		return nil
	}
	return tea.Tick(wait+10*time.Millisecond, func(time.Time) tea.Msg {
		return toastExpiryMsg{}
	})
}

// Run starts the Bubble Tea program and releases the mount token on exit.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	m.mount.Unmount()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
