package ui

import (
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shopfront/internal/state"
)

// Toast lifetimes per kind; failures linger longer.
const (
	successToastTTL = 2 * time.Second
	failureToastTTL = 4 * time.Second
	maxToasts       = 3
)

type toast struct {
	state.Notification
	expires time.Time
}

// Toaster collects notifications for display. It implements state.Notifier
// and is safe to call from commands running off the UI goroutine. The zero
// value is ready to use.
type Toaster struct {
	mu     sync.Mutex
	toasts []toast
	now    func() time.Time
}

var _ state.Notifier = (*Toaster)(nil)

// NewToaster returns an empty Toaster using the wall clock.
func NewToaster() *Toaster {
	return &Toaster{now: time.Now}
}

// Notify queues n, evicting the oldest toast beyond the visible limit.
func (t *Toaster) Notify(n state.Notification) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ttl := successToastTTL
	if n.Kind == state.NotifyFailure {
		ttl = failureToastTTL
	}
	t.toasts = append(t.toasts, toast{Notification: n, expires: t.clock().Add(ttl)})
	if len(t.toasts) > maxToasts {
		t.toasts = append([]toast(nil), t.toasts[len(t.toasts)-maxToasts:]...)
	}
}

// Active drops expired toasts and returns the rest, oldest first.
func (t *Toaster) Active() []state.Notification {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock()
	kept := t.toasts[:0]
	for _, item := range t.toasts {
		if now.Before(item.expires) {
			kept = append(kept, item)
		}
	}
	t.toasts = kept

	out := make([]state.Notification, len(kept))
	for i, item := range kept {
		out[i] = item.Notification
	}
	return out
}

// NextExpiry reports how long until the next live toast expires.
func (t *Toaster) NextExpiry() (time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock()
	var next time.Time
	for _, item := range t.toasts {
		if !item.expires.After(now) {
			continue
		}
		if next.IsZero() || item.expires.Before(next) {
			next = item.expires
		}
	}
	if next.IsZero() {
		return 0, false
	}
	return next.Sub(now), true
}

func (t *Toaster) clock() time.Time {
	if t.now == nil {
		return time.Now()
	}
	return t.now()
}

// renderToasts stacks the active toasts, right aligned.
func (m Model) renderToasts() string {
	if m.toasts == nil {
		return ""
	}
	active := m.toasts.Active()
	if len(active) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(active))
	for _, n := range active {
		icon, color := "✓", m.theme.Success
		if n.Kind == state.NotifyFailure {
			icon, color = "✗", m.theme.Danger
		}
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(color)).
			Background(lipgloss.Color(m.theme.Surface)).
			Foreground(lipgloss.Color(m.theme.Text)).
			Padding(0, 1)
		icons := lipgloss.NewStyle().
			Foreground(lipgloss.Color(color)).
			Background(lipgloss.Color(m.theme.Surface)).
			Bold(true)
		bg := NewBgStyle(m.theme.Surface)
		rendered = append(rendered, box.Render(icons.Render(icon)+bg.Space()+bg.Render(n.Message, lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Text)))))
	}
	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}

// overlayBottomRight replaces the bottom-right corner of base with overlay.
func overlayBottomRight(base, overlay string, width int) string {
	if overlay == "" {
		return base
	}
	baseLines := strings.Split(base, "\n")
	overLines := strings.Split(overlay, "\n")
	overWidth := lipgloss.Width(overlay)
	if overWidth >= width {
		overWidth = width
	}

	start := len(baseLines) - len(overLines)
	if start < 0 {
		start = 0
	}
	for i, line := range overLines {
		idx := start + i
		if idx >= len(baseLines) {
			break
		}
		pad := width - lipgloss.Width(line)
		if pad < 0 {
			pad = 0
		}
		left := truncateVisible(baseLines[idx], pad)
		baseLines[idx] = left + line
	}
	return strings.Join(baseLines, "\n")
}

// truncateVisible keeps the first n visible cells of a styled line, padding
// with spaces when the line is shorter.
func truncateVisible(line string, n int) string {
	if n <= 0 {
		return ""
	}
	if w := lipgloss.Width(line); w <= n {
		return line + strings.Repeat(" ", n-w)
	}
	return lipgloss.NewStyle().MaxWidth(n).Render(line)
}
