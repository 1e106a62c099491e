package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/five82/shopfront/internal/state"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func TestToaster_ExpiresByKind(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	toasts := &Toaster{now: clock.Now}

	toasts.Notify(state.Notification{Kind: state.NotifySuccess, Message: state.MessageAdded})
	toasts.Notify(state.Notification{Kind: state.NotifyFailure, Message: state.MessageOutOfStock})

	if got := len(toasts.Active()); got != 2 {
		t.Fatalf("active = %d, want 2", got)
	}
	wait, ok := toasts.NextExpiry()
	if !ok || wait != successToastTTL {
		t.Fatalf("NextExpiry = (%v, %v), want (%v, true)", wait, ok, successToastTTL)
	}

	clock.now = clock.now.Add(successToastTTL)
	active := toasts.Active()
	if len(active) != 1 || active[0].Kind != state.NotifyFailure {
		t.Fatalf("active after success ttl = %+v, want the failure only", active)
	}

	clock.now = clock.now.Add(failureToastTTL)
	if got := len(toasts.Active()); got != 0 {
		t.Fatalf("active after failure ttl = %d, want 0", got)
	}
	if _, ok := toasts.NextExpiry(); ok {
		t.Fatalf("NextExpiry reported a toast after all expired")
	}
}

func TestToaster_KeepsNewest(t *testing.T) {
	var toasts Toaster
	for i := 0; i < maxToasts+2; i++ {
		toasts.Notify(state.Notification{Message: strings.Repeat("x", i+1)})
	}
	active := toasts.Active()
	if len(active) != maxToasts {
		t.Fatalf("active = %d, want %d", len(active), maxToasts)
	}
	if active[len(active)-1].Message != strings.Repeat("x", maxToasts+2) {
		t.Fatalf("newest toast dropped: %+v", active)
	}
}

func TestOverlayBottomRight(t *testing.T) {
	base := strings.Join([]string{"aaaaaaaaaa", "bbbbbbbbbb", "cccccccccc"}, "\n")
	got := overlayBottomRight(base, "XY\nZW", 10)
	want := strings.Join([]string{"aaaaaaaaaa", "bbbbbbbbXY", "ccccccccZW"}, "\n")
	if got != want {
		t.Fatalf("overlayBottomRight =\n%s\nwant\n%s", got, want)
	}
}

func TestViewRendersToasts(t *testing.T) {
	h := newHarness(t)
	h.toasts.Notify(state.Notification{Kind: state.NotifySuccess, Message: state.MessageAdded})

	if !strings.Contains(h.model.View(), state.MessageAdded) {
		t.Fatalf("view does not show the toast")
	}
}
