package widgets

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestBroadcastHookFansOut(t *testing.T) {
	hook := NewBroadcastHook()
	events, cancel := hook.Subscribe()
	defer cancel()

	if err := hook.WidgetUpdated(context.Background(), WidgetEvent{Reason: "create"}); err != nil {
		t.Fatalf("WidgetUpdated returned error: %v", err)
	}

	select {
	case event := <-events:
		if event.Reason != "create" {
			t.Fatalf("expected create event, got %q", event.Reason)
		}
	case <-time.After(time.Second):
		t.Fatalf("expected event delivery")
	}
}

func TestBroadcastHookCancelClosesChannel(t *testing.T) {
	hook := NewBroadcastHook()
	events, cancel := hook.Subscribe()
	cancel()
	cancel() // double cancel is safe

	if _, ok := <-events; ok {
		t.Fatalf("expected closed channel after cancel")
	}
	if err := hook.WidgetUpdated(context.Background(), WidgetEvent{Reason: "update"}); err != nil {
		t.Fatalf("WidgetUpdated returned error: %v", err)
	}
}

func TestBroadcastHookNeverBlocksOnSlowSubscribers(t *testing.T) {
	hook := NewBroadcastHook()
	_, cancel := hook.Subscribe()
	defer cancel()

	// Overfill the buffered channel; mutations must still return.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 32; i++ {
			_ = hook.WidgetUpdated(context.Background(), WidgetEvent{Reason: "reorder"})
		}
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("broadcast blocked on slow subscriber")
	}
}

func TestWidgetEventSerializesReason(t *testing.T) {
	raw, err := json.MarshalToString(WidgetEvent{Page: PageCustomers, Reason: "pin"})
	if err != nil {
		t.Fatalf("marshal returned error: %v", err)
	}
	if !strings.Contains(raw, `"reason":"pin"`) || !strings.Contains(raw, `"page":"customers"`) {
		t.Fatalf("unexpected payload %s", raw)
	}
}
