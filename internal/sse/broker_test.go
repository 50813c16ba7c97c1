package sse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestSubscribeUnsubscribe(t *testing.T) {
	b := NewBroker(100 * time.Millisecond)
	defer b.Close()
	if b.ClientCount() != 0 {
		t.Fatalf("expected 0 clients")
	}
	ch := b.Subscribe()
	if b.ClientCount() != 1 {
		t.Fatalf("expected 1 client")
	}
	b.Unsubscribe(ch)
	if b.ClientCount() != 0 {
		t.Fatalf("expected 0 clients after unsub")
	}
}

func TestPublishDelivery(t *testing.T) {
	b := NewBroker(100 * time.Millisecond)
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	b.Publish(Event{Type: "contacts.updated", Data: map[string]string{"filter": "all persons"}})

	select {
	case msg := <-ch:
		s := string(msg)
		if !strings.Contains(s, "event: contacts.updated") {
			t.Errorf("missing event type in %q", s)
		}
		if !strings.Contains(s, `"filter":"all persons"`) {
			t.Errorf("missing data in %q", s)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for message")
	}
}

// drain counts buffered messages by event type.
func drain(ch chan []byte) map[string]int {
	counts := make(map[string]int)
	for {
		select {
		case msg := <-ch:
			line, _, _ := strings.Cut(string(msg), "\n")
			counts[strings.TrimPrefix(line, "event: ")]++
		default:
			return counts
		}
	}
}

func TestPublishCommand_RefreshThrottle(t *testing.T) {
	b := NewBroker(500 * time.Millisecond)
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	// First mutation triggers contacts.updated.
	b.PublishCommand("addtag 1 t/vip", true, true)
	// Second one immediately after is throttled.
	b.PublishCommand("deletetag 1 t/vip", true, true)
	// Read-only commands never refresh.
	b.PublishCommand("list", true, false)

	time.Sleep(50 * time.Millisecond)
	counts := drain(ch)

	if counts[TypeCommandExecuted] != 3 {
		t.Errorf("command events = %d, want 3", counts[TypeCommandExecuted])
	}
	if counts[TypeContactsUpdated] != 1 {
		t.Errorf("refresh events = %d, want 1 (throttled)", counts[TypeContactsUpdated])
	}
}

func TestPublishReload(t *testing.T) {
	b := NewBroker(time.Millisecond)
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	b.PublishReload(5)
	time.Sleep(50 * time.Millisecond)
	counts := drain(ch)

	if counts[TypeBookReloaded] != 1 || counts[TypeContactsUpdated] != 1 {
		t.Errorf("counts = %v", counts)
	}
}

func TestSSEHandler(t *testing.T) {
	b := NewBroker(100 * time.Millisecond)
	defer b.Close()

	// Start handler in background.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		b.ServeHTTP(w, req)
		close(done)
	}()

	// Give handler time to subscribe.
	time.Sleep(50 * time.Millisecond)
	if b.ClientCount() != 1 {
		t.Fatalf("expected 1 client from handler")
	}

	b.Publish(Event{Type: TypeBookReloaded, Data: map[string]int{"contacts": 3}})
	time.Sleep(50 * time.Millisecond)

	// Cancel context to disconnect.
	cancel()
	<-done

	body := w.Body.String()
	if !strings.Contains(body, "event: book.reloaded") {
		t.Errorf("handler output missing event: %q", body)
	}

	// Client should be cleaned up.
	time.Sleep(50 * time.Millisecond)
	if b.ClientCount() != 0 {
		t.Errorf("client not cleaned up after disconnect")
	}
}

func TestPublishDropsOnFullBuffer(t *testing.T) {
	b := NewBroker(time.Second)
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	// Fill buffer (capacity 64) and then one more should not block.
	for i := 0; i < 70; i++ {
		b.Publish(Event{Type: "test", Data: map[string]string{"i": "x"}})
	}
	// If we reach here without deadlock, the test passes.
}

func TestCloseClosesSubscribersAndStopsOperations(t *testing.T) {
	b := NewBroker(100 * time.Millisecond)
	ch := b.Subscribe()
	if b.ClientCount() != 1 {
		t.Fatalf("expected 1 client")
	}

	b.Close()

	select {
	case _, ok := <-ch:
		if ok {
			t.Fatal("expected subscriber channel to be closed")
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for channel close")
	}

	if b.ClientCount() != 0 {
		t.Fatalf("expected 0 clients after close")
	}

	// Should be safe no-op after close.
	b.Publish(Event{Type: TypeBookReloaded, Data: map[string]int{"contacts": 0}})
	b.PublishCommand("list", true, false)
}
