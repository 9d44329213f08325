package memory_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"webhook-receiver/internal/model"
	"webhook-receiver/internal/webhook"
	"webhook-receiver/internal/webhook/repository/memory"
)

func storedEvent(eventType string) model.StoredEvent {
	return model.StoredEvent{
		ID:         eventType,
		EventType:  eventType,
		Payload:    json.RawMessage(`{"n":1}`),
		ReceivedAt: time.Now(),
	}
}

func TestRegistry(t *testing.T) {
	t.Run("Register Validates Arguments", func(t *testing.T) {
		r := memory.New()
		if err := r.Register("", []byte("s")); !errors.Is(err, webhook.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument for empty id, got %v", err)
		}
		if err := r.Register("whk_1", nil); !errors.Is(err, webhook.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument for empty secret, got %v", err)
		}
	})

	t.Run("Register Then Lookup", func(t *testing.T) {
		r := memory.New()
		if err := r.Register("whk_1", []byte("s3cr3t")); err != nil {
			t.Fatalf("register failed: %v", err)
		}
		secret, ok := r.Secret("whk_1")
		if !ok || string(secret) != "s3cr3t" {
			t.Errorf("unexpected secret lookup: %q %v", secret, ok)
		}
		if _, ok := r.Secret("whk_2"); ok {
			t.Error("lookup of unregistered id succeeded")
		}
	})

	t.Run("Append To Unknown Id", func(t *testing.T) {
		r := memory.New()
		if err := r.AppendEvent("nope", storedEvent("a")); !errors.Is(err, webhook.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("List In Registration Order", func(t *testing.T) {
		r := memory.New()
		for i := 0; i < 5; i++ {
			if err := r.Register(fmt.Sprintf("whk_%d", i), []byte("s")); err != nil {
				t.Fatalf("register failed: %v", err)
			}
		}
		_ = r.AppendEvent("whk_2", storedEvent("a"))
		_ = r.AppendEvent("whk_2", storedEvent("b"))

		got := r.List()
		if len(got) != 5 {
			t.Fatalf("expected 5 entries, got %d", len(got))
		}
		for i, s := range got {
			if s.ID != fmt.Sprintf("whk_%d", i) {
				t.Errorf("entry %d out of order: %s", i, s.ID)
			}
		}
		if got[2].EventCount != 2 {
			t.Errorf("expected event count 2 for whk_2, got %d", got[2].EventCount)
		}
	})

	t.Run("Events In Append Order", func(t *testing.T) {
		r := memory.New()
		_ = r.Register("whk_1", []byte("s"))
		for i := 0; i < 3; i++ {
			_ = r.AppendEvent("whk_1", storedEvent(fmt.Sprintf("ev%d", i)))
		}
		events, ok := r.EventsOf("whk_1")
		if !ok {
			t.Fatal("events lookup failed")
		}
		for i, ev := range events {
			if ev.EventType != fmt.Sprintf("ev%d", i) {
				t.Errorf("event %d out of order: %s", i, ev.EventType)
			}
		}
		if _, ok := r.EventsOf("nope"); ok {
			t.Error("events lookup of unregistered id succeeded")
		}
	})

	t.Run("Reregister Resets Event Log", func(t *testing.T) {
		r := memory.New()
		_ = r.Register("whk_1", []byte("old"))
		_ = r.AppendEvent("whk_1", storedEvent("a"))

		if err := r.Register("whk_1", []byte("new")); err != nil {
			t.Fatalf("re-register failed: %v", err)
		}
		secret, _ := r.Secret("whk_1")
		if string(secret) != "new" {
			t.Errorf("secret not rotated: %q", secret)
		}
		events, _ := r.EventsOf("whk_1")
		if len(events) != 0 {
			t.Errorf("expected empty log after re-register, got %d events", len(events))
		}
		if got := r.List(); len(got) != 1 {
			t.Errorf("re-register duplicated the listing: %v", got)
		}
	})

	t.Run("Concurrent Appends Lose Nothing", func(t *testing.T) {
		r := memory.New()
		_ = r.Register("whk_a", []byte("s"))
		_ = r.Register("whk_b", []byte("s"))

		const n = 100
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(2)
			go func(i int) {
				defer wg.Done()
				_ = r.AppendEvent("whk_a", storedEvent(fmt.Sprintf("a%d", i)))
			}(i)
			go func(i int) {
				defer wg.Done()
				_ = r.AppendEvent("whk_b", storedEvent(fmt.Sprintf("b%d", i)))
			}(i)
		}
		wg.Wait()

		for _, id := range []string{"whk_a", "whk_b"} {
			events, _ := r.EventsOf(id)
			if len(events) != n {
				t.Errorf("%s: expected %d events, got %d", id, n, len(events))
			}
		}
	})
}
