package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"webhook-receiver/internal/webhook"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Arguments", func(t *testing.T) {
		uc, _ := newUseCase(t)
		err := uc.Register(ctx, webhook.RegisterInput{WebhookID: "", Secret: []byte("s")})
		if !errors.Is(err, webhook.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
		err = uc.Register(ctx, webhook.RegisterInput{WebhookID: "whk_1"})
		if !errors.Is(err, webhook.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("Idempotent Listing", func(t *testing.T) {
		uc, _ := newUseCase(t)
		const n = 4
		for i := 0; i < n; i++ {
			if err := uc.Register(ctx, webhook.RegisterInput{
				WebhookID: fmt.Sprintf("whk_%d", i),
				Secret:    []byte("s3cr3t"),
			}); err != nil {
				t.Fatalf("register %d failed: %v", i, err)
			}
		}

		// Admit one event to whk_0; attempt one bad delivery to whk_1.
		payload := []byte(`{"amount":100}`)
		if _, err := uc.Admit(ctx, webhook.AdmitInput{
			WebhookID: "whk_0",
			Signature: sign(t, "s3cr3t", payload),
			EventType: "order.created",
			Payload:   payload,
		}); err != nil {
			t.Fatalf("admission failed: %v", err)
		}
		if _, err := uc.Admit(ctx, webhook.AdmitInput{
			WebhookID: "whk_1",
			Signature: "deadbeef",
			EventType: "order.created",
			Payload:   payload,
		}); !errors.Is(err, webhook.ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}

		list, err := uc.List(ctx)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(list) != n {
			t.Fatalf("expected %d entries, got %d", n, len(list))
		}
		counts := map[string]int{}
		for _, s := range list {
			counts[s.ID] = s.EventCount
		}
		if counts["whk_0"] != 1 {
			t.Errorf("whk_0: expected 1 admitted event, got %d", counts["whk_0"])
		}
		if counts["whk_1"] != 0 {
			t.Errorf("whk_1: attempted delivery counted, got %d", counts["whk_1"])
		}
	})

	t.Run("Reregister Rotates Secret And Resets Log", func(t *testing.T) {
		uc, _ := newUseCase(t)
		payload := []byte(`{"amount":100}`)

		_ = uc.Register(ctx, webhook.RegisterInput{WebhookID: "whk_1", Secret: []byte("old")})
		if _, err := uc.Admit(ctx, webhook.AdmitInput{
			WebhookID: "whk_1",
			Signature: sign(t, "old", payload),
			EventType: "order.created",
			Payload:   payload,
		}); err != nil {
			t.Fatalf("admission failed: %v", err)
		}

		if err := uc.Register(ctx, webhook.RegisterInput{WebhookID: "whk_1", Secret: []byte("new")}); err != nil {
			t.Fatalf("re-register failed: %v", err)
		}

		events, err := uc.Events(ctx, "whk_1")
		if err != nil {
			t.Fatalf("events lookup failed: %v", err)
		}
		if len(events) != 0 {
			t.Errorf("expected empty log after re-register, got %d events", len(events))
		}

		// Old secret no longer admits; new one does.
		if _, err := uc.Admit(ctx, webhook.AdmitInput{
			WebhookID: "whk_1",
			Signature: sign(t, "old", payload),
			EventType: "order.created",
			Payload:   payload,
		}); !errors.Is(err, webhook.ErrInvalidSignature) {
			t.Errorf("expected ErrInvalidSignature under rotated secret, got %v", err)
		}
		if _, err := uc.Admit(ctx, webhook.AdmitInput{
			WebhookID: "whk_1",
			Signature: sign(t, "new", payload),
			EventType: "order.created",
			Payload:   payload,
		}); err != nil {
			t.Errorf("expected admission under new secret, got %v", err)
		}
	})

	t.Run("Events Of Unknown Id", func(t *testing.T) {
		uc, _ := newUseCase(t)
		if _, err := uc.Events(ctx, "nope"); !errors.Is(err, webhook.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}
