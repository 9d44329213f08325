package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"webhook-receiver/internal/webhook"
	pkgLog "webhook-receiver/pkg/log"
	pkgResponse "webhook-receiver/pkg/response"
)

type handler struct {
	l  pkgLog.Logger
	uc webhook.UseCase
}

// Register registers a webhook id with its shared secret.
// @Summary     Register webhook
// @Description Register (or replace) a webhook id with its shared secret. Re-registering resets the event log.
// @Tags        Webhooks
// @Accept      json
// @Produce     json
// @Param       request body object true "webhook_id and secret"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp
// @Router      /api/v1/webhooks [post]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "invalid registration request: %v", err)
		pkgResponse.Error(c, http.StatusBadRequest, "registration failed", webhook.ErrInvalidArgument)
		return
	}

	input := webhook.RegisterInput{
		WebhookID: req.WebhookID,
		Secret:    []byte(req.Secret),
	}
	if err := h.uc.Register(ctx, input); err != nil {
		pkgResponse.Error(c, http.StatusBadRequest, "registration failed", err)
		return
	}

	pkgResponse.OK(c, "webhook registered", gin.H{"webhook_id": req.WebhookID})
}

// Deliver accepts one signed event delivery.
// @Summary     Deliver event
// @Description Verify a signed delivery and record it against its webhook. All rejection kinds return 400.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       X-Webhook-Signature header string true "lowercase hex HMAC-SHA256 of the canonical payload"
// @Param       X-Webhook-Id header string true "registered webhook id"
// @Param       X-Webhook-Event header string false "event type label"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp
// @Router      /api/v1/events [post]
func (h *handler) Deliver(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "failed to read delivery body: %v", err)
		pkgResponse.Error(c, http.StatusBadRequest, "delivery rejected", err)
		return
	}

	out, err := h.uc.Admit(ctx, webhook.AdmitInput{
		WebhookID: c.GetHeader(HeaderWebhookID),
		Signature: c.GetHeader(HeaderSignature),
		EventType: c.GetHeader(HeaderEventType),
		Payload:   body,
	})
	if err != nil {
		// Every rejection kind maps to the same client-error class; the
		// body text carries the specific reason.
		pkgResponse.Error(c, http.StatusBadRequest, "delivery rejected", err)
		return
	}

	pkgResponse.OK(c, "event admitted", gin.H{
		"event_id":    out.EventID,
		"received_at": out.ReceivedAt,
	})
}

// List lists registered webhooks with event counts.
// @Summary     List webhooks
// @Description List registered webhook ids with their admitted event counts. Secrets are never returned.
// @Tags        Webhooks
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/webhooks [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	webhooks, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "failed to list webhooks: %v", err)
		pkgResponse.InternalError(c)
		return
	}

	pkgResponse.OK(c, "webhooks listed", gin.H{
		"webhooks": webhooks,
		"count":    len(webhooks),
	})
}

// Events lists the admitted events of one webhook.
// @Summary     List events
// @Description Return the admitted events of a webhook in admission order.
// @Tags        Events
// @Produce     json
// @Param       id path string true "webhook id"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp
// @Router      /api/v1/webhooks/{id}/events [get]
func (h *handler) Events(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	events, err := h.uc.Events(ctx, id)
	if err != nil {
		if errors.Is(err, webhook.ErrNotFound) {
			pkgResponse.Error(c, http.StatusNotFound, "webhook not found", err)
			return
		}
		h.l.Errorf(ctx, "failed to list events for webhook %q: %v", id, err)
		pkgResponse.InternalError(c)
		return
	}

	pkgResponse.OK(c, "events listed", gin.H{
		"webhook_id": id,
		"events":     events,
		"count":      len(events),
	})
}
