package http

import (
	"github.com/gin-gonic/gin"

	"webhook-receiver/internal/webhook"
	pkgLog "webhook-receiver/pkg/log"
)

// Handler is the interface for the webhook HTTP delivery handlers.
type Handler interface {
	Register(c *gin.Context)
	Deliver(c *gin.Context)
	List(c *gin.Context)
	Events(c *gin.Context)
}

// New creates a new webhook HTTP delivery handler.
func New(l pkgLog.Logger, uc webhook.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
