package http

import (
	"github.com/gin-gonic/gin"

	"webhook-receiver/internal/middleware"
)

// RegisterRoutes registers the webhook domain routes on rg. The inbound
// delivery endpoint is source-checked and rate limited; read endpoints
// are not.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/webhooks", h.Register)
	rg.GET("/webhooks", h.List)
	rg.GET("/webhooks/:id/events", h.Events)

	rg.POST("/events", mw.TrustedSource(), mw.RateLimit(), h.Deliver)
}
