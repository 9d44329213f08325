package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgResponse "webhook-receiver/pkg/response"
)

// TrustedSource rejects deliveries from IPs outside the configured
// allowlist. With no allowlist configured every source is accepted.
func (m Middleware) TrustedSource() gin.HandlerFunc {
	return func(c *gin.Context) {
		source := c.ClientIP()
		if !m.sourceTrusted(source) {
			m.l.Warnf(c.Request.Context(), "delivery from untrusted source %s", source)
			pkgResponse.Error(c, http.StatusForbidden, "source not allowed", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// sourceTrusted checks ip against the allowlist entries, which may be
// plain IPs or CIDR ranges.
func (m Middleware) sourceTrusted(ip string) bool {
	if len(m.trusted) == 0 {
		return true
	}

	for _, allowed := range m.trusted {
		if ip == allowed {
			return true
		}

		if strings.Contains(allowed, "/") {
			_, ipNet, err := net.ParseCIDR(allowed)
			if err != nil {
				continue
			}
			if ipNet.Contains(net.ParseIP(ip)) {
				return true
			}
		}
	}
	return false
}
