package middleware

import (
	"net/netip"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vyapar/backend/internal/interfaces/http/dto"
)

// DocsConfig controls who may read the API documentation
type DocsConfig struct {
	Enabled     bool
	RequireAuth bool
	// AllowedIPs holds addresses or CIDR ranges. Empty admits every client.
	AllowedIPs []string
}

// DocsGuard gates /swagger. A disabled endpoint answers 404 so that it looks
// absent. When RequireAuth is set, auth runs after the address check.
func DocsGuard(cfg DocsConfig, auth gin.HandlerFunc) gin.HandlerFunc {
	allowed := parsePrefixes(cfg.AllowedIPs)

	return func(c *gin.Context) {
		if !cfg.Enabled {
			c.AbortWithStatusJSON(dto.GetHTTPStatus(dto.ErrCodeNotFound), dto.NewErrorResponseWithRequestID(
				dto.ErrCodeNotFound, "API documentation is not available", GetRequestID(c)))
			return
		}
		if len(cfg.AllowedIPs) > 0 && !addrAllowed(c.ClientIP(), allowed) {
			c.AbortWithStatusJSON(dto.GetHTTPStatus(dto.ErrCodeForbidden), dto.NewErrorResponseWithRequestID(
				dto.ErrCodeForbidden, "Access to API documentation is restricted", GetRequestID(c)))
			return
		}
		if cfg.RequireAuth && auth != nil {
			auth(c)
			if c.IsAborted() {
				return
			}
		}
		c.Next()
	}
}

// parsePrefixes skips entries that are neither an address nor a CIDR
func parsePrefixes(entries []string) []netip.Prefix {
	out := make([]netip.Prefix, 0, len(entries))
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if strings.Contains(e, "/") {
			if p, err := netip.ParsePrefix(e); err == nil {
				out = append(out, p.Masked())
			}
			continue
		}
		if a, err := netip.ParseAddr(e); err == nil {
			out = append(out, netip.PrefixFrom(a.Unmap(), a.Unmap().BitLen()))
		}
	}
	return out
}

func addrAllowed(ip string, allowed []netip.Prefix) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range allowed {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
