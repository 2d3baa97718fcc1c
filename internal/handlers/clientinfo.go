package handlers

import (
	"net/http"
	"strings"

	"github.com/rohanvyas/form-extractor-api/internal/models"
)

// clientInfo derives the logged request attributes: originating IP from
// the forwarding header, the user-agent string, and a coarse device class.
func clientInfo(r *http.Request) models.ClientInfo {
	ua := r.Header.Get("User-Agent")
	if ua == "" {
		ua = "unknown"
	}

	return models.ClientInfo{
		IPAddress: clientIP(r),
		UserAgent: ua,
		Device:    deviceClass(ua),
	}
}

// clientIP returns the first entry of X-Forwarded-For, or "unknown" when
// the header is absent.
func clientIP(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded == "" {
		return "unknown"
	}
	ip, _, _ := strings.Cut(forwarded, ",")
	return strings.TrimSpace(ip)
}

// deviceClass buckets a user-agent into mobile/tablet/desktop by substring
// match. A heuristic only: anything claiming neither keyword is "desktop".
func deviceClass(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "mobile"):
		return "mobile"
	case strings.Contains(ua, "tablet"):
		return "tablet"
	default:
		return "desktop"
	}
}
