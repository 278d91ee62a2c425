package ratelimiter

import (
	"net"
	"net/http"
	"strings"
)

const UnknownClientKey = "unknown"

// KeyFunc extracts the client identity a request is counted against.
type KeyFunc func(*http.Request) string

// ClientIPKeyFunc keys requests by client address. The first X-Forwarded-For hop
// is only honoured when the service sits behind a proxy that sets it.
func ClientIPKeyFunc(trustXForwardedFor bool) KeyFunc {
	return func(r *http.Request) string {
		if trustXForwardedFor {
			if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
				first, _, _ := strings.Cut(xff, ",")
				if ip := strings.TrimSpace(first); ip != "" {
					return ip
				}
			}
		}

		remoteAddr := strings.TrimSpace(r.RemoteAddr)
		host, _, err := net.SplitHostPort(remoteAddr)
		if err == nil && host != "" {
			return host
		}
		if remoteAddr != "" {
			return remoteAddr
		}
		return UnknownClientKey
	}
}
