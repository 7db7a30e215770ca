package ratelimit

import (
	"net/http"
	"strings"
)

// UnknownClient is returned when no proxy header names the client.
const UnknownClient = "unknown"

// ClientIdentifier returns a best-effort client address: the first entry of
// X-Forwarded-For, else X-Real-IP, else UnknownClient. A present
// X-Forwarded-For always wins, even when its first entry is blank. Callers
// prefix the result with the endpoint name so every endpoint is counted
// separately.
func ClientIdentifier(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}
	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}
	return UnknownClient
}

// Key namespaces a client address for one endpoint, e.g. "messages:203.0.113.5".
func Key(endpoint, client string) string {
	return endpoint + ":" + client
}
