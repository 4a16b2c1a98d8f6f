package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-admin-gateway/internal/utils"
	"github.com/rs/zerolog"
)

const (
	requestIDHeader = "X-Request-ID"
	maxRequestIDLen = 128
)

// withRequestID reuses a sane X-Request-ID from the client or generates one,
// echoes it in the response and attaches it to the request context and the
// request-scoped logger.
func (h *Handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := normalizeRequestID(r.Header.Get(requestIDHeader))
		if requestID == "" {
			requestID = h.ids.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})
		ctx = utils.WithRequestID(ctx, requestID)
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}

func normalizeRequestID(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.ContainsAny(v, "\r\n") {
		return ""
	}
	if len(v) > maxRequestIDLen {
		v = v[:maxRequestIDLen]
	}
	return v
}
