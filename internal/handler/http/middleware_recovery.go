package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-admin-gateway/internal/logger"
	"github.com/MKhiriev/go-admin-gateway/internal/route"
)

// withRecovery turns a handler panic into a 500 generic envelope. An
// http.ErrAbortHandler panic is re-raised so net/http aborts the response.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if err, ok := rvr.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rvr)
			}

			logger.FromRequest(r).Error().
				Str("panic", fmt.Sprint(rvr)).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")

			route.WriteError(w, r, fmt.Errorf("internal error: %v", rvr))
		}()

		next.ServeHTTP(w, r)
	})
}
