package route

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-admin-gateway/internal/logger"
	"github.com/MKhiriev/go-admin-gateway/internal/utils"
	"github.com/MKhiriev/go-admin-gateway/models"
	"github.com/go-chi/chi/v5"
)

// Mock answers 200 with a success envelope echoing the matched path and
// method.
var Mock http.Handler = JSON(func(r *http.Request) (models.MockPayload, error) {
	return models.MockPayload{
		Mock:   true,
		Path:   r.URL.Path,
		Method: r.Method,
	}, nil
})

// NotFound is the gateway catch-all. It answers 404 naming the path.
func NotFound(w http.ResponseWriter, r *http.Request) {
	body := models.NotFoundResult{
		Code:    http.StatusNotFound,
		Message: "gateway route not found: " + r.URL.Path,
	}
	if _, err := utils.WriteJSON(w, body, http.StatusNotFound); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing not found response")
	}
}

// JSON adapts fn into an endpoint answering with the generic envelope. A nil
// error yields 200 and code 0; an error is answered by [WriteError].
func JSON[T any](fn func(r *http.Request) (T, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := fn(r)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		if _, err = utils.WriteJSON(w, models.Success(data), http.StatusOK); err != nil {
			logger.FromRequest(r).Err(err).Msg("error writing response")
		}
	})
}

// Captcha adapts fn into an endpoint answering with the captcha envelope.
// Failures use the generic envelope like every other endpoint.
func Captcha[T any](fn func(r *http.Request) (T, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := fn(r)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		if _, err = utils.WriteJSON(w, models.CaptchaSuccess(data), http.StatusOK); err != nil {
			logger.FromRequest(r).Err(err).Msg("error writing captcha response")
		}
	})
}

// WriteError answers with the status mapped from err and a generic envelope
// whose code equals that status.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFromError(err)
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("handler failed")
	} else {
		log.Debug().Err(err).Str("path", r.URL.Path).Msg("request rejected")
	}

	if _, werr := utils.WriteJSON(w, models.Failure(int32(status), err.Error()), status); werr != nil {
		log.Err(werr).Msg("error writing error response")
	}
}

var errorStatusMap = map[error]int{
	ErrMissingParameter: http.StatusBadRequest,
	ErrNotFound:         http.StatusNotFound,
}

// StatusFromError maps handler errors to HTTP statuses. Unknown errors are
// internal.
func StatusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// Param returns the named URL parameter bound by the matched pattern.
func Param(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

// Rest returns the segments matched by a trailing wildcard.
func Rest(r *http.Request) string {
	return chi.URLParam(r, WildcardParam)
}
