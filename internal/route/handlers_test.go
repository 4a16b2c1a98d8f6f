package route

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-admin-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "missing parameter", err: ErrMissingParameter, want: http.StatusBadRequest},
		{name: "wrapped missing parameter", err: fmt.Errorf("key: %w", ErrMissingParameter), want: http.StatusBadRequest},
		{name: "not found", err: ErrNotFound, want: http.StatusNotFound},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFromError(tt.err))
		})
	}
}

func TestJSON_Failure(t *testing.T) {
	h := JSON(func(r *http.Request) (string, error) {
		return "", fmt.Errorf("query parameter %q: %w", "key", ErrMissingParameter)
	})

	rec := serve(t, h, http.MethodGet, "/x")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body models.CommonResult[any]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int32(http.StatusBadRequest), body.Code)
	assert.Contains(t, body.Msg, "missing required parameter")
	assert.Nil(t, body.Data)
	assert.False(t, body.IsSuccess())
}

func TestCaptcha_Envelope(t *testing.T) {
	h := Captcha(func(r *http.Request) (models.CaptchaCheckResult, error) {
		return models.CaptchaCheckResult{Result: true}, nil
	})

	rec := serve(t, h, http.MethodPost, "/captcha/check")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"repCode":"0000","repMsg":"mock success","repData":{"result":true}}`, rec.Body.String())
}

func TestNotFound(t *testing.T) {
	rec := serve(t, http.HandlerFunc(NotFound), http.MethodGet, "/nope/x")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"code":404,"message":"gateway route not found: /nope/x"}`, rec.Body.String())
}
