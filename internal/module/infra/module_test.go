package infra

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-admin-gateway/internal/config"
	"github.com/MKhiriev/go-admin-gateway/internal/logger"
	"github.com/MKhiriev/go-admin-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T, domain string) http.Handler {
	t.Helper()
	f, err := New(config.Infra{FileDomain: domain}, logger.Nop()).Router()
	require.NoError(t, err)
	return f.Handler()
}

func serve(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestModule_Router(t *testing.T) {
	m := New(config.Default().Infra, logger.Nop())
	assert.Equal(t, "daoyi-module-infra", m.Name())

	f, err := m.Router()
	require.NoError(t, err)
	// all five hand-written endpoints replace table rows
	assert.Equal(t, len(Routes), f.Len())
	assert.Equal(t, 5, f.Overrides())
}

func TestModule_SpecialsWinOverTableRows(t *testing.T) {
	h := newHandler(t, "http://files.test")

	tests := []struct {
		method string
		target string
		want   string
	}{
		{http.MethodGet, "/infra/config/get-value-by-key?key=file.domain", `{"code":0,"msg":"","data":"http://files.test"}`},
		{http.MethodGet, "/infra/config/get-value-by-key?key=other", `{"code":0,"msg":"","data":""}`},
		{http.MethodPost, "/infra/file/upload", `{"code":0,"msg":"","data":{"id":"mock-file-id","url":"http://files.test/mock-file"}}`},
		{http.MethodPost, "/infra/file/create", `{"code":0,"msg":"","data":{"id":"mock-file-id","url":"http://files.test/mock-file"}}`},
		{http.MethodGet, "/infra/file/presigned-url", `{"code":0,"msg":"","data":"http://files.test/mock-file"}`},
		{http.MethodGet, "/infra/redis/get-monitor-info", `{"code":0,"msg":"","data":{"info":"mock","connected":false}}`},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := serve(t, h, tt.method, tt.target)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestModule_ValueByKeyWithoutKey(t *testing.T) {
	rec := serve(t, newHandler(t, "http://files.test"), http.MethodGet, "/infra/config/get-value-by-key")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body models.CommonResult[any]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int32(http.StatusBadRequest), body.Code)
	assert.Contains(t, body.Msg, `"key"`)
}

func TestModule_FileDomainTrailingSlash(t *testing.T) {
	rec := serve(t, newHandler(t, "https://cdn.test/"), http.MethodGet, "/infra/file/presigned-url")
	assert.JSONEq(t, `{"code":0,"msg":"","data":"https://cdn.test/mock-file"}`, rec.Body.String())
}

func TestModule_FileContentWildcard(t *testing.T) {
	h := newHandler(t, "http://files.test")

	rec := serve(t, h, http.MethodGet, "/infra/file/42/get/a/b/c")
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.CommonResult[models.MockPayload]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, models.MockPayload{Mock: true, Path: "/infra/file/42/get/a/b/c", Method: http.MethodGet}, body.Data)

	rec = serve(t, h, http.MethodGet, "/infra/file/42/get/")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestModule_TableRowsAnswer(t *testing.T) {
	h := newHandler(t, "http://files.test")

	for _, e := range Routes {
		target := strings.ReplaceAll(e.Path, "{configId}", "7")
		target = strings.ReplaceAll(target, "**", "x.png")
		if e.Path == "/infra/config/get-value-by-key" {
			target += "?key=" + FileDomainKey
		}

		rec := serve(t, h, e.Method, target)
		assert.Equal(t, http.StatusOK, rec.Code, "%s %s", e.Method, e.Path)
	}
}
