package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a test request carrying a logger that writes to buf,
// the same way withRequestID attaches one.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "GET 200",
			method:          http.MethodGet,
			path:            "/admin-api/system/user/page",
			handlerStatus:   http.StatusOK,
			handlerResponse: "OK",
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/admin-api/system/user/page"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
			},
		},
		{
			name:          "DELETE 204 no body",
			method:        http.MethodDelete,
			path:          "/admin-api/system/role/delete",
			handlerStatus: http.StatusNoContent,
			checkLogContains: []string{
				`"method":"DELETE"`,
				`"status":204`,
				`"size":0`,
			},
		},
		{
			name:            "400 from a handler",
			method:          http.MethodGet,
			path:            "/admin-api/infra/config/get-value-by-key",
			handlerStatus:   http.StatusBadRequest,
			handlerResponse: `{"code":400}`,
			checkLogContains: []string{
				`"status":400`,
			},
		},
		{
			name:            "query parameters preserved in uri",
			method:          http.MethodGet,
			path:            "/admin-api/infra/config/get-value-by-key?key=file.domain",
			handlerStatus:   http.StatusOK,
			handlerResponse: "{}",
			checkLogContains: []string{
				`"uri":"/admin-api/infra/config/get-value-by-key?key=file.domain"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			h := newTestHandler(t)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &logBuf))

			assert.Equal(t, tt.handlerStatus, rr.Code)
			for _, expected := range tt.checkLogContains {
				assert.Contains(t, logBuf.String(), expected)
			}
		})
	}
}

func TestWithLogging_ResponseSize(t *testing.T) {
	var logBuf bytes.Buffer
	h := newTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 512)))
		_, _ = w.Write([]byte(strings.Repeat("b", 512)))
	})

	rr := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rr, makeRequest(http.MethodGet, "/test", &logBuf))

	assert.Contains(t, logBuf.String(), `"size":1024`)
	assert.Contains(t, logBuf.String(), `"status":200`)
}

func TestWithLogging_UnmatchedFlag(t *testing.T) {
	var logBuf bytes.Buffer
	h := newTestHandler(t)

	rr := httptest.NewRecorder()
	h.withLogging(http.HandlerFunc(h.notFound)).ServeHTTP(rr, makeRequest(http.MethodGet, "/nowhere", &logBuf))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, logBuf.String(), `"unmatched":true`)
}

func TestWithLogging_DurationAccuracy(t *testing.T) {
	delay := 30 * time.Millisecond
	var logBuf bytes.Buffer
	h := newTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(delay)
		w.WriteHeader(http.StatusOK)
	})

	start := time.Now()
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/slow", &logBuf))

	assert.GreaterOrEqual(t, time.Since(start), delay)
	assert.Contains(t, logBuf.String(), `"duration":`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var logBuf bytes.Buffer
	h := newTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})

	assert.Panics(t, func() {
		h.withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/panic", &logBuf))
	}, "withLogging should not recover panics")
}
