package infra

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-admin-gateway/internal/route"
	"github.com/MKhiriev/go-admin-gateway/models"
)

const (
	// FileDomainKey is the runtime config key holding the file domain.
	FileDomainKey = "file.domain"

	mockFileID   = "mock-file-id"
	mockFilePath = "/mock-file"
)

// valueByKey answers a runtime config lookup. Unknown keys yield an empty
// value rather than an error.
func (m *Module) valueByKey(r *http.Request) (string, error) {
	key := r.URL.Query().Get("key")
	if key == "" {
		return "", fmt.Errorf("query parameter %q: %w", "key", route.ErrMissingParameter)
	}

	switch key {
	case FileDomainKey:
		return m.fileDomain, nil
	default:
		return "", nil
	}
}

// uploadFile pretends to store the request body and reports a fixed file.
func (m *Module) uploadFile(*http.Request) (models.FileResponse, error) {
	return models.FileResponse{
		ID:  mockFileID,
		URL: m.fileURL(),
	}, nil
}

func (m *Module) presignedURL(*http.Request) (string, error) {
	return m.fileURL(), nil
}

func (m *Module) redisMonitor(*http.Request) (models.RedisMonitorInfo, error) {
	return models.RedisMonitorInfo{Info: "mock", Connected: false}, nil
}

func (m *Module) fileURL() string {
	return m.fileDomain + mockFilePath
}
