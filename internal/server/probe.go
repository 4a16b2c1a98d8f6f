package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-admin-gateway/internal/utils"
)

// HealthPath is the endpoint [Probe] checks.
const HealthPath = "/healthz"

// Probe asks the gateway at baseURL for its health and returns nil only for a
// 200 "ok" answer.
func Probe(ctx context.Context, baseURL string, timeout time.Duration) error {
	client := utils.NewHTTPClient(baseURL, timeout)

	resp, err := client.R().SetContext(ctx).Get(HealthPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}

	if resp.StatusCode() != http.StatusOK || strings.TrimSpace(resp.String()) != "ok" {
		return fmt.Errorf("%w: status %d, body %q", ErrUnhealthy, resp.StatusCode(), resp.String())
	}

	return nil
}
