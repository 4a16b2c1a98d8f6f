// Package http implements the gateway router.
//
// It assembles the chi router every request goes through: request ids,
// access logging, Prometheus metrics, panic recovery and CORS, the fixed
// health and metrics endpoints, the module fragments mounted under the API
// prefix and the catch-all 404.
package http
