// Package server runs the gateway's HTTP transport.
//
// It owns the listener lifecycle: startup, stop-signal handling and graceful
// shutdown bounded by the configured timeout. It also provides the health
// probe used by the -healthcheck flag of the binaries.
package server
