// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"slices"
	"time"
)

// AnyOrigin is the allowed-origins sentinel that accepts every origin.
const AnyOrigin = "*"

// GatewayConfig is the resolved configuration of a gateway process. It is
// produced by [Resolver.Resolve] from the layered sources and treated as
// immutable afterwards: consumers receive copies and never write back.
//
// Struct tags:
//   - toml / yaml / json: key names inside the config file layers.
//   - env / envPrefix: environment variable names below the resolver
//     prefix (caarlos0/env). Nested sections use the "__" separator, so
//     DAOGW_AUTH__TOKEN_SIGN_KEY addresses auth.token_sign_key.
//
// A zero value in any layer means "not defined by this layer".
type GatewayConfig struct {
	// ListenAddress is the TCP address of the HTTP listener in host:port
	// form (e.g. "0.0.0.0:8080").
	// Env: DAOGW_LISTEN
	ListenAddress string `toml:"listen" yaml:"listen" json:"listen" env:"LISTEN"`

	// AllowedOrigins lists the CORS origins the gateway accepts. A list
	// containing "*" accepts any origin.
	// Env: DAOGW_ALLOW_ORIGINS (comma separated)
	AllowedOrigins []string `toml:"allow_origins" yaml:"allow_origins" json:"allow_origins" env:"ALLOW_ORIGINS" envSeparator:","`

	// Server holds HTTP transport settings.
	Server Server `toml:"server" yaml:"server" json:"server" envPrefix:"SERVER__"`

	// Log holds logging settings.
	Log Log `toml:"log" yaml:"log" json:"log" envPrefix:"LOG__"`

	// Auth holds the parameters of the mock tokens issued by the login
	// endpoints.
	Auth Auth `toml:"auth" yaml:"auth" json:"auth" envPrefix:"AUTH__"`

	// Infra holds settings consumed by the infra module.
	Infra Infra `toml:"infra" yaml:"infra" json:"infra" envPrefix:"INFRA__"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// APIPrefix is the shared path prefix every module is mounted under.
	// Env: DAOGW_SERVER__API_PREFIX
	APIPrefix string `toml:"api_prefix" yaml:"api_prefix" json:"api_prefix" env:"API_PREFIX"`

	// ReadHeaderTimeout bounds how long the server waits for request headers.
	// Env: DAOGW_SERVER__READ_HEADER_TIMEOUT
	ReadHeaderTimeout Duration `toml:"read_header_timeout" yaml:"read_header_timeout" json:"read_header_timeout" env:"READ_HEADER_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	// Env: DAOGW_SERVER__SHUTDOWN_TIMEOUT
	ShutdownTimeout Duration `toml:"shutdown_timeout" yaml:"shutdown_timeout" json:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
}

// Log holds logging settings.
type Log struct {
	// Level is the minimum zerolog level ("debug", "info", "warn", ...).
	// Env: DAOGW_LOG__LEVEL
	Level string `toml:"level" yaml:"level" json:"level" env:"LEVEL"`
}

// Auth holds the parameters of the tokens minted by the mock login flow.
type Auth struct {
	// Env: DAOGW_AUTH__TOKEN_ISSUER
	TokenIssuer string `toml:"token_issuer" yaml:"token_issuer" json:"token_issuer" env:"TOKEN_ISSUER"`

	// Env: DAOGW_AUTH__TOKEN_SIGN_KEY
	TokenSignKey string `toml:"token_sign_key" yaml:"token_sign_key" json:"token_sign_key" env:"TOKEN_SIGN_KEY"`

	// Env: DAOGW_AUTH__ACCESS_TOKEN_DURATION
	AccessTokenDuration Duration `toml:"access_token_duration" yaml:"access_token_duration" json:"access_token_duration" env:"ACCESS_TOKEN_DURATION"`

	// Env: DAOGW_AUTH__REFRESH_TOKEN_DURATION
	RefreshTokenDuration Duration `toml:"refresh_token_duration" yaml:"refresh_token_duration" json:"refresh_token_duration" env:"REFRESH_TOKEN_DURATION"`
}

// Infra holds settings consumed by the infra module.
type Infra struct {
	// FileDomain is the base URL reported for stored files.
	// Env: DAOGW_INFRA__FILE_DOMAIN
	FileDomain string `toml:"file_domain" yaml:"file_domain" json:"file_domain" env:"FILE_DOMAIN"`
}

// Default returns the hard-coded lowest-precedence configuration layer.
func Default() GatewayConfig {
	return GatewayConfig{
		ListenAddress:  "0.0.0.0:8080",
		AllowedOrigins: []string{AnyOrigin},
		Server: Server{
			APIPrefix:         "/admin-api",
			ReadHeaderTimeout: Duration(10 * time.Second),
			ShutdownTimeout:   Duration(10 * time.Second),
		},
		Log: Log{
			Level: "info",
		},
		Auth: Auth{
			TokenIssuer:          "daoyi-gateway",
			TokenSignKey:         "daoyi-mock-sign-key",
			AccessTokenDuration:  Duration(4 * time.Hour),
			RefreshTokenDuration: Duration(30 * 24 * time.Hour),
		},
		Infra: Infra{
			FileDomain: "http://localhost:18080",
		},
	}
}

// Origins returns a copy of the allowed origins.
func (c GatewayConfig) Origins() []string {
	return slices.Clone(c.AllowedOrigins)
}

// AllowsAnyOrigin reports whether the allowed origins contain the "*" sentinel.
func (c GatewayConfig) AllowsAnyOrigin() bool {
	return slices.Contains(c.AllowedOrigins, AnyOrigin)
}

// LocalURL returns an http URL that reaches the listener from the same host.
// Wildcard hosts ("", "0.0.0.0", "::") are replaced with the loopback address.
func (c GatewayConfig) LocalURL() string {
	host, port, err := net.SplitHostPort(c.ListenAddress)
	if err != nil {
		return "http://" + c.ListenAddress
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, port)
}
