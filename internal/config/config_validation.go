// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks the keys a single layer defines. Zero values are "not
// defined" and are not checked, so a partial layer validates on its own.
//
// Returns nil if every defined key is acceptable, or the first violation
// wrapped around one of the sentinel errors in errors.go.
func (cfg *GatewayConfig) validate() error {
	if cfg.ListenAddress != "" {
		if err := validateListenAddress(cfg.ListenAddress); err != nil {
			return err
		}
	}

	for _, origin := range cfg.AllowedOrigins {
		if strings.TrimSpace(origin) == "" {
			return fmt.Errorf("%w: empty origin", ErrInvalidOrigins)
		}
	}

	if p := cfg.Server.APIPrefix; p != "" {
		if !strings.HasPrefix(p, "/") || p == "/" || strings.HasSuffix(p, "/") {
			return fmt.Errorf("%w: api prefix %q must start with '/' and not end with '/'", ErrInvalidServerConfigs, p)
		}
	}
	if cfg.Server.ReadHeaderTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(cfg.Log.Level)); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
		}
	}

	if cfg.Auth.AccessTokenDuration < 0 || cfg.Auth.RefreshTokenDuration < 0 {
		return fmt.Errorf("%w: negative token duration", ErrInvalidAuthConfigs)
	}

	if d := cfg.Infra.FileDomain; d != "" {
		u, err := url.Parse(d)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: file domain %q is not an http(s) URL", ErrInvalidInfraConfigs, d)
		}
	}

	return nil
}

func validateListenAddress(addr string) error {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidListenAddress, err)
	}

	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return fmt.Errorf("%w: port %q", ErrInvalidListenAddress, port)
	}

	return nil
}
