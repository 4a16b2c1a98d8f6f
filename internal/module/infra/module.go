// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package infra implements the infra business module: runtime config, file
// storage, code generation and monitoring screens of the admin UI.
package infra

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-admin-gateway/internal/config"
	"github.com/MKhiriev/go-admin-gateway/internal/logger"
	"github.com/MKhiriev/go-admin-gateway/internal/route"
)

// Name is the diagnostic name of the module.
const Name = "daoyi-module-infra"

// Module serves the infra routes.
type Module struct {
	fileDomain string

	logger *logger.Logger
}

// New builds the infra module. File URLs are reported under cfg.FileDomain.
func New(cfg config.Infra, logger *logger.Logger) *Module {
	return &Module{
		fileDomain: strings.TrimRight(cfg.FileDomain, "/"),
		logger:     logger,
	}
}

func (m *Module) Name() string {
	return Name
}

// Router compiles the route table and then binds the hand-written endpoints.
// Every one of them also appears in the table, so the later binding replaces
// the table row.
func (m *Module) Router() (*route.Fragment, error) {
	f, err := route.Compile(Routes, route.MockFor)
	if err != nil {
		return nil, fmt.Errorf("compiling %s routes: %w", Name, err)
	}

	specials := []struct {
		method, path string
		handler      http.Handler
	}{
		{http.MethodGet, "/infra/config/get-value-by-key", route.JSON(m.valueByKey)},
		{http.MethodPost, "/infra/file/upload", route.JSON(m.uploadFile)},
		{http.MethodGet, "/infra/file/presigned-url", route.JSON(m.presignedURL)},
		{http.MethodPost, "/infra/file/create", route.JSON(m.uploadFile)},
		{http.MethodGet, "/infra/redis/get-monitor-info", route.JSON(m.redisMonitor)},
	}
	for _, s := range specials {
		if err = f.Handle(s.method, s.path, s.handler); err != nil {
			return nil, fmt.Errorf("binding %s %s: %w", s.method, s.path, err)
		}
	}

	if n := f.Overrides(); n > 0 {
		m.logger.Debug().Int("overrides", n).Str("module", Name).Msg("table rows replaced by hand-written handlers")
	}

	return f, nil
}
