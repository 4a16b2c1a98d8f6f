// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package system implements the system business module: users, roles, menus,
// tenants and the sign-in flow of the admin UI.
package system

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-admin-gateway/internal/config"
	"github.com/MKhiriev/go-admin-gateway/internal/logger"
	"github.com/MKhiriev/go-admin-gateway/internal/route"
	"github.com/MKhiriev/go-admin-gateway/internal/utils"
)

// Name is the diagnostic name of the module.
const Name = "daoyi-module-system"

// Module serves the system routes.
type Module struct {
	auth   AuthService
	ids    utils.IDGenerator
	logger *logger.Logger
}

// New builds the system module. Tokens are issued with cfg.
func New(cfg config.Auth, logger *logger.Logger) *Module {
	return &Module{
		auth:   NewAuthService(cfg, logger),
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

func (m *Module) Name() string {
	return Name
}

// Router compiles the route table and then binds the hand-written endpoints,
// which replace any table row with the same method and path.
func (m *Module) Router() (*route.Fragment, error) {
	f, err := route.Compile(Routes, route.MockFor)
	if err != nil {
		return nil, fmt.Errorf("compiling %s routes: %w", Name, err)
	}

	specials := []struct {
		method, path string
		handler      http.Handler
	}{
		{http.MethodPost, "/system/auth/login", route.JSON(m.login)},
		{http.MethodPost, "/system/auth/refresh-token", route.JSON(m.refreshToken)},
		{http.MethodPost, "/system/auth/logout", route.JSON(m.logout)},
		{http.MethodGet, "/system/auth/get-permission-info", route.JSON(m.permissionInfo)},
		{http.MethodPost, "/system/captcha/get", route.Captcha(m.captchaGet)},
		{http.MethodPost, "/system/captcha/check", route.Captcha(m.captchaCheck)},
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
