package module

import (
	"github.com/MKhiriev/go-admin-gateway/internal/config"
	"github.com/MKhiriev/go-admin-gateway/internal/logger"
	"github.com/MKhiriev/go-admin-gateway/internal/module/infra"
	"github.com/MKhiriev/go-admin-gateway/internal/module/system"
)

var (
	_ ServiceModule = (*system.Module)(nil)
	_ ServiceModule = (*infra.Module)(nil)
)

// Core returns the modules that serve routes: system, then infra.
func Core(cfg config.GatewayConfig, logger *logger.Logger) Registry {
	return NewRegistry(
		system.New(cfg.Auth, logger),
		infra.New(cfg.Infra, logger),
	)
}

// All returns the core modules followed by every placeholder module.
func All(cfg config.GatewayConfig, logger *logger.Logger) Registry {
	modules := Core(cfg, logger).Modules()
	for _, name := range PlaceholderNames {
		modules = append(modules, NewPlaceholder(name))
	}
	return NewRegistry(modules...)
}
