package http

import (
	"github.com/MKhiriev/go-admin-gateway/internal/config"
	"github.com/MKhiriev/go-admin-gateway/internal/logger"
	"github.com/MKhiriev/go-admin-gateway/internal/module"
	"github.com/MKhiriev/go-admin-gateway/internal/utils"
)

type Handler struct {
	cfg     config.GatewayConfig
	modules module.Registry
	metrics *Metrics
	ids     utils.IDGenerator

	logger *logger.Logger
}

func NewHandler(cfg config.GatewayConfig, modules module.Registry, logger *logger.Logger) *Handler {
	logger.Info().Strs("modules", modules.Names()).Msg("http handler created")
	return &Handler{
		cfg:     cfg,
		modules: modules,
		metrics: NewMetrics(),
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,
	}
}
