// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires a gateway binary: flags, configuration, logging, the
// module registry, the router and the server.
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-admin-gateway/internal/config"
	httphandler "github.com/MKhiriev/go-admin-gateway/internal/handler/http"
	"github.com/MKhiriev/go-admin-gateway/internal/logger"
	"github.com/MKhiriev/go-admin-gateway/internal/module"
	"github.com/MKhiriev/go-admin-gateway/internal/server"
	"github.com/MKhiriev/go-admin-gateway/models"
)

// Exit codes returned by [Run].
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

const probeTimeout = 3 * time.Second

// ModulesFunc builds the module registry of a binary.
type ModulesFunc func(cfg config.GatewayConfig, logger *logger.Logger) module.Registry

// Options describe one gateway binary.
type Options struct {
	// Role labels every log line of the process.
	Role      string
	BuildInfo models.AppBuildInfo
	Modules   ModulesFunc
	// Stderr receives flag parsing errors.
	Stderr io.Writer
}

// Run starts the binary described by opts with the command-line args and
// returns the process exit code. It blocks until a stop signal arrives.
func Run(args []string, opts Options) int {
	flags, err := config.ParseFlags(opts.Role, args)
	if err != nil {
		fmt.Fprintf(opts.Stderr, "%s: %v\nusage: %s [-config-dir dir] [-healthcheck]\n", opts.Role, err, opts.Role)
		return ExitUsage
	}

	cfg, cfgErr := config.NewResolver(config.WithDir(flags.ConfigDir)).ResolveWithReport()

	log := logger.NewLogger(opts.Role, cfg.Log.Level)
	if cfgErr != nil {
		log.Warn().Err(cfgErr).Msg("some configuration layers were dropped")
	}

	if flags.HealthCheck {
		return healthCheck(cfg, log)
	}

	log.Info().
		Str("version", opts.BuildInfo.BuildVersion()).
		Str("date", opts.BuildInfo.BuildDate()).
		Str("commit", opts.BuildInfo.BuildCommit()).
		Msg("starting")
	log.Debug().Any("config", cfg).Msg("resolved configuration")

	modules := opts.Modules(cfg, log)
	for _, name := range modules.Names() {
		log.Info().Str("module", name).Msg("module registered")
	}

	router, err := httphandler.NewHandler(cfg, modules, log).Init()
	if err != nil {
		log.Error().Err(err).Msg("error building router")
		return ExitFailure
	}

	if err = server.NewServer(router, cfg, log).RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		return ExitFailure
	}

	return ExitOK
}

func healthCheck(cfg config.GatewayConfig, log *logger.Logger) int {
	if err := server.Probe(context.Background(), cfg.LocalURL(), probeTimeout); err != nil {
		log.Error().Err(err).Str("url", cfg.LocalURL()).Msg("health check failed")
		return ExitFailure
	}
	return ExitOK
}
