package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-admin-gateway/internal/route"
	"github.com/MKhiriev/go-admin-gateway/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	HealthPath  = "/healthz"
	MetricsPath = "/metrics"
)

// Init builds the gateway router. Module fragments are registered under the
// API prefix in registry order; a binding repeated by a later module replaces
// the earlier one.
func (h *Handler) Init() (*chi.Mux, error) {
	router := chi.NewRouter()
	router.Use(
		h.withRequestID,
		h.withLogging,
		h.withMetrics,
		h.withRecovery,
		h.withCORS(),
	)

	// set before mounting so the prefix sub-router inherits them
	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	router.Get(HealthPath, h.health)
	router.Method(http.MethodGet, MetricsPath, promhttp.HandlerFor(h.metrics.Registry(), promhttp.HandlerOpts{}))

	mounted, err := h.compileModules()
	if err != nil {
		return nil, err
	}

	router.Route(h.cfg.Server.APIPrefix, func(r chi.Router) {
		owners := make(map[string]string)
		for _, m := range mounted {
			for _, rt := range m.fragment.Routes() {
				if prev, ok := owners[rt.Key()]; ok {
					h.logger.Warn().
						Str("route", rt.Key()).
						Str("previous", prev).
						Str("module", m.name).
						Msg("route bound by more than one module, last mounted wins")
				}
				owners[rt.Key()] = m.name
			}
			m.fragment.Register(r)
		}
		h.logger.Info().Int("routes", len(owners)).Str("prefix", h.cfg.Server.APIPrefix).Msg("module routes mounted")
	})

	return router, nil
}

type mountedModule struct {
	name     string
	fragment *route.Fragment
}

func (h *Handler) compileModules() ([]mountedModule, error) {
	modules := h.modules.Modules()
	mounted := make([]mountedModule, 0, len(modules))

	for _, m := range modules {
		f, err := m.Router()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrModuleRouter, m.Name(), err)
		}
		if f == nil {
			f = route.NewFragment()
		}
		if skipped := f.Skipped(); len(skipped) > 0 {
			h.logger.Warn().Str("module", m.Name()).Int("skipped", len(skipped)).Msg("route table rows with unsupported methods were not routed")
		}
		if n := f.Overrides(); n > 0 {
			h.logger.Debug().Str("module", m.Name()).Int("overrides", n).Msg("module replaced some of its own bindings")
		}
		mounted = append(mounted, mountedModule{name: m.Name(), fragment: f})
	}

	return mounted, nil
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteText(w, "ok", http.StatusOK); err != nil {
		h.logger.Err(err).Msg("error writing health response")
	}
}

// notFound answers every request no route claims, including a known path
// requested with an unbound method.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	markUnmatched(w)
	route.NotFound(w, r)
}
