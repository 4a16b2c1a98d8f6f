// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package module defines the business modules the gateway mounts.
//
// Every module owns a disjoint part of the admin API path space and exposes it
// as a [route.Fragment]. The gateway mounts the fragments under one shared
// prefix; it never looks at a module's name when routing.
package module

import (
	"github.com/MKhiriev/go-admin-gateway/internal/route"
)

//go:generate mockgen -source=module.go -destination=../mock/module_mock.go -package=mock

// ServiceModule is one business module of the admin API.
type ServiceModule interface {
	// Name is a stable label used for diagnostics only.
	Name() string

	// Router compiles the module's routes. It is called once at wire-up.
	Router() (*route.Fragment, error)
}

// Registry is the ordered list of modules built at wire-up. Mount order
// follows registry order.
type Registry struct {
	modules []ServiceModule
}

// NewRegistry returns a registry holding modules in the given order.
func NewRegistry(modules ...ServiceModule) Registry {
	return Registry{modules: modules}
}

// Modules returns the registered modules in mount order.
func (r Registry) Modules() []ServiceModule {
	out := make([]ServiceModule, len(r.modules))
	copy(out, r.modules)
	return out
}

// Names returns the module names in mount order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r.modules))
	for _, m := range r.modules {
		names = append(names, m.Name())
	}
	return names
}

// Len returns the number of registered modules.
func (r Registry) Len() int {
	return len(r.modules)
}
