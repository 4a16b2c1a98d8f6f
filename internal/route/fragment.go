// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package route

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/go-admin-gateway/models"
	"github.com/go-chi/chi/v5"
)

// SupportedMethods lists the methods a route table row may use.
var SupportedMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}

// CompiledRoute is one bound endpoint: a method, a chi pattern and the
// handler serving it.
type CompiledRoute struct {
	Method  string
	Pattern string
	Handler http.Handler
}

// Key identifies the binding; two routes with the same key cannot coexist.
func (c CompiledRoute) Key() string {
	return c.Method + " " + c.Pattern
}

// Fragment is the compiled router of one module. It is assembled during
// start-up and read-only afterwards.
type Fragment struct {
	routes    []CompiledRoute
	index     map[string]int
	overrides int
	skipped   []models.RouteEntry
}

// NewFragment returns an empty fragment.
func NewFragment() *Fragment {
	return &Fragment{
		index: make(map[string]int),
	}
}

// Handle binds h to method and template. The template goes through
// [NormalizePath]. Binding a method and pattern that are already bound
// replaces the earlier handler.
func (f *Fragment) Handle(method, template string, h http.Handler) error {
	method = strings.ToUpper(method)
	if !slices.Contains(SupportedMethods, method) {
		return fmt.Errorf("%w: %s %s", ErrUnsupportedMethod, method, template)
	}

	pattern, err := NormalizePath(template)
	if err != nil {
		return err
	}

	if strings.HasSuffix(pattern, "/"+WildcardParam) {
		h = requireRest(h)
	}

	rt := CompiledRoute{Method: method, Pattern: pattern, Handler: h}
	if i, ok := f.index[rt.Key()]; ok {
		f.routes[i] = rt
		f.overrides++
		return nil
	}

	f.index[rt.Key()] = len(f.routes)
	f.routes = append(f.routes, rt)
	return nil
}

// HandleFunc is Handle for a plain handler function.
func (f *Fragment) HandleFunc(method, template string, h http.HandlerFunc) error {
	return f.Handle(method, template, h)
}

// Routes returns the bound routes in first-registration order.
func (f *Fragment) Routes() []CompiledRoute {
	return slices.Clone(f.routes)
}

// Len returns the number of distinct bindings.
func (f *Fragment) Len() int {
	return len(f.routes)
}

// Overrides returns how many bindings replaced an earlier one.
func (f *Fragment) Overrides() int {
	return f.overrides
}

// Skipped returns the table rows left unrouted because of their method.
func (f *Fragment) Skipped() []models.RouteEntry {
	return slices.Clone(f.skipped)
}

// Register binds every route of the fragment into r.
func (f *Fragment) Register(r chi.Router) {
	for _, rt := range f.routes {
		r.Method(rt.Method, rt.Pattern, rt.Handler)
	}
}

// Handler returns a standalone router serving only this fragment. Unmatched
// requests get the gateway 404.
func (f *Fragment) Handler() http.Handler {
	r := chi.NewRouter()
	r.NotFound(NotFound)
	r.MethodNotAllowed(NotFound)
	f.Register(r)
	return r
}

// requireRest answers the gateway 404 when a trailing wildcard matched no
// segment at all.
func requireRest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, WildcardParam) == "" {
			NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
