// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-admin-gateway/internal/logger"
)

const (
	// EnvPrefix prefixes every environment variable the resolver reads.
	EnvPrefix = "DAOGW_"
	// EnvSeparator separates nested sections inside a variable name.
	EnvSeparator = "__"

	// ExampleFile is the checked-in template layer.
	ExampleFile = "config-example.toml"
	// LocalFile is the untracked local override layer.
	LocalFile = "config.toml"
	// DotEnvFile is read into the environment layer below real variables.
	DotEnvFile = ".env"
)

// Resolver merges the configuration layers, lowest precedence first:
//  1. [Default]
//  2. the example file layer (config-example.toml)
//  3. the local file layer (config.toml)
//  4. environment variables under DAOGW_, with .env values below the
//     process environment
//
// A Resolver holds no state between calls; every Resolve reads its sources
// again and returns a fresh value.
type Resolver struct {
	dir     string
	files   []string
	dotenv  string
	prefix  string
	environ func() []string
	logger  *logger.Logger
}

// Option customises a [Resolver].
type Option func(*Resolver)

// WithDir sets the directory relative file layers and the dotenv file are
// looked up in. Default: the working directory.
func WithDir(dir string) Option {
	return func(r *Resolver) {
		r.dir = dir
	}
}

// WithFiles replaces the file layers, lowest precedence first.
func WithFiles(files ...string) Option {
	return func(r *Resolver) {
		r.files = files
	}
}

// WithDotEnv sets the dotenv file name; an empty name disables it.
func WithDotEnv(name string) Option {
	return func(r *Resolver) {
		r.dotenv = name
	}
}

// WithEnviron replaces os.Environ as the source of process variables.
func WithEnviron(environ func() []string) Option {
	return func(r *Resolver) {
		r.environ = environ
	}
}

// WithLogger sets the logger dropped layers are reported to.
func WithLogger(l *logger.Logger) Option {
	return func(r *Resolver) {
		r.logger = l
	}
}

// NewResolver returns a Resolver with the standard layers.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		files:   []string{ExampleFile, LocalFile},
		dotenv:  DotEnvFile,
		prefix:  EnvPrefix,
		environ: os.Environ,
		logger:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the merged configuration. It never fails: faulty layers are
// dropped, logged at warn level, and the lower-precedence values stand. With
// every optional layer absent it returns exactly [Default].
func (r *Resolver) Resolve() GatewayConfig {
	cfg, err := r.ResolveWithReport()
	if err != nil {
		r.logger.Warn().Err(err).Msg("some configuration layers were dropped")
	}
	return cfg
}

// ResolveWithReport is Resolve plus the joined faults of the dropped layers.
// The returned config is valid even when the error is non-nil.
func (r *Resolver) ResolveWithReport() (GatewayConfig, error) {
	b := newConfigBuilder().withDefaults()
	for _, f := range r.files {
		b.withFile(r.path(f))
	}

	dotenv := ""
	if r.dotenv != "" {
		dotenv = r.path(r.dotenv)
	}
	b.withEnv(r.prefix, dotenv, r.environ())

	return b.build()
}

func (r *Resolver) path(name string) string {
	if filepath.IsAbs(name) || r.dir == "" {
		return name
	}
	return filepath.Join(r.dir, name)
}

// Resolve resolves the standard layers relative to the working directory.
func Resolve() GatewayConfig {
	return NewResolver().Resolve()
}
