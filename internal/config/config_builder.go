package config

import (
	"errors"
	"fmt"
	"io/fs"

	"dario.cat/mergo"
)

// layer is one named configuration source in precedence order.
type layer struct {
	name string
	cfg  *GatewayConfig
}

// configBuilder accumulates layers lowest-precedence first. Faulty layers are
// never appended; their faults are collected in err.
type configBuilder struct {
	layers []layer
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		layers: make([]layer, 0, 4),
	}
}

// build merges all accepted layers key-wise over an empty config, later layers
// overriding the keys they define. The returned error only describes dropped
// layers; the config is always usable.
func (b *configBuilder) build() (GatewayConfig, error) {
	config := new(GatewayConfig)
	errs := b.err

	for _, l := range b.layers {
		if err := mergo.Merge(config, l.cfg, mergo.WithOverride); err != nil {
			errs = errors.Join(errs, fmt.Errorf("error merging %s layer: %w", l.name, err))
		}
	}

	return *config, errs
}

func (b *configBuilder) add(name string, cfg *GatewayConfig) *configBuilder {
	if err := cfg.validate(); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("%s layer dropped: %w", name, err))
		return b
	}

	b.layers = append(b.layers, layer{name: name, cfg: cfg})
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	defaults := Default()
	return b.add("defaults", &defaults)
}

func (b *configBuilder) withFile(path string) *configBuilder {
	fileCfg, err := parseFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return b
	}
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("file layer %s dropped: %w", path, err))
		return b
	}

	return b.add("file "+path, fileCfg)
}

func (b *configBuilder) withEnv(prefix, dotenvPath string, environ []string) *configBuilder {
	vars, err := environment(dotenvPath, environ)
	if err != nil {
		b.err = errors.Join(b.err, err)
	}

	envCfg := &GatewayConfig{}
	if err := parseEnv(envCfg, prefix, vars); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("env layer dropped: %w", err))
		return b
	}

	return b.add("env", envCfg)
}
