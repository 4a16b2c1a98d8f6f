// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// environment builds the variable set of the environment layer: values from
// the optional dotenv file, overridden by the process environment.
//
// The dotenv file is only read, never exported into the process. A missing
// file is not an error; any other read fault is returned alongside the
// process environment so the layer can still be applied.
func environment(dotenvPath string, environ []string) (map[string]string, error) {
	vars := make(map[string]string)

	var dotenvErr error
	if dotenvPath != "" {
		fileVars, err := godotenv.Read(dotenvPath)
		switch {
		case err == nil:
			for k, v := range fileVars {
				vars[k] = v
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			dotenvErr = fmt.Errorf("error reading dotenv file %s: %w", dotenvPath, err)
		}
	}

	for k, v := range env.ToMap(environ) {
		vars[k] = v
	}

	return vars, dotenvErr
}

// parseEnv populates cfg from vars using the caarlos0/env library. Struct
// fields are mapped via their `env` and `envPrefix` tags below prefix.
//
// Returns a wrapped error if a value cannot be converted to the target type.
func parseEnv(cfg *GatewayConfig, prefix string, vars map[string]string) error {
	err := env.ParseWithOptions(cfg, env.Options{
		Prefix:      prefix,
		Environment: vars,
	})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
