// Package config resolves the gateway configuration.
//
// Configuration is assembled from the following layers, lowest precedence
// first (a later layer overrides only the keys it defines):
//  1. hard-coded defaults ([Default])
//  2. config-example.toml
//  3. config.toml
//  4. environment variables prefixed with DAOGW_, nested sections joined
//     with "__"; values from an optional .env file sit below the process
//     environment
//
// Missing files are skipped. A layer that cannot be read, decoded or
// validated is dropped as a whole, so [Resolve] always returns a usable
// configuration.
package config
