package config

import "errors"

// Layer faults reported by [Resolver.ResolveWithReport]. None of them ever
// reaches a caller of [Resolver.Resolve]: the faulty layer is dropped and the
// lower-precedence values stand.
var (
	// ErrUnsupportedFormat indicates a config file whose extension is not
	// one of .toml, .yaml, .yml or .json.
	ErrUnsupportedFormat = errors.New("unsupported config file format")
	// ErrInvalidListenAddress indicates a listen address that is not host:port.
	ErrInvalidListenAddress = errors.New("invalid listen address")
	// ErrInvalidOrigins indicates an empty entry in the allowed origins.
	ErrInvalidOrigins = errors.New("invalid allowed origins")
	// ErrInvalidServerConfigs indicates a bad api prefix or negative timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidAuthConfigs indicates a negative token duration.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidInfraConfigs indicates a file domain that is not an http(s) URL.
	ErrInvalidInfraConfigs = errors.New("invalid infra configuration")
)
