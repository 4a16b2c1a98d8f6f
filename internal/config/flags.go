package config

import (
	"flag"
	"io"
)

// Flags holds the command-line flags shared by the gateway binaries.
type Flags struct {
	// ConfigDir is the directory the file and dotenv layers are read from.
	ConfigDir string
	// HealthCheck makes the binary probe a running instance and exit.
	HealthCheck bool
}

// ParseFlags parses args (without the program name).
//
// Flags:
//
//	-config-dir directory containing config-example.toml, config.toml and .env
//	-healthcheck probe GET /healthz of a running instance and exit
func ParseFlags(name string, args []string) (Flags, error) {
	var f Flags

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&f.ConfigDir, "config-dir", "", "Directory with configuration files")
	fs.BoolVar(&f.HealthCheck, "healthcheck", false, "Probe a running instance and exit")

	if err := fs.Parse(args); err != nil {
		return Flags{}, err
	}

	return f, nil
}
