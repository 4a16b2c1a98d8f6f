package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// parseFile decodes one file layer. The decoder is picked by extension:
// .toml, .yaml/.yml or .json. Keys absent from the file stay zero and are
// therefore not defined by this layer.
//
// A missing file is reported through the error returned by os.ReadFile so the
// caller can tell it apart (errors.Is(err, fs.ErrNotExist)) from a decoding
// fault.
func parseFile(path string) (*GatewayConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := new(GatewayConfig)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".json":
		err = json.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	return cfg, nil
}
