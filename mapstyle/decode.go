package mapstyle

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"sigs.k8s.io/yaml"
)

// Format is a configuration file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unsupported config file extension %q", filepath.Ext(path))
}

// Decode parses a partial configuration. Values are kept as decoded; no
// shape or type checks happen here. Non-finite numbers are rejected.
func Decode(data []byte, format Format) (Config, error) {
	cfg := Config{}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &cfg)
	case FormatYAML:
		err = yaml.Unmarshal(data, &cfg)
	case FormatTOML:
		err = toml.Unmarshal(data, &cfg)
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
	if err == nil {
		err = checkFinite(map[string]any(cfg))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s config: %w", format, err)
	}
	return cfg, nil
}

// checkFinite rejects NaN and infinite numbers, which TOML allows but a
// style document cannot carry.
func checkFinite(v any) error {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return fmt.Errorf("non-finite number %v", n)
		}
	case float32:
		return checkFinite(float64(n))
	case map[string]any:
		for k, item := range n {
			if err := checkFinite(item); err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
		}
	case []any:
		for i, item := range n {
			if err := checkFinite(item); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
	}
	return nil
}

// Encode renders a configuration in the given format.
func Encode(cfg Config, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(cfg, "", "  ")
	case FormatYAML:
		return yaml.Marshal(cfg)
	case FormatTOML:
		return toml.Marshal(map[string]any(cfg))
	}
	return nil, fmt.Errorf("unsupported config format %q", format)
}
