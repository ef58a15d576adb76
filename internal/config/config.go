package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds disdump's defaults, loadable from a YAML file and overridable
// by CLI flags. Mirrors the teacher's flag-backed Config struct, adapted to
// a file-backed default layer since disdump's flags are owned by
// cmd/disdump's urfave/cli app rather than the standard flag package.
type Config struct {
	// Input is the path to a file of concatenated PDUs to decode. "-" means
	// stdin.
	Input string `yaml:"input"`

	// Version is read from the config file but not applied: disdump always
	// decodes each PDU per the protocol version its header declares.
	Version string `yaml:"version"`

	// Strict enables DecodeOptions.Strict.
	Strict bool `yaml:"strict"`

	// RejectUnknownPduType enables DecodeOptions.RejectUnknownPduType.
	RejectUnknownPduType bool `yaml:"reject_unknown_pdu_type"`

	// LogLevel is the zap level name passed to logging.New.
	LogLevel string `yaml:"log_level"`

	// Output selects disdump's rendering: "text" or "json".
	Output string `yaml:"output"`
}

// Default returns the built-in defaults applied before a config file or CLI
// flags are layered on top.
func Default() *Config {
	return &Config{
		Input:    "-",
		LogLevel: "info",
		Output:   "text",
	}
}

// Load reads a YAML config file and overlays it onto Default(). A missing
// path is not an error — disdump runs fine on flags and defaults alone.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
