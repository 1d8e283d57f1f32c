package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of a CLI run.
// It uses "mapstructure" tags to match the YAML keys of the config file.
type Config struct {
	Variants []string `mapstructure:"variants" yaml:"variants"`
	JSON     bool     `mapstructure:"json" yaml:"json"`
	Banner   bool     `mapstructure:"banner" yaml:"banner"`
	Metrics  bool     `mapstructure:"metrics" yaml:"metrics"`
	LogLevel string   `mapstructure:"log_level" yaml:"log_level"`
}

// Default returns the configuration used when no file or flag says otherwise.
func Default() Config {
	return Config{
		Variants: []string{"ConcreteClass1", "ConcreteClass2"},
		LogLevel: "info",
	}
}

// Load reads a YAML file and overlays it on the defaults.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML bytes and overlays them on the defaults.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(raw) == 0 {
		return cfg, nil
	}

	// A list in the file replaces the default list; it is not merged by index.
	cfg.Variants = nil
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		ZeroFields:       true,
	})
	if err != nil {
		return cfg, fmt.Errorf("failed to create config decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return cfg, fmt.Errorf("failed to decode config: %w", err)
	}
	if len(cfg.Variants) == 0 {
		cfg.Variants = Default().Variants
	}
	return cfg, nil
}
