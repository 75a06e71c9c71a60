package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the full application configuration.
type Config struct {
	Paths        PathsConfig         `json:"paths"`
	Participants []ParticipantConfig `json:"participants"`
	Build        BuildConfig         `json:"build"`
	Labels       LabelsConfig        `json:"labels"`
	Weather      WeatherConfig       `json:"weather"`
	Logging      LoggingConfig       `json:"logging"`
}

// ParticipantConfig declares one anonymized participant id and its built-in
// default times.
type ParticipantConfig struct {
	ID             string `json:"id"`
	DefaultDropoff string `json:"default_dropoff"`
	DefaultPickup  string `json:"default_pickup"`
}

// Load reads the configuration file, applies environment overrides with the
// SF_ prefix, then defaults and validation.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("SF_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "sf_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults applies sane defaults to every section.
func (c *Config) SetDefaults() {
	c.Paths.SetDefaults()
	c.Build.SetDefaults()
	c.Labels.SetDefaults()
	c.Weather.SetDefaults()
	c.Logging.SetDefaults()
	if len(c.Participants) == 0 {
		c.Participants = []ParticipantConfig{
			{ID: "c1", DefaultDropoff: "08:30", DefaultPickup: "17:30"},
			{ID: "c2", DefaultDropoff: "08:30", DefaultPickup: "17:30"},
		}
	}
}

// Validate checks every section.
func (c *Config) Validate() error {
	for _, p := range c.Participants {
		if p.ID == "" {
			return fmt.Errorf("participant id is required")
		}
	}
	if err := c.Build.Validate(); err != nil {
		return err
	}
	return c.Logging.Validate()
}
