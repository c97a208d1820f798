package platform

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aretw0/almanac/pkg/adapters/fs"
	"github.com/aretw0/almanac/pkg/core"
	"github.com/aretw0/almanac/pkg/export"
	"gopkg.in/yaml.v3"
)

// ConfigFileNames are the file names FindConfig looks for, in order.
var ConfigFileNames = []string{".almanac.yaml", ".almanac.yml"}

var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrInvalidConfig  = errors.New("invalid config")
)

// Config is the on-disk configuration file.
//
//	layout: vertical
//	mark_today: true
//	timezone: Europe/Berlin
//	format: json
type Config struct {
	Layout    string `yaml:"layout,omitempty"`
	MarkToday *bool  `yaml:"mark_today,omitempty"`
	Timezone  string `yaml:"timezone,omitempty"`
	Format    string `yaml:"format,omitempty"`
}

// LoadConfig reads and validates the config file at path.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	cfg, err := ParseConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes a YAML config. Unknown keys are rejected and an empty
// document yields the zero Config.
func ParseConfig(r io.Reader) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every set field.
func (c Config) Validate() error {
	if _, err := core.ParseLayout(c.Layout); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("%w: timezone %q: %v", ErrInvalidConfig, c.Timezone, err)
	}
	if c.Format != "" {
		if _, err := export.Lookup(c.Format); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}

// Location returns the configured time zone, or nil when none is set.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return nil, nil
	}
	return time.LoadLocation(c.Timezone)
}

// Save writes the config as YAML, replacing any existing file atomically.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return fs.WriteFileAtomic(path, data, 0644)
}
