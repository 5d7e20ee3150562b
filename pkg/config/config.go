// Package config loads the YAML configuration of a UWB service: the chips
// it drives, the UCI capture log and the dispatch policy.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/uwbcore/uwb-go/pkg/ucilog"
)

// Defaults applied by ApplyDefaults.
const (
	DefaultChipID         = "default"
	DefaultCommandTimeout = 5 * time.Second
	DefaultQueueLength    = 32
	DefaultLogMode        = "filtered"
)

// Validation errors.
var (
	ErrEmptyChipID     = errors.New("chip id is empty")
	ErrDuplicateChipID = errors.New("duplicate chip id")
	ErrUnknownDefault  = errors.New("default chip is not configured")
	ErrNegativeValue   = errors.New("value must not be negative")
)

// Position is a chip antenna position in meters.
type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Chip is one UWB chip.
type Chip struct {
	ID       string    `yaml:"id"`
	Position *Position `yaml:"position,omitempty"`
}

// LogConfig configures UCI capture logging.
type LogConfig struct {
	// Dir is where capture files are written. Empty disables files.
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
	Mode   string `yaml:"mode"`
}

// Config is the service configuration.
type Config struct {
	Chips          []Chip        `yaml:"chips"`
	DefaultChip    string        `yaml:"default_chip"`
	Log            LogConfig     `yaml:"log"`
	CommandTimeout time.Duration `yaml:"command_timeout"`
	QueueLength    int           `yaml:"queue_length"`
	SingleInstance *bool         `yaml:"single_instance"`
}

// Default returns the configuration used when no file is given: one chip
// named DefaultChipID.
func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates YAML bytes.
func Parse(data []byte) (*Config, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads YAML from r, applies defaults and validates the result.
// Unknown keys are rejected. An empty document yields Default().
func Decode(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if len(c.Chips) == 0 {
		c.Chips = []Chip{{ID: DefaultChipID}}
	}
	if c.DefaultChip == "" {
		c.DefaultChip = c.Chips[0].ID
	}
	if c.Log.Prefix == "" {
		c.Log.Prefix = ucilog.DefaultPrefix
	}
	if c.Log.Mode == "" {
		c.Log.Mode = DefaultLogMode
	}
	if c.CommandTimeout == 0 {
		c.CommandTimeout = DefaultCommandTimeout
	}
	if c.QueueLength == 0 {
		c.QueueLength = DefaultQueueLength
	}
	if c.SingleInstance == nil {
		single := true
		c.SingleInstance = &single
	}
}

// Validate checks chip ids, the default chip, the log mode and the
// numeric limits. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(c.Chips))
	for i, chip := range c.Chips {
		switch {
		case chip.ID == "":
			errs = append(errs, fmt.Errorf("chips[%d]: %w", i, ErrEmptyChipID))
		case seen[chip.ID]:
			errs = append(errs, fmt.Errorf("chips[%d]: %w: %q", i, ErrDuplicateChipID, chip.ID))
		}
		seen[chip.ID] = true
	}
	if c.DefaultChip != "" && !seen[c.DefaultChip] {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownDefault, c.DefaultChip))
	}
	if _, err := ucilog.ParseMode(c.Log.Mode); err != nil {
		errs = append(errs, fmt.Errorf("log.mode: %w", err))
	}
	if c.CommandTimeout < 0 {
		errs = append(errs, fmt.Errorf("command_timeout: %w", ErrNegativeValue))
	}
	if c.QueueLength < 0 {
		errs = append(errs, fmt.Errorf("queue_length: %w", ErrNegativeValue))
	}
	return errors.Join(errs...)
}

// ChipIDs returns the configured chip ids in order.
func (c *Config) ChipIDs() []string {
	ids := make([]string, len(c.Chips))
	for i, chip := range c.Chips {
		ids[i] = chip.ID
	}
	return ids
}

// Position returns the position of a chip, if configured.
func (c *Config) Position(chipID string) (Position, bool) {
	for _, chip := range c.Chips {
		if chip.ID == chipID && chip.Position != nil {
			return *chip.Position, true
		}
	}
	return Position{}, false
}

// LogMode returns the parsed capture mode. Call after Validate.
func (c *Config) LogMode() ucilog.Mode {
	m, _ := ucilog.ParseMode(c.Log.Mode)
	return m
}

// LogFactory builds the capture log factory described by the
// configuration.
func (c *Config) LogFactory(logger *slog.Logger) *ucilog.Factory {
	return ucilog.NewFactory(ucilog.FactoryConfig{
		Dir:    c.Log.Dir,
		Prefix: c.Log.Prefix,
		Mode:   c.LogMode(),
		Logger: logger,
	})
}

// Single reports the single-instance policy.
func (c *Config) Single() bool {
	return c.SingleInstance == nil || *c.SingleInstance
}
