// Package config loads, validates and saves the dosecalc configuration file.
//
// Values are resolved in order: built-in defaults, the YAML file at
// ConfigPath, then environment variables. CLI flags override the result at
// the command layer.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rshade/dosecalc/internal/consumption"
)

// Output formats understood by the CLI.
const (
	OutputFormatTable  = "table"
	OutputFormatJSON   = "json"
	OutputFormatNDJSON = "ndjson"
)

// Environment variables.
const (
	EnvHome         = "DOSECALC_HOME"
	EnvConfig       = "DOSECALC_CONFIG"
	EnvLogLevel     = "DOSECALC_LOG_LEVEL"
	EnvLogFormat    = "DOSECALC_LOG_FORMAT"
	EnvOutputFormat = "DOSECALC_OUTPUT_FORMAT"
	EnvServerAddr   = "DOSECALC_SERVER_ADDR"
)

// Server defaults.
const (
	DefaultServerAddress   = ":8080"
	DefaultReadTimeout     = 5 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

// Validation errors.
var (
	ErrInvalidOutputFormat = errors.New("output format must be one of table, json, ndjson")
	ErrInvalidLogFormat    = errors.New("log format must be one of json, console, text")
	ErrInvalidLogLevel     = errors.New("log level must be one of trace, debug, info, warn, error")
	ErrInvalidLogOutput    = errors.New("log output must be one of stderr, stdout")
	ErrServerAddressEmpty  = errors.New("server address cannot be empty")
	ErrInvalidTimeout      = errors.New("server timeouts must be positive")
)

// Config is the full dosecalc configuration.
type Config struct {
	// Version is the configuration schema version (semver).
	Version  string         `yaml:"version"  json:"version"`
	Output   OutputConfig   `yaml:"output"   json:"output"`
	Logging  LoggingConfig  `yaml:"logging"  json:"logging"`
	Drinks   DrinksConfig   `yaml:"drinks"   json:"drinks"`
	Nicotine NicotineConfig `yaml:"nicotine" json:"nicotine"`
	Server   ServerConfig   `yaml:"server"   json:"server"`

	configPath string
}

// OutputConfig controls CLI output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"`
}

// DrinksConfig holds the drink calculator presets.
type DrinksConfig struct {
	Beverage string `yaml:"beverage" json:"beverage"`
	Unit     string `yaml:"unit"     json:"unit"`
	// Volume in Unit. Zero selects the unit's preset (330 mL, 0.33 L, 12 fl oz).
	Volume   float64 `yaml:"volume,omitempty" json:"volume,omitempty"`
	Quantity int     `yaml:"quantity"         json:"quantity"`
}

// NicotineConfig holds the nicotine calculator presets.
type NicotineConfig struct {
	Percent    float64 `yaml:"percent"     json:"percent"`
	CapacityMl float64 `yaml:"capacity_ml" json:"capacity_ml"`
	Days       float64 `yaml:"days"        json:"days"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Address         string        `yaml:"address"          json:"address"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     json:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    json:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" json:"shutdown_timeout"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Version: SchemaVersion,
		Output:  OutputConfig{DefaultFormat: OutputFormatTable},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Drinks: DrinksConfig{
			Beverage: string(consumption.BeverageBeer),
			Unit:     string(consumption.UnitMilliliters),
			Quantity: consumption.DefaultQuantity,
		},
		Nicotine: NicotineConfig{
			Percent:    consumption.DefaultNicotinePercent,
			CapacityMl: consumption.DefaultCapacityMl,
			Days:       consumption.DefaultDaysToFinish,
		},
		Server: ServerConfig{
			Address:         DefaultServerAddress,
			ReadTimeout:     DefaultReadTimeout,
			WriteTimeout:    DefaultWriteTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
	}
}

// New returns the effective configuration: defaults, then the config file if
// it exists and parses, then environment overrides. A broken file is
// reported on stderr and ignored so the calculators stay usable; use Load to
// surface the error.
func New() *Config {
	path := ResolveConfigPath()

	cfg, err := Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: ignoring config file %s: %v\n", path, err)
		}
		cfg = DefaultConfig()
		cfg.configPath = path
	}

	cfg.ApplyEnv(os.LookupEnv)
	return cfg
}

// Load reads the YAML file at path on top of the defaults. It returns an
// error wrapping os.ErrNotExist when the file is missing.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.configPath = path

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err = CheckSchemaVersion(cfg.Version); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overrides fields from environment variables.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) {
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookupEnv(EnvOutputFormat); ok && v != "" {
		c.Output.DefaultFormat = v
	}
	if v, ok := lookupEnv(EnvServerAddr); ok && v != "" {
		c.Server.Address = v
	}
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := CheckSchemaVersion(c.Version); err != nil {
		return err
	}

	switch c.Output.DefaultFormat {
	case OutputFormatTable, OutputFormatJSON, OutputFormatNDJSON:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidOutputFormat, c.Output.DefaultFormat)
	}

	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if err := c.Drinks.Validate(); err != nil {
		return fmt.Errorf("drinks: %w", err)
	}
	if err := c.Nicotine.Validate(); err != nil {
		return fmt.Errorf("nicotine: %w", err)
	}
	return c.Server.Validate()
}

// Validate checks the drink presets against the calculator limits.
func (d DrinksConfig) Validate() error {
	_, err := d.Request()
	return err
}

// Request resolves the presets into a calculator request: the beverage's
// default ABV and the unit's preset volume when Volume is zero.
func (d DrinksConfig) Request() (consumption.DrinkRequest, error) {
	beverage, err := consumption.ParseBeverage(d.Beverage)
	if err != nil {
		return consumption.DrinkRequest{}, err
	}
	unit, err := consumption.ParseVolumeUnit(d.Unit)
	if err != nil {
		return consumption.DrinkRequest{}, err
	}

	volume := d.Volume
	if volume == 0 {
		volume = unit.DefaultVolume()
	}

	req := consumption.DrinkRequest{
		Beverage: beverage,
		Volume:   volume,
		Unit:     unit,
		ABV:      beverage.DefaultABV(),
		Quantity: d.Quantity,
	}

	ml, err := consumption.NormalizeToMilliliters(req.Volume, req.Unit)
	if err != nil {
		return consumption.DrinkRequest{}, err
	}
	in := consumption.DrinkInput{VolumeMilliliters: ml, ABVFraction: req.ABV, Quantity: req.Quantity}
	if err = in.Validate(); err != nil {
		return consumption.DrinkRequest{}, err
	}
	return req, nil
}

// Validate checks the nicotine presets against the calculator limits.
func (n NicotineConfig) Validate() error {
	return n.Input().Validate()
}

// Input returns the presets as calculator input.
func (n NicotineConfig) Input() consumption.NicotineInput {
	return consumption.NicotineInput{
		NicotinePercent:     n.Percent,
		CapacityMilliliters: n.CapacityMl,
		DaysToFinish:        n.Days,
	}
}

// Validate checks the server settings.
func (s ServerConfig) Validate() error {
	if strings.TrimSpace(s.Address) == "" {
		return ErrServerAddressEmpty
	}
	if s.ReadTimeout <= 0 || s.WriteTimeout <= 0 || s.ShutdownTimeout <= 0 {
		return ErrInvalidTimeout
	}
	return nil
}

// ConfigPath returns the file this config was loaded from or will be saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the save location.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the config as YAML, creating the parent directory.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", c.configPath, err)
	}
	return nil
}

// ResolveConfigPath returns DOSECALC_CONFIG, or config.yaml in the config directory.
func ResolveConfigPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	dir, err := GetConfigDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(dir, "config.yaml")
}
