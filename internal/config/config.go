// Package config loads aboutlibs settings from YAML files and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables read by the config loader.
const (
	EnvHome      = "ABOUTLIBS_HOME"
	EnvLogLevel  = "ABOUTLIBS_LOG_LEVEL"
	EnvLogFormat = "ABOUTLIBS_LOG_FORMAT"
)

const (
	dirName        = ".aboutlibs"
	configFileName = "config.yaml"
)

// ErrUnknownKey is returned by Get and Set for keys that do not exist.
var ErrUnknownKey = errors.New("unknown config key")

// DisplayConfig holds the row segment toggles.
type DisplayConfig struct {
	ShowAuthor        bool `yaml:"show_author"`
	ShowVersion       bool `yaml:"show_version"`
	ShowLicenseBadges bool `yaml:"show_license_badges"`
}

// LayoutConfig holds presentation geometry.
type LayoutConfig struct {
	// Padding is applied on every side of the list, in cells.
	Padding int `yaml:"padding"`
	// Height caps the list height; 0 uses the terminal height.
	Height int `yaml:"height"`
}

// Config is the full aboutlibs configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Layout  LayoutConfig  `yaml:"layout"`
	Logging LoggingConfig `yaml:"logging"`

	path string
}

// New returns the defaults: every segment shown, no padding, info console logs.
func New() *Config {
	return &Config{
		Display: DisplayConfig{
			ShowAuthor:        true,
			ShowVersion:       true,
			ShowLicenseBadges: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: formatConsole,
		},
		path: Path(),
	}
}

// Dir returns the aboutlibs home directory: $ABOUTLIBS_HOME or ~/.aboutlibs.
func Dir() string {
	if home := os.Getenv(EnvHome); home != "" {
		return home
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return dirName
	}
	return filepath.Join(userHome, dirName)
}

// Path returns the default config file location.
func Path() string {
	return filepath.Join(Dir(), configFileName)
}

// Load reads path (the default location when empty) over the defaults and
// applies environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	cfg.applyEnv()
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfg.path, err)
	}
	return cfg, nil
}

// LoadFile reads path over the defaults without environment overrides or
// validation. It is the starting point for edits that are saved back.
func LoadFile(path string) (*Config, error) {
	cfg := New()
	if path != "" {
		cfg.path = path
	}

	data, err := os.ReadFile(cfg.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config %s: %w", cfg.path, err)
	default:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", cfg.path, err)
		}
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
}

// SetConfigPath changes the file Save writes to.
func (c *Config) SetConfigPath(path string) {
	c.path = path
}

// FilePath returns the file this config was loaded from or will be saved to.
func (c *Config) FilePath() string {
	return c.path
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.Layout.Padding < 0 {
		return fmt.Errorf("layout.padding must be >= 0, got %d", c.Layout.Padding)
	}
	if c.Layout.Height < 0 {
		return fmt.Errorf("layout.height must be >= 0, got %d", c.Layout.Height)
	}
	return c.Logging.Validate()
}

// Save writes the config to its file, creating the directory if needed.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.WriteFile(c.path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.path, err)
	}
	return nil
}

// field binds a dotted key to accessors on Config.
type field struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

func boolField(ptr func(c *Config) *bool) field {
	return field{
		get: func(c *Config) string { return strconv.FormatBool(*ptr(c)) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("expected true or false, got %q", v)
			}
			*ptr(c) = b
			return nil
		},
	}
}

func intField(ptr func(c *Config) *int) field {
	return field{
		get: func(c *Config) string { return strconv.Itoa(*ptr(c)) },
		set: func(c *Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("expected an integer, got %q", v)
			}
			*ptr(c) = n
			return nil
		},
	}
}

func stringField(ptr func(c *Config) *string) field {
	return field{
		get: func(c *Config) string { return *ptr(c) },
		set: func(c *Config, v string) error {
			*ptr(c) = v
			return nil
		},
	}
}

//nolint:gochecknoglobals // Static key table.
var fields = map[string]field{
	"display.show_author":         boolField(func(c *Config) *bool { return &c.Display.ShowAuthor }),
	"display.show_version":        boolField(func(c *Config) *bool { return &c.Display.ShowVersion }),
	"display.show_license_badges": boolField(func(c *Config) *bool { return &c.Display.ShowLicenseBadges }),
	"layout.padding":              intField(func(c *Config) *int { return &c.Layout.Padding }),
	"layout.height":               intField(func(c *Config) *int { return &c.Layout.Height }),
	"logging.level":               stringField(func(c *Config) *string { return &c.Logging.Level }),
	"logging.format":              stringField(func(c *Config) *string { return &c.Logging.Format }),
	"logging.file":                stringField(func(c *Config) *string { return &c.Logging.File }),
}

// Keys returns every settable key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Get returns the value of a dotted key such as "display.show_author".
func (c *Config) Get(key string) (string, error) {
	f, ok := fields[strings.ToLower(key)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return f.get(c), nil
}

// Set assigns a dotted key and re-validates. The config is unchanged on error.
func (c *Config) Set(key, value string) error {
	f, ok := fields[strings.ToLower(key)]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	next := *c
	if err := f.set(&next, value); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}
