package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/runger/pickaboo/picker"
)

// Config represents the pickaboo configuration.
type Config struct {
	Picker PickerConfig `yaml:"picker"`
	Log    LogConfig    `yaml:"log"`
}

// PickerConfig holds the defaults for every picker session started from the
// command line. Flags override them.
type PickerConfig struct {
	AlternateScreen bool   `yaml:"alternate_screen"` // Draw on the alternate screen
	AllowWrap       bool   `yaml:"allow_wrap"`       // Wrap around at the first/last item
	Delimiter       string `yaml:"delimiter"`        // Separator between inline items
	Paren           string `yaml:"paren"`            // Split in half into left/right parentheses
	DescriptionMode string `yaml:"description_mode"` // none, selected, all
	NameWidth       string `yaml:"name_width"`       // auto or a positive number
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Log file path (overrides default)
}

// DefaultConfig returns a config with default values.
func DefaultConfig() *Config {
	return &Config{
		Picker: PickerConfig{
			AlternateScreen: false,
			AllowWrap:       false,
			Delimiter:       "/",
			Paren:           "",
			DescriptionMode: "none",
			NameWidth:       "auto",
		},
		Log: LogConfig{
			Level: "info",
			File:  "",
		},
	}
}

// Load loads the configuration from the default path.
func Load() (*Config, error) {
	paths := DefaultPaths()
	return LoadFromFile(paths.ConfigFile())
}

// LoadFromFile loads the configuration from a specific file.
func LoadFromFile(path string) (*Config, error) {
	cfg, err := ReadFromFile(path)
	if err != nil {
		return nil, err
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// ReadFromFile reads the config file over the defaults without applying
// environment overrides or validating. It is the base for edits that are
// saved back to path.
func ReadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves the configuration to the default path.
func (c *Config) Save() error {
	paths := DefaultPaths()
	return c.SaveToFile(paths.ConfigFile())
}

// SaveToFile saves the configuration to a specific file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Get retrieves a configuration value by key (e.g., "picker.allow_wrap").
func (c *Config) Get(key string) (string, error) {
	parts := strings.Split(key, ".")
	if len(parts) != 2 {
		return "", errors.New("key must be in format 'section.key'")
	}

	section, field := parts[0], parts[1]

	switch section {
	case "picker":
		return c.getPickerField(field)
	case "log":
		return c.getLogField(field)
	default:
		return "", fmt.Errorf("unknown section: %s", section)
	}
}

// Set sets a configuration value by key (e.g., "picker.allow_wrap").
func (c *Config) Set(key, value string) error {
	parts := strings.Split(key, ".")
	if len(parts) != 2 {
		return errors.New("key must be in format 'section.key'")
	}

	section, field := parts[0], parts[1]

	switch section {
	case "picker":
		return c.setPickerField(field, value)
	case "log":
		return c.setLogField(field, value)
	default:
		return fmt.Errorf("unknown section: %s", section)
	}
}

func (c *Config) getPickerField(field string) (string, error) {
	switch field {
	case "alternate_screen":
		return strconv.FormatBool(c.Picker.AlternateScreen), nil
	case "allow_wrap":
		return strconv.FormatBool(c.Picker.AllowWrap), nil
	case "delimiter":
		return c.Picker.Delimiter, nil
	case "paren":
		return c.Picker.Paren, nil
	case "description_mode":
		return c.Picker.DescriptionMode, nil
	case "name_width":
		return c.Picker.NameWidth, nil
	default:
		return "", fmt.Errorf("unknown field: picker.%s", field)
	}
}

func (c *Config) setPickerField(field, value string) error {
	switch field {
	case "alternate_screen":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for alternate_screen: %w", err)
		}
		c.Picker.AlternateScreen = v
	case "allow_wrap":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for allow_wrap: %w", err)
		}
		c.Picker.AllowWrap = v
	case "delimiter":
		if strings.ContainsAny(value, "\r\n") {
			return errors.New("invalid delimiter: must not contain newlines")
		}
		c.Picker.Delimiter = value
	case "paren":
		if strings.ContainsAny(value, "\r\n") {
			return errors.New("invalid paren: must not contain newlines")
		}
		c.Picker.Paren = value
	case "description_mode":
		if _, err := picker.ParseDescriptionMode(value); err != nil {
			return fmt.Errorf("invalid description_mode: %s (must be none, selected, or all)", value)
		}
		c.Picker.DescriptionMode = value
	case "name_width":
		if _, err := picker.ParseNameWidth(value); err != nil {
			return fmt.Errorf("invalid name_width: %s (must be auto or a positive number)", value)
		}
		c.Picker.NameWidth = value
	default:
		return fmt.Errorf("unknown field: picker.%s", field)
	}
	return nil
}

func (c *Config) getLogField(field string) (string, error) {
	switch field {
	case "level":
		return c.Log.Level, nil
	case "file":
		return c.Log.File, nil
	default:
		return "", fmt.Errorf("unknown field: log.%s", field)
	}
}

func (c *Config) setLogField(field, value string) error {
	switch field {
	case "level":
		if !isValidLogLevel(value) {
			return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", value)
		}
		c.Log.Level = value
	case "file":
		c.Log.File = value
	default:
		return fmt.Errorf("unknown field: log.%s", field)
	}
	return nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, err := c.PickerConfig(); err != nil {
		return err
	}

	if !isValidLogLevel(c.Log.Level) {
		return fmt.Errorf("log.level must be debug, info, warn, or error (got: %s)", c.Log.Level)
	}

	return nil
}

// PickerConfig converts the picker section into a picker.Config.
func (c *Config) PickerConfig() (picker.Config, error) {
	mode, err := picker.ParseDescriptionMode(c.Picker.DescriptionMode)
	if err != nil {
		return picker.Config{}, fmt.Errorf("picker.description_mode: %w", err)
	}
	width, err := picker.ParseNameWidth(c.Picker.NameWidth)
	if err != nil {
		return picker.Config{}, fmt.Errorf("picker.name_width: %w", err)
	}

	left, right := picker.ParseParen(c.Picker.Paren)
	pc := picker.Config{
		AlternateScreen: c.Picker.AlternateScreen,
		AllowWrap:       c.Picker.AllowWrap,
		Delimiter:       c.Picker.Delimiter,
		LeftParen:       left,
		RightParen:      right,
		DescriptionMode: mode,
		NameWidth:       width,
	}
	if err := pc.Validate(); err != nil {
		return picker.Config{}, err
	}
	return pc, nil
}

// LogFile returns the configured log file, or the default under the cache
// directory.
func (c *Config) LogFile() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return DefaultPaths().LogFile()
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// ApplyEnvOverrides applies environment variable overrides to the config.
// Environment variables override config file values.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("PICKABOO_ALT_SCREEN"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Picker.AlternateScreen = b
		}
	}
	if v := os.Getenv("PICKABOO_WRAP"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Picker.AllowWrap = b
		}
	}
	if v := os.Getenv("PICKABOO_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil && b {
			c.Log.Level = "debug"
		}
	}
	if v := os.Getenv("PICKABOO_LOG_LEVEL"); v != "" {
		if isValidLogLevel(v) {
			c.Log.Level = v
		}
	}
}

// ListKeys returns user-facing configuration keys.
func ListKeys() []string {
	return []string{
		"picker.alternate_screen",
		"picker.allow_wrap",
		"picker.delimiter",
		"picker.paren",
		"picker.description_mode",
		"picker.name_width",
		"log.level",
		"log.file",
	}
}
