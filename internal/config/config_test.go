package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/runger/pickaboo/picker"
)

// clearEnv unsets every override so tests see file values only.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PICKABOO_ALT_SCREEN", "PICKABOO_WRAP", "PICKABOO_DEBUG", "PICKABOO_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Picker.AlternateScreen {
		t.Error("Expected alternate_screen=false")
	}
	if cfg.Picker.AllowWrap {
		t.Error("Expected allow_wrap=false")
	}
	if cfg.Picker.Delimiter != "/" {
		t.Errorf("Expected delimiter=/, got %s", cfg.Picker.Delimiter)
	}
	if cfg.Picker.DescriptionMode != "none" {
		t.Errorf("Expected description_mode=none, got %s", cfg.Picker.DescriptionMode)
	}
	if cfg.Picker.NameWidth != "auto" {
		t.Errorf("Expected name_width=auto, got %s", cfg.Picker.NameWidth)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Expected log.level=info, got %s", cfg.Log.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestDefaultConfig_MatchesPickerDefaults(t *testing.T) {
	pc, err := DefaultConfig().PickerConfig()
	if err != nil {
		t.Fatalf("PickerConfig() error = %v", err)
	}
	if pc != picker.DefaultConfig() {
		t.Errorf("PickerConfig() = %+v, want %+v", pc, picker.DefaultConfig())
	}
}

func TestConfigGet(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		key      string
		expected string
	}{
		{"picker.alternate_screen", "false"},
		{"picker.allow_wrap", "false"},
		{"picker.delimiter", "/"},
		{"picker.paren", ""},
		{"picker.description_mode", "none"},
		{"picker.name_width", "auto"},
		{"log.level", "info"},
		{"log.file", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := cfg.Get(tt.key)
			if err != nil {
				t.Fatalf("Get(%q) error = %v", tt.key, err)
			}
			if got != tt.expected {
				t.Errorf("Get(%q) = %q, want %q", tt.key, got, tt.expected)
			}
		})
	}
}

func TestConfigSet(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"picker.alternate_screen", "true"},
		{"picker.allow_wrap", "true"},
		{"picker.delimiter", "|"},
		{"picker.paren", "()"},
		{"picker.description_mode", "all"},
		{"picker.name_width", "12"},
		{"log.level", "debug"},
		{"log.file", "/tmp/pickaboo.log"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			cfg := DefaultConfig()
			if err := cfg.Set(tt.key, tt.value); err != nil {
				t.Fatalf("Set(%q, %q) error = %v", tt.key, tt.value, err)
			}
			got, err := cfg.Get(tt.key)
			if err != nil {
				t.Fatalf("Get(%q) error = %v", tt.key, err)
			}
			if got != tt.value {
				t.Errorf("Get(%q) = %q, want %q", tt.key, got, tt.value)
			}
		})
	}
}

func TestConfigSet_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"picker.alternate_screen", "sometimes"},
		{"picker.allow_wrap", "2x"},
		{"picker.delimiter", "a\nb"},
		{"picker.description_mode", "some"},
		{"picker.name_width", "0"},
		{"log.level", "verbose"},
		{"picker.unknown", "x"},
		{"log.unknown", "x"},
		{"unknown.key", "x"},
		{"no_section", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg := DefaultConfig()
			if err := cfg.Set(tt.key, tt.value); err == nil {
				t.Errorf("Set(%q, %q) should fail", tt.key, tt.value)
			}
		})
	}
}

func TestConfigGet_Invalid(t *testing.T) {
	cfg := DefaultConfig()

	for _, key := range []string{"picker", "a.b.c", "unknown.key", "picker.nope", "log.nope"} {
		if _, err := cfg.Get(key); err == nil {
			t.Errorf("Get(%q) should fail", key)
		}
	}
}

func TestPickerConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Picker.AlternateScreen = true
	cfg.Picker.AllowWrap = true
	cfg.Picker.Delimiter = " | "
	cfg.Picker.Paren = "(<>)"
	cfg.Picker.DescriptionMode = "selected"
	cfg.Picker.NameWidth = "10"

	pc, err := cfg.PickerConfig()
	if err != nil {
		t.Fatalf("PickerConfig() error = %v", err)
	}

	want := picker.Config{
		AlternateScreen: true,
		AllowWrap:       true,
		Delimiter:       " | ",
		LeftParen:       "(<",
		RightParen:      ">)",
		DescriptionMode: picker.DescriptionSelected,
		NameWidth:       picker.FixedNameWidth(10),
	}
	if pc != want {
		t.Errorf("PickerConfig() = %+v, want %+v", pc, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"bad description mode", func(c *Config) { c.Picker.DescriptionMode = "most" }},
		{"bad name width", func(c *Config) { c.Picker.NameWidth = "-4" }},
		{"newline delimiter", func(c *Config) { c.Picker.Delimiter = "\n" }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestValidate_WrapsPickerError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Picker.DescriptionMode = "most"

	if err := cfg.Validate(); !errors.Is(err, picker.ErrInvalidConfig) {
		t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if cfg.Picker.Delimiter != "/" {
		t.Errorf("expected defaults, got delimiter %q", cfg.Picker.Delimiter)
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `picker:
  alternate_screen: true
  delimiter: " | "
  description_mode: all
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if !cfg.Picker.AlternateScreen {
		t.Error("Expected alternate_screen=true")
	}
	if cfg.Picker.Delimiter != " | " {
		t.Errorf("Expected delimiter ' | ', got %q", cfg.Picker.Delimiter)
	}
	if cfg.Picker.DescriptionMode != "all" {
		t.Errorf("Expected description_mode=all, got %s", cfg.Picker.DescriptionMode)
	}
	// Unset fields keep their defaults.
	if cfg.Picker.NameWidth != "auto" {
		t.Errorf("Expected name_width=auto, got %s", cfg.Picker.NameWidth)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Expected log.level=debug, got %s", cfg.Log.Level)
	}
}

func TestLoadFromFile_Invalid(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("picker: [not a map"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(bad); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("expected parse error, got %v", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("picker:\n  name_width: wide\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(invalid); err == nil || !strings.Contains(err.Error(), "invalid config") {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestReadFromFile_IgnoresEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PICKABOO_WRAP", "true")
	t.Setenv("PICKABOO_DEBUG", "1")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("picker:\n  delimiter: \"|\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := ReadFromFile(path)
	if err != nil {
		t.Fatalf("ReadFromFile() error = %v", err)
	}
	if cfg.Picker.Delimiter != "|" {
		t.Errorf("Expected delimiter '|', got %q", cfg.Picker.Delimiter)
	}
	if cfg.Picker.AllowWrap {
		t.Error("PICKABOO_WRAP must not apply to ReadFromFile")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("PICKABOO_DEBUG must not apply to ReadFromFile, got %s", cfg.Log.Level)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if !loaded.Picker.AllowWrap || loaded.Log.Level != "debug" {
		t.Errorf("LoadFromFile should apply overrides, got %+v", loaded)
	}
}

func TestReadFromFile_Missing(t *testing.T) {
	clearEnv(t)
	t.Setenv("PICKABOO_ALT_SCREEN", "1")

	cfg, err := ReadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("ReadFromFile() error = %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Picker.AllowWrap = true
	cfg.Picker.Paren = "[]"
	if err := cfg.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("loaded = %+v, want %+v", loaded, cfg)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PICKABOO_ALT_SCREEN", "1")
	t.Setenv("PICKABOO_WRAP", "true")
	t.Setenv("PICKABOO_DEBUG", "yes") // not a bool, ignored

	cfg := DefaultConfig()
	cfg.ApplyEnvOverrides()

	if !cfg.Picker.AlternateScreen {
		t.Error("PICKABOO_ALT_SCREEN should enable alternate_screen")
	}
	if !cfg.Picker.AllowWrap {
		t.Error("PICKABOO_WRAP should enable allow_wrap")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("invalid PICKABOO_DEBUG should be ignored, got %s", cfg.Log.Level)
	}

	t.Setenv("PICKABOO_DEBUG", "1")
	cfg.ApplyEnvOverrides()
	if cfg.Log.Level != "debug" {
		t.Errorf("PICKABOO_DEBUG=1 should set debug, got %s", cfg.Log.Level)
	}

	t.Setenv("PICKABOO_LOG_LEVEL", "warn")
	cfg.ApplyEnvOverrides()
	if cfg.Log.Level != "warn" {
		t.Errorf("PICKABOO_LOG_LEVEL should win, got %s", cfg.Log.Level)
	}
}

func TestListKeys(t *testing.T) {
	cfg := DefaultConfig()
	for _, key := range ListKeys() {
		if _, err := cfg.Get(key); err != nil {
			t.Errorf("listed key %q is not gettable: %v", key, err)
		}
	}
}

func TestLogFile(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.LogFile() != DefaultPaths().LogFile() {
		t.Errorf("LogFile() = %s, want default", cfg.LogFile())
	}
	cfg.Log.File = "/tmp/x.log"
	if cfg.LogFile() != "/tmp/x.log" {
		t.Errorf("LogFile() = %s, want override", cfg.LogFile())
	}
}
