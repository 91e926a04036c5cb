// Package config provides configuration management for pickaboo.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Paths holds all the path configurations for pickaboo.
type Paths struct {
	// ConfigDir is the directory for configuration files (~/.config/pickaboo)
	ConfigDir string

	// CacheDir is the directory for cache files and logs (~/.cache/pickaboo)
	CacheDir string
}

// DefaultPaths returns the default paths following the XDG Base Directory layout.
// On Windows, it uses %APPDATA% instead.
func DefaultPaths() *Paths {
	home := homeDir()

	if runtime.GOOS == "windows" {
		appData := os.Getenv("APPDATA")
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(home, "AppData", "Local")
		}

		return &Paths{
			ConfigDir: filepath.Join(appData, "pickaboo"),
			CacheDir:  filepath.Join(localAppData, "pickaboo", "cache"),
		}
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}

	cacheHome := os.Getenv("XDG_CACHE_HOME")
	if cacheHome == "" {
		cacheHome = filepath.Join(home, ".cache")
	}

	return &Paths{
		ConfigDir: filepath.Join(configHome, "pickaboo"),
		CacheDir:  filepath.Join(cacheHome, "pickaboo"),
	}
}

// ConfigFile returns the path to the main configuration file.
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.ConfigDir, "config.yaml")
}

// LogFile returns the path to the debug log file.
func (p *Paths) LogFile() string {
	return filepath.Join(p.CacheDir, "pickaboo.log")
}

// EnsureDirectories creates all necessary directories.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.ConfigDir, p.CacheDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		if runtime.GOOS == "windows" {
			return os.Getenv("USERPROFILE")
		}
		return os.Getenv("HOME")
	}
	return home
}
