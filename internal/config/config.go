// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"clearsetup/internal/issue"
	"clearsetup/pkg/platform"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "clearsetup"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
)

type (
	// Config holds all clearsetup settings.
	Config struct {
		// EnvDir is the environment directory, relative to the
		// invocation directory.
		EnvDir string `mapstructure:"env_dir"`
		// ForceRecreate removes an existing environment instead of
		// reusing it.
		ForceRecreate bool `mapstructure:"force_recreate"`
		// Python overrides interpreter discovery with an explicit
		// binary path.
		Python string `mapstructure:"python"`
		// UI holds output settings.
		UI UIConfig `mapstructure:"ui"`
	}

	// UIConfig holds output settings.
	UIConfig struct {
		// Verbose enables debug logging.
		Verbose bool `mapstructure:"verbose"`
		// Plain disables styled and markdown-rendered output.
		Plain bool `mapstructure:"plain"`
	}
)

// configFilePathOverride allows --config to point at an explicit file.
var configFilePathOverride string

// SetConfigFilePathOverride sets a custom config file path, typically from
// the --config flag.
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		EnvDir: "venv",
	}
}

// ConfigDir returns the clearsetup configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case platform.Windows:
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case platform.Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// ConfigFilePath returns the resolved config file path, honoring the
// override set via SetConfigFilePathOverride.
func ConfigFilePath() (string, error) {
	if configFilePathOverride != "" {
		return configFilePathOverride, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// Load reads the configuration file if one exists and returns the merged
// configuration. A missing file is not an error; defaults apply.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType(ConfigFileExt)

	defaults := DefaultConfig()
	v.SetDefault("env_dir", defaults.EnvDir)
	v.SetDefault("force_recreate", defaults.ForceRecreate)
	v.SetDefault("python", defaults.Python)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("ui.plain", defaults.UI.Plain)

	path, err := ConfigFilePath()
	if err != nil {
		return nil, err
	}

	if fileExists(path) {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestion("Check that the file contains valid TOML").
				WithSuggestion("Delete the file to fall back to defaults").
				Wrap(err).
				BuildError()
		}
	} else if configFilePathOverride != "" {
		return nil, issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(path).
			WithSuggestion("Verify the file path is correct").
			Wrap(fmt.Errorf("config file not found: %s", path)).
			BuildError()
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(path).
			WithSuggestion("Verify the configuration values match the expected keys").
			Wrap(err).
			BuildError()
	}

	return cfg, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
