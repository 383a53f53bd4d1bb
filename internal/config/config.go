// Package config persists the small amount of state weblib keeps between
// runs: the chosen vault directory and the preview theme.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/weblib/internal/constants"
)

const DefaultTheme = "dracula"

type Config struct {
	VaultDir string `yaml:"vaultdir" json:"vault_dir"`
	Theme    string `yaml:"theme"    json:"theme"`

	path string `yaml:"-"`
}

func GetConfigPath(homeDir string) string {
	return filepath.Join(
		homeDir,
		constants.ConfigDir,
		constants.ConfigFile+"."+constants.ConfigFileType,
	)
}

// EnsureConfigExists creates the config directory and an empty config file
// on first run. An empty file loads as the zero config: no vault selected,
// default theme.
func EnsureConfigExists(homeDir string) error {
	configPath := GetConfigPath(homeDir)
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		file, err := os.Create(configPath)
		if err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
		file.Close()
	} else if err != nil {
		return fmt.Errorf("failed to check config file existence: %w", err)
	}

	return nil
}

// FromFile loads the config at path. Saves go back to the same path, so a
// config chosen with --config never leaks writes into the default location.
func FromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{path: path}
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Theme == "" {
		cfg.Theme = DefaultTheme
	}
	if cfg.VaultDir != "" {
		if err := validateVaultDir(cfg.VaultDir); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func (cfg *Config) GetConfigPath() string {
	return cfg.path
}

func (cfg *Config) Save() error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	configPath := cfg.GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// OverrideVaultDir sets the vault root for this run only, without
// persisting it.
func (cfg *Config) OverrideVaultDir(dir string) error {
	if err := validateVaultDir(dir); err != nil {
		return err
	}
	cfg.VaultDir = dir
	return nil
}

// SetVaultDir records and persists the chosen vault root.
func (cfg *Config) SetVaultDir(dir string) error {
	if err := validateVaultDir(dir); err != nil {
		return err
	}
	cfg.VaultDir = dir
	return cfg.Save()
}

func validateVaultDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return &ConfigInitError{
			msg: fmt.Sprintf("vault directory %q is not accessible: %v", dir, err),
		}
	}
	if !info.IsDir() {
		return &ConfigInitError{
			msg: fmt.Sprintf("vault path %q is not a directory", dir),
		}
	}
	return nil
}
