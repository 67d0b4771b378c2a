package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/nvh/internal/errors"
	"github.com/rileyhilliard/nvh/internal/exec"
	"github.com/rileyhilliard/nvh/internal/ui"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix namespaces environment overrides (NVH_DEBUG, NVH_SUDO, ...).
	EnvPrefix = "NVH"
	// PathEnvVar points at an explicit config file.
	PathEnvVar = "NVH_CONFIG"
	// GlobalConfigDir is the directory for the config file, relative to home.
	GlobalConfigDir = ".config/nvh"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yaml"
)

// Find locates the config file using the search order:
// 1. $NVH_CONFIG
// 2. ~/.config/nvh/config.yaml
//
// Returns the path to the config file, or empty string if not found.
// An explicit path that doesn't exist is an error.
func Find() (string, error) {
	if explicit := os.Getenv(PathEnvVar); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path in "+PathEnvVar+" is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", nil
	}

	global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
	if _, err := os.Stat(global); err == nil {
		return global, nil
	}

	return "", nil
}

// Load reads config from path, or only defaults and environment when path
// is empty.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			if os.IsNotExist(err) {
				return nil, errors.WrapWithCode(err, errors.ErrConfig,
					"Config file not found: "+path,
					"Create it or unset "+PathEnvVar)
			}
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file",
				"Check the file exists and is valid YAML")
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	cfg.XAuthority = ExpandTilde(cfg.XAuthority)
	cfg.Color = strings.ToLower(strings.TrimSpace(cfg.Color))

	return cfg, nil
}

// LoadOrDefault finds and loads the config, falling back to defaults (with
// environment overrides) when there is no file.
func LoadOrDefault() (*Config, error) {
	path, err := Find()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// setDefaults registers every key so AutomaticEnv can override keys absent
// from the file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("display", "")
	v.SetDefault("xauthority", "")
	v.SetDefault("debug", false)
	v.SetDefault("sudo", true)
	v.SetDefault("shell", exec.DefaultShell)
	v.SetDefault("dry_run", false)
	v.SetDefault("color", ui.ColorAuto)
}
