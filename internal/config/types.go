package config

import (
	"github.com/rileyhilliard/nvh/internal/exec"
	"github.com/rileyhilliard/nvh/internal/ui"
)

// Config is the optional ~/.config/nvh/config.yaml file. Every key can be
// overridden with an NVH_ environment variable (NVH_DEBUG=true, NVH_SUDO=false).
type Config struct {
	// Display is the X display handed to nvidia-settings. Empty means
	// detect it from the desktop session.
	Display string `yaml:"display" mapstructure:"display"`

	// XAuthority is the Xauthority file handed to nvidia-settings. Empty
	// means detect it. A leading ~ is expanded.
	XAuthority string `yaml:"xauthority" mapstructure:"xauthority"`

	// Debug starts the run with debug output on, as if `debug true` came first.
	Debug bool `yaml:"debug" mapstructure:"debug"`

	// Sudo prefixes every privileged command with sudo.
	Sudo bool `yaml:"sudo" mapstructure:"sudo"`

	// Shell runs each command line with `<shell> -c`.
	Shell string `yaml:"shell" mapstructure:"shell"`

	// DryRun prints commands instead of running them.
	DryRun bool `yaml:"dry_run" mapstructure:"dry_run"`

	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Sudo:  true,
		Shell: exec.DefaultShell,
		Color: ui.ColorAuto,
	}
}
