package config

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/nvh/internal/errors"
	"github.com/rileyhilliard/nvh/internal/ui"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try running the command again.")
	}

	if err := validateColor(cfg.Color); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'color' key in your config.yaml.")
	}

	if strings.TrimSpace(cfg.Shell) == "" {
		return errors.New(errors.ErrConfig,
			"shell can't be empty",
			"Remove the 'shell' key to use /bin/sh, or set it to a shell path.")
	}

	if strings.ContainsAny(cfg.Display, "\n\r") || strings.ContainsAny(cfg.XAuthority, "\n\r") {
		return errors.New(errors.ErrConfig,
			"display and xauthority must be a single line",
			"Check the 'display' and 'xauthority' keys in your config.yaml.")
	}

	return nil
}

func validateColor(color string) error {
	validColors := map[string]bool{ui.ColorAuto: true, ui.ColorAlways: true, ui.ColorNever: true, "": true}
	if !validColors[color] {
		return fmt.Errorf("color '%s' isn't valid - use 'auto', 'always', or 'never'", color)
	}
	return nil
}
