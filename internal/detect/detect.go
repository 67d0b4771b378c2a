// Package detect discovers the X display and Xauthority file of the desktop
// session so nvidia-settings can reach the X server. Every lookup is best
// effort: a failed lookup leaves the session default in place.
package detect

import (
	"bufio"
	"strings"

	"github.com/rileyhilliard/nvh/internal/exec"
	"github.com/rileyhilliard/nvh/internal/logger"
	"github.com/rileyhilliard/nvh/internal/session"
)

const (
	showEnvironmentCmd = "systemctl --user show-environment"
	psCmd              = "ps a"
	gdmXauthSuffix     = "/gdm/Xauthority"
)

// Options controls which fields detection may overwrite. A field set by
// config or environment is kept as-is.
type Options struct {
	SkipDisplay    bool
	SkipXAuthority bool
}

// Detector inspects the host session through a Runner.
type Detector struct {
	Runner exec.Runner
	Log    logger.Logger
}

// New creates a Detector. A nil logger discards messages.
func New(r exec.Runner, log logger.Logger) *Detector {
	if log == nil {
		log = logger.Noop()
	}
	return &Detector{Runner: r, Log: log}
}

// Seed fills Display and XAuthority on s from the host session.
func (d *Detector) Seed(s *session.State, opts Options) {
	if opts.SkipDisplay && opts.SkipXAuthority {
		return
	}

	env := d.showEnvironment()

	if !opts.SkipXAuthority {
		if xauth, ok := d.xauthority(env); ok {
			s.XAuthority = xauth
		}
	}

	if !opts.SkipDisplay {
		if display, ok := LookupEnv(env, "DISPLAY"); ok {
			d.Log.Debug("display from systemd user environment: %s", display)
			s.Display = display
		} else {
			d.Log.Debug("no DISPLAY in user environment, keeping %s", s.Display)
		}
	}
}

func (d *Detector) showEnvironment() string {
	res := d.Runner.Run(showEnvironmentCmd)
	if res.Failed() {
		d.Log.Debug("%s failed (exit %d): %s", showEnvironmentCmd, res.ExitCode, strings.TrimSpace(string(res.Stderr)))
		return ""
	}
	return string(res.Stdout)
}

// xauthority prefers the systemd user environment. Some distributions don't
// export XAUTHORITY there, so fall back to the Xorg command line, which
// carries `-auth /run/user/<uid>/gdm/Xauthority` under GDM.
func (d *Detector) xauthority(env string) (string, bool) {
	if xauth, ok := LookupEnv(env, "XAUTHORITY"); ok {
		d.Log.Debug("xauthority from systemd user environment: %s", xauth)
		return xauth, true
	}

	res := d.Runner.Run(psCmd)
	if res.Err != nil {
		d.Log.Debug("%s failed: %v", psCmd, res.Err)
		return "", false
	}
	if xauth, ok := FindGDMXAuthority(string(res.Stdout)); ok {
		d.Log.Debug("xauthority from process list: %s", xauth)
		return xauth, true
	}

	d.Log.Debug("no xauthority found, keeping default")
	return "", false
}

// LookupEnv finds KEY=value in `systemctl --user show-environment` output.
func LookupEnv(env, key string) (string, bool) {
	prefix := key + "="
	scanner := bufio.NewScanner(strings.NewReader(env))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if value, ok := strings.CutPrefix(line, prefix); ok && value != "" {
			return value, true
		}
	}
	return "", false
}

// FindGDMXAuthority extracts the first whitespace-delimited argument ending in
// /gdm/Xauthority from process listing output.
func FindGDMXAuthority(ps string) (string, bool) {
	for _, field := range strings.Fields(ps) {
		if strings.HasSuffix(field, gdmXauthSuffix) && strings.HasPrefix(field, "/") {
			return field, true
		}
	}
	return "", false
}
