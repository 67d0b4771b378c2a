package exec

import (
	"fmt"
	"io"

	"github.com/rileyhilliard/nvh/internal/logger"
)

// Result captures everything one external command produced.
type Result struct {
	Command  string
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	// Err is set when the command could not be launched at all.
	Err error
}

// Failed reports whether the command failed to launch or exited non-zero.
func (r Result) Failed() bool {
	return r.Err != nil || r.ExitCode != 0
}

// Runner executes a single shell command string and waits for it to finish.
type Runner interface {
	Run(cmd string) Result
}

// LocalRunner runs commands on this machine through a shell.
type LocalRunner struct {
	Shell string
	Log   logger.Logger
}

// NewLocalRunner returns a runner using the given shell (DefaultShell if empty).
func NewLocalRunner(shell string, log logger.Logger) *LocalRunner {
	if log == nil {
		log = logger.Noop()
	}
	return &LocalRunner{Shell: shell, Log: log}
}

// Run executes cmd and captures its output. It never retries.
func (r *LocalRunner) Run(cmd string) Result {
	r.Log.Debug("run: %s", cmd)

	stdout, stderr, code, err := ExecuteLocalCapture(r.Shell, cmd)
	if err != nil {
		r.Log.Debug("launch failed: %v", err)
	} else if code != 0 {
		r.Log.Debug("exit %d: %s", code, cmd)
	}

	return Result{
		Command:  cmd,
		Stdout:   stdout,
		Stderr:   stderr,
		ExitCode: code,
		Err:      err,
	}
}

// DryRunner prints commands instead of running them.
type DryRunner struct {
	Out io.Writer
}

// Run writes the command and reports success without executing anything.
func (r *DryRunner) Run(cmd string) Result {
	fmt.Fprintf(r.Out, "[dry-run] %s\n", cmd)
	return Result{Command: cmd}
}
