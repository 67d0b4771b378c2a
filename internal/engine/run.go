package engine

import (
	"fmt"
	"io"
	"strings"

	"github.com/rileyhilliard/nvh/internal/command"
	"github.com/rileyhilliard/nvh/internal/errors"
	"github.com/rileyhilliard/nvh/internal/nvidia"
	"github.com/rileyhilliard/nvh/internal/session"
)

const maxSuggestions = 2

// Engine turns an argument vector into effects and prints what happened.
type Engine struct {
	Registry *command.Registry
	GPU      *nvidia.Controller
	Out      io.Writer
	Build    BuildInfo
}

// New creates an Engine over the builtin command table.
func New(gpu *nvidia.Controller, out io.Writer, build BuildInfo) *Engine {
	return &Engine{
		Registry: command.Builtin(),
		GPU:      gpu,
		Out:      out,
		Build:    build,
	}
}

// Run processes argv, where argv[0] is the program name. With no further
// arguments, or a single non-negative integer, it prints the status screen
// for GPU 0 or that GPU. Otherwise every token is lexed and each resulting
// invocation is dispatched and reported in order. Nothing stops the run
// early: each diagnostic affects only its own command.
func (e *Engine) Run(argv []string, s *session.State) {
	if gpu, ok := statusTarget(argv); ok {
		e.showStatus(e.Out, gpu, s.Debug)
		return
	}

	for _, step := range command.Lex(e.Registry, argv[1:]) {
		if step.Invocation == nil {
			reportDiagnostic(e.Out, e.unrecognized(step.Unrecognized))
			continue
		}
		out := e.Dispatch(*step.Invocation, s)
		// Debug may have just been changed by this invocation.
		e.Report(e.Out, out, s.Debug)
	}
}

// statusTarget decides whether argv is a status request.
func statusTarget(argv []string) (int, bool) {
	switch len(argv) {
	case 0, 1:
		return 0, true
	case 2:
		return parseIndex(argv[1])
	}
	return 0, false
}

func (e *Engine) unrecognized(tok string) *errors.Error {
	suggestion := "Try 'nvh help' for more information."
	if near := e.Registry.Suggest(tok, maxSuggestions); len(near) > 0 {
		suggestion = fmt.Sprintf("Did you mean '%s'? %s", strings.Join(near, "' or '"), suggestion)
	}
	return errors.New(errors.ErrUnknown,
		fmt.Sprintf("'%s' was not recognized as a valid argument", tok),
		suggestion)
}
