package engine

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/rileyhilliard/nvh/internal/errors"
	"github.com/rileyhilliard/nvh/internal/exec"
	"github.com/rileyhilliard/nvh/internal/ui"
)

// Report writes an outcome. Text and diagnostics are always printed;
// effects and notes only when debug is on.
func (e *Engine) Report(w io.Writer, out Outcome, debug bool) {
	for _, ev := range out.Events {
		switch ev.Kind {
		case EventText:
			fmt.Fprintln(w, ev.Text)
		case EventDiagnostic:
			reportDiagnostic(w, ev.Err)
		case EventEffect:
			if debug {
				e.reportEffect(w, ev)
			}
		case EventNote:
			if debug {
				fmt.Fprintln(w, ui.Success(ev.Text))
			}
		}
	}
}

func reportDiagnostic(w io.Writer, err *errors.Error) {
	if err == nil {
		return
	}
	if err.Code == errors.ErrRange {
		// The value is still applied.
		fmt.Fprintln(w, ui.Warn(err.Message))
	} else {
		fmt.Fprintln(w, ui.Fail(err.Message))
	}
	if err.Suggestion != "" {
		fmt.Fprintln(w, "  "+ui.Muted(err.Suggestion))
	}
}

// reportEffect prints the command, whatever it wrote, and how it ended.
func (e *Engine) reportEffect(w io.Writer, ev Event) {
	res := ev.Result
	if res.Command != "" {
		fmt.Fprintln(w, ui.Command(res.Command))
	}
	writeCaptured(w, res.Stdout)
	writeCaptured(w, res.Stderr)

	err := exec.HandleExecError(res)
	if err == nil {
		fmt.Fprintln(w, ui.Success(ev.Label))
		return
	}

	fmt.Fprintln(w, ui.Fail(fmt.Sprintf("There was a problem setting this GPU's %s", ev.Label)))
	var nerr *errors.Error
	if stderrors.As(err, &nerr) {
		fmt.Fprintln(w, "  "+ui.Muted(nerr.Message))
		if nerr.Suggestion != "" {
			fmt.Fprintln(w, "  "+ui.Muted(nerr.Suggestion))
		}
		if nerr.Cause != nil {
			fmt.Fprintln(w, "  "+ui.Muted(nerr.Cause.Error()))
		}
	}
}

func writeCaptured(w io.Writer, b []byte) {
	text := strings.TrimRight(string(b), "\n")
	if text == "" {
		return
	}
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintln(w, "  "+ui.Muted(line))
	}
}
