package engine

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/rileyhilliard/nvh/internal/exec"
	"github.com/rileyhilliard/nvh/internal/nvidia"
	"github.com/rileyhilliard/nvh/internal/ui"
)

// showStatus queries one GPU and prints the status screen. A query that
// yields something other than a full CSV row prints the raw text instead,
// which is usually nvidia-smi's own error message.
func (e *Engine) showStatus(w io.Writer, gpu int, debug bool) {
	st, res, err := e.GPU.QueryStatus(gpu)
	if debug {
		e.reportEffect(w, Event{Kind: EventEffect, Label: "Status", Result: res})
	}

	if err != nil {
		var serr *nvidia.StatusError
		if stderrors.As(err, &serr) {
			// Empty under dry-run, where nothing was queried.
			if serr.Raw != "" {
				fmt.Fprintln(w, serr.Raw)
			}
			return
		}
		fmt.Fprint(w, exec.HandleExecError(res))
		return
	}

	fmt.Fprint(w, renderStatus(e.Build, gpu, st))
}

func renderStatus(build BuildInfo, gpu int, st *nvidia.Status) string {
	var b strings.Builder
	b.WriteString(ui.RenderHeader(ui.HeaderInfo{
		Version: build.DisplayVersion(),
		Tagline: "NVIDIA GPU terminal helper",
		Detail:  fmt.Sprintf("GPU %d", gpu),
	}))
	b.WriteString("\n")
	b.WriteString(ui.RenderKeyValue("Setting", "Value", st.Rows()))
	b.WriteString("\n")
	return b.String()
}
