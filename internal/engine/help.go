package engine

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/nvh/internal/ui"
)

// ProjectURL is printed by the version command.
const ProjectURL = "https://github.com/rileyhilliard/nvh"

// BuildInfo is injected through ldflags in cmd/nvh.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// DisplayVersion ensures the version has a 'v' prefix.
func (b BuildInfo) DisplayVersion() string {
	v := b.Version
	if v == "" {
		return "dev"
	}
	if v == "dev" || v[0] == 'v' {
		return v
	}
	return "v" + v
}

type helpEntry struct {
	usage string
	desc  string
}

var gpuControlHelp = []helpEntry{
	{"gpu [gpu_id]", "Selects the GPU later commands apply to. Defaults to GPU 0."},
	{"fan (fan_id) [speed]", "Sets fan fan_id (default 0) to speed percent. -1 returns control to the driver."},
	{"clock [mhz]", "Locks the core clock to mhz. 0 or less removes the lock."},
	{"memory [mhz]", "Locks the memory clock to mhz. A negative value removes the lock."},
	{"clockoffset [mhz]", "Sets the core clock offset. Overclocks or underclocks the core."},
	{"memoryoffset [mhz]", "Sets the memory transfer rate offset. Overclocks or underclocks memory."},
	{"power [watts]", "Limits the GPU to at most watts of power draw."},
	{"reset", "Resets clocks, offsets and fan control to their defaults."},
}

var advancedHelp = []helpEntry{
	{"display [display]", "X display passed to nvidia-settings. Detected when not set."},
	{"xauth [path]", "Xauthority file passed to nvidia-settings. Detected when not set."},
	{"debug [true|false]", "Prints every executed command with its output."},
}

const helpExample = "nvh fan 0 75 fan 1 75 clockoffset 150 memoryoffset 500 power 400"

func (e *Engine) helpText() string {
	heading := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary)
	usage := lipgloss.NewStyle().Foreground(ui.ColorInfo)

	var b strings.Builder
	b.WriteString(ui.RenderHeader(ui.HeaderInfo{
		Version: e.Build.DisplayVersion(),
		Tagline: "NVIDIA GPU terminal helper",
	}))
	b.WriteString("\n")
	b.WriteString("Usage: nvh command [value...] [command [value...]]...\n")
	b.WriteString(ui.Muted("[value] is required, (value) is optional. Commands run left to right."))
	b.WriteString("\n\n")

	section := func(title string, entries []helpEntry) {
		b.WriteString(heading.Render(title))
		b.WriteString("\n")
		for _, ent := range entries {
			fmt.Fprintf(&b, "  %s\n      %s\n", usage.Render(ent.usage), ent.desc)
		}
		b.WriteString("\n")
	}
	section("GPU Control", gpuControlHelp)
	section("Advanced", advancedHelp)

	b.WriteString("Run with no arguments, or just a GPU index, to print status.\n\n")
	b.WriteString("Example: ")
	b.WriteString(ui.Muted(helpExample))
	return b.String()
}

func (e *Engine) versionText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "nvh %s\n", e.Build.DisplayVersion())
	fmt.Fprintf(&b, "commit: %s\n", e.Build.Commit)
	fmt.Fprintf(&b, "built: %s\n", e.Build.Date)
	fmt.Fprintf(&b, "go: %s\n", runtime.Version())
	b.WriteString(ProjectURL)
	return b.String()
}
