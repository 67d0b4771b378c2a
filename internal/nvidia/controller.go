// Package nvidia builds and runs the nvidia-smi and nvidia-settings command
// lines behind each nvh effect.
package nvidia

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/nvh/internal/exec"
	"github.com/rileyhilliard/nvh/internal/session"
	"github.com/rileyhilliard/nvh/internal/util"
)

// Default tool names, resolved through PATH.
const (
	DefaultSMI      = "nvidia-smi"
	DefaultSettings = "nvidia-settings"
)

// Controller issues GPU effects through a Runner. Every effect runs exactly
// one external command and returns its result unchanged.
type Controller struct {
	Runner   exec.Runner
	Sudo     bool
	SMI      string
	Settings string
}

// NewController returns a controller with the default tool names.
func NewController(r exec.Runner, sudo bool) *Controller {
	return &Controller{
		Runner:   r,
		Sudo:     sudo,
		SMI:      DefaultSMI,
		Settings: DefaultSettings,
	}
}

func (c *Controller) sudo() string {
	if c.Sudo {
		return "sudo "
	}
	return ""
}

// smi builds a privileged nvidia-smi command against one GPU.
func (c *Controller) smi(gpu int, args ...string) string {
	return fmt.Sprintf("%s%s -i %d %s", c.sudo(), c.SMI, gpu, strings.Join(args, " "))
}

// settings builds a privileged nvidia-settings command with X context.
func (c *Controller) settings(s session.State, assigns ...string) string {
	var b strings.Builder
	b.WriteString(c.sudo())
	b.WriteString(util.EnvAssign("DISPLAY", s.Display))
	b.WriteString(" ")
	b.WriteString(util.EnvAssign("XAUTHORITY", s.XAuthority))
	b.WriteString(" ")
	b.WriteString(c.Settings)
	for _, a := range assigns {
		b.WriteString(" -a ")
		b.WriteString(a)
	}
	return b.String()
}

// SetMemoryOffset applies a memory transfer rate offset to all performance levels.
func (c *Controller) SetMemoryOffset(s session.State, offset int) exec.Result {
	return c.Runner.Run(c.settings(s,
		fmt.Sprintf("[gpu:%d]/GPUMemoryTransferRateOffsetAllPerformanceLevels=%d", s.GPU, offset)))
}

// SetCoreOffset applies a graphics clock offset to all performance levels.
func (c *Controller) SetCoreOffset(s session.State, offset int) exec.Result {
	return c.Runner.Run(c.settings(s,
		fmt.Sprintf("[gpu:%d]/GPUGraphicsClockOffsetAllPerformanceLevels=%d", s.GPU, offset)))
}

// LockCore locks the graphics clock at mhz.
func (c *Controller) LockCore(s session.State, mhz int) exec.Result {
	return c.Runner.Run(c.smi(s.GPU, "-lgc", fmt.Sprint(mhz)))
}

// ResetCore removes a graphics clock lock.
func (c *Controller) ResetCore(s session.State) exec.Result {
	return c.Runner.Run(c.smi(s.GPU, "-rgc"))
}

// LockMemory locks the memory clock at mhz.
func (c *Controller) LockMemory(s session.State, mhz int) exec.Result {
	return c.Runner.Run(c.smi(s.GPU, "-lmc", fmt.Sprint(mhz)))
}

// ResetMemory removes a memory clock lock.
func (c *Controller) ResetMemory(s session.State) exec.Result {
	return c.Runner.Run(c.smi(s.GPU, "-rmc"))
}

// SetPowerLimit caps board power draw in watts.
func (c *Controller) SetPowerLimit(s session.State, watts int) exec.Result {
	return c.Runner.Run(c.smi(s.GPU, "-pl", fmt.Sprint(watts)))
}

// SetFanSpeed takes manual fan control and sets fan to percent.
func (c *Controller) SetFanSpeed(s session.State, fan, percent int) exec.Result {
	return c.Runner.Run(c.settings(s,
		fmt.Sprintf("[gpu:%d]/GPUFanControlState=1", s.GPU),
		fmt.Sprintf("[fan:%d]/GPUTargetFanSpeed=%d", fan, percent)))
}

// ResetFanSpeed hands fan control back to the driver.
func (c *Controller) ResetFanSpeed(s session.State) exec.Result {
	return c.Runner.Run(c.settings(s,
		fmt.Sprintf("[gpu:%d]/GPUFanControlState=0", s.GPU)))
}
