package engine

import (
	"fmt"

	"github.com/rileyhilliard/nvh/internal/command"
	"github.com/rileyhilliard/nvh/internal/errors"
	"github.com/rileyhilliard/nvh/internal/session"
)

// Effect labels, used in debug output.
const (
	labelFanSpeed      = "Fan Speed"
	labelResetFan      = "Resetting Fan Speed"
	labelMemoryOffset  = "Memory Speed Offset"
	labelClockOffset   = "Clock Offset"
	labelLockCore      = "Locked Core Clock"
	labelResetCore     = "Resetting Core Clock"
	labelLockMemory    = "Locked Memory Speed"
	labelResetMemory   = "Resetting Memory Clock"
	labelPowerLimit    = "Power Limit"
	fanSpeedAutomatic  = -1
	fanSpeedMaxPercent = 100
)

// Dispatch runs one invocation against the session. The value count is
// checked against the command's accepted arities first; on mismatch nothing
// else happens. Value parse failures skip only this command's effect.
func (e *Engine) Dispatch(inv command.Invocation, s *session.State) Outcome {
	var out Outcome
	d := inv.Descriptor
	v := inv.Values

	if !d.Accepts(len(v)) {
		out.diagnose(errors.NewArity(d.Name, len(v)))
		return out
	}

	switch d.Kind {
	case command.KindHelp:
		out.text(e.helpText())

	case command.KindVersion:
		out.text(e.versionText())

	case command.KindDisplay:
		s.Display = v[0]
		out.note(fmt.Sprintf("Display set to %s", s.Display))

	case command.KindXAuth:
		s.XAuthority = v[0]
		out.note(fmt.Sprintf("Xauthority set to %s", s.XAuthority))

	case command.KindDebug:
		b, ok := parseBool(v[0])
		if !ok {
			out.diagnose(errors.New(errors.ErrParse,
				fmt.Sprintf("'%s' is not true or false", v[0]),
				fmt.Sprintf("'%s' must be set to true or false.", d.Name)))
			return out
		}
		s.Debug = b
		out.note(fmt.Sprintf("Debug mode set to %t", b))

	case command.KindGPU:
		n, ok := parseIndex(v[0])
		if !ok {
			out.diagnose(errors.NewParse(d.Name, v[0], "an integer greater than or equal to 0"))
			return out
		}
		s.GPU = n
		out.note(fmt.Sprintf("Current GPU set to %d", n))

	case command.KindFan:
		e.fan(&out, d, v, s)

	case command.KindMemoryOffset:
		n, ok := parseSigned(v[0])
		if !ok {
			out.diagnose(errors.NewParse(d.Name, v[0], "a valid integer"))
			return out
		}
		out.effect(labelMemoryOffset, e.GPU.SetMemoryOffset(s.Snapshot(), n))

	case command.KindClockOffset:
		n, ok := parseSigned(v[0])
		if !ok {
			out.diagnose(errors.NewParse(d.Name, v[0], "a valid integer"))
			return out
		}
		out.effect(labelClockOffset, e.GPU.SetCoreOffset(s.Snapshot(), n))

	case command.KindClock:
		n, ok := parseSigned(v[0])
		if !ok {
			out.diagnose(errors.New(errors.ErrParse,
				fmt.Sprintf("'%s' is not a valid integer (%s)", v[0], d.Name),
				"To remove a locked core clock, pass -1."))
			return out
		}
		if n > 0 {
			out.effect(labelLockCore, e.GPU.LockCore(s.Snapshot(), n))
		} else {
			out.effect(labelResetCore, e.GPU.ResetCore(s.Snapshot()))
		}

	case command.KindMemory:
		n, ok := parseSigned(v[0])
		if !ok {
			out.diagnose(errors.New(errors.ErrParse,
				fmt.Sprintf("'%s' is not a valid integer (%s)", v[0], d.Name),
				"To remove a locked memory clock, pass -1."))
			return out
		}
		// 0 is a lock here, unlike clock.
		if n >= 0 {
			out.effect(labelLockMemory, e.GPU.LockMemory(s.Snapshot(), n))
		} else {
			out.effect(labelResetMemory, e.GPU.ResetMemory(s.Snapshot()))
		}

	case command.KindPower:
		n, ok := parseIndex(v[0])
		if !ok {
			out.diagnose(errors.NewParse(d.Name, v[0], "an integer greater than or equal to 0"))
			return out
		}
		out.effect(labelPowerLimit, e.GPU.SetPowerLimit(s.Snapshot(), n))

	case command.KindReset:
		snap := s.Snapshot()
		out.effect(labelResetCore, e.GPU.ResetCore(snap))
		out.effect(labelResetMemory, e.GPU.ResetMemory(snap))
		out.effect(labelClockOffset, e.GPU.SetCoreOffset(snap, 0))
		out.effect(labelMemoryOffset, e.GPU.SetMemoryOffset(snap, 0))
		out.effect(labelResetFan, e.GPU.ResetFanSpeed(snap))
	}

	return out
}

// fan handles `fan <speed>` and `fan <index> <speed>`. An out-of-range speed
// is reported but still sent to nvidia-settings.
func (e *Engine) fan(out *Outcome, d command.Descriptor, v []string, s *session.State) {
	index := 0
	speedToken := v[0]

	if len(v) == 2 {
		n, ok := parseIndex(v[0])
		if !ok {
			out.diagnose(errors.NewParse(d.Name, v[0], "a fan index greater than or equal to 0"))
			return
		}
		index = n
		speedToken = v[1]
	}

	speed, ok := parseSigned(speedToken)
	if !ok {
		out.diagnose(errors.NewParse(d.Name, speedToken, "an integer fan speed"))
		return
	}

	if (speed < 0 || speed > fanSpeedMaxPercent) && speed != fanSpeedAutomatic {
		out.diagnose(errors.New(errors.ErrRange,
			fmt.Sprintf("Fan speed %d is not an integer between 0 and 100", speed),
			"Use -1 to hand fan control back to the driver."))
	}

	if speed == fanSpeedAutomatic {
		out.effect(labelResetFan, e.GPU.ResetFanSpeed(s.Snapshot()))
		return
	}
	out.effect(labelFanSpeed, e.GPU.SetFanSpeed(s.Snapshot(), index, speed))
}
