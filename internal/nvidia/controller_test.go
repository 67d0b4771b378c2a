package nvidia

import (
	"testing"

	"github.com/rileyhilliard/nvh/internal/exec"
	fakeexec "github.com/rileyhilliard/nvh/internal/exec/testing"
	"github.com/rileyhilliard/nvh/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testState() session.State {
	return session.State{GPU: 1, Display: ":0", XAuthority: "/run/user/1000/gdm/Xauthority"}
}

func TestController_Commands(t *testing.T) {
	const x = "sudo DISPLAY=':0' XAUTHORITY='/run/user/1000/gdm/Xauthority' nvidia-settings"

	tests := []struct {
		name string
		run  func(c *Controller, s session.State) exec.Result
		want string
	}{
		{
			name: "memory offset",
			run:  func(c *Controller, s session.State) exec.Result { return c.SetMemoryOffset(s, -500) },
			want: x + " -a [gpu:1]/GPUMemoryTransferRateOffsetAllPerformanceLevels=-500",
		},
		{
			name: "core offset",
			run:  func(c *Controller, s session.State) exec.Result { return c.SetCoreOffset(s, 150) },
			want: x + " -a [gpu:1]/GPUGraphicsClockOffsetAllPerformanceLevels=150",
		},
		{
			name: "lock core",
			run:  func(c *Controller, s session.State) exec.Result { return c.LockCore(s, 1500) },
			want: "sudo nvidia-smi -i 1 -lgc 1500",
		},
		{
			name: "reset core",
			run:  func(c *Controller, s session.State) exec.Result { return c.ResetCore(s) },
			want: "sudo nvidia-smi -i 1 -rgc",
		},
		{
			name: "lock memory",
			run:  func(c *Controller, s session.State) exec.Result { return c.LockMemory(s, 0) },
			want: "sudo nvidia-smi -i 1 -lmc 0",
		},
		{
			name: "reset memory",
			run:  func(c *Controller, s session.State) exec.Result { return c.ResetMemory(s) },
			want: "sudo nvidia-smi -i 1 -rmc",
		},
		{
			name: "power limit",
			run:  func(c *Controller, s session.State) exec.Result { return c.SetPowerLimit(s, 300) },
			want: "sudo nvidia-smi -i 1 -pl 300",
		},
		{
			name: "fan speed",
			run:  func(c *Controller, s session.State) exec.Result { return c.SetFanSpeed(s, 0, 75) },
			want: x + " -a [gpu:1]/GPUFanControlState=1 -a [fan:0]/GPUTargetFanSpeed=75",
		},
		{
			name: "reset fan",
			run:  func(c *Controller, s session.State) exec.Result { return c.ResetFanSpeed(s) },
			want: x + " -a [gpu:1]/GPUFanControlState=0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := fakeexec.NewFakeRunner()
			c := NewController(runner, true)

			res := tt.run(c, testState())

			require.Len(t, runner.Commands, 1)
			assert.Equal(t, tt.want, runner.Commands[0])
			assert.Equal(t, tt.want, res.Command)
		})
	}
}

func TestController_WithoutSudo(t *testing.T) {
	runner := fakeexec.NewFakeRunner()
	c := NewController(runner, false)

	c.ResetCore(testState())
	c.ResetFanSpeed(testState())

	assert.Equal(t, "nvidia-smi -i 1 -rgc", runner.Commands[0])
	assert.Equal(t, "DISPLAY=':0' XAUTHORITY='/run/user/1000/gdm/Xauthority' nvidia-settings -a [gpu:1]/GPUFanControlState=0", runner.Commands[1])
}

func TestController_CustomToolPaths(t *testing.T) {
	runner := fakeexec.NewFakeRunner()
	c := NewController(runner, true)
	c.SMI = "/opt/nvidia/bin/nvidia-smi"

	c.LockCore(testState(), 1800)

	assert.Equal(t, "sudo /opt/nvidia/bin/nvidia-smi -i 1 -lgc 1800", runner.Commands[0])
}

func TestController_ReturnsRunnerResult(t *testing.T) {
	runner := fakeexec.NewFakeRunner().
		On("-pl", exec.Result{ExitCode: 4, Stderr: []byte("Insufficient Permissions")})
	c := NewController(runner, true)

	res := c.SetPowerLimit(testState(), 999)

	assert.True(t, res.Failed())
	assert.Equal(t, 4, res.ExitCode)
	assert.Equal(t, "Insufficient Permissions", string(res.Stderr))
}
