package nvidia

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/nvh/internal/exec"
)

// StatusFields is the --query-gpu field list, in the order ParseStatus expects.
var StatusFields = []string{
	"name",
	"clocks.current.graphics",
	"clocks.current.memory",
	"temperature.gpu",
	"power.draw",
	"fan.speed",
	"memory.used",
	"memory.total",
	"enforced.power.limit",
	"driver_version",
	"pcie.link.gen.current",
	"pcie.link.width.current",
	"vbios_version",
}

// Status is one GPU's query result. Values are kept as nvidia-smi printed
// them, units included ("1410 MHz", "65", "[N/A]").
type Status struct {
	Name        string
	CoreClock   string
	MemoryClock string
	Temperature string
	PowerDraw   string
	FanSpeed    string
	MemoryUsed  string
	MemoryTotal string
	PowerLimit  string
	Driver      string
	PCIeGen     string
	PCIeWidth   string
	VBIOS       string
}

// Rows returns label/value pairs in display order.
func (s *Status) Rows() [][2]string {
	return [][2]string{
		{"Name", s.Name},
		{"Core Clock Speed", s.CoreClock},
		{"Memory Clock Speed", s.MemoryClock},
		{"Temperature", s.Temperature},
		{"Power", s.PowerDraw},
		{"Fan Speed", s.FanSpeed},
		{"Used Memory", s.MemoryUsed},
		{"Total Memory", s.MemoryTotal},
		{"Max Power", s.PowerLimit},
		{"Driver", s.Driver},
		{"GPU PCIe Generation", s.PCIeGen},
		{"GPU PCIe Link Width", s.PCIeWidth},
		{"VBios", s.VBIOS},
	}
}

// StatusError carries the raw text nvidia-smi printed instead of a CSV row,
// usually its own error message.
type StatusError struct {
	Raw    string
	Fields int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("nvidia-smi returned %d fields, expected %d: %s", e.Fields, len(StatusFields), e.Raw)
}

// StatusCommand builds the unprivileged query for one GPU.
func (c *Controller) StatusCommand(gpu int) string {
	return fmt.Sprintf("%s -i %d --query-gpu=%s --format=csv,noheader",
		c.SMI, gpu, strings.Join(StatusFields, ","))
}

// QueryStatus runs the status query for gpu and parses the result.
// The raw exec.Result is returned alongside for debug output.
func (c *Controller) QueryStatus(gpu int) (*Status, exec.Result, error) {
	res := c.Runner.Run(c.StatusCommand(gpu))
	if res.Err != nil {
		return nil, res, res.Err
	}

	output := string(res.Stdout)
	if strings.TrimSpace(output) == "" {
		output = string(res.Stderr)
	}

	st, err := ParseStatus(output)
	return st, res, err
}

// ParseStatus parses one CSV row produced by the status query.
// Expected input is from: nvidia-smi --query-gpu=<StatusFields> --format=csv,noheader
//
// Any other field count yields a *StatusError. Its Raw holds all of the
// output up to the first ", ", so multi-line driver errors survive intact.
func ParseStatus(output string) (*Status, error) {
	output = strings.TrimSpace(output)
	row := output
	if i := strings.IndexByte(row, '\n'); i >= 0 {
		row = strings.TrimSpace(row[:i])
	}

	fields := strings.Split(row, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	if len(fields) != len(StatusFields) {
		raw, _, _ := strings.Cut(output, ", ")
		return nil, &StatusError{Raw: strings.TrimSpace(raw), Fields: len(fields)}
	}

	return &Status{
		Name:        fields[0],
		CoreClock:   fields[1],
		MemoryClock: fields[2],
		Temperature: fields[3],
		PowerDraw:   fields[4],
		FanSpeed:    fields[5],
		MemoryUsed:  fields[6],
		MemoryTotal: fields[7],
		PowerLimit:  fields[8],
		Driver:      fields[9],
		PCIeGen:     fields[10],
		PCIeWidth:   fields[11],
		VBIOS:       fields[12],
	}, nil
}
