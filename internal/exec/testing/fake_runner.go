// Package testing provides test doubles for the exec package.
package testing

import (
	"strings"

	"github.com/rileyhilliard/nvh/internal/exec"
)

// FakeRunner records every command and answers with scripted results.
type FakeRunner struct {
	// Commands holds every command passed to Run, in order.
	Commands []string

	responses []response
	fallback  exec.Result
}

type response struct {
	contains string
	result   exec.Result
}

// NewFakeRunner creates a runner that succeeds with empty output by default.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{}
}

// On scripts the result for any command containing substr. Earlier
// registrations win.
func (f *FakeRunner) On(substr string, res exec.Result) *FakeRunner {
	f.responses = append(f.responses, response{contains: substr, result: res})
	return f
}

// Default sets the result for commands no On rule matches.
func (f *FakeRunner) Default(res exec.Result) *FakeRunner {
	f.fallback = res
	return f
}

// Run records cmd and returns the scripted result.
func (f *FakeRunner) Run(cmd string) exec.Result {
	f.Commands = append(f.Commands, cmd)

	res := f.fallback
	for _, r := range f.responses {
		if strings.Contains(cmd, r.contains) {
			res = r.result
			break
		}
	}
	res.Command = cmd
	return res
}

// Reset clears recorded commands but keeps scripted results.
func (f *FakeRunner) Reset() {
	f.Commands = nil
}
