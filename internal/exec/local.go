package exec

import (
	"bytes"
	"os/exec"

	"github.com/rileyhilliard/nvh/internal/errors"
)

// DefaultShell interprets command strings when no shell is configured.
const DefaultShell = "/bin/sh"

// ExecuteLocalCapture runs a command through `shell -c` and captures all output.
// Returns stdout, stderr, exit code, and an error only when the process could
// not be launched at all. A non-zero exit is reported through exitCode.
func ExecuteLocalCapture(shell, cmd string) (stdout, stderr []byte, exitCode int, err error) {
	if shell == "" {
		shell = DefaultShell
	}

	command := exec.Command(shell, "-c", cmd)

	var outBuf, errBuf bytes.Buffer
	command.Stdout = &outBuf
	command.Stderr = &errBuf

	runErr := command.Run()
	if runErr != nil {
		// Command ran but returned non-zero
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			return outBuf.Bytes(), errBuf.Bytes(), exitErr.ExitCode(), nil
		}
		return outBuf.Bytes(), errBuf.Bytes(), -1, errors.WrapWithCode(runErr, errors.ErrExec,
			"Couldn't run the command locally",
			"Make sure "+shell+" exists and is executable.")
	}

	return outBuf.Bytes(), errBuf.Bytes(), 0, nil
}
