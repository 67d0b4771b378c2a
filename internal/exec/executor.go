package exec

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rileyhilliard/nvh/internal/errors"
)

// commandNotFoundPatterns detect "command not found" output from common
// shells. Only consulted for exit code 127.
var commandNotFoundPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bash: (\S+): command not found`),
	regexp.MustCompile(`(?i)zsh: command not found: (\S+)`),
	regexp.MustCompile(`(?i)sh: \d+: (\S+): not found`),
	regexp.MustCompile(`(?i)sudo: (\S+): command not found`),
	regexp.MustCompile(`(?i)(\S+): not found`),
	regexp.MustCompile(`(?i)(\S+): command not found`),
}

// smiReturnMessages maps nvidia-smi exit codes to their documented meaning.
var smiReturnMessages = map[int]string{
	0:   "Successfully executed",
	2:   "Argument was invalid",
	3:   "Operation is not available on device",
	4:   "Insufficient permission",
	6:   "Unable to query",
	8:   "VGA power cable error",
	9:   "Driver error",
	10:  "GPU interrupt error",
	12:  "NVML library unavailable",
	13:  "NVML library does not support operation",
	14:  "infoROM is corrupted",
	15:  "GPU is inaccessible due to an error",
	255: "Driver or other error related to GPU",
}

// ReturnCodeMessage describes an nvidia-smi exit code.
func ReturnCodeMessage(code int) string {
	if msg, ok := smiReturnMessages[code]; ok {
		return msg
	}
	return "There was an unknown error"
}

// IsCommandNotFound checks if the error output indicates a missing command.
// Returns the command name (if extractable) and whether it's a command-not-found error.
func IsCommandNotFound(stderr string, exitCode int) (string, bool) {
	if exitCode != 127 {
		return "", false
	}

	for _, pattern := range commandNotFoundPatterns {
		if matches := pattern.FindStringSubmatch(stderr); len(matches) > 1 {
			return matches[1], true
		}
	}

	return "", true
}

// HandleExecError turns a failed result into a structured error.
// Returns nil when the result succeeded.
func HandleExecError(res Result) error {
	if res.Err != nil {
		return errors.WrapWithCode(res.Err, errors.ErrExec,
			"Failed to execute command: "+res.Command,
			"")
	}
	if res.ExitCode == 0 {
		return nil
	}

	if name, notFound := IsCommandNotFound(string(res.Stderr), res.ExitCode); notFound {
		if name == "" {
			name = toolName(res.Command)
		}
		return errors.New(errors.ErrExec,
			fmt.Sprintf("'%s' not found in PATH", name),
			"Install the NVIDIA driver utilities (nvidia-smi, nvidia-settings) or fix PATH for sudo.")
	}

	return errors.New(errors.ErrExec,
		"Failed to execute command: "+res.Command,
		fmt.Sprintf("Status Code: %d - %s", res.ExitCode, ReturnCodeMessage(res.ExitCode)))
}

// toolName picks the executable out of a command line, skipping sudo and
// leading VAR=value assignments.
func toolName(cmd string) string {
	for _, f := range strings.Fields(cmd) {
		if f == "sudo" || strings.Contains(f, "=") {
			continue
		}
		return f
	}
	return "command"
}
