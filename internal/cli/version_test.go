package cli

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetVersionInfo(t *testing.T) {
	// Save original values
	originalVersion, originalCommit, originalDate := version, commit, date
	t.Cleanup(func() { SetVersionInfo(originalVersion, originalCommit, originalDate) })

	SetVersionInfo("1.4.0", "deadbeef", "2026-03-01")

	assert.Equal(t, "1.4.0", version)
	info := buildInfo()
	assert.Equal(t, "v1.4.0", info.DisplayVersion())
	assert.Equal(t, "deadbeef", info.Commit)
	assert.Equal(t, "2026-03-01", info.Date)
}

func TestVersionCommand(t *testing.T) {
	originalVersion, originalCommit, originalDate := version, commit, date
	t.Cleanup(func() { SetVersionInfo(originalVersion, originalCommit, originalDate) })
	SetVersionInfo("v2.0.0", "abc123", "2026-01-01")

	for _, alias := range []string{"version", "--version", "-v", "v"} {
		t.Run(alias, func(t *testing.T) {
			useConfig(t, dryRunConfig())
			var buf bytes.Buffer

			require.NoError(t, run(&buf, []string{"nvh", alias}))

			out := buf.String()
			assert.Contains(t, out, "nvh v2.0.0")
			assert.Contains(t, out, "commit: abc123")
			assert.Contains(t, out, "built: 2026-01-01")
			assert.Contains(t, out, "go: "+runtime.Version())
			assert.Contains(t, out, "https://github.com/rileyhilliard/nvh")
			assert.NotContains(t, out, "[dry-run]")
		})
	}
}
