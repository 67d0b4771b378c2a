package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestColorEnabled(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		isTTY   bool
		noColor bool
		want    bool
	}{
		{"auto on tty", ColorAuto, true, false, true},
		{"auto piped", ColorAuto, false, false, false},
		{"auto with NO_COLOR", ColorAuto, true, true, false},
		{"always piped", ColorAlways, false, false, true},
		{"always ignores NO_COLOR", ColorAlways, true, true, true},
		{"never on tty", ColorNever, true, false, false},
		{"empty mode acts like auto", "", true, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ColorEnabled(tt.mode, tt.isTTY, tt.noColor))
		})
	}
}

func TestLinePrefixes(t *testing.T) {
	assert.Equal(t, "✗ bad", Fail("bad"))
	assert.Equal(t, "✓ good", Success("good"))
	assert.Equal(t, "! hmm", Warn("hmm"))
	assert.Equal(t, "→ nvidia-smi", Command("nvidia-smi"))
	assert.Equal(t, "quiet", Muted("quiet"))
}

func TestRenderHeader(t *testing.T) {
	out := RenderHeader(HeaderInfo{Version: "v1.2.0", Tagline: "NVIDIA GPU control", Detail: "GPU 0"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Equal(t, "nvh v1.2.0", lines[0])
	assert.Equal(t, "NVIDIA GPU control", lines[1])
	assert.Equal(t, "GPU 0", lines[2])
	assert.Equal(t, strings.Repeat("━", HeaderWidth), lines[3])
}

func TestRenderHeader_Minimal(t *testing.T) {
	out := RenderHeader(HeaderInfo{})

	assert.True(t, strings.HasPrefix(out, "nvh\n"))
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestRenderKeyValue(t *testing.T) {
	out := RenderKeyValue("FIELD", "VALUE", [][2]string{
		{"Name", "NVIDIA GeForce RTX 3080"},
		{"Temperature", "65"},
	})

	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "VALUE")
	assert.Contains(t, out, "NVIDIA GeForce RTX 3080")
	assert.Contains(t, out, "Temperature")
}

func TestRenderSimpleTable_Empty(t *testing.T) {
	assert.Empty(t, RenderSimpleTable([]TableColumn{{Title: "A", Width: 3}}, nil))
}
