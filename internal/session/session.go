// Package session holds the mutable state shared by every command in one
// nvh run.
package session

// Defaults used when auto-detection and config leave a field unset.
const (
	DefaultDisplay    = ":0"
	DefaultXAuthority = "/run/user/1000/gdm/Xauthority"
)

// State is created once per run and passed by pointer through every
// dispatch. It is never shared between goroutines.
type State struct {
	// GPU is the index targeted by effects. Changed only by `gpu`.
	GPU int

	// Display and XAuthority are handed to nvidia-settings.
	Display    string
	XAuthority string

	// Debug echoes captured output of every external command.
	Debug bool
}

// New returns a State with built-in defaults.
func New() *State {
	return &State{
		Display:    DefaultDisplay,
		XAuthority: DefaultXAuthority,
	}
}

// Snapshot returns a copy safe to hand to effects.
func (s *State) Snapshot() State {
	return *s
}
