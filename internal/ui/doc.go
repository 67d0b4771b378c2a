// Package ui provides styled terminal output for nvh.
//
// Output is plain lines prefixed with a status symbol, styled with Lip Gloss:
//
//	Fail     (✗, red)    - diagnostics and failed commands
//	Success  (✓, green)  - confirmations shown in debug mode
//	Warn     (!, yellow) - accepted values that look wrong
//	Command  (→, cyan)   - the shell command a debug line belongs to
//
// The status screen renders a header followed by a two-column table built
// with the Bubbles table component.
//
// Call Init once at startup to pick the color profile. Styling is dropped
// when stdout is not a terminal, NO_COLOR is set, or the color mode is
// "never".
package ui
