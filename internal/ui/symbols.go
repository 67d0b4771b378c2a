package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓" // Effect applied or setting changed
	SymbolFail    = "✗" // Diagnostic or failed effect
	SymbolWarning = "!" // Value accepted with a warning
	SymbolArrow   = "→" // Command being executed (debug output)
)
