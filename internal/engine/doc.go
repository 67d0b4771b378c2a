// Package engine runs an nvh argument vector: it lexes the tokens into
// invocations, dispatches each one against the session, and reports the
// outcome.
//
// Dispatch never prints. Each invocation yields an Outcome, an ordered list
// of events, and Report decides what reaches the terminal. Text and
// diagnostics always do. External command results and session changes are
// shown only while debug is on, so a failing nvidia-smi call is silent
// unless the user asked to see it.
package engine
