package engine

import (
	"github.com/rileyhilliard/nvh/internal/errors"
	"github.com/rileyhilliard/nvh/internal/exec"
)

// EventKind classifies what a dispatched command produced.
type EventKind int

const (
	// EventText is informational output (help, version). Always shown.
	EventText EventKind = iota
	// EventDiagnostic is a user error (arity, parse, range). Always shown.
	EventDiagnostic
	// EventEffect is one external command and its result. Shown in debug mode.
	EventEffect
	// EventNote confirms a session change. Shown in debug mode.
	EventNote
)

// Event is one entry of an Outcome, in the order it happened.
type Event struct {
	Kind   EventKind
	Text   string
	Err    *errors.Error
	Label  string
	Result exec.Result
}

// Outcome collects everything one invocation produced. Presentation is left
// to the reporter so dispatch never decides what the user sees.
type Outcome struct {
	Events []Event
}

func (o *Outcome) text(s string) {
	o.Events = append(o.Events, Event{Kind: EventText, Text: s})
}

func (o *Outcome) diagnose(err *errors.Error) {
	o.Events = append(o.Events, Event{Kind: EventDiagnostic, Err: err})
}

func (o *Outcome) effect(label string, res exec.Result) {
	o.Events = append(o.Events, Event{Kind: EventEffect, Label: label, Result: res})
}

func (o *Outcome) note(s string) {
	o.Events = append(o.Events, Event{Kind: EventNote, Text: s})
}

// Effects returns the effect events only.
func (o Outcome) Effects() []Event {
	return o.filter(EventEffect)
}

// Diagnostics returns the diagnostic events only.
func (o Outcome) Diagnostics() []Event {
	return o.filter(EventDiagnostic)
}

func (o Outcome) filter(kind EventKind) []Event {
	var out []Event
	for _, ev := range o.Events {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}
