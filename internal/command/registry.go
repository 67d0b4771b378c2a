package command

import "slices"

// Kind identifies a command independent of the token used to invoke it.
type Kind int

const (
	KindHelp Kind = iota
	KindVersion
	KindXAuth
	KindDebug
	KindDisplay
	KindGPU
	KindFan
	KindMemoryOffset
	KindClockOffset
	KindClock
	KindMemory
	KindPower
	KindReset
)

// Descriptor describes one command: its canonical name, the alternate
// tokens that resolve to it, and the value counts it accepts.
type Descriptor struct {
	Kind    Kind
	Name    string
	Aliases []string
	Arities []int
}

// MaxArity is the largest accepted value count. The lexer never collects
// more values than this for one invocation.
func (d Descriptor) MaxArity() int {
	if len(d.Arities) == 0 {
		return 0
	}
	return slices.Max(d.Arities)
}

// Accepts reports whether n values is a legal count for this command.
func (d Descriptor) Accepts(n int) bool {
	return slices.Contains(d.Arities, n)
}

// HasAlias reports whether token is one of the descriptor's aliases.
func (d Descriptor) HasAlias(token string) bool {
	return slices.Contains(d.Aliases, token)
}

// Registry is an immutable command table. Names and aliases are assumed
// unique across descriptors; a duplicate is a table bug, not a runtime error.
type Registry struct {
	byName map[string]Descriptor
	order  []Descriptor
}

// NewRegistry builds a registry. Descriptor order decides alias priority.
func NewRegistry(descs ...Descriptor) *Registry {
	r := &Registry{
		byName: make(map[string]Descriptor, len(descs)),
		order:  make([]Descriptor, 0, len(descs)),
	}
	for _, d := range descs {
		r.byName[d.Name] = d
		r.order = append(r.order, d)
	}
	return r
}

// Lookup resolves a token by exact name first, then by alias.
func (r *Registry) Lookup(token string) (Descriptor, bool) {
	if d, ok := r.byName[token]; ok {
		return d, true
	}
	return r.ResolveAlias(token)
}

// ResolveAlias scans descriptors in registration order and returns the
// first whose alias set contains token.
func (r *Registry) ResolveAlias(token string) (Descriptor, bool) {
	for _, d := range r.order {
		if d.HasAlias(token) {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Resolves reports whether token names any command.
func (r *Registry) Resolves(token string) bool {
	_, ok := r.Lookup(token)
	return ok
}

// All returns descriptors in registration order.
func (r *Registry) All() []Descriptor {
	return slices.Clone(r.order)
}

// Builtin returns the nvh command table.
func Builtin() *Registry {
	return NewRegistry(
		Descriptor{Kind: KindHelp, Name: "help", Aliases: []string{"--help", "-h"}, Arities: []int{0}},
		Descriptor{Kind: KindVersion, Name: "version", Aliases: []string{"--version", "-v", "v"}, Arities: []int{0}},
		Descriptor{Kind: KindXAuth, Name: "xauth", Aliases: []string{"xauthority", "xa", "--xauth"}, Arities: []int{1}},
		Descriptor{Kind: KindDebug, Name: "debug", Aliases: []string{"debug", "--debug"}, Arities: []int{1}},
		Descriptor{Kind: KindDisplay, Name: "display", Aliases: []string{"dp", "--display"}, Arities: []int{1}},
		Descriptor{Kind: KindGPU, Name: "gpu", Arities: []int{1}},
		Descriptor{Kind: KindFan, Name: "fan", Arities: []int{1, 2}},
		Descriptor{Kind: KindMemoryOffset, Name: "memoryoffset", Aliases: []string{"moc", "--memoc", "--memory-offset"}, Arities: []int{1}},
		Descriptor{Kind: KindClockOffset, Name: "clockoffset", Aliases: []string{"--clockoc", "--clock-offset"}, Arities: []int{1}},
		Descriptor{Kind: KindClock, Name: "clock", Aliases: []string{"lgc", "--clock"}, Arities: []int{1}},
		Descriptor{Kind: KindMemory, Name: "memory", Aliases: []string{"lmc", "--memory"}, Arities: []int{1}},
		Descriptor{Kind: KindPower, Name: "power", Aliases: []string{"pl", "--power"}, Arities: []int{1}},
		Descriptor{Kind: KindReset, Name: "reset", Aliases: []string{"r", "--reset"}, Arities: []int{0}},
	)
}
