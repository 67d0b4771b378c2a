package command

// Invocation is one command with the value tokens grouped behind it.
// len(Values) never exceeds Descriptor.MaxArity(), but may be below the
// smallest accepted arity; the dispatcher checks that.
type Invocation struct {
	Descriptor Descriptor
	Values     []string
}

// Step is one unit of lexer output: either an invocation or a token that
// resolved to nothing while a command was expected.
type Step struct {
	Invocation   *Invocation
	Unrecognized string
}

// Lex groups tokens into invocations in one left-to-right pass.
//
// A pending invocation keeps taking tokens as values until it holds
// MaxArity values or the next token resolves to a command. Either way the
// invocation closes and the token is treated as a fresh command candidate.
// A token that resolves is always a command, never a value, even where a
// value was intended. Tokens that don't resolve while no invocation is
// pending become Unrecognized steps.
func Lex(reg *Registry, tokens []string) []Step {
	var steps []Step
	var pending *Invocation

	for _, tok := range tokens {
		if pending != nil &&
			len(pending.Values) < pending.Descriptor.MaxArity() &&
			!reg.Resolves(tok) {
			pending.Values = append(pending.Values, tok)
			continue
		}

		if pending != nil {
			steps = append(steps, Step{Invocation: pending})
			pending = nil
		}

		if d, ok := reg.Lookup(tok); ok {
			pending = &Invocation{Descriptor: d, Values: []string{}}
		} else {
			steps = append(steps, Step{Unrecognized: tok})
		}
	}

	if pending != nil {
		steps = append(steps, Step{Invocation: pending})
	}

	return steps
}
