package remap

import (
	"fmt"

	"github.com/Alia5/cuamap/key"
)

// Chain evaluates rules in declaration order until one consumes the event.
type Chain struct {
	rules []Rule
}

// NewChain validates that rules end with exactly one Passthrough.
func NewChain(rules ...Rule) (*Chain, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("%w: no rules", ErrInvalidChain)
	}
	for i, r := range rules {
		if r == nil {
			return nil, fmt.Errorf("%w: rule %d is nil", ErrInvalidChain, i)
		}
		if isPassthrough(r) && i != len(rules)-1 {
			return nil, fmt.Errorf("%w: passthrough at %d must be the last rule", ErrInvalidChain, i)
		}
	}
	if !isPassthrough(rules[len(rules)-1]) {
		return nil, fmt.Errorf("%w: last rule must be a passthrough", ErrInvalidChain)
	}
	return &Chain{rules: append([]Rule(nil), rules...)}, nil
}

func isPassthrough(r Rule) bool {
	switch r.(type) {
	case Passthrough, *Passthrough:
		return true
	}
	return false
}

// Rules returns a copy of the chain's rules.
func (c *Chain) Rules() []Rule {
	return append([]Rule(nil), c.rules...)
}

// Dispatch runs t through the chain and reports whether a rule consumed it,
// along with that rule. Probes never stop evaluation.
func (c *Chain) Dispatch(st *State, t key.Transition, sink Sink) (Result, Rule, error) {
	for _, r := range c.rules {
		res, err := r.Apply(st, t, sink)
		if err != nil {
			return res, r, err
		}
		if res == Consumed {
			return Consumed, r, nil
		}
	}
	return NotConsumed, nil, nil
}
