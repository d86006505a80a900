package remap

import (
	"fmt"

	"github.com/Alia5/cuamap/key"
)

// Result tells the chain whether a rule claimed the event.
type Result bool

const (
	NotConsumed Result = false
	Consumed    Result = true
)

func (r Result) String() string {
	if r {
		return "consumed"
	}
	return "not consumed"
}

// Rule is one step of the remapping chain.
type Rule interface {
	Apply(st *State, t key.Transition, sink Sink) (Result, error)
}

// ModifierProbe tracks whether each watched key is currently held.
type ModifierProbe struct {
	Keys []key.Code
}

func (p ModifierProbe) Apply(st *State, t key.Transition, _ Sink) (Result, error) {
	for _, k := range p.Keys {
		if k == t.Key {
			st.setModifier(k, t.Edge != key.Release)
		}
	}
	return NotConsumed, nil
}

func (p ModifierProbe) String() string {
	return fmt.Sprintf("modifiers%v", p.Keys)
}

// ToggleProbe latches a watched key when it is tapped on its own.
//
// A release flips the latch only if no other key went down since the key's
// own press. The latched value is also forced into the modifier state, so it
// must run after the ModifierProbe watching the same key.
type ToggleProbe struct {
	Keys []key.Code
}

func (p ToggleProbe) Apply(st *State, t key.Transition, _ Sink) (Result, error) {
	if t.Edge != key.Release {
		st.markDown(t.Key)
		return NotConsumed, nil
	}
	if last, ok := st.LastDown(); !ok || last != t.Key {
		return NotConsumed, nil
	}
	for _, k := range p.Keys {
		if k == t.Key {
			st.setModifier(k, st.flip(k))
		}
	}
	return NotConsumed, nil
}

func (p ToggleProbe) String() string {
	return fmt.Sprintf("toggles%v", p.Keys)
}

// GuardedRemap replaces Source with Chord while Guard is asserted and none of
// Forbidden is.
//
// The press edge is swallowed without output; the chord fires on release
// and on every autorepeat.
type GuardedRemap struct {
	Guard     key.Code
	Source    key.Code
	Chord     Chord
	Forbidden []key.Code
}

func (r GuardedRemap) Apply(st *State, t key.Transition, sink Sink) (Result, error) {
	if !st.Asserted(r.Guard) || st.AnyAsserted(r.Forbidden) || t.Key != r.Source {
		return NotConsumed, nil
	}
	if t.Edge == key.Press {
		return Consumed, nil
	}
	return Consumed, Emit(sink, r.Chord)
}

func (r GuardedRemap) String() string {
	return fmt.Sprintf("%s+%s -> %s", r.Guard, r.Source, r.Chord)
}

// Block swallows every event of Key.
type Block struct {
	Key key.Code
}

func (b Block) Apply(_ *State, t key.Transition, _ Sink) (Result, error) {
	if t.Key == b.Key {
		return Consumed, nil
	}
	return NotConsumed, nil
}

func (b Block) String() string {
	return "block " + b.Key.String()
}

// Passthrough forwards the event verbatim. It must be the last rule.
type Passthrough struct{}

func (Passthrough) Apply(_ *State, t key.Transition, sink Sink) (Result, error) {
	if err := sink.WriteKey(t.Key, t.Edge); err != nil {
		return Consumed, fmt.Errorf("%w: passthrough %s: %w", ErrWriteFailed, t, err)
	}
	return Consumed, nil
}

func (Passthrough) String() string {
	return "passthrough"
}

// KillSequence stops the engine with ErrKillSequence when Key transitions
// while Guard is asserted.
type KillSequence struct {
	Guard key.Code
	Key   key.Code
}

func (k KillSequence) Apply(st *State, t key.Transition, _ Sink) (Result, error) {
	if st.Asserted(k.Guard) && t.Key == k.Key {
		return Consumed, ErrKillSequence
	}
	return NotConsumed, nil
}

func (k KillSequence) String() string {
	return fmt.Sprintf("kill %s+%s", k.Guard, k.Key)
}
