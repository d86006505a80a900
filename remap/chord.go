package remap

import (
	"fmt"
	"strings"

	"github.com/Alia5/cuamap/key"
)

// Action is a single synthesized key transition.
type Action struct {
	Key  key.Code
	Edge key.Edge
}

func (a Action) String() string {
	return a.Key.String() + " " + a.Edge.String()
}

// Chord is an ordered list of actions emitted in place of one source event.
type Chord []Action

// Press returns a chord pressing k.
func Press(k key.Code) Chord {
	return Chord{{Key: k, Edge: key.Press}}
}

// Release returns a chord releasing k.
func Release(k key.Code) Chord {
	return Chord{{Key: k, Edge: key.Release}}
}

// Tap returns a chord pressing and releasing k.
func Tap(k key.Code) Chord {
	return Chord{{Key: k, Edge: key.Press}, {Key: k, Edge: key.Release}}
}

// Combo presses mods in order, taps k, then releases mods in reverse order.
//
//	Combo(key.End, key.LeftCtrl) // ctrl down, end down, end up, ctrl up
func Combo(k key.Code, mods ...key.Code) Chord {
	c := make(Chord, 0, 2*len(mods)+2)
	for _, m := range mods {
		c = append(c, Action{Key: m, Edge: key.Press})
	}
	c = append(c, Tap(k)...)
	for i := len(mods) - 1; i >= 0; i-- {
		c = append(c, Action{Key: mods[i], Edge: key.Release})
	}
	return c
}

// Then concatenates chords.
func (c Chord) Then(next ...Chord) Chord {
	out := append(Chord{}, c...)
	for _, n := range next {
		out = append(out, n...)
	}
	return out
}

func (c Chord) String() string {
	parts := make([]string, len(c))
	for i, a := range c {
		parts[i] = a.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Emit writes every action of c to sink in order. It stops at the first
// rejected write and never syncs.
func Emit(sink Sink, c Chord) error {
	for i, a := range c {
		if err := sink.WriteKey(a.Key, a.Edge); err != nil {
			return fmt.Errorf("%w: chord step %d (%s): %w", ErrWriteFailed, i, a, err)
		}
	}
	return nil
}
