package remap

import "github.com/Alia5/cuamap/key"

// State holds the live modifier and latch flags shared by every rule.
// It is owned by a single Engine and is not safe for concurrent use.
type State struct {
	modifiers map[key.Code]bool
	toggles   map[key.Code]bool

	lastDown    key.Code
	hasLastDown bool
}

// NewState returns an empty state with every flag cleared.
func NewState() *State {
	return &State{
		modifiers: map[key.Code]bool{},
		toggles:   map[key.Code]bool{},
	}
}

// Asserted reports whether k is currently held or latched as a modifier.
func (s *State) Asserted(k key.Code) bool {
	return s.modifiers[k]
}

// AnyAsserted reports whether at least one of keys is asserted.
func (s *State) AnyAsserted(keys []key.Code) bool {
	for _, k := range keys {
		if s.modifiers[k] {
			return true
		}
	}
	return false
}

// Latched reports the latch flag of a toggle key.
func (s *State) Latched(k key.Code) bool {
	return s.toggles[k]
}

// LastDown returns the key of the most recent non-release transition.
func (s *State) LastDown() (key.Code, bool) {
	return s.lastDown, s.hasLastDown
}

func (s *State) setModifier(k key.Code, v bool) {
	s.modifiers[k] = v
}

func (s *State) flip(k key.Code) bool {
	v := !s.toggles[k]
	s.toggles[k] = v
	return v
}

func (s *State) markDown(k key.Code) {
	s.lastDown = k
	s.hasLastDown = true
}
