// Package key provides Linux input key codes, edges and the event types
// exchanged between an input device and the remapping engine.
package key

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Code identifies a physical or logical key by its Linux KEY_* code.
type Code uint16

// String returns the canonical KEY_* name, or the numeric code for keys
// without a known name.
func (c Code) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	return "KEY_" + strconv.Itoa(int(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so codes can be used
// directly as command line flags and config values.
func (c *Code) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Parse resolves a key name to its code. Names are case insensitive and the
// KEY_ prefix is optional, so "KEY_CAPSLOCK", "capslock" and "CapsLock" are
// equivalent. Plain decimal codes are accepted as well.
func Parse(name string) (Code, error) {
	s := strings.ToUpper(strings.TrimSpace(name))
	if s == "" {
		return 0, fmt.Errorf("empty key name")
	}
	if !strings.HasPrefix(s, "KEY_") {
		s = "KEY_" + s
	}
	if c, ok := byName[s]; ok {
		return c, nil
	}
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "KEY_"), 10, 16)
	if err != nil || Code(n) > Max {
		return 0, fmt.Errorf("unknown key %q", name)
	}
	return Code(n), nil
}

// Names returns every known key name ordered by code.
func Names() []string {
	codes := make([]Code, 0, len(names))
	for c := range names {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = names[c]
	}
	return out
}

// Edge is the transition type of a key event, using the kernel's value space.
type Edge int32

const (
	Release Edge = 0
	Press   Edge = 1
	Repeat  Edge = 2
)

func (e Edge) String() string {
	switch e {
	case Release:
		return "up"
	case Press:
		return "down"
	case Repeat:
		return "repeat"
	default:
		return "edge(" + strconv.Itoa(int(e)) + ")"
	}
}

// Event is a raw input event as produced by the device.
type Event struct {
	Time  time.Time
	Type  uint16
	Code  uint16
	Value int32
}

// IsKey reports whether the event belongs to the key event class.
func (ev Event) IsKey() bool {
	return ev.Type == EvKey
}

// Transition converts a key-class event into a Transition.
func (ev Event) Transition() Transition {
	return Transition{Time: ev.Time, Key: Code(ev.Code), Edge: Edge(ev.Value)}
}

// Transition is a single key state change.
type Transition struct {
	Time time.Time
	Key  Code
	Edge Edge
}

func (t Transition) String() string {
	return t.Key.String() + " " + t.Edge.String()
}
