package testing

import (
	"errors"
	"io"
	"sync"

	"github.com/Alia5/cuamap/key"
	"github.com/Alia5/cuamap/remap"
)

// ErrInjected is returned by fakes configured to fail.
var ErrInjected = errors.New("injected failure")

// FakeSource replays a fixed list of events and then returns ReadErr
// (io.EOF when unset).
type FakeSource struct {
	Events  []key.Event
	GrabErr error
	ReadErr error

	mu        sync.Mutex
	pos       int
	Grabbed   int
	Ungrabbed int
}

func (s *FakeSource) Grab() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GrabErr != nil {
		return s.GrabErr
	}
	s.Grabbed++
	return nil
}

func (s *FakeSource) ReadEvent() (key.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pos >= len(s.Events) {
		if s.ReadErr != nil {
			return key.Event{}, s.ReadErr
		}
		return key.Event{}, io.EOF
	}
	ev := s.Events[s.pos]
	s.pos++
	return ev, nil
}

func (s *FakeSource) Ungrab() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Ungrabbed++
	return nil
}

// SinkOp is one call recorded by RecordingSink. Sync calls have Sync set
// and a zero Action.
type SinkOp struct {
	Action remap.Action
	Sync   bool
}

// RecordingSink records every write and sync in call order.
type RecordingSink struct {
	// FailWrite makes the n-th write (1-based) fail; 0 disables.
	FailWrite int
	FailSync  bool

	Ops    []SinkOp
	Closed int
	writes int
}

func (s *RecordingSink) WriteKey(code key.Code, edge key.Edge) error {
	s.writes++
	if s.FailWrite > 0 && s.writes == s.FailWrite {
		return ErrInjected
	}
	s.Ops = append(s.Ops, SinkOp{Action: remap.Action{Key: code, Edge: edge}})
	return nil
}

func (s *RecordingSink) Sync() error {
	if s.FailSync {
		return ErrInjected
	}
	s.Ops = append(s.Ops, SinkOp{Sync: true})
	return nil
}

func (s *RecordingSink) Close() error {
	s.Closed++
	return nil
}

// Writes returns the recorded actions without syncs.
func (s *RecordingSink) Writes() remap.Chord {
	var out remap.Chord
	for _, op := range s.Ops {
		if !op.Sync {
			out = append(out, op.Action)
		}
	}
	return out
}

// Syncs returns the number of Sync calls.
func (s *RecordingSink) Syncs() int {
	n := 0
	for _, op := range s.Ops {
		if op.Sync {
			n++
		}
	}
	return n
}

// Reset forgets recorded operations.
func (s *RecordingSink) Reset() {
	s.Ops = nil
	s.writes = 0
}

// KeyEvent builds a raw key-class event.
func KeyEvent(k key.Code, edge key.Edge) key.Event {
	return key.Event{Type: key.EvKey, Code: uint16(k), Value: int32(edge)}
}

// Down, Up and Hold are shorthands for KeyEvent.
func Down(k key.Code) key.Event { return KeyEvent(k, key.Press) }
func Up(k key.Code) key.Event   { return KeyEvent(k, key.Release) }
func Hold(k key.Code) key.Event { return KeyEvent(k, key.Repeat) }
