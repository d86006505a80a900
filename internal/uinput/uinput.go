// Package uinput creates a virtual keyboard through /dev/uinput.
package uinput

import (
	"errors"

	"github.com/Alia5/cuamap/key"
)

// DefaultPath is the uinput control node.
const DefaultPath = "/dev/uinput"

// DefaultName is the name the virtual keyboard reports to the system.
const DefaultName = "cuamap virtual keyboard"

// ErrUnsupported is returned on platforms without uinput.
var ErrUnsupported = errors.New("uinput output is only supported on Linux")

// ErrClosed is returned when writing to a destroyed keyboard.
var ErrClosed = errors.New("uinput device closed")

// Discard is a sink that accepts and drops everything. Used for dry runs.
type Discard struct{}

func (Discard) WriteKey(key.Code, key.Edge) error { return nil }
func (Discard) Sync() error                       { return nil }
func (Discard) Close() error                      { return nil }
