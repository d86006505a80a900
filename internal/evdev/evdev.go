// Package evdev reads a physical keyboard through the Linux evdev interface.
package evdev

import (
	"errors"
	"strings"
)

// DefaultDevice is the device opened when neither a path nor a name is given.
const DefaultDevice = "/dev/input/event0"

// ErrUnsupported is returned on platforms without evdev.
var ErrUnsupported = errors.New("evdev input is only supported on Linux")

// ErrNotFound is returned when no device matches a requested name.
var ErrNotFound = errors.New("input device not found")

// Info describes an input device node.
type Info struct {
	Path string
	Name string
	Phys string
}

// Matches reports whether the device is the primary node of the named
// device. Keyboards often expose several nodes under the same name; the
// primary one has a physical path ending in "0".
func (i Info) Matches(name string) bool {
	if i.Name != name {
		return false
	}
	return i.Phys == "" || strings.HasSuffix(i.Phys, "0")
}
