//go:build !linux

package evdev

import "github.com/Alia5/cuamap/key"

// Keyboard is unavailable on this platform.
type Keyboard struct{}

func Open(string) (*Keyboard, error)       { return nil, ErrUnsupported }
func OpenByName(string) (*Keyboard, error) { return nil, ErrUnsupported }
func List() ([]Info, error)                { return nil, ErrUnsupported }

func (*Keyboard) Info() Info                    { return Info{} }
func (*Keyboard) Grab() error                   { return ErrUnsupported }
func (*Keyboard) Ungrab() error                 { return ErrUnsupported }
func (*Keyboard) ReadEvent() (key.Event, error) { return key.Event{}, ErrUnsupported }
func (*Keyboard) Close() error                  { return nil }
