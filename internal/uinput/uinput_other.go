//go:build !linux

package uinput

import "github.com/Alia5/cuamap/key"

// Keyboard is unavailable on this platform.
type Keyboard struct{}

func Create(string, string) (*Keyboard, error) { return nil, ErrUnsupported }

func (*Keyboard) WriteKey(key.Code, key.Edge) error { return ErrUnsupported }
func (*Keyboard) Sync() error                       { return ErrUnsupported }
func (*Keyboard) Close() error                      { return nil }
