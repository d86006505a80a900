package remap

import "github.com/Alia5/cuamap/key"

// Source produces raw events from an input device.
type Source interface {
	// Grab takes exclusive access so no other reader sees the device's events.
	Grab() error
	// ReadEvent blocks until the next raw event is available.
	ReadEvent() (key.Event, error)
	Ungrab() error
}

// Sink accepts synthesized key events for a virtual keyboard.
type Sink interface {
	WriteKey(code key.Code, edge key.Edge) error
	// Sync delivers everything written since the previous Sync as one report.
	Sync() error
	Close() error
}
