//go:build linux

package evdev

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Alia5/cuamap/key"
	goevdev "github.com/gvalkov/golang-evdev"
)

// Keyboard is an opened evdev device node. It implements remap.Source.
type Keyboard struct {
	dev       *goevdev.InputDevice
	closeOnce sync.Once
	closeErr  error
	closed    atomic.Bool
}

// Open opens the device node at path.
func Open(path string) (*Keyboard, error) {
	dev, err := goevdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &Keyboard{dev: dev}, nil
}

// OpenByName scans /dev/input for the primary node of the named device.
func OpenByName(name string) (*Keyboard, error) {
	devs, err := goevdev.ListInputDevices()
	if err != nil {
		return nil, fmt.Errorf("list input devices: %w", err)
	}
	var found *goevdev.InputDevice
	for _, d := range devs {
		if found == nil && info(d).Matches(name) {
			found = d
			continue
		}
		_ = d.File.Close()
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return &Keyboard{dev: found}, nil
}

// List returns every readable input device.
func List() ([]Info, error) {
	devs, err := goevdev.ListInputDevices()
	if err != nil {
		return nil, fmt.Errorf("list input devices: %w", err)
	}
	out := make([]Info, 0, len(devs))
	for _, d := range devs {
		out = append(out, info(d))
		_ = d.File.Close()
	}
	return out, nil
}

func info(d *goevdev.InputDevice) Info {
	return Info{Path: d.Fn, Name: d.Name, Phys: d.Phys}
}

// Info returns the path, name and physical location of the device.
func (k *Keyboard) Info() Info {
	return info(k.dev)
}

// Grab takes exclusive access to the device (EVIOCGRAB).
func (k *Keyboard) Grab() error {
	return k.dev.Grab()
}

// Ungrab releases exclusive access. Closing the device releases the grab
// as well, so Ungrab after Close is a no-op.
func (k *Keyboard) Ungrab() error {
	if k.closed.Load() {
		return nil
	}
	return k.dev.Release()
}

// ReadEvent blocks for the next event. It fails once Close was called.
func (k *Keyboard) ReadEvent() (key.Event, error) {
	ev, err := k.dev.ReadOne()
	if err != nil {
		return key.Event{}, err
	}
	return key.Event{
		Time:  time.Unix(int64(ev.Time.Sec), int64(ev.Time.Usec)*int64(time.Microsecond)),
		Type:  ev.Type,
		Code:  ev.Code,
		Value: ev.Value,
	}, nil
}

// Close closes the device node, unblocking a pending ReadEvent.
func (k *Keyboard) Close() error {
	k.closeOnce.Do(func() {
		k.closed.Store(true)
		k.closeErr = k.dev.File.Close()
	})
	return k.closeErr
}
