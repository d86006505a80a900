//go:build linux

package uinput

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/Alia5/cuamap/key"
	"golang.org/x/sys/unix"
)

// ioctl requests from linux/uinput.h
const (
	uiDevCreate  = 0x5501     // _IO('U', 1)
	uiDevDestroy = 0x5502     // _IO('U', 2)
	uiDevSetup   = 0x405c5503 // _IOW('U', 3, struct uinput_setup)
	uiSetEvBit   = 0x40045564 // _IOW('U', 100, int)
	uiSetKeyBit  = 0x40045565 // _IOW('U', 101, int)

	busVirtual = 0x06

	maxNameSize = 80

	// highest regular keyboard code; BTN_* codes above would make the
	// device look like a mouse or joystick
	lastKeyboardCode = 0xff
)

type inputID struct {
	Bustype uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

type uinputSetup struct {
	ID           inputID
	Name         [maxNameSize]byte
	FFEffectsMax uint32
}

type inputEvent struct {
	Time  unix.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// Keyboard is a virtual keyboard. It implements remap.Sink.
type Keyboard struct {
	fd  int
	buf bytes.Buffer
}

// Create opens path (normally DefaultPath) and registers a keyboard
// advertising every regular key code.
func Create(path, name string) (*Keyboard, error) {
	fd, err := unix.Open(path, unix.O_WRONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := setup(fd, name); err != nil {
		_ = unix.Close(fd)
		return nil, err
	}
	return &Keyboard{fd: fd}, nil
}

func setup(fd int, name string) error {
	if err := unix.IoctlSetInt(fd, uiSetEvBit, int(key.EvKey)); err != nil {
		return fmt.Errorf("UI_SET_EVBIT: %w", err)
	}
	for c := 1; c <= lastKeyboardCode; c++ {
		if err := unix.IoctlSetInt(fd, uiSetKeyBit, c); err != nil {
			return fmt.Errorf("UI_SET_KEYBIT %d: %w", c, err)
		}
	}

	var s uinputSetup
	s.ID = inputID{Bustype: busVirtual, Vendor: 0x1209, Product: 0xc0a1, Version: 1}
	copy(s.Name[:maxNameSize-1], name)
	if err := ioctl(fd, uiDevSetup, uintptr(unsafe.Pointer(&s))); err != nil {
		return fmt.Errorf("UI_DEV_SETUP: %w", err)
	}
	if err := ioctl(fd, uiDevCreate, 0); err != nil {
		return fmt.Errorf("UI_DEV_CREATE: %w", err)
	}
	return nil
}

func ioctl(fd int, req, arg uintptr) error {
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, arg); errno != 0 {
		return errno
	}
	return nil
}

// WriteKey queues one key event; it reaches consumers on the next Sync.
func (k *Keyboard) WriteKey(code key.Code, edge key.Edge) error {
	return k.write(key.EvKey, uint16(code), int32(edge))
}

// Sync writes SYN_REPORT.
func (k *Keyboard) Sync() error {
	return k.write(key.EvSyn, key.SynReport, 0)
}

func (k *Keyboard) write(typ, code uint16, value int32) error {
	if k.fd < 0 {
		return ErrClosed
	}
	b := encode(&k.buf, typ, code, value)
	if _, err := unix.Write(k.fd, b); err != nil {
		return err
	}
	return nil
}

// encode serialises a struct input_event; the kernel stamps the time itself.
func encode(buf *bytes.Buffer, typ, code uint16, value int32) []byte {
	buf.Reset()
	_ = binary.Write(buf, binary.NativeEndian, inputEvent{Type: typ, Code: code, Value: value})
	return buf.Bytes()
}

// Close destroys the virtual device. Further writes fail with ErrClosed.
func (k *Keyboard) Close() error {
	if k.fd < 0 {
		return nil
	}
	derr := ioctl(k.fd, uiDevDestroy, 0)
	cerr := unix.Close(k.fd)
	k.fd = -1
	if derr != nil {
		return fmt.Errorf("UI_DEV_DESTROY: %w", derr)
	}
	return cerr
}
