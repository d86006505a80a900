package log

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/Alia5/cuamap/key"
)

// EventLogger traces key events flowing through the remapper.
type EventLogger interface {
	// Log records one event. in=true means device->remapper,
	// in=false means remapper->virtual keyboard.
	Log(in bool, code key.Code, edge key.Edge)
	// Sync records a report boundary written to the virtual keyboard.
	Sync()
}

type eventLogger struct {
	w   io.Writer
	mu  sync.Mutex
	now func() time.Time
}

// NewEvent creates a new EventLogger. If writer is nil, returns a no-op logger.
func NewEvent(w io.Writer) EventLogger {
	return &eventLogger{w: w, now: time.Now}
}

func (l *eventLogger) Log(in bool, code key.Code, edge key.Edge) {
	if l.w == nil {
		return
	}
	dir := "OUT"
	if in {
		dir = " IN"
	}
	l.write(fmt.Sprintf("%s %s %-16s %-6s (%d)\n",
		l.now().Format("2006/01/02 15:04:05.000"), dir, code, edge, uint16(code)))
}

func (l *eventLogger) Sync() {
	if l.w == nil {
		return
	}
	l.write(l.now().Format("2006/01/02 15:04:05.000") + " OUT SYN_REPORT\n")
}

func (l *eventLogger) write(line string) {
	l.mu.Lock()
	_, _ = l.w.Write([]byte(line))
	l.mu.Unlock()
}
