package cmd

import (
	"github.com/Alia5/cuamap/internal/log"
	"github.com/Alia5/cuamap/key"
	"github.com/Alia5/cuamap/remap"
)

// tracedSource logs every key event read from the device.
type tracedSource struct {
	remap.Source
	events log.EventLogger
}

func (s *tracedSource) ReadEvent() (key.Event, error) {
	ev, err := s.Source.ReadEvent()
	if err == nil && ev.IsKey() {
		s.events.Log(true, key.Code(ev.Code), key.Edge(ev.Value))
	}
	return ev, err
}

// tracedSink logs every event written to the virtual keyboard.
type tracedSink struct {
	remap.Sink
	events log.EventLogger
}

func (s *tracedSink) WriteKey(code key.Code, edge key.Edge) error {
	s.events.Log(false, code, edge)
	return s.Sink.WriteKey(code, edge)
}

func (s *tracedSink) Sync() error {
	s.events.Sync()
	return s.Sink.Sync()
}
