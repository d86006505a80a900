// Package log provides helpers for creating a configured slog.Logger.
//
// When a log file path is not provided, logs are written to stdout for
// non-error levels and to stderr for errors (so stderr can be used for
// error redirection while keeping normal logs on stdout). Under systemd the
// time attribute is dropped since the journal stamps every line itself.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LevelTrace defines a custom slog level below Debug; at this level every
// key event is traced to stdout.
const LevelTrace slog.Level = -8

// Config is the --log.* flag group.
type Config struct {
	Level   string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"CUAMAP_LOG_LEVEL"`
	Format  string `help:"Log format" enum:"text,json" default:"text" env:"CUAMAP_LOG_FORMAT"`
	File    string `help:"Write logs to this file instead of stdout/stderr" env:"CUAMAP_LOG_FILE"`
	RawFile string `help:"Trace every key event to this file" env:"CUAMAP_LOG_RAW_FILE"`
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// MultiHandler fans out records to multiple handlers.
type MultiHandler struct{ hs []slog.Handler }

func (m MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}
func (m MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.hs {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		_ = h.Handle(ctx, r.Clone())
	}
	return nil
}
func (m MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = h.WithAttrs(attrs)
	}
	return MultiHandler{hs: out}
}
func (m MultiHandler) WithGroup(name string) slog.Handler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = h.WithGroup(name)
	}
	return MultiHandler{hs: out}
}

// LevelFilter delegates to an underlying handler but filters which levels are
// passed to it using the provided predicate.
type LevelFilter struct {
	pass func(slog.Level) bool
	h    slog.Handler
}

func (f LevelFilter) Enabled(ctx context.Context, level slog.Level) bool {
	if !f.pass(level) {
		return false
	}
	return f.h.Enabled(ctx, level)
}

func (f LevelFilter) Handle(ctx context.Context, r slog.Record) error {
	if !f.pass(r.Level) {
		return nil
	}
	return f.h.Handle(ctx, r)
}

func (f LevelFilter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return LevelFilter{pass: f.pass, h: f.h.WithAttrs(attrs)}
}
func (f LevelFilter) WithGroup(name string) slog.Handler {
	return LevelFilter{pass: f.pass, h: f.h.WithGroup(name)}
}

func newHandler(w io.Writer, format string, level slog.Level, dropTime bool) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
					return slog.String(slog.LevelKey, "TRACE")
				}
			}
			if dropTime && len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}
	if format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// underJournal reports whether stdout/stderr are connected to the systemd journal.
func underJournal() bool {
	return os.Getenv("JOURNAL_STREAM") != ""
}

// SetupLogger builds a slog.Logger with console and optional file handlers.
func SetupLogger(cfg Config) (*slog.Logger, []io.Closer, error) {
	level := ParseLevel(cfg.Level)
	journal := underJournal()
	var handlers []slog.Handler

	if cfg.File == "" {
		stdoutHandler := newHandler(os.Stdout, cfg.Format, level, journal)
		handlers = append(handlers, LevelFilter{pass: func(l slog.Level) bool { return l < slog.LevelError }, h: stdoutHandler})

		stderrHandler := newHandler(os.Stderr, cfg.Format, slog.LevelError, journal)
		handlers = append(handlers, LevelFilter{pass: func(l slog.Level) bool { return l >= slog.LevelError }, h: stderrHandler})
	} else {
		handlers = append(handlers, newHandler(os.Stderr, cfg.Format, slog.LevelWarn, journal))
	}
	var closeFiles []io.Closer
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		closeFiles = append(closeFiles, f)
		handlers = append(handlers, newHandler(f, cfg.Format, level, false))
	}
	logger := slog.New(MultiHandler{hs: handlers})
	return logger, closeFiles, nil
}

// SetupEventLogger opens the key event trace configured by cfg. Without a
// raw file, events are traced to stdout at trace level and dropped otherwise.
func SetupEventLogger(cfg Config, logger *slog.Logger) (EventLogger, io.Closer) {
	if cfg.RawFile != "" {
		f, err := os.OpenFile(cfg.RawFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("failed to open raw log file", "file", cfg.RawFile, "error", err)
			return NewEvent(nil), nil
		}
		return NewEvent(f), f
	}
	if ParseLevel(cfg.Level) == LevelTrace {
		return NewEvent(os.Stdout), nil
	}
	return NewEvent(nil), nil
}
