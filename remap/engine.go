package remap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Alia5/cuamap/key"
)

// Normalizer rewrites a transition before any rule sees it.
type Normalizer interface {
	Normalize(t key.Transition) key.Transition
}

// Engine pulls events from a Source, runs them through a Chain and writes
// the result to a Sink, one Sync per key event.
type Engine struct {
	src    Source
	sink   Sink
	norm   Normalizer
	chain  *Chain
	state  *State
	logger *slog.Logger
}

// NewEngine wires an engine. norm may be nil for no ingress rewrite.
func NewEngine(src Source, sink Sink, norm Normalizer, chain *Chain, logger *slog.Logger) *Engine {
	if norm == nil {
		norm = Swap{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{
		src:    src,
		sink:   sink,
		norm:   norm,
		chain:  chain,
		state:  NewState(),
		logger: logger,
	}
}

// State exposes the engine's modifier and latch flags.
func (e *Engine) State() *State {
	return e.state
}

// Run grabs the source and processes events until the source fails, a rule
// returns an error or ctx is cancelled. The source is ungrabbed and the sink
// closed on every exit path. A cancelled context yields a nil error.
func (e *Engine) Run(ctx context.Context) (err error) {
	if err := e.src.Grab(); err != nil {
		_ = e.sink.Close()
		return fmt.Errorf("%w: grab: %w", ErrSourceUnavailable, err)
	}
	e.logger.Debug("Source grabbed")

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("remap engine panic: %v", r)
		}
		if uerr := e.src.Ungrab(); uerr != nil {
			e.logger.Warn("failed to ungrab source", "error", uerr)
		}
		if cerr := e.sink.Close(); cerr != nil {
			e.logger.Warn("failed to close sink", "error", cerr)
		}
		e.logger.Debug("Source released")
	}()

	for {
		if ctx.Err() != nil {
			return nil
		}
		ev, rerr := e.src.ReadEvent()
		if rerr != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("%w: %w", ErrSourceReadFailed, rerr)
		}
		if err := e.Process(ev); err != nil {
			return err
		}
	}
}

// Process handles a single raw event. Events outside the key class are
// ignored without a sync.
func (e *Engine) Process(ev key.Event) error {
	if !ev.IsKey() {
		return nil
	}
	t := e.norm.Normalize(ev.Transition())

	res, rule, err := e.chain.Dispatch(e.state, t, e.sink)
	if err != nil {
		if errors.Is(err, ErrKillSequence) {
			e.logger.Info("Kill sequence received", "rule", rule)
		}
		return err
	}
	if e.logger.Enabled(context.Background(), slog.LevelDebug) {
		e.logger.Debug("Dispatched", "event", t, "result", res, "rule", rule)
	}

	if err := e.sink.Sync(); err != nil {
		return fmt.Errorf("%w: sync: %w", ErrWriteFailed, err)
	}
	return nil
}
