package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Alia5/cuamap/internal/evdev"
	"github.com/Alia5/cuamap/internal/log"
	"github.com/Alia5/cuamap/internal/uinput"
	"github.com/Alia5/cuamap/key"
	"github.com/Alia5/cuamap/remap"
	"golang.org/x/term"
)

// Run grabs the keyboard and remaps it until interrupted.
type Run struct {
	Device       string        `help:"Input device node to grab" default:"/dev/input/event0" env:"CUAMAP_DEVICE"`
	DeviceName   string        `help:"Select the input device by name instead of path (e.g. \"AT Translated Set 2 keyboard\")" env:"CUAMAP_DEVICE_NAME"`
	Uinput       string        `help:"uinput control node" default:"/dev/uinput" env:"CUAMAP_UINPUT"`
	OutputName   string        `help:"Name of the virtual keyboard" default:"cuamap virtual keyboard" env:"CUAMAP_OUTPUT_NAME"`
	StartupDelay time.Duration `help:"Delay before grabbing when started from a terminal, so the Enter release is not lost" default:"1s" env:"CUAMAP_STARTUP_DELAY"`
	Swap         []string      `help:"Two keys exchanged before any rule runs; \"none\" disables" default:"KEY_LEFTALT,KEY_LEFTCTRL" sep:"," env:"CUAMAP_SWAP"`
	Kill         KillConfig    `embed:"" prefix:"kill."`
	DryRun       bool          `help:"Trace remapped events without grabbing the device or creating the virtual keyboard"`
}

// KillConfig enables the optional emergency exit chord.
type KillConfig struct {
	Enabled bool     `help:"Exit when the kill key is pressed while the guard is asserted" env:"CUAMAP_KILL_ENABLED"`
	Guard   key.Code `help:"Guard modifier for the kill sequence" default:"KEY_CAPSLOCK" env:"CUAMAP_KILL_GUARD"`
	Key     key.Code `help:"Kill key" default:"KEY_EQUAL" env:"CUAMAP_KILL_KEY"`
}

// source is a device that can also be closed to unblock a pending read.
type source interface {
	remap.Source
	Close() error
	Info() evdev.Info
}

// Replaced in tests.
var (
	openSource = func(r *Run) (source, error) {
		if r.DeviceName != "" {
			return evdev.OpenByName(r.DeviceName)
		}
		return evdev.Open(r.Device)
	}
	createSink = func(r *Run) (remap.Sink, error) {
		if r.DryRun {
			return uinput.Discard{}, nil
		}
		return uinput.Create(r.Uinput, r.OutputName)
	}
	isTerminal = func() bool {
		return term.IsTerminal(int(os.Stdin.Fd()))
	}
)

// Run is called by Kong when the run command is executed.
func (r *Run) Run(logger *slog.Logger, events log.EventLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return r.Start(ctx, logger, events)
}

// Start runs the remapper until ctx is cancelled or the pipeline fails.
func (r *Run) Start(ctx context.Context, logger *slog.Logger, events log.EventLogger) error {
	swap, err := r.swap()
	if err != nil {
		return err
	}
	chain, err := remap.NewChain(remap.DefaultRules(r.options())...)
	if err != nil {
		return err
	}

	if !r.waitForTerminal(ctx, logger) {
		return nil
	}

	src, err := openSource(r)
	if err != nil {
		return fmt.Errorf("%w: %w", remap.ErrSourceUnavailable, err)
	}
	defer func() {
		if err := src.Close(); err != nil {
			logger.Debug("failed to close input device", "error", err)
		}
	}()

	sink, err := createSink(r)
	if err != nil {
		return fmt.Errorf("%w: %w", remap.ErrSinkCreationFailed, err)
	}

	var in remap.Source = src
	if r.DryRun {
		in = noGrab{src}
	}
	engine := remap.NewEngine(
		&tracedSource{Source: in, events: events},
		&tracedSink{Sink: sink, events: events},
		swap, chain, logger,
	)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = src.Close()
		case <-done:
		}
	}()

	info := src.Info()
	logger.Info("Starting cuamap remapper", "device", info.Path, "name", info.Name,
		"swap", swap, "kill", r.Kill.Enabled, "dryRun", r.DryRun)

	err = engine.Run(ctx)
	switch {
	case err == nil:
		logger.Info("Shutting down remapper")
	case errors.Is(err, remap.ErrKillSequence):
		logger.Warn("Kill sequence pressed, exiting")
	}
	return err
}

func (r *Run) options() remap.Options {
	var opts remap.Options
	if r.Kill.Enabled {
		opts.Kill = &remap.KillSequence{Guard: r.Kill.Guard, Key: r.Kill.Key}
	}
	return opts
}

func (r *Run) swap() (remap.Swap, error) {
	if len(r.Swap) == 0 || (len(r.Swap) == 1 && r.Swap[0] == "none") {
		return remap.Swap{}, nil
	}
	if len(r.Swap) != 2 {
		return remap.Swap{}, fmt.Errorf("--swap needs exactly two keys, got %d", len(r.Swap))
	}
	a, err := key.Parse(r.Swap[0])
	if err != nil {
		return remap.Swap{}, fmt.Errorf("--swap: %w", err)
	}
	b, err := key.Parse(r.Swap[1])
	if err != nil {
		return remap.Swap{}, fmt.Errorf("--swap: %w", err)
	}
	return remap.Swap{A: a, B: b}, nil
}

// waitForTerminal sleeps for StartupDelay when attached to a terminal. It
// returns false if ctx was cancelled meanwhile.
func (r *Run) waitForTerminal(ctx context.Context, logger *slog.Logger) bool {
	if r.StartupDelay <= 0 || !isTerminal() {
		return true
	}
	logger.Debug("Waiting before grabbing the keyboard", "delay", r.StartupDelay)
	t := time.NewTimer(r.StartupDelay)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// noGrab leaves the device shared, for dry runs.
type noGrab struct{ remap.Source }

func (noGrab) Grab() error   { return nil }
func (noGrab) Ungrab() error { return nil }
