package remap_test

import (
	"context"
	"errors"
	"testing"

	th "github.com/Alia5/cuamap/internal/testing"
	"github.com/Alia5/cuamap/key"
	"github.com/Alia5/cuamap/remap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, src remap.Source, sink remap.Sink, opts remap.Options) *remap.Engine {
	t.Helper()
	chain, err := remap.NewChain(remap.DefaultRules(opts)...)
	require.NoError(t, err)
	return remap.NewEngine(src, sink, remap.DefaultSwap(), chain, nil)
}

func TestEngineScenarios(t *testing.T) {
	type step struct {
		in  key.Event
		out remap.Chord
	}

	tests := []struct {
		name  string
		setup []key.Event
		steps []step
	}{
		{
			name:  "caps navigation emits on release",
			setup: []key.Event{th.Down(key.CapsLock)},
			steps: []step{
				{in: th.Down(key.I)},
				{in: th.Up(key.I), out: remap.Tap(key.Up)},
			},
		},
		{
			name:  "caps navigation emits on every repeat",
			setup: []key.Event{th.Down(key.CapsLock)},
			steps: []step{
				{in: th.Down(key.J)},
				{in: th.Hold(key.J), out: remap.Tap(key.Left)},
				{in: th.Hold(key.J), out: remap.Tap(key.Left)},
				{in: th.Up(key.J), out: remap.Tap(key.Left)},
			},
		},
		{
			name: "caps key itself is blocked",
			steps: []step{
				{in: th.Down(key.CapsLock)},
				{in: th.Hold(key.CapsLock)},
				{in: th.Up(key.CapsLock)},
			},
		},
		{
			name: "plain key passes through",
			steps: []step{
				{in: th.Down(key.A), out: remap.Press(key.A)},
				{in: th.Hold(key.A), out: remap.Chord{{Key: key.A, Edge: key.Repeat}}},
				{in: th.Up(key.A), out: remap.Release(key.A)},
			},
		},
		{
			name:  "latched caps acts as a held modifier",
			setup: []key.Event{th.Down(key.CapsLock), th.Up(key.CapsLock)},
			steps: []step{
				{in: th.Down(key.W)},
				{in: th.Up(key.W), out: remap.Combo(key.Home, key.LeftCtrl)},
			},
		},
		{
			name: "left ctrl and alt are swapped",
			steps: []step{
				{in: th.Down(key.LeftCtrl), out: remap.Press(key.LeftAlt)},
				{in: th.Up(key.LeftCtrl), out: remap.Release(key.LeftAlt)},
				{in: th.Down(key.LeftAlt), out: remap.Press(key.LeftCtrl)},
			},
		},
		{
			name:  "physical ctrl c becomes ctrl shift c",
			setup: []key.Event{th.Down(key.LeftCtrl)},
			steps: []step{
				{in: th.Down(key.C)},
				{in: th.Up(key.C), out: remap.Release(key.LeftAlt).Then(remap.Combo(key.C, key.LeftCtrl, key.LeftShift))},
			},
		},
		{
			name:  "caps layer is suppressed by physical alt",
			setup: []key.Event{th.Down(key.CapsLock), th.Down(key.LeftAlt)},
			steps: []step{
				{in: th.Down(key.I), out: remap.Press(key.I)},
				{in: th.Up(key.I), out: remap.Release(key.I)},
			},
		},
		{
			name:  "meta workspace navigation",
			setup: []key.Event{th.Down(key.LeftMeta)},
			steps: []step{
				{in: th.Up(key.K), out: remap.Tap(key.Down)},
			},
		},
		{
			name: "non key events are ignored",
			steps: []step{
				{in: key.Event{Type: key.EvMsc, Code: 4, Value: 0x70039}},
				{in: key.Event{Type: key.EvSyn}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &th.RecordingSink{}
			e := newEngine(t, &th.FakeSource{}, sink, remap.Options{})
			for _, ev := range tt.setup {
				require.NoError(t, e.Process(ev))
			}
			for i, s := range tt.steps {
				sink.Reset()
				require.NoError(t, e.Process(s.in))

				assert.Equal(t, s.out, sink.Writes(), "step %d", i)
				if s.in.IsKey() {
					require.NotEmpty(t, sink.Ops)
					assert.Equal(t, 1, sink.Syncs(), "step %d: one sync per key event", i)
					assert.True(t, sink.Ops[len(sink.Ops)-1].Sync, "step %d: sync comes last", i)
				} else {
					assert.Empty(t, sink.Ops, "step %d", i)
				}
			}
		})
	}
}

func TestEngineRunLifecycle(t *testing.T) {
	src := &th.FakeSource{Events: []key.Event{
		th.Down(key.A), th.Up(key.A),
		{Type: key.EvSyn},
		th.Down(key.CapsLock), th.Up(key.CapsLock),
	}}
	sink := &th.RecordingSink{}
	e := newEngine(t, src, sink, remap.Options{})

	err := e.Run(context.Background())
	assert.ErrorIs(t, err, remap.ErrSourceReadFailed)
	assert.Equal(t, 1, src.Grabbed)
	assert.Equal(t, 1, src.Ungrabbed)
	assert.Equal(t, 1, sink.Closed)
	assert.Equal(t, 4, sink.Syncs())
	assert.Equal(t, remap.Tap(key.A), sink.Writes())
	assert.True(t, e.State().Latched(key.CapsLock))
}

func TestEngineRunGrabFailure(t *testing.T) {
	src := &th.FakeSource{GrabErr: th.ErrInjected}
	sink := &th.RecordingSink{}

	err := newEngine(t, src, sink, remap.Options{}).Run(context.Background())
	assert.ErrorIs(t, err, remap.ErrSourceUnavailable)
	assert.Zero(t, src.Ungrabbed)
	assert.Equal(t, 1, sink.Closed)
}

func TestEngineRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := &th.FakeSource{Events: []key.Event{th.Down(key.A)}}
	sink := &th.RecordingSink{}

	err := newEngine(t, src, sink, remap.Options{}).Run(ctx)
	assert.NoError(t, err)
	assert.Empty(t, sink.Ops)
	assert.Equal(t, 1, src.Ungrabbed)
	assert.Equal(t, 1, sink.Closed)
}

func TestEngineRunWriteFailureStops(t *testing.T) {
	src := &th.FakeSource{Events: []key.Event{
		th.Down(key.CapsLock), th.Up(key.S), th.Down(key.B),
	}}
	sink := &th.RecordingSink{FailWrite: 2}

	err := newEngine(t, src, sink, remap.Options{}).Run(context.Background())
	assert.ErrorIs(t, err, remap.ErrWriteFailed)
	assert.Equal(t, remap.Press(key.LeftCtrl), sink.Writes())
	assert.Equal(t, 1, sink.Syncs(), "no sync after the failed chord")
	assert.Equal(t, 1, src.Ungrabbed)
	assert.Equal(t, 1, sink.Closed)
}

func TestEngineRunSyncFailure(t *testing.T) {
	src := &th.FakeSource{Events: []key.Event{th.Down(key.A)}}
	sink := &th.RecordingSink{FailSync: true}

	err := newEngine(t, src, sink, remap.Options{}).Run(context.Background())
	assert.ErrorIs(t, err, remap.ErrWriteFailed)
	assert.Equal(t, 1, sink.Closed)
}

func TestEngineKillSequence(t *testing.T) {
	events := []key.Event{th.Down(key.CapsLock), th.Down(key.Equal), th.Down(key.A)}

	t.Run("disabled by default", func(t *testing.T) {
		sink := &th.RecordingSink{}
		err := newEngine(t, &th.FakeSource{Events: events}, sink, remap.Options{}).Run(context.Background())
		assert.ErrorIs(t, err, remap.ErrSourceReadFailed)
		assert.Equal(t, remap.Chord{{Key: key.Equal, Edge: key.Press}, {Key: key.A, Edge: key.Press}}, sink.Writes())
	})

	t.Run("enabled", func(t *testing.T) {
		sink := &th.RecordingSink{}
		src := &th.FakeSource{Events: events}
		opts := remap.Options{Kill: &remap.KillSequence{Guard: key.CapsLock, Key: key.Equal}}
		err := newEngine(t, src, sink, opts).Run(context.Background())
		assert.ErrorIs(t, err, remap.ErrKillSequence)
		assert.Empty(t, sink.Writes())
		assert.Equal(t, 1, src.Ungrabbed)
		assert.Equal(t, 1, sink.Closed)
	})
}

// panicSource fails hard on read to exercise teardown on unexpected faults.
type panicSource struct{ th.FakeSource }

func (p *panicSource) ReadEvent() (key.Event, error) {
	panic(errors.New("device vanished"))
}

func TestEngineRunPanicReleases(t *testing.T) {
	src := &panicSource{}
	sink := &th.RecordingSink{}

	err := newEngine(t, src, sink, remap.Options{}).Run(context.Background())
	assert.ErrorContains(t, err, "device vanished")
	assert.Equal(t, 1, src.Ungrabbed)
	assert.Equal(t, 1, sink.Closed)
}
