package key_test

import (
	"testing"
	"time"

	"github.com/Alia5/cuamap/key"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    key.Code
		wantErr bool
	}{
		{name: "canonical", input: "KEY_CAPSLOCK", want: key.CapsLock},
		{name: "no prefix", input: "capslock", want: key.CapsLock},
		{name: "mixed case", input: "LeftCtrl", want: key.LeftCtrl},
		{name: "surrounding space", input: "  equal ", want: key.Equal},
		{name: "numeric", input: "30", want: key.A},
		{name: "numeric with prefix", input: "KEY_58", want: key.CapsLock},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown", input: "KEY_BANANA", wantErr: true},
		{name: "out of range", input: "70000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := key.Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCodeText(t *testing.T) {
	assert.Equal(t, "KEY_LEFTMETA", key.LeftMeta.String())
	assert.Equal(t, "KEY_600", key.Code(600).String())

	var c key.Code
	assert.NoError(t, c.UnmarshalText([]byte("pageup")))
	assert.Equal(t, key.PageUp, c)
	assert.Error(t, c.UnmarshalText([]byte("nope")))
	assert.Equal(t, key.PageUp, c, "failed unmarshal must not modify the code")

	b, err := key.Home.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "KEY_HOME", string(b))
}

func TestNamesRoundTrip(t *testing.T) {
	all := key.Names()
	assert.NotEmpty(t, all)
	assert.Equal(t, "KEY_RESERVED", all[0])
	for _, n := range all {
		c, err := key.Parse(n)
		assert.NoError(t, err, n)
		assert.Equal(t, n, c.String())
	}
}

func TestEventTransition(t *testing.T) {
	now := time.Unix(1700000000, 0)
	ev := key.Event{Time: now, Type: key.EvKey, Code: uint16(key.I), Value: 2}

	assert.True(t, ev.IsKey())
	assert.False(t, key.Event{Type: key.EvMsc}.IsKey())
	assert.Equal(t, key.Transition{Time: now, Key: key.I, Edge: key.Repeat}, ev.Transition())
	assert.Equal(t, "KEY_I repeat", ev.Transition().String())
	assert.Equal(t, "edge(7)", key.Edge(7).String())
}
