package player

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Stopped, "Stopped"},
		{Playing, "Playing"},
		{Paused, "Paused"},
		{State(99), "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.state.String())
	}
}

func TestEventKind_String(t *testing.T) {
	tests := []struct {
		kind EventKind
		want string
	}{
		{EventLoadError, "loaderror"},
		{EventPlayError, "playerror"},
		{EventPlay, "play"},
		{EventEnd, "end"},
		{EventPause, "pause"},
		{EventStop, "stop"},
		{EventKind(99), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestState_IsActive(t *testing.T) {
	assert.False(t, Stopped.IsActive())
	assert.True(t, Playing.IsActive())
	assert.True(t, Paused.IsActive())
}

func TestEmitter_OrderAndOff(t *testing.T) {
	var e emitter
	var got []string

	e.On(EventPlay, func(Event) { got = append(got, "a") })
	off := e.On(EventPlay, func(Event) { got = append(got, "b") })
	e.On(EventEnd, func(Event) { got = append(got, "end") })
	e.On(EventPlay, func(Event) { got = append(got, "c") })

	e.emit(Event{Kind: EventPlay})
	assert.Equal(t, []string{"a", "b", "c"}, got)

	got = nil
	off()
	off() // idempotent
	e.emit(Event{Kind: EventPlay})
	assert.Equal(t, []string{"a", "c"}, got)
}

func TestEmitter_ListenerDetachedDuringEmitDoesNotFire(t *testing.T) {
	var e emitter
	var offB func()
	fired := false

	e.On(EventEnd, func(Event) { offB() })
	offB = e.On(EventEnd, func(Event) { fired = true })

	e.emit(Event{Kind: EventEnd})
	assert.False(t, fired)
}

func TestLoop_DrainRunsNestedPosts(t *testing.T) {
	l := NewLoop()
	var order []int
	l.Post(func() {
		order = append(order, 1)
		l.Post(func() { order = append(order, 3) })
	})
	l.Post(func() { order = append(order, 2) })

	assert.Equal(t, 2, l.Pending())
	assert.Equal(t, 3, l.Drain())
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.Equal(t, 0, l.Pending())
}

func TestMock_AutoplayRunsOnNextTurn(t *testing.T) {
	loop := NewLoop()
	m := NewMock(loop)

	h := m.Open("a.mp3", Options{Autoplay: true, Preload: true})
	var events []EventKind
	h.On(EventPlay, func(e Event) { events = append(events, e.Kind) })

	assert.Equal(t, Stopped, h.State(), "nothing happens before the loop turns")
	loop.Drain()

	assert.Equal(t, Playing, h.State())
	assert.Equal(t, []EventKind{EventPlay}, events)
}

func TestMock_LoadError(t *testing.T) {
	loop := NewLoop()
	m := NewMock(loop)
	boom := errors.New("no such file")
	m.FailLoad("missing.mp3", boom)

	h := m.Open("missing.mp3", Options{Autoplay: true, Preload: true})
	var got error
	h.On(EventLoadError, func(e Event) { got = e.Err })
	loop.Drain()

	require.ErrorIs(t, got, boom)
	assert.False(t, h.Playing())
}

func TestMockHandle_Lifecycle(t *testing.T) {
	loop := NewLoop()
	m := NewMock(loop)
	h := m.Open("a.mp3", Options{}).(*MockHandle)

	var events []EventKind
	for _, k := range []EventKind{EventPlay, EventPause, EventEnd, EventStop} {
		h.On(k, func(e Event) { events = append(events, e.Kind) })
	}

	h.Play()
	h.Pause()
	h.Pause() // no-op when not playing
	h.Play()
	h.Finish()
	h.Stop() // no-op once ended

	assert.Equal(t, []EventKind{EventPlay, EventPause, EventPlay, EventEnd}, events)
	assert.Equal(t, 2, h.Plays())
}

func TestMockHandle_UnloadDropsListeners(t *testing.T) {
	m := NewMock(NewLoop())
	h := m.Open("a.mp3", Options{}).(*MockHandle)
	stopped := false
	h.On(EventStop, func(Event) { stopped = true })

	h.Play()
	h.Unload()

	assert.True(t, stopped, "unload stops first")
	assert.True(t, h.Unloaded())
	assert.Equal(t, 0, h.Listeners())

	h.Play()
	assert.False(t, h.Playing(), "unloaded handles stay silent")
}

func TestDecode_UnsupportedExtension(t *testing.T) {
	_, _, err := decode("clip.xyz", nil)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}
