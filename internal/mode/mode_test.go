package mode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/announcer/internal/catalogue"
	"github.com/llehouerou/announcer/internal/playback"
	"github.com/llehouerou/announcer/internal/player"
	"github.com/llehouerou/announcer/internal/playlist"
)

type button struct {
	variant catalogue.Variant
	label   string
}

func (b *button) Variant() catalogue.Variant { return b.variant }

func (b *button) SetLabel(label string) { b.label = label }

func renderButtons(clips ...catalogue.Clip) []*button {
	var out []*button
	for _, c := range clips {
		for _, ctl := range c.Controls() {
			out = append(out, &button{variant: ctl.Variant, label: Label(ctl.Variant, Browse)})
		}
	}
	return out
}

func labels(buttons []*button) []string {
	out := make([]string, len(buttons))
	for i, b := range buttons {
		out[i] = b.label
	}
	return out
}

func TestLabel(t *testing.T) {
	tests := []struct {
		variant catalogue.Variant
		browse  string
		build   string
	}{
		{catalogue.VariantNone, "Recording", "Add"},
		{catalogue.VariantStart, "Start", "Add Start"},
		{catalogue.VariantMiddle, "Middle", "Add Middle"},
		{catalogue.VariantEnd, "End", "Add End"},
	}

	for _, tt := range tests {
		t.Run(tt.variant.String(), func(t *testing.T) {
			assert.Equal(t, tt.browse, Label(tt.variant, Browse))
			assert.Equal(t, tt.build, Label(tt.variant, Build))
		})
	}
}

func TestController_ToggleRelabelRoundTrip(t *testing.T) {
	buttons := renderButtons(
		catalogue.Clip{Transcription: "a", None: &catalogue.AudioRef{File: "a.mp3"}},
		catalogue.Clip{Transcription: "b", Start: &catalogue.AudioRef{File: "b1.mp3"}},
	)
	original := labels(buttons)

	c := NewController()
	c.OnChange(func(m Mode) { Relabel(buttons, m) })

	assert.Equal(t, Browse, c.Mode())
	assert.False(t, c.StagingVisible())

	assert.Equal(t, Build, c.Toggle())
	assert.True(t, c.StagingVisible())
	assert.Equal(t, []string{"Add", "Add Start", "Add Middle", "Add End"}, labels(buttons))

	assert.Equal(t, Browse, c.Toggle())
	assert.False(t, c.StagingVisible())
	assert.Equal(t, original, labels(buttons))
}

func TestRelabel_Idempotent(t *testing.T) {
	buttons := renderButtons(catalogue.Clip{Start: &catalogue.AudioRef{File: "s.mp3"}})

	Relabel(buttons, Build)
	first := labels(buttons)
	Relabel(buttons, Build)

	assert.Equal(t, first, labels(buttons))
}

func TestController_SetSameModeDoesNotNotify(t *testing.T) {
	c := NewController()
	calls := 0
	c.OnChange(func(Mode) { calls++ })

	c.Set(Browse)
	assert.Equal(t, 0, calls)

	c.Set(Build)
	c.Set(Build)
	assert.Equal(t, 1, calls)
}

func newDispatch() (*Dispatcher, *Controller, *playlist.Engine, *playback.Controller, *player.Loop) {
	loop := player.NewLoop()
	ctl := playback.New(player.NewMock(loop), "root")
	engine := playlist.NewEngine(ctl)
	m := NewController()
	return NewDispatcher(m, ctl, engine), m, engine, ctl, loop
}

func TestDispatcher_BrowsePlays(t *testing.T) {
	d, _, engine, ctl, loop := newDispatch()

	out, err := d.Click("Mind the gap", "gap.mp3")
	require.NoError(t, err)
	loop.Drain()

	assert.Equal(t, Played, out)
	assert.Equal(t, "Mind the gap (gap.mp3)", ctl.Panel().Label)
	assert.Equal(t, 0, engine.Len())
}

func TestDispatcher_BuildStages(t *testing.T) {
	d, m, engine, ctl, loop := newDispatch()
	m.Set(Build)

	out, err := d.Click("Mind the gap", "gap.mp3")
	require.NoError(t, err)
	loop.Drain()

	assert.Equal(t, Staged, out)
	assert.Nil(t, ctl.Session())
	assert.Equal(t, []playlist.Entry{{Transcription: "Mind the gap", File: "gap.mp3"}}, engine.Entries())
}

func TestDispatcher_StagedEntriesSurviveToggle(t *testing.T) {
	d, m, engine, _, _ := newDispatch()
	m.Set(Build)
	_, err := d.Click("a", "a.mp3")
	require.NoError(t, err)

	m.Toggle()
	m.Toggle()

	assert.Equal(t, 1, engine.Len())
}

func TestDispatcher_DisabledControlIgnored(t *testing.T) {
	d, _, _, ctl, _ := newDispatch()

	out, err := d.Click("a", "")
	require.NoError(t, err)
	assert.Equal(t, Ignored, out)
	assert.Nil(t, ctl.Session())
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "browse", Browse.String())
	assert.Equal(t, "build", Build.String())
	assert.Equal(t, "unknown", Mode(9).String())
}
