package player

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// OutputRate is the sample rate the speaker is initialized with. Sources at
// other rates are resampled.
const OutputRate = beep.SampleRate(44100)

const resampleQuality = 4

// Speaker is a Backend that plays through the system audio device.
type Speaker struct {
	sched Scheduler

	initMu      sync.Mutex
	initialized bool

	nextID atomic.Uint64
}

// NewSpeaker creates a speaker backend that reports events through sched.
func NewSpeaker(sched Scheduler) *Speaker {
	return &Speaker{sched: sched}
}

// Open implements Backend.
func (s *Speaker) Open(src string, opts Options) Handle {
	h := &speakerHandle{
		id:    s.nextID.Add(1),
		src:   src,
		opts:  opts,
		owner: s,
	}
	if opts.Preload || opts.Autoplay {
		s.sched.Post(func() {
			if h.unloaded {
				return
			}
			if !h.ensureLoaded() {
				return
			}
			if opts.Autoplay {
				h.Play()
			}
		})
	}
	return h
}

// Close silences the output device.
func (s *Speaker) Close() {
	s.initMu.Lock()
	defer s.initMu.Unlock()
	if s.initialized {
		speaker.Clear()
	}
}

func (s *Speaker) ensureInit() error {
	s.initMu.Lock()
	defer s.initMu.Unlock()
	if s.initialized {
		return nil
	}
	if err := speaker.Init(OutputRate, OutputRate.N(time.Second/10)); err != nil {
		return err
	}
	s.initialized = true
	return nil
}

type speakerHandle struct {
	emitter

	id    uint64
	src   string
	opts  Options
	owner *Speaker

	state    State
	loaded   bool
	unloaded bool

	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl

	// gen changes every time playback is started or stopped so that a
	// completion callback from an older run is ignored.
	gen uint64
}

func (h *speakerHandle) ID() uint64 { return h.id }

func (h *speakerHandle) Src() string { return h.src }

func (h *speakerHandle) State() State { return h.state }

func (h *speakerHandle) Playing() bool { return h.state == Playing }

func (h *speakerHandle) ensureLoaded() bool {
	if h.loaded {
		return true
	}
	if err := h.load(); err != nil {
		h.emit(Event{Kind: EventLoadError, Err: err})
		return false
	}
	return true
}

func (h *speakerHandle) load() error {
	f, err := os.Open(h.src)
	if err != nil {
		return err
	}
	streamer, format, err := decode(h.src, f)
	if err != nil {
		f.Close()
		return err
	}
	h.file = f
	h.streamer = streamer
	h.format = format
	h.loaded = true
	return nil
}

func decode(path string, f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	case ".wav":
		return wav.Decode(f)
	case ".ogg":
		return vorbis.Decode(f)
	}
	return nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
}

// Play starts, resumes or restarts playback.
func (h *speakerHandle) Play() {
	if h.unloaded || !h.ensureLoaded() {
		return
	}

	switch h.state {
	case Playing:
		return
	case Paused:
		speaker.Lock()
		h.ctrl.Paused = false
		speaker.Unlock()
		h.state = Playing
		h.emit(Event{Kind: EventPlay})
		return
	case Stopped:
	}

	if err := h.owner.ensureInit(); err != nil {
		h.emit(Event{Kind: EventPlayError, Err: err})
		return
	}
	if err := h.streamer.Seek(0); err != nil {
		h.emit(Event{Kind: EventPlayError, Err: err})
		return
	}

	var s beep.Streamer = h.streamer
	if h.format.SampleRate != OutputRate {
		s = beep.Resample(resampleQuality, h.format.SampleRate, OutputRate, s)
	}

	h.gen++
	gen := h.gen
	h.ctrl = &beep.Ctrl{Streamer: s}
	speaker.Play(beep.Seq(h.ctrl, beep.Callback(func() {
		h.owner.sched.Post(func() { h.finish(gen) })
	})))

	h.state = Playing
	h.emit(Event{Kind: EventPlay})
}

// Pause pauses playback, keeping the position.
func (h *speakerHandle) Pause() {
	if h.state != Playing || h.ctrl == nil {
		return
	}
	speaker.Lock()
	h.ctrl.Paused = true
	speaker.Unlock()
	h.state = Paused
	h.emit(Event{Kind: EventPause})
}

// Stop halts playback. Only this handle's stream is detached from the
// speaker; other handles keep playing.
func (h *speakerHandle) Stop() {
	if h.state == Stopped {
		return
	}
	h.detach()
	h.state = Stopped
	h.emit(Event{Kind: EventStop})
}

func (h *speakerHandle) detach() {
	h.gen++
	if h.ctrl != nil {
		speaker.Lock()
		h.ctrl.Streamer = nil
		speaker.Unlock()
		h.ctrl = nil
	}
}

// finish runs on the scheduler when the stream of run gen is exhausted.
func (h *speakerHandle) finish(gen uint64) {
	if gen != h.gen || h.state != Playing {
		return
	}
	h.ctrl = nil
	h.state = Stopped
	h.emit(Event{Kind: EventEnd})
	if h.opts.Loop && !h.unloaded {
		h.Play()
	}
}

func (h *speakerHandle) Unloaded() bool { return h.unloaded }

// Unload implements Handle.
func (h *speakerHandle) Unload() {
	if h.unloaded {
		return
	}
	h.Stop()
	h.clear()
	h.unloaded = true
	closeQuietly(h.streamer)
	closeQuietly(h.file)
	h.streamer = nil
	h.file = nil
}

func closeQuietly(c io.Closer) {
	if c == nil {
		return
	}
	_ = c.Close()
}
