// Package audio plays looping background music and exposes a coarse signal
// level for the UI meter.
package audio

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/solar-explorer/internal/logging"
)

const levelRingSize = 2048

// Player owns the speaker and at most one looping music stream.
// All methods are called from the UI goroutine.
type Player struct {
	log *logging.Logger

	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	tap      *levelTap

	initDone bool
	playing  bool
	vol      float64 // 0..1
}

// NewPlayer creates a player with the given starting volume.
func NewPlayer(vol float64, log *logging.Logger) *Player {
	if vol < 0 {
		vol = 0
	}
	if vol > 1 {
		vol = 1
	}
	return &Player{log: log, vol: vol}
}

// Loaded reports whether a music file is loaded.
func (p *Player) Loaded() bool { return p.ctrl != nil }

// Playing reports whether music is audible right now.
func (p *Player) Playing() bool { return p.playing }

// Volume returns the current 0..1 volume.
func (p *Player) Volume() float64 { return p.vol }

// Load opens and starts looping the given audio file, replacing any current
// stream. Supported formats follow the file extension: wav, mp3, flac.
func (p *Player) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return errors.New("unsupported audio format: " + filepath.Ext(path))
	}
	if err != nil {
		_ = f.Close()
		return err
	}

	// Chain: looped stream -> level tap -> volume -> pause control.
	tap := newLevelTap(beep.Loop(-1, streamer), levelRingSize)
	volume := &effects.Volume{Streamer: tap, Base: 2}
	ctrl := &beep.Ctrl{Streamer: volume}

	bufferSize := format.SampleRate.N(time.Second / 20)
	if !p.initDone {
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return err
		}
		p.initDone = true
	} else if p.format.SampleRate != format.SampleRate {
		speaker.Lock()
		speaker.Clear()
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			speaker.Unlock()
			_ = streamer.Close()
			_ = f.Close()
			return err
		}
		speaker.Unlock()
	} else {
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
	}

	p.closeCurrent()
	p.file = f
	p.streamer = streamer
	p.format = format
	p.ctrl = ctrl
	p.volume = volume
	p.tap = tap
	p.playing = true
	p.applyVolume()

	speaker.Play(ctrl)
	p.log.Info("music loaded: %s", filepath.Base(path))
	return nil
}

// Toggle pauses or resumes playback. A no-op with nothing loaded.
func (p *Player) Toggle() {
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.playing = !p.playing
	p.ctrl.Paused = !p.playing
	speaker.Unlock()
}

// SetVolume sets playback volume in 0..1, clamped.
func (p *Player) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	p.vol = v
	p.applyVolume()
}

// StepVolume nudges the volume by delta, clamped.
func (p *Player) StepVolume(delta float64) {
	p.SetVolume(p.vol + delta)
}

// applyVolume maps the linear 0..1 knob onto the exponential volume effect.
func (p *Player) applyVolume() {
	if p.volume == nil {
		return
	}
	speaker.Lock()
	if p.vol <= 0 {
		p.volume.Silent = true
	} else {
		p.volume.Silent = false
		p.volume.Volume = math.Log2(p.vol)
	}
	speaker.Unlock()
}

// Level returns the RMS of recently played samples, 0 when idle.
func (p *Player) Level() float64 {
	if p.tap == nil || !p.playing {
		return 0
	}
	return p.tap.level()
}

func (p *Player) closeCurrent() {
	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		_ = p.file.Close()
		p.file = nil
	}
	p.ctrl = nil
	p.volume = nil
	p.tap = nil
	p.playing = false
}
