package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// levelTap wraps a beep.Streamer and records the last N samples into a ring
// buffer so the UI can show a playback level meter.
type levelTap struct {
	source    beep.Streamer
	mu        sync.RWMutex
	buffer    [][2]float64
	nextIndex int
}

func newLevelTap(src beep.Streamer, ringSize int) *levelTap {
	return &levelTap{
		source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (t *levelTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = samples[i]
			t.nextIndex++
			if t.nextIndex >= len(t.buffer) {
				t.nextIndex = 0
			}
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *levelTap) Err() error { return t.source.Err() }

// level returns the RMS of the buffered samples, mono-mixed.
func (t *levelTap) level() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var sum float64
	for _, s := range t.buffer {
		mono := (s[0] + s[1]) * 0.5
		sum += mono * mono
	}
	return math.Sqrt(sum / float64(len(t.buffer)))
}
