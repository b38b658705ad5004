package sim

import (
	"sync"
	"time"

	"github.com/iburimskiy/solar-explorer/internal/logging"
)

// Scheduler drives the simulation clock on its own goroutine. It is the sole
// writer of kinematic state while running; the render side only ever sees
// immutable snapshots published at tick boundaries.
type Scheduler struct {
	sys      *System
	interval time.Duration
	log      *logging.Logger

	mu        sync.Mutex
	running   bool
	stop      chan struct{}
	timeScale float64
	date      time.Time
	startDate time.Time

	// sysMu serializes System mutation between the tick loop and
	// Reset/Current calls from the render side.
	sysMu sync.Mutex

	frames chan Snapshot
}

// NewScheduler creates a stopped scheduler. The simulated calendar starts at
// startDate and advances timeScale days per tick.
func NewScheduler(sys *System, interval time.Duration, startDate time.Time, log *logging.Logger) *Scheduler {
	return &Scheduler{
		sys:       sys,
		interval:  interval,
		log:       log,
		timeScale: 1.0,
		date:      startDate,
		startDate: startDate,
		frames:    make(chan Snapshot, 1),
	}
}

// Frames delivers one snapshot per tick. Stale frames are dropped, never
// queued: the channel holds at most the latest tick.
func (s *Scheduler) Frames() <-chan Snapshot {
	return s.frames
}

// Running reports whether the tick loop is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Start launches the tick loop. A no-op if already running.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.stop = make(chan struct{})
	go s.loop(s.stop)
	s.log.Debug("scheduler started")
}

// Pause stops the tick loop. A no-op if already stopped.
func (s *Scheduler) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.running = false
	close(s.stop)
	s.log.Debug("scheduler paused")
}

// SetTimeScale changes the simulated days advanced per tick. Non-positive
// values are rejected.
func (s *Scheduler) SetTimeScale(v float64) {
	if v <= 0 {
		return
	}
	s.mu.Lock()
	s.timeScale = v
	s.mu.Unlock()
}

// TimeScale returns the current days-per-tick multiplier.
func (s *Scheduler) TimeScale() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timeScale
}

// Reset restores every body angle and the simulated date to their initial
// snapshots and publishes one frame immediately so a paused view redraws.
// The running state is left alone.
func (s *Scheduler) Reset() {
	s.mu.Lock()
	s.date = s.startDate
	date := s.date
	s.mu.Unlock()

	s.sysMu.Lock()
	s.sys.Reset()
	snap := s.sys.snapshot(date)
	s.sysMu.Unlock()

	s.publish(snap)
}

// Current computes a snapshot of the state as it stands, outside the tick
// stream. Used for the first frame before the loop ever runs.
func (s *Scheduler) Current() Snapshot {
	s.mu.Lock()
	date := s.date
	s.mu.Unlock()

	s.sysMu.Lock()
	defer s.sysMu.Unlock()
	return s.sys.snapshot(date)
}

func (s *Scheduler) loop(stop chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			ts := s.timeScale
			s.date = s.date.Add(time.Duration(float64(24*time.Hour) * ts))
			date := s.date
			s.mu.Unlock()

			s.sysMu.Lock()
			s.sys.Advance(ts)
			snap := s.sys.snapshot(date)
			s.sysMu.Unlock()

			s.publish(snap)
		}
	}
}

// publish replaces whatever frame is pending with snap. Never blocks.
func (s *Scheduler) publish(snap Snapshot) {
	for {
		select {
		case s.frames <- snap:
			return
		default:
		}
		select {
		case <-s.frames:
		default:
		}
	}
}
