package life

import (
	"fmt"
	"time"
)

// MaxCatchUp bounds the number of generations a single Advance may run.
const MaxCatchUp = 4

// State of a Scheduler.
type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Scheduler advances a grid one generation per interval. It owns no timer
// of its own: the caller drives it with Advance from its update loop, so
// ticks never interleave with input handling.
type Scheduler struct {
	state    State
	grid     *Grid
	buffer   *Grid
	interval time.Duration
	elapsed  time.Duration
	gen      int
	onTick   func(*Grid)
}

// NewScheduler returns a stopped scheduler. onTick, if set, is called after
// each committed generation.
func NewScheduler(onTick func(*Grid)) *Scheduler {
	return &Scheduler{onTick: onTick}
}

// Start binds g and begins periodic advancement. Starting a running
// scheduler does nothing.
func (s *Scheduler) Start(g *Grid, interval time.Duration) error {
	if s.state == Running {
		return nil
	}
	if interval <= 0 {
		return fmt.Errorf("start with %v: %w", interval, ErrInvalidInterval)
	}
	if g == nil {
		return fmt.Errorf("start without grid: %w", ErrInvalidDimension)
	}
	s.grid = g
	s.interval = interval
	s.elapsed = 0
	s.state = Running
	return nil
}

// Stop halts advancement. Safe to call when already stopped.
func (s *Scheduler) Stop() {
	s.state = Stopped
	s.elapsed = 0
}

func (s *Scheduler) Running() bool { return s.state == Running }

func (s *Scheduler) State() State { return s.state }

func (s *Scheduler) Interval() time.Duration { return s.interval }

// Generation is the number of generations committed since the last reset.
func (s *Scheduler) Generation() int { return s.gen }

func (s *Scheduler) ResetGeneration() { s.gen = 0 }

// Advance accounts for dt of elapsed time and runs every tick that became
// due, up to MaxCatchUp. It returns the number of ticks run.
func (s *Scheduler) Advance(dt time.Duration) int {
	if s.state != Running {
		return 0
	}
	s.elapsed += dt
	ticks := 0
	for s.elapsed >= s.interval && ticks < MaxCatchUp {
		s.elapsed -= s.interval
		s.Tick()
		ticks++
	}
	if ticks == MaxCatchUp && s.elapsed >= s.interval {
		// Drop the backlog.
		s.elapsed = 0
	}
	return ticks
}

// Tick computes one generation into the staging buffer and commits it.
// It works whether or not the scheduler is running, which allows single
// steps while paused.
func (s *Scheduler) Tick() {
	s.TickGrid(s.grid)
}

// TickGrid is Tick against g, which becomes the bound grid.
func (s *Scheduler) TickGrid(g *Grid) {
	if g == nil {
		return
	}
	s.grid = g
	if !g.SameShape(s.buffer) {
		s.buffer = &Grid{width: g.width, height: g.height, cells: makeCells(g.width, g.height)}
	}
	// Shapes match, Step cannot fail.
	_ = Step(g, s.buffer)
	g.swap(s.buffer)
	s.gen++
	if s.onTick != nil {
		s.onTick(g)
	}
}
