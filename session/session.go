// Package session owns one running Game of Life: the live grid, the
// builder grid used to draft patterns, the generation scheduler and the
// view parameters. Every control the front end offers is a method here.
package session

import (
	"log"
	"math/rand"
	"time"

	"github.com/olivierh59500/game-of-life-go/life"
	"github.com/olivierh59500/game-of-life-go/paint"
)

// VisMode selects how the grid is painted.
type VisMode int

const (
	VisCells VisMode = iota
	VisHeat
	numVisModes
)

func (v VisMode) String() string {
	if v == VisHeat {
		return "heat"
	}
	return "cells"
}

// Session is the single owner of the simulation state. It is not safe for
// concurrent use; the front end calls it from its update loop only.
type Session struct {
	cfg     Config
	surface paint.Surface
	painter paint.Painter

	grid    *life.Grid
	builder *life.Grid
	sched   *life.Scheduler
	rng     *rand.Rand

	multiplier  int
	aliveChance float64
	builderMode bool
	vis         VisMode
	pointer     gesture

	// Logger receives ignored operations (out of range edits and similar).
	// Nil disables logging.
	Logger *log.Logger
}

// New validates cfg, seeds a grid sized for the surface and paints it.
// The scheduler is started when cfg.Autostart is set.
func New(cfg Config, surface paint.Surface) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Session{
		cfg:        cfg,
		surface:    surface,
		multiplier: cfg.Multiplier,
		rng:        rand.New(rand.NewSource(seed)),
	}
	s.sched = life.NewScheduler(func(*life.Grid) {
		if !s.builderMode {
			s.repaint()
		}
	})
	s.drawAliveChance()

	w, h := cfg.GridSize(s.multiplier)
	var err error
	if s.grid, err = life.NewGrid(w, h, s.seeder()); err != nil {
		return nil, err
	}
	if s.builder, err = life.NewGrid(w, h, life.Dead); err != nil {
		return nil, err
	}
	s.painter = paint.Painter{CellSize: cfg.CellSize(s.multiplier)}
	s.repaint()

	if cfg.Autostart {
		if err := s.start(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Session) Grid() *life.Grid     { return s.grid }
func (s *Session) Builder() *life.Grid  { return s.builder }
func (s *Session) Running() bool        { return s.sched.Running() }
func (s *Session) Generation() int      { return s.sched.Generation() }
func (s *Session) Multiplier() int      { return s.multiplier }
func (s *Session) CellSize() int        { return s.painter.CellSize }
func (s *Session) BuilderMode() bool    { return s.builderMode }
func (s *Session) VisMode() VisMode     { return s.vis }
func (s *Session) AliveChance() float64 { return s.aliveChance }

// Update advances the simulation by dt of wall time.
func (s *Session) Update(dt time.Duration) {
	s.sched.Advance(dt)
}

// ToggleRun starts a stopped simulation or stops a running one.
func (s *Session) ToggleRun() {
	if s.sched.Running() {
		s.sched.Stop()
		return
	}
	if err := s.start(); err != nil {
		s.logf("start: %v", err)
	}
}

// Step runs one generation by hand. Ignored while running.
func (s *Session) Step() {
	if s.sched.Running() {
		return
	}
	s.sched.TickGrid(s.grid)
}

// Clear stops the simulation and kills every cell of both grids.
func (s *Session) Clear() {
	s.sched.Stop()
	s.sched.ResetGeneration()
	s.grid.Reset(life.Dead)
	s.builder.Reset(life.Dead)
	s.pointer = gesture{}
	s.repaint()
}

// Reseed refills the live grid with a fresh random population, keeping the
// current size and run state.
func (s *Session) Reseed() {
	s.restarting(func() {
		s.drawAliveChance()
		s.grid.Reset(s.seeder())
	})
}

// ZoomIn makes cells larger by lowering the multiplier.
func (s *Session) ZoomIn() { s.SetMultiplier(s.multiplier - 1) }

// ZoomOut makes cells smaller by raising the multiplier.
func (s *Session) ZoomOut() { s.SetMultiplier(s.multiplier + 1) }

// SetMultiplier resizes and reseeds the grid for multiplier m. Values
// outside [MinMultiplier, MaxMultiplier] are ignored.
func (s *Session) SetMultiplier(m int) {
	if m < MinMultiplier || m > MaxMultiplier || m == s.multiplier {
		return
	}
	w, h := s.cfg.GridSize(m)
	s.restarting(func() {
		s.drawAliveChance()
		if err := s.grid.Resize(w, h, s.seeder()); err != nil {
			s.logf("zoom: %v", err)
			return
		}
		// Shapes are known valid at this point.
		_ = s.builder.Resize(w, h, life.Dead)
		s.multiplier = m
		s.painter.CellSize = s.cfg.CellSize(m)
	})
}

// ToggleBuilder switches pointer edits and the view between the live grid
// and the builder grid. The live simulation keeps running underneath.
func (s *Session) ToggleBuilder() {
	s.builderMode = !s.builderMode
	s.pointer = gesture{}
	s.repaint()
}

// Commit replaces the live grid with the drafted builder pattern, empties
// the builder and (re)starts the simulation.
func (s *Session) Commit() {
	s.sched.Stop()
	if err := s.grid.CopyFrom(s.builder); err != nil {
		s.logf("commit: %v", err)
		return
	}
	s.builder.Reset(life.Dead)
	s.builderMode = false
	s.pointer = gesture{}
	s.sched.ResetGeneration()
	s.repaint()
	if err := s.start(); err != nil {
		s.logf("commit: %v", err)
	}
}

// SetVisMode changes how the grid is painted.
func (s *Session) SetVisMode(v VisMode) {
	if v < 0 || v >= numVisModes {
		return
	}
	s.vis = v
	s.repaint()
}

// CycleVisMode steps to the next visualisation.
func (s *Session) CycleVisMode() {
	s.SetVisMode((s.vis + 1) % numVisModes)
}

// restarting stops the scheduler around fn, which may replace or resize the
// grid, then repaints and resumes if it was running.
func (s *Session) restarting(fn func()) {
	wasRunning := s.sched.Running()
	s.sched.Stop()
	fn()
	s.sched.ResetGeneration()
	s.pointer = gesture{}
	s.repaint()
	if wasRunning {
		if err := s.start(); err != nil {
			s.logf("restart: %v", err)
		}
	}
}

func (s *Session) start() error {
	return s.sched.Start(s.grid, s.cfg.TickInterval)
}

// editing returns the grid pointer edits apply to.
func (s *Session) editing() *life.Grid {
	if s.builderMode {
		return s.builder
	}
	return s.grid
}

func (s *Session) repaint() {
	if s.surface == nil {
		return
	}
	g := s.editing()
	if s.vis == VisHeat && !s.builderMode {
		s.painter.RenderHeat(s.surface, g)
		return
	}
	s.painter.Render(s.surface, g)
}

func (s *Session) repaintCell(x, y int) {
	if s.surface == nil {
		return
	}
	if s.vis == VisHeat && !s.builderMode {
		// A single edit changes the heat of its neighbours too.
		s.repaint()
		return
	}
	s.painter.RenderCell(s.surface, x, y, s.editing().Alive(x, y))
}

func (s *Session) drawAliveChance() {
	if s.cfg.AliveChance >= 0 {
		s.aliveChance = s.cfg.AliveChance
		return
	}
	s.aliveChance = s.rng.Float64()
}

func (s *Session) seeder() life.Initializer {
	switch s.cfg.SeedMode {
	case SeedEmpty:
		return life.Dead
	case SeedPerlin:
		return life.PerlinSeed(s.rng.Int63(), s.aliveChance)
	default:
		return life.Random(s.rng, s.aliveChance)
	}
}

func (s *Session) logf(format string, args ...any) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
	}
}
