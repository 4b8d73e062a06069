package life

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const interval = 500 * time.Millisecond

func blinker(t *testing.T) *Grid {
	t.Helper()
	g, err := NewGrid(5, 5, Cells([2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2}))
	require.NoError(t, err)
	return g
}

func TestSchedulerStateMachine(t *testing.T) {
	s := NewScheduler(nil)
	assert.Equal(t, Stopped, s.State())

	g := blinker(t)
	require.NoError(t, s.Start(g, interval))
	assert.True(t, s.Running())

	s.Stop()
	assert.False(t, s.Running())
	s.Stop()
	assert.Equal(t, Stopped, s.State())
	assert.Equal(t, "stopped", s.State().String())
}

func TestSchedulerRejectsBadInterval(t *testing.T) {
	s := NewScheduler(nil)
	assert.ErrorIs(t, s.Start(blinker(t), 0), ErrInvalidInterval)
	assert.ErrorIs(t, s.Start(blinker(t), -time.Second), ErrInvalidInterval)
	assert.False(t, s.Running())
}

func TestSchedulerTicksOnInterval(t *testing.T) {
	var ticks int
	s := NewScheduler(func(*Grid) { ticks++ })
	g := blinker(t)
	require.NoError(t, s.Start(g, interval))

	frame := time.Second / 60
	ran := 0
	for i := 0; i < 75; i++ {
		ran += s.Advance(frame)
	}
	assert.Equal(t, 2, ran)
	assert.Equal(t, 2, ticks)
	assert.Equal(t, 2, s.Generation())
	// Period 2: back to horizontal.
	assert.True(t, g.Alive(1, 2))
	assert.True(t, g.Alive(3, 2))
	assert.False(t, g.Alive(2, 1))
}

func TestSchedulerDoubleStartDoesNotDoubleTick(t *testing.T) {
	s := NewScheduler(nil)
	g := blinker(t)
	require.NoError(t, s.Start(g, interval))
	require.NoError(t, s.Start(g, interval/10))

	assert.Equal(t, interval, s.Interval())
	assert.Equal(t, 1, s.Advance(interval))
	assert.Equal(t, 1, s.Generation())
}

func TestSchedulerStoppedDoesNotAdvance(t *testing.T) {
	s := NewScheduler(nil)
	g := blinker(t)
	require.NoError(t, s.Start(g, interval))
	s.Advance(interval / 2)
	s.Stop()

	assert.Equal(t, 0, s.Advance(10*interval))
	assert.Equal(t, 0, s.Generation())

	// Elapsed time before the stop is discarded.
	require.NoError(t, s.Start(g, interval))
	assert.Equal(t, 0, s.Advance(interval/2))
	assert.Equal(t, 1, s.Advance(interval/2))
}

func TestSchedulerCatchUpIsBounded(t *testing.T) {
	s := NewScheduler(nil)
	require.NoError(t, s.Start(blinker(t), interval))

	assert.Equal(t, MaxCatchUp, s.Advance(100*interval))
	assert.Equal(t, 0, s.Advance(0))
}

func TestSchedulerTickUsesSnapshot(t *testing.T) {
	// A glider moved by an in-place update would be corrupted; compare with
	// Step into a separate grid.
	glider := Cells([2]int{1, 0}, [2]int{2, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2})
	g, err := NewGrid(8, 8, glider)
	require.NoError(t, err)
	ref := g.Clone()

	var painted *Grid
	s := NewScheduler(func(cur *Grid) { painted = cur })
	for i := 0; i < 4; i++ {
		s.TickGrid(g)
		ref = step(t, ref)
		assert.Equal(t, alive(ref), alive(g), "generation %d", i+1)
	}
	assert.Same(t, g, painted)
	// A glider translates by (1,1) every four generations.
	assert.Equal(t, map[[2]int]bool{
		{2, 1}: true, {3, 2}: true, {1, 3}: true, {2, 3}: true, {3, 3}: true,
	}, alive(g))
}

func TestSchedulerBufferFollowsResize(t *testing.T) {
	s := NewScheduler(nil)
	g := blinker(t)
	s.TickGrid(g)

	require.NoError(t, g.Resize(3, 2, func(x, y int) bool { return y == 0 }))
	s.TickGrid(g)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	// Row of three on a two-row field: centre survives, one birth below it.
	assert.Equal(t, map[[2]int]bool{{1, 0}: true, {1, 1}: true}, alive(g))
}
