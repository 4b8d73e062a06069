package life

import (
	"errors"
	"fmt"
)

// Errors returned by grid and scheduler operations.
var (
	ErrOutOfBounds       = errors.New("cell out of bounds")
	ErrInvalidDimension  = errors.New("invalid grid dimension")
	ErrDimensionMismatch = errors.New("grid dimensions differ")
	ErrInvalidInterval   = errors.New("invalid tick interval")
)

// Initializer decides the starting state of the cell at (x, y).
// It is called exactly once per cell.
type Initializer func(x, y int) bool

// Grid is a rectangular field of cells indexed as cells[x][y].
type Grid struct {
	width, height int
	cells         [][]bool
}

// NewGrid creates a width x height grid filled by init.
func NewGrid(width, height int, init Initializer) (*Grid, error) {
	g := &Grid{}
	if err := g.Resize(width, height, init); err != nil {
		return nil, err
	}
	return g, nil
}

// Resize replaces the grid contents with a fresh width x height field.
// The previous pattern is discarded.
func (g *Grid) Resize(width, height int, init Initializer) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("resize to %dx%d: %w", width, height, ErrInvalidDimension)
	}
	if init == nil {
		init = Dead
	}

	cells := makeCells(width, height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			cells[x][y] = init(x, y)
		}
	}
	g.width, g.height, g.cells = width, height, cells
	return nil
}

// Reset re-initializes every cell keeping the current dimensions.
func (g *Grid) Reset(init Initializer) {
	if init == nil {
		init = Dead
	}
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			g.cells[x][y] = init(x, y)
		}
	}
}

func (g *Grid) Width() int { return g.width }

func (g *Grid) Height() int { return g.height }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) checkBounds(x, y int) error {
	if !g.inBounds(x, y) {
		return fmt.Errorf("(%d,%d) outside %dx%d: %w", x, y, g.width, g.height, ErrOutOfBounds)
	}
	return nil
}

// Get reads the cell at (x, y).
func (g *Grid) Get(x, y int) (bool, error) {
	if err := g.checkBounds(x, y); err != nil {
		return false, err
	}
	return g.cells[x][y], nil
}

// Set overwrites the cell at (x, y).
func (g *Grid) Set(x, y int, alive bool) error {
	if err := g.checkBounds(x, y); err != nil {
		return err
	}
	g.cells[x][y] = alive
	return nil
}

// Toggle flips the cell at (x, y) and returns its new state.
func (g *Grid) Toggle(x, y int) (bool, error) {
	if err := g.checkBounds(x, y); err != nil {
		return false, err
	}
	g.cells[x][y] = !g.cells[x][y]
	return g.cells[x][y], nil
}

// Alive reports whether (x, y) is inside the grid and alive.
func (g *Grid) Alive(x, y int) bool {
	return g.inBounds(x, y) && g.cells[x][y]
}

// Population counts alive cells.
func (g *Grid) Population() int {
	n := 0
	for _, col := range g.cells {
		for _, c := range col {
			if c {
				n++
			}
		}
	}
	return n
}

// CopyFrom overwrites g with the cells of src. Both grids must have the
// same dimensions.
func (g *Grid) CopyFrom(src *Grid) error {
	if !g.SameShape(src) {
		return fmt.Errorf("copy %dx%d into %dx%d: %w",
			src.width, src.height, g.width, g.height, ErrDimensionMismatch)
	}
	for x := range g.cells {
		copy(g.cells[x], src.cells[x])
	}
	return nil
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, cells: makeCells(g.width, g.height)}
	for x := range g.cells {
		copy(c.cells[x], g.cells[x])
	}
	return c
}

func (g *Grid) SameShape(o *Grid) bool {
	return o != nil && g.width == o.width && g.height == o.height
}

// swap exchanges cell storage with o. Shapes must already match.
func (g *Grid) swap(o *Grid) {
	g.cells, o.cells = o.cells, g.cells
}

func makeCells(width, height int) [][]bool {
	cells := make([][]bool, width)
	for x := range cells {
		cells[x] = make([]bool, height)
	}
	return cells
}
