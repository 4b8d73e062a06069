// Package paint projects a life.Grid onto a drawing surface as a field of
// filled, stroked squares.
package paint

import (
	"image/color"

	"github.com/olivierh59500/game-of-life-go/life"
)

// Surface is the minimal drawing API the painter needs.
type Surface interface {
	Clear(c color.Color)
	FillRect(x, y, w, h float32, c color.Color)
	StrokeRect(x, y, w, h float32, c color.Color, lineWidth float32)
}

// Palette
var (
	AliveColor      = color.RGBA{0x59, 0xd0, 0x70, 0xff}
	DeadColor       = color.RGBA{0xe3, 0xeb, 0xe9, 0xff}
	StrokeColor     = color.RGBA{0x72, 0x90, 0x99, 0xff}
	BackgroundColor = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

// Painter draws cells of a fixed edge length.
type Painter struct {
	CellSize int
}

// CellColor returns the fill colour of a cell.
func CellColor(alive bool) color.Color {
	if alive {
		return AliveColor
	}
	return DeadColor
}

// LineWidth is the stroke width around each cell.
func (p Painter) LineWidth() float32 {
	return float32(p.CellSize) / 20
}

// Render clears s and draws every cell of g.
func (p Painter) Render(s Surface, g *life.Grid) {
	s.Clear(BackgroundColor)
	for x := 0; x < g.Width(); x++ {
		for y := 0; y < g.Height(); y++ {
			p.RenderCell(s, x, y, g.Alive(x, y))
		}
	}
}

// RenderCell repaints a single cell.
func (p Painter) RenderCell(s Surface, x, y int, alive bool) {
	p.drawCell(s, x, y, CellColor(alive))
}

func (p Painter) drawCell(s Surface, x, y int, fill color.Color) {
	size := float32(p.CellSize)
	px, py := float32(x)*size, float32(y)*size
	s.FillRect(px, py, size, size, fill)
	s.StrokeRect(px, py, size, size, StrokeColor, p.LineWidth())
}

// CellAt maps a pixel to the cell under it on a gridW x gridH field.
// ok is false for pixels outside the rendered field.
func (p Painter) CellAt(px, py, gridW, gridH int) (x, y int, ok bool) {
	if p.CellSize < 1 || px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/p.CellSize, py/p.CellSize
	if x >= gridW || y >= gridH {
		return 0, 0, false
	}
	return x, y, true
}
