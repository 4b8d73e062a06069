package paint

import (
	"image/color"
	"math"

	"github.com/olivierh59500/game-of-life-go/life"
)

// RenderHeat draws g coloured by neighbour count instead of state: cold blue
// for empty neighbourhoods through to red for crowded ones. Dead cells with
// no neighbours keep the dead colour.
func (p Painter) RenderHeat(s Surface, g *life.Grid) {
	s.Clear(BackgroundColor)
	for x := 0; x < g.Width(); x++ {
		for y := 0; y < g.Height(); y++ {
			p.drawCell(s, x, y, HeatColor(life.Neighbours(g, x, y), g.Alive(x, y)))
		}
	}
}

// HeatColor returns the heat map colour for a cell with n alive neighbours.
func HeatColor(n int, alive bool) color.Color {
	if n == 0 && !alive {
		return DeadColor
	}
	// 0 neighbours -> blue (240°), 8 -> red (0°).
	h := 240 - float64(n)*30
	v := 0.7
	if alive {
		v = 1
	}
	r, g, b := hsvToRGB(h, 1, v)
	return color.RGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 255}
}

// hsvToRGB helper
func hsvToRGB(h, s, v float64) (float64, float64, float64) {
	h = math.Mod(h, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}
