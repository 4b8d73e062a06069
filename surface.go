package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// canvas is a persistent offscreen image the painter draws into. Draw blits
// it every frame, so single-cell repaints survive between frames.
type canvas struct {
	img *ebiten.Image
}

func newCanvas(width, height int) *canvas {
	return &canvas{img: ebiten.NewImage(width, height)}
}

func (c *canvas) Clear(col color.Color) {
	c.img.Fill(col)
}

func (c *canvas) FillRect(x, y, w, h float32, col color.Color) {
	vector.DrawFilledRect(c.img, x, y, w, h, col, false)
}

func (c *canvas) StrokeRect(x, y, w, h float32, col color.Color, lineWidth float32) {
	vector.StrokeRect(c.img, x, y, w, h, lineWidth, col, true)
}
