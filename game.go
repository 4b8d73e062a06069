package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/olivierh59500/game-of-life-go/session"
)

// TPS is the update rate; the scheduler is advanced by 1/TPS each update.
const TPS = 60

const (
	hudWidth      = 230
	hudLineHeight = 14
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// Game struct: adapts a session to the Ebitengine loop
type Game struct {
	width, height int
	sess          *session.Session
	canvas        *canvas
	showHUD       bool
	wheel         float64 // accumulated wheel offset for zoom steps
	touchID       ebiten.TouchID
	touching      bool
}

// NewGame creates the canvas and the session painting into it
func NewGame(cfg session.Config) (*Game, error) {
	g := &Game{
		width:   cfg.Width,
		height:  cfg.Height,
		canvas:  newCanvas(cfg.Width, cfg.Height),
		showHUD: true,
	}
	sess, err := session.New(cfg, g.canvas)
	if err != nil {
		return nil, err
	}
	g.sess = sess
	return g, nil
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	g.handleInput()
	g.sess.Update(time.Second / TPS)
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas.img, nil)
	if g.showHUD {
		g.drawHUD(screen)
	}
}

// Layout returns the screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// handleInput processes keyboard, mouse and touch input
func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sess.ToggleRun()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sess.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sess.Reseed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sess.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.sess.ToggleBuilder()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && g.sess.BuilderMode() {
		g.sess.Commit()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.sess.CycleVisMode()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showHUD = !g.showHUD
	}

	// Zoom
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.sess.ZoomIn()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.sess.ZoomOut()
	}
	_, wheelY := ebiten.Wheel()
	g.wheel += wheelY
	switch {
	case g.wheel >= 1:
		g.wheel = 0
		g.sess.ZoomIn()
	case g.wheel <= -1:
		g.wheel = 0
		g.sess.ZoomOut()
	}

	g.handleMouse()
	g.handleTouch()
}

// handleMouse turns left-button strokes into pointer gestures
func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.sess.PointerDown(mx, my)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.sess.PointerUp()
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.sess.PointerMove(mx, my)
	}
}

// handleTouch follows the first finger down until it lifts
func (g *Game) handleTouch() {
	if !g.touching {
		ids := inpututil.AppendJustPressedTouchIDs(nil)
		if len(ids) == 0 {
			return
		}
		g.touchID, g.touching = ids[0], true
		g.sess.PointerDown(ebiten.TouchPosition(g.touchID))
		return
	}
	if inpututil.IsTouchJustReleased(g.touchID) {
		g.touching = false
		g.sess.PointerUp()
		return
	}
	g.sess.PointerMove(ebiten.TouchPosition(g.touchID))
}

// drawHUD prints the session state over the grid
func (g *Game) drawHUD(screen *ebiten.Image) {
	state := "stopped"
	if g.sess.Running() {
		state = "running"
	}
	mode := g.sess.VisMode().String()
	if g.sess.BuilderMode() {
		mode = "builder"
	}
	lines := []string{
		fmt.Sprintf("gen %d  pop %d  %s", g.sess.Generation(), g.sess.Grid().Population(), state),
		fmt.Sprintf("zoom x%d  cell %dpx  %s", g.sess.Multiplier(), g.sess.CellSize(), mode),
		fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		"SPACE run  N step  C clear  R seed",
		"B build  ENTER commit  H heat  +/- zoom",
	}

	vector.DrawFilledRect(screen, 0, 0, hudWidth, float32(len(lines)*hudLineHeight+8), color.RGBA{0, 0, 0, 0xb0}, false)
	op := &text.DrawOptions{}
	op.GeoM.Translate(6, 4)
	op.ColorScale.ScaleWithColor(color.White)
	for _, l := range lines {
		text.Draw(screen, l, hudFace, op)
		op.GeoM.Translate(0, hudLineHeight)
	}
}
