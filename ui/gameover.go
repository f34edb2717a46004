package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/topdown/common"
)

// Choice is the game-over modal decision.
type Choice int

const (
	ChoiceNone Choice = iota
	ChoiceRestart
	ChoiceQuit
)

func (c Choice) String() string {
	switch c {
	case ChoiceRestart:
		return "restart"
	case ChoiceQuit:
		return "quit"
	}
	return "none"
}

// GameOverModal offers restart and quit buttons at fixed screen rects.
type GameOverModal struct {
	Restart common.Rect
	Quit    common.Rect
	face    ebtext.Face
}

func NewGameOverModal() *GameOverModal {
	return &GameOverModal{
		Restart: common.NewRect(200, 300, 200, 50),
		Quit:    common.NewRect(200, 400, 200, 50),
		face:    defaultFace(),
	}
}

// Choose maps a click to a decision. Clicks outside both buttons are ignored.
func (m *GameOverModal) Choose(x, y int) Choice {
	fx, fy := float64(x), float64(y)
	switch {
	case m.Restart.Contains(fx, fy):
		return ChoiceRestart
	case m.Quit.Contains(fx, fy):
		return ChoiceQuit
	}
	return ChoiceNone
}

func (m *GameOverModal) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.NRGBA{A: 0xb4}, false)

	m.drawLabel(screen, "GAME OVER", float64(w)/2-30, float64(h)/3, colornames.Red)
	m.drawButton(screen, m.Restart, "Restart")
	m.drawButton(screen, m.Quit, "Quit")
}

func (m *GameOverModal) drawButton(screen *ebiten.Image, r common.Rect, label string) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), colornames.Dimgray, false)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 2, colornames.White, false)
	m.drawLabel(screen, label, r.X+20, r.Y+r.Height/2-6, colornames.White)
}

func (m *GameOverModal) drawLabel(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(screen, s, m.face, op)
}
