package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/prefabs"
)

const (
	barHeight      = 20
	healthBarWidth = 200
	energyBarWidth = 140
	itemBoxSize    = 80
	hudMargin      = 10
)

var (
	hudBackground = color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	hudBorder     = color.NRGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
	hudText       = color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
)

// HUD draws the health and energy bars, experience and the selected weapon
// and spell.
type HUD struct {
	face   ebtext.Face
	images ImageSource
}

func NewHUD(images ImageSource) *HUD {
	return &HUD{face: defaultFace(), images: images}
}

// BarFill returns the filled width of a bar of the given width.
func BarFill(current, limit, width float64) float32 {
	if limit <= 0 {
		return 0
	}
	ratio := current / limit
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return common.Lerp(0, float32(width), float32(ratio))
}

func (h *HUD) Draw(screen *ebiten.Image, p PlayerView) {
	if screen == nil || p == nil {
		return
	}
	h.drawBar(screen, hudMargin, hudMargin, healthBarWidth,
		BarFill(float64(p.Health()), p.Stat(prefabs.StatHealth), healthBarWidth), colornames.Red)
	h.drawBar(screen, hudMargin, hudMargin+barHeight+4, energyBarWidth,
		BarFill(p.Energy(), p.Stat(prefabs.StatEnergy), energyBarWidth), colornames.Blue)

	w := float64(screen.Bounds().Dx())
	ht := float64(screen.Bounds().Dy())
	h.drawText(screen, fmt.Sprintf("%d", p.Exp()), w-hudMargin-60, ht-hudMargin-20)

	boxY := float32(ht) - hudMargin - itemBoxSize
	h.drawItem(screen, hudMargin, boxY, "weapons/"+p.Weapon().Name+"/full")
	h.drawItem(screen, hudMargin+itemBoxSize-5, boxY+5, "magic/"+p.Magic().Name)
}

func (h *HUD) drawBar(screen *ebiten.Image, x, y, width float32, fill float32, clr color.Color) {
	vector.DrawFilledRect(screen, x, y, width, barHeight, hudBackground, false)
	vector.DrawFilledRect(screen, x, y, fill, barHeight, clr, false)
	vector.StrokeRect(screen, x, y, width, barHeight, 3, hudBorder, false)
}

func (h *HUD) drawItem(screen *ebiten.Image, x, y float32, name string) {
	vector.DrawFilledRect(screen, x, y, itemBoxSize, itemBoxSize, hudBackground, false)
	vector.StrokeRect(screen, x, y, itemBoxSize, itemBoxSize, 3, hudBorder, false)
	if h.images == nil {
		return
	}
	img := h.images.Image(name)
	if img == nil {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x)+float64(itemBoxSize-b.Dx())/2, float64(y)+float64(itemBoxSize-b.Dy())/2)
	screen.DrawImage(img, op)
}

func (h *HUD) drawText(screen *ebiten.Image, s string, x, y float64) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(hudText)
	ebtext.Draw(screen, s, h.face, op)
}
