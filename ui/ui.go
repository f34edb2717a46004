package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/topdown/prefabs"
)

// PlayerView is the read side of the player the overlays display, plus the
// upgrade action.
type PlayerView interface {
	Health() int
	Energy() float64
	Exp() int
	Stat(name string) float64
	MaxStat(name string) float64
	UpgradeCost(name string) float64
	Upgrade(stat string) bool
	Weapon() prefabs.WeaponSpec
	Magic() prefabs.MagicSpec
}

// ImageSource resolves single graphics by name.
type ImageSource interface {
	Image(name string) *ebiten.Image
}

func defaultFace() ebtext.Face {
	return ebtext.NewGoXFace(basicfont.Face7x13)
}
