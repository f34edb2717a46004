package entity

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs/component"
)

// Hitbox height insets per tile category.
const (
	objectHitboxInset = -40
	grassHitboxInset  = -10
)

// Tile is a static map piece: boundary, grass or object.
type Tile struct {
	rect   common.Rect
	hitbox common.Rect
	img    *ebiten.Image
	cat    component.Category
}

// NewTile places a tile whose grid cell starts at pos. Objects are two tiles
// tall and extend upward from their cell.
func NewTile(pos cp.Vector, cat component.Category, img *ebiten.Image, tileSize float64) *Tile {
	fw, fh := tileSize, tileSize
	if cat == component.Object {
		fh = 2 * tileSize
	}
	w, h := component.ImageSize(img, fw, fh)

	rect := common.NewRect(pos.X, pos.Y, w, h)
	if cat == component.Object {
		rect.Y = pos.Y - tileSize
	}

	var inset float64
	switch cat {
	case component.Object:
		inset = objectHitboxInset
	case component.Grass:
		inset = grassHitboxInset
	}

	return &Tile{
		rect:   rect,
		hitbox: rect.Inflate(0, inset),
		img:    img,
		cat:    cat,
	}
}

func (t *Tile) Bounds() common.Rect          { return t.rect }
func (t *Tile) Hitbox() common.Rect          { return t.hitbox }
func (t *Tile) Image() *ebiten.Image         { return t.img }
func (t *Tile) Category() component.Category { return t.cat }
