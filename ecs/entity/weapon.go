package entity

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// Fallback weapon sizes when the graphic is missing.
const (
	weaponLength = 64
	weaponWidth  = 20
)

// Weapon is the melee attack held in front of the player. Its damage is
// fixed when it is created.
type Weapon struct {
	rect  common.Rect
	img   *ebiten.Image
	owner ecs.Entity
	hit   ecs.Hit
}

func NewWeapon(p *Player, owner ecs.Entity, gfx Graphics) *Weapon {
	spec := p.Weapon()
	facing := p.Facing()

	var img *ebiten.Image
	if gfx != nil {
		img = gfx.Image("weapons/" + spec.Name + "/" + facing)
	}
	fw, fh := float64(weaponWidth), float64(weaponLength)
	if facing == FacingLeft || facing == FacingRight {
		fw, fh = fh, fw
	}
	w, h := component.ImageSize(img, fw, fh)

	pr := p.Bounds()
	var rect common.Rect
	switch facing {
	case FacingRight:
		rect = common.NewRect(pr.Right(), pr.Center().Y+16-h/2, w, h)
	case FacingLeft:
		rect = common.NewRect(pr.X-w, pr.Center().Y+16-h/2, w, h)
	case FacingUp:
		rect = common.NewRect(pr.Center().X-10-w/2, pr.Y-h, w, h)
	default:
		rect = common.NewRect(pr.Center().X-10-w/2, pr.Bottom(), w, h)
	}

	return &Weapon{
		rect:  rect,
		img:   img,
		owner: owner,
		hit: ecs.Hit{
			Amount:     p.FullWeaponDamage(),
			Kind:       component.Weapon,
			AttackType: spec.Name,
			Origin:     p.Center(),
		},
	}
}

func (w *Weapon) Bounds() common.Rect          { return w.rect }
func (w *Weapon) Image() *ebiten.Image         { return w.img }
func (w *Weapon) Category() component.Category { return component.Weapon }
func (w *Weapon) Owner() ecs.Entity            { return w.owner }
func (w *Weapon) Hit() ecs.Hit                 { return w.hit }

var _ ecs.Attack = (*Weapon)(nil)
