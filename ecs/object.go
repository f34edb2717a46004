package ecs

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs/component"
)

// Object is the contract shared by everything placed in the world.
// Bounds must stay consistent with the object's position after any mutation.
type Object interface {
	Bounds() common.Rect
	Image() *ebiten.Image
	Category() component.Category
}

// Updater is implemented by objects with per-frame behaviour.
type Updater interface {
	Update(now time.Duration)
}

// PlayerSnapshot is the player state handed to enemy AI each frame.
type PlayerSnapshot struct {
	Entity     Entity
	Center     cp.Vector
	Vulnerable bool
}

// EnemyUpdater is implemented by enemies that react to the player.
type EnemyUpdater interface {
	EnemyUpdate(p PlayerSnapshot)
}

// Expirer is implemented by objects that end their own lifetime. An expired
// object is killed by the update pass right after its Update call.
type Expirer interface {
	Expired() bool
}

// Collider exposes a movement hitbox narrower than the visual bounds.
type Collider interface {
	Hitbox() common.Rect
}

// Tinted objects are drawn with the returned alpha in [0,1].
type Tinted interface {
	Alpha() float32
}

// Hit describes one application of damage.
type Hit struct {
	Amount int
	// Kind is the attacking entity's category (Weapon or Magic).
	Kind component.Category
	// AttackType selects the hit particle, e.g. "slash" or "flame".
	AttackType string
	// Origin is where the hit came from, used for knock-back.
	Origin cp.Vector
}

// Attack is implemented by members of GroupAttack.
type Attack interface {
	Object
	Owner() Entity
	Hit() Hit
}

// Damageable is implemented by attackable objects other than grass.
type Damageable interface {
	TakeDamage(h Hit)
}
