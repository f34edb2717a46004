package entity

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/topdown/ai"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/prefabs"
)

const enemyHitboxInset = -10

type EnemyConfig struct {
	Name      string
	Pos       cp.Vector
	Spec      prefabs.MonsterSpec
	Services  Services
	Obstacles Obstacles
	Brain     ai.Brain
	Graphics  Graphics
	TileSize  float64
}

type Enemy struct {
	body

	name     string
	spec     prefabs.MonsterSpec
	services Services
	brain    ai.Brain
	gfx      Graphics

	anim   *component.Animation
	status ai.Status

	health    int
	canAttack bool
	attack    component.Cooldown
	vuln      component.Vulnerability
	dead      bool

	now time.Duration
}

func NewEnemy(cfg EnemyConfig) *Enemy {
	e := &Enemy{
		name:      cfg.Name,
		spec:      cfg.Spec,
		services:  cfg.Services,
		brain:     cfg.Brain,
		gfx:       cfg.Graphics,
		status:    ai.StatusIdle,
		health:    cfg.Spec.Health,
		canAttack: true,
		attack:    component.Cooldown{Length: cfg.Spec.AttackCooldown()},
		vuln:      component.NewVulnerability(cfg.Spec.Invincibility()),
	}
	if e.services == nil {
		e.services = NopServices{}
	}
	if e.brain == nil {
		e.brain = ai.BrainFunc(func(ai.Perception) ai.Status { return ai.StatusIdle })
	}
	e.anim = component.NewAnimation(e.frames(e.status), component.DefaultAnimationSpeed, true)

	w, h := component.ImageSize(e.anim.Frame(), cfg.TileSize, cfg.TileSize)
	rect := common.NewRect(cfg.Pos.X, cfg.Pos.Y, w, h)
	e.body = newBody(rect, cp.Vector{Y: enemyHitboxInset}, cfg.Obstacles)
	return e
}

func (e *Enemy) frames(status ai.Status) []*ebiten.Image {
	if e.gfx == nil {
		return nil
	}
	return e.gfx.Frames("monsters/" + e.name + "/" + string(status))
}

// Update runs the per-frame physics: knock-back, movement, animation,
// cooldowns and the death check.
func (e *Enemy) Update(now time.Duration) {
	e.now = now
	if e.dead {
		return
	}
	if !e.vuln.Vulnerable {
		e.direction = e.direction.Mult(-e.spec.Resistance)
		e.move(e.direction.Length())
	} else {
		e.move(e.spec.Speed)
	}
	e.animate()
	e.cooldowns()
	e.checkDeath()
}

// EnemyUpdate decides the status against the player and acts on it.
func (e *Enemy) EnemyUpdate(p ecs.PlayerSnapshot) {
	if e.dead {
		return
	}
	dir, dist := common.Direction(e.Center(), p.Center)

	status := e.brain.Decide(ai.Perception{
		Distance:     dist,
		AttackRadius: e.spec.AttackRadius,
		NoticeRadius: e.spec.NoticeRadius,
		CanAttack:    e.canAttack,
		Current:      e.status,
	})
	e.setStatus(status)

	switch e.status {
	case ai.StatusAttack:
		e.attack.Start(e.now)
		e.services.DamagePlayer(e.spec.Damage, e.spec.AttackType)
	case ai.StatusMove:
		e.direction = dir
	default:
		e.direction = cp.Vector{}
	}
}

func (e *Enemy) setStatus(status ai.Status) {
	if status == e.status {
		return
	}
	e.status = status
	e.anim = component.NewAnimation(e.frames(status), component.DefaultAnimationSpeed, status != ai.StatusAttack)
}

func (e *Enemy) animate() {
	e.anim.Update()
	if e.status == ai.StatusAttack && e.anim.Done() {
		e.canAttack = false
		e.anim.Reset()
	}
}

func (e *Enemy) cooldowns() {
	if !e.canAttack && e.attack.Ready(e.now) {
		e.canAttack = true
	}
	e.vuln.Tick(e.now)
}

func (e *Enemy) checkDeath() {
	if e.health > 0 {
		return
	}
	e.dead = true
	e.services.TriggerDeathParticles(e.Center(), e.name)
	e.services.AddExp(e.spec.Exp)
}

// TakeDamage applies a hit while vulnerable and turns the enemy toward the
// hit origin; the next update pushes it back along that line.
func (e *Enemy) TakeDamage(h ecs.Hit) {
	if e.dead || !e.vuln.Hurt(e.now) {
		return
	}
	e.direction, _ = common.Direction(e.Center(), h.Origin)
	e.health -= h.Amount
}

func (e *Enemy) Expired() bool                { return e.dead }
func (e *Enemy) Image() *ebiten.Image         { return e.anim.Frame() }
func (e *Enemy) Category() component.Category { return component.Enemy }
func (e *Enemy) Alpha() float32               { return e.vuln.Flicker(e.now) }

func (e *Enemy) Name() string         { return e.name }
func (e *Enemy) Health() int          { return e.health }
func (e *Enemy) Status() ai.Status    { return e.status }
func (e *Enemy) CanAttack() bool      { return e.canAttack }
func (e *Enemy) Vulnerable() bool     { return e.vuln.Vulnerable }
func (e *Enemy) Direction() cp.Vector { return e.direction }

var (
	_ ecs.Updater      = (*Enemy)(nil)
	_ ecs.EnemyUpdater = (*Enemy)(nil)
	_ ecs.Damageable   = (*Enemy)(nil)
	_ ecs.Expirer      = (*Enemy)(nil)
)
