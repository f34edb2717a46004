package entity

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/input"
	"github.com/milk9111/topdown/prefabs"
)

const (
	upgradeValueFactor = 1.2
	upgradeCostFactor  = 1.4
)

// Facing directions, also the prefix of every player animation folder.
const (
	FacingUp    = "up"
	FacingDown  = "down"
	FacingLeft  = "left"
	FacingRight = "right"
)

type PlayerConfig struct {
	Pos       cp.Vector
	Spec      prefabs.PlayerSpec
	Weapons   []prefabs.WeaponSpec
	Magic     []prefabs.MagicSpec
	Services  Services
	Obstacles Obstacles
	Controls  Controls
	Graphics  Graphics
	TileSize  float64
}

type Player struct {
	body

	spec     prefabs.PlayerSpec
	services Services
	controls Controls
	gfx      Graphics

	anim   *component.Animation
	status string
	facing string

	attacking    bool
	attack       component.Cooldown
	weaponSwitch component.Cooldown
	magicSwitch  component.Cooldown
	vuln         component.Vulnerability

	weapons     []prefabs.WeaponSpec
	weaponIndex int
	magic       []prefabs.MagicSpec
	magicIndex  int

	stats       prefabs.Stats
	maxStats    prefabs.Stats
	upgradeCost prefabs.Stats
	health      int
	energy      float64
	exp         int

	now time.Duration
}

func NewPlayer(cfg PlayerConfig) *Player {
	p := &Player{
		spec:         cfg.Spec,
		services:     cfg.Services,
		controls:     cfg.Controls,
		gfx:          cfg.Graphics,
		facing:       FacingDown,
		status:       FacingDown + "_idle",
		weaponSwitch: component.Cooldown{Length: cfg.Spec.SwitchCooldown()},
		magicSwitch:  component.Cooldown{Length: cfg.Spec.SwitchCooldown()},
		vuln:         component.NewVulnerability(cfg.Spec.Invulnerability()),
		weapons:      cfg.Weapons,
		magic:        cfg.Magic,
		stats:        cfg.Spec.Stats.Clone(),
		maxStats:     cfg.Spec.MaxStats.Clone(),
		upgradeCost:  cfg.Spec.UpgradeCost.Clone(),
		exp:          cfg.Spec.Exp,
	}
	if p.services == nil {
		p.services = NopServices{}
	}
	if p.controls == nil {
		p.controls = input.State{}
	}
	p.health = int(p.stats[prefabs.StatHealth])
	p.energy = p.stats[prefabs.StatEnergy]

	var frames []*ebiten.Image
	if p.gfx != nil {
		frames = p.gfx.Frames("player/" + p.status)
	}
	p.anim = component.NewAnimation(frames, component.DefaultAnimationSpeed, true)

	w, h := component.ImageSize(p.anim.Frame(), cfg.TileSize, cfg.TileSize)
	rect := common.NewRect(cfg.Pos.X, cfg.Pos.Y, w, h)
	p.body = newBody(rect, cp.Vector{X: cfg.Spec.Hitbox.X, Y: cfg.Spec.Hitbox.Y}, cfg.Obstacles)
	return p
}

func (p *Player) Update(now time.Duration) {
	p.now = now
	p.input()
	p.cooldowns()
	p.updateStatus()
	p.animate()
	p.move(p.stats[prefabs.StatSpeed])
	p.recoverEnergy()
}

func (p *Player) input() {
	if p.attacking {
		return
	}

	p.direction = cp.Vector{}
	switch {
	case p.controls.Pressed(input.ActionUp):
		p.direction.Y = -1
		p.facing = FacingUp
	case p.controls.Pressed(input.ActionDown):
		p.direction.Y = 1
		p.facing = FacingDown
	}
	switch {
	case p.controls.Pressed(input.ActionRight):
		p.direction.X = 1
		p.facing = FacingRight
	case p.controls.Pressed(input.ActionLeft):
		p.direction.X = -1
		p.facing = FacingLeft
	}

	switch {
	case p.controls.Pressed(input.ActionAttack):
		p.startAttack(p.Weapon().Cooldown())
		p.services.CreateAttack()
	case p.controls.Pressed(input.ActionMagic):
		m := p.Magic()
		p.startAttack(0)
		p.services.CreateMagic(m.Name, m.Strength+int(p.stats[prefabs.StatMagic]), m.Cost)
	}

	if p.controls.Pressed(input.ActionSwitchWeapon) && p.weaponSwitch.Ready(p.now) && len(p.weapons) > 0 {
		p.weaponSwitch.Start(p.now)
		p.weaponIndex = (p.weaponIndex + 1) % len(p.weapons)
	}
	if p.controls.Pressed(input.ActionSwitchMagic) && p.magicSwitch.Ready(p.now) && len(p.magic) > 0 {
		p.magicSwitch.Start(p.now)
		p.magicIndex = (p.magicIndex + 1) % len(p.magic)
	}
}

func (p *Player) startAttack(extra time.Duration) {
	p.attacking = true
	p.attack.Length = p.spec.AttackCooldown() + extra
	p.attack.Start(p.now)
}

func (p *Player) cooldowns() {
	if p.attacking && p.attack.Ready(p.now) {
		p.attacking = false
		p.services.DestroyAttack()
	}
	p.vuln.Tick(p.now)
}

func (p *Player) updateStatus() {
	status := p.facing + "_idle"
	switch {
	case p.attacking:
		p.direction = cp.Vector{}
		status = p.facing + "_attack"
	case p.direction.Length() != 0:
		status = p.facing
	}
	if status == p.status {
		return
	}
	p.status = status
	if p.gfx != nil {
		p.anim.SetFrames(p.gfx.Frames("player/" + status))
	}
}

func (p *Player) animate() {
	p.anim.Update()
}

func (p *Player) recoverEnergy() {
	limit := p.stats[prefabs.StatEnergy]
	if p.energy < limit {
		p.energy += p.spec.EnergyRecovery * p.stats[prefabs.StatMagic]
	}
	if p.energy > limit {
		p.energy = limit
	}
}

// Hurt applies damage if the player is vulnerable and closes the gate.
// It reports whether the damage landed.
func (p *Player) Hurt(amount int, now time.Duration) bool {
	if !p.vuln.Hurt(now) {
		return false
	}
	p.health -= amount
	return true
}

// TakeDamage routes hits on the player through the level so the
// vulnerability gate and hit particles apply.
func (p *Player) TakeDamage(h ecs.Hit) {
	p.services.DamagePlayer(h.Amount, h.AttackType)
}

// Heal adds health up to the current maximum.
func (p *Player) Heal(amount int) {
	p.health += amount
	if limit := int(p.stats[prefabs.StatHealth]); p.health > limit {
		p.health = limit
	}
}

// SpendEnergy deducts cost if enough energy is available.
func (p *Player) SpendEnergy(cost int) bool {
	if p.energy < float64(cost) {
		return false
	}
	p.energy -= float64(cost)
	return true
}

func (p *Player) AddExp(amount int) {
	p.exp += amount
}

// Upgrade raises a stat by 20% (capped at its maximum) if the player can pay
// for it, and makes the next upgrade 40% more expensive.
func (p *Player) Upgrade(stat string) bool {
	cost, ok := p.upgradeCost[stat]
	if !ok || float64(p.exp) < cost {
		return false
	}
	if p.stats[stat] >= p.maxStats[stat] {
		return false
	}
	p.exp -= int(cost)
	p.stats[stat] *= upgradeValueFactor
	if p.stats[stat] > p.maxStats[stat] {
		p.stats[stat] = p.maxStats[stat]
	}
	p.upgradeCost[stat] *= upgradeCostFactor
	return true
}

func (p *Player) Image() *ebiten.Image         { return p.anim.Frame() }
func (p *Player) Category() component.Category { return component.Player }
func (p *Player) Alpha() float32               { return p.vuln.Flicker(p.now) }

func (p *Player) Health() int      { return p.health }
func (p *Player) Energy() float64  { return p.energy }
func (p *Player) Exp() int         { return p.exp }
func (p *Player) Facing() string   { return p.facing }
func (p *Player) Status() string   { return p.status }
func (p *Player) Attacking() bool  { return p.attacking }
func (p *Player) Vulnerable() bool { return p.vuln.Vulnerable }

func (p *Player) Stat(name string) float64        { return p.stats[name] }
func (p *Player) MaxStat(name string) float64     { return p.maxStats[name] }
func (p *Player) UpgradeCost(name string) float64 { return p.upgradeCost[name] }

func (p *Player) Weapon() prefabs.WeaponSpec {
	if len(p.weapons) == 0 {
		return prefabs.WeaponSpec{}
	}
	return p.weapons[p.weaponIndex]
}

func (p *Player) Magic() prefabs.MagicSpec {
	if len(p.magic) == 0 {
		return prefabs.MagicSpec{}
	}
	return p.magic[p.magicIndex]
}

func (p *Player) FullWeaponDamage() int {
	return int(p.stats[prefabs.StatAttack]) + p.Weapon().Damage
}

func (p *Player) FullMagicDamage() int {
	return int(p.stats[prefabs.StatMagic]) + p.Magic().Strength
}

// Snapshot is the view of the player handed to enemy AI.
func (p *Player) Snapshot(e ecs.Entity) ecs.PlayerSnapshot {
	return ecs.PlayerSnapshot{Entity: e, Center: p.Center(), Vulnerable: p.vuln.Vulnerable}
}
