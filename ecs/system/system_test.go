package system

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/ecs/entity"
)

type sprite struct {
	rect    common.Rect
	cat     component.Category
	updates int
	expired bool
	alpha   float32
	hits    []ecs.Hit
	snaps   []ecs.PlayerSnapshot
}

func (s *sprite) Bounds() common.Rect          { return s.rect }
func (s *sprite) Image() *ebiten.Image         { return nil }
func (s *sprite) Category() component.Category { return s.cat }
func (s *sprite) Update(time.Duration)         { s.updates++ }
func (s *sprite) Expired() bool                { return s.expired }
func (s *sprite) TakeDamage(h ecs.Hit)         { s.hits = append(s.hits, h) }
func (s *sprite) EnemyUpdate(p ecs.PlayerSnapshot) {
	s.snaps = append(s.snaps, p)
}

type tinted struct {
	sprite
}

func (t *tinted) Alpha() float32 { return t.alpha }

type blade struct {
	sprite
	owner ecs.Entity
	hit   ecs.Hit
}

func (b *blade) Owner() ecs.Entity { return b.owner }
func (b *blade) Hit() ecs.Hit      { return b.hit }

func at(x, y float64, cat component.Category) *sprite {
	return &sprite{rect: common.NewRect(x, y, 64, 64), cat: cat}
}

func particles() *entity.ParticleFactory {
	return entity.NewParticleFactory(nil, func(n int) int { return n - 1 }, 64)
}

func TestUpdateSystemKillsExpired(t *testing.T) {
	w := ecs.NewWorld()
	live := at(0, 0, component.Particle)
	dying := at(0, 0, component.Particle)
	dying.expired = true
	hidden := at(0, 0, component.Boundary)

	a := w.Spawn(live, ecs.Groups(ecs.GroupVisible))
	b := w.Spawn(dying, ecs.Groups(ecs.GroupVisible))
	w.Spawn(hidden, ecs.Groups(ecs.GroupObstacle))

	NewUpdateSystem(&ecs.Clock{}).Update(w)
	assert.Equal(t, 1, live.updates)
	assert.Equal(t, 1, dying.updates)
	assert.Zero(t, hidden.updates)
	assert.True(t, w.IsAlive(a))
	assert.False(t, w.IsAlive(b))
}

func TestEnemySystemOnlyReachesEnemies(t *testing.T) {
	w := ecs.NewWorld()
	enemy := at(0, 0, component.Enemy)
	other := at(0, 0, component.Object)
	w.Spawn(enemy, ecs.Groups(ecs.GroupVisible))
	w.Spawn(other, ecs.Groups(ecs.GroupVisible))

	snap := ecs.PlayerSnapshot{Center: cp.Vector{X: 5, Y: 6}, Vulnerable: true}
	NewEnemySystem(func() (ecs.PlayerSnapshot, bool) { return snap, true }).Update(w)
	assert.Equal(t, []ecs.PlayerSnapshot{snap}, enemy.snaps)
	assert.Empty(t, other.snaps)

	NewEnemySystem(func() (ecs.PlayerSnapshot, bool) { return snap, false }).Update(w)
	assert.Len(t, enemy.snaps, 1)
}

func TestCombatSkipsWithoutAttacks(t *testing.T) {
	w := ecs.NewWorld()
	target := at(0, 0, component.Enemy)
	w.Spawn(target, ecs.Groups(ecs.GroupVisible, ecs.GroupAttackable))
	NewCombatSystem(particles(), nil).Update(w)
	assert.Empty(t, target.hits)
	assert.Zero(t, w.Events().Len())
}

func TestCombatDamagesOverlappingTargets(t *testing.T) {
	w := ecs.NewWorld()
	owner := at(0, 0, component.Player)
	ownerID := w.Spawn(owner, ecs.Groups(ecs.GroupVisible, ecs.GroupAttackable))
	near := at(32, 0, component.Enemy)
	far := at(500, 0, component.Enemy)
	w.Spawn(near, ecs.Groups(ecs.GroupVisible, ecs.GroupAttackable))
	w.Spawn(far, ecs.Groups(ecs.GroupVisible, ecs.GroupAttackable))

	hit := ecs.Hit{Amount: 25, Kind: component.Weapon, AttackType: "sword"}
	w.Spawn(&blade{sprite: *at(20, 0, component.Weapon), owner: ownerID, hit: hit}, ecs.Groups(ecs.GroupVisible, ecs.GroupAttack))

	NewCombatSystem(particles(), nil).Update(w)
	assert.Equal(t, []ecs.Hit{hit}, near.hits)
	assert.Empty(t, far.hits)
	assert.Empty(t, owner.hits, "attacks never hit their owner")
}

func TestCombatCutsGrassOnce(t *testing.T) {
	w := ecs.NewWorld()
	grass := entity.NewTile(cp.Vector{X: 0, Y: 0}, component.Grass, nil, 64)
	g := w.Spawn(grass, ecs.Groups(ecs.GroupVisible, ecs.GroupObstacle, ecs.GroupAttackable))

	// Two overlapping attacks in the same frame.
	for i := 0; i < 2; i++ {
		w.Spawn(&blade{sprite: *at(10, 10, component.Magic)}, ecs.Groups(ecs.GroupVisible, ecs.GroupAttack))
	}
	before := w.Len(ecs.GroupVisible)

	NewCombatSystem(particles(), nil).Update(w)
	assert.False(t, w.IsAlive(g))
	assert.Zero(t, w.Len(ecs.GroupObstacle))
	assert.Zero(t, w.Len(ecs.GroupAttackable))
	// intn(n) = n-1 yields the maximum of six leaves, spawned once.
	assert.Equal(t, before-1+6, w.Len(ecs.GroupVisible))

	evts := w.Events().Drain()
	require.Len(t, evts, 1)
	assert.Equal(t, ecs.EventGrassCut, evts[0].Kind)
	assert.Equal(t, cp.Vector{X: 32, Y: 32 - 75}, evts[0].Pos)
}

func TestCompositorOffset(t *testing.T) {
	c := NewCompositor(nil, 1280, 720)
	off := c.Offset(common.NewRect(1000, 500, 64, 64))
	assert.Equal(t, cp.Vector{X: 1032 - 640, Y: 532 - 360}, off)
}

func TestDrawOrderStableByCenterY(t *testing.T) {
	w := ecs.NewWorld()
	a := w.Spawn(at(0, 100, component.Object), ecs.Groups(ecs.GroupVisible))
	b := w.Spawn(at(0, 50, component.Object), ecs.Groups(ecs.GroupVisible))
	c := w.Spawn(at(10, 100, component.Object), ecs.Groups(ecs.GroupVisible))
	d := w.Spawn(at(20, 50, component.Object), ecs.Groups(ecs.GroupVisible))
	w.Spawn(at(0, 0, component.Boundary), ecs.Groups(ecs.GroupObstacle))

	want := []ecs.Entity{b, d, a, c}
	for i := 0; i < 3; i++ {
		assert.Equal(t, want, DrawOrder(w))
	}
}

func TestPlacementsApplyOffsetAndAlpha(t *testing.T) {
	w := ecs.NewWorld()
	s := &tinted{sprite: *at(100, 200, component.Player)}
	s.alpha = 0
	e := w.Spawn(s, ecs.Groups(ecs.GroupVisible))

	c := NewCompositor(nil, 1280, 720)
	ps := c.Placements(w, cp.Vector{X: 50, Y: 50})
	require.Len(t, ps, 1)
	assert.Equal(t, e, ps[0].Entity)
	assert.Equal(t, cp.Vector{X: 50, Y: 150}, ps[0].Pos)
	assert.Equal(t, float32(0), ps[0].Alpha)
}

type recordingCanvas struct {
	draws int
}

func (r *recordingCanvas) DrawImage(*ebiten.Image, *ebiten.DrawImageOptions) { r.draws++ }

func TestDrawSkipsMissingImages(t *testing.T) {
	w := ecs.NewWorld()
	w.Spawn(at(0, 0, component.Object), ecs.Groups(ecs.GroupVisible))
	var canvas recordingCanvas
	NewCompositor(nil, 1280, 720).Draw(&canvas, w, common.NewRect(0, 0, 64, 64))
	assert.Zero(t, canvas.draws)
}
