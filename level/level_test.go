package level

import (
	"errors"
	"io/fs"
	"math/rand/v2"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/topdown/ai"
	"github.com/milk9111/topdown/assets"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/ecs/entity"
	"github.com/milk9111/topdown/levels"
	"github.com/milk9111/topdown/prefabs"
	"github.com/milk9111/topdown/ui"
)

const tile = common.TileSize

type placement struct {
	layer    levels.Layer
	row, col int
	code     string
}

func buildMap(t *testing.T, rows, cols int, ps ...placement) *levels.Map {
	t.Helper()
	layers := make(map[levels.Layer]levels.Layout, len(levels.Layers))
	for _, name := range levels.Layers {
		layout := make(levels.Layout, rows)
		for r := range layout {
			layout[r] = make([]string, cols)
			for c := range layout[r] {
				layout[r][c] = levels.Empty
			}
		}
		layers[name] = layout
	}
	for _, p := range ps {
		layers[p.layer][p.row][p.col] = p.code
	}
	m, err := levels.NewMap(layers)
	require.NoError(t, err)
	return m
}

func player(row, col int) placement {
	return placement{levels.LayerEntities, row, col, CodePlayer}
}

func catalog(t *testing.T) *prefabs.Catalog {
	t.Helper()
	c, err := prefabs.LoadCatalog()
	require.NoError(t, err)
	return c
}

var idleBrain = ai.BrainFunc(func(ai.Perception) ai.Status { return ai.StatusIdle })

func build(t *testing.T, m *levels.Map, mutate ...func(*Deps)) *Level {
	t.Helper()
	deps := Deps{
		Map:     m,
		Catalog: catalog(t),
		Brain:   idleBrain,
		Rand:    rand.New(rand.NewPCG(1, 2)),
	}
	for _, fn := range mutate {
		fn(&deps)
	}
	l, err := Build(deps)
	require.NoError(t, err)
	return l
}

func withHealth(h float64) func(*Deps) {
	return func(d *Deps) { d.Catalog.Player.Stats[prefabs.StatHealth] = h }
}

func enemies(l *Level) []*entity.Enemy {
	var out []*entity.Enemy
	l.World().ForEach(ecs.GroupVisible, func(_ ecs.Entity, obj ecs.Object) {
		if e, ok := obj.(*entity.Enemy); ok {
			out = append(out, e)
		}
	})
	return out
}

// strike is a bare attack used to hit the player from outside.
type strike struct {
	rect common.Rect
	hit  ecs.Hit
}

func (s *strike) Bounds() common.Rect          { return s.rect }
func (s *strike) Image() *ebiten.Image         { return nil }
func (s *strike) Category() component.Category { return component.Magic }
func (s *strike) Owner() ecs.Entity            { return 0 }
func (s *strike) Hit() ecs.Hit                 { return s.hit }

func TestBuildGroups(t *testing.T) {
	m := buildMap(t, 3, 4,
		placement{levels.LayerBoundary, 0, 0, "395"},
		placement{levels.LayerGrass, 1, 1, "8"},
		placement{levels.LayerObject, 2, 3, "1"},
		player(2, 0),
		placement{levels.LayerEntities, 0, 3, CodeRaccoon},
	)
	l := build(t, m)
	w := l.World()

	assert.Equal(t, 3, w.Len(ecs.GroupObstacle), "boundary, grass, object")
	assert.Equal(t, 4, w.Len(ecs.GroupVisible), "grass, object, enemy, player")
	assert.Equal(t, 3, w.Len(ecs.GroupAttackable), "grass, enemy, player")
	assert.Zero(t, w.Len(ecs.GroupAttack))

	es := enemies(l)
	require.Len(t, es, 1)
	assert.Equal(t, "raccoon", es[0].Name())
	assert.Equal(t, StateRunning, l.State())
}

// Scenario A.
func TestBuildPlacesPlayerOnGrid(t *testing.T) {
	m := buildMap(t, 1, 3,
		placement{levels.LayerBoundary, 0, 0, "395"},
		player(0, 2),
	)
	l := build(t, m)
	assert.Equal(t, 1, l.World().Len(ecs.GroupObstacle))
	assert.Equal(t, common.NewRect(2*tile, 0, tile, tile), l.Player().Bounds())
}

func TestBuildSpawnErrors(t *testing.T) {
	_, err := Build(Deps{Map: buildMap(t, 2, 2), Catalog: catalog(t), Brain: idleBrain})
	assert.ErrorIs(t, err, ErrNoPlayerSpawn)

	_, err = Build(Deps{Map: buildMap(t, 2, 2, player(0, 0), player(1, 1)), Catalog: catalog(t), Brain: idleBrain})
	assert.ErrorIs(t, err, ErrMultiplePlayerSpawns)

	_, err = Build(Deps{Map: nil, Catalog: catalog(t)})
	assert.Error(t, err)
}

func TestBuildUnknownEntityCode(t *testing.T) {
	m := buildMap(t, 2, 2, player(0, 0), placement{levels.LayerEntities, 1, 1, "999"})

	l := build(t, m)
	es := enemies(l)
	require.Len(t, es, 1)
	assert.Equal(t, "squid", es[0].Name(), "unknown codes fall back to the default monster")

	_, err := Build(Deps{Map: m, Catalog: catalog(t), Brain: idleBrain, StrictCodes: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownEntityCode))
}

func TestDamagePlayerRespectsVulnerability(t *testing.T) {
	l := build(t, buildMap(t, 2, 2, player(0, 0)))
	p := l.Player()

	l.DamagePlayer(30, "slash")
	l.DamagePlayer(30, "slash")
	assert.Equal(t, 70, p.Health())
	assert.False(t, p.Vulnerable())
	assert.Equal(t, 2, l.World().Len(ecs.GroupVisible), "one hit particle")

	for i := 0; i < 40; i++ {
		l.Update()
	}
	require.True(t, p.Vulnerable())
	l.DamagePlayer(30, "slash")
	assert.Equal(t, 40, p.Health())

	var hurts int
	for _, e := range l.DrainEvents() {
		if e.Kind == ecs.EventPlayerHurt {
			hurts++
		}
	}
	assert.Equal(t, 2, hurts)
}

// Scenario B.
func TestTwoAttacksInOnePassApplyOnce(t *testing.T) {
	l := build(t, buildMap(t, 2, 2, player(0, 0)), withHealth(10))
	w := l.World()
	area := l.Player().Bounds()
	w.Spawn(&strike{rect: area, hit: ecs.Hit{Amount: 4, AttackType: "slash"}}, ecs.Groups(ecs.GroupVisible, ecs.GroupAttack))
	w.Spawn(&strike{rect: area, hit: ecs.Hit{Amount: 5, AttackType: "slash"}}, ecs.Groups(ecs.GroupVisible, ecs.GroupAttack))

	l.Update()
	assert.Equal(t, 6, l.Player().Health())
	assert.False(t, l.Player().Vulnerable())
}

// Scenario C.
func TestWeaponCutsGrass(t *testing.T) {
	m := buildMap(t, 3, 3, player(0, 0), placement{levels.LayerGrass, 1, 0, "8"})
	l := build(t, m)
	w := l.World()

	var grass ecs.Entity
	w.ForEach(ecs.GroupAttackable, func(e ecs.Entity, obj ecs.Object) {
		if obj.Category() == component.Grass {
			grass = e
		}
	})
	require.True(t, grass.Valid())

	l.CreateAttack()
	before := w.Len(ecs.GroupVisible)
	l.Update()

	for _, g := range []ecs.Group{ecs.GroupVisible, ecs.GroupObstacle, ecs.GroupAttackable} {
		assert.False(t, w.InGroup(grass, g), g.String())
	}
	added := w.Len(ecs.GroupVisible) - (before - 1)
	assert.GreaterOrEqual(t, added, 3)
	assert.LessOrEqual(t, added, 6)

	// The weapon is still live; a second pass must not cut anything again.
	after := w.Len(ecs.GroupVisible)
	l.Update()
	assert.LessOrEqual(t, w.Len(ecs.GroupVisible), after)
}

func TestCreateAttackReplacesWeapon(t *testing.T) {
	l := build(t, buildMap(t, 2, 2, player(0, 0)))
	l.CreateAttack()
	first := l.CurrentAttack()
	l.CreateAttack()
	assert.False(t, l.World().IsAlive(first))
	assert.Equal(t, 1, l.World().Len(ecs.GroupAttack))

	l.DestroyAttack()
	assert.Zero(t, l.World().Len(ecs.GroupAttack))
	assert.False(t, l.CurrentAttack().Valid())
	l.DestroyAttack()
}

func TestCreateMagic(t *testing.T) {
	l := build(t, buildMap(t, 2, 2, player(0, 0)))
	w := l.World()

	l.CreateMagic("flame", 9, 20)
	assert.Equal(t, 5, w.Len(ecs.GroupAttack))

	l.CreateMagic("frost", 9, 20)
	assert.Equal(t, 5, w.Len(ecs.GroupAttack))

	visible := w.Len(ecs.GroupVisible)
	l.CreateMagic("heal", 20, 10)
	assert.Equal(t, visible+2, w.Len(ecs.GroupVisible))
	assert.Equal(t, 5, w.Len(ecs.GroupAttack))
}

func TestPauseFreezesSimulation(t *testing.T) {
	m := buildMap(t, 6, 6, player(0, 0), placement{levels.LayerEntities, 4, 4, CodeSpirit})
	l := build(t, m, func(d *Deps) {
		d.Brain = ai.BrainFunc(func(ai.Perception) ai.Status { return ai.StatusMove })
	})
	enemy := enemies(l)[0]

	l.Update()
	l.ToggleMenu()
	require.Equal(t, StatePaused, l.State())
	now, pos, hp := l.Now(), enemy.Center(), l.Player().Health()
	count := l.World().Count()

	for i := 0; i < 30; i++ {
		l.Update()
	}
	assert.Equal(t, now, l.Now())
	assert.Equal(t, pos, enemy.Center())
	assert.Equal(t, hp, l.Player().Health())
	assert.Equal(t, count, l.World().Count())

	l.ToggleMenu()
	require.Equal(t, StateRunning, l.State())
	l.Update()
	assert.NotEqual(t, pos, enemy.Center())
}

// Scenario D.
func TestGameOverEntersOnce(t *testing.T) {
	l := build(t, buildMap(t, 2, 2, player(0, 0)), withHealth(10))
	l.DamagePlayer(10, "slash")
	require.Equal(t, 0, l.Player().Health())

	for i := 0; i < 5; i++ {
		l.Update()
	}
	assert.Equal(t, StateGameOver, l.State())
	assert.Equal(t, 1, l.GameOverCount())

	var overs int
	for _, e := range l.DrainEvents() {
		if e.Kind == ecs.EventGameOver {
			overs++
		}
	}
	assert.Equal(t, 1, overs)

	l.ToggleMenu()
	assert.Equal(t, StateGameOver, l.State(), "menu is ignored after game over")
}

func TestGameOverChoices(t *testing.T) {
	l := build(t, buildMap(t, 2, 2, player(0, 0)), withHealth(1))
	assert.Equal(t, ui.ChoiceNone, l.HandleGameOverClick(250, 320), "only handled after game over")

	l.DamagePlayer(5, "claw")
	l.Update()
	require.Equal(t, StateGameOver, l.State())

	assert.Equal(t, ui.ChoiceNone, l.HandleGameOverClick(0, 0))
	assert.Equal(t, ui.ChoiceRestart, l.HandleGameOverClick(250, 320))
	assert.Equal(t, StateGameOver, l.State())
	assert.Equal(t, ui.ChoiceQuit, l.HandleGameOverClick(250, 420))
	assert.Equal(t, StateQuit, l.State())
}

func TestRestartBuildsFreshLevel(t *testing.T) {
	m := buildMap(t, 2, 2, player(0, 0))
	deps := Deps{Map: m, Catalog: catalog(t), Brain: idleBrain}
	first, err := Build(deps)
	require.NoError(t, err)
	first.DamagePlayer(1000, "slash")
	first.Update()

	second, err := Build(deps)
	require.NoError(t, err)
	assert.Equal(t, StateRunning, second.State())
	assert.Equal(t, 100, second.Player().Health())
	assert.Zero(t, second.Now())
}

func TestScriptedEnemyAttacksPlayer(t *testing.T) {
	m := buildMap(t, 2, 3, player(0, 0), placement{levels.LayerEntities, 0, 1, CodeSquid})
	l := build(t, m, func(d *Deps) { d.Brain = nil })

	l.Update()
	enemy := enemies(l)[0]
	assert.Equal(t, ai.StatusAttack, enemy.Status())
	assert.Equal(t, 80, l.Player().Health())
}

func TestEnemyDeathGrantsExp(t *testing.T) {
	m := buildMap(t, 2, 3, player(0, 0), placement{levels.LayerEntities, 1, 2, CodeBamboo})
	l := build(t, m)
	enemy := enemies(l)[0]
	exp := l.Player().Exp()

	enemy.TakeDamage(ecs.Hit{Amount: 1000, Origin: l.Player().Center()})
	l.Update()

	assert.Empty(t, enemies(l))
	assert.Equal(t, exp+catalog(t).Monsters["bamboo"].Exp, l.Player().Exp())
}

func TestRequiredAssetsAreEmbedded(t *testing.T) {
	fsys := assets.DefaultFS()
	for _, name := range RequiredAssets(catalog(t)) {
		p := assets.DefaultRoot + "/" + name
		_, dirErr := fs.Stat(fsys, p)
		_, fileErr := fs.Stat(fsys, p+".png")
		assert.True(t, dirErr == nil || fileErr == nil, name)
	}
}
