package level

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/milk9111/topdown/ai"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/ecs/entity"
	"github.com/milk9111/topdown/ecs/system"
	"github.com/milk9111/topdown/levels"
	"github.com/milk9111/topdown/prefabs"
	"github.com/milk9111/topdown/ui"
)

var (
	ErrNoPlayerSpawn        = errors.New("level: map has no player spawn")
	ErrMultiplePlayerSpawns = errors.New("level: map has more than one player spawn")
	ErrUnknownEntityCode    = errors.New("level: unknown entity code")
)

// Entity codes of the entities layer.
const (
	CodePlayer  = "394"
	CodeBamboo  = "390"
	CodeSpirit  = "391"
	CodeRaccoon = "392"
	CodeSquid   = "393"
)

var monsterCodes = map[string]string{
	CodeBamboo:  "bamboo",
	CodeSpirit:  "spirit",
	CodeRaccoon: "raccoon",
	CodeSquid:   "squid",
}

// Graphics is the asset source a level draws from. *assets.Library satisfies it.
type Graphics interface {
	entity.Graphics
	Random(dir string, intn func(int) int) *ebiten.Image
}

// Deps is everything Build needs. Map and Catalog are required; the rest
// have headless defaults.
type Deps struct {
	Map      *levels.Map
	Catalog  *prefabs.Catalog
	Graphics Graphics
	Controls entity.Controls
	// Brain overrides the scripted enemy brain.
	Brain ai.Brain
	Log   *zap.Logger
	Rand  *rand.Rand

	TileSize float64
	Width    float64
	Height   float64
	// StrictCodes rejects unknown entity codes instead of spawning the
	// default monster.
	StrictCodes bool
}

// Build creates a fresh level from the map. It has no side effects outside
// the returned level, so restarting is just calling it again.
func Build(deps Deps) (*Level, error) {
	if deps.Map == nil {
		return nil, fmt.Errorf("level: build: nil map")
	}
	if deps.Catalog == nil {
		return nil, fmt.Errorf("level: build: nil catalog")
	}
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if deps.Graphics == nil {
		deps.Graphics = noGraphics{}
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if deps.TileSize <= 0 {
		deps.TileSize = common.TileSize
	}
	if deps.Width <= 0 || deps.Height <= 0 {
		deps.Width, deps.Height = common.BaseWidth, common.BaseHeight
	}

	brain := deps.Brain
	if brain == nil {
		sb, err := ai.NewScriptBrain(deps.Catalog.EnemyScript, deps.Log)
		if err != nil {
			return nil, fmt.Errorf("level: build: %w", err)
		}
		brain = sb
	}

	l := &Level{
		world:    ecs.NewWorld(),
		gfx:      deps.Graphics,
		log:      deps.Log,
		tileSize: deps.TileSize,
		modal:    ui.NewGameOverModal(),
	}
	l.particles = entity.NewParticleFactory(deps.Graphics, deps.Rand.IntN, deps.TileSize)
	l.magic = entity.NewMagicPlayer(l.particles, deps.TileSize)
	l.compositor = system.NewCompositor(deps.Graphics.Image("tilemap/ground"), deps.Width, deps.Height)
	l.scheduler = ecs.NewScheduler(
		system.NewUpdateSystem(&l.clock),
		system.NewEnemySystem(l.playerSnapshot),
		system.NewCombatSystem(l.particles, deps.Log),
	)

	if err := l.populate(deps, brain); err != nil {
		return nil, err
	}
	l.log.Info("level built",
		zap.Int("rows", deps.Map.Rows),
		zap.Int("cols", deps.Map.Cols),
		zap.Int("entities", l.world.Count()),
	)
	return l, nil
}

func (l *Level) populate(deps Deps, brain ai.Brain) error {
	m := deps.Map
	obstacles := l.world.View(ecs.GroupObstacle)
	cell := func(row, col int) cp.Vector {
		return cp.Vector{X: float64(col) * l.tileSize, Y: float64(row) * l.tileSize}
	}

	m.Each(levels.LayerBoundary, func(row, col int, _ string) {
		t := entity.NewTile(cell(row, col), component.Boundary, nil, l.tileSize)
		l.world.Spawn(t, ecs.Groups(ecs.GroupObstacle))
	})
	m.Each(levels.LayerGrass, func(row, col int, _ string) {
		img := l.gfx.Random("grass", deps.Rand.IntN)
		t := entity.NewTile(cell(row, col), component.Grass, img, l.tileSize)
		l.world.Spawn(t, ecs.Groups(ecs.GroupVisible, ecs.GroupObstacle, ecs.GroupAttackable))
	})
	m.Each(levels.LayerObject, func(row, col int, code string) {
		img := l.gfx.Image("objects/" + code)
		t := entity.NewTile(cell(row, col), component.Object, img, l.tileSize)
		l.world.Spawn(t, ecs.Groups(ecs.GroupVisible, ecs.GroupObstacle))
	})

	var (
		spawns  []cp.Vector
		buildErr error
	)
	m.Each(levels.LayerEntities, func(row, col int, code string) {
		if buildErr != nil {
			return
		}
		pos := cell(row, col)
		if code == CodePlayer {
			spawns = append(spawns, pos)
			return
		}
		name, ok := monsterCodes[code]
		if !ok {
			if deps.StrictCodes {
				buildErr = fmt.Errorf("%w: %s at row %d col %d", ErrUnknownEntityCode, code, row, col)
				return
			}
			name = deps.Catalog.DefaultMonster
			l.log.Warn("unknown entity code, using default monster",
				zap.String("code", code),
				zap.Int("row", row),
				zap.Int("col", col),
				zap.String("monster", name),
			)
		}
		spec, ok := deps.Catalog.Monsters[name]
		if !ok {
			name = deps.Catalog.DefaultMonster
			spec = deps.Catalog.Monsters[name]
		}
		e := entity.NewEnemy(entity.EnemyConfig{
			Name:      name,
			Pos:       pos,
			Spec:      spec,
			Services:  l,
			Obstacles: obstacles,
			Brain:     brain,
			Graphics:  l.gfx,
			TileSize:  l.tileSize,
		})
		l.world.Spawn(e, ecs.Groups(ecs.GroupVisible, ecs.GroupAttackable))
	})
	if buildErr != nil {
		return buildErr
	}

	switch len(spawns) {
	case 0:
		return ErrNoPlayerSpawn
	case 1:
	default:
		return fmt.Errorf("%w: %d spawns", ErrMultiplePlayerSpawns, len(spawns))
	}

	cat := deps.Catalog
	l.player = entity.NewPlayer(entity.PlayerConfig{
		Pos:       spawns[0],
		Spec:      cat.Player,
		Weapons:   cat.Weapons,
		Magic:     cat.Magic,
		Services:  l,
		Obstacles: obstacles,
		Controls:  deps.Controls,
		Graphics:  l.gfx,
		TileSize:  l.tileSize,
	})
	l.playerID = l.world.Spawn(l.player, ecs.Groups(ecs.GroupVisible, ecs.GroupAttackable))
	return nil
}

// RequiredAssets lists every graphic or folder a level built from catalog
// may ask for. Missing ones should fail startup.
func RequiredAssets(catalog *prefabs.Catalog) []string {
	out := []string{"tilemap/ground", "grass", "objects"}
	for _, facing := range []string{entity.FacingUp, entity.FacingDown, entity.FacingLeft, entity.FacingRight} {
		out = append(out,
			"player/"+facing,
			"player/"+facing+"_idle",
			"player/"+facing+"_attack",
		)
		for _, w := range catalog.Weapons {
			out = append(out, "weapons/"+w.Name+"/"+facing)
		}
	}
	for _, w := range catalog.Weapons {
		out = append(out, "weapons/"+w.Name+"/full")
	}
	for _, m := range catalog.Magic {
		out = append(out, "magic/"+m.Name)
	}
	out = append(out, "particles/"+entity.MagicFlame, "particles/aura", "particles/heal")
	for _, name := range catalog.MonsterNames() {
		spec := catalog.Monsters[name]
		for _, status := range []ai.Status{ai.StatusIdle, ai.StatusMove, ai.StatusAttack} {
			out = append(out, "monsters/"+name+"/"+string(status))
		}
		out = append(out, "particles/"+name, "particles/"+spec.AttackType)
	}
	for i := 1; i <= 6; i++ {
		out = append(out, "particles/leaf"+strconv.Itoa(i))
	}
	return out
}

type noGraphics struct{}

func (noGraphics) Frames(string) []*ebiten.Image              { return nil }
func (noGraphics) Image(string) *ebiten.Image                 { return nil }
func (noGraphics) Mirrored(string) []*ebiten.Image            { return nil }
func (noGraphics) Random(string, func(int) int) *ebiten.Image { return nil }
