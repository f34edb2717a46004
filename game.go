package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/input"
	"github.com/milk9111/topdown/level"
	"github.com/milk9111/topdown/prefabs"
	"github.com/milk9111/topdown/ui"
)

var waterColor = color.NRGBA{R: 0x71, G: 0xdd, B: 0xee, A: 0xff}

type Game struct {
	frames int
	debug  bool

	log     *zap.Logger
	deps    level.Deps
	keys    *input.Keyboard
	watcher *prefabs.Watcher

	level *level.Level
	hud   *ui.HUD
	menu  *ui.UpgradeMenu
}

func NewGame(deps level.Deps, keys *input.Keyboard, images ui.ImageSource, watcher *prefabs.Watcher, log *zap.Logger, debug bool) (*Game, error) {
	deps.Controls = keys
	g := &Game{
		debug:   debug,
		log:     log,
		deps:    deps,
		keys:    keys,
		watcher: watcher,
		hud:     ui.NewHUD(images),
	}
	if err := g.restart(); err != nil {
		return nil, err
	}
	return g, nil
}

// restart replaces the level with a freshly built one.
func (g *Game) restart() error {
	l, err := level.Build(g.deps)
	if err != nil {
		return fmt.Errorf("build level: %w", err)
	}
	g.level = l
	g.menu = ui.NewUpgradeMenu(l.Player(), g.log)
	return nil
}

func (g *Game) Update() error {
	g.frames++
	g.reloadPrefabs()

	switch g.level.State() {
	case level.StateGameOver:
		if x, y, ok := input.Click(); ok {
			switch g.level.HandleGameOverClick(x, y) {
			case ui.ChoiceRestart:
				if err := g.restart(); err != nil {
					return err
				}
			case ui.ChoiceQuit:
				return ebiten.Termination
			}
		}
	case level.StateQuit:
		return ebiten.Termination
	default:
		if g.keys.JustPressed(input.ActionMenu) {
			g.level.ToggleMenu()
		}
		if g.level.State() == level.StatePaused {
			g.menu.Update()
		}
		g.level.Update()
	}

	g.logEvents(g.level.DrainEvents())
	return nil
}

func (g *Game) logEvents(events []ecs.Event) {
	for _, e := range events {
		switch e.Kind {
		case ecs.EventGameOver:
			g.log.Info("game over", zap.Int("health", e.Amount), zap.Int("frames", g.frames))
		case ecs.EventEnemyDied:
			g.log.Debug("enemy died", zap.String("kind", e.Detail))
		default:
			g.log.Debug("event",
				zap.String("kind", string(e.Kind)),
				zap.Stringer("entity", e.Entity),
				zap.Int("amount", e.Amount),
				zap.String("detail", e.Detail),
			)
		}
	}
}

// reloadPrefabs swaps in edited data tables. They apply from the next
// restart so a running level never sees a half-updated catalog.
func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		g.log.Warn("prefab watcher", zap.Error(err))
	default:
	}
	changed := g.watcher.Poll()
	if len(changed) == 0 {
		return
	}
	catalog, err := prefabs.LoadCatalog()
	if err != nil {
		g.log.Warn("prefab reload failed", zap.Strings("files", changed), zap.Error(err))
		return
	}
	g.deps.Catalog = catalog
	g.log.Info("prefabs reloaded", zap.Strings("files", changed))
	logPrefabSources(g.log)
}

// logPrefabSources reports which data tables are read from disk rather than
// the embedded copies.
func logPrefabSources(log *zap.Logger) {
	for _, name := range prefabs.Files {
		if mod, ok := prefabs.ModTime(name); ok {
			log.Debug("prefab from disk", zap.String("file", name), zap.Time("modified", mod))
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(waterColor)
	g.level.Draw(screen)
	g.hud.Draw(screen, g.level.Player())

	switch g.level.State() {
	case level.StatePaused:
		g.menu.Draw(screen)
	case level.StateGameOver:
		g.level.Modal().Draw(screen)
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Entities: %d",
			g.frames, ebiten.ActualFPS(), g.level.World().Count()))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
