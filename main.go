package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/milk9111/topdown/assets"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/config"
	"github.com/milk9111/topdown/input"
	"github.com/milk9111/topdown/level"
	"github.com/milk9111/topdown/levels"
	"github.com/milk9111/topdown/prefabs"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the TOML config file")
	debug := flag.Bool("debug", false, "enable debug mode")
	strict := flag.Bool("strict", false, "reject unknown entity codes in the map")
	watch := flag.Bool("watch", false, "reload prefabs from disk when they change")
	mapDir := flag.String("maps", "", "directory of map CSVs (default: embedded map)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg.Dev.Debug = cfg.Dev.Debug || *debug
	cfg.Dev.WatchPrefabs = cfg.Dev.WatchPrefabs || *watch
	cfg.World.StrictMapCodes = cfg.World.StrictMapCodes || *strict
	if *mapDir != "" {
		cfg.World.MapDir = *mapDir
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log, *baseMonitor); err != nil {
		log.Fatal("topdown", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger, baseMonitor bool) error {
	catalog, err := prefabs.LoadCatalog()
	if err != nil {
		return err
	}
	logPrefabSources(log)

	var m *levels.Map
	if cfg.World.MapDir != "" {
		m, err = levels.LoadMap(os.DirFS(cfg.World.MapDir), ".")
	} else {
		m, err = levels.LoadDefault()
	}
	if err != nil {
		return err
	}

	var lib *assets.Library
	if cfg.World.AssetsDir != "" {
		lib, err = assets.Load(os.DirFS(cfg.World.AssetsDir), ".")
	} else {
		lib, err = assets.LoadDefault()
	}
	if err != nil {
		return err
	}
	if err := lib.Require(level.RequiredAssets(catalog)...); err != nil {
		return err
	}

	var watcher *prefabs.Watcher
	if cfg.Dev.WatchPrefabs {
		watcher, err = prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Warn("prefab watcher disabled", zap.Error(err))
			watcher = nil
		} else {
			defer func() { _ = watcher.Close() }()
		}
	}

	deps := level.Deps{
		Map:         m,
		Catalog:     catalog,
		Graphics:    lib,
		Log:         log,
		TileSize:    float64(cfg.World.TileSize),
		Width:       float64(cfg.Window.Width),
		Height:      float64(cfg.Window.Height),
		StrictCodes: cfg.World.StrictMapCodes,
	}
	game, err := NewGame(deps, input.NewKeyboard(), lib, watcher, log, cfg.Dev.Debug)
	if err != nil {
		return err
	}

	if baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(common.FPS)

	log.Info("starting",
		zap.Int("rows", m.Rows),
		zap.Int("cols", m.Cols),
		zap.Strings("monsters", catalog.MonsterNames()),
	)
	return ebiten.RunGame(game)
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(cfg.Level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)

	return zapCfg.Build()
}
