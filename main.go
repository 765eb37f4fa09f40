package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/ungravity/config"
	"github.com/milk9111/ungravity/gameplay"
	"github.com/milk9111/ungravity/levels"
	"github.com/milk9111/ungravity/progress"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (default: search ~/.ungravity, ./configs)")
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "", "level id or index to start on")
	seed := flag.Int64("seed", 0, "gravity flip seed (0 uses the config, then the clock)")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "ungravity",
	})

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("loading config", "err", err)
	}
	if lvl, err := log.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(lvl)
	}
	if *debug {
		logger.SetLevel(log.DebugLevel)
	}

	catalog, loader, err := levels.Open(cfg.Levels.Catalog, cfg.Levels.MapsDir)
	if err != nil {
		logger.Fatal("loading levels", "err", err)
	}

	ctx := context.Background()
	store := openStore(cfg.Storage, logger)
	prog, err := store.Load(ctx)
	if err != nil {
		logger.Error("loading progress", "err", err)
	}

	if *seed == 0 {
		*seed = cfg.Gameplay.Seed
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	controller := gameplay.NewController(ctx, gameplay.ControllerOptions{
		Catalog:  catalog,
		Loader:   loader,
		Progress: prog,
		Store:    store,
		Logger:   logger,
		Session: gameplay.SessionOptions{
			Gravity:           cfg.Physics.Gravity,
			Iterations:        cfg.Physics.Iterations,
			RequiredStarRatio: cfg.Gameplay.RequiredStarRatio,
			Rand:              rand.New(rand.NewSource(*seed)),
		},
		Stepper: &gameplay.Stepper{
			Step:           cfg.Physics.FixedStep,
			MaxAccumulated: cfg.Physics.MaxAccumulated,
			MaxSubsteps:    cfg.Physics.MaxSubsteps,
		},
		MaxFrameDt: cfg.Physics.MaxFrameDt,
	})
	defer controller.Close()

	var watcher *levels.Watcher
	if cfg.Levels.Watch && cfg.Levels.MapsDir != "" {
		watcher, err = levels.NewWatcher(levels.WatchOptions{}, cfg.Levels.MapsDir)
		if err != nil {
			logger.Warn("level hot reload disabled", "err", err)
		} else {
			defer watcher.Close()
		}
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	game := NewGame(controller, watcher, logger, *debug)
	game.Start(startIndex(catalog, *levelName))

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game exited", "err", err)
	}
	if err := store.Close(); err != nil {
		logger.Error("closing progress store", "err", err)
	}
}

// openStore falls back to an in-memory store when the configured backend
// cannot be opened, so the game stays playable without saving.
func openStore(cfg config.StorageConfig, logger *log.Logger) *progress.Store {
	b, err := progress.OpenBackend(string(cfg.Backend), cfg.Path)
	if err != nil {
		logger.Warn("progress will not be saved", "backend", cfg.Backend, "err", err)
		b = progress.NewMemoryBackend()
	}
	return progress.NewStore(b, logger)
}

func startIndex(catalog *levels.Catalog, name string) int {
	if name == "" {
		return 0
	}
	if i := catalog.Index(name); i >= 0 {
		return i
	}
	if i, err := strconv.Atoi(name); err == nil {
		return i
	}
	return 0
}
