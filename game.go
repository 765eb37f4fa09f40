package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/ungravity/common"
	"github.com/milk9111/ungravity/gameplay"
	"github.com/milk9111/ungravity/input"
	"github.com/milk9111/ungravity/levels"
	"github.com/milk9111/ungravity/render"
)

type Game struct {
	frames int
	debug  bool
	quit   bool
	last   time.Time

	controller *gameplay.Controller
	input      *input.Input
	camera     *render.Camera
	overlay    *Overlay
	watcher    *levels.Watcher
	logger     *log.Logger

	snapshot gameplay.Snapshot
}

// NewGame wires the controller to input and drawing. watcher may be nil.
func NewGame(controller *gameplay.Controller, watcher *levels.Watcher, logger *log.Logger, debug bool) *Game {
	g := &Game{
		debug:      debug,
		controller: controller,
		input:      input.New(),
		camera:     render.NewCamera(),
		watcher:    watcher,
		logger:     logger,
	}
	g.overlay = NewOverlay(OverlayActions{
		Resume:  controller.Resume,
		Restart: func() { g.input.Press(gameplay.Signals{Restart: true}) },
		Next:    func() { g.input.Press(gameplay.Signals{Next: true}) },
		Quit:    func() { g.quit = true },
	})
	return g
}

func (g *Game) Start(index int) {
	g.controller.Start(index)
}

func (g *Game) Update() error {
	g.frames++
	if g.quit {
		return ebiten.Termination
	}

	now := time.Now()
	dt := common.FixedStep
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now

	g.input.Update()
	g.overlay.UI.Update()

	if g.watcher != nil {
		if path, ok := g.watcher.Poll(); ok {
			g.logger.Info("level changed, reloading", "path", path)
			g.controller.Reload()
		}
	}

	sig := g.input.Consume()
	if g.overlay.Visible() {
		// Clicks on the panel must not flip gravity underneath it.
		sig.Flip = false
	}
	g.controller.Update(dt, sig)

	g.snapshot = g.controller.Snapshot()
	g.overlay.Sync(g.snapshot)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	render.DrawSession(screen, g.controller.Session(), g.camera)
	render.DrawHUD(screen, g.snapshot)

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()), 8, common.BaseHeight-20)
	}

	g.overlay.UI.Draw(screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
