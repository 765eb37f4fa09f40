package gameplay

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/milk9111/ungravity/common"
	"github.com/milk9111/ungravity/levels"
	"github.com/milk9111/ungravity/progress"
)

// Signals are the edge-triggered inputs read once per frame.
type Signals struct {
	Flip    bool
	Pause   bool
	Restart bool
	Next    bool
}

type ControllerOptions struct {
	Catalog  *levels.Catalog
	Loader   MapLoader
	Progress *progress.Progress
	// Store may be nil, in which case progress stays in memory.
	Store      *progress.Store
	Logger     *log.Logger
	Session    SessionOptions
	Stepper    *Stepper
	MaxFrameDt float64
}

// Controller drives one frame of the game. All methods must be called from
// the same goroutine.
type Controller struct {
	ctx        context.Context
	catalog    *levels.Catalog
	progress   *progress.Progress
	store      *progress.Store
	logger     *log.Logger
	manager    *Manager
	stepper    *Stepper
	maxFrameDt float64

	run RunState
}

// NewController unlocks the first level and saves progress.
func NewController(ctx context.Context, opts ControllerOptions) *Controller {
	p := opts.Progress
	if p == nil {
		p = progress.New()
	}
	stepper := opts.Stepper
	if stepper == nil {
		stepper = NewStepper()
	}
	maxDt := opts.MaxFrameDt
	if maxDt <= 0 {
		maxDt = common.MaxFrameDt
	}

	c := &Controller{
		ctx:        ctx,
		catalog:    opts.Catalog,
		progress:   p,
		store:      opts.Store,
		logger:     opts.Logger,
		manager:    NewManager(opts.Catalog, opts.Loader, p, opts.Session, opts.Logger),
		stepper:    stepper,
		maxFrameDt: maxDt,
		run:        NewRunState(),
	}

	if first, ok := opts.Catalog.At(0); ok {
		progress.EnsureLevelUnlocked(p, first.ID)
		c.save()
	}
	return c
}

// Start requests the level at index, resetting the attempt.
func (c *Controller) Start(index int) {
	c.run.ResetForLevel()
	c.stepper.Reset()
	c.manager.Request(c.ctx, index)
}

func (c *Controller) Restart() {
	c.Start(c.manager.Index())
}

// Next starts the following level if it exists and is unlocked.
func (c *Controller) Next() bool {
	if !c.NextUnlocked() {
		return false
	}
	c.Start(c.manager.Index() + 1)
	return true
}

func (c *Controller) NextUnlocked() bool {
	next, ok := c.catalog.At(c.manager.Index() + 1)
	return ok && progress.IsLevelUnlocked(c.progress, next.ID)
}

func (c *Controller) Resume() {
	c.run.Resume()
}

func (c *Controller) TogglePause() {
	c.run.TogglePause()
}

// Update advances one frame. dt is clamped to the maximum frame time.
func (c *Controller) Update(dt float64, sig Signals) {
	if dt < 0 {
		dt = 0
	}
	if dt > c.maxFrameDt {
		dt = c.maxFrameDt
	}

	if st, ok := c.manager.Poll(); ok {
		if st.Err != nil {
			c.run.LoadFailed(st.Err)
		} else {
			c.run.Loaded(st.Info)
		}
	}

	if c.run.Mode != ModeLoading && sig.Pause {
		c.run.TogglePause()
	}
	if sig.Restart {
		c.Restart()
	}
	if sig.Next {
		c.Next()
	}

	c.run.Tick(dt)

	s := c.manager.Session()
	if c.run.Mode == ModePlaying && s != nil {
		if sig.Flip {
			d := s.Gravity.RandomizeExcludingCurrent()
			if c.logger != nil {
				c.logger.Debug("gravity flipped", "direction", d)
			}
		}

		c.stepper.Advance(dt, func(step float64) bool {
			if s.Step(step) {
				c.run.MarkWon()
				return true
			}
			return false
		})

		if c.logger != nil {
			for _, err := range s.Contacts.Errors() {
				c.logger.Warn("star removal failed", "err", err)
			}
		}
	}

	if c.run.Mode == ModeWon && !c.run.WinComputed && s != nil {
		c.run.WinComputed = true
		res := RecordWin(c.progress, c.catalog, c.manager.Index(), s.Contacts.State(), c.run.TimeMs)
		c.run.WinResult = &res
		if c.logger != nil {
			c.logger.Info("level complete", "level", res.LevelID, "score", res.Score, "rating", res.Rating, "time_ms", int(res.TimeMs))
		}
		c.save()
	}
}

// Reload restarts the current level, picking up edited map files.
func (c *Controller) Reload() {
	c.Restart()
}

func (c *Controller) save() {
	if c.store == nil {
		return
	}
	if err := c.store.Save(c.ctx, c.progress); err != nil && c.logger != nil {
		c.logger.Error("saving progress", "err", err)
	}
}

func (c *Controller) Session() *Session {
	return c.manager.Session()
}

func (c *Controller) Progress() *progress.Progress {
	return c.progress
}

func (c *Controller) Catalog() *levels.Catalog {
	return c.catalog
}

func (c *Controller) Mode() Mode {
	return c.run.Mode
}

// Close cancels a pending load.
func (c *Controller) Close() {
	c.manager.Close()
}

// Wait blocks until the pending load is applied. Used by headless callers.
func (c *Controller) Wait(ctx context.Context) error {
	st, err := c.manager.Wait(ctx)
	if err != nil {
		return err
	}
	if st.Err != nil {
		c.run.LoadFailed(st.Err)
	} else {
		c.run.Loaded(st.Info)
	}
	return nil
}
