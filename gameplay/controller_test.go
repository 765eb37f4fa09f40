package gameplay

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/milk9111/ungravity/physics"
	"github.com/milk9111/ungravity/progress"
	"github.com/milk9111/ungravity/tmx"
)

// dropMap spawns the ball on its only star, above the goal.
func dropMap() *tmx.Map {
	return &tmx.Map{Layers: []tmx.ObjectLayer{{Name: "Level", Objects: []tmx.Object{
		{ID: 1, Name: "spawn", X: 135, Y: 105, Width: 30, Height: 30},
		{ID: 2, Name: "star", X: 130, Y: 100, Width: 40, Height: 40},
		{ID: 3, Name: "goal", X: 100, Y: 300, Width: 100, Height: 60},
	}}}}
}

func newTestController(t *testing.T, maps map[string]*tmx.Map) (*Controller, *progress.Store) {
	t.Helper()
	store := progress.NewStore(progress.NewMemoryBackend(), quietLogger())
	c := NewController(context.Background(), ControllerOptions{
		Catalog:  testCatalogT(t),
		Loader:   &gatedLoader{maps: maps},
		Progress: progress.New(),
		Store:    store,
		Logger:   quietLogger(),
		Session:  DefaultSessionOptions(),
	})
	t.Cleanup(c.Close)
	return c, store
}

func startLevel(t *testing.T, c *Controller, index int) {
	t.Helper()
	c.Start(index)
	if err := c.Wait(waitCtx(t)); err != nil {
		t.Fatalf("Wait: %v", err)
	}
}

func runUntil(c *Controller, frames int, done func() bool) int {
	for i := 0; i < frames; i++ {
		if done() {
			return i
		}
		c.Update(1.0/60, Signals{})
	}
	return frames
}

func TestControllerUnlocksFirstLevelOnStart(t *testing.T) {
	c, store := newTestController(t, nil)
	if !progress.IsLevelUnlocked(c.Progress(), "a") {
		t.Fatalf("first level not unlocked")
	}
	p, err := store.Load(context.Background())
	if err != nil || !progress.IsLevelUnlocked(p, "a") {
		t.Fatalf("unlock not saved: %v", err)
	}
}

func TestControllerPlaysToWin(t *testing.T) {
	c, store := newTestController(t, map[string]*tmx.Map{"a.tmx": dropMap(), "b.tmx": dropMap()})
	startLevel(t, c, 0)

	if c.Mode() != ModePlaying {
		t.Fatalf("mode after load = %s", c.Mode())
	}
	if c.Next() {
		t.Fatalf("next accepted while level b is locked")
	}

	frames := runUntil(c, 600, func() bool { return c.Mode() == ModeWon })
	if c.Mode() != ModeWon {
		t.Fatalf("level not won after %d frames: %+v", frames, c.Snapshot())
	}

	snap := c.Snapshot()
	if snap.Win == nil {
		t.Fatalf("win result missing")
	}
	if snap.StarsCollected != 1 || snap.Win.CollectedStars != 1 || snap.Win.TotalStars != 1 {
		t.Fatalf("unexpected stars in %+v", snap)
	}
	if snap.Win.Score != 2000 || snap.Win.Rating != 3 || snap.Win.ParTimeMs != 25000 {
		t.Fatalf("unexpected score: %+v", *snap.Win)
	}
	if !snap.NextUnlocked {
		t.Fatalf("next level should be unlocked after a win")
	}
	if c.Session().World.Count(physics.KindStar) != 0 {
		t.Fatalf("collected star still in the world")
	}

	// The win flow runs once; the timer is frozen.
	timeAtWin := snap.TimeMs
	for i := 0; i < 10; i++ {
		c.Update(1.0/60, Signals{Pause: true, Flip: true})
	}
	if c.Snapshot().TimeMs != timeAtWin || c.Mode() != ModeWon {
		t.Fatalf("state changed after win")
	}

	saved, err := store.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	rec := saved.Levels["a"]
	if rec == nil || *rec.BestScore != 2000 || rec.BestRating != 3 {
		t.Fatalf("best record not saved: %+v", rec)
	}
	if !progress.IsLevelUnlocked(saved, "b") {
		t.Fatalf("level b unlock not saved")
	}

	if !c.Next() {
		t.Fatalf("next refused")
	}
	if c.Mode() != ModeLoading || c.Snapshot().LevelIndex != 1 {
		t.Fatalf("next did not start loading level b")
	}
}

func TestControllerPauseAndFlip(t *testing.T) {
	c, _ := newTestController(t, map[string]*tmx.Map{"a.tmx": starsMap(3)})
	startLevel(t, c, 0)

	c.Update(1.0/60, Signals{})
	before := c.Snapshot()
	c.Update(1.0/60, Signals{Flip: true})
	if c.Snapshot().Gravity == before.Gravity {
		t.Fatalf("flip did not change gravity")
	}

	c.Update(1.0/60, Signals{Pause: true})
	if c.Mode() != ModePaused {
		t.Fatalf("pause signal ignored")
	}
	paused := c.Snapshot()
	c.Update(1.0/60, Signals{Flip: true})
	after := c.Snapshot()
	if after.TimeMs != paused.TimeMs || after.Gravity != paused.Gravity {
		t.Fatalf("paused frame advanced the game")
	}

	c.Update(1.0/60, Signals{Pause: true})
	if c.Mode() != ModePlaying {
		t.Fatalf("second pause did not resume")
	}
}

func TestControllerClampsFrameTime(t *testing.T) {
	c, _ := newTestController(t, map[string]*tmx.Map{"a.tmx": starsMap(1)})
	startLevel(t, c, 0)
	c.Update(10, Signals{})
	if got := c.Snapshot().TimeMs; math.Abs(got-50) > 1e-9 {
		t.Fatalf("TimeMs after a long frame = %v, want 50", got)
	}
}

func TestControllerRestartResetsAttempt(t *testing.T) {
	c, _ := newTestController(t, map[string]*tmx.Map{"a.tmx": starsMap(2)})
	startLevel(t, c, 0)
	for i := 0; i < 5; i++ {
		c.Update(1.0/60, Signals{})
	}
	old := c.Session()

	c.Update(1.0/60, Signals{Restart: true})
	if c.Mode() != ModeLoading || c.Snapshot().TimeMs != 0 {
		t.Fatalf("restart did not reset the attempt: %+v", c.Snapshot())
	}
	if err := c.Wait(waitCtx(t)); err != nil {
		t.Fatal(err)
	}
	if c.Session() == old || c.Mode() != ModePlaying {
		t.Fatalf("restart did not build a fresh session")
	}
}

func TestControllerLoadFailureParks(t *testing.T) {
	c, _ := newTestController(t, nil)
	startLevel(t, c, 0)

	snap := c.Snapshot()
	if snap.Mode != ModePaused || snap.Err == nil {
		t.Fatalf("failed load should park in paused: %+v", snap)
	}
	if !strings.HasPrefix(snap.Info, "TMX error: ") {
		t.Fatalf("info = %q", snap.Info)
	}

	c.Update(1.0/60, Signals{Pause: true, Flip: true})
	if c.Mode() != ModePaused || c.Snapshot().TimeMs != 0 {
		t.Fatalf("failed load must stay parked")
	}
}
