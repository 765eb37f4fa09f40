package render

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/ungravity/gameplay"
	"github.com/milk9111/ungravity/physics"
	"github.com/milk9111/ungravity/scoring"
)

func TestCameraRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		cam  *Camera
		v    cp.Vector
		sx   float64
		sy   float64
	}{
		{"identity", NewCamera(), cp.Vector{X: 2, Y: 3}, 60, 90},
		{"panned", &Camera{X: 1, Y: -1, Zoom: 1}, cp.Vector{X: 2, Y: 3}, 30, 120},
		{"zoomed", &Camera{Zoom: 2}, cp.Vector{X: 1, Y: 1}, 60, 60},
		{"zero_zoom_is_one", &Camera{}, cp.Vector{X: 1, Y: 0}, 30, 0},
		{"nil", nil, cp.Vector{X: 1, Y: 1}, 30, 30},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sx, sy := c.cam.WorldToScreen(c.v)
			if math.Abs(sx-c.sx) > 1e-9 || math.Abs(sy-c.sy) > 1e-9 {
				t.Fatalf("WorldToScreen = (%v, %v), want (%v, %v)", sx, sy, c.sx, c.sy)
			}
			back := c.cam.ScreenToWorld(sx, sy)
			if math.Abs(back.X-c.v.X) > 1e-9 || math.Abs(back.Y-c.v.Y) > 1e-9 {
				t.Fatalf("ScreenToWorld = %v, want %v", back, c.v)
			}
		})
	}
}

func TestHUDLine(t *testing.T) {
	cases := []struct {
		name string
		snap gameplay.Snapshot
		want string
	}{
		{
			name: "locked",
			snap: gameplay.Snapshot{
				Mode: gameplay.ModePlaying, LevelIndex: 0, LevelCount: 3,
				StarsCollected: 0, StarsTotal: 3, RequiredStars: 1,
				Gravity: "DOWN", TimeMs: 1500, Info: "TMX: map101 · layers=2 · objects=11",
			},
			want: "Level 1/3 · Stars: 0/3 · Goal: locked (0/1) · Gravity: DOWN · Time: 00:01.5 · TMX: map101 · layers=2 · objects=11",
		},
		{
			name: "paused_ready",
			snap: gameplay.Snapshot{
				Mode: gameplay.ModePaused, LevelIndex: 1, LevelCount: 3,
				StarsCollected: 2, StarsTotal: 4, RequiredStars: 2, GoalEnabled: true,
				Gravity: "LEFT", TimeMs: 65000,
			},
			want: "Level 2/3 · Stars: 2/4 · Goal: READY · Gravity: LEFT · Time: 01:05.0 · Paused",
		},
		{
			name: "won",
			snap: gameplay.Snapshot{
				Mode: gameplay.ModeWon, LevelIndex: 2, LevelCount: 3,
				StarsCollected: 6, StarsTotal: 6, RequiredStars: 2, GoalEnabled: true,
				Gravity: "UP", TimeMs: 30000,
				Win: &gameplay.WinResult{Rating: 3, Breakdown: scoringBreakdown(12000)},
			},
			want: "Level 3/3 · Stars: 6/6 · Goal: READY · Gravity: UP · Time: 00:30.0 · WIN · 12000 pts · 3/3",
		},
		{
			name: "loading",
			snap: gameplay.Snapshot{Mode: gameplay.ModeLoading, LevelCount: 3, Info: "TMX: loading..."},
			want: "Level 1/3 · Stars: - · Gravity: - · Time: 00:00.0 · TMX: loading...",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := HUDLine(c.snap); got != c.want {
				t.Fatalf("HUDLine =\n%q\nwant\n%q", got, c.want)
			}
		})
	}
}

func TestBodyColor(t *testing.T) {
	w := physics.NewWorld(physics.Options{})
	ball := w.CreateBall(cp.Vector{}, 0.5)
	wall := w.CreateBox(cp.Vector{X: 3}, 1, 1, 0, physics.Tag{Kind: physics.KindWall})
	star := w.CreateBox(cp.Vector{X: 6}, 1, 1, 0, physics.Tag{Kind: physics.KindStar})
	goal := w.CreateBox(cp.Vector{X: 9}, 1, 1, 0, physics.Tag{Kind: physics.KindGoal})

	cases := []struct {
		name string
		body *physics.Body
		open bool
		want cp.FColor
	}{
		{"ball", ball, false, colorBall},
		{"wall", wall, false, colorStatic},
		{"star", star, false, colorSensor},
		{"goal_locked", goal, false, colorGoalLocked},
		{"goal_open", goal, true, colorGoalOpen},
		{"nil", nil, false, colorUnknown},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := BodyColor(c.body, c.open); got != c.want {
				t.Fatalf("BodyColor = %v, want %v", got, c.want)
			}
		})
	}
}

func scoringBreakdown(score int) scoring.Breakdown {
	return scoring.Breakdown{Score: score}
}
