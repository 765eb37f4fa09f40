package render

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/ungravity/common"
	"github.com/milk9111/ungravity/gameplay"
)

const hudMargin = 8

// HUDLine is the one-line status shown above the world.
func HUDLine(s gameplay.Snapshot) string {
	parts := []string{fmt.Sprintf("Level %d/%d", s.LevelIndex+1, max(s.LevelCount, 1))}

	if s.StarsTotal > 0 {
		parts = append(parts, fmt.Sprintf("Stars: %d/%d", s.StarsCollected, s.StarsTotal))
		if s.GoalEnabled {
			parts = append(parts, "Goal: READY")
		} else {
			parts = append(parts, fmt.Sprintf("Goal: locked (%d/%d)", s.StarsCollected, s.RequiredStars))
		}
	} else {
		parts = append(parts, "Stars: -")
	}

	gravity := s.Gravity
	if gravity == "" {
		gravity = "-"
	}
	parts = append(parts, "Gravity: "+gravity, "Time: "+common.FormatTime(s.TimeMs))

	switch s.Mode {
	case gameplay.ModePaused:
		parts = append(parts, "Paused")
	case gameplay.ModeWon:
		parts = append(parts, "WIN")
		if s.Win != nil {
			parts = append(parts, fmt.Sprintf("%d pts", s.Win.Score), fmt.Sprintf("%d/3", s.Win.Rating))
		}
	}

	if s.Info != "" {
		parts = append(parts, s.Info)
	}
	return strings.Join(parts, " · ")
}

func DrawHUD(screen *ebiten.Image, s gameplay.Snapshot) {
	ebitenutil.DebugPrintAt(screen, HUDLine(s), hudMargin, hudMargin)
}
