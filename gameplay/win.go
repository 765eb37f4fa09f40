package gameplay

import (
	"github.com/milk9111/ungravity/levels"
	"github.com/milk9111/ungravity/progress"
	"github.com/milk9111/ungravity/scoring"
)

// WinResult is the scored outcome of a won attempt.
type WinResult struct {
	LevelID        string
	TimeMs         float64
	CollectedStars int
	TotalStars     int
	Rating         int
	scoring.Breakdown
	ParTimeMs float64
	MaxTimeMs float64
}

// RecordWin scores the attempt and merges it into p: the level is unlocked,
// its best record updated and the following level unlocked when one exists.
// Persisting p is left to the caller.
func RecordWin(p *progress.Progress, catalog *levels.Catalog, index int, state ContactState, timeMs float64) WinResult {
	entry, _ := catalog.At(index)
	tuning := catalog.Tuning(entry.ID)

	in := scoring.Input{
		CollectedStars: state.StarsCollected,
		TotalStars:     state.StarsTotal,
		TimeMs:         timeMs,
	}.WithTuning(tuning)

	res := WinResult{
		LevelID:        entry.ID,
		TimeMs:         timeMs,
		CollectedStars: state.StarsCollected,
		TotalStars:     state.StarsTotal,
		Rating:         scoring.ComputeRating(in),
		Breakdown:      scoring.ComputeScore(in),
		ParTimeMs:      tuning.ParTimeMs,
		MaxTimeMs:      tuning.MaxTimeMs,
	}

	progress.EnsureLevelUnlocked(p, entry.ID)
	progress.UpdateLevelBest(p, entry.ID, progress.Result{
		Score:          res.Score,
		Rating:         res.Rating,
		TimeMs:         res.TimeMs,
		CollectedStars: res.CollectedStars,
		StarsTotal:     res.TotalStars,
	})
	if next, ok := catalog.At(index + 1); ok {
		progress.EnsureLevelUnlocked(p, next.ID)
	}
	return res
}
