// Package scoring turns a finished run into a score and a 1-3 rating.
//
// Stars always score. A time bonus of up to the same magnitude as the star
// total is added on top, shrinking linearly from par time to max time.
// Nothing in this package has side effects.
package scoring

import (
	"math"

	"github.com/milk9111/ungravity/common"
)

const (
	Version    = 1
	StarPoints = 1000
)

// Tuning holds the per-level time bounds used for the bonus.
type Tuning struct {
	ParTimeMs float64 `yaml:"par_time_ms" json:"parTimeMs"`
	MaxTimeMs float64 `yaml:"max_time_ms" json:"maxTimeMs"`
}

// DefaultTuning applies to levels without their own entry.
var DefaultTuning = Tuning{ParTimeMs: 30000, MaxTimeMs: 120000}

// Input describes a finished attempt.
type Input struct {
	CollectedStars int
	TotalStars     int
	TimeMs         float64
	ParTimeMs      float64
	MaxTimeMs      float64
}

// WithTuning returns in with the time bounds of t.
func (in Input) WithTuning(t Tuning) Input {
	in.ParTimeMs = t.ParTimeMs
	in.MaxTimeMs = t.MaxTimeMs
	return in
}

type Breakdown struct {
	Score      int
	StarsScore int
	TimeBonus  int
	MaxScore   int
	TimeFactor float64
}

// TimeFactor is 1 at or under par, 0 at or over max, linear in between.
func TimeFactor(timeMs, parTimeMs, maxTimeMs float64) float64 {
	if timeMs <= parTimeMs {
		return 1
	}
	if timeMs >= maxTimeMs {
		return 0
	}
	t := (timeMs - parTimeMs) / (maxTimeMs - parTimeMs)
	return 1 - common.Clamp01(t)
}

func ComputeScore(in Input) Breakdown {
	starsScore := in.CollectedStars * StarPoints
	maxStarsScore := in.TotalStars * StarPoints

	tf := TimeFactor(in.TimeMs, in.ParTimeMs, in.MaxTimeMs)
	timeBonus := int(math.Round(float64(maxStarsScore) * tf))

	return Breakdown{
		Score:      starsScore + timeBonus,
		StarsScore: starsScore,
		TimeBonus:  timeBonus,
		MaxScore:   maxStarsScore + maxStarsScore,
		TimeFactor: tf,
	}
}

// ComputeRating returns 1, 2 or 3. A level without stars is always 3, and so
// is a run that collected every star at or under par.
func ComputeRating(in Input) int {
	if in.TotalStars <= 0 {
		return 3
	}
	if in.CollectedStars == in.TotalStars && in.TimeMs <= in.ParTimeMs {
		return 3
	}

	b := ComputeScore(in)
	normalized := 0.0
	if b.MaxScore > 0 {
		normalized = float64(b.Score) / float64(b.MaxScore)
	}

	switch {
	case normalized >= 0.75:
		return 3
	case normalized >= 0.45:
		return 2
	default:
		return 1
	}
}
