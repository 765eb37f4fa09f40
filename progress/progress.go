// Package progress keeps unlocked levels and best results.
package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// Key is the storage key the whole document lives under.
const Key = "ungravity_progress_v1"

const Version = 1

var ErrMalformed = errors.New("progress: malformed data")

// BestRecord is the best result per field across every win on a level.
// Nil pointers mean no value has been recorded.
type BestRecord struct {
	BestScore          *int     `json:"bestScore"`
	BestRating         int      `json:"bestRating"`
	BestTimeMs         *float64 `json:"bestTimeMs"`
	BestStarsCollected int      `json:"bestStarsCollected"`
	StarsTotal         *int     `json:"starsTotal"`
}

type Progress struct {
	Version  int                    `json:"version"`
	Unlocked map[string]bool        `json:"unlocked"`
	Levels   map[string]*BestRecord `json:"levels"`
}

// Result is one finished attempt.
type Result struct {
	Score          int
	Rating         int
	TimeMs         float64
	CollectedStars int
	StarsTotal     int
}

func New() *Progress {
	return &Progress{
		Version:  Version,
		Unlocked: make(map[string]bool),
		Levels:   make(map[string]*BestRecord),
	}
}

func EnsureLevelUnlocked(p *Progress, id string) {
	if p.Unlocked == nil {
		p.Unlocked = make(map[string]bool)
	}
	p.Unlocked[id] = true
}

func IsLevelUnlocked(p *Progress, id string) bool {
	return p != nil && p.Unlocked[id]
}

// UpdateLevelBest merges r into the record for id and returns the result.
// Merging is order independent except for StarsTotal, which takes the
// latest value.
func UpdateLevelBest(p *Progress, id string, r Result) BestRecord {
	if p.Levels == nil {
		p.Levels = make(map[string]*BestRecord)
	}

	var next BestRecord
	if prev := p.Levels[id]; prev != nil {
		next = *prev
	}

	if r.Rating > next.BestRating {
		next.BestRating = r.Rating
	}
	if next.BestScore == nil || r.Score > *next.BestScore {
		score := r.Score
		next.BestScore = &score
	}
	if finite(r.TimeMs) && (next.BestTimeMs == nil || r.TimeMs < *next.BestTimeMs) {
		ms := r.TimeMs
		next.BestTimeMs = &ms
	}
	if r.CollectedStars > next.BestStarsCollected {
		next.BestStarsCollected = r.CollectedStars
	}
	total := r.StarsTotal
	next.StarsTotal = &total

	p.Levels[id] = &next
	return next
}

func Encode(p *Progress) ([]byte, error) {
	out := *p
	out.Version = Version
	if out.Unlocked == nil {
		out.Unlocked = map[string]bool{}
	}
	if out.Levels == nil {
		out.Levels = map[string]*BestRecord{}
	}
	data, err := json.Marshal(&out)
	if err != nil {
		return nil, fmt.Errorf("encode progress: %w", err)
	}
	return data, nil
}

// Decode always returns a valid document. Anything it had to drop or coerce
// is reported as an error wrapping ErrMalformed. Empty input is not an error.
func Decode(data []byte) (*Progress, error) {
	p := New()
	if len(data) == 0 {
		return p, nil
	}

	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil || root == nil {
		return p, fmt.Errorf("%w: not an object", ErrMalformed)
	}

	var problems []string

	if raw, ok := root["unlocked"]; ok {
		var unlocked map[string]json.RawMessage
		if err := json.Unmarshal(raw, &unlocked); err != nil {
			problems = append(problems, "unlocked")
		}
		for id, v := range unlocked {
			var b bool
			if json.Unmarshal(v, &b) == nil && b {
				p.Unlocked[id] = true
			}
		}
	}

	if raw, ok := root["levels"]; ok {
		var levels map[string]json.RawMessage
		if err := json.Unmarshal(raw, &levels); err != nil {
			problems = append(problems, "levels")
		}
		for id, v := range levels {
			rec, clean, ok := decodeRecord(v)
			if !ok {
				problems = append(problems, "levels."+id)
				continue
			}
			if !clean {
				problems = append(problems, "levels."+id+" fields")
			}
			p.Levels[id] = rec
		}
	}

	if len(problems) > 0 {
		return p, fmt.Errorf("%w: %v", ErrMalformed, problems)
	}
	return p, nil
}

func decodeRecord(raw json.RawMessage) (rec *BestRecord, clean bool, ok bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, false, false
	}

	clean = true
	rec = &BestRecord{}
	read := func(name string) (float64, bool) {
		v, present := fields[name]
		if !present || string(v) == "null" {
			return 0, false
		}
		var f float64
		if err := json.Unmarshal(v, &f); err != nil {
			clean = false
			return 0, false
		}
		return f, true
	}

	if v, ok := read("bestScore"); ok {
		n := int(math.Round(v))
		rec.BestScore = &n
	}
	if v, ok := read("bestRating"); ok {
		rec.BestRating = int(v)
	}
	if v, ok := read("bestTimeMs"); ok {
		rec.BestTimeMs = &v
	}
	if v, ok := read("bestStarsCollected"); ok {
		rec.BestStarsCollected = int(v)
	}
	if v, ok := read("starsTotal"); ok {
		n := int(v)
		rec.StarsTotal = &n
	}
	return rec, clean, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
