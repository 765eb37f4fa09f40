package common

import (
	"fmt"
	"math"
)

// FormatTime renders milliseconds as mm:ss.t.
func FormatTime(ms float64) string {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || ms < 0 {
		ms = 0
	}
	total := int64(ms)
	sec := total / 1000
	return fmt.Sprintf("%02d:%02d.%d", sec/60, sec%60, (total%1000)/100)
}
