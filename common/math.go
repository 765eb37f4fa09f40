package common

import "math"

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// PxToM converts map pixels to world units.
func PxToM(px float64) float64 {
	return px / PixelsPerMeter
}
