// Package render draws the physics world and the HUD for debugging.
package render

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/ungravity/common"
)

// Camera maps world units to screen pixels. X and Y are the world position
// at the top-left of the screen.
type Camera struct {
	X    float64
	Y    float64
	Zoom float64
}

func NewCamera() *Camera {
	return &Camera{Zoom: 1}
}

func (c *Camera) zoom() float64 {
	if c == nil || c.Zoom <= 0 {
		return 1
	}
	return c.Zoom
}

func (c *Camera) origin() (float64, float64) {
	if c == nil {
		return 0, 0
	}
	return c.X, c.Y
}

func (c *Camera) WorldToScreen(v cp.Vector) (float64, float64) {
	x, y := c.origin()
	s := c.zoom() * common.PixelsPerMeter
	return (v.X - x) * s, (v.Y - y) * s
}

func (c *Camera) ScreenToWorld(sx, sy float64) cp.Vector {
	x, y := c.origin()
	s := c.zoom() * common.PixelsPerMeter
	return cp.Vector{X: sx/s + x, Y: sy/s + y}
}

// Scale returns screen pixels per world unit.
func (c *Camera) Scale() float64 {
	return c.zoom() * common.PixelsPerMeter
}
