package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// PixelsPerMeter is the one scale shared by the builder, the renderer and the ball.
	PixelsPerMeter = 30.0

	// Gravity is the default gravity magnitude in world units per second squared.
	Gravity = 9.8

	// RequiredStarRatio is the share of a level's stars needed to open the goal.
	RequiredStarRatio = 0.30

	FixedStep      = 1.0 / 60.0
	MaxAccumulated = 0.25
	MaxSubsteps    = 6
	MaxFrameDt     = 1.0 / 20.0
)
