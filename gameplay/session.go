// Package gameplay runs level attempts: gravity flips, star collection, the
// goal gate, fixed-step simulation, loading and the win flow.
package gameplay

import (
	"math/rand"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/ungravity/common"
	"github.com/milk9111/ungravity/level"
	"github.com/milk9111/ungravity/physics"
	"github.com/milk9111/ungravity/tmx"
)

// Ball defaults in map pixels.
const (
	BallStartX = 160.0
	BallStartY = 120.0
	BallRadius = 18.0
)

type SessionOptions struct {
	Gravity           float64
	Iterations        int
	RequiredStarRatio float64
	Rand              *rand.Rand
}

func DefaultSessionOptions() SessionOptions {
	return SessionOptions{
		Gravity:           common.Gravity,
		RequiredStarRatio: common.RequiredStarRatio,
	}
}

// Session is one level attempt. Its parts are created together and dropped
// together.
type Session struct {
	World    *physics.World
	Ball     *physics.Body
	Contacts *Contacts
	Gravity  *Gravity
}

func NewSession(opts SessionOptions) *Session {
	world := physics.NewWorld(physics.Options{Iterations: opts.Iterations})
	ball := world.CreateBall(
		cp.Vector{X: common.PxToM(BallStartX), Y: common.PxToM(BallStartY)},
		common.PxToM(BallRadius),
	)
	s := &Session{
		World:    world,
		Ball:     ball,
		Contacts: NewContacts(world, opts.RequiredStarRatio),
		Gravity:  NewGravity(world, opts.Gravity, opts.Rand),
	}
	s.Gravity.Apply()
	return s
}

// Build loads m into the session and resets collection for its stars.
func (s *Session) Build(m *tmx.Map) level.Result {
	res := level.Build(s.World, m, s.Ball)
	s.Contacts.Reset(res.StarsTotal)
	return res
}

// Step advances the world by dt and flushes collected stars. It reports
// whether the attempt was won during the step.
func (s *Session) Step(dt float64) bool {
	s.World.Step(dt)
	s.Contacts.FlushDestroyQueue()
	return s.Contacts.Won()
}
