package gameplay

import (
	"math/rand"

	"github.com/jakecoffman/cp"
)

type Direction int

const (
	Down Direction = iota
	Up
	Right
	Left
)

// directions is the flip table, in table order.
var directions = [...]struct {
	name string
	vec  func(mag float64) cp.Vector
}{
	Down:  {"DOWN", func(m float64) cp.Vector { return cp.Vector{X: 0, Y: m} }},
	Up:    {"UP", func(m float64) cp.Vector { return cp.Vector{X: 0, Y: -m} }},
	Right: {"RIGHT", func(m float64) cp.Vector { return cp.Vector{X: m, Y: 0} }},
	Left:  {"LEFT", func(m float64) cp.Vector { return cp.Vector{X: -m, Y: 0} }},
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directions) {
		return "UNKNOWN"
	}
	return directions[d].name
}

// GravityWorld is the part of a physics world gravity acts on.
type GravityWorld interface {
	SetGravity(g cp.Vector)
	WakeDynamic()
}

type Gravity struct {
	world     GravityWorld
	magnitude float64
	current   Direction
	rng       *rand.Rand
}

// NewGravity starts pointing down. A nil rng is seeded from 1.
func NewGravity(world GravityWorld, magnitude float64, rng *rand.Rand) *Gravity {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Gravity{world: world, magnitude: magnitude, rng: rng}
}

// Apply pushes the current direction to the world and wakes dynamic bodies,
// which otherwise ignore a gravity change while asleep.
func (g *Gravity) Apply() {
	g.world.SetGravity(g.Vector())
	g.world.WakeDynamic()
}

// RandomizeExcludingCurrent draws from the whole table until the draw differs
// from the current direction, then applies it.
func (g *Gravity) RandomizeExcludingCurrent() Direction {
	next := g.current
	for next == g.current {
		next = Direction(g.rng.Intn(len(directions)))
	}
	g.current = next
	g.Apply()
	return next
}

func (g *Gravity) SetDirection(d Direction) {
	if d < 0 || int(d) >= len(directions) {
		return
	}
	g.current = d
	g.Apply()
}

func (g *Gravity) Direction() Direction {
	return g.current
}

func (g *Gravity) Name() string {
	return g.current.String()
}

func (g *Gravity) Vector() cp.Vector {
	return directions[g.current].vec(g.magnitude)
}
