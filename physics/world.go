// Package physics wraps a Chipmunk space with tagged bodies and per-step
// contact batches.
package physics

import (
	"errors"
	"math"

	"github.com/jakecoffman/cp"
)

var ErrBodyNotInWorld = errors.New("physics: body not in world")

const (
	collisionTypeBall cp.CollisionType = iota + 1
	collisionTypeWall
	collisionTypeGoal
	collisionTypeStar
)

const (
	BallDensity        = 1.0
	BallFriction       = 0.2
	BallRestitution    = 0.2
	BallLinearDamping  = 0.05
	BallAngularDamping = 0.2
	WallFriction       = 0.35
	WallRestitution    = 0.15

	defaultIterations = 10
)

// Contact is a begin-contact between two registered bodies.
type Contact struct {
	A *Body
	B *Body
}

// World owns a cp space and the bodies registered in it. It is not safe for
// concurrent use.
type World struct {
	space   *cp.Space
	gravity cp.Vector

	bodies      []*Body
	shapeToBody map[*cp.Shape]*Body

	pending    []Contact
	onContacts func([]Contact)
}

type Options struct {
	Gravity    cp.Vector
	Iterations int
}

func NewWorld(opts Options) *World {
	space := cp.NewSpace()
	iterations := opts.Iterations
	if iterations <= 0 {
		iterations = defaultIterations
	}
	space.Iterations = uint(iterations)
	space.SetGravity(opts.Gravity)

	w := &World{
		space:       space,
		gravity:     opts.Gravity,
		shapeToBody: make(map[*cp.Shape]*Body),
	}
	w.setupHandlers()
	return w
}

// Space returns the underlying cp space.
func (w *World) Space() *cp.Space {
	return w.space
}

func (w *World) Gravity() cp.Vector {
	return w.gravity
}

func (w *World) SetGravity(g cp.Vector) {
	w.gravity = g
	w.space.SetGravity(g)
}

// OnContacts sets the callback that receives each step's begin contacts.
// The callback runs after the step completes so it may not remove bodies
// itself without going through the world.
func (w *World) OnContacts(fn func([]Contact)) {
	w.onContacts = fn
}

// Step advances the simulation by dt seconds and delivers the contacts that
// began during the step as one batch.
func (w *World) Step(dt float64) {
	w.pending = w.pending[:0]
	w.space.Step(dt)
	if w.onContacts == nil || len(w.pending) == 0 {
		return
	}
	batch := make([]Contact, len(w.pending))
	copy(batch, w.pending)
	w.onContacts(batch)
}

// Bodies returns the registered bodies in creation order.
func (w *World) Bodies() []*Body {
	out := make([]*Body, len(w.bodies))
	copy(out, w.bodies)
	return out
}

func (w *World) Len() int {
	return len(w.bodies)
}

// Count returns the number of registered bodies of kind k.
func (w *World) Count(k Kind) int {
	n := 0
	for _, b := range w.bodies {
		if b.tag.Kind == k {
			n++
		}
	}
	return n
}

// BodyForShape returns the registered body owning s.
func (w *World) BodyForShape(s *cp.Shape) (*Body, bool) {
	b, ok := w.shapeToBody[s]
	return b, ok
}

func (w *World) Contains(b *Body) bool {
	if b == nil {
		return false
	}
	for _, it := range w.bodies {
		if it == b {
			return true
		}
	}
	return false
}

// CreateBall adds a dynamic circle centred on pos, in world units.
func (w *World) CreateBall(pos cp.Vector, radius float64) *Body {
	mass := BallDensity * math.Pi * radius * radius
	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
	body.SetPosition(pos)
	body.SetVelocityUpdateFunc(dampedVelocity(BallLinearDamping, BallAngularDamping))

	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetFriction(BallFriction)
	shape.SetElasticity(BallRestitution)
	shape.SetCollisionType(collisionTypeBall)

	return w.register(body, shape, Tag{Kind: KindBall})
}

// CreateBox adds a static box centred on pos. Goal and star boxes are sensors.
func (w *World) CreateBox(pos cp.Vector, width, height, angle float64, tag Tag) *Body {
	body := cp.NewStaticBody()
	body.SetPosition(pos)
	body.SetAngle(angle)

	shape := cp.NewBox(body, width, height, 0)
	switch tag.Kind {
	case KindWall:
		shape.SetFriction(WallFriction)
		shape.SetElasticity(WallRestitution)
		shape.SetCollisionType(collisionTypeWall)
	case KindGoal:
		shape.SetSensor(true)
		shape.SetCollisionType(collisionTypeGoal)
	case KindStar:
		shape.SetSensor(true)
		shape.SetCollisionType(collisionTypeStar)
	}

	return w.register(body, shape, tag)
}

func (w *World) register(body *cp.Body, shape *cp.Shape, tag Tag) *Body {
	w.space.AddBody(body)
	w.space.AddShape(shape)

	b := &Body{body: body, shapes: []*cp.Shape{shape}, tag: tag}
	w.bodies = append(w.bodies, b)
	w.shapeToBody[shape] = b
	return b
}

// DestroyBody removes b and its shapes. It returns ErrBodyNotInWorld when b
// was never added or has already been removed.
func (w *World) DestroyBody(b *Body) error {
	idx := -1
	for i, it := range w.bodies {
		if it == b {
			idx = i
			break
		}
	}
	if idx < 0 || !w.space.ContainsBody(b.body) {
		return ErrBodyNotInWorld
	}

	for _, s := range b.shapes {
		if w.space.ContainsShape(s) {
			w.space.RemoveShape(s)
		}
		delete(w.shapeToBody, s)
	}
	w.space.RemoveBody(b.body)
	w.bodies = append(w.bodies[:idx], w.bodies[idx+1:]...)
	return nil
}

// ClearLevel destroys every body tagged Level and returns how many were
// removed.
func (w *World) ClearLevel() int {
	var doomed []*Body
	for _, b := range w.bodies {
		if b.tag.Level {
			doomed = append(doomed, b)
		}
	}
	for _, b := range doomed {
		_ = w.DestroyBody(b)
	}
	return len(doomed)
}

// WakeDynamic wakes every non-static body.
func (w *World) WakeDynamic() {
	for _, b := range w.bodies {
		if !b.Static() {
			b.body.Activate()
		}
	}
}

func (w *World) setupHandlers() {
	for _, other := range []cp.CollisionType{collisionTypeGoal, collisionTypeStar, collisionTypeWall} {
		h := w.space.NewCollisionHandler(collisionTypeBall, other)
		h.UserData = w
		h.BeginFunc = beginContact
	}
}

func beginContact(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
	world, ok := userData.(*World)
	if !ok || world == nil {
		return true
	}
	shapeA, shapeB := arb.Shapes()
	a, okA := world.shapeToBody[shapeA]
	b, okB := world.shapeToBody[shapeB]
	if !okA || !okB {
		return true
	}
	world.pending = append(world.pending, Contact{A: a, B: b})
	return true
}

// dampedVelocity applies linear and angular damping per body on top of
// the space integration, as v *= 1/(1+dt*c).
func dampedVelocity(linear, angular float64) func(*cp.Body, cp.Vector, float64, float64) {
	return func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(body, gravity, damping, dt)
		body.SetVelocityVector(body.Velocity().Mult(1 / (1 + dt*linear)))
		body.SetAngularVelocity(body.AngularVelocity() / (1 + dt*angular))
	}
}
