package physics

import "github.com/jakecoffman/cp"

// Body is a cp body registered with a World together with its shapes.
type Body struct {
	body   *cp.Body
	shapes []*cp.Shape
	tag    Tag
}

func (b *Body) Tag() Tag {
	return b.tag
}

func (b *Body) Kind() Kind {
	return b.tag.Kind
}

// CP returns the underlying cp body.
func (b *Body) CP() *cp.Body {
	return b.body
}

func (b *Body) Shapes() []*cp.Shape {
	return b.shapes
}

func (b *Body) Static() bool {
	return b.body.GetType() == cp.BODY_STATIC
}

func (b *Body) Sensor() bool {
	for _, s := range b.shapes {
		if s.Sensor() {
			return true
		}
	}
	return false
}

// Position returns the body position in world units.
func (b *Body) Position() cp.Vector {
	return b.body.Position()
}

func (b *Body) Velocity() cp.Vector {
	return b.body.Velocity()
}

func (b *Body) Angle() float64 {
	return b.body.Angle()
}

// Teleport moves the body to p with angle 0, clears its motion and wakes it.
func (b *Body) Teleport(p cp.Vector) {
	b.body.SetPosition(p)
	b.body.SetAngle(0)
	b.body.SetVelocity(0, 0)
	b.body.SetAngularVelocity(0)
	b.body.Activate()
}
