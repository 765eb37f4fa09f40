package physics

// Kind is the gameplay role of a body.
type Kind int

const (
	KindBall Kind = iota + 1
	KindWall
	KindGoal
	KindStar
)

func (k Kind) String() string {
	switch k {
	case KindBall:
		return "ball"
	case KindWall:
		return "wall"
	case KindGoal:
		return "goal"
	case KindStar:
		return "star"
	default:
		return "unknown"
	}
}

// Tag is attached to every body in a World. Level marks bodies created by
// level construction; those are cleared on the next build.
type Tag struct {
	Kind  Kind
	Level bool
	MapID int
	Name  string
}
