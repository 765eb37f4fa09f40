package gameplay

import (
	"errors"
	"math"

	"github.com/milk9111/ungravity/physics"
)

// ContactWorld is what the contact system needs from a physics world.
type ContactWorld interface {
	OnContacts(fn func([]physics.Contact))
	DestroyBody(b *physics.Body) error
}

// ContactState is a read-only view of collection progress.
type ContactState struct {
	Won            bool
	StarsCollected int
	StarsTotal     int
	RequiredStars  int
	Queued         int
}

// Contacts tracks star collection and the goal gate for one session. Stars
// are queued on contact and removed by FlushDestroyQueue after the step.
type Contacts struct {
	world ContactWorld
	ratio float64

	won            bool
	starsCollected int
	starsTotal     int
	requiredStars  int

	collected map[*physics.Body]struct{}
	queue     []*physics.Body
	failed    []error
}

func NewContacts(world ContactWorld, requiredRatio float64) *Contacts {
	c := &Contacts{
		world:     world,
		ratio:     requiredRatio,
		collected: make(map[*physics.Body]struct{}),
	}
	world.OnContacts(c.Handle)
	return c
}

// RequiredStars returns ceil(total*ratio). The small bias keeps products such
// as 10*0.3 from rounding up past the exact value.
func RequiredStars(total int, ratio float64) int {
	if total <= 0 || ratio <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total)*ratio - 1e-9))
}

func (c *Contacts) Reset(starsTotal int) {
	c.won = false
	c.starsCollected = 0
	c.starsTotal = starsTotal
	c.requiredStars = RequiredStars(starsTotal, c.ratio)
	c.collected = make(map[*physics.Body]struct{})
	c.queue = c.queue[:0]
}

// Handle processes one step's begin contacts in order.
func (c *Contacts) Handle(batch []physics.Contact) {
	for _, ct := range batch {
		c.handle(ct)
	}
}

func (c *Contacts) handle(ct physics.Contact) {
	if ct.A == nil || ct.B == nil {
		return
	}
	var other *physics.Body
	switch {
	case ct.A.Kind() == physics.KindBall:
		other = ct.B
	case ct.B.Kind() == physics.KindBall:
		other = ct.A
	default:
		return
	}

	switch other.Kind() {
	case physics.KindGoal:
		if c.GoalEnabled() {
			c.won = true
		}
	case physics.KindStar:
		if _, seen := c.collected[other]; seen {
			return
		}
		if c.starsCollected >= c.starsTotal {
			return
		}
		c.collected[other] = struct{}{}
		c.starsCollected++
		c.queue = append(c.queue, other)
	case physics.KindBall, physics.KindWall:
	}
}

// FlushDestroyQueue removes queued stars from the world and returns how many
// were removed. Bodies already gone are skipped.
func (c *Contacts) FlushDestroyQueue() int {
	removed := 0
	for len(c.queue) > 0 {
		last := len(c.queue) - 1
		b := c.queue[last]
		c.queue[last] = nil
		c.queue = c.queue[:last]

		if err := c.world.DestroyBody(b); err != nil {
			if !errors.Is(err, physics.ErrBodyNotInWorld) {
				c.failed = append(c.failed, err)
			}
			continue
		}
		removed++
	}
	return removed
}

// Errors returns and clears unexpected removal failures.
func (c *Contacts) Errors() []error {
	errs := c.failed
	c.failed = nil
	return errs
}

func (c *Contacts) GoalEnabled() bool {
	return c.starsCollected >= c.requiredStars
}

func (c *Contacts) Won() bool {
	return c.won
}

func (c *Contacts) State() ContactState {
	return ContactState{
		Won:            c.won,
		StarsCollected: c.starsCollected,
		StarsTotal:     c.starsTotal,
		RequiredStars:  c.requiredStars,
		Queued:         len(c.queue),
	}
}
