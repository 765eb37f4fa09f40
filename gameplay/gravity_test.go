package gameplay

import (
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
)

type fakeGravityWorld struct {
	gravity cp.Vector
	wakes   int
}

func (w *fakeGravityWorld) SetGravity(g cp.Vector) { w.gravity = g }
func (w *fakeGravityWorld) WakeDynamic()           { w.wakes++ }

func TestGravityApply(t *testing.T) {
	cases := []struct {
		dir  Direction
		name string
		want cp.Vector
	}{
		{Down, "DOWN", cp.Vector{X: 0, Y: 9.8}},
		{Up, "UP", cp.Vector{X: 0, Y: -9.8}},
		{Right, "RIGHT", cp.Vector{X: 9.8, Y: 0}},
		{Left, "LEFT", cp.Vector{X: -9.8, Y: 0}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := &fakeGravityWorld{}
			g := NewGravity(w, 9.8, nil)
			g.SetDirection(c.dir)
			if w.gravity != c.want {
				t.Fatalf("gravity = %v, want %v", w.gravity, c.want)
			}
			if w.wakes != 1 {
				t.Fatalf("expected dynamic bodies woken once, got %d", w.wakes)
			}
			if g.Name() != c.name {
				t.Fatalf("Name() = %q, want %q", g.Name(), c.name)
			}
		})
	}
}

func TestRandomizeExcludingCurrent(t *testing.T) {
	const trials = 2000
	for start := Down; start <= Left; start++ {
		t.Run(start.String(), func(t *testing.T) {
			w := &fakeGravityWorld{}
			g := NewGravity(w, 9.8, rand.New(rand.NewSource(int64(start)+7)))
			seen := map[Direction]int{}
			for i := 0; i < trials; i++ {
				g.SetDirection(start)
				got := g.RandomizeExcludingCurrent()
				if got == start {
					t.Fatalf("trial %d kept direction %s", i, start)
				}
				if g.Direction() != got || w.gravity != g.Vector() {
					t.Fatalf("trial %d: direction not applied", i)
				}
				seen[got]++
			}
			if len(seen) != 3 {
				t.Fatalf("expected the other 3 directions, saw %v", seen)
			}
			for d, n := range seen {
				if n < trials/10 {
					t.Fatalf("direction %s drawn only %d times", d, n)
				}
			}
		})
	}
}

func TestSetDirectionIgnoresOutOfRange(t *testing.T) {
	w := &fakeGravityWorld{}
	g := NewGravity(w, 9.8, nil)
	g.SetDirection(Left)
	g.SetDirection(Direction(9))
	if g.Direction() != Left {
		t.Fatalf("out of range direction changed state")
	}
	if Direction(9).String() != "UNKNOWN" {
		t.Fatalf("unexpected name for invalid direction")
	}
}
