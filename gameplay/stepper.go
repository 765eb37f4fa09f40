package gameplay

import "github.com/milk9111/ungravity/common"

// Stepper runs a fixed-step loop off variable frame times.
type Stepper struct {
	Step           float64
	MaxAccumulated float64
	MaxSubsteps    int

	acc float64
}

func NewStepper() *Stepper {
	return &Stepper{
		Step:           common.FixedStep,
		MaxAccumulated: common.MaxAccumulated,
		MaxSubsteps:    common.MaxSubsteps,
	}
}

// Advance adds dt and calls step once per whole fixed step, at most
// MaxSubsteps times. step returning true stops the loop. When the cap leaves
// whole steps unrun the remainder is dropped.
func (s *Stepper) Advance(dt float64, step func(dt float64) (stop bool)) int {
	s.acc += dt
	if s.acc > s.MaxAccumulated {
		s.acc = s.MaxAccumulated
	}

	n := 0
	for s.acc >= s.Step && n < s.MaxSubsteps {
		if step(s.Step) {
			return n + 1
		}
		s.acc -= s.Step
		n++
	}
	if n >= s.MaxSubsteps && s.acc >= s.Step {
		s.acc = 0
	}
	return n
}

func (s *Stepper) Reset() {
	s.acc = 0
}

func (s *Stepper) Accumulated() float64 {
	return s.acc
}
