package gameplay

import "fmt"

type Mode int

const (
	ModeLoading Mode = iota
	ModePlaying
	ModePaused
	ModeWon
)

func (m Mode) String() string {
	switch m {
	case ModeLoading:
		return "loading"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeWon:
		return "won"
	default:
		return "unknown"
	}
}

const (
	infoNotLoaded = "TMX: not loaded"
	infoLoading   = "TMX: loading..."
)

// RunState is the per-attempt timer and mode.
type RunState struct {
	Mode        Mode
	TimeMs      float64
	WinResult   *WinResult
	WinComputed bool
	Info        string
	Err         error
}

func NewRunState() RunState {
	return RunState{Mode: ModeLoading, Info: infoNotLoaded}
}

// ResetForLevel clears the attempt and enters loading.
func (r *RunState) ResetForLevel() {
	*r = RunState{Mode: ModeLoading, Info: infoLoading}
}

func (r *RunState) Loaded(info string) {
	if r.Mode != ModeLoading {
		return
	}
	r.Mode = ModePlaying
	r.Info = info
	r.Err = nil
}

// LoadFailed parks the attempt in paused with the error shown as info.
func (r *RunState) LoadFailed(err error) {
	if r.Mode != ModeLoading {
		return
	}
	r.Mode = ModePaused
	r.Err = err
	r.Info = fmt.Sprintf("TMX error: %v", err)
}

// TogglePause flips playing and paused. Loading and won are left alone.
func (r *RunState) TogglePause() bool {
	switch r.Mode {
	case ModePlaying:
		r.Mode = ModePaused
		return true
	case ModePaused:
		if r.Err != nil {
			return false
		}
		r.Mode = ModePlaying
		return true
	default:
		return false
	}
}

func (r *RunState) Resume() {
	if r.Mode == ModePaused && r.Err == nil {
		r.Mode = ModePlaying
	}
}

func (r *RunState) Tick(dt float64) {
	if r.Mode == ModePlaying {
		r.TimeMs += dt * 1000
	}
}

func (r *RunState) MarkWon() {
	if r.Mode == ModePlaying {
		r.Mode = ModeWon
	}
}
