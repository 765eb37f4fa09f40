package gameplay

// Snapshot is a read-only copy of the frame state for the HUD and overlay.
type Snapshot struct {
	Mode       Mode
	LevelIndex int
	LevelCount int
	LevelID    string
	TimeMs     float64
	Info       string
	Err        error

	StarsCollected int
	StarsTotal     int
	RequiredStars  int
	GoalEnabled    bool
	Gravity        string

	Win          *WinResult
	NextUnlocked bool
}

func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:         c.run.Mode,
		LevelIndex:   c.manager.Index(),
		LevelCount:   c.catalog.Len(),
		LevelID:      c.manager.Level().ID,
		TimeMs:       c.run.TimeMs,
		Info:         c.run.Info,
		Err:          c.run.Err,
		Gravity:      Down.String(),
		NextUnlocked: c.NextUnlocked(),
	}
	if s := c.manager.Session(); s != nil {
		st := s.Contacts.State()
		snap.StarsCollected = st.StarsCollected
		snap.StarsTotal = st.StarsTotal
		snap.RequiredStars = st.RequiredStars
		snap.GoalEnabled = s.Contacts.GoalEnabled()
		snap.Gravity = s.Gravity.Name()
	}
	if c.run.WinResult != nil {
		win := *c.run.WinResult
		snap.Win = &win
	}
	return snap
}
