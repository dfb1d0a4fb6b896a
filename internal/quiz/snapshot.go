package quiz

// Snapshot captures the session state for determinism testing and debugging.
type Snapshot struct {
	Tick         uint64
	Status       Status
	Score        int
	Countdown    int
	Pause        int
	Round        int // Rounds dealt in the current game
	Game         int // Games started in this session
	Clue         string
	CorrectIndex int
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:         s.tick,
		Status:       s.status,
		Score:        s.score,
		Countdown:    s.countdown,
		Pause:        s.pause,
		Round:        s.roundNo,
		Game:         s.games,
		CorrectIndex: -1,
	}
	if s.round != nil {
		snap.Clue = s.round.Clue
		snap.CorrectIndex = s.round.CorrectIndex()
	}
	return snap
}
