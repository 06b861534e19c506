package colorhunt

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Phase   Phase
	Status  Status
	Score   int
	Seconds int
	Round   Round
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{Phase: g.phase}
	if g.session == nil {
		snap.Seconds = g.cfg.Session.DurationSeconds
		return snap
	}
	snap.Status = g.session.Status()
	snap.Score = g.session.Score()
	snap.Seconds = g.session.SecondsRemaining()
	snap.Round = g.session.CurrentRound()
	return snap
}
