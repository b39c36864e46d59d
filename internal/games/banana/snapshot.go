package banana

import "github.com/vovakirdan/banana-grove/internal/grove"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Selected int
	Session  grove.Snapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     g.tick,
		Selected: g.selected,
	}
	if g.session != nil {
		s.Session = g.session.Snapshot()
	}
	return s
}
