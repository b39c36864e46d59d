package grove

import "github.com/vovakirdan/banana-grove/internal/core"

// Mode is the effective session mode derived from the session flags.
type Mode string

const (
	ModeMenu     Mode = "menu"
	ModePlaying  Mode = "playing"
	ModePaused   Mode = "paused"
	ModeGameOver Mode = "game_over"
)

// NodeSnapshot is the observable state of one node.
type NodeSnapshot struct {
	ID        int
	Position  core.Vec2
	HasReward bool
	Revealed  bool
}

// ActorSnapshot is the observable state of the actor.
type ActorSnapshot struct {
	Position core.Vec2
	Home     core.Vec2
	Phase    Phase
	Progress float64
	TargetID int // -1 when idle
}

// Snapshot captures the complete session state for rendering, determinism
// testing and replay.
type Snapshot struct {
	Time        float64
	Mode        Mode
	Level       int
	Score       int
	Interacting bool
	Actor       ActorSnapshot
	Nodes       []NodeSnapshot
}

// Snapshot returns the current state.
func (g *Grove) Snapshot() Snapshot {
	s := g.session
	mode := ModePlaying
	switch {
	case !g.level.Mounted():
		mode = ModeMenu
	case s.IsGameOver():
		mode = ModeGameOver
	case s.IsPaused():
		mode = ModePaused
	}

	targetID := -1
	if t := g.actor.Target(); t != nil {
		targetID = t.ID()
	}

	nodes := make([]NodeSnapshot, 0, g.level.TotalNodeCount())
	for _, n := range g.level.nodes {
		nodes = append(nodes, NodeSnapshot{
			ID:        n.id,
			Position:  n.position,
			HasReward: n.hasReward,
			Revealed:  n.revealed,
		})
	}

	return Snapshot{
		Time:        s.clock.Now(),
		Mode:        mode,
		Level:       g.level.LevelIndex(),
		Score:       s.Score(),
		Interacting: s.IsInteracting(),
		Actor: ActorSnapshot{
			Position: g.actor.Position(),
			Home:     g.actor.Home(),
			Phase:    g.actor.Phase(),
			Progress: g.actor.Progress(),
			TargetID: targetID,
		},
		Nodes: nodes,
	}
}
