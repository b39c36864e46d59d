package grove

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/banana-grove/internal/core"
)

// LevelBonus is added to the score whenever a level is completed.
const LevelBonus = 5

// BoardConfig holds the board generation parameters.
type BoardConfig struct {
	BaseNodeCount     int     // nodes on level 1; each level adds one
	MinX, MaxX        float64 // horizontal generation bounds
	MinY, MaxY        float64 // vertical generation bounds
	RewardProbability float64 // probability that a node is a hazard, in [0, 1)
}

// Bounds returns the generation area.
func (c BoardConfig) Bounds() core.Bounds {
	return core.Bounds{MinX: c.MinX, MaxX: c.MaxX, MinY: c.MinY, MaxY: c.MaxY}
}

// Validate checks that a board can be generated from c.
func (c BoardConfig) Validate() error {
	if c.BaseNodeCount < 1 {
		return fmt.Errorf("%w: base node count %d < 1", ErrInvalidConfig, c.BaseNodeCount)
	}
	if c.MinX > c.MaxX || c.MinY > c.MaxY {
		return fmt.Errorf("%w: empty bounds x[%g,%g] y[%g,%g]", ErrInvalidConfig, c.MinX, c.MaxX, c.MinY, c.MaxY)
	}
	if c.RewardProbability < 0 || c.RewardProbability >= 1 {
		return fmt.Errorf("%w: reward probability %g outside [0,1)", ErrInvalidConfig, c.RewardProbability)
	}
	return nil
}

// Completion names the rule that ended a level.
type Completion int

const (
	CompletionNone     Completion = iota
	CompletionEarlyOut            // revealed rewards >= total nodes - 1
	CompletionFull                // every reward node revealed
)

// String returns a human-readable name for the completion rule.
func (c Completion) String() string {
	switch c {
	case CompletionNone:
		return "none"
	case CompletionEarlyOut:
		return "early-out"
	case CompletionFull:
		return "full"
	default:
		return "unknown"
	}
}

// LevelDirector owns the board: it generates nodes, tracks the level index,
// evaluates the win condition and advances levels.
type LevelDirector struct {
	session *Session
	actor   *Actor
	host    BoardHost
	rng     RNG
	cfg     BoardConfig
	logger  *log.Logger

	levelIndex int
	nodes      []*Node
	mounted    bool
}

func newLevelDirector(session *Session, actor *Actor, host BoardHost, rng RNG, cfg BoardConfig, logger *log.Logger) *LevelDirector {
	return &LevelDirector{
		session:    session,
		actor:      actor,
		host:       host,
		rng:        rng,
		cfg:        cfg,
		logger:     logger,
		levelIndex: 1,
	}
}

// LevelIndex returns the current level, starting at 1.
func (d *LevelDirector) LevelIndex() int { return d.levelIndex }

// Mounted reports whether a board is currently set up.
func (d *LevelDirector) Mounted() bool { return d.mounted }

// Config returns the board generation parameters.
func (d *LevelDirector) Config() BoardConfig { return d.cfg }

// NodeCountFor returns how many nodes level builds.
func (d *LevelDirector) NodeCountFor(level int) int {
	return d.cfg.BaseNodeCount + (level - 1)
}

// Nodes returns the nodes of the current level in creation order.
func (d *LevelDirector) Nodes() []*Node {
	out := make([]*Node, len(d.nodes))
	copy(out, d.nodes)
	return out
}

// Node returns the node with the given id.
func (d *LevelDirector) Node(id int) (*Node, bool) {
	if id < 0 || id >= len(d.nodes) {
		return nil, false
	}
	return d.nodes[id], true
}

// TotalNodeCount returns the number of nodes on the board.
func (d *LevelDirector) TotalNodeCount() int {
	return len(d.nodes)
}

// RevealedRewardCount returns how many reward nodes have been revealed.
func (d *LevelDirector) RevealedRewardCount() int {
	count := 0
	for _, n := range d.nodes {
		if n.hasReward && n.revealed {
			count++
		}
	}
	return count
}

// AllRevealed reports whether every node of the given kind is revealed.
func (d *LevelDirector) AllRevealed(kind Kind) bool {
	for _, n := range d.nodes {
		if n.Kind() == kind && !n.revealed {
			return false
		}
	}
	return true
}

// CheckCompletion applies the win policy after a reward reveal. The
// early-out compares revealed rewards against the total node count, not the
// reward count; the full check runs only when the early-out does not hold.
func (d *LevelDirector) CheckCompletion() Completion {
	total := d.TotalNodeCount()
	found := d.RevealedRewardCount()

	if found >= total-1 {
		d.logger.Debug("early-out", "found", found, "total", total)
		return CompletionEarlyOut
	}
	if d.AllRevealed(KindReward) {
		return CompletionFull
	}
	return CompletionNone
}

// SetupLevel destroys the current board and builds a new one for the current
// level, then sends the actor home.
func (d *LevelDirector) SetupLevel() {
	d.clear()

	count := d.NodeCountFor(d.levelIndex)
	d.logger.Info("setting up level", "level", d.levelIndex, "nodes", count)

	d.nodes = make([]*Node, 0, count)
	for i := 0; i < count; i++ {
		pos := core.V(
			d.rng.Range(d.cfg.MinX, d.cfg.MaxX),
			d.rng.Range(d.cfg.MinY, d.cfg.MaxY),
		)
		n := &Node{
			id:        i,
			position:  pos,
			hasReward: d.rng.Float64() > d.cfg.RewardProbability,
			session:   d.session,
			actor:     d.actor,
			logger:    d.logger,
		}
		d.logger.Debug("node created", "node", i, "x", pos.X, "y", pos.Y, "kind", n.Kind())
		d.nodes = append(d.nodes, n)
		d.host.NodeSpawned(n)
	}
	d.mounted = true

	d.actor.ResetPosition()
	for _, n := range d.nodes {
		n.ResetNode()
	}
}

// NextLevel advances one level, grants the completion bonus and builds the
// new board.
func (d *LevelDirector) NextLevel() {
	d.logger.Info("next level", "level", d.levelIndex+1)
	d.levelIndex++
	d.session.AddScore(LevelBonus)
	d.SetupLevel()
	d.session.resumePlay()
}

// ResetLevel returns to level 1 and builds its board.
func (d *LevelDirector) ResetLevel() {
	d.levelIndex = 1
	d.SetupLevel()
}

// unmount tears the board down without building a new one.
func (d *LevelDirector) unmount() {
	d.levelIndex = 1
	d.clear()
	d.mounted = false
	d.actor.ResetPosition()
}

func (d *LevelDirector) clear() {
	if len(d.nodes) > 0 {
		d.host.NodesDestroyed(d.nodes)
	}
	d.nodes = nil
}
