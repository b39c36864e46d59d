package grove

import (
	"math"
	"testing"

	"github.com/vovakirdan/banana-grove/internal/core"
)

const testDT = 1.0 / 64

// scriptedRNG returns queued draws, then falls back to a fixed value.
type scriptedRNG struct {
	draws    []float64
	fallback float64
}

func (r *scriptedRNG) Float64() float64 {
	if len(r.draws) == 0 {
		return r.fallback
	}
	v := r.draws[0]
	r.draws = r.draws[1:]
	return v
}

func (r *scriptedRNG) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// boardDraws returns the draws that build a board whose i-th node hides a
// reward when rewards[i] is true. Nodes are spread along x.
func boardDraws(rewards ...bool) []float64 {
	draws := make([]float64, 0, 3*len(rewards))
	for i, reward := range rewards {
		x := float64(i+1) / float64(len(rewards)+1)
		kind := 0.0
		if reward {
			kind = 0.99
		}
		draws = append(draws, x, 0.5, kind)
	}
	return draws
}

// recordingPresenter counts every notification.
type recordingPresenter struct {
	scores   []int
	gameOver int
	shown    int
	hidden   int
	menu     int
}

func (p *recordingPresenter) ScoreChanged(score int) { p.scores = append(p.scores, score) }
func (p *recordingPresenter) ShowGameOverView()      { p.gameOver++ }
func (p *recordingPresenter) ShowPauseView()         { p.shown++ }
func (p *recordingPresenter) HidePauseView()         { p.hidden++ }
func (p *recordingPresenter) ShowMainMenu()          { p.menu++ }

// recordingHost counts board changes.
type recordingHost struct {
	spawned   int
	destroyed int
}

func (h *recordingHost) NodeSpawned(*Node)            { h.spawned++ }
func (h *recordingHost) NodesDestroyed(nodes []*Node) { h.destroyed += len(nodes) }

// manualClock is a time source that keeps running regardless of pause.
type manualClock struct {
	now float64
}

func (c *manualClock) Now() float64 { return c.now }

func testConfig() Config {
	return Config{
		Board: BoardConfig{
			BaseNodeCount:     5,
			MinX:              -8,
			MaxX:              8,
			MinY:              -4,
			MaxY:              4,
			RewardProbability: 0.3,
		},
		Actor: ActorConfig{
			Home:        core.V(0, -6),
			JumpSpeed:   4,
			JumpHeight:  2,
			ReturnSpeed: 4,
		},
	}
}

// newTestGrove builds and mounts a grove using the given draws for level 1.
func newTestGrove(t *testing.T, cfg Config, draws []float64, opts ...Option) (*Grove, *recordingPresenter) {
	t.Helper()
	p := &recordingPresenter{}
	rng := &scriptedRNG{draws: draws, fallback: 0.99}
	g, err := New(cfg, p, append([]Option{WithRNG(rng)}, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Mount()
	return g, p
}

// runUntilIdle steps the grove until the actor stops traversing.
func runUntilIdle(t *testing.T, g *Grove) {
	t.Helper()
	for i := 0; i < 10000; i++ {
		if !g.Actor().Traversing() {
			return
		}
		g.Update(testDT)
	}
	t.Fatalf("traversal did not finish (phase %v)", g.Actor().Phase())
}

// runUntilPhase steps the grove until the actor reaches phase.
func runUntilPhase(t *testing.T, g *Grove, phase Phase) {
	t.Helper()
	for i := 0; i < 10000; i++ {
		if g.Actor().Phase() == phase {
			return
		}
		g.Update(testDT)
	}
	t.Fatalf("actor never reached %v (phase %v)", phase, g.Actor().Phase())
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
