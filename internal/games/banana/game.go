// Package banana adapts a grove session to the platform's game loop: it maps
// input actions to session commands, steps the session once per tick and
// draws the board into a screen buffer.
package banana

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/banana-grove/internal/config"
	"github.com/vovakirdan/banana-grove/internal/core"
	"github.com/vovakirdan/banana-grove/internal/grove"
)

// clickRadius is how far, in cells, a click may land from a tree.
const clickRadius = 3.0

// FairSeeds select the HMAC board generator instead of the seeded one.
type FairSeeds struct {
	Server string
	Client string
	Nonce  uint64
}

// Option customises a Game.
type Option func(*Game)

// WithLogger sets the logger passed to the session.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithFairSeeds generates boards from an HMAC byte stream.
func WithFairSeeds(s FairSeeds) Option {
	return func(g *Game) { g.fair = &s }
}

// WithStrictContracts makes the session panic on contract violations.
func WithStrictContracts() Option {
	return func(g *Game) { g.strict = true }
}

// WithContentsShown draws what every tree hides, revealed or not.
func WithContentsShown() Option {
	return func(g *Game) { g.showContents = true }
}

// Game implements the banana grove for the terminal host. It is the grove's
// Presenter and BoardHost.
type Game struct {
	cfg          config.GroveConfig
	logger       *log.Logger
	fair         *FairSeeds
	strict       bool
	showContents bool

	session *grove.Grove
	layout  Layout
	sprites map[int]sprite // screen cells of the current board
	tick    uint64

	screenW int
	screenH int
	dt      float64

	selected   int
	level      int
	score      int
	paused     bool
	gameOver   bool
	backToMenu bool
	tooSmall   bool
	lastErr    error
}

// sprite is a tree's place on screen.
type sprite struct {
	x, y int
}

// New creates a game for the given configuration. Reset must be called
// before the first Step.
func New(cfg config.GroveConfig, opts ...Option) *Game {
	g := &Game{
		cfg:     cfg,
		sprites: make(map[int]sprite),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "grove"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Banana Grove"
}

// Reset builds a fresh session and starts level 1.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.dt = cfg.DeltaTime()
	g.tick = 0
	g.selected = 0
	g.score = 0
	g.level = 1
	g.paused = false
	g.gameOver = false
	g.backToMenu = false
	g.sprites = make(map[int]sprite)

	var rng grove.RNG
	if g.fair != nil {
		rng = grove.NewHMACRNG(g.fair.Server, g.fair.Client, g.fair.Nonce)
		g.logger.Info("fair board generation", "client_seed", g.fair.Client, "nonce", g.fair.Nonce)
	} else {
		rng = grove.NewRandRNG(cfg.Seed)
	}

	opts := []grove.Option{
		grove.WithLogger(g.logger),
		grove.WithRNG(rng),
		grove.WithBoardHost(g),
	}
	if g.strict {
		opts = append(opts, grove.WithStrictContracts())
	}

	gc := g.cfg.ToGrove()
	s, err := grove.New(gc, g, opts...)
	if err != nil {
		g.logger.Error("cannot start session", "err", err)
		g.session = nil
		g.lastErr = err
		return
	}
	g.lastErr = nil
	g.session = s
	g.layout = newLayout(gc, g.screenW, g.screenH)
	g.tooSmall = g.screenW < minWidth || g.screenH < minHeight
	s.Mount()
}

// Start remounts the board after the session went back to the main menu.
func (g *Game) Start() {
	if g.session == nil {
		return
	}
	g.backToMenu = false
	if !g.session.Level().Mounted() {
		g.session.Mount()
	}
}

// Resize adapts the layout to a new screen size without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minWidth || h < minHeight
	if g.session == nil {
		return
	}
	g.layout = newLayout(g.cfg.ToGrove(), w, h)
	for _, n := range g.session.Level().Nodes() {
		g.NodeSpawned(n)
	}
}

// Err returns the configuration error of the last Reset, if any.
func (g *Game) Err() error {
	return g.lastErr
}

// Step applies one frame of input and advances the session by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.session == nil || g.backToMenu {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	s := g.session.Session()
	switch {
	case input.Has(core.ActionMenu):
		s.GoToMainMenu()
		return core.StepResult{State: g.State()}
	case input.Has(core.ActionRestart):
		s.RestartGame()
	case input.Has(core.ActionPause):
		// Pausing a finished game is a contract violation; the key does nothing.
		if !s.IsGameOver() {
			s.TogglePause()
		}
	}

	if !g.tooSmall {
		g.processSelection(input)
	}

	g.session.Update(g.dt)
	g.level = g.session.Level().LevelIndex()

	return core.StepResult{State: g.State()}
}

// processSelection moves the cursor and reveals trees.
func (g *Game) processSelection(input core.InputFrame) {
	if input.Click != nil {
		if id, ok := g.nodeAt(input.Click.X, input.Click.Y); ok {
			g.selected = id
			g.session.Reveal(id)
		}
		return
	}

	switch {
	case input.Has(core.ActionUp):
		g.moveSelection(core.V(0, 1))
	case input.Has(core.ActionDown):
		g.moveSelection(core.V(0, -1))
	case input.Has(core.ActionLeft):
		g.moveSelection(core.V(-1, 0))
	case input.Has(core.ActionRight):
		g.moveSelection(core.V(1, 0))
	}

	if input.Has(core.ActionReveal) {
		g.session.Reveal(g.selected)
	}
}

// moveSelection picks the nearest tree in direction dir, preferring trees
// close to the straight line from the current one.
func (g *Game) moveSelection(dir core.Vec2) {
	cur, ok := g.session.Level().Node(g.selected)
	if !ok {
		g.selected = 0
		return
	}
	from := cur.Position()

	best, bestScore := -1, 0.0
	for _, n := range g.session.Level().Nodes() {
		if n.ID() == cur.ID() {
			continue
		}
		d := n.Position().Sub(from)
		along := d.X*dir.X + d.Y*dir.Y
		if along <= 0 {
			continue
		}
		across := d.X*dir.Y - d.Y*dir.X
		if across < 0 {
			across = -across
		}
		score := along + 2*across
		if best < 0 || score < bestScore {
			best, bestScore = n.ID(), score
		}
	}
	if best >= 0 {
		g.selected = best
	}
}

// nodeAt returns the tree nearest to screen cell (x, y) within clickRadius.
func (g *Game) nodeAt(x, y int) (int, bool) {
	if !g.layout.Field().Contains(x, y) {
		return -1, false
	}
	best, bestDist := -1, clickRadius
	for id, sp := range g.sprites {
		d := cellDistance(x, y, sp.x, sp.y)
		if d < bestDist || (d == bestDist && (best < 0 || id < best)) {
			best, bestDist = id, d
		}
	}
	return best, best >= 0
}

// Selected returns the id of the tree under the cursor.
func (g *Game) Selected() int {
	return g.selected
}

// Session exposes the underlying grove session.
func (g *Game) Session() *grove.Grove {
	return g.session
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.score,
		Level:      g.level,
		GameOver:   g.gameOver,
		Paused:     g.paused,
		BackToMenu: g.backToMenu,
	}
}

// ScoreChanged implements grove.Presenter.
func (g *Game) ScoreChanged(score int) {
	g.score = score
}

// ShowGameOverView implements grove.Presenter.
func (g *Game) ShowGameOverView() {
	g.gameOver = true
}

// ShowPauseView implements grove.Presenter.
func (g *Game) ShowPauseView() {
	g.paused = true
}

// HidePauseView implements grove.Presenter.
func (g *Game) HidePauseView() {
	g.paused = false
	// Restart and menu also clear game over through here.
	if g.session != nil && !g.session.Session().IsGameOver() {
		g.gameOver = false
	}
}

// ShowMainMenu implements grove.Presenter.
func (g *Game) ShowMainMenu() {
	g.backToMenu = true
	g.selected = 0
	g.level = 1
}

// NodeSpawned implements grove.BoardHost.
func (g *Game) NodeSpawned(n *grove.Node) {
	x, y := g.layout.ToScreen(n.Position())
	g.sprites[n.ID()] = sprite{x: x, y: y}
}

// NodesDestroyed implements grove.BoardHost.
func (g *Game) NodesDestroyed(nodes []*grove.Node) {
	for _, n := range nodes {
		delete(g.sprites, n.ID())
	}
	g.selected = 0
}
