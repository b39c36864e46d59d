// Package grove implements the session state machine of the banana grove:
// board generation, reveal gating, the monkey's pausable traversal, scoring
// and the win/loss policy. It has no rendering or input concerns; a host
// drives it through Update and receives notifications via Presenter.
package grove

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Config bundles the board and actor parameters.
type Config struct {
	Board BoardConfig
	Actor ActorConfig
}

// Validate checks both parts of the configuration.
func (c Config) Validate() error {
	if err := c.Board.Validate(); err != nil {
		return err
	}
	return c.Actor.Validate()
}

type options struct {
	logger *log.Logger
	rng    RNG
	host   BoardHost
	strict bool
}

// Option customises a Grove.
type Option func(*options)

// WithLogger sets the logger used by every component.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRNG sets the random source for board generation.
func WithRNG(r RNG) Option {
	return func(o *options) { o.rng = r }
}

// WithBoardHost sets the collaborator notified of node creation and removal.
func WithBoardHost(h BoardHost) Option {
	return func(o *options) { o.host = h }
}

// WithStrictContracts makes contract violations panic instead of being
// logged and ignored.
func WithStrictContracts() Option {
	return func(o *options) { o.strict = true }
}

// Grove owns one session and wires its level director and actor together.
type Grove struct {
	session *Session
	level   *LevelDirector
	actor   *Actor
	logger  *log.Logger
}

// New builds a session. A nil presenter or board host is a configuration
// error, as is an unusable Config.
func New(cfg Config, presenter Presenter, opts ...Option) (*Grove, error) {
	o := options{
		host: NopBoardHost{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	if o.rng == nil {
		o.rng = NewRandRNG(time.Now().UnixNano())
	}

	if presenter == nil {
		return nil, fmt.Errorf("%w: presenter", ErrMissingCollaborator)
	}
	if o.host == nil {
		return nil, fmt.Errorf("%w: board host", ErrMissingCollaborator)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	session := newSession(presenter, o.logger, o.strict)
	actor := newActor(session, cfg.Actor, o.logger)
	level := newLevelDirector(session, actor, o.host, o.rng, cfg.Board, o.logger)
	actor.level = level
	session.levels = level

	o.logger.Debug("monkey initialized", "x", actor.home.X, "y", actor.home.Y)

	return &Grove{
		session: session,
		level:   level,
		actor:   actor,
		logger:  o.logger,
	}, nil
}

// Session returns the session controller.
func (g *Grove) Session() *Session { return g.session }

// Level returns the level director.
func (g *Grove) Level() *LevelDirector { return g.level }

// Actor returns the traversal actor.
func (g *Grove) Actor() *Actor { return g.actor }

// Mount builds the current level. The host calls it once the board is
// ready to be shown, e.g. when play starts from the main menu.
func (g *Grove) Mount() {
	g.level.SetupLevel()
}

// Unmount tears the board down.
func (g *Grove) Unmount() {
	g.level.unmount()
}

// Update advances session time by dt seconds and steps the actor once.
func (g *Grove) Update(dt float64) {
	if !g.level.Mounted() {
		return
	}
	g.actor.resume()
	g.session.clock.Advance(dt)
	g.actor.Update()
}

// Reveal reveals node id if it can be interacted with and reports whether
// it did. Blocked reveals are silent no-ops.
func (g *Grove) Reveal(id int) bool {
	n, ok := g.level.Node(id)
	if !ok || !n.CanInteract() {
		return false
	}
	n.Reveal()
	return true
}
