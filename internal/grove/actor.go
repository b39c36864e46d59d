package grove

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/banana-grove/internal/core"
)

// Traversal constants.
const (
	DwellDuration = 0.5 // seconds spent at the target before resolving
	TargetOffsetY = 1.0 // the actor lands this far above the node
	RewardPoints  = 1   // points for revealing a reward
)

// ActorConfig holds the actor's home and motion parameters.
type ActorConfig struct {
	Home        core.Vec2
	JumpSpeed   float64 // world units per second on the way out
	JumpHeight  float64 // peak height of the arc
	ReturnSpeed float64 // world units per second on the way home
}

// Validate checks that traversals can complete with cfg.
func (c ActorConfig) Validate() error {
	if c.JumpSpeed <= 0 || c.ReturnSpeed <= 0 {
		return fmt.Errorf("%w: speeds must be positive (jump %g, return %g)", ErrInvalidConfig, c.JumpSpeed, c.ReturnSpeed)
	}
	if c.JumpHeight < 0 {
		return fmt.Errorf("%w: negative jump height %g", ErrInvalidConfig, c.JumpHeight)
	}
	return nil
}

// Phase is the step of a traversal the actor is in.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseOutbound
	PhaseDwell
	PhaseReturn
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseOutbound:
		return "outbound"
	case PhaseDwell:
		return "dwell"
	case PhaseReturn:
		return "return"
	default:
		return "unknown"
	}
}

// Actor is the monkey. It runs one traversal at a time: jump to the revealed
// node along an arc, dwell, resolve the outcome and jump back home. Each
// Update call is one animation step.
type Actor struct {
	session *Session
	level   *LevelDirector
	clock   TimeSource
	cfg     ActorConfig
	logger  *log.Logger

	home       core.Vec2
	position   core.Vec2
	traversing bool

	phase  Phase
	target *Node

	// Current leg.
	legFrom   core.Vec2
	legTo     core.Vec2
	legLength float64
	speed     float64
	startTime float64
	covered   float64

	dwellStart   float64
	dwellElapsed float64

	// Set when a step was skipped because the session is paused.
	suspended bool
}

func newActor(session *Session, cfg ActorConfig, logger *log.Logger) *Actor {
	return &Actor{
		session:  session,
		clock:    session.clock,
		cfg:      cfg,
		logger:   logger,
		home:     cfg.Home,
		position: cfg.Home,
	}
}

// Position returns the actor's current world position.
func (a *Actor) Position() core.Vec2 { return a.position }

// Home returns the position captured at session start.
func (a *Actor) Home() core.Vec2 { return a.home }

// Traversing reports whether a traversal is in flight.
func (a *Actor) Traversing() bool { return a.traversing }

// Phase returns the current traversal phase.
func (a *Actor) Phase() Phase { return a.phase }

// Target returns the node being visited, or nil when idle.
func (a *Actor) Target() *Node { return a.target }

// Progress returns the fraction of the current leg (or dwell) completed.
func (a *Actor) Progress() float64 {
	switch a.phase {
	case PhaseOutbound, PhaseReturn:
		if a.legLength <= 0 {
			return 1
		}
		return core.ClampF(a.covered/a.legLength, 0, 1)
	case PhaseDwell:
		return core.ClampF(a.dwellElapsed/DwellDuration, 0, 1)
	default:
		return 0
	}
}

// JumpAndResolve starts a traversal to target. The call is ignored, and
// false returned, while another traversal runs or the session is paused or
// over. Calls are never queued.
func (a *Actor) JumpAndResolve(target *Node) bool {
	if a.traversing || a.session.IsPaused() || a.session.IsGameOver() {
		a.logger.Debug("jump ignored", "node", target.ID(), "traversing", a.traversing)
		return false
	}

	a.traversing = true
	a.target = target
	a.logger.Debug("jumping", "node", target.ID(), "x", target.Position().X, "y", target.Position().Y)
	a.beginLeg(PhaseOutbound, target.Position().Add(core.V(0, TargetOffsetY)), a.cfg.JumpSpeed)
	return true
}

// Update advances the traversal by one step against the session clock.
func (a *Actor) Update() {
	switch a.phase {
	case PhaseOutbound, PhaseReturn:
		if a.session.IsPaused() {
			a.suspended = true
			return
		}
		a.resume()
		if !a.stepLeg() {
			return
		}
		if a.phase == PhaseOutbound {
			a.beginDwell()
			return
		}
		a.finish()

	case PhaseDwell:
		if a.session.IsPaused() {
			a.suspended = true
			return
		}
		a.resume()
		a.dwellElapsed = a.clock.Now() - a.dwellStart
		if a.dwellElapsed < DwellDuration {
			return
		}
		a.resolve()
	}
}

// resume rebuilds the implied start of a suspended leg or dwell from the
// current time so the covered part carries over. The session calls it
// before advancing the clock, which lets the first frame after a pause
// count in full.
func (a *Actor) resume() {
	if !a.suspended || a.session.IsPaused() {
		return
	}
	switch a.phase {
	case PhaseOutbound, PhaseReturn:
		a.startTime = a.clock.Now() - a.covered/a.speed
	case PhaseDwell:
		a.dwellStart = a.clock.Now() - a.dwellElapsed
	}
	a.suspended = false
}

// ResetPosition sends the actor home and cancels any traversal in flight,
// releasing the interaction lock.
func (a *Actor) ResetPosition() {
	a.position = a.home
	a.finish()
}

func (a *Actor) beginLeg(phase Phase, to core.Vec2, speed float64) {
	a.phase = phase
	a.legFrom = a.position
	a.legTo = to
	a.legLength = a.position.Dist(to)
	a.speed = speed
	a.startTime = a.clock.Now()
	a.covered = 0
	a.suspended = false
}

// stepLeg moves along the arc and reports whether the leg is complete.
func (a *Actor) stepLeg() bool {
	if a.legLength <= 0 {
		a.position = a.legTo
		return true
	}

	a.covered = (a.clock.Now() - a.startTime) * a.speed
	t := core.ClampF(a.covered/a.legLength, 0, 1)

	pos := core.Lerp(a.legFrom, a.legTo, t)
	pos.Y += math.Sin(t*math.Pi) * a.cfg.JumpHeight
	a.position = pos

	if a.covered < a.legLength {
		return false
	}
	a.position = a.legTo
	return true
}

func (a *Actor) beginDwell() {
	a.phase = PhaseDwell
	a.dwellStart = a.clock.Now()
	a.dwellElapsed = 0
	a.suspended = false
}

func (a *Actor) resolve() {
	target := a.target

	if target.HasReward() {
		a.session.AddScore(RewardPoints)
		if c := a.level.CheckCompletion(); c != CompletionNone {
			a.logger.Info("level complete", "level", a.level.LevelIndex(), "rule", c)
			a.level.NextLevel()
		}
	} else {
		a.session.GameOver()
	}

	if a.phase == PhaseIdle {
		// The level advanced and the board reset already sent us home.
		return
	}
	if a.session.IsGameOver() {
		a.finish()
		return
	}
	a.beginLeg(PhaseReturn, a.home, a.cfg.ReturnSpeed)
}

// finish ends the traversal. Every exit path runs through here.
func (a *Actor) finish() {
	a.phase = PhaseIdle
	a.target = nil
	a.traversing = false
	a.suspended = false
	a.covered = 0
	a.dwellElapsed = 0
	a.session.endInteraction()
}
