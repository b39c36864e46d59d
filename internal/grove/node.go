package grove

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/banana-grove/internal/core"
)

// Kind is what a node conceals.
type Kind int

const (
	KindReward Kind = iota // banana
	KindHazard             // snake
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindReward:
		return "reward"
	case KindHazard:
		return "hazard"
	default:
		return "unknown"
	}
}

// Node is a tree on the board. It hides its content until revealed; a
// revealed node stays revealed until the level is set up again.
type Node struct {
	id        int
	position  core.Vec2
	hasReward bool

	revealed       bool
	contentVisible bool

	session *Session
	actor   *Actor
	logger  *log.Logger
}

// ID returns the node index within its level.
func (n *Node) ID() int { return n.id }

// Position returns the node's world position.
func (n *Node) Position() core.Vec2 { return n.position }

// HasReward reports whether the node hides a banana.
func (n *Node) HasReward() bool { return n.hasReward }

// Kind returns KindReward or KindHazard.
func (n *Node) Kind() Kind {
	if n.hasReward {
		return KindReward
	}
	return KindHazard
}

// Revealed reports whether the node has been revealed this level.
func (n *Node) Revealed() bool { return n.revealed }

// ContentVisible reports whether the hidden content is shown.
func (n *Node) ContentVisible() bool { return n.contentVisible }

// CanInteract reports whether the node may be revealed now. Any failing
// condition blocks silently.
func (n *Node) CanInteract() bool {
	if n.revealed {
		return false
	}
	if n.session.IsGameOver() {
		return false
	}
	if n.session.IsPaused() {
		return false
	}
	if n.session.IsInteracting() {
		return false
	}
	return n.session.TimeRunning()
}

// Reveal engages the interaction lock, shows the content and sends the actor.
// The caller must check CanInteract first.
func (n *Node) Reveal() {
	n.session.beginInteraction()
	n.logger.Debug("revealing node", "node", n.id, "kind", n.Kind())
	n.contentVisible = true
	n.revealed = true

	if !n.actor.JumpAndResolve(n) && !n.actor.Traversing() {
		// Nothing will release the lock for us.
		n.session.endInteraction()
	}
}

// ResetNode hides the content and marks the node unrevealed.
func (n *Node) ResetNode() {
	n.revealed = false
	n.contentVisible = false
}
