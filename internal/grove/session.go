package grove

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Session is the single source of truth for global session state: score,
// pause, game over and the interaction lock. Level director, nodes and actor
// read it; only its own methods mutate it.
type Session struct {
	score       int
	gameOver    bool
	paused      bool
	interacting bool

	clock     *Clock
	presenter Presenter
	levels    *LevelDirector
	logger    *log.Logger
	strict    bool
}

func newSession(presenter Presenter, logger *log.Logger, strict bool) *Session {
	return &Session{
		clock:     NewClock(),
		presenter: presenter,
		logger:    logger,
		strict:    strict,
	}
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// IsGameOver reports whether a hazard ended the game.
func (s *Session) IsGameOver() bool { return s.gameOver }

// IsPaused reports whether the player paused the session.
func (s *Session) IsPaused() bool { return s.paused }

// IsInteracting reports whether a traversal is in flight.
func (s *Session) IsInteracting() bool { return s.interacting }

// TimeRunning reports whether global time progression is active.
func (s *Session) TimeRunning() bool { return s.clock.Running() }

// Clock exposes the session clock for reading.
func (s *Session) Clock() TimeSource { return s.clock }

// AddScore adds v points and notifies the presenter. It is valid at any time,
// including while paused.
func (s *Session) AddScore(v int) {
	s.logger.Debug("adding score", "value", v, "score", s.score)
	s.score += v
	s.presenter.ScoreChanged(s.score)
}

// GameOver ends the game: time stops and the game-over view is shown.
func (s *Session) GameOver() {
	s.logger.Info("game over", "score", s.score)
	s.gameOver = true
	s.clock.Freeze()
	s.presenter.ShowGameOverView()
}

// TogglePause flips the paused flag, freezing or resuming time and showing or
// hiding the pause view. Calling it after game over is a contract violation:
// it is ignored, or panics when the session runs with strict contracts.
func (s *Session) TogglePause() {
	if s.gameOver {
		if s.strict {
			panic(fmt.Errorf("%w (score %d)", ErrPauseWhileGameOver, s.score))
		}
		s.logger.Warn("toggle pause ignored", "reason", "game over")
		return
	}

	s.paused = !s.paused
	if s.paused {
		s.clock.Freeze()
		s.logger.Debug("game paused")
		s.presenter.ShowPauseView()
		return
	}
	s.clock.Resume()
	s.logger.Debug("game resumed")
	s.presenter.HidePauseView()
}

// RestartGame resets score and flags, resumes time and rebuilds level 1.
// Level 1 is set up exactly once per restart, so a restart consumes one
// board's worth of RNG draws.
func (s *Session) RestartGame() {
	s.logger.Info("restarting game")
	s.reset()
	if s.levels == nil {
		s.logger.Error("restart without level director")
		return
	}
	s.levels.ResetLevel()
}

// GoToMainMenu resets the session like RestartGame but tears the board down
// instead of building a level, then hands control to the presenter.
func (s *Session) GoToMainMenu() {
	s.logger.Info("going to main menu")
	s.reset()
	if s.levels != nil {
		s.levels.unmount()
	}
	s.presenter.ShowMainMenu()
}

func (s *Session) reset() {
	s.score = 0
	s.gameOver = false
	s.paused = false
	s.clock.Resume()
	s.presenter.ScoreChanged(0)
	s.presenter.HidePauseView()
}

// resumePlay clears game over and restarts time after a level advance.
// A paused session stays frozen.
func (s *Session) resumePlay() {
	s.gameOver = false
	if !s.paused {
		s.clock.Resume()
	}
}

func (s *Session) beginInteraction() {
	s.interacting = true
}

func (s *Session) endInteraction() {
	s.interacting = false
}
