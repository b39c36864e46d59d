package grove

import "errors"

var (
	// ErrMissingCollaborator is returned when a required collaborator
	// (presenter, board host) is nil at construction time.
	ErrMissingCollaborator = errors.New("grove: missing collaborator")

	// ErrInvalidConfig is returned when board or actor parameters are unusable.
	ErrInvalidConfig = errors.New("grove: invalid configuration")

	// ErrPauseWhileGameOver is the contract violation raised in strict mode
	// when TogglePause is called after the game has ended.
	ErrPauseWhileGameOver = errors.New("grove: toggle pause while game is over")
)
