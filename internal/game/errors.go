package game

import "fmt"

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

const (
	ErrNilConfig    GameError = "config cannot be nil"
	ErrNilTeam      GameError = "both teams are required"
	ErrNilChooser   GameError = "chooser cannot be nil"
	ErrGameOver     GameError = "game is over"
	ErrNoTimeouts   GameError = "no timeouts remaining"
	ErrInvalidState GameError = "no plays can be selected in this state"
)

// maxSelectionAttempts bounds how often an out-of-range choice is re-requested.
const maxSelectionAttempts = 5

// InvalidSelectionError reports a chooser that kept returning indexes outside the play list.
type InvalidSelectionError struct {
	Index    int // Last index returned
	Count    int // Number of plays offered
	Attempts int
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("invalid selection %d of %d plays after %d attempts", e.Index, e.Count, e.Attempts)
}
