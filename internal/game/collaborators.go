package game

import (
	"context"

	"github.com/samdwyer/paydirt/internal/dice"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_collaborators.go github.com/samdwyer/paydirt/internal/game Chooser,Renderer

// Chooser picks one of the offered plays for the user. It must return an index into
// legal; re-prompting on bad input is the chooser's job.
type Chooser interface {
	SelectPlay(ctx context.Context, legal []string) (int, error)
}

// Renderer draws a snapshot between downs. It must not hold on to the game.
type Renderer interface {
	Render(snap Snapshot)
}

// RandomChooser picks uniformly at random. It stands in for the user in headless games.
type RandomChooser struct {
	roller *dice.Roller
}

// NewRandomChooser creates a chooser drawing from roller.
func NewRandomChooser(roller *dice.Roller) *RandomChooser {
	return &RandomChooser{roller: roller}
}

// SelectPlay implements Chooser.
func (c *RandomChooser) SelectPlay(ctx context.Context, legal []string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(legal) == 0 {
		return 0, ErrInvalidState
	}
	return c.roller.Intn(len(legal)), nil
}

// NopRenderer discards every snapshot.
type NopRenderer struct{}

// Render implements Renderer.
func (NopRenderer) Render(Snapshot) {}
