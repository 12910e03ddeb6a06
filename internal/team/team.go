// Package team provides the two sides of a game.
package team

import (
	"errors"

	"github.com/samdwyer/paydirt/internal/playsheet"
)

// MaxTimeouts is the number of timeouts each team gets per half.
const MaxTimeouts = 3

// ErrNoSelection is returned when a team's play is read before one was chosen this down.
var ErrNoSelection = errors.New("no play selected this down")

// Team is one side of a game: identity, playsheet, score and the play chosen for the down.
type Team struct {
	ID       string           // Playsheet file stem (e.g., "atlanta_falcons")
	Name     string           // Display name from team_info
	Sheet    *playsheet.Sheet // Owned exclusively by this team
	Score    int
	Timeouts int

	selected string
}

// New creates a team with a full set of timeouts and no score.
func New(id string, sheet *playsheet.Sheet) *Team {
	name := id
	if sheet != nil && sheet.Info().Name != "" {
		name = sheet.Info().Name
	}
	return &Team{
		ID:       id,
		Name:     name,
		Sheet:    sheet,
		Timeouts: MaxTimeouts,
	}
}

// Select records the play for the current down.
func (t *Team) Select(play string) {
	t.selected = play
}

// Selected returns the play chosen for the current down.
func (t *Team) Selected() (string, error) {
	if t.selected == "" {
		return "", ErrNoSelection
	}
	return t.selected, nil
}

// ClearSelection forgets the current play once the down is resolved.
func (t *Team) ClearSelection() {
	t.selected = ""
}

// AddPoints adds to the score. Negative amounts are ignored.
func (t *Team) AddPoints(points int) {
	if points > 0 {
		t.Score += points
	}
}

// UseTimeout spends a timeout. Returns false if none remain.
func (t *Team) UseTimeout() bool {
	if t.Timeouts <= 0 {
		return false
	}
	t.Timeouts--
	return true
}

// ResetTimeouts restores the per-half allotment.
func (t *Team) ResetTimeouts() {
	t.Timeouts = MaxTimeouts
}
