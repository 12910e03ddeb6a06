package dice

import (
	"github.com/samdwyer/paydirt/internal/playsheet"
	"github.com/samdwyer/paydirt/internal/team"
)

// Outcome is one side's sampled result for a play.
type Outcome struct {
	Team  string // Team display name
	Play  string
	Key   string // Roll key drawn from the table
	Yards int
}

// Sampler draws outcomes from a team's playsheet.
type Sampler struct {
	roller *Roller
}

// NewSampler creates a sampler drawing from roller.
func NewSampler(roller *Roller) *Sampler {
	return &Sampler{roller: roller}
}

// Sample rolls the outcome table for play on the team's sheet. The face is chosen
// uniformly, like a fair die with one face per table entry.
func (s *Sampler) Sample(t *team.Team, play string) (Outcome, error) {
	section, ok := playsheet.SectionFor(play)
	if !ok {
		return Outcome{}, &playsheet.UnknownPlayError{Team: t.Name, Play: play}
	}
	if t.Sheet == nil {
		return Outcome{}, &playsheet.UnknownPlayError{Team: t.Name, Section: section, Play: play}
	}

	table, err := t.Sheet.OutcomesFor(section, play)
	if err != nil {
		return Outcome{}, err
	}
	if table.Len() == 0 {
		return Outcome{}, &playsheet.UnknownPlayError{Team: t.Name, Section: section, Play: play}
	}

	entry := table.Entry(s.roller.Roll(table.Len()) - 1)
	return Outcome{
		Team:  t.Name,
		Play:  play,
		Key:   entry.Key,
		Yards: entry.Yards,
	}, nil
}
