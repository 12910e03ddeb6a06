package game

import (
	"github.com/samdwyer/paydirt/internal/play"
	"github.com/samdwyer/paydirt/internal/playsheet"
	"github.com/samdwyer/paydirt/internal/team"
)

// TeamSnapshot is the scoreboard view of one team.
type TeamSnapshot struct {
	Name         string
	Abbreviation string
	Color        string
	Score        int
	Timeouts     int
}

// PlayOption is one entry of a play-list panel.
type PlayOption struct {
	Name     string
	Expected int // Mean yards on the team's table
}

// Snapshot is a read-only copy of the game for presentation.
type Snapshot struct {
	GameID    string
	User      TeamSnapshot
	Comp      TeamSnapshot
	State     State
	UserPlays []PlayOption
	CompPlays []PlayOption
	Last      *play.Resolution // Nil before the first down
}

// Possessing returns the scoreboard entry of the side in possession.
func (s Snapshot) Possessing() TeamSnapshot {
	if s.State.Possession == play.SideComp {
		return s.Comp
	}
	return s.User
}

// Snapshot copies the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		GameID:    g.ID,
		User:      teamSnapshot(g.teams[play.SideUser]),
		Comp:      teamSnapshot(g.teams[play.SideComp]),
		State:     g.state,
		UserPlays: g.playOptions(play.SideUser),
		CompPlays: g.playOptions(play.SideComp),
	}
	if g.last != nil {
		last := *g.last
		snap.Last = &last
	}
	return snap
}

func teamSnapshot(t *team.Team) TeamSnapshot {
	snap := TeamSnapshot{
		Name:     t.Name,
		Score:    t.Score,
		Timeouts: t.Timeouts,
	}
	if t.Sheet != nil {
		info := t.Sheet.Info()
		snap.Abbreviation = info.Abbreviation
		snap.Color = info.Color
	}
	return snap
}

func (g *Game) playOptions(side play.Side) []PlayOption {
	if g.state.GameOver {
		return nil
	}
	t := g.teams[side]
	legal := g.LegalPlays(side)
	opts := make([]PlayOption, 0, len(legal))
	for _, name := range legal {
		opt := PlayOption{Name: name}
		if section, ok := playsheet.SectionFor(name); ok && t.Sheet != nil {
			if table, err := t.Sheet.OutcomesFor(section, name); err == nil {
				opt.Expected = table.Expected()
			}
		}
		opts = append(opts, opt)
	}
	return opts
}
