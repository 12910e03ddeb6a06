package game

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/samdwyer/paydirt/internal/dice"
	"github.com/samdwyer/paydirt/internal/play"
	"github.com/samdwyer/paydirt/internal/playsheet"
	"github.com/samdwyer/paydirt/internal/team"
)

// fixedTeam builds a team whose every table has a single face, so each play always
// gains the listed yards (0 when unlisted).
func fixedTeam(t *testing.T, name string, yards map[string]int) *team.Team {
	t.Helper()

	sections := []struct {
		name  playsheet.Section
		plays []string
	}{
		{playsheet.SectionOffense, playsheet.OffensePlays()},
		{playsheet.SectionDefense, playsheet.DefensePlays()},
		{playsheet.SectionSpecialTeams, concat(
			playsheet.KickoffPlays(),
			playsheet.KickoffReturnPlays(),
			playsheet.SpecialTeamsOffensePlays(),
			playsheet.PostTouchdownPlays(),
		)},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "team_info: {name: %q, abbreviation: %q}\n", name, strings.ToUpper(name[:3]))
	for _, sec := range sections {
		fmt.Fprintf(&b, "%s:\n", sec.name)
		for _, p := range sec.plays {
			fmt.Fprintf(&b, "  %q: {\"1\": %d}\n", p, yards[p])
		}
	}

	sheet, err := playsheet.Load(strings.NewReader(b.String()), name+".yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return team.New(strings.ToLower(name), sheet)
}

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// scriptChooser answers with the named plays in order, then repeats the last one.
type scriptChooser struct {
	picks []string
	calls int
	seen  [][]string
}

func (c *scriptChooser) SelectPlay(_ context.Context, legal []string) (int, error) {
	c.seen = append(c.seen, legal)
	pick := c.picks[len(c.picks)-1]
	if c.calls < len(c.picks) {
		pick = c.picks[c.calls]
	}
	c.calls++
	for i, p := range legal {
		if p == pick {
			return i, nil
		}
	}
	return -1, nil
}

func newTestGame(t *testing.T, user, comp *team.Team, chooser Chooser) *Game {
	t.Helper()
	if chooser == nil {
		chooser = &scriptChooser{picks: []string{playsheet.PlayLinePlunge}}
	}
	g, err := New(&Config{
		ID:      "test-game",
		User:    user,
		Comp:    comp,
		Chooser: chooser,
		Roller:  dice.New(&dice.Config{Seed: 1}),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return g
}

// scrimmageGame returns a game with the user on offense at ball, heading dir.
func scrimmageGame(t *testing.T, ball int, dir Direction, down, distance int) *Game {
	t.Helper()
	g := newTestGame(t, fixedTeam(t, "Falcons", nil), fixedTeam(t, "Bears", nil), nil)
	g.state.Possession = play.SideUser
	g.state.PlayState = play.StateOffense
	g.state.BallPosition = ball
	g.state.Direction = dir
	g.state.Down = down
	g.state.Distance = distance
	return g
}

func net(state play.State, possession play.Side, yards int) play.Resolution {
	return play.Resolution{State: state, Possession: possession, NetYards: yards}
}
