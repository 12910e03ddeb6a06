package play

import (
	"errors"
	"fmt"

	"github.com/samdwyer/paydirt/internal/dice"
)

// ErrUnknownState is returned for a state with no combination rule.
var ErrUnknownState = errors.New("unknown play state")

// Resolution contains the outcome of one down. It never says whether a kick was good or a
// first down was made; the game applies NetYards to its own rules.
type Resolution struct {
	State       State
	Possession  Side
	User        dice.Outcome
	Comp        dice.Outcome
	NetYards    int
	Description string // Human-readable summary (e.g., "Atlanta Falcons gained 4 yards")
}

// Tone classifies a narrative line for presentation.
type Tone int

const (
	ToneNeutral Tone = iota
	TonePositive
	ToneNegative
)

// Line is one sentence of play-by-play narrative.
type Line struct {
	Text string
	Tone Tone
}

// Lines returns the play-by-play: one roll line per side, then the summary.
func (r Resolution) Lines() []Line {
	return []Line{
		rollLine(r.User),
		rollLine(r.Comp),
		{Text: r.Description, Tone: toneOf(r.NetYards)},
	}
}

func rollLine(o dice.Outcome) Line {
	return Line{
		Text: fmt.Sprintf("%s rolled a %s for %d yards", o.Team, o.Key, o.Yards),
		Tone: toneOf(o.Yards),
	}
}

func toneOf(yards int) Tone {
	switch {
	case yards > 0:
		return TonePositive
	case yards < 0:
		return ToneNegative
	default:
		return ToneNeutral
	}
}

// Resolve combines the user's and computer's outcomes under the rule for state.
//
//	kickoff:            kick - return, signed for the receiving side in possession
//	scrimmage, 2pt:     user + comp
//	field goal, XP:     kicker - defender
//	punt:               kick - return
func Resolve(state State, user, comp dice.Outcome, possession Side) (Resolution, error) {
	res := Resolution{
		State:      state,
		Possession: possession,
		User:       user,
		Comp:       comp,
	}

	possessing := user.Team
	if possession == SideComp {
		possessing = comp.Team
	}

	switch state {
	case StateKickoff:
		res.NetYards = oriented(possession, comp.Yards, user.Yards)
		res.Description = fmt.Sprintf("Kickoff: Net %d yards", res.NetYards)
	case StateOffense, StateDefense, StateTwoPointAttempt:
		res.NetYards = user.Yards + comp.Yards
		res.Description = fmt.Sprintf("%s gained %d yards", possessing, res.NetYards)
	case StateFieldGoal:
		res.NetYards = oriented(possession, user.Yards, comp.Yards)
		res.Description = fmt.Sprintf("Field Goal: %d yards", res.NetYards)
	case StateExtraPoint:
		res.NetYards = oriented(possession, user.Yards, comp.Yards)
		res.Description = fmt.Sprintf("XP: Net %d yards", res.NetYards)
	case StatePunt:
		res.NetYards = oriented(possession, user.Yards, comp.Yards)
		res.Description = fmt.Sprintf("Punt: Net %d yards", res.NetYards)
	default:
		return Resolution{}, fmt.Errorf("%w: %s", ErrUnknownState, state)
	}

	return res, nil
}

// oriented returns a-b when the user is in possession and b-a otherwise.
func oriented(possession Side, a, b int) int {
	if possession == SideUser {
		return a - b
	}
	return b - a
}
