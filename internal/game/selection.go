package game

import (
	"context"
	"log/slog"

	"github.com/samdwyer/paydirt/internal/play"
	"github.com/samdwyer/paydirt/internal/playsheet"
)

// LegalPlays returns the plays side may call in the current state.
func (g *Game) LegalPlays(side play.Side) []string {
	return legalPlays(g.state.PlayState, side == g.state.Possession)
}

func legalPlays(state play.State, possessing bool) []string {
	switch state {
	case play.StateKickoff:
		if possessing {
			return playsheet.KickoffReturnPlays()
		}
		return playsheet.KickoffPlays()
	case play.StateOffense, play.StateDefense:
		if possessing {
			return append(playsheet.OffensePlays(), playsheet.SpecialTeamsOffensePlays()...)
		}
		return playsheet.DefensePlays()
	case play.StatePostTouchdown:
		if possessing {
			return playsheet.PostTouchdownPlays()
		}
		return playsheet.DefensePlays()
	case play.StateExtraPoint:
		if possessing {
			return []string{playsheet.PlayExtraPoint}
		}
		return playsheet.DefensePlays()
	case play.StateTwoPointAttempt:
		if possessing {
			return []string{playsheet.PlayTwoPoint}
		}
		return playsheet.DefensePlays()
	case play.StateFieldGoal:
		if possessing {
			return []string{playsheet.PlayFieldGoal}
		}
		return playsheet.DefensePlays()
	case play.StatePunt:
		if possessing {
			return []string{playsheet.PlayPunt}
		}
		return playsheet.DefensePlays()
	default:
		return nil
	}
}

// selectPlays has both sides choose and returns the state the down will be played in.
// During a conversion the scoring side chooses first so the defense sees a settled state.
func (g *Game) selectPlays(ctx context.Context) (play.State, error) {
	state := g.state.PlayState
	offense := g.state.Possession

	switch state {
	case play.StateKickoff:
		for _, side := range []play.Side{offense, offense.Other()} {
			if _, err := g.choose(ctx, side, legalPlays(state, side == offense)); err != nil {
				return state, err
			}
		}
		return state, nil

	case play.StateOffense, play.StateDefense:
		called, err := g.choose(ctx, offense, legalPlays(state, true))
		if err != nil {
			return state, err
		}
		switch called {
		case playsheet.PlayFieldGoal:
			state = play.StateFieldGoal
		case playsheet.PlayPunt:
			state = play.StatePunt
		}
		if _, err := g.choose(ctx, offense.Other(), legalPlays(state, false)); err != nil {
			return state, err
		}
		return state, nil

	case play.StatePostTouchdown:
		called, err := g.choose(ctx, offense, legalPlays(state, true))
		if err != nil {
			return state, err
		}
		state = play.StateExtraPoint
		if called == playsheet.PlayTwoPoint {
			state = play.StateTwoPointAttempt
		}
		if _, err := g.choose(ctx, offense.Other(), legalPlays(state, false)); err != nil {
			return state, err
		}
		return state, nil

	default:
		return state, ErrInvalidState
	}
}

// choose asks side for a play and records it on the team. The computer picks at random;
// the user is asked through the chooser until the answer is in range.
func (g *Game) choose(ctx context.Context, side play.Side, legal []string) (string, error) {
	if len(legal) == 0 {
		return "", ErrInvalidState
	}

	t := g.teams[side]
	if side == play.SideComp {
		called := g.roller.Pick(legal)
		t.Select(called)
		return called, nil
	}

	idx, err := ask(ctx, g.chooser, legal, g.logger)
	if err != nil {
		return "", err
	}
	t.Select(legal[idx])
	return legal[idx], nil
}

// ask re-requests a choice until the chooser answers inside options.
func ask(ctx context.Context, chooser Chooser, options []string, logger *slog.Logger) (int, error) {
	var last int
	for attempt := 1; attempt <= maxSelectionAttempts; attempt++ {
		idx, err := chooser.SelectPlay(ctx, options)
		if err != nil {
			return 0, err
		}
		if idx >= 0 && idx < len(options) {
			return idx, nil
		}
		last = idx
		logger.Warn("selection out of range", "index", idx, "options", len(options), "attempt", attempt)
	}
	return 0, &InvalidSelectionError{Index: last, Count: len(options), Attempts: maxSelectionAttempts}
}
