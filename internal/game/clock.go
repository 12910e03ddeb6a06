package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/paydirt/internal/play"
)

const quartersPerGame = 4

func (g *Game) runClock(seconds int) {
	g.state.ClockSeconds -= seconds
}

// playRunoff is the time a scrimmage down takes; a timeout stops the clock early.
func (g *Game) playRunoff() int {
	if g.timeoutCalled {
		return runoffStopped
	}
	return runoffPlay
}

// conversionPending reports a touchdown whose try has not been played yet.
func (s *State) conversionPending() bool {
	switch s.PlayState {
	case play.StatePostTouchdown, play.StateExtraPoint, play.StateTwoPointAttempt:
		return true
	default:
		return false
	}
}

// checkClock ends the quarter once time has expired. A try after a touchdown is still
// played with no time left.
func (g *Game) checkClock(ctx context.Context) {
	s := &g.state
	if s.ClockSeconds > 0 {
		return
	}
	s.ClockSeconds = 0
	if s.conversionPending() {
		return
	}
	g.endQuarter(ctx)
}

func (g *Game) endQuarter(ctx context.Context) {
	s := &g.state
	_, span := g.tracer.Start(ctx, "game.quarter_end")
	defer span.End()
	span.SetAttributes(
		attribute.Int("quarter", s.Quarter),
		attribute.Int("user_score", g.teams[play.SideUser].Score),
		attribute.Int("comp_score", g.teams[play.SideComp].Score),
	)

	g.logger.Info("end of quarter",
		"quarter", s.Quarter,
		"user_score", g.teams[play.SideUser].Score,
		"comp_score", g.teams[play.SideComp].Score,
	)

	switch {
	case s.Quarter >= quartersPerGame:
		s.GameOver = true
	case s.Quarter == quartersPerGame/2:
		// Halftime: the opening receiver kicks off the second half.
		s.Quarter++
		s.ClockSeconds = g.quarterS
		for _, t := range g.teams {
			t.ResetTimeouts()
		}
		g.setupKickoff(g.openingReceiver)
	default:
		s.Quarter++
		s.ClockSeconds = g.quarterS
	}
}
