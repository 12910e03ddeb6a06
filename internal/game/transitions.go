package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/paydirt/internal/play"
)

// apply moves the ball and runs the post-play rules in precedence order.
func (g *Game) apply(ctx context.Context, res play.Resolution) {
	s := &g.state
	spot := s.BallPosition
	offense := s.Possession
	s.advance(res.NetYards)

	switch {
	case s.PlayState == play.StateFieldGoal:
		g.runClock(runoffStopped)
		if abs(s.BallPosition) > GoalLine {
			g.score(ctx, offense, 3, "field goal")
			g.setupKickoff(offense)
			return
		}
		g.logger.Info("field goal missed", "spot", spot)
		s.BallPosition = spot
		g.changePossession()

	case s.PlayState == play.StateExtraPoint:
		if res.NetYards >= 0 {
			g.score(ctx, offense, 1, "extra point")
		} else {
			g.logger.Info("extra point missed")
		}
		g.setupKickoff(offense)

	case s.PlayState == play.StateTwoPointAttempt:
		if res.NetYards >= conversionYards {
			g.score(ctx, offense, 2, "two point conversion")
		} else {
			g.logger.Info("two point attempt failed")
		}
		g.setupKickoff(offense)

	case s.PlayState == play.StatePunt:
		g.runClock(runoffStopped)
		touchback := abs(s.BallPosition) >= GoalLine
		g.changePossession()
		if touchback {
			s.BallPosition = ownYardLine(puntTouchback, s.Direction)
			s.setDistance()
			g.logger.Info("touchback", "kind", "punt")
		}

	case s.PlayState == play.StateKickoff:
		g.applyKickoff(ctx)

	case s.inEndZone():
		g.touchdown(ctx)

	case s.inOwnEndZone():
		g.safety(ctx)

	case res.NetYards >= s.Distance:
		s.Down = 1
		s.setDistance()
		g.runClock(g.playRunoff())

	case s.Down >= 4:
		g.logger.Info("turnover on downs", "ball_position", s.BallPosition)
		g.changePossession()
		g.runClock(runoffStopped)

	default:
		s.Down++
		s.Distance -= res.NetYards
		g.runClock(g.playRunoff())
	}
}

// applyKickoff finishes a kickoff. The ball has already travelled in the kicker's direction.
func (g *Game) applyKickoff(ctx context.Context) {
	s := &g.state
	touchback := s.inEndZone()
	s.Direction = s.Direction.Flip()

	// Returned all the way through the kicking team.
	if s.inEndZone() {
		g.touchdown(ctx)
		return
	}
	if touchback {
		s.BallPosition = ownYardLine(kickoffTouchback, s.Direction)
		g.logger.Info("touchback", "kind", "kickoff")
	}

	s.Down = 1
	s.setDistance()
	s.PlayState = scrimmageState(s.Possession)
	g.runClock(runoffStopped)
}

// touchdown scores six for the side in possession and sets up the conversion on the 2.
func (g *Game) touchdown(ctx context.Context) {
	s := &g.state
	g.score(ctx, s.Possession, 6, "touchdown")
	g.runClock(runoffStopped)
	s.BallPosition = s.Direction.Sign() * (GoalLine - conversionYards)
	s.Down = 0
	s.Distance = 0
	s.PlayState = play.StatePostTouchdown
}

// safety scores two for the defense; the team tackled in its own end zone kicks off.
func (g *Game) safety(ctx context.Context) {
	conceding := g.state.Possession
	g.score(ctx, conceding.Other(), 2, "safety")
	g.runClock(runoffStopped)
	g.setupKickoff(conceding)
}

// changePossession hands the ball over at the current spot.
func (g *Game) changePossession() {
	s := &g.state
	s.Possession = s.Possession.Other()
	s.Direction = s.Direction.Flip()
	s.Down = 1
	s.setDistance()
	s.PlayState = scrimmageState(s.Possession)
}

// setupKickoff places the ball on the kicker's 35. Possession goes to the receiving side
// while the direction stays the kicker's until the kick is resolved.
func (g *Game) setupKickoff(kicker play.Side) {
	s := &g.state
	dir := s.Direction
	if s.Possession != kicker {
		dir = dir.Flip()
	}
	s.Possession = kicker.Other()
	s.Direction = dir
	s.BallPosition = ownYardLine(kickoffYardLine, dir)
	s.Down = 0
	s.Distance = 0
	s.PlayState = play.StateKickoff
}

func (g *Game) score(ctx context.Context, side play.Side, points int, kind string) {
	t := g.teams[side]
	t.AddPoints(points)

	trace.SpanFromContext(ctx).AddEvent("game.score", trace.WithAttributes(
		attribute.String("team", t.Name),
		attribute.String("kind", kind),
		attribute.Int("points", points),
	))
	g.logger.Info("score",
		"team", t.Name,
		"kind", kind,
		"points", points,
		"user_score", g.teams[play.SideUser].Score,
		"comp_score", g.teams[play.SideComp].Score,
	)
}

// scrimmageState names a scrimmage down from the user's point of view.
func scrimmageState(possession play.Side) play.State {
	if possession == play.SideUser {
		return play.StateOffense
	}
	return play.StateDefense
}
