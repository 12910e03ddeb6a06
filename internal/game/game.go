package game

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/paydirt/internal/dice"
	"github.com/samdwyer/paydirt/internal/play"
	"github.com/samdwyer/paydirt/internal/team"
	"github.com/samdwyer/paydirt/internal/telemetry"
)

// Game owns the state of one game and both teams for its lifetime. It is driven one down
// at a time and is not safe for concurrent use.
type Game struct {
	ID string

	teams    [2]*team.Team // Indexed by play.Side
	state    State
	last     *play.Resolution
	quarterS int

	// Side that received the opening kickoff; the other side receives after halftime.
	openingReceiver play.Side
	// A timeout was called for the coming down.
	timeoutCalled bool

	roller   *dice.Roller
	sampler  *dice.Sampler
	chooser  Chooser
	renderer Renderer
	logger   *slog.Logger
	tracer   trace.Tracer
}

// New creates a game set up for the opening kickoff.
func New(cfg *Config) (*Game, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.User == nil || cfg.Comp == nil {
		return nil, ErrNilTeam
	}
	if cfg.Chooser == nil {
		return nil, ErrNilChooser
	}

	g := &Game{
		ID:       cfg.ID,
		quarterS: cfg.QuarterSeconds,
		roller:   cfg.Roller,
		chooser:  cfg.Chooser,
		renderer: cfg.Renderer,
		logger:   cfg.Logger,
		tracer:   cfg.Tracer,
	}
	g.teams[play.SideUser] = cfg.User
	g.teams[play.SideComp] = cfg.Comp

	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	if g.quarterS <= 0 {
		g.quarterS = DefaultQuarterSeconds
	}
	if g.roller == nil {
		g.roller = dice.New(&dice.Config{Seed: cfg.Seed})
	}
	if g.renderer == nil {
		g.renderer = NopRenderer{}
	}
	if g.logger == nil {
		g.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if g.tracer == nil {
		g.tracer = telemetry.Tracer("game")
	}
	g.sampler = dice.NewSampler(g.roller)
	g.logger = g.logger.With("game_id", g.ID)

	// User receives unless a coin toss says otherwise.
	g.openingReceiver = play.SideUser
	if cfg.CoinToss && g.roller.Roll(2) == 2 {
		g.openingReceiver = play.SideComp
	}

	g.state = State{
		Quarter:      1,
		ClockSeconds: g.quarterS,
		// The opening kicker kicks toward the left end zone.
		Possession: g.openingReceiver.Other(),
		Direction:  DirectionLeft,
	}
	g.setupKickoff(g.openingReceiver.Other())

	return g, nil
}

// State returns a copy of the current state.
func (g *Game) State() State {
	return g.state
}

// Team returns the team controlled by side.
func (g *Game) Team(side play.Side) *team.Team {
	return g.teams[side]
}

// Over reports whether the final whistle has blown.
func (g *Game) Over() bool {
	return g.state.GameOver
}

// Run plays downs until the game ends, the chooser fails or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	ctx, span := g.tracer.Start(ctx, "game.init")
	span.SetAttributes(
		attribute.String("game.id", g.ID),
		attribute.String("team.user", g.teams[play.SideUser].Name),
		attribute.String("team.comp", g.teams[play.SideComp].Name),
		attribute.String("opening_receiver", g.openingReceiver.String()),
	)
	span.End()

	g.logger.Info("game started",
		"user", g.teams[play.SideUser].Name,
		"comp", g.teams[play.SideComp].Name,
		"opening_receiver", g.openingReceiver.String(),
	)
	g.renderer.Render(g.Snapshot())

	for !g.state.GameOver {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := g.PlayDown(ctx); err != nil {
			return err
		}
	}

	g.logger.Info("game over",
		"user_score", g.teams[play.SideUser].Score,
		"comp_score", g.teams[play.SideComp].Score,
	)
	return nil
}

// PlayDown runs one selection, resolution and post-play cycle. On error the game state
// is left as it was before the down.
func (g *Game) PlayDown(ctx context.Context) (play.Resolution, error) {
	if g.state.GameOver {
		return play.Resolution{}, ErrGameOver
	}

	ctx, span := g.tracer.Start(ctx, "game.down")
	defer span.End()
	span.SetAttributes(
		attribute.String("game.id", g.ID),
		attribute.Int("quarter", g.state.Quarter),
		attribute.Int("clock", g.state.ClockSeconds),
		attribute.Int("down", g.state.Down),
		attribute.Int("ball_position", g.state.BallPosition),
	)

	res, err := g.playDown(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return play.Resolution{}, err
	}

	span.SetAttributes(
		attribute.String("state", res.State.String()),
		attribute.String("user_play", res.User.Play),
		attribute.String("comp_play", res.Comp.Play),
		attribute.Int("net_yards", res.NetYards),
	)

	g.renderer.Render(g.Snapshot())
	return res, nil
}

func (g *Game) playDown(ctx context.Context) (play.Resolution, error) {
	user, comp := g.teams[play.SideUser], g.teams[play.SideComp]
	defer user.ClearSelection()
	defer comp.ClearSelection()

	next, err := g.selectPlays(ctx)
	if err != nil {
		return play.Resolution{}, err
	}

	userOut, err := g.sample(user)
	if err != nil {
		return play.Resolution{}, err
	}
	compOut, err := g.sample(comp)
	if err != nil {
		return play.Resolution{}, err
	}

	res, err := play.Resolve(next, userOut, compOut, g.state.Possession)
	if err != nil {
		return play.Resolution{}, err
	}

	g.logger.Info("play resolved",
		"quarter", g.state.Quarter,
		"clock", g.state.ClockSeconds,
		"state", next.String(),
		"user_play", userOut.Play,
		"user_roll", userOut.Key,
		"user_yards", userOut.Yards,
		"comp_play", compOut.Play,
		"comp_roll", compOut.Key,
		"comp_yards", compOut.Yards,
		"net_yards", res.NetYards,
	)

	// Nothing below can fail: the state changes only once both sides have rolled.
	g.state.PlayState = next
	g.apply(ctx, res)
	g.checkClock(ctx)
	g.timeoutCalled = false
	g.last = &res

	return res, nil
}

func (g *Game) sample(t *team.Team) (dice.Outcome, error) {
	name, err := t.Selected()
	if err != nil {
		return dice.Outcome{}, fmt.Errorf("%s: %w", t.Name, err)
	}
	return g.sampler.Sample(t, name)
}

// CallTimeout spends one of side's timeouts; the next down runs less time off the clock.
func (g *Game) CallTimeout(side play.Side) error {
	if g.state.GameOver {
		return ErrGameOver
	}
	t := g.teams[side]
	if !t.UseTimeout() {
		return ErrNoTimeouts
	}
	g.timeoutCalled = true
	g.logger.Info("timeout", "team", t.Name, "remaining", t.Timeouts)
	return nil
}
