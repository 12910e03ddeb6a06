package game

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/paydirt/internal/dice"
	"github.com/samdwyer/paydirt/internal/team"
)

// DefaultQuarterSeconds is the length of a quarter on the game clock.
const DefaultQuarterSeconds = 15 * 60

// Config holds everything a game needs. User, Comp and Chooser are required.
type Config struct {
	// ID identifies the game in logs and traces. Empty generates a UUID.
	ID string

	User *team.Team
	Comp *team.Team

	// Chooser supplies the user's play choices.
	Chooser Chooser
	// Renderer receives a snapshot after every down. Nil renders nothing.
	Renderer Renderer

	// Roller drives outcome sampling and computer choices. Nil seeds from Seed.
	Roller *dice.Roller
	// Seed for random number generation, used when Roller is nil.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// QuarterSeconds overrides DefaultQuarterSeconds when positive.
	QuarterSeconds int
	// CoinToss picks the opening receiver at random instead of giving the ball to the user.
	CoinToss bool

	Logger *slog.Logger
	Tracer trace.Tracer
}
