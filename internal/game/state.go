// Package game provides the down-by-down state machine of a football game.
package game

import "github.com/samdwyer/paydirt/internal/play"

// Field geometry. Midfield is 0 and the goal lines are at ±GoalLine.
const (
	GoalLine = 50

	kickoffYardLine   = 35 // Kicker's own 35
	kickoffTouchback  = 25 // Receiver's own 25
	puntTouchback     = 20 // Receiver's own 20
	conversionYards   = 2  // Conversions snap from the 2
	firstDownDistance = 10
)

// Clock runoff per kind of play, in seconds.
const (
	runoffPlay    = 40
	runoffStopped = 10
)

// Direction is the way the team in possession is advancing.
type Direction int

const (
	DirectionLeft Direction = iota
	DirectionRight
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == DirectionLeft {
		return DirectionRight
	}
	return DirectionLeft
}

// Sign is +1 when advancing right and -1 when advancing left.
func (d Direction) Sign() int {
	if d == DirectionRight {
		return 1
	}
	return -1
}

// State is the single source of truth for a game in progress.
type State struct {
	BallPosition int        // In [-GoalLine, GoalLine]; 0 is midfield
	Down         int        // 0 on kicks and conversions, else 1-4
	Distance     int        // Yards to gain for a first down, or to the goal inside the 10
	Direction    Direction  // Direction the possessing team advances
	Possession   play.Side  // On a kickoff, the receiving side
	PlayState    play.State //
	ClockSeconds int        // Remaining in the quarter
	Quarter      int
	GameOver     bool
}

// YardsToGoal returns the distance to the goal line the possessing team is attacking.
func (s *State) YardsToGoal() int {
	return GoalLine - s.BallPosition*s.Direction.Sign()
}

// advance moves the ball net yards in the direction of travel.
func (s *State) advance(net int) {
	s.BallPosition += net * s.Direction.Sign()
}

// setDistance resets the line to gain: 10 yards, or the goal line when it is closer.
func (s *State) setDistance() {
	s.Distance = firstDownDistance
	if ytg := s.YardsToGoal(); ytg <= firstDownDistance {
		s.Distance = ytg
	}
}

// inEndZone reports the ball at or past the goal line being attacked.
func (s *State) inEndZone() bool {
	return s.BallPosition*s.Direction.Sign() >= GoalLine
}

// inOwnEndZone reports the ball at or behind the possessing team's own goal line.
func (s *State) inOwnEndZone() bool {
	return s.BallPosition*s.Direction.Sign() <= -GoalLine
}

// ownYardLine is the ball position of a team's own yard line given its direction of travel.
func ownYardLine(yards int, dir Direction) int {
	return -dir.Sign() * (GoalLine - yards)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
