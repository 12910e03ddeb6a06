// Package play resolves a down: it names the situations a down can be played in and
// combines both sides' dice outcomes into one net result.
package play

import "fmt"

// State is the situation governing which plays are legal and how outcomes combine.
type State int

const (
	// StateKickoff is a kickoff; possession is held by the receiving side.
	StateKickoff State = iota
	// StateOffense is a scrimmage down with the user in possession.
	StateOffense
	// StateDefense is a scrimmage down with the computer in possession.
	StateDefense
	// StatePostTouchdown waits for the scoring side to choose a conversion.
	StatePostTouchdown
	StateExtraPoint
	StateTwoPointAttempt
	StateFieldGoal
	StatePunt
)

var stateNames = map[State]string{
	StateKickoff:         "kickoff",
	StateOffense:         "offense",
	StateDefense:         "defense",
	StatePostTouchdown:   "post_touchdown",
	StateExtraPoint:      "extra_point",
	StateTwoPointAttempt: "two_point_attempt",
	StateFieldGoal:       "field_goal",
	StatePunt:            "punt",
}

// String returns a human-readable state name.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether s is one of the declared states.
func (s State) Valid() bool {
	_, ok := stateNames[s]
	return ok
}

// Scrimmage reports whether s is a regular down from scrimmage.
func (s State) Scrimmage() bool {
	return s == StateOffense || s == StateDefense
}

// ParseState converts a state name back into a State.
func ParseState(name string) (State, error) {
	for s, n := range stateNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownState, name)
}

// Side identifies who controls a team.
type Side int

const (
	SideUser Side = iota
	SideComp
)

// String returns a human-readable side name.
func (s Side) String() string {
	switch s {
	case SideUser:
		return "user"
	case SideComp:
		return "comp"
	default:
		return "unknown"
	}
}

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == SideUser {
		return SideComp
	}
	return SideUser
}
