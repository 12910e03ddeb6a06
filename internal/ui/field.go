package ui

import (
	"fmt"

	"github.com/samdwyer/paydirt/internal/game"
	"github.com/samdwyer/paydirt/internal/play"
)

// fieldColumn maps a ball position to one of cols playing-field columns, goal line to
// goal line.
func fieldColumn(ball, cols int) int {
	if cols <= 1 {
		return 0
	}
	ball = clamp(ball, -game.GoalLine, game.GoalLine)
	return (ball + game.GoalLine) * (cols - 1) / (2 * game.GoalLine)
}

// ballPath returns the positions the ball is drawn at when moving from one spot to the
// next, ending on to. frames <= 1 jumps straight there.
func ballPath(from, to, frames int) []int {
	if frames <= 1 || from == to {
		return []int{to}
	}
	path := make([]int, frames)
	for i := 1; i <= frames; i++ {
		path[i-1] = from + (to-from)*i/frames
	}
	return path
}

func clockString(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return fmt.Sprintf("%dth", n)
	}
}

// situation describes the coming down, e.g. "3rd & 4" or "1st & Goal".
func situation(s game.State) string {
	switch s.PlayState {
	case play.StateKickoff:
		return "Kickoff"
	case play.StatePostTouchdown:
		return "Try"
	}
	if s.Down == 0 {
		return s.PlayState.String()
	}
	if s.Distance == s.YardsToGoal() {
		return ordinal(s.Down) + " & Goal"
	}
	return fmt.Sprintf("%s & %d", ordinal(s.Down), s.Distance)
}

// spot names the yard line in terms of the half it lies in, e.g. "CHI 35" or "50".
// The team moving right defends the left half.
func spot(snap game.Snapshot) string {
	ball := snap.State.BallPosition
	if ball == 0 {
		return "50"
	}

	possessing, other := snap.Possessing(), snap.User
	if snap.State.Possession == play.SideUser {
		other = snap.Comp
	}
	left, right := possessing, other
	if snap.State.Direction == game.DirectionLeft {
		left, right = other, possessing
	}

	owner := right
	if ball < 0 {
		owner = left
	}
	return fmt.Sprintf("%s %d", label(owner), game.GoalLine-abs(ball))
}

// label is the short name of a team for tight spaces.
func label(t game.TeamSnapshot) string {
	if t.Abbreviation != "" {
		return t.Abbreviation
	}
	if len(t.Name) > 3 {
		return t.Name[:3]
	}
	return t.Name
}

// keyFor is the menu key for option i: 'a', 'b', ...
func keyFor(i int) rune {
	return rune('a' + i)
}

// indexFor is the option selected by key r among count options, or -1.
func indexFor(r rune, count int) int {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	i := int(r - 'a')
	if i < 0 || i >= count {
		return -1
	}
	return i
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
