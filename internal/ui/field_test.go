package ui

import (
	"reflect"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/paydirt/internal/game"
	"github.com/samdwyer/paydirt/internal/play"
)

func TestFieldColumn(t *testing.T) {
	tests := []struct {
		ball, cols, want int
	}{
		{-50, 101, 0},
		{0, 101, 50},
		{50, 101, 100},
		{-13, 101, 37},
		{0, 51, 25},
		{50, 51, 50},
		{75, 101, 100},
		{10, 1, 0},
	}

	for _, tt := range tests {
		if got := fieldColumn(tt.ball, tt.cols); got != tt.want {
			t.Errorf("fieldColumn(%d, %d) = %d, want %d", tt.ball, tt.cols, got, tt.want)
		}
	}
}

func TestBallPath(t *testing.T) {
	tests := []struct {
		from, to, frames int
		want             []int
	}{
		{15, -13, 4, []int{8, 1, -6, -13}},
		{0, 10, 1, []int{10}},
		{0, 10, 0, []int{10}},
		{5, 5, 8, []int{5}},
	}

	for _, tt := range tests {
		if got := ballPath(tt.from, tt.to, tt.frames); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ballPath(%d, %d, %d) = %v, want %v", tt.from, tt.to, tt.frames, got, tt.want)
		}
	}
}

func TestClockString(t *testing.T) {
	tests := map[int]string{900: "15:00", 65: "1:05", 0: "0:00", -10: "0:00"}
	for seconds, want := range tests {
		if got := clockString(seconds); got != want {
			t.Errorf("clockString(%d) = %q, want %q", seconds, got, want)
		}
	}
}

func TestSituation(t *testing.T) {
	tests := []struct {
		state game.State
		want  string
	}{
		{game.State{PlayState: play.StateKickoff}, "Kickoff"},
		{game.State{PlayState: play.StatePostTouchdown, BallPosition: 48}, "Try"},
		{game.State{PlayState: play.StateOffense, Down: 1, Distance: 10, BallPosition: -20, Direction: game.DirectionRight}, "1st & 10"},
		{game.State{PlayState: play.StateDefense, Down: 3, Distance: 4, BallPosition: 10, Direction: game.DirectionLeft}, "3rd & 4"},
		{game.State{PlayState: play.StateOffense, Down: 2, Distance: 7, BallPosition: 43, Direction: game.DirectionRight}, "2nd & Goal"},
		{game.State{PlayState: play.StateOffense, Down: 4, Distance: 1, BallPosition: 0, Direction: game.DirectionRight}, "4th & 1"},
	}

	for _, tt := range tests {
		if got := situation(tt.state); got != tt.want {
			t.Errorf("situation(%+v) = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestSpot(t *testing.T) {
	snap := game.Snapshot{
		User: game.TeamSnapshot{Name: "Atlanta Falcons", Abbreviation: "ATL"},
		Comp: game.TeamSnapshot{Name: "Chicago Bears"},
	}

	tests := []struct {
		ball       int
		dir        game.Direction
		possession play.Side
		want       string
	}{
		{-13, game.DirectionRight, play.SideUser, "ATL 37"},
		{20, game.DirectionRight, play.SideUser, "Chi 30"},
		{15, game.DirectionLeft, play.SideUser, "ATL 35"},
		{15, game.DirectionLeft, play.SideComp, "Chi 35"},
		{0, game.DirectionLeft, play.SideComp, "50"},
	}

	for _, tt := range tests {
		snap.State = game.State{BallPosition: tt.ball, Direction: tt.dir, Possession: tt.possession}
		if got := spot(snap); got != tt.want {
			t.Errorf("spot(%d %v %v) = %q, want %q", tt.ball, tt.dir, tt.possession, got, tt.want)
		}
	}
}

func TestMenuKeys(t *testing.T) {
	if keyFor(0) != 'a' || keyFor(10) != 'k' {
		t.Errorf("keyFor(0), keyFor(10) = %c, %c", keyFor(0), keyFor(10))
	}

	tests := []struct {
		r     rune
		count int
		want  int
	}{
		{'a', 3, 0},
		{'C', 3, 2},
		{'d', 3, -1},
		{'1', 3, -1},
		{'k', 11, 10},
	}
	for _, tt := range tests {
		if got := indexFor(tt.r, tt.count); got != tt.want {
			t.Errorf("indexFor(%q, %d) = %d, want %d", tt.r, tt.count, got, tt.want)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#0B162A")
	if err != nil {
		t.Fatalf("ParseHexColor() error = %v", err)
	}
	if c != tcell.NewRGBColor(0x0B, 0x16, 0x2A) {
		t.Errorf("ParseHexColor() = %v", c)
	}

	for _, bad := range []string{"", "#FFF", "#GG0000", "A71930FF"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Errorf("ParseHexColor(%q) error = nil", bad)
		}
	}
}
