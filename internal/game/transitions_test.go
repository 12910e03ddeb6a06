package game

import (
	"context"
	"testing"

	"github.com/samdwyer/paydirt/internal/play"
)

func TestAdvanceIsDirectional(t *testing.T) {
	for p := -GoalLine; p <= GoalLine; p += 5 {
		for _, yards := range []int{-12, -1, 0, 3, 17} {
			s := State{BallPosition: p, Direction: DirectionRight}
			s.advance(yards)
			if s.BallPosition != p+yards {
				t.Fatalf("RIGHT from %d by %d = %d, want %d", p, yards, s.BallPosition, p+yards)
			}

			s = State{BallPosition: p, Direction: DirectionLeft}
			s.advance(yards)
			if s.BallPosition != p-yards {
				t.Fatalf("LEFT from %d by %d = %d, want %d", p, yards, s.BallPosition, p-yards)
			}
		}
	}
}

func TestSetDistance(t *testing.T) {
	tests := []struct {
		ball int
		dir  Direction
		want int
	}{
		{0, DirectionRight, 10},
		{-30, DirectionRight, 10},
		{40, DirectionRight, 10},
		{43, DirectionRight, 7},
		{49, DirectionRight, 1},
		{-43, DirectionLeft, 7},
		{43, DirectionLeft, 10},
		{-45, DirectionRight, 10},
	}

	for _, tt := range tests {
		s := State{BallPosition: tt.ball, Direction: tt.dir}
		s.setDistance()
		if s.Distance != tt.want {
			t.Errorf("setDistance() at %d heading %v = %d, want %d", tt.ball, tt.dir, s.Distance, tt.want)
		}
	}
}

func TestTouchdown(t *testing.T) {
	tests := []struct {
		name     string
		ball     int
		dir      Direction
		yards    int
		wantBall int
	}{
		{"right", 45, DirectionRight, 7, 48},
		{"left", -45, DirectionLeft, 10, -48},
		{"exactly the goal line", 40, DirectionRight, 10, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := scrimmageGame(t, tt.ball, tt.dir, 2, 5)
			clock := g.state.ClockSeconds

			g.apply(context.Background(), net(play.StateOffense, play.SideUser, tt.yards))

			if g.teams[play.SideUser].Score != 6 {
				t.Errorf("user score = %d, want 6", g.teams[play.SideUser].Score)
			}
			if g.teams[play.SideComp].Score != 0 {
				t.Errorf("comp score = %d, want 0", g.teams[play.SideComp].Score)
			}
			if g.state.PlayState != play.StatePostTouchdown {
				t.Errorf("PlayState = %v, want post_touchdown", g.state.PlayState)
			}
			if g.state.Down != 0 || g.state.Distance != 0 {
				t.Errorf("down/distance = %d/%d, want 0/0", g.state.Down, g.state.Distance)
			}
			if g.state.BallPosition != tt.wantBall {
				t.Errorf("BallPosition = %d, want %d", g.state.BallPosition, tt.wantBall)
			}
			if g.state.ClockSeconds != clock-runoffStopped {
				t.Errorf("ClockSeconds = %d, want %d", g.state.ClockSeconds, clock-runoffStopped)
			}
			if g.state.Possession != play.SideUser || g.state.Direction != tt.dir {
				t.Error("touchdown changed possession or direction")
			}
		})
	}
}

func TestFirstDown(t *testing.T) {
	tests := []struct {
		name         string
		ball, yards  int
		distance     int
		wantBall     int
		wantDistance int
	}{
		{"midfield", 0, 5, 3, 5, 10},
		{"exact", -20, 10, 10, -10, 10},
		{"first and goal", 35, 8, 4, 43, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := scrimmageGame(t, tt.ball, DirectionRight, 3, tt.distance)
			clock := g.state.ClockSeconds

			g.apply(context.Background(), net(play.StateOffense, play.SideUser, tt.yards))

			if g.state.Down != 1 {
				t.Errorf("Down = %d, want 1", g.state.Down)
			}
			if g.state.Distance != tt.wantDistance {
				t.Errorf("Distance = %d, want %d", g.state.Distance, tt.wantDistance)
			}
			if g.state.BallPosition != tt.wantBall {
				t.Errorf("BallPosition = %d, want %d", g.state.BallPosition, tt.wantBall)
			}
			if g.state.ClockSeconds != clock-runoffPlay {
				t.Errorf("ClockSeconds = %d, want %d", g.state.ClockSeconds, clock-runoffPlay)
			}
		})
	}
}

// Line Plunge for 3 against a defense roll of -1 on first and ten.
func TestShortGainAdvancesDown(t *testing.T) {
	g := scrimmageGame(t, -20, DirectionRight, 1, 10)

	g.apply(context.Background(), net(play.StateOffense, play.SideUser, 3+(-1)))

	if g.state.Down != 2 {
		t.Errorf("Down = %d, want 2", g.state.Down)
	}
	if g.state.Distance != 8 {
		t.Errorf("Distance = %d, want 8", g.state.Distance)
	}
	if g.state.BallPosition != -18 {
		t.Errorf("BallPosition = %d, want -18", g.state.BallPosition)
	}
}

func TestLossAddsDistance(t *testing.T) {
	g := scrimmageGame(t, 0, DirectionLeft, 2, 6)
	g.apply(context.Background(), net(play.StateOffense, play.SideUser, -4))

	if g.state.Down != 3 || g.state.Distance != 10 || g.state.BallPosition != 4 {
		t.Errorf("down/distance/ball = %d/%d/%d, want 3/10/4", g.state.Down, g.state.Distance, g.state.BallPosition)
	}
}

func TestTurnoverOnDowns(t *testing.T) {
	g := scrimmageGame(t, 10, DirectionRight, 4, 5)
	clock := g.state.ClockSeconds

	g.apply(context.Background(), net(play.StateOffense, play.SideUser, 2))

	if g.state.Possession != play.SideComp {
		t.Errorf("Possession = %v, want comp", g.state.Possession)
	}
	if g.state.Direction != DirectionLeft {
		t.Errorf("Direction = %v, want left", g.state.Direction)
	}
	if g.state.Down != 1 || g.state.Distance != 10 {
		t.Errorf("down/distance = %d/%d, want 1/10", g.state.Down, g.state.Distance)
	}
	if g.state.BallPosition != 12 {
		t.Errorf("BallPosition = %d, want 12", g.state.BallPosition)
	}
	if g.state.PlayState != play.StateDefense {
		t.Errorf("PlayState = %v, want defense", g.state.PlayState)
	}
	if g.state.ClockSeconds != clock-runoffStopped {
		t.Errorf("ClockSeconds = %d, want %d", g.state.ClockSeconds, clock-runoffStopped)
	}
}

// A fourth-down conversion is a first down, not a turnover.
func TestFourthDownConversion(t *testing.T) {
	g := scrimmageGame(t, 10, DirectionRight, 4, 2)
	g.apply(context.Background(), net(play.StateOffense, play.SideUser, 2))

	if g.state.Possession != play.SideUser || g.state.Down != 1 {
		t.Errorf("possession/down = %v/%d, want user/1", g.state.Possession, g.state.Down)
	}
}

func TestSafety(t *testing.T) {
	g := scrimmageGame(t, -45, DirectionRight, 2, 10)

	g.apply(context.Background(), net(play.StateOffense, play.SideUser, -6))

	if g.teams[play.SideComp].Score != 2 {
		t.Errorf("comp score = %d, want 2", g.teams[play.SideComp].Score)
	}
	if g.teams[play.SideUser].Score != 0 {
		t.Errorf("user score = %d, want 0", g.teams[play.SideUser].Score)
	}
	// The user kicks, still heading right, from its own 35.
	if g.state.PlayState != play.StateKickoff || g.state.Possession != play.SideComp {
		t.Errorf("state/possession = %v/%v, want kickoff/comp", g.state.PlayState, g.state.Possession)
	}
	if g.state.Direction != DirectionRight || g.state.BallPosition != -15 {
		t.Errorf("direction/ball = %v/%d, want right/-15", g.state.Direction, g.state.BallPosition)
	}
}

func TestFieldGoal(t *testing.T) {
	t.Run("good", func(t *testing.T) {
		g := scrimmageGame(t, 30, DirectionRight, 4, 8)
		g.state.PlayState = play.StateFieldGoal

		g.apply(context.Background(), net(play.StateFieldGoal, play.SideUser, 25))

		if g.teams[play.SideUser].Score != 3 {
			t.Errorf("user score = %d, want 3", g.teams[play.SideUser].Score)
		}
		if g.state.PlayState != play.StateKickoff {
			t.Errorf("PlayState = %v, want kickoff", g.state.PlayState)
		}
		if g.state.Possession != play.SideComp {
			t.Errorf("Possession = %v, want comp (receiving)", g.state.Possession)
		}
		if g.state.Direction != DirectionRight || g.state.BallPosition != -15 {
			t.Errorf("direction/ball = %v/%d, want right/-15", g.state.Direction, g.state.BallPosition)
		}
	})

	t.Run("no good", func(t *testing.T) {
		g := scrimmageGame(t, 10, DirectionRight, 4, 8)
		g.state.PlayState = play.StateFieldGoal

		g.apply(context.Background(), net(play.StateFieldGoal, play.SideUser, 30))

		if g.teams[play.SideUser].Score != 0 {
			t.Errorf("user score = %d, want 0", g.teams[play.SideUser].Score)
		}
		if g.state.BallPosition != 10 {
			t.Errorf("BallPosition = %d, want the spot of the kick (10)", g.state.BallPosition)
		}
		if g.state.Possession != play.SideComp || g.state.Direction != DirectionLeft {
			t.Errorf("possession/direction = %v/%v, want comp/left", g.state.Possession, g.state.Direction)
		}
		if g.state.Down != 1 || g.state.Distance != 10 || g.state.PlayState != play.StateDefense {
			t.Errorf("down/distance/state = %d/%d/%v, want 1/10/defense", g.state.Down, g.state.Distance, g.state.PlayState)
		}
	})

	t.Run("comp kicks left", func(t *testing.T) {
		g := scrimmageGame(t, -20, DirectionLeft, 4, 8)
		g.state.Possession = play.SideComp
		g.state.PlayState = play.StateFieldGoal

		g.apply(context.Background(), net(play.StateFieldGoal, play.SideComp, 35))

		if g.teams[play.SideComp].Score != 3 {
			t.Errorf("comp score = %d, want 3", g.teams[play.SideComp].Score)
		}
		if g.state.Possession != play.SideUser || g.state.BallPosition != 15 {
			t.Errorf("possession/ball = %v/%d, want user/15", g.state.Possession, g.state.BallPosition)
		}
	})
}

func TestExtraPoint(t *testing.T) {
	tests := []struct {
		name      string
		yards     int
		wantScore int
	}{
		{"good", 0, 1},
		{"good by more", 2, 1},
		{"missed", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := scrimmageGame(t, -48, DirectionLeft, 0, 0)
			g.state.Possession = play.SideComp
			g.state.PlayState = play.StateExtraPoint

			g.apply(context.Background(), net(play.StateExtraPoint, play.SideComp, tt.yards))

			if g.teams[play.SideComp].Score != tt.wantScore {
				t.Errorf("comp score = %d, want %d", g.teams[play.SideComp].Score, tt.wantScore)
			}
			// Possession goes to the user for the kickoff either way.
			if g.state.Possession != play.SideUser || g.state.PlayState != play.StateKickoff {
				t.Errorf("possession/state = %v/%v, want user/kickoff", g.state.Possession, g.state.PlayState)
			}
			if g.state.BallPosition != 15 || g.state.Direction != DirectionLeft {
				t.Errorf("ball/direction = %d/%v, want 15/left", g.state.BallPosition, g.state.Direction)
			}
		})
	}
}

func TestTwoPointAttempt(t *testing.T) {
	tests := []struct {
		yards     int
		wantScore int
	}{
		{2, 2},
		{5, 2},
		{1, 0},
		{-3, 0},
	}

	for _, tt := range tests {
		g := scrimmageGame(t, 48, DirectionRight, 0, 0)
		g.state.PlayState = play.StateTwoPointAttempt

		g.apply(context.Background(), net(play.StateTwoPointAttempt, play.SideUser, tt.yards))

		if g.teams[play.SideUser].Score != tt.wantScore {
			t.Errorf("2pt for %d yards: score = %d, want %d", tt.yards, g.teams[play.SideUser].Score, tt.wantScore)
		}
		if g.state.Possession != play.SideComp || g.state.PlayState != play.StateKickoff {
			t.Errorf("2pt for %d yards: possession/state = %v/%v, want comp/kickoff", tt.yards, g.state.Possession, g.state.PlayState)
		}
	}
}

func TestPunt(t *testing.T) {
	t.Run("returned", func(t *testing.T) {
		g := scrimmageGame(t, -20, DirectionRight, 4, 6)
		g.state.PlayState = play.StatePunt

		g.apply(context.Background(), net(play.StatePunt, play.SideUser, 40))

		if g.state.Possession != play.SideComp || g.state.Direction != DirectionLeft {
			t.Errorf("possession/direction = %v/%v, want comp/left", g.state.Possession, g.state.Direction)
		}
		if g.state.BallPosition != 20 || g.state.Down != 1 || g.state.Distance != 10 {
			t.Errorf("ball/down/distance = %d/%d/%d, want 20/1/10", g.state.BallPosition, g.state.Down, g.state.Distance)
		}
	})

	t.Run("touchback", func(t *testing.T) {
		g := scrimmageGame(t, 20, DirectionRight, 4, 6)
		g.state.PlayState = play.StatePunt

		g.apply(context.Background(), net(play.StatePunt, play.SideUser, 45))

		// Comp's own 20 while heading left.
		if g.state.BallPosition != 30 {
			t.Errorf("BallPosition = %d, want 30", g.state.BallPosition)
		}
		if g.state.PlayState != play.StateDefense {
			t.Errorf("PlayState = %v, want defense", g.state.PlayState)
		}
	})
}

func TestKickoff(t *testing.T) {
	tests := []struct {
		name      string
		yards     int
		wantBall  int
		wantState play.State
		wantScore int
	}{
		// Comp kicks 40 from its 35 heading left; the user returns 12.
		{"returned", 28, -13, play.StateOffense, 0},
		{"touchback", 70, -25, play.StateOffense, 0},
		{"into the end zone exactly", 65, -25, play.StateOffense, 0},
		{"returned for a touchdown", -59, 48, play.StatePostTouchdown, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, fixedTeam(t, "Falcons", nil), fixedTeam(t, "Bears", nil), nil)
			if g.state.PlayState != play.StateKickoff || g.state.BallPosition != 15 || g.state.Direction != DirectionLeft {
				t.Fatalf("opening state = %+v", g.state)
			}
			clock := g.state.ClockSeconds

			g.apply(context.Background(), net(play.StateKickoff, play.SideUser, tt.yards))

			if g.state.BallPosition != tt.wantBall {
				t.Errorf("BallPosition = %d, want %d", g.state.BallPosition, tt.wantBall)
			}
			if g.state.PlayState != tt.wantState {
				t.Errorf("PlayState = %v, want %v", g.state.PlayState, tt.wantState)
			}
			if g.state.Direction != DirectionRight {
				t.Errorf("Direction = %v, want right", g.state.Direction)
			}
			if g.state.Possession != play.SideUser {
				t.Errorf("Possession = %v, want user", g.state.Possession)
			}
			if g.teams[play.SideUser].Score != tt.wantScore {
				t.Errorf("user score = %d, want %d", g.teams[play.SideUser].Score, tt.wantScore)
			}
			if g.state.ClockSeconds != clock-runoffStopped {
				t.Errorf("ClockSeconds = %d, want %d", g.state.ClockSeconds, clock-runoffStopped)
			}
			if tt.wantState == play.StateOffense && (g.state.Down != 1 || g.state.Distance != 10) {
				t.Errorf("down/distance = %d/%d, want 1/10", g.state.Down, g.state.Distance)
			}
		})
	}
}
