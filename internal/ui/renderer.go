package ui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/paydirt/internal/game"
	"github.com/samdwyer/paydirt/internal/play"
)

// Screen rows.
const (
	rowScoreboard = 0
	rowYardLabels = 2
	rowFieldTop   = 3
	rowBall       = 4
	rowFieldBot   = 5
	rowSituation  = 7
	rowPlayByPlay = 9
	rowMenu       = 13

	endZoneWidth = 4
	maxFieldCols = 101 // One column per yard
)

// DefaultFrameDelay is the pause between frames of the ball animation.
const DefaultFrameDelay = 25 * time.Millisecond

// Renderer draws the scoreboard, field strip and play-by-play. It implements
// game.Renderer.
type Renderer struct {
	screen *Screen
	frames int
	delay  time.Duration

	last    *game.Snapshot
	options map[string]int // Expected yards of the user's current plays
}

// NewRenderer creates a new renderer for the given screen. The ball slides to its new
// spot over frames steps.
func NewRenderer(screen *Screen, frames int, delay time.Duration) *Renderer {
	return &Renderer{
		screen: screen,
		frames: frames,
		delay:  delay,
	}
}

// Render draws snap, animating the ball from the previous spot.
func (r *Renderer) Render(snap game.Snapshot) {
	from := snap.State.BallPosition
	if r.last != nil {
		from = r.last.State.BallPosition
	}

	r.options = make(map[string]int, len(snap.UserPlays))
	for _, opt := range snap.UserPlays {
		r.options[opt.Name] = opt.Expected
	}
	r.last = &snap

	for _, ball := range ballPath(from, snap.State.BallPosition, r.frames) {
		r.draw(snap, ball)
		r.screen.Show()
		if r.delay > 0 {
			time.Sleep(r.delay)
		}
	}
}

// Redraw repaints the last snapshot without animation, e.g. after a resize.
func (r *Renderer) Redraw() {
	if r.last == nil {
		r.screen.Clear()
		return
	}
	r.draw(*r.last, r.last.State.BallPosition)
}

// Expected returns the mean gain of the user's play name, if it is on the current menu.
func (r *Renderer) Expected(name string) (int, bool) {
	yards, ok := r.options[name]
	return yards, ok
}

func (r *Renderer) draw(snap game.Snapshot, ball int) {
	r.screen.Clear()
	r.drawScoreboard(snap)
	r.drawField(snap, ball)
	r.drawSituation(snap)
	r.drawPlayByPlay(snap)
}

func (r *Renderer) drawScoreboard(snap game.Snapshot) {
	s := snap.State
	x := r.screen.DrawText(0, rowScoreboard, " "+label(snap.User)+" ", teamStyle(snap.User.Color, tcell.ColorNavy))
	x = r.screen.DrawText(x, rowScoreboard, fmt.Sprintf(" %2d  ", snap.User.Score), styleTitle)
	x = r.screen.DrawText(x, rowScoreboard, " "+label(snap.Comp)+" ", teamStyle(snap.Comp.Color, tcell.ColorMaroon))
	x = r.screen.DrawText(x, rowScoreboard, fmt.Sprintf(" %2d  ", snap.Comp.Score), styleTitle)

	if s.GameOver {
		r.screen.DrawText(x, rowScoreboard, "  FINAL", styleTitle)
		return
	}
	x = r.screen.DrawText(x, rowScoreboard, fmt.Sprintf("  Q%d %s", s.Quarter, clockString(s.ClockSeconds)), styleDefault)
	r.screen.DrawText(x, rowScoreboard, fmt.Sprintf("   Timeouts %d-%d", snap.User.Timeouts, snap.Comp.Timeouts), styleDim)
}

// drawField draws both end zones, yard lines every ten yards, the ball and the line to
// gain.
func (r *Renderer) drawField(snap game.Snapshot, ball int) {
	w, _ := r.screen.Size()
	cols := min(w-2*endZoneWidth, maxFieldCols)
	if cols < 21 {
		r.screen.DrawText(0, rowBall, fmt.Sprintf("Ball on %s", spot(snap)), styleDefault)
		return
	}
	x0 := endZoneWidth

	// The team moving right defends the left end zone.
	left, right := snap.Possessing(), snap.User
	if snap.State.Possession == play.SideUser {
		right = snap.Comp
	}
	if snap.State.Direction == game.DirectionLeft {
		left, right = right, left
	}
	leftStyle := teamStyle(left.Color, tcell.ColorNavy)
	rightStyle := teamStyle(right.Color, tcell.ColorMaroon)

	for _, y := range []int{rowFieldTop, rowBall, rowFieldBot} {
		for i := 0; i < endZoneWidth; i++ {
			r.screen.SetContent(i, y, ' ', leftStyle)
			r.screen.SetContent(x0+cols+i, y, ' ', rightStyle)
		}
		for c := 0; c < cols; c++ {
			r.screen.SetContent(x0+c, y, ' ', styleField)
		}
	}
	r.screen.DrawText(0, rowBall, label(left), leftStyle)
	r.screen.DrawText(x0+cols, rowBall, label(right), rightStyle)

	for yard := -game.GoalLine + 10; yard < game.GoalLine; yard += 10 {
		c := x0 + fieldColumn(yard, cols)
		text := fmt.Sprint(game.GoalLine - abs(yard))
		r.screen.DrawText(c-len(text)/2, rowYardLabels, text, styleDim)
		r.screen.SetContent(c, rowFieldTop, '|', styleField)
		r.screen.SetContent(c, rowFieldBot, '|', styleField)
	}

	s := snap.State
	if s.Down > 0 && !s.GameOver {
		togo := ball + s.Direction.Sign()*s.Distance
		r.screen.SetContent(x0+fieldColumn(togo, cols), rowFieldTop, '▼', styleMarker)
	}

	arrow := '>'
	if s.Direction == game.DirectionLeft {
		arrow = '<'
	}
	c := x0 + fieldColumn(ball, cols)
	r.screen.SetContent(c, rowBall, 'o', styleBall)
	if n := c + s.Direction.Sign(); n >= x0 && n < x0+cols {
		r.screen.SetContent(n, rowBall, arrow, styleBall)
	}
}

func (r *Renderer) drawSituation(snap game.Snapshot) {
	s := snap.State
	if s.GameOver {
		r.screen.DrawText(0, rowSituation, finalLine(snap), styleTitle)
		return
	}
	text := fmt.Sprintf("%s on %s   %s ball, driving %s", situation(s), spot(snap), snap.Possessing().Name, s.Direction)
	r.screen.DrawText(0, rowSituation, text, styleDefault)
}

func (r *Renderer) drawPlayByPlay(snap game.Snapshot) {
	if snap.Last == nil {
		return
	}
	for i, line := range snap.Last.Lines() {
		r.screen.DrawText(2, rowPlayByPlay+i, line.Text, toneStyle(line.Tone))
	}
}

func finalLine(snap game.Snapshot) string {
	u, c := snap.User, snap.Comp
	switch {
	case u.Score > c.Score:
		return fmt.Sprintf("Final: %s win %d-%d", u.Name, u.Score, c.Score)
	case c.Score > u.Score:
		return fmt.Sprintf("Final: %s win %d-%d", c.Name, c.Score, u.Score)
	default:
		return fmt.Sprintf("Final: tied %d-%d", u.Score, c.Score)
	}
}
