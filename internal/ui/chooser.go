package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ErrQuit is returned by SelectPlay when the player quits.
var ErrQuit = errors.New("quit")

// Chooser asks the player for a play from the keyboard: a letter per option, t for a
// timeout, q or Esc to quit. It implements game.Chooser.
type Chooser struct {
	screen   *Screen
	renderer *Renderer

	// Title heads the menu.
	Title string
	// OnTimeout is called when t is pressed. Nil disables timeouts.
	OnTimeout func() error

	message string
}

// NewChooser creates a chooser drawing its menu below renderer's output.
func NewChooser(screen *Screen, renderer *Renderer) *Chooser {
	return &Chooser{
		screen:   screen,
		renderer: renderer,
		Title:    "Your call",
	}
}

// SelectPlay implements game.Chooser. It blocks until a listed key is pressed.
func (c *Chooser) SelectPlay(ctx context.Context, legal []string) (int, error) {
	c.message = ""
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		c.drawMenu(legal)
		c.screen.Show()

		switch ev := c.screen.PollEvent().(type) {
		case *tcell.EventKey:
			idx, err := c.handleKey(ev, len(legal))
			if err != nil || idx >= 0 {
				return idx, err
			}
		case *tcell.EventResize:
			c.screen.Sync()
			if c.renderer != nil {
				c.renderer.Redraw()
			}
		case nil:
			// Screen finalized.
			return 0, ErrQuit
		}
	}
}

// handleKey returns the chosen index, -1 to keep waiting, or ErrQuit.
func (c *Chooser) handleKey(ev *tcell.EventKey, count int) (int, error) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return -1, ErrQuit
	case tcell.KeyRune:
	default:
		return -1, nil
	}

	switch r := ev.Rune(); r {
	case 'q', 'Q':
		return -1, ErrQuit
	case 't', 'T':
		c.callTimeout()
		return -1, nil
	default:
		if idx := indexFor(r, count); idx >= 0 {
			return idx, nil
		}
		c.message = fmt.Sprintf("Press a-%c", keyFor(count-1))
		return -1, nil
	}
}

func (c *Chooser) callTimeout() {
	if c.OnTimeout == nil {
		c.message = "Timeouts are not available now"
		return
	}
	if err := c.OnTimeout(); err != nil {
		c.message = err.Error()
		return
	}
	c.message = "Timeout called"
}

func (c *Chooser) drawMenu(legal []string) {
	_, h := c.screen.Size()
	for y := rowMenu; y < h; y++ {
		c.screen.ClearLine(y)
	}

	c.screen.DrawText(2, rowMenu, c.Title, styleTitle)
	for i, name := range legal {
		y := rowMenu + 1 + i
		x := c.screen.DrawText(4, y, fmt.Sprintf("%c) ", keyFor(i)), styleKey)
		x = c.screen.DrawText(x, y, name, styleDefault)
		if c.renderer == nil {
			continue
		}
		if yards, ok := c.renderer.Expected(name); ok {
			c.screen.DrawText(max(x+2, 22), y, fmt.Sprintf("avg %+d", yards), styleDim)
		}
	}

	hints := "t timeout   q quit"
	if c.OnTimeout == nil {
		hints = "q quit"
	}
	y := rowMenu + len(legal) + 2
	c.screen.DrawText(2, y, hints, styleDim)
	if c.message != "" {
		c.screen.DrawText(2, y+1, c.message, styleTitle)
	}
}
