package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/paydirt/internal/play"
)

// ParseHexColor converts a team color like "#0B162A" to a tcell color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}
	return tcell.NewHexColor(int32(rgb)), nil
}

// teamStyle colors a team's name and end zone, falling back to fallback when the
// playsheet has no usable color.
func teamStyle(hex string, fallback tcell.Color) tcell.Style {
	bg, err := ParseHexColor(hex)
	if err != nil {
		bg = fallback
	}
	return tcell.StyleDefault.Background(bg).Foreground(tcell.ColorWhite).Bold(true)
}

func toneStyle(t play.Tone) tcell.Style {
	switch t {
	case play.TonePositive:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case play.ToneNegative:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite)
	}
}

var (
	styleDefault = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleField   = tcell.StyleDefault.Background(tcell.ColorDarkGreen).Foreground(tcell.ColorWhite)
	styleBall    = tcell.StyleDefault.Background(tcell.ColorDarkGreen).Foreground(tcell.ColorSaddleBrown).Bold(true)
	styleMarker  = tcell.StyleDefault.Background(tcell.ColorDarkGreen).Foreground(tcell.ColorYellow).Bold(true)
	styleKey     = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
)
