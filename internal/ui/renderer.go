package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/fourforfour/eldanialight/internal/world"
)

const margin = 2

// View is everything the explorer shows on one frame.
type View struct {
	Location  *world.Location
	CanGoBack bool
	Message   string // Status line, e.g. a rejected travel
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the current location.
func (r *Renderer) Render(v View) {
	r.screen.Clear()
	width, height := r.screen.Size()
	loc := v.Location

	header := tcell.StyleDefault.Foreground(LocationColor(loc.Type)).Bold(true)
	label := tcell.StyleDefault.Foreground(tcell.ColorGray)
	text := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	y := 1
	r.screen.DrawText(margin, y, fmt.Sprintf("%s (%s)", loc.Name, loc.Type), header)
	y += 2

	wrapAt := max(width-2*margin, 10)
	for _, line := range strings.Split(wordwrap.String(loc.Description, wrapAt), "\n") {
		r.screen.DrawText(margin, y, line, text)
		y++
	}
	y++

	if len(loc.NPCs) > 0 {
		r.screen.DrawText(margin, y, "Here: "+strings.Join(loc.NPCs, ", "), text)
		y += 2
	}

	r.screen.DrawText(margin, y, "Travel to:", label)
	y++
	for i, next := range loc.Neighbors {
		r.screen.DrawText(margin+2, y, fmt.Sprintf("%d) %s", i+1, next), text)
		y++
	}
	y++

	if len(loc.Commands) > 0 {
		r.screen.DrawText(margin, y, "Commands: "+strings.Join(loc.Commands, " "), label)
	}

	footer := "1-9 travel  q quit"
	if v.CanGoBack {
		footer = "1-9 travel  b back  q quit"
	}
	if v.Message != "" {
		r.screen.DrawText(margin, height-3, v.Message, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}
	r.screen.DrawText(margin, height-2, footer, label)

	r.screen.Show()
}
