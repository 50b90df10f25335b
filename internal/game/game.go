package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/fourforfour/eldanialight/internal/gamedata"
	"github.com/fourforfour/eldanialight/internal/telemetry"
	"github.com/fourforfour/eldanialight/internal/ui"
	"github.com/fourforfour/eldanialight/internal/world"
)

// Game holds the explorer session.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	engine   *gamedata.Engine
	explorer *Explorer
	state    State
	message  string
	running  bool
}

// New creates a game that starts at the given location.
func New(engine *gamedata.Engine, m *world.Map, start string) (*Game, error) {
	explorer, err := NewExplorer(m, start)
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		engine:   engine,
		explorer: explorer,
		state:    StateExplore,
		running:  true,
	}, nil
}

// Run executes the main loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	_, span := tracer.Start(ctx, "game.init")
	span.SetAttributes(attribute.String("explorer.start", g.explorer.Current().Name))
	span.End()

	defer g.screen.Close()

	for g.running {
		g.renderer.Render(ui.View{
			Location:  g.explorer.Current(),
			CanGoBack: g.explorer.CanGoBack(),
			Message:   g.message,
		})
		g.handleInput(ctx)
	}
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	if g.state == StateTalk {
		g.state = StateExplore
		g.message = ""
		return
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch r := ev.Rune(); {
	case r == 'q' || r == 'Q':
		g.running = false
	case r == 'b' || r == 'B':
		if !g.explorer.Back() {
			g.message = "You are where you started."
		} else {
			g.message = ""
		}
	case r == 't' || r == 'T':
		g.talk()
	case r >= '1' && r <= '9':
		g.tryTravel(ctx, int(r-'1'))
	}
}

// tryTravel moves to the i-th exit of the current location.
func (g *Game) tryTravel(ctx context.Context, i int) {
	_, span := telemetry.Tracer("game").Start(ctx, "game.travel")
	defer span.End()

	from := g.explorer.Current().Name
	err := g.explorer.TravelIndex(i)
	span.SetAttributes(
		attribute.String("travel.from", from),
		attribute.String("travel.to", g.explorer.Current().Name),
		attribute.Bool("travel.ok", err == nil),
	)
	if errors.Is(err, ErrCannotTravel) {
		g.message = "You cannot go that way."
		return
	}
	g.message = ""
}

// talk shows the dialogue of the first NPC at the current location.
func (g *Game) talk() {
	npcs := g.explorer.Current().NPCs
	if len(npcs) == 0 {
		g.message = "There is nobody here."
		return
	}
	g.message = Dialogue(g.engine, npcs[0])
	g.state = StateTalk
}

// Dialogue returns the line an NPC says when spoken to.
func Dialogue(engine *gamedata.Engine, npc string) string {
	node, err := engine.NPC(npc)
	if err != nil {
		return fmt.Sprintf("%s does not answer.", npc)
	}
	line := node.Path("dialogue").Text()
	if line == "" {
		return fmt.Sprintf("%s has nothing to say.", npc)
	}
	return fmt.Sprintf("%s: %q", npc, line)
}
