package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tradeworld/data"
	"github.com/samdwyer/tradeworld/internal/economy"
	"github.com/samdwyer/tradeworld/internal/gamedata"
	"github.com/samdwyer/tradeworld/internal/telemetry"
	"github.com/samdwyer/tradeworld/internal/transfer"
	"github.com/samdwyer/tradeworld/internal/ui"
	"github.com/samdwyer/tradeworld/internal/world"
)

// NewWorld generates the map for cfg and wraps it in a fresh session.
func NewWorld(ctx context.Context, cfg Config, logger *slog.Logger) (*Session, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	catalog, err := gamedata.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	templates, err := data.LoadTileTemplates()
	if err != nil {
		return nil, fmt.Errorf("load tile templates: %w", err)
	}

	m, err := world.Generate(ctx, cfg.World(), catalog, templates, rng)
	if err != nil {
		return nil, fmt.Errorf("generate world: %w", err)
	}
	state, err := economy.NewGameState(catalog, cfg.StartingCash, m.Tiles()...)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.Float64("game.starting_cash", cfg.StartingCash),
		attribute.Int("map.tiles", m.Rows*m.Cols),
	)
	logger.Info("world generated", "seed", seed, "rows", m.Rows, "cols", m.Cols, "cash", cfg.StartingCash)
	return NewSession(state, m, logger), nil
}

// Game runs a session on a terminal screen.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	layout   ui.Layout

	mouseDown      bool
	mouseX, mouseY int
}

// New opens the terminal for a session.
func New(session *Session) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		session:  session,
		layout:   screen.Layout(),
	}, nil
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	defer g.session.Close()

	for g.session.Running() {
		g.renderer.Render(g.view(), g.layout)
		g.handleInput(ctx)
	}
	return nil
}

func (g *Game) view() ui.View {
	s := g.session
	return ui.View{
		Map:      s.Map(),
		Catalog:  s.State().Catalog(),
		Cursor:   s.Cursor(),
		Selected: s.Selected(),
		Paired:   s.Paired(),
		Cash:     s.State().Cash(),
		Transfer: s.Mode() == ModeTransfer,
		Amount:   s.Amount(),
		Drag:     s.Drag(),
		Message:  s.Message(),
		MouseX:   g.mouseX,
		MouseY:   g.mouseY,
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventMouse:
		g.handleMouseEvent(ctx, ev)
	case *tcell.EventResize:
		g.layout = g.screen.Layout()
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	s := g.session
	switch ev.Key() {
	case tcell.KeyEscape:
		if s.Drag().State() != transfer.Idle {
			s.CancelDrag()
			return
		}
		s.Do(ctx, ActionQuit)
	case tcell.KeyCtrlC:
		s.Do(ctx, ActionQuit)
	case tcell.KeyTab:
		s.Do(ctx, ActionToggleMode)

	case tcell.KeyUp:
		s.MoveCursor(-1, 0)
	case tcell.KeyDown:
		s.MoveCursor(1, 0)
	case tcell.KeyLeft:
		s.MoveCursor(0, -1)
	case tcell.KeyRight:
		s.MoveCursor(0, 1)

	case tcell.KeyRune:
		s.Do(ctx, Keys[ev.Rune()])
	}
}

// handleMouseEvent turns presses, motion and releases into drag steps.
func (g *Game) handleMouseEvent(ctx context.Context, ev *tcell.EventMouse) {
	x, y := ev.Position()
	g.mouseX, g.mouseY = x, y
	pressed := ev.Buttons()&tcell.Button1 != 0
	s := g.session

	switch {
	case pressed && !g.mouseDown:
		g.mouseDown = true
		g.press(x, y)
	case pressed:
		g.motion(x, y)
	case g.mouseDown:
		g.mouseDown = false
		if s.Mode() == ModeTransfer {
			s.Release(ctx)
		}
	}
}

func (g *Game) press(x, y int) {
	s := g.session
	if s.Mode() == ModeOverview {
		if pos, ok := g.layout.TileAt(s.Map(), x, y); ok {
			cur := s.Cursor()
			s.MoveCursor(pos.Row-cur.Row, pos.Col-cur.Col)
		}
		return
	}

	pane := g.layout.PaneAt(x, y)
	tile := g.paneTile(pane)
	if tile == nil {
		return
	}
	stacks := tile.Inventory().Stacks()
	if idx, ok := g.layout.ItemAt(pane, x, y, len(stacks)); ok {
		s.StartDrag(tile.ID, stacks[idx].ItemID)
	}
}

func (g *Game) motion(x, y int) {
	s := g.session
	if s.Mode() != ModeTransfer {
		return
	}
	if g.layout.Options.Contains(x, y) {
		// The band belongs to the hovered destination; gaps keep it.
		if opt, ok := g.layout.OptionAt(s.Drag().Options(), x, y); ok {
			s.SelectOption(opt)
		}
		return
	}
	if tile := g.paneTile(g.layout.PaneAt(x, y)); tile != nil {
		s.Hover(tile.ID)
		return
	}
	s.Hover("")
}

func (g *Game) paneTile(p ui.Pane) *economy.Tile {
	switch p {
	case ui.PaneLeft:
		return g.session.Selected()
	case ui.PaneRight:
		return g.session.Paired()
	default:
		return nil
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
