package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tradeworld/internal/economy"
	"github.com/samdwyer/tradeworld/internal/gamedata"
	"github.com/samdwyer/tradeworld/internal/transfer"
	"github.com/samdwyer/tradeworld/internal/world"
)

// View is everything the renderer needs for one frame.
type View struct {
	Map      *world.Map
	Catalog  *gamedata.Catalog
	Cursor   world.Coord
	Selected *economy.Tile
	Paired   *economy.Tile
	Cash     float64
	Transfer bool // show the transfer screen instead of the overview
	Amount   uint64
	Drag     *transfer.Drag
	Message  string

	MouseX, MouseY int
}

var (
	styleText    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleCursor  = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray)
	styleOwned   = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	styleWarning = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleOption  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	styleChosen  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true)
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one frame.
func (r *Renderer) Render(v View, l Layout) {
	r.screen.Clear()

	if v.Transfer {
		r.renderTransfer(v, l)
		r.text(l.Help.X, l.Help.Y, styleDim, "Drag items with the mouse  p: next partner  Tab: overview  q: quit")
	} else {
		r.renderMap(v, l)
		r.renderDetails(v, l)
		r.text(l.Help.X, l.Help.Y, styleDim, fmt.Sprintf(
			"b buy  1-3 build housing  !@# demolish  h/j/k hire  H/J/K fire  u/s/w/m build  x batch(%d)  Tab transfer  q quit",
			v.Amount))
	}
	r.text(l.Status.X, l.Status.Y, styleText, fmt.Sprintf("$%.2f  %s", v.Cash, v.Message))

	r.screen.Show()
}

func (r *Renderer) renderMap(v View, l Layout) {
	for row := 0; row < v.Map.Rows; row++ {
		for col := 0; col < v.Map.Cols; col++ {
			pos := world.Coord{Row: row, Col: col}
			x, y := l.TileOrigin(pos)
			if !l.Map.Contains(x+cellWidth-1, y) {
				continue
			}
			terrain := v.Map.Terrain(pos)
			style := tcell.StyleDefault.Foreground(terrain.TCellColor())
			if pos == v.Cursor {
				style = style.Background(tcell.ColorDarkSlateGray)
				r.screen.SetContent(x, y, '[', styleCursor)
				r.screen.SetContent(x+2, y, ']', styleCursor)
			}
			r.screen.SetContent(x+1, y, terrain.GlyphRune(), style)
			if v.Map.At(pos).IsOwned() {
				r.screen.SetContent(x+3, y, '*', styleOwned)
			}
		}
	}
}

func (r *Renderer) renderDetails(v View, l Layout) {
	t := v.Selected
	terrain := v.Map.Terrain(v.Cursor)
	x, y := l.Details.X, l.Details.Y

	owner := fmt.Sprintf("for sale: $%.2f", t.Price)
	if t.IsOwned() {
		owner = "owned"
	}
	r.text(x, y, styleTitle, fmt.Sprintf("%s %s (%s)", terrain.Name, t.ID, owner))
	y++
	r.text(x, y, styleDim, t.Description)
	y += 2

	land := t.Land()
	r.text(x, y, styleText, fmt.Sprintf("Land %d / %d free", land.Available(), land.Total()))
	y += 2

	r.text(x, y, styleTitle, "Workers    hired  busy  beds")
	y++
	for _, tier := range gamedata.WorkerTiers() {
		r.text(x, y, styleText, fmt.Sprintf("%-10s %5d %5d %5d", tier,
			t.HiredWorkers(tier), t.AssignedWorkers(tier), t.WorkersCanAccommodate(tier)))
		y++
	}
	y++

	r.text(x, y, styleTitle, "Buildings")
	y++
	for _, h := range gamedata.HousingTypes() {
		r.text(x, y, styleText, fmt.Sprintf("%-16s %4d", v.Catalog.Housing(h).Name, t.OwnedHousing(h)))
		y++
	}
	for _, p := range gamedata.ProductionTypes() {
		r.text(x, y, styleText, fmt.Sprintf("%-16s %4d", v.Catalog.Production(p).Name, t.OwnedProduction(p)))
		y++
	}
}

func (r *Renderer) renderTransfer(v View, l Layout) {
	if v.Selected == nil || !v.Selected.IsOwned() {
		r.text(l.Left.X, l.Left.Y, styleWarning, "Select a tile you own to move items.")
		return
	}
	r.renderPane(v, l, PaneLeft, v.Selected)
	if v.Paired == nil {
		r.text(l.Right.X, l.Right.Y, styleDim, "Buy a second tile to trade with.")
	} else {
		r.renderPane(v, l, PaneRight, v.Paired)
	}

	d := v.Drag
	if d == nil || d.State() == transfer.Idle {
		return
	}
	r.text(v.MouseX+1, v.MouseY, styleChosen, fmt.Sprintf(" %s x%d ", d.ItemID(), d.Proposed()))

	if d.CapacityExceeded() {
		r.text(l.Options.X, l.Options.Y, styleWarning, "Capacity exceeded: nothing fits.")
		return
	}
	for i, opt := range d.Options() {
		style := styleOption
		if opt == d.Selected() {
			style = styleChosen
		}
		r.text(l.Options.X+i*optionWidth, l.Options.Y, style, fmt.Sprintf("[%5s ]", opt))
	}
}

func (r *Renderer) renderPane(v View, l Layout, p Pane, t *economy.Tile) {
	rect := l.pane(p)
	inv := t.Inventory()
	r.text(rect.X, rect.Y, styleTitle, fmt.Sprintf("%s  %d/%d kg  %d/%d L",
		t.ID, inv.Weight(), inv.MaxWeight(), inv.Volume(), inv.MaxVolume()))
	r.text(rect.X, rect.Y+1, styleDim, "Item   Qty      Name")

	for i, st := range inv.Stacks() {
		row := l.ItemRow(p, i)
		if row >= rect.Y+rect.H {
			break
		}
		item := v.Catalog.MustItem(st.ItemID)
		r.text(rect.X, row, item.Style(), fmt.Sprintf(" %-3s ", item.ID))
		r.text(rect.X+6, row, styleText, fmt.Sprintf("%-8d %s", st.Quantity, item.Name))
	}
}

// text draws s starting at (x, y).
func (r *Renderer) text(x, y int, style tcell.Style, s string) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, style)
	}
}
