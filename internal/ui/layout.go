package ui

import (
	"github.com/samdwyer/tradeworld/internal/transfer"
	"github.com/samdwyer/tradeworld/internal/world"
)

const (
	cellWidth   = 4 // map cell: glyph, owner mark, padding
	optionWidth = 8 // "[ 1000 ]"
	paneHeader  = 2 // title and column headings above item rows
)

// Rect is a screen region.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Pane identifies one of the two inventory panes of the transfer screen.
type Pane int

const (
	PaneNone Pane = iota
	PaneLeft
	PaneRight
)

// Layout places every region for a terminal of a given size. It is
// recomputed on resize and shared by rendering and mouse hit-testing.
type Layout struct {
	Width, Height int

	Map     Rect
	Details Rect
	Left    Rect
	Right   Rect
	Options Rect
	Help    Rect
	Status  Rect
}

// NewLayout computes the regions for a width x height screen.
func NewLayout(width, height int) Layout {
	half := width / 2
	body := max(height-5, 1)
	return Layout{
		Width:   width,
		Height:  height,
		Map:     Rect{X: 1, Y: 1, W: max(half-2, 1), H: body},
		Details: Rect{X: half, Y: 1, W: max(width-half-1, 1), H: body},
		Left:    Rect{X: 1, Y: 1, W: max(half-2, 1), H: body},
		Right:   Rect{X: half, Y: 1, W: max(width-half-1, 1), H: body},
		Options: Rect{X: 1, Y: height - 4, W: max(width-2, 1), H: 1},
		Help:    Rect{X: 1, Y: height - 2, W: max(width-2, 1), H: 1},
		Status:  Rect{X: 1, Y: height - 1, W: max(width-2, 1), H: 1},
	}
}

// TileAt maps a screen cell to a map position.
func (l Layout) TileAt(m *world.Map, x, y int) (world.Coord, bool) {
	if !l.Map.Contains(x, y) {
		return world.Coord{}, false
	}
	pos := world.Coord{Row: y - l.Map.Y, Col: (x - l.Map.X) / cellWidth}
	return pos, m.InBounds(pos)
}

// TileOrigin returns the screen cell a map position is drawn at.
func (l Layout) TileOrigin(pos world.Coord) (x, y int) {
	return l.Map.X + pos.Col*cellWidth, l.Map.Y + pos.Row
}

// PaneAt returns the inventory pane under a screen cell.
func (l Layout) PaneAt(x, y int) Pane {
	switch {
	case l.Left.Contains(x, y):
		return PaneLeft
	case l.Right.Contains(x, y):
		return PaneRight
	default:
		return PaneNone
	}
}

// ItemAt returns the row index of the stack drawn under (x, y) in a pane
// listing n stacks.
func (l Layout) ItemAt(p Pane, x, y, n int) (int, bool) {
	r := l.pane(p)
	if !r.Contains(x, y) {
		return 0, false
	}
	idx := y - r.Y - paneHeader
	if idx < 0 || idx >= n {
		return 0, false
	}
	return idx, true
}

// ItemRow returns the screen row of the stack at idx in a pane.
func (l Layout) ItemRow(p Pane, idx int) int {
	return l.pane(p).Y + paneHeader + idx
}

// OptionAt returns the option button under (x, y).
func (l Layout) OptionAt(opts []transfer.Option, x, y int) (transfer.Option, bool) {
	if !l.Options.Contains(x, y) {
		return 0, false
	}
	idx := (x - l.Options.X) / optionWidth
	if idx < 0 || idx >= len(opts) {
		return 0, false
	}
	return opts[idx], true
}

func (l Layout) pane(p Pane) Rect {
	switch p {
	case PaneLeft:
		return l.Left
	case PaneRight:
		return l.Right
	default:
		return Rect{}
	}
}
