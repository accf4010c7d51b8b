package game

import (
	"context"
	"testing"

	"github.com/samdwyer/tradeworld/internal/transfer"
	"github.com/samdwyer/tradeworld/internal/ui"
)

// newTestGame builds a Game without a terminal; only the mouse handlers
// are exercised.
func newTestGame(t *testing.T) *Game {
	t.Helper()
	ctx := context.Background()
	s := newTestSession(t)
	s.Do(ctx, ActionBuyTile)
	s.MoveCursor(0, 1)
	s.Do(ctx, ActionBuyTile)
	s.Do(ctx, ActionToggleMode)
	return &Game{session: s, layout: ui.NewLayout(100, 30)}
}

func TestMotionAcrossOptionBandKeepsDestination(t *testing.T) {
	g := newTestGame(t)
	l := g.layout
	s := g.session

	s.StartDrag("r0c1", "GRV")
	g.motion(l.Right.X+2, l.Right.Y+3)
	if s.Drag().State() != transfer.Hovering {
		t.Fatalf("state = %v, want hovering over the right pane", s.Drag().State())
	}
	opts := s.Drag().Options()

	// Past the last button but still on the band.
	g.motion(l.Options.X+len(opts)*8+2, l.Options.Y)
	if s.Drag().State() != transfer.Hovering {
		t.Fatalf("state = %v after a gap in the option band, want hovering", s.Drag().State())
	}

	g.motion(l.Options.X+8+1, l.Options.Y)
	if got := s.Drag().Selected(); got != opts[1] {
		t.Errorf("selected %v, want %v", got, opts[1])
	}
	if s.Drag().Proposed() != 10 {
		t.Errorf("Proposed() = %d, want 10", s.Drag().Proposed())
	}
}

func TestMotionOffPanesLeavesDestination(t *testing.T) {
	g := newTestGame(t)
	s := g.session

	s.StartDrag("r0c1", "GRV")
	g.motion(g.layout.Right.X+2, g.layout.Right.Y+3)
	g.motion(g.layout.Status.X+2, g.layout.Status.Y)
	if s.Drag().State() != transfer.Dragging {
		t.Errorf("state = %v, want dragging", s.Drag().State())
	}
}
