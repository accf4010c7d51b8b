package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samdwyer/tradeworld/internal/economy"
	"github.com/samdwyer/tradeworld/internal/failure"
	"github.com/samdwyer/tradeworld/internal/gamedata"
	"github.com/samdwyer/tradeworld/internal/transfer"
	"github.com/samdwyer/tradeworld/internal/world"
)

// Session is one player's view of a game: the selected tile, the tile it
// trades with, the drag in progress and the last message. It turns player
// actions into GameState operations and never mutates ledgers itself.
type Session struct {
	state  *economy.GameState
	world  *world.Map
	logger *slog.Logger

	cursor    world.Coord
	pair      string
	mode      Mode
	amountIdx int
	drag      transfer.Drag
	message   string
	events    int

	running     bool
	unsubscribe func()
}

// NewSession creates a session over state and the map it was built from.
func NewSession(state *economy.GameState, m *world.Map, logger *slog.Logger) *Session {
	s := &Session{
		state:   state,
		world:   m,
		logger:  logger,
		running: true,
		message: "Welcome! Arrow keys move, b buys a tile, Tab switches to transfers.",
	}
	s.unsubscribe = state.Subscribe(economy.ObserverFunc(s.onEvent))
	return s
}

// Close detaches the session from the game state.
func (s *Session) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

func (s *Session) onEvent(e economy.Event) {
	s.events++
	s.logger.Debug("state changed",
		"event", e.Kind.String(),
		"tile", e.TileID,
		"subject", e.Subject,
		"amount", e.Amount,
	)
}

// State returns the game state.
func (s *Session) State() *economy.GameState { return s.state }

// Map returns the world map.
func (s *Session) Map() *world.Map { return s.world }

// Running reports whether the player has not quit.
func (s *Session) Running() bool { return s.running }

// Mode returns the active screen.
func (s *Session) Mode() Mode { return s.mode }

// Cursor returns the selected map position.
func (s *Session) Cursor() world.Coord { return s.cursor }

// Amount returns the batch size used by build, hire and fire actions.
func (s *Session) Amount() uint64 { return Amounts[s.amountIdx] }

// Message returns the last status line.
func (s *Session) Message() string { return s.message }

// Events returns how many state changes the session has observed.
func (s *Session) Events() int { return s.events }

// Drag returns the transfer in progress.
func (s *Session) Drag() *transfer.Drag { return &s.drag }

// Selected returns the tile under the cursor.
func (s *Session) Selected() *economy.Tile {
	return s.world.At(s.cursor)
}

// Paired returns the owned tile the selected tile trades with, or nil.
func (s *Session) Paired() *economy.Tile {
	if s.pair == "" {
		return nil
	}
	t, err := s.state.Tile(s.pair)
	if err != nil || !t.IsOwned() || t.ID == s.Selected().ID {
		return nil
	}
	return t
}

// MoveCursor shifts the selection, staying on the map.
func (s *Session) MoveCursor(dr, dc int) {
	next := s.cursor.Add(dr, dc)
	if !s.world.InBounds(next) {
		return
	}
	s.drag.Cancel()
	s.cursor = next
	if s.Paired() == nil {
		s.cyclePair()
	}
}

// Do runs one keyboard action.
func (s *Session) Do(ctx context.Context, a Action) {
	tile := s.Selected()
	amount := s.Amount()
	var err error

	switch a {
	case ActionNone:
		return
	case ActionQuit:
		s.running = false
		return
	case ActionToggleMode:
		s.drag.Cancel()
		if s.mode == ModeOverview {
			s.mode = ModeTransfer
		} else {
			s.mode = ModeOverview
		}
		return
	case ActionCycleAmount:
		s.amountIdx = (s.amountIdx + 1) % len(Amounts)
		s.message = fmt.Sprintf("Batch size is now %d.", s.Amount())
		return
	case ActionCyclePair:
		s.cyclePair()
		if p := s.Paired(); p != nil {
			s.message = fmt.Sprintf("Trading with %s.", p.ID)
		} else {
			s.message = "Buy a second tile to trade between tiles."
		}
		return

	case ActionBuyTile:
		err = s.state.BuyTile(ctx, tile.ID)
		if err == nil && s.Paired() == nil {
			s.cyclePair()
		}
	case ActionBuildCheap, ActionBuildStandard, ActionBuildFancy:
		err = s.state.BuildHousing(ctx, tile.ID, housingFor(a), amount)
	case ActionDestroyCheap, ActionDestroyStandard, ActionDestroyFancy:
		err = s.state.DestroyHousing(ctx, tile.ID, housingFor(a), amount)
	case ActionHireBasic, ActionHireAdvanced, ActionHireExpert:
		err = s.state.HireWorkers(ctx, tile.ID, tierFor(a), amount)
	case ActionFireBasic, ActionFireAdvanced, ActionFireExpert:
		err = s.state.FireWorkers(ctx, tile.ID, tierFor(a), amount)
	case ActionBuildWarehouse, ActionBuildSawmill, ActionBuildWorkshop, ActionBuildWaterPump:
		err = s.state.BuildProduction(ctx, tile.ID, productionFor(a), amount)
	default:
		return
	}

	s.report(a.String(), tile.ID, err)
}

func (s *Session) report(action, tileID string, err error) {
	if err != nil {
		s.message = failure.Reason(err)
		s.logger.Info("action rejected",
			"action", action,
			"tile", tileID,
			"kind", failure.KindOf(err).String(),
			"reason", s.message,
		)
		return
	}
	s.message = fmt.Sprintf("Done: %s on %s. Cash $%.2f.", action, tileID, s.state.Cash())
	s.logger.Info("action", "action", action, "tile", tileID, "cash", s.state.Cash())
}

// cyclePair advances the pair to the next owned tile other than the
// selected one, wrapping around.
func (s *Session) cyclePair() {
	selected := s.Selected().ID
	var candidates []string
	for _, t := range s.state.OwnedTiles() {
		if t.ID != selected {
			candidates = append(candidates, t.ID)
		}
	}
	if len(candidates) == 0 {
		s.pair = ""
		return
	}
	next := candidates[0]
	for i, id := range candidates {
		if id == s.pair {
			next = candidates[(i+1)%len(candidates)]
			break
		}
	}
	s.pair = next
}

// container returns the inventory of an owned tile taking part in trades.
func (s *Session) container(tileID string) (*economy.Tile, bool) {
	sel := s.Selected()
	if tileID == sel.ID && sel.IsOwned() {
		return sel, true
	}
	if p := s.Paired(); p != nil && p.ID == tileID {
		return p, true
	}
	return nil, false
}

// StartDrag picks up the stack of itemID on one of the two trading tiles.
func (s *Session) StartDrag(tileID, itemID string) {
	t, ok := s.container(tileID)
	if !ok {
		s.message = "You can only move items between tiles you own."
		return
	}
	if err := s.drag.Start(itemID, t.Inventory()); err != nil {
		s.message = failure.Reason(err)
		return
	}
	s.message = fmt.Sprintf("Dragging %d %s.", s.drag.Available(), itemID)
}

// Hover points the drag at a tile's inventory. An empty id leaves the
// current destination.
func (s *Session) Hover(tileID string) {
	if s.drag.State() == transfer.Idle {
		return
	}
	t, ok := s.container(tileID)
	if !ok {
		s.drag.Leave()
		return
	}
	if t.Inventory().ID() == s.drag.Source().ID() {
		s.drag.Leave()
		return
	}
	if d := s.drag.Destination(); d != nil && d.ID() == t.Inventory().ID() {
		return
	}
	s.drag.Hover(t.Inventory())
}

// SelectOption picks a quantity option for the hovered destination.
func (s *Session) SelectOption(opt transfer.Option) {
	s.drag.Select(opt)
}

// Release drops the dragged items. The commit runs under the state lock.
func (s *Session) Release(ctx context.Context) {
	if s.drag.State() == transfer.Idle {
		return
	}
	var (
		res transfer.Result
		err error
	)
	from, to := s.tileOf(s.drag.Source()), s.tileOf(s.drag.Destination())
	s.state.Exclusive(func() []string {
		res, err = s.drag.Release(ctx)
		if err != nil || res.Moved == 0 {
			return nil
		}
		return []string{from, to}
	})

	switch {
	case err != nil:
		s.message = failure.Reason(err)
		s.logger.Info("transfer rejected", "item", res.ItemID, "from", from, "to", to,
			"kind", failure.KindOf(err).String())
	case res.Moved > 0:
		s.message = fmt.Sprintf("Moved %d %s from %s to %s.", res.Moved, res.ItemID, from, to)
		s.logger.Info("transfer", "item", res.ItemID, "from", from, "to", to, "moved", res.Moved)
	default:
		s.message = ""
	}
}

// CancelDrag abandons the drag.
func (s *Session) CancelDrag() {
	s.drag.Cancel()
}

func (s *Session) tileOf(c transfer.Container) string {
	if c == nil {
		return ""
	}
	for _, t := range []*economy.Tile{s.Selected(), s.Paired()} {
		if t != nil && t.Inventory().ID() == c.ID() {
			return t.ID
		}
	}
	return c.Name()
}

func housingFor(a Action) gamedata.HousingType {
	switch a {
	case ActionBuildStandard, ActionDestroyStandard:
		return gamedata.HousingStandard
	case ActionBuildFancy, ActionDestroyFancy:
		return gamedata.HousingFancy
	default:
		return gamedata.HousingCheap
	}
}

func tierFor(a Action) gamedata.WorkerTier {
	switch a {
	case ActionHireAdvanced, ActionFireAdvanced:
		return gamedata.TierAdvanced
	case ActionHireExpert, ActionFireExpert:
		return gamedata.TierExpert
	default:
		return gamedata.TierBasic
	}
}

func productionFor(a Action) gamedata.ProductionType {
	switch a {
	case ActionBuildSawmill:
		return gamedata.ProductionSawmill
	case ActionBuildWorkshop:
		return gamedata.ProductionWorkshop
	case ActionBuildWaterPump:
		return gamedata.ProductionWaterPump
	default:
		return gamedata.ProductionWarehouse
	}
}
