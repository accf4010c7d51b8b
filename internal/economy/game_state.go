package economy

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tradeworld/internal/failure"
	"github.com/samdwyer/tradeworld/internal/gamedata"
)

// DefaultStartingCash is the balance a new session starts with.
const DefaultStartingCash = 10000.0

// GameState is the session handle: it owns the wallet and every tile.
// It is created once per session and passed explicitly to whoever needs it.
// Public methods are serialised so each operation is one critical section.
type GameState struct {
	mu        sync.Mutex
	catalog   *gamedata.Catalog
	wallet    *Wallet
	tiles     []*Tile
	byID      map[string]*Tile
	observers map[int]Observer
	nextObs   int
}

// NewGameState creates a session owning the given tiles.
func NewGameState(catalog *gamedata.Catalog, startingCash float64, tiles ...*Tile) (*GameState, error) {
	g := &GameState{
		catalog:   catalog,
		wallet:    NewWallet(startingCash),
		tiles:     make([]*Tile, 0, len(tiles)),
		byID:      make(map[string]*Tile, len(tiles)),
		observers: make(map[int]Observer),
	}
	for _, t := range tiles {
		if _, dup := g.byID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate tile id %q", t.ID)
		}
		t.notify = g.publish
		g.tiles = append(g.tiles, t)
		g.byID[t.ID] = t
	}
	return g, nil
}

// Catalog returns the catalog the session was built with.
func (g *GameState) Catalog() *gamedata.Catalog {
	return g.catalog
}

// Cash returns the current balance.
func (g *GameState) Cash() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.wallet.Balance()
}

// Tiles returns every tile in creation order.
func (g *GameState) Tiles() []*Tile {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]*Tile(nil), g.tiles...)
}

// OwnedTiles returns the tiles the player owns in creation order.
func (g *GameState) OwnedTiles() []*Tile {
	g.mu.Lock()
	defer g.mu.Unlock()
	var owned []*Tile
	for _, t := range g.tiles {
		if t.owned {
			owned = append(owned, t)
		}
	}
	return owned
}

// Tile looks up a tile by id.
func (g *GameState) Tile(id string) (*Tile, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lookup(id)
}

// Subscribe registers an observer and returns a function that removes it.
func (g *GameState) Subscribe(o Observer) (unsubscribe func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.nextObs
	g.nextObs++
	g.observers[id] = o
	return func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		delete(g.observers, id)
	}
}

// Exclusive runs fn while holding the state lock. Use it for work that
// mutates tile inventories directly, such as committing a transfer, and
// report the touched tiles so observers hear about it.
func (g *GameState) Exclusive(fn func() (changed []string)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, id := range fn() {
		g.publish(Event{Kind: EventInventoryChanged, TileID: id})
	}
}

// BuyTile purchases an unowned tile at its price.
func (g *GameState) BuyTile(ctx context.Context, id string) (err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ctx, span := startOp(ctx, "game.buy_tile", id)
	defer func() { finishOp(ctx, span, "buy_tile", err) }()

	t, err := g.lookup(id)
	if err != nil {
		return err
	}
	if t.owned {
		return failure.New(failure.AlreadyOwned, "Tile %s is already owned.", id)
	}
	if err := g.wallet.CanAfford(t.Price); err != nil {
		return err
	}

	g.wallet.debit(t.Price)
	t.owned = true
	span.SetAttributes(attribute.Float64("price", t.Price))
	g.publish(Event{Kind: EventTileBought, TileID: id, Amount: 1})
	return nil
}

// HireWorkers hires workers on an owned tile.
func (g *GameState) HireWorkers(ctx context.Context, tileID string, tier gamedata.WorkerTier, amount uint64) error {
	return g.onOwned(tileID, func(t *Tile) error {
		return t.HireWorkers(ctx, tier, amount, g.wallet)
	})
}

// FireWorkers fires unassigned workers on an owned tile.
func (g *GameState) FireWorkers(ctx context.Context, tileID string, tier gamedata.WorkerTier, amount uint64) error {
	return g.onOwned(tileID, func(t *Tile) error {
		return t.FireWorkers(ctx, tier, amount)
	})
}

// BuildHousing builds housing on an owned tile.
func (g *GameState) BuildHousing(ctx context.Context, tileID string, h gamedata.HousingType, amount uint64) error {
	return g.onOwned(tileID, func(t *Tile) error {
		return t.BuildHousing(ctx, h, amount, g.wallet)
	})
}

// DestroyHousing demolishes housing on an owned tile.
func (g *GameState) DestroyHousing(ctx context.Context, tileID string, h gamedata.HousingType, amount uint64) error {
	return g.onOwned(tileID, func(t *Tile) error {
		return t.DestroyHousing(ctx, h, amount)
	})
}

// BuildProduction builds production buildings on an owned tile.
func (g *GameState) BuildProduction(ctx context.Context, tileID string, p gamedata.ProductionType, amount uint64) error {
	return g.onOwned(tileID, func(t *Tile) error {
		return t.BuildProduction(ctx, p, amount, g.wallet)
	})
}

func (g *GameState) onOwned(tileID string, fn func(*Tile) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	t, err := g.lookup(tileID)
	if err != nil {
		return err
	}
	if !t.owned {
		return failure.New(failure.NotOwned, "You do not own tile %s.", tileID)
	}
	return fn(t)
}

func (g *GameState) lookup(id string) (*Tile, error) {
	t, ok := g.byID[id]
	if !ok {
		return nil, failure.New(failure.NotFound, "No tile with id %s.", id)
	}
	return t, nil
}

// publish must be called with g.mu held.
func (g *GameState) publish(e Event) {
	for _, o := range g.observers {
		o.OnEvent(e)
	}
}
