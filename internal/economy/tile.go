// Package economy implements the tile economy: the aggregate that owns a
// parcel's land, buildings, workers and inventory, and the game state that
// owns every tile and the cash balance.
//
// Every mutating operation validates all of its preconditions before it
// touches any ledger, so a rejected call leaves the state exactly as it was.
package economy

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tradeworld/internal/entity"
	"github.com/samdwyer/tradeworld/internal/failure"
	"github.com/samdwyer/tradeworld/internal/gamedata"
	"github.com/samdwyer/tradeworld/internal/inventory"
)

// TileSpec holds the fixed attributes a tile is created with.
type TileSpec struct {
	ID          string
	Description string
	Resources   []string
	Price       float64
	Row, Col    int

	Land            uint64
	InventoryWeight uint64
	InventoryVolume uint64
	Stock           []gamedata.ItemStack
}

// TileState is the mutable part of a tile.
type TileState struct {
	Land      entity.Land
	Buildings entity.Buildings
	Workers   entity.Workers
	Inventory *inventory.Inventory
	Slots     []ProductionSlot
}

// Tile is one land parcel of the world map.
type Tile struct {
	ID          string
	Description string
	Resources   []string
	Price       float64
	Row, Col    int

	owned   bool
	state   TileState
	catalog *gamedata.Catalog
	notify  func(Event)
}

// NewTile creates an unowned tile with all land free.
func NewTile(spec TileSpec, catalog *gamedata.Catalog) *Tile {
	return &Tile{
		ID:          spec.ID,
		Description: spec.Description,
		Resources:   append([]string(nil), spec.Resources...),
		Price:       spec.Price,
		Row:         spec.Row,
		Col:         spec.Col,
		catalog:     catalog,
		state: TileState{
			Land:      entity.NewLand(spec.Land),
			Inventory: inventory.NewSeeded(spec.ID, spec.InventoryWeight, spec.InventoryVolume, catalog, spec.Stock...),
		},
	}
}

// IsOwned reports whether the player owns the tile.
func (t *Tile) IsOwned() bool { return t.owned }

// Land returns a snapshot of the land ledger.
func (t *Tile) Land() entity.Land { return t.state.Land }

// Inventory returns the tile's inventory.
func (t *Tile) Inventory() *inventory.Inventory { return t.state.Inventory }

// Slots returns a copy of the production slots.
func (t *Tile) Slots() []ProductionSlot {
	return append([]ProductionSlot(nil), t.state.Slots...)
}

// OwnedHousing returns the number of housing units of a type.
func (t *Tile) OwnedHousing(h gamedata.HousingType) uint64 {
	return t.state.Buildings.Housing(h)
}

// OwnedProduction returns the number of production buildings of a type.
func (t *Tile) OwnedProduction(p gamedata.ProductionType) uint64 {
	return t.state.Buildings.Production(p)
}

// HiredWorkers returns the total hired workers of a tier.
func (t *Tile) HiredWorkers(tier gamedata.WorkerTier) uint64 {
	return t.state.Workers.Total(tier)
}

// AssignedWorkers returns the workers of a tier assigned to buildings.
func (t *Tile) AssignedWorkers(tier gamedata.WorkerTier) uint64 {
	return t.state.Workers.Assigned(tier)
}

// AvailableWorkers returns the hired but unassigned workers of a tier.
func (t *Tile) AvailableWorkers(tier gamedata.WorkerTier) uint64 {
	return t.state.Workers.Available(tier)
}

// WorkersCanAccommodate returns the housing capacity for a tier.
func (t *Tile) WorkersCanAccommodate(tier gamedata.WorkerTier) uint64 {
	return t.state.Buildings.Capacity(tier, t.catalog)
}

// HireWorkers hires amount workers of a tier and pays for them.
//
// Hiring is refused once hired >= capacity, and a batch is refused when it
// would leave more workers hired than the housing accommodates.
func (t *Tile) HireWorkers(ctx context.Context, tier gamedata.WorkerTier, amount uint64, wallet *Wallet) (err error) {
	ctx, span := startOp(ctx, "tile.hire_workers", t.ID,
		attribute.String("tier", tier.ID()),
		attribute.Int64("amount", int64(amount)),
	)
	defer func() { finishOp(ctx, span, "hire_workers", err) }()

	if amount == 0 {
		return nil
	}

	capacity := t.WorkersCanAccommodate(tier)
	hired := t.HiredWorkers(tier)
	if capacity <= hired || amount > capacity-hired {
		return failure.New(failure.InsufficientHousing,
			"Insufficient housing space. %s housing accommodates %d, %d hired, hiring %d.",
			t.catalog.HousingFor(tier).Name, capacity, hired, amount)
	}

	cost := t.catalog.Worker(tier).Cost * float64(amount)
	if err := wallet.CanAfford(cost); err != nil {
		return err
	}

	wallet.debit(cost)
	t.state.Workers.Hire(tier, amount)
	t.emit(Event{Kind: EventWorkersHired, TileID: t.ID, Subject: tier.ID(), Amount: amount})
	return nil
}

// FireWorkers lets go of unassigned workers. No refund is paid.
func (t *Tile) FireWorkers(ctx context.Context, tier gamedata.WorkerTier, amount uint64) (err error) {
	ctx, span := startOp(ctx, "tile.fire_workers", t.ID,
		attribute.String("tier", tier.ID()),
		attribute.Int64("amount", int64(amount)),
	)
	defer func() { finishOp(ctx, span, "fire_workers", err) }()

	if amount == 0 {
		return nil
	}

	if err := t.state.Workers.Fire(tier, amount); err != nil {
		return err
	}
	t.emit(Event{Kind: EventWorkersFired, TileID: t.ID, Subject: tier.ID(), Amount: amount})
	return nil
}

// BuildHousing builds amount housing units, reserving land and paying cost.
func (t *Tile) BuildHousing(ctx context.Context, h gamedata.HousingType, amount uint64, wallet *Wallet) (err error) {
	ctx, span := startOp(ctx, "tile.build_housing", t.ID,
		attribute.String("housing", h.ID()),
		attribute.Int64("amount", int64(amount)),
	)
	defer func() { finishOp(ctx, span, "build_housing", err) }()

	if amount == 0 {
		return nil
	}

	def := t.catalog.Housing(h)
	cost := def.Cost * float64(amount)
	land := def.Land * amount

	if err := wallet.CanAfford(cost); err != nil {
		return err
	}
	if err := t.state.Land.CanUse(land); err != nil {
		return failure.Rekind(err, failure.InsufficientLand)
	}

	_ = t.state.Land.Use(land) // CanUse passed above
	wallet.debit(cost)
	t.state.Buildings.BuildHousing(h, amount)
	t.emit(Event{Kind: EventHousingBuilt, TileID: t.ID, Subject: h.ID(), Amount: amount})
	return nil
}

// DestroyHousing demolishes amount housing units and frees their land.
// Nothing is refunded and workers already hired stay hired.
func (t *Tile) DestroyHousing(ctx context.Context, h gamedata.HousingType, amount uint64) (err error) {
	ctx, span := startOp(ctx, "tile.destroy_housing", t.ID,
		attribute.String("housing", h.ID()),
		attribute.Int64("amount", int64(amount)),
	)
	defer func() { finishOp(ctx, span, "destroy_housing", err) }()

	if amount == 0 {
		return nil
	}

	land := t.catalog.Housing(h).Land * amount
	if err := t.state.Buildings.CanDestroyHousing(h, amount); err != nil {
		return err
	}
	if err := t.state.Land.CanFree(land); err != nil {
		return err
	}

	// Both were validated above, so neither can fail.
	_ = t.state.Land.Free(land)
	_ = t.state.Buildings.DestroyHousing(h, amount)
	t.emit(Event{Kind: EventHousingDestroyed, TileID: t.ID, Subject: h.ID(), Amount: amount})
	return nil
}

// BuildProduction builds amount production buildings. Funds, land and every
// required worker tier are validated first; on success land is reserved,
// workers are assigned, money is debited and the counter increments.
func (t *Tile) BuildProduction(ctx context.Context, p gamedata.ProductionType, amount uint64, wallet *Wallet) (err error) {
	ctx, span := startOp(ctx, "tile.build_production", t.ID,
		attribute.String("production", p.ID()),
		attribute.Int64("amount", int64(amount)),
	)
	defer func() { finishOp(ctx, span, "build_production", err) }()

	if amount == 0 {
		return nil
	}

	def := t.catalog.Production(p)
	cost := def.Cost * float64(amount)
	land := def.Land * amount
	workers := def.Scaled(amount)

	if err := wallet.CanAfford(cost); err != nil {
		return err
	}
	if err := t.state.Land.CanUse(land); err != nil {
		return failure.Rekind(err, failure.InsufficientLand)
	}
	if err := t.state.Workers.CanAssignAll(workers); err != nil {
		return err
	}

	// CanUse and CanAssignAll passed above, so neither can fail.
	_ = t.state.Land.Use(land)
	_ = t.state.Workers.CheckAssign(workers)
	wallet.debit(cost)
	t.state.Buildings.BuildProduction(p, amount)
	t.state.Slots = append(t.state.Slots, newSlots(p, amount)...)
	t.emit(Event{Kind: EventProductionBuilt, TileID: t.ID, Subject: p.ID(), Amount: amount})
	return nil
}

func (t *Tile) emit(e Event) {
	if t.notify != nil {
		t.notify(e)
	}
}
