// Package inventory implements item containers bounded by weight and volume.
package inventory

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/samdwyer/tradeworld/internal/failure"
	"github.com/samdwyer/tradeworld/internal/gamedata"
)

// Inventory is a collection of item stacks with a weight and a volume cap.
//
// Invariants, held after every call:
//   - Weight() and Volume() equal the footprint of the stacks
//   - Weight() <= MaxWeight() and Volume() <= MaxVolume()
//   - no stack has a zero quantity and item ids are unique
type Inventory struct {
	id        string
	name      string
	catalog   *gamedata.Catalog
	stacks    []gamedata.ItemStack
	maxWeight uint64
	maxVolume uint64
	weight    uint64
	volume    uint64
}

// New creates an empty inventory with a fresh id.
func New(name string, maxWeight, maxVolume uint64, catalog *gamedata.Catalog) *Inventory {
	return &Inventory{
		id:        uuid.NewString(),
		name:      name,
		catalog:   catalog,
		stacks:    make([]gamedata.ItemStack, 0),
		maxWeight: maxWeight,
		maxVolume: maxVolume,
	}
}

// NewSeeded creates an inventory and adds the given stacks through Add, so
// seeded stock is truncated to capacity like any other insertion.
func NewSeeded(name string, maxWeight, maxVolume uint64, catalog *gamedata.Catalog, stacks ...gamedata.ItemStack) *Inventory {
	inv := New(name, maxWeight, maxVolume, catalog)
	for _, st := range stacks {
		inv.Add(st.ItemID, st.Quantity)
	}
	return inv
}

// ID returns the inventory's unique id.
func (inv *Inventory) ID() string { return inv.id }

// Name returns the display name.
func (inv *Inventory) Name() string { return inv.name }

// MaxWeight returns the weight cap.
func (inv *Inventory) MaxWeight() uint64 { return inv.maxWeight }

// MaxVolume returns the volume cap.
func (inv *Inventory) MaxVolume() uint64 { return inv.maxVolume }

// Weight returns the current weight.
func (inv *Inventory) Weight() uint64 { return inv.weight }

// Volume returns the current volume.
func (inv *Inventory) Volume() uint64 { return inv.volume }

// EmptyWeight returns the remaining weight budget.
func (inv *Inventory) EmptyWeight() uint64 { return inv.maxWeight - inv.weight }

// EmptyVolume returns the remaining volume budget.
func (inv *Inventory) EmptyVolume() uint64 { return inv.maxVolume - inv.volume }

// Capacity returns how many units of the item still fit, computed from the
// current occupancy on every call.
func (inv *Inventory) Capacity(itemID string) uint64 {
	item := inv.catalog.MustItem(itemID)
	return min(inv.EmptyWeight()/item.Weight, inv.EmptyVolume()/item.Volume)
}

// Fits returns the part of requested that the inventory can accept.
func (inv *Inventory) Fits(itemID string, requested uint64) uint64 {
	return min(inv.Capacity(itemID), requested)
}

// Quantity returns the units of the item held, 0 when there is no stack.
func (inv *Inventory) Quantity(itemID string) uint64 {
	if i := inv.find(itemID); i >= 0 {
		return inv.stacks[i].Quantity
	}
	return 0
}

// Stacks returns a copy of the stacks sorted by item id.
func (inv *Inventory) Stacks() []gamedata.ItemStack {
	out := make([]gamedata.ItemStack, len(inv.stacks))
	copy(out, inv.stacks)
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}

// Add moves up to quantity units in, silently truncating to what fits.
// It returns the number of units actually added.
func (inv *Inventory) Add(itemID string, quantity uint64) uint64 {
	item := inv.catalog.MustItem(itemID)
	moved := inv.Fits(itemID, quantity)
	if moved == 0 {
		return 0
	}

	if i := inv.find(itemID); i >= 0 {
		inv.stacks[i].Quantity += moved
	} else {
		inv.stacks = append(inv.stacks, gamedata.ItemStack{ItemID: itemID, Quantity: moved})
	}

	inv.weight += item.Weight * moved
	inv.volume += item.Volume * moved
	return moved
}

// Remove takes up to quantity units out, saturating at the stack size, and
// returns the number of units actually removed. The footprint shrinks by the
// removed amount. Empty stacks are deleted.
//
// Removing an item that has no stack is a caller bug and panics.
func (inv *Inventory) Remove(itemID string, quantity uint64) uint64 {
	item := inv.catalog.MustItem(itemID)
	i := inv.find(itemID)
	if i < 0 {
		failure.Panic(failure.NotFound, "inventory %s holds no %s to remove", inv.id, itemID)
	}

	removed := min(quantity, inv.stacks[i].Quantity)
	inv.stacks[i].Quantity -= removed
	if inv.stacks[i].Quantity == 0 {
		inv.stacks = append(inv.stacks[:i], inv.stacks[i+1:]...)
	}

	inv.weight -= item.Weight * removed
	inv.volume -= item.Volume * removed
	return removed
}

// Check reconciles the cached totals with the stacks and verifies the caps.
func (inv *Inventory) Check() error {
	var weight, volume uint64
	seen := make(map[string]bool, len(inv.stacks))
	for _, st := range inv.stacks {
		if st.Quantity == 0 {
			return fmt.Errorf("inventory %s: zero-quantity stack %s", inv.id, st.ItemID)
		}
		if seen[st.ItemID] {
			return fmt.Errorf("inventory %s: duplicate stack %s", inv.id, st.ItemID)
		}
		seen[st.ItemID] = true
		item := inv.catalog.MustItem(st.ItemID)
		weight += item.Weight * st.Quantity
		volume += item.Volume * st.Quantity
	}
	if weight != inv.weight || volume != inv.volume {
		return fmt.Errorf("inventory %s: totals %d/%d do not match stacks %d/%d",
			inv.id, inv.weight, inv.volume, weight, volume)
	}
	if inv.weight > inv.maxWeight || inv.volume > inv.maxVolume {
		return fmt.Errorf("inventory %s: over capacity %d/%d of %d/%d",
			inv.id, inv.weight, inv.volume, inv.maxWeight, inv.maxVolume)
	}
	return nil
}

func (inv *Inventory) find(itemID string) int {
	for i := range inv.stacks {
		if inv.stacks[i].ItemID == itemID {
			return i
		}
	}
	return -1
}
