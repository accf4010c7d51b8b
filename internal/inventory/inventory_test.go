package inventory

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/samdwyer/tradeworld/internal/failure"
	"github.com/samdwyer/tradeworld/internal/gamedata"
)

func newInventory(maxWeight, maxVolume uint64) *Inventory {
	return New("test", maxWeight, maxVolume, gamedata.Default())
}

func mustCheck(t *testing.T, inv *Inventory) {
	t.Helper()
	if err := inv.Check(); err != nil {
		t.Fatalf("Check failed: %v", err)
	}
}

func TestAddTruncatesToCapacity(t *testing.T) {
	inv := newInventory(500_000, 500_000)

	moved := inv.Add("LOG", 600)
	if moved != 500 {
		t.Errorf("Add(LOG, 600) moved %d, want 500", moved)
	}
	if inv.Quantity("LOG") != 500 {
		t.Errorf("Quantity(LOG) = %d, want 500", inv.Quantity("LOG"))
	}
	if inv.Weight() != 500_000 || inv.Volume() != 500_000 {
		t.Errorf("Weight/Volume = %d/%d, want 500000/500000", inv.Weight(), inv.Volume())
	}
	mustCheck(t, inv)

	if moved := inv.Add("LOG", 1); moved != 0 {
		t.Errorf("Add into full inventory moved %d, want 0", moved)
	}
}

func TestFitsUsesTighterBound(t *testing.T) {
	inv := newInventory(500_000, 500_000)

	tests := []struct {
		item      string
		requested uint64
		expected  uint64
	}{
		{"GRV", 1000, 250}, // weight-bound: 500000/2000
		{"CHR", 1000, 166}, // volume-bound: 500000/3000
		{"DBG", 1000, 61},  // volume-bound: 500000/8100
		{"BRD", 10, 10},    // clamped to request
	}

	for _, tt := range tests {
		if got := inv.Fits(tt.item, tt.requested); got != tt.expected {
			t.Errorf("Fits(%s, %d) = %d, want %d", tt.item, tt.requested, got, tt.expected)
		}
	}

	inv.Add("CHR", 100)
	if got := inv.Capacity("CHR"); got != 66 {
		t.Errorf("Capacity(CHR) after adding 100 = %d, want 66", got)
	}
}

func TestAddZeroCreatesNoStack(t *testing.T) {
	inv := newInventory(1000, 1000)
	inv.Add("DBG", 5) // does not fit at all
	inv.Add("LOG", 0)

	if len(inv.Stacks()) != 0 {
		t.Errorf("Stacks = %+v, want none", inv.Stacks())
	}
	mustCheck(t, inv)
}

func TestRemoveSaturatesAndDeletesStack(t *testing.T) {
	inv := NewSeeded("seeded", 500_000, 500_000, gamedata.Default(),
		gamedata.ItemStack{ItemID: "GRV", Quantity: 100},
		gamedata.ItemStack{ItemID: "BRD", Quantity: 120},
		gamedata.ItemStack{ItemID: "LOG", Quantity: 12},
	)
	mustCheck(t, inv)
	if inv.Weight() != 332_000 || inv.Volume() != 306_000 {
		t.Errorf("Seeded totals = %d/%d, want 332000/306000", inv.Weight(), inv.Volume())
	}

	if removed := inv.Remove("BRD", 20); removed != 20 {
		t.Errorf("Remove(BRD, 20) = %d, want 20", removed)
	}
	if inv.Quantity("BRD") != 100 {
		t.Errorf("BRD = %d, want 100", inv.Quantity("BRD"))
	}
	mustCheck(t, inv)

	// Over-removal saturates; footprint shrinks by what was actually removed.
	if removed := inv.Remove("LOG", 50); removed != 12 {
		t.Errorf("Remove(LOG, 50) = %d, want 12", removed)
	}
	if inv.Quantity("LOG") != 0 {
		t.Errorf("LOG = %d, want 0", inv.Quantity("LOG"))
	}
	for _, st := range inv.Stacks() {
		if st.ItemID == "LOG" {
			t.Error("LOG stack should have been deleted")
		}
	}
	mustCheck(t, inv)
}

func TestRemoveMissingStackPanics(t *testing.T) {
	inv := newInventory(1000, 1000)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Remove of missing stack should panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, failure.NotFound) {
			t.Errorf("panic = %v, want NotFound failure", r)
		}
	}()
	inv.Remove("LOG", 1)
}

func TestUnknownItemPanics(t *testing.T) {
	inv := newInventory(1000, 1000)
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, failure.CatalogLookupFailure) {
			t.Errorf("panic = %v, want CatalogLookupFailure", r)
		}
	}()
	inv.Add("NOPE", 1)
}

func TestStacksSortedCopy(t *testing.T) {
	inv := newInventory(500_000, 500_000)
	inv.Add("LOG", 1)
	inv.Add("BRD", 1)
	inv.Add("CHR", 1)

	stacks := inv.Stacks()
	want := []string{"BRD", "CHR", "LOG"}
	for i, id := range want {
		if stacks[i].ItemID != id {
			t.Errorf("Stacks()[%d] = %s, want %s", i, stacks[i].ItemID, id)
		}
	}

	stacks[0].Quantity = 99
	if inv.Quantity("BRD") != 1 {
		t.Error("Stacks() exposed internal storage")
	}
}

func TestIDsAreUnique(t *testing.T) {
	a := newInventory(1, 1)
	b := newInventory(1, 1)
	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("IDs %q and %q should be distinct and non-empty", a.ID(), b.ID())
	}
}

func TestConservationUnderRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	items := gamedata.Default().Items()
	inv := newInventory(250_000, 300_000)

	for i := 0; i < 2000; i++ {
		item := items[rng.Intn(len(items))].ID
		qty := uint64(rng.Intn(80))

		if rng.Intn(2) == 0 || inv.Quantity(item) == 0 {
			inv.Add(item, qty)
		} else {
			inv.Remove(item, qty)
		}

		if err := inv.Check(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		for _, st := range inv.Stacks() {
			if st.Quantity == 0 {
				t.Fatalf("step %d: zero-quantity stack %s", i, st.ItemID)
			}
		}
	}
}
