package transfer

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/samdwyer/tradeworld/internal/failure"
	"github.com/samdwyer/tradeworld/internal/gamedata"
	"github.com/samdwyer/tradeworld/internal/inventory"
)

func newInv(name string, maxWeight, maxVolume uint64, stacks ...gamedata.ItemStack) *inventory.Inventory {
	return inventory.NewSeeded(name, maxWeight, maxVolume, gamedata.Default(), stacks...)
}

func TestDragMaxWhenDestinationIsSmall(t *testing.T) {
	src := newInv("src", 500_000, 500_000, gamedata.ItemStack{ItemID: "LOG", Quantity: 50})
	dst := newInv("dst", 20_000, 20_000)

	var d Drag
	if err := d.Start("LOG", src); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if d.State() != Dragging || d.Available() != 50 {
		t.Fatalf("after Start: state %v available %d", d.State(), d.Available())
	}

	d.Hover(dst)
	if d.State() != Hovering {
		t.Fatalf("state = %v, want hovering", d.State())
	}
	if d.Proposed() != 20 {
		t.Errorf("Proposed() = %d, want 20", d.Proposed())
	}
	want := []Option{OptionOne, OptionTen, OptionMax}
	if got := d.Options(); !reflect.DeepEqual(got, want) {
		t.Errorf("Options() = %v, want %v", got, want)
	}

	res, err := d.Release(context.Background())
	if err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if res.Moved != 20 {
		t.Errorf("moved %d, want 20", res.Moved)
	}
	if got := src.Quantity("LOG"); got != 30 {
		t.Errorf("source LOG = %d, want 30", got)
	}
	if got := dst.Quantity("LOG"); got != 20 {
		t.Errorf("destination LOG = %d, want 20", got)
	}
	if d.State() != Idle {
		t.Errorf("state after release = %v, want idle", d.State())
	}
	for _, inv := range []*inventory.Inventory{src, dst} {
		if err := inv.Check(); err != nil {
			t.Error(err)
		}
	}
}

func TestDragAllWhenEverythingFits(t *testing.T) {
	src := newInv("src", 500_000, 500_000, gamedata.ItemStack{ItemID: "GRV", Quantity: 100})
	dst := newInv("dst", 500_000, 500_000)

	var d Drag
	_ = d.Start("GRV", src)
	d.Hover(dst)

	want := []Option{OptionOne, OptionTen, OptionHundred, OptionAll}
	if got := d.Options(); !reflect.DeepEqual(got, want) {
		t.Errorf("Options() = %v, want %v", got, want)
	}
	if d.Selected() != OptionAll || d.Proposed() != 100 {
		t.Errorf("default selection %v/%d, want ALL/100", d.Selected(), d.Proposed())
	}

	if !d.Select(OptionTen) {
		t.Fatal("Select(10) rejected")
	}
	if d.Select(OptionThousand) {
		t.Error("Select(1000) accepted with only 100 available")
	}
	if d.Proposed() != 10 {
		t.Errorf("Proposed() = %d, want 10", d.Proposed())
	}

	res, err := d.Release(context.Background())
	if err != nil || res.Moved != 10 {
		t.Fatalf("Release = %+v, %v; want 10 moved", res, err)
	}
	if src.Quantity("GRV") != 90 || dst.Quantity("GRV") != 10 {
		t.Errorf("GRV src/dst = %d/%d, want 90/10", src.Quantity("GRV"), dst.Quantity("GRV"))
	}
}

func TestDragCapacityExceeded(t *testing.T) {
	src := newInv("src", 500_000, 500_000, gamedata.ItemStack{ItemID: "DBG", Quantity: 5})
	dst := newInv("dst", 5_000, 5_000)

	var d Drag
	_ = d.Start("DBG", src)
	d.Hover(dst)

	if !d.CapacityExceeded() {
		t.Fatal("CapacityExceeded() = false, want true")
	}
	if opts := d.Options(); len(opts) != 0 {
		t.Errorf("Options() = %v, want none", opts)
	}
	_, err := d.Release(context.Background())
	if !errors.Is(err, failure.InsufficientCapacity) {
		t.Errorf("Release error = %v, want InsufficientCapacity", err)
	}
	if src.Quantity("DBG") != 5 || dst.Quantity("DBG") != 0 {
		t.Error("capacity-exceeded release moved items")
	}
}

func TestDragLeaveAndReleaseWithoutDestination(t *testing.T) {
	src := newInv("src", 500_000, 500_000, gamedata.ItemStack{ItemID: "BRD", Quantity: 40})
	dst := newInv("dst", 500_000, 500_000)

	var d Drag
	_ = d.Start("BRD", src)
	d.Hover(dst)
	d.Leave()
	if d.State() != Dragging || d.Destination() != nil || d.Proposed() != 0 {
		t.Errorf("after Leave: state %v dest %v proposed %d", d.State(), d.Destination(), d.Proposed())
	}

	res, err := d.Release(context.Background())
	if err != nil || res.Moved != 0 {
		t.Errorf("Release without destination = %+v, %v", res, err)
	}
	if d.State() != Idle {
		t.Errorf("state = %v, want idle", d.State())
	}
	if src.Quantity("BRD") != 40 {
		t.Error("release without destination changed the source")
	}
}

func TestDragHoverSourceIsIgnored(t *testing.T) {
	src := newInv("src", 500_000, 500_000, gamedata.ItemStack{ItemID: "LOG", Quantity: 5})

	var d Drag
	_ = d.Start("LOG", src)
	d.Hover(src)
	if d.State() != Dragging {
		t.Errorf("state = %v, want dragging", d.State())
	}
}

func TestDragCancel(t *testing.T) {
	src := newInv("src", 500_000, 500_000, gamedata.ItemStack{ItemID: "LOG", Quantity: 5})
	dst := newInv("dst", 500_000, 500_000)

	var d Drag
	_ = d.Start("LOG", src)
	d.Hover(dst)
	d.Cancel()
	if d.State() != Idle || d.ItemID() != "" {
		t.Errorf("after Cancel: state %v item %q", d.State(), d.ItemID())
	}
	if src.Quantity("LOG") != 5 || dst.Quantity("LOG") != 0 {
		t.Error("Cancel moved items")
	}
}

func TestDragStartEmptyStack(t *testing.T) {
	src := newInv("src", 500_000, 500_000)

	var d Drag
	if err := d.Start("LOG", src); !errors.Is(err, failure.NotFound) {
		t.Errorf("Start error = %v, want NotFound", err)
	}
	if d.State() != Idle {
		t.Errorf("state = %v, want idle", d.State())
	}
}

func TestDragReleaseReresolvesLiveState(t *testing.T) {
	ctx := context.Background()

	t.Run("source shrank", func(t *testing.T) {
		src := newInv("src", 500_000, 500_000, gamedata.ItemStack{ItemID: "LOG", Quantity: 50})
		dst := newInv("dst", 500_000, 500_000)

		var d Drag
		_ = d.Start("LOG", src)
		d.Hover(dst)
		src.Remove("LOG", 35)

		res, err := d.Release(ctx)
		if err != nil || res.Moved != 15 {
			t.Fatalf("Release = %+v, %v; want 15 moved", res, err)
		}
		if src.Quantity("LOG") != 0 || dst.Quantity("LOG") != 15 {
			t.Errorf("LOG src/dst = %d/%d, want 0/15", src.Quantity("LOG"), dst.Quantity("LOG"))
		}
	})

	t.Run("source emptied", func(t *testing.T) {
		src := newInv("src", 500_000, 500_000, gamedata.ItemStack{ItemID: "LOG", Quantity: 50})
		dst := newInv("dst", 500_000, 500_000)

		var d Drag
		_ = d.Start("LOG", src)
		d.Hover(dst)
		src.Remove("LOG", 50)

		if _, err := d.Release(ctx); !errors.Is(err, failure.StaleTransfer) {
			t.Errorf("Release error = %v, want StaleTransfer", err)
		}
		if dst.Quantity("LOG") != 0 {
			t.Error("stale release added items")
		}
	})

	t.Run("destination filled", func(t *testing.T) {
		src := newInv("src", 500_000, 500_000, gamedata.ItemStack{ItemID: "LOG", Quantity: 50})
		dst := newInv("dst", 30_000, 30_000)

		var d Drag
		_ = d.Start("LOG", src)
		d.Hover(dst)
		dst.Add("GRV", 10)

		res, err := d.Release(ctx)
		if err != nil || res.Moved != 10 {
			t.Fatalf("Release = %+v, %v; want 10 moved", res, err)
		}
		if src.Quantity("LOG") != 40 {
			t.Errorf("source LOG = %d, want 40", src.Quantity("LOG"))
		}
	})
}

func TestOptionString(t *testing.T) {
	tests := map[Option]string{
		OptionOne:      "1",
		OptionThousand: "1000",
		OptionAll:      "ALL",
		OptionMax:      "MAX",
		Option(42):     "Option(42)",
	}
	for opt, want := range tests {
		if got := opt.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(opt), got, want)
		}
	}
}
