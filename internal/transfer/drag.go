// Package transfer implements the drag-and-drop move of an item stack from
// one container to another.
//
// A Drag snapshots the stack when it starts, proposes a quantity when it
// hovers a destination and commits on release. The commit re-reads the
// live source and destination so the destination never truncates.
package transfer

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/samdwyer/tradeworld/internal/failure"
	"github.com/samdwyer/tradeworld/internal/telemetry"
)

var commits = telemetry.Counter(telemetry.Meter("transfer"),
	"transfer.commits", "Transfer releases by outcome")

// Container is anything items can be dragged out of or dropped into.
// *inventory.Inventory satisfies it.
type Container interface {
	ID() string
	Name() string
	Quantity(itemID string) uint64
	Fits(itemID string, requested uint64) uint64
	Add(itemID string, quantity uint64) uint64
	Remove(itemID string, quantity uint64) uint64
}

// State is the phase of a drag.
type State int

const (
	Idle State = iota
	Dragging
	Hovering
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Hovering:
		return "hovering"
	default:
		return "unknown"
	}
}

// Result describes a completed release.
type Result struct {
	ItemID    string
	From, To  string
	Requested uint64
	Moved     uint64
}

// Drag is the transfer state machine. The zero value is an idle drag.
type Drag struct {
	state     State
	itemID    string
	available uint64
	source    Container

	dest     Container
	fittable uint64
	proposed uint64
	selected Option
}

// State returns the current phase.
func (d *Drag) State() State { return d.state }

// ItemID returns the dragged item, or "" when idle.
func (d *Drag) ItemID() string { return d.itemID }

// Available returns the quantity snapshotted at drag start.
func (d *Drag) Available() uint64 { return d.available }

// Source returns the container the drag started from.
func (d *Drag) Source() Container { return d.source }

// Destination returns the hovered container, or nil.
func (d *Drag) Destination() Container { return d.dest }

// Proposed returns the quantity a release would move.
func (d *Drag) Proposed() uint64 { return d.proposed }

// Selected returns the option the proposed quantity came from.
func (d *Drag) Selected() Option { return d.selected }

// CapacityExceeded reports a hover over a destination with no room.
func (d *Drag) CapacityExceeded() bool {
	return d.state == Hovering && d.fittable == 0
}

// Options returns the quantity choices for the hovered destination.
func (d *Drag) Options() []Option {
	if d.state != Hovering {
		return nil
	}
	return options(d.available, d.fittable)
}

// Start begins dragging the stack of itemID held by source. Any drag in
// progress is abandoned.
func (d *Drag) Start(itemID string, source Container) error {
	qty := source.Quantity(itemID)
	if qty == 0 {
		return failure.New(failure.NotFound, "%s holds no %s.", source.Name(), itemID)
	}
	*d = Drag{
		state:     Dragging,
		itemID:    itemID,
		available: qty,
		source:    source,
	}
	return nil
}

// Hover resolves the proposed quantity against dest. Hovering the source
// itself, or hovering while idle, does nothing.
func (d *Drag) Hover(dest Container) {
	if d.state == Idle || dest == nil || dest.ID() == d.source.ID() {
		return
	}
	d.state = Hovering
	d.dest = dest
	d.fittable = dest.Fits(d.itemID, d.available)
	d.proposed = min(d.available, d.fittable)
	if d.fittable >= d.available {
		d.selected = OptionAll
	} else {
		d.selected = OptionMax
	}
}

// Select picks one of Options. It reports false when opt is not on offer.
func (d *Drag) Select(opt Option) bool {
	for _, o := range d.Options() {
		if o == opt {
			d.selected = opt
			d.proposed = opt.quantity(d.available, d.fittable)
			return true
		}
	}
	return false
}

// Leave clears the destination and keeps dragging.
func (d *Drag) Leave() {
	if d.state != Hovering {
		return
	}
	d.state = Dragging
	d.dest = nil
	d.fittable = 0
	d.proposed = 0
}

// Cancel abandons the drag without touching either container.
func (d *Drag) Cancel() {
	*d = Drag{}
}

// Release ends the drag. With a destination and a non-zero proposal it
// removes the units from the source and adds them to the destination;
// without a destination it only returns to idle.
//
// The quantity is clamped to what the source still holds and what the
// destination still fits at the moment of release.
func (d *Drag) Release(ctx context.Context) (res Result, err error) {
	defer d.Cancel()
	if d.state != Hovering {
		return Result{}, nil
	}

	ctx, span := telemetry.Tracer("transfer").Start(ctx, "transfer.commit")
	span.SetAttributes(
		attribute.String("item", d.itemID),
		attribute.String("from", d.source.Name()),
		attribute.String("to", d.dest.Name()),
		attribute.Int64("proposed", int64(d.proposed)),
	)
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = failure.KindOf(err).String()
			span.SetStatus(codes.Error, failure.Reason(err))
		}
		span.SetAttributes(attribute.Int64("moved", int64(res.Moved)))
		commits.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
		span.End()
	}()

	res = Result{ItemID: d.itemID, From: d.source.ID(), To: d.dest.ID(), Requested: d.proposed}
	if d.fittable == 0 {
		return res, failure.New(failure.InsufficientCapacity,
			"Not enough space in %s for %s.", d.dest.Name(), d.itemID)
	}

	live := d.source.Quantity(d.itemID)
	if live == 0 {
		return res, failure.New(failure.StaleTransfer,
			"%s no longer holds any %s.", d.source.Name(), d.itemID)
	}
	qty := d.dest.Fits(d.itemID, min(d.proposed, live))
	if qty == 0 {
		return res, failure.New(failure.InsufficientCapacity,
			"Not enough space in %s for %s.", d.dest.Name(), d.itemID)
	}

	removed := d.source.Remove(d.itemID, qty)
	res.Moved = d.dest.Add(d.itemID, removed)
	return res, nil
}
