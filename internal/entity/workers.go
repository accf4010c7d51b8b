package entity

import (
	"github.com/samdwyer/tradeworld/internal/failure"
	"github.com/samdwyer/tradeworld/internal/gamedata"
)

// WorkerCategory is the pool of hired workers of one tier.
// Invariant: 0 <= assigned <= total.
type WorkerCategory struct {
	total    uint64
	assigned uint64
}

// Total returns the number of hired workers.
func (w *WorkerCategory) Total() uint64 { return w.total }

// Assigned returns the number of workers assigned to buildings.
func (w *WorkerCategory) Assigned() uint64 { return w.assigned }

// Available returns total - assigned.
func (w *WorkerCategory) Available() uint64 { return w.total - w.assigned }

// Hire adds workers. Payment is validated by the caller.
func (w *WorkerCategory) Hire(amount uint64) {
	w.total += amount
}

// Fire removes unassigned workers. It fails with InsufficientAvailable when
// the total would drop below the assigned count.
func (w *WorkerCategory) Fire(amount uint64) error {
	if amount > w.total {
		return failure.New(failure.InsufficientAvailable,
			"Cannot fire %d workers, only have %d.", amount, w.total)
	}
	if w.total-amount < w.assigned {
		return failure.New(failure.InsufficientAvailable,
			"Cannot fire assigned workers. Firing %d of %d would leave fewer than the %d assigned.",
			amount, w.total, w.assigned)
	}
	w.total -= amount
	return nil
}

// CanAssign reports whether Assign(amount) would succeed.
func (w *WorkerCategory) CanAssign(amount uint64) error {
	if amount > w.Available() {
		return failure.New(failure.InsufficientAvailable,
			"Cannot assign %d workers, only %d available.", amount, w.Available())
	}
	return nil
}

// Assign moves amount workers from available to assigned.
func (w *WorkerCategory) Assign(amount uint64) error {
	if err := w.CanAssign(amount); err != nil {
		return err
	}
	w.assigned += amount
	return nil
}

// Unassign returns amount workers to the available pool.
func (w *WorkerCategory) Unassign(amount uint64) error {
	if amount > w.assigned {
		return failure.New(failure.OverUnassign,
			"Cannot unassign %d workers, only %d assigned.", amount, w.assigned)
	}
	w.assigned -= amount
	return nil
}

// Workers is the set of worker pools, one per tier.
type Workers struct {
	pools [gamedata.NumWorkerTiers]WorkerCategory
}

// Pool returns the category for a tier.
func (w *Workers) Pool(tier gamedata.WorkerTier) *WorkerCategory {
	if !tier.Valid() {
		failure.Panic(failure.CatalogLookupFailure, "worker tier %d not in catalog", int(tier))
	}
	return &w.pools[tier]
}

// Total returns the hired workers of a tier.
func (w *Workers) Total(tier gamedata.WorkerTier) uint64 { return w.Pool(tier).Total() }

// Assigned returns the assigned workers of a tier.
func (w *Workers) Assigned(tier gamedata.WorkerTier) uint64 { return w.Pool(tier).Assigned() }

// Available returns the unassigned workers of a tier.
func (w *Workers) Available(tier gamedata.WorkerTier) uint64 { return w.Pool(tier).Available() }

// Hire adds workers to a tier.
func (w *Workers) Hire(tier gamedata.WorkerTier, amount uint64) { w.Pool(tier).Hire(amount) }

// Fire removes unassigned workers from a tier.
func (w *Workers) Fire(tier gamedata.WorkerTier, amount uint64) error { return w.Pool(tier).Fire(amount) }

// Assign assigns workers of a single tier.
func (w *Workers) Assign(tier gamedata.WorkerTier, amount uint64) error {
	return w.Pool(tier).Assign(amount)
}

// Unassign releases workers of a single tier.
func (w *Workers) Unassign(tier gamedata.WorkerTier, amount uint64) error {
	return w.Pool(tier).Unassign(amount)
}

// CanAssignAll validates every requirement without assigning anything.
// Requirements naming the same tier are summed.
func (w *Workers) CanAssignAll(reqs []gamedata.WorkerRequirement) error {
	var need [gamedata.NumWorkerTiers]uint64
	for _, req := range reqs {
		w.Pool(req.Tier)
		need[req.Tier] += req.Count
	}
	for _, req := range reqs {
		pool := &w.pools[req.Tier]
		if need[req.Tier] > pool.Available() {
			return failure.New(failure.InsufficientWorkers,
				"Not enough %s workers. Need %d, have %d.",
				req.Tier, need[req.Tier], pool.Available())
		}
	}
	return nil
}

// CheckAssign assigns every requirement or none of them: all tiers are
// validated before any pool is touched.
func (w *Workers) CheckAssign(reqs []gamedata.WorkerRequirement) error {
	if err := w.CanAssignAll(reqs); err != nil {
		return err
	}
	for _, req := range reqs {
		// Cannot fail after CanAssignAll.
		_ = w.pools[req.Tier].Assign(req.Count)
	}
	return nil
}
