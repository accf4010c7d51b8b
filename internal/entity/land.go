// Package entity provides the capacity ledgers owned by a tile: land,
// worker pools and building counters.
package entity

import "github.com/samdwyer/tradeworld/internal/failure"

// Land is a capacity ledger over a tile's area.
// Invariant: 0 <= available <= total.
type Land struct {
	total     uint64
	available uint64
}

// NewLand creates a ledger with all land available.
func NewLand(total uint64) Land {
	return Land{total: total, available: total}
}

// Total returns the size of the ledger.
func (l Land) Total() uint64 { return l.total }

// Available returns the unused land.
func (l Land) Available() uint64 { return l.available }

// Used returns total - available.
func (l Land) Used() uint64 { return l.total - l.available }

// CanUse reports whether Use(amount) would succeed.
func (l Land) CanUse(amount uint64) error {
	if amount > l.available {
		return failure.New(failure.InsufficientCapacity,
			"Not enough land. Need: %d, available: %d.", amount, l.available)
	}
	return nil
}

// Use reserves amount. It fails with InsufficientCapacity and leaves the
// ledger untouched when amount exceeds what is available.
func (l *Land) Use(amount uint64) error {
	if err := l.CanUse(amount); err != nil {
		return err
	}
	l.available -= amount
	return nil
}

// CanFree reports whether Free(amount) would succeed.
func (l Land) CanFree(amount uint64) error {
	if amount > l.Used() {
		return failure.New(failure.OverRelease,
			"Trying to free more land than is used. Used: %d, freeing: %d.", l.Used(), amount)
	}
	return nil
}

// Free releases amount. Releasing more than is used is an OverRelease.
func (l *Land) Free(amount uint64) error {
	if err := l.CanFree(amount); err != nil {
		return err
	}
	l.available += amount
	return nil
}
