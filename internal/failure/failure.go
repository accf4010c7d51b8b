// Package failure defines the error kinds reported by the economy engine.
//
// Every rejected operation returns an *Error carrying a Kind and a
// human-readable reason. Kinds are comparable with errors.Is:
//
//	if errors.Is(err, failure.InsufficientLand) { ... }
//
// User-facing kinds (funds, land, housing, workers) leave state untouched.
// Programmer-error kinds (CatalogLookupFailure, a missing stack on removal)
// are raised with Panic instead of being returned.
package failure

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	// None is returned by KindOf for nil or foreign errors.
	None Kind = iota
	InsufficientFunds
	InsufficientLand
	InsufficientHousing
	InsufficientWorkers
	// InsufficientAvailable is a worker pool refusing an assignment or a fire.
	InsufficientAvailable
	// InsufficientCapacity is a generic ledger refusing Use.
	InsufficientCapacity
	OverRelease
	OverUnassign
	CatalogLookupFailure
	NotFound
	NotOwned
	AlreadyOwned
	// StaleTransfer means the source of a drag no longer holds the item.
	StaleTransfer
)

var kindNames = map[Kind]string{
	None:                  "none",
	InsufficientFunds:     "insufficient_funds",
	InsufficientLand:      "insufficient_land",
	InsufficientHousing:   "insufficient_housing",
	InsufficientWorkers:   "insufficient_workers",
	InsufficientAvailable: "insufficient_available",
	InsufficientCapacity:  "insufficient_capacity",
	OverRelease:           "over_release",
	OverUnassign:          "over_unassign",
	CatalogLookupFailure:  "catalog_lookup_failure",
	NotFound:              "not_found",
	NotOwned:              "not_owned",
	AlreadyOwned:          "already_owned",
	StaleTransfer:         "stale_transfer",
}

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Error lets a Kind be used as an errors.Is target.
func (k Kind) Error() string {
	return k.String()
}

// Error is a classified failure with a reason suitable for display.
type Error struct {
	Kind   Kind
	Reason string
}

// New creates an *Error of the given kind with a formatted reason.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// Error returns the reason.
func (e *Error) Error() string {
	return e.Reason
}

// Is matches a bare Kind or another *Error of the same kind.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case Kind:
		return e.Kind == t
	case *Error:
		return e.Kind == t.Kind
	}
	return false
}

// Rekind returns a copy of err with its kind replaced, keeping the reason.
// Errors that are not *Error are wrapped under the new kind.
func Rekind(err error, kind Kind) *Error {
	var fe *Error
	if errors.As(err, &fe) {
		return &Error{Kind: kind, Reason: fe.Reason}
	}
	return &Error{Kind: kind, Reason: err.Error()}
}

// KindOf reports the kind of err, or None if err carries no *Error.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return None
}

// Reason returns the display reason of err, or "" for nil.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Reason
	}
	return err.Error()
}

// Panic aborts with an *Error. Used for broken invariants that a correct
// caller can never trigger.
func Panic(kind Kind, format string, args ...any) {
	panic(New(kind, format, args...))
}
