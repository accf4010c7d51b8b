package gamedata

import "fmt"

// WorkerTier is a worker skill class.
type WorkerTier int

const (
	TierBasic WorkerTier = iota
	TierAdvanced
	TierExpert

	// NumWorkerTiers is the number of worker tiers.
	NumWorkerTiers = 3
)

// WorkerTiers returns every tier in display order.
func WorkerTiers() []WorkerTier {
	return []WorkerTier{TierBasic, TierAdvanced, TierExpert}
}

// String returns the tier name.
func (t WorkerTier) String() string {
	switch t {
	case TierBasic:
		return "Basic"
	case TierAdvanced:
		return "Advanced"
	case TierExpert:
		return "Expert"
	default:
		return "Unknown"
	}
}

// ID returns the tier identifier used in the catalog files.
func (t WorkerTier) ID() string {
	switch t {
	case TierBasic:
		return "basic"
	case TierAdvanced:
		return "advanced"
	case TierExpert:
		return "expert"
	default:
		return "unknown"
	}
}

// Valid reports whether t is one of the declared tiers.
func (t WorkerTier) Valid() bool {
	return t >= TierBasic && t <= TierExpert
}

// ParseWorkerTier resolves a catalog identifier.
func ParseWorkerTier(id string) (WorkerTier, error) {
	for _, t := range WorkerTiers() {
		if t.ID() == id {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown worker tier %q", id)
}

// MarshalText implements encoding.TextMarshaler.
func (t WorkerTier) MarshalText() ([]byte, error) {
	return []byte(t.ID()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *WorkerTier) UnmarshalText(b []byte) error {
	parsed, err := ParseWorkerTier(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// WorkerDef describes the hiring terms of a tier.
type WorkerDef struct {
	Tier        WorkerTier `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Cost        float64    `json:"cost"` // Price of one hire
}
