package gamedata

import "fmt"

// HousingType enumerates the housing buildings.
type HousingType int

const (
	HousingCheap HousingType = iota
	HousingStandard
	HousingFancy

	// NumHousingTypes is the number of housing types.
	NumHousingTypes = 3
)

// HousingTypes returns every housing type in display order.
func HousingTypes() []HousingType {
	return []HousingType{HousingCheap, HousingStandard, HousingFancy}
}

// String returns the housing type name.
func (h HousingType) String() string {
	switch h {
	case HousingCheap:
		return "Cheap"
	case HousingStandard:
		return "Standard"
	case HousingFancy:
		return "Fancy"
	default:
		return "Unknown"
	}
}

// ID returns the identifier used in housing.json.
func (h HousingType) ID() string {
	switch h {
	case HousingCheap:
		return "cheap"
	case HousingStandard:
		return "standard"
	case HousingFancy:
		return "fancy"
	default:
		return "unknown"
	}
}

// Valid reports whether h is one of the declared types.
func (h HousingType) Valid() bool {
	return h >= HousingCheap && h <= HousingFancy
}

// ParseHousingType resolves a catalog identifier.
func ParseHousingType(id string) (HousingType, error) {
	for _, h := range HousingTypes() {
		if h.ID() == id {
			return h, nil
		}
	}
	return 0, fmt.Errorf("unknown housing type %q", id)
}

// MarshalText implements encoding.TextMarshaler.
func (h HousingType) MarshalText() ([]byte, error) {
	return []byte(h.ID()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *HousingType) UnmarshalText(b []byte) error {
	parsed, err := ParseHousingType(string(b))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// HousingDef defines a housing building loaded from JSON.
type HousingDef struct {
	Type         HousingType `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Cost         float64     `json:"cost"`
	Accommodates uint64      `json:"accommodates"` // Workers housed per unit
	Tier         WorkerTier  `json:"tier"`         // Tier the housing is built for
	Land         uint64      `json:"land"`         // Land used per unit
}
