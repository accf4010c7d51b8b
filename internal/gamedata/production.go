package gamedata

import "fmt"

// ProductionType enumerates the production buildings.
type ProductionType int

const (
	ProductionWarehouse ProductionType = iota
	ProductionSawmill
	ProductionWorkshop
	ProductionWaterPump

	// NumProductionTypes is the number of production building types.
	NumProductionTypes = 4
)

// ProductionTypes returns every production type in display order.
func ProductionTypes() []ProductionType {
	return []ProductionType{ProductionWarehouse, ProductionSawmill, ProductionWorkshop, ProductionWaterPump}
}

// String returns the building name.
func (p ProductionType) String() string {
	switch p {
	case ProductionWarehouse:
		return "Warehouse"
	case ProductionSawmill:
		return "Sawmill"
	case ProductionWorkshop:
		return "Workshop"
	case ProductionWaterPump:
		return "Water Pump"
	default:
		return "Unknown"
	}
}

// ID returns the identifier used in production.json.
func (p ProductionType) ID() string {
	switch p {
	case ProductionWarehouse:
		return "warehouse"
	case ProductionSawmill:
		return "sawmill"
	case ProductionWorkshop:
		return "workshop"
	case ProductionWaterPump:
		return "water_pump"
	default:
		return "unknown"
	}
}

// Valid reports whether p is one of the declared types.
func (p ProductionType) Valid() bool {
	return p >= ProductionWarehouse && p <= ProductionWaterPump
}

// ParseProductionType resolves a catalog identifier.
func ParseProductionType(id string) (ProductionType, error) {
	for _, p := range ProductionTypes() {
		if p.ID() == id {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown production type %q", id)
}

// MarshalText implements encoding.TextMarshaler.
func (p ProductionType) MarshalText() ([]byte, error) {
	return []byte(p.ID()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *ProductionType) UnmarshalText(b []byte) error {
	parsed, err := ParseProductionType(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// WorkerRequirement is a number of workers of one tier a building needs.
type WorkerRequirement struct {
	Tier  WorkerTier `json:"tier"`
	Count uint64     `json:"count"`
}

// ProductionDef defines a production building loaded from JSON.
type ProductionDef struct {
	Type        ProductionType      `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Cost        float64             `json:"cost"`
	Workers     []WorkerRequirement `json:"workers"`
	Land        uint64              `json:"land"`
}

// Scaled returns the worker requirements for amount buildings.
func (p *ProductionDef) Scaled(amount uint64) []WorkerRequirement {
	out := make([]WorkerRequirement, len(p.Workers))
	for i, req := range p.Workers {
		out[i] = WorkerRequirement{Tier: req.Tier, Count: req.Count * amount}
	}
	return out
}
