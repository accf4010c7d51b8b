package economy

import (
	"time"

	"github.com/google/uuid"

	"github.com/samdwyer/tradeworld/internal/gamedata"
)

// Recipe describes a batch a production building could run.
type Recipe struct {
	ItemID        string
	BatchSize     uint64
	BatchDuration time.Duration
	Inputs        []gamedata.ItemStack
}

// ProductionSlot is the work queue of one production building. Slots are
// created idle when the building is built; nothing schedules them yet.
type ProductionSlot struct {
	BuildingID     string
	Type           gamedata.ProductionType
	Recipe         *Recipe
	StartedAt      *time.Time
	NextCompletion *time.Time
}

// Idle reports whether the slot has no recipe running.
func (s *ProductionSlot) Idle() bool {
	return s.Recipe == nil
}

func newSlots(p gamedata.ProductionType, amount uint64) []ProductionSlot {
	slots := make([]ProductionSlot, 0, amount)
	for i := uint64(0); i < amount; i++ {
		slots = append(slots, ProductionSlot{BuildingID: uuid.NewString(), Type: p})
	}
	return slots
}
