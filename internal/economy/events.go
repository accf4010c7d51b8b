package economy

// EventKind identifies what changed.
type EventKind int

const (
	EventTileBought EventKind = iota
	EventWorkersHired
	EventWorkersFired
	EventHousingBuilt
	EventHousingDestroyed
	EventProductionBuilt
	EventInventoryChanged
)

// String returns a human-readable event name.
func (k EventKind) String() string {
	switch k {
	case EventTileBought:
		return "tile_bought"
	case EventWorkersHired:
		return "workers_hired"
	case EventWorkersFired:
		return "workers_fired"
	case EventHousingBuilt:
		return "housing_built"
	case EventHousingDestroyed:
		return "housing_destroyed"
	case EventProductionBuilt:
		return "production_built"
	case EventInventoryChanged:
		return "inventory_changed"
	default:
		return "unknown"
	}
}

// Event describes one committed state change.
type Event struct {
	Kind    EventKind
	TileID  string
	Subject string // Building, tier or item the change applies to
	Amount  uint64
}

// Observer receives events after a mutation has been committed.
// Observers run while the game state is locked and must not call back into it.
type Observer interface {
	OnEvent(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// OnEvent calls f(e).
func (f ObserverFunc) OnEvent(e Event) { f(e) }
