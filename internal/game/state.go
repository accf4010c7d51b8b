// Package game provides the main game loop and the player session.
package game

// Mode is the screen the player is looking at.
type Mode int

const (
	// ModeOverview shows the map and the selected tile's ledgers.
	ModeOverview Mode = iota
	// ModeTransfer shows two inventories side by side for drag and drop.
	ModeTransfer
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeOverview:
		return "overview"
	case ModeTransfer:
		return "transfer"
	default:
		return "unknown"
	}
}

// Action is a player command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleMode
	ActionBuyTile
	ActionCycleAmount
	ActionCyclePair
	ActionBuildCheap
	ActionBuildStandard
	ActionBuildFancy
	ActionDestroyCheap
	ActionDestroyStandard
	ActionDestroyFancy
	ActionHireBasic
	ActionHireAdvanced
	ActionHireExpert
	ActionFireBasic
	ActionFireAdvanced
	ActionFireExpert
	ActionBuildWarehouse
	ActionBuildSawmill
	ActionBuildWorkshop
	ActionBuildWaterPump
)

// String returns the action name used in logs.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

var actionNames = map[Action]string{
	ActionNone:            "none",
	ActionQuit:            "quit",
	ActionToggleMode:      "toggle_mode",
	ActionBuyTile:         "buy_tile",
	ActionCycleAmount:     "cycle_amount",
	ActionCyclePair:       "cycle_pair",
	ActionBuildCheap:      "build_cheap",
	ActionBuildStandard:   "build_standard",
	ActionBuildFancy:      "build_fancy",
	ActionDestroyCheap:    "destroy_cheap",
	ActionDestroyStandard: "destroy_standard",
	ActionDestroyFancy:    "destroy_fancy",
	ActionHireBasic:       "hire_basic",
	ActionHireAdvanced:    "hire_advanced",
	ActionHireExpert:      "hire_expert",
	ActionFireBasic:       "fire_basic",
	ActionFireAdvanced:    "fire_advanced",
	ActionFireExpert:      "fire_expert",
	ActionBuildWarehouse:  "build_warehouse",
	ActionBuildSawmill:    "build_sawmill",
	ActionBuildWorkshop:   "build_workshop",
	ActionBuildWaterPump:  "build_water_pump",
}

// Keys maps character keys to actions.
var Keys = map[rune]Action{
	'q': ActionQuit,
	'Q': ActionQuit,
	'b': ActionBuyTile,
	'x': ActionCycleAmount,
	'p': ActionCyclePair,
	'1': ActionBuildCheap,
	'2': ActionBuildStandard,
	'3': ActionBuildFancy,
	'!': ActionDestroyCheap,
	'@': ActionDestroyStandard,
	'#': ActionDestroyFancy,
	'h': ActionHireBasic,
	'j': ActionHireAdvanced,
	'k': ActionHireExpert,
	'H': ActionFireBasic,
	'J': ActionFireAdvanced,
	'K': ActionFireExpert,
	'u': ActionBuildWarehouse,
	's': ActionBuildSawmill,
	'w': ActionBuildWorkshop,
	'm': ActionBuildWaterPump,
}

// Amounts are the batch sizes ActionCycleAmount steps through.
var Amounts = []uint64{1, 5, 10}
