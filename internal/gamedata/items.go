package gamedata

// ItemDef defines a tradeable item loaded from JSON.
// Weight is in kilograms and Volume in litres per unit.
type ItemDef struct {
	ID        string `json:"id"`        // Short unique code (e.g., "LOG")
	Name      string `json:"name"`      // Display name (e.g., "Logs")
	Category  string `json:"category"`  // Grouping (e.g., "Raw Materials")
	Weight    uint64 `json:"weight"`    // Per-unit weight
	Volume    uint64 `json:"volume"`    // Per-unit volume
	Color     string `json:"color"`     // Hex background colour
	TextColor string `json:"textColor"` // Hex foreground colour
}

// ItemStack is a quantity of one item.
type ItemStack struct {
	ItemID   string `json:"item"`
	Quantity uint64 `json:"quantity"`
}
