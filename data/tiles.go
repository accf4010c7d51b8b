package data

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tradeworld/internal/gamedata"
)

// TileTemplate describes a kind of terrain a map tile can be rolled from.
type TileTemplate struct {
	ID          string   `json:"id"`          // Unique identifier (e.g., "forest")
	Name        string   `json:"name"`        // Display name
	Description string   `json:"description"` // Flavour text shown in the tile panel
	Resources   []string `json:"resources"`   // Resource tags (e.g., "wood", "water")
	Glyph       string   `json:"glyph"`       // Single character for the map
	Color       string   `json:"color"`       // Hex color code
	Price       float64  `json:"price"`       // Purchase price
	SpawnWeight int      `json:"spawnWeight"` // Relative frequency (higher = more common)
}

// GlyphRune returns the glyph as a rune for rendering.
func (t *TileTemplate) GlyphRune() rune {
	if len(t.Glyph) == 0 {
		return '?'
	}
	return rune(t.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (t *TileTemplate) TCellColor() tcell.Color {
	color, err := gamedata.ParseHexColor(t.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Tiles []TileTemplate `json:"tiles"`
}

// LoadTileTemplates loads terrain templates from the embedded tiles.json file.
func LoadTileTemplates() ([]TileTemplate, error) {
	file, err := Load[TilesFile]("tiles.json")
	if err != nil {
		return nil, err
	}
	if len(file.Tiles) == 0 {
		return nil, fmt.Errorf("tiles.json: no templates")
	}
	for _, t := range file.Tiles {
		if t.SpawnWeight <= 0 {
			return nil, fmt.Errorf("tiles.json: template %q has spawn weight %d", t.ID, t.SpawnWeight)
		}
		if t.Price < 0 {
			return nil, fmt.Errorf("tiles.json: template %q has negative price", t.ID)
		}
	}
	return file.Tiles, nil
}

// MustLoadTileTemplates loads terrain templates, panicking on error.
func MustLoadTileTemplates() []TileTemplate {
	tiles, err := LoadTileTemplates()
	if err != nil {
		panic(err)
	}
	return tiles
}
