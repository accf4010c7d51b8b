package world

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tradeworld/data"
	"github.com/samdwyer/tradeworld/internal/economy"
	"github.com/samdwyer/tradeworld/internal/gamedata"
	"github.com/samdwyer/tradeworld/internal/telemetry"
)

const (
	// Default map dimensions
	DefaultRows = 4
	DefaultCols = 6

	DefaultLand            = 500
	DefaultInventoryWeight = 500_000
	DefaultInventoryVolume = 500_000
)

// StarterStock is what every tile's inventory holds when the map is made.
var StarterStock = []gamedata.ItemStack{
	{ItemID: "GRV", Quantity: 100},
	{ItemID: "BRD", Quantity: 120},
	{ItemID: "LOG", Quantity: 12},
}

// Config sizes the generated map.
type Config struct {
	Rows, Cols      int
	Land            uint64
	InventoryWeight uint64
	InventoryVolume uint64
}

// DefaultConfig returns the standard map size.
func DefaultConfig() Config {
	return Config{
		Rows:            DefaultRows,
		Cols:            DefaultCols,
		Land:            DefaultLand,
		InventoryWeight: DefaultInventoryWeight,
		InventoryVolume: DefaultInventoryVolume,
	}
}

// Map is the grid of tiles for one session.
type Map struct {
	Rows, Cols int
	tiles      [][]*economy.Tile
	terrain    [][]*data.TileTemplate
}

// Generate rolls a terrain template for every cell and creates its tile.
// The same rng seed always yields the same map.
func Generate(ctx context.Context, cfg Config, catalog *gamedata.Catalog, templates []data.TileTemplate, rng *rand.Rand) (*Map, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.generate")
	defer span.End()

	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return nil, fmt.Errorf("map size %dx%d must be positive", cfg.Rows, cfg.Cols)
	}
	if len(templates) == 0 {
		return nil, fmt.Errorf("no tile templates")
	}

	startTime := time.Now()
	totalWeight := 0
	for _, t := range templates {
		totalWeight += t.SpawnWeight
	}

	m := &Map{
		Rows:    cfg.Rows,
		Cols:    cfg.Cols,
		tiles:   make([][]*economy.Tile, cfg.Rows),
		terrain: make([][]*data.TileTemplate, cfg.Rows),
	}
	for r := 0; r < cfg.Rows; r++ {
		m.tiles[r] = make([]*economy.Tile, cfg.Cols)
		m.terrain[r] = make([]*data.TileTemplate, cfg.Cols)
		for c := 0; c < cfg.Cols; c++ {
			tmpl := pickTemplate(templates, totalWeight, rng)
			pos := Coord{Row: r, Col: c}
			m.terrain[r][c] = tmpl
			m.tiles[r][c] = economy.NewTile(economy.TileSpec{
				ID:              pos.ID(),
				Description:     tmpl.Description,
				Resources:       tmpl.Resources,
				Price:           tmpl.Price,
				Row:             r,
				Col:             c,
				Land:            cfg.Land,
				InventoryWeight: cfg.InventoryWeight,
				InventoryVolume: cfg.InventoryVolume,
				Stock:           StarterStock,
			}, catalog)
		}
	}

	span.SetAttributes(
		attribute.Int("map.rows", cfg.Rows),
		attribute.Int("map.cols", cfg.Cols),
		attribute.Int("map.templates", len(templates)),
		attribute.Int64("map.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return m, nil
}

// pickTemplate makes a weighted random choice.
func pickTemplate(templates []data.TileTemplate, totalWeight int, rng *rand.Rand) *data.TileTemplate {
	roll := rng.Intn(totalWeight)
	for i := range templates {
		roll -= templates[i].SpawnWeight
		if roll < 0 {
			return &templates[i]
		}
	}
	return &templates[len(templates)-1]
}

// InBounds reports whether pos lies on the map.
func (m *Map) InBounds(pos Coord) bool {
	return pos.Row >= 0 && pos.Row < m.Rows && pos.Col >= 0 && pos.Col < m.Cols
}

// At returns the tile at pos, or nil off the map.
func (m *Map) At(pos Coord) *economy.Tile {
	if !m.InBounds(pos) {
		return nil
	}
	return m.tiles[pos.Row][pos.Col]
}

// Terrain returns the template the tile at pos was rolled from, or nil.
func (m *Map) Terrain(pos Coord) *data.TileTemplate {
	if !m.InBounds(pos) {
		return nil
	}
	return m.terrain[pos.Row][pos.Col]
}

// Tiles returns every tile in row-major order.
func (m *Map) Tiles() []*economy.Tile {
	out := make([]*economy.Tile, 0, m.Rows*m.Cols)
	for _, row := range m.tiles {
		out = append(out, row...)
	}
	return out
}
