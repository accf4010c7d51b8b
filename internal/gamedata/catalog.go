package gamedata

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/samdwyer/tradeworld/internal/failure"
)

// Catalog is the immutable set of item, housing, production and worker
// definitions. It is safe to share between goroutines.
type Catalog struct {
	items      map[string]*ItemDef
	all        []ItemDef
	housing    [NumHousingTypes]HousingDef
	production [NumProductionTypes]ProductionDef
	workers    [NumWorkerTiers]WorkerDef
	homes      [NumWorkerTiers]HousingType
}

// NewCatalog validates the tables and indexes them. Every enumerated housing
// type, production type and worker tier must be defined exactly once, and
// every worker tier must be housed by exactly one housing type.
func NewCatalog(items []ItemDef, housing []HousingDef, production []ProductionDef, workers []WorkerDef) (*Catalog, error) {
	if len(items) == 0 {
		return nil, errors.New("no items defined")
	}

	c := &Catalog{
		items: make(map[string]*ItemDef, len(items)),
		all:   make([]ItemDef, len(items)),
	}
	copy(c.all, items)
	sort.Slice(c.all, func(i, j int) bool { return c.all[i].ID < c.all[j].ID })

	for i := range c.all {
		item := &c.all[i]
		if item.ID == "" {
			return nil, errors.New("item with empty id")
		}
		if _, dup := c.items[item.ID]; dup {
			return nil, fmt.Errorf("duplicate item id %q", item.ID)
		}
		if item.Weight == 0 || item.Volume == 0 {
			return nil, fmt.Errorf("item %q must have positive weight and volume", item.ID)
		}
		c.items[item.ID] = item
	}

	var seenWorkers [NumWorkerTiers]bool
	for _, w := range workers {
		if !w.Tier.Valid() {
			return nil, fmt.Errorf("invalid worker tier %d", int(w.Tier))
		}
		if seenWorkers[w.Tier] {
			return nil, fmt.Errorf("duplicate worker tier %q", w.Tier.ID())
		}
		seenWorkers[w.Tier] = true
		c.workers[w.Tier] = w
	}
	for _, tier := range WorkerTiers() {
		if !seenWorkers[tier] {
			return nil, fmt.Errorf("worker tier %q not defined", tier.ID())
		}
	}

	var seenHousing [NumHousingTypes]bool
	var housed [NumWorkerTiers]bool
	for _, h := range housing {
		if !h.Type.Valid() || !h.Tier.Valid() {
			return nil, fmt.Errorf("invalid housing definition %q", h.Name)
		}
		if seenHousing[h.Type] {
			return nil, fmt.Errorf("duplicate housing type %q", h.Type.ID())
		}
		if housed[h.Tier] {
			return nil, fmt.Errorf("worker tier %q housed by more than one housing type", h.Tier.ID())
		}
		seenHousing[h.Type] = true
		housed[h.Tier] = true
		c.housing[h.Type] = h
		c.homes[h.Tier] = h.Type
	}
	for _, h := range HousingTypes() {
		if !seenHousing[h] {
			return nil, fmt.Errorf("housing type %q not defined", h.ID())
		}
	}
	for _, tier := range WorkerTiers() {
		if !housed[tier] {
			return nil, fmt.Errorf("worker tier %q has no housing", tier.ID())
		}
	}

	var seenProduction [NumProductionTypes]bool
	for _, p := range production {
		if !p.Type.Valid() {
			return nil, fmt.Errorf("invalid production type %d", int(p.Type))
		}
		for _, req := range p.Workers {
			if !req.Tier.Valid() {
				return nil, fmt.Errorf("production %q requires unknown worker tier", p.Type.ID())
			}
		}
		if seenProduction[p.Type] {
			return nil, fmt.Errorf("duplicate production type %q", p.Type.ID())
		}
		seenProduction[p.Type] = true
		c.production[p.Type] = p
	}
	for _, p := range ProductionTypes() {
		if !seenProduction[p] {
			return nil, fmt.Errorf("production type %q not defined", p.ID())
		}
	}

	return c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog built from the embedded tables.
// It is loaded on first use and shared for the life of the process.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = MustLoadCatalog()
	})
	return defaultCatalog
}

// Item returns the item with the given id.
func (c *Catalog) Item(id string) (*ItemDef, bool) {
	item, ok := c.items[id]
	return item, ok
}

// MustItem returns the item with the given id. An unknown id is a
// programming error and panics with a CatalogLookupFailure.
func (c *Catalog) MustItem(id string) *ItemDef {
	item, ok := c.items[id]
	if !ok {
		failure.Panic(failure.CatalogLookupFailure, "item %q not in catalog", id)
	}
	return item
}

// Items returns all item definitions sorted by id.
func (c *Catalog) Items() []ItemDef {
	out := make([]ItemDef, len(c.all))
	copy(out, c.all)
	return out
}

// ItemCount returns the number of items in the catalog.
func (c *Catalog) ItemCount() int {
	return len(c.all)
}

// Housing returns the definition of a housing type.
func (c *Catalog) Housing(h HousingType) *HousingDef {
	if !h.Valid() {
		failure.Panic(failure.CatalogLookupFailure, "housing type %d not in catalog", int(h))
	}
	return &c.housing[h]
}

// HousingFor returns the housing that accommodates workers of the tier.
func (c *Catalog) HousingFor(t WorkerTier) *HousingDef {
	if !t.Valid() {
		failure.Panic(failure.CatalogLookupFailure, "worker tier %d not in catalog", int(t))
	}
	return &c.housing[c.homes[t]]
}

// Production returns the definition of a production building type.
func (c *Catalog) Production(p ProductionType) *ProductionDef {
	if !p.Valid() {
		failure.Panic(failure.CatalogLookupFailure, "production type %d not in catalog", int(p))
	}
	return &c.production[p]
}

// Worker returns the hiring terms of a tier.
func (c *Catalog) Worker(t WorkerTier) *WorkerDef {
	if !t.Valid() {
		failure.Panic(failure.CatalogLookupFailure, "worker tier %d not in catalog", int(t))
	}
	return &c.workers[t]
}
