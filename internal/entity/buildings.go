package entity

import (
	"github.com/samdwyer/tradeworld/internal/failure"
	"github.com/samdwyer/tradeworld/internal/gamedata"
)

// Buildings counts the housing and production buildings on a tile.
type Buildings struct {
	housing    [gamedata.NumHousingTypes]uint64
	production [gamedata.NumProductionTypes]uint64
}

// Housing returns the number of owned units of a housing type.
func (b *Buildings) Housing(h gamedata.HousingType) uint64 {
	if !h.Valid() {
		failure.Panic(failure.CatalogLookupFailure, "housing type %d not in catalog", int(h))
	}
	return b.housing[h]
}

// Production returns the number of owned production buildings of a type.
func (b *Buildings) Production(p gamedata.ProductionType) uint64 {
	if !p.Valid() {
		failure.Panic(failure.CatalogLookupFailure, "production type %d not in catalog", int(p))
	}
	return b.production[p]
}

// BuildHousing adds housing units.
func (b *Buildings) BuildHousing(h gamedata.HousingType, amount uint64) {
	b.housing[h] += amount
}

// CanDestroyHousing reports whether DestroyHousing(h, amount) would succeed.
func (b *Buildings) CanDestroyHousing(h gamedata.HousingType, amount uint64) error {
	if owned := b.Housing(h); amount > owned {
		return failure.New(failure.OverRelease,
			"Cannot destroy %d %s houses, only have %d.", amount, h, owned)
	}
	return nil
}

// DestroyHousing removes housing units.
func (b *Buildings) DestroyHousing(h gamedata.HousingType, amount uint64) error {
	if err := b.CanDestroyHousing(h, amount); err != nil {
		return err
	}
	b.housing[h] -= amount
	return nil
}

// BuildProduction adds production buildings.
func (b *Buildings) BuildProduction(p gamedata.ProductionType, amount uint64) {
	b.production[p] += amount
}

// Capacity returns how many workers of a tier the owned housing accommodates.
func (b *Buildings) Capacity(tier gamedata.WorkerTier, catalog *gamedata.Catalog) uint64 {
	home := catalog.HousingFor(tier)
	return b.Housing(home.Type) * home.Accommodates
}
