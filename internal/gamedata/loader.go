package gamedata

import (
	"encoding/json"
	"fmt"
)

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// HousingFile represents the structure of housing.json.
type HousingFile struct {
	Housing []HousingDef `json:"housing"`
}

// ProductionFile represents the structure of production.json.
type ProductionFile struct {
	Production []ProductionDef `json:"production"`
}

// WorkersFile represents the structure of workers.json.
type WorkersFile struct {
	Workers []WorkerDef `json:"workers"`
}

// LoadCatalog reads every embedded table and builds a validated Catalog.
func LoadCatalog() (*Catalog, error) {
	items, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	housing, err := Load[HousingFile]("housing.json")
	if err != nil {
		return nil, err
	}
	production, err := Load[ProductionFile]("production.json")
	if err != nil {
		return nil, err
	}
	workers, err := Load[WorkersFile]("workers.json")
	if err != nil {
		return nil, err
	}
	return NewCatalog(items.Items, housing.Housing, production.Production, workers.Workers)
}

// MustLoadCatalog loads the catalog, panicking on error.
// Use this for data that must be present for the game to function.
func MustLoadCatalog() *Catalog {
	catalog, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}
