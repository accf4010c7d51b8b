// Package data provides embedded world data and utilities for loading it.
package data

import (
	"embed"
	"encoding/json"
	"fmt"
)

// dataFS embeds all JSON files from the data directory at build time.
//
//go:embed *.json
var dataFS embed.FS

// Load reads and decodes one embedded JSON file.
func Load[T any](name string) (T, error) {
	var out T
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return out, fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("parse %s: %w", name, err)
	}
	return out, nil
}
