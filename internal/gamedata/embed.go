// Package gamedata provides the static game catalog: items, housing,
// production buildings and worker tiers. The tables are embedded JSON
// loaded once at startup and never mutated afterwards.
package gamedata

import "embed"

// dataFS embeds all JSON catalog files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
