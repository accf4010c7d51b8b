package gamedata

import (
	"encoding/json"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tradeworld/internal/failure"
)

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog()
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}

	if catalog.ItemCount() != 5 {
		t.Errorf("Expected 5 items, got %d", catalog.ItemCount())
	}

	expectedIDs := map[string]bool{"LOG": false, "GRV": false, "BRD": false, "CHR": false, "DBG": false}
	for _, item := range catalog.Items() {
		if _, ok := expectedIDs[item.ID]; ok {
			expectedIDs[item.ID] = true
		}
	}
	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected item %q not found", id)
		}
	}

	logs, ok := catalog.Item("LOG")
	if !ok {
		t.Fatal("LOG not found by ID")
	}
	if logs.Name != "Logs" || logs.Weight != 1000 || logs.Volume != 1000 {
		t.Errorf("LOG = %+v, want Logs 1000/1000", logs)
	}
}

func TestItemsSortedByID(t *testing.T) {
	items := Default().Items()
	for i := 1; i < len(items); i++ {
		if items[i-1].ID >= items[i].ID {
			t.Fatalf("Items not sorted: %q before %q", items[i-1].ID, items[i].ID)
		}
	}

	// Callers get a copy.
	items[0].Name = "mutated"
	if Default().Items()[0].Name == "mutated" {
		t.Error("Items() exposed internal storage")
	}
}

func TestCatalogTables(t *testing.T) {
	catalog := Default()

	tests := []struct {
		housing      HousingType
		cost         float64
		accommodates uint64
		tier         WorkerTier
		land         uint64
	}{
		{HousingCheap, 500, 10, TierBasic, 10},
		{HousingStandard, 750, 5, TierAdvanced, 20},
		{HousingFancy, 1250, 3, TierExpert, 30},
	}
	for _, tt := range tests {
		h := catalog.Housing(tt.housing)
		if h.Cost != tt.cost || h.Accommodates != tt.accommodates || h.Tier != tt.tier || h.Land != tt.land {
			t.Errorf("Housing(%v) = %+v", tt.housing, h)
		}
		if got := catalog.HousingFor(tt.tier).Type; got != tt.housing {
			t.Errorf("HousingFor(%v) = %v, want %v", tt.tier, got, tt.housing)
		}
	}

	sawmill := catalog.Production(ProductionSawmill)
	if sawmill.Cost != 1000 || sawmill.Land != 45 {
		t.Errorf("Sawmill = %+v", sawmill)
	}
	if len(sawmill.Workers) != 2 ||
		sawmill.Workers[0] != (WorkerRequirement{Tier: TierBasic, Count: 5}) ||
		sawmill.Workers[1] != (WorkerRequirement{Tier: TierAdvanced, Count: 2}) {
		t.Errorf("Sawmill workers = %+v", sawmill.Workers)
	}
	if len(catalog.Production(ProductionWarehouse).Workers) != 0 {
		t.Error("Warehouse should need no workers")
	}

	costs := map[WorkerTier]float64{TierBasic: 100, TierAdvanced: 175, TierExpert: 250}
	for tier, cost := range costs {
		if got := catalog.Worker(tier).Cost; got != cost {
			t.Errorf("Worker(%v).Cost = %v, want %v", tier, got, cost)
		}
	}
}

func TestProductionScaled(t *testing.T) {
	scaled := Default().Production(ProductionWorkshop).Scaled(3)
	want := []WorkerRequirement{{TierAdvanced, 15}, {TierExpert, 9}}
	if len(scaled) != len(want) {
		t.Fatalf("Scaled(3) length = %d, want %d", len(scaled), len(want))
	}
	for i := range want {
		if scaled[i] != want[i] {
			t.Errorf("Scaled(3)[%d] = %+v, want %+v", i, scaled[i], want[i])
		}
	}
	if Default().Production(ProductionWorkshop).Workers[0].Count != 5 {
		t.Error("Scaled mutated the catalog")
	}
}

func TestMustItemPanicsOnUnknownID(t *testing.T) {
	defer func() {
		r := recover()
		fe, ok := r.(*failure.Error)
		if !ok {
			t.Fatalf("Expected *failure.Error panic, got %T", r)
		}
		if fe.Kind != failure.CatalogLookupFailure {
			t.Errorf("Panic kind = %v, want CatalogLookupFailure", fe.Kind)
		}
	}()
	Default().MustItem("NOPE")
}

func TestNewCatalogValidation(t *testing.T) {
	valid, err := LoadCatalog()
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}
	items := valid.Items()
	housing := []HousingDef{*valid.Housing(HousingCheap), *valid.Housing(HousingStandard), *valid.Housing(HousingFancy)}
	var production []ProductionDef
	for _, p := range ProductionTypes() {
		production = append(production, *valid.Production(p))
	}
	var workers []WorkerDef
	for _, w := range WorkerTiers() {
		workers = append(workers, *valid.Worker(w))
	}

	if _, err := NewCatalog(items, housing, production, workers); err != nil {
		t.Fatalf("NewCatalog on loaded tables failed: %v", err)
	}

	dupItems := append(append([]ItemDef{}, items...), items[0])
	if _, err := NewCatalog(dupItems, housing, production, workers); err == nil {
		t.Error("Duplicate item id should be rejected")
	}

	weightless := append([]ItemDef{}, items...)
	weightless[0].Weight = 0
	if _, err := NewCatalog(weightless, housing, production, workers); err == nil {
		t.Error("Zero weight should be rejected")
	}

	if _, err := NewCatalog(items, housing[:2], production, workers); err == nil {
		t.Error("Missing housing type should be rejected")
	}

	doubled := append([]HousingDef{}, housing...)
	doubled[1].Tier = TierBasic
	if _, err := NewCatalog(items, doubled, production, workers); err == nil {
		t.Error("Two housing types for one tier should be rejected")
	}

	if _, err := NewCatalog(items, housing, production[1:], workers); err == nil {
		t.Error("Missing production type should be rejected")
	}

	if _, err := NewCatalog(items, housing, production, workers[:1]); err == nil {
		t.Error("Missing worker tier should be rejected")
	}
}

func TestEnumTextRoundTrip(t *testing.T) {
	var req WorkerRequirement
	if err := json.Unmarshal([]byte(`{"tier":"expert","count":3}`), &req); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if req.Tier != TierExpert {
		t.Errorf("Tier = %v, want Expert", req.Tier)
	}

	if err := json.Unmarshal([]byte(`{"tier":"wizard","count":3}`), &req); err == nil {
		t.Error("Unknown tier should fail to unmarshal")
	}

	for _, p := range ProductionTypes() {
		got, err := ParseProductionType(p.ID())
		if err != nil || got != p {
			t.Errorf("ParseProductionType(%q) = %v, %v", p.ID(), got, err)
		}
	}
	for _, h := range HousingTypes() {
		b, _ := h.MarshalText()
		var got HousingType
		if err := got.UnmarshalText(b); err != nil || got != h {
			t.Errorf("HousingType round trip %v -> %q -> %v (%v)", h, b, got, err)
		}
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, expected string
	}{
		{TierBasic.String(), "Basic"},
		{WorkerTier(99).String(), "Unknown"},
		{HousingFancy.String(), "Fancy"},
		{ProductionWaterPump.String(), "Water Pump"},
		{ProductionWaterPump.ID(), "water_pump"},
		{ProductionType(-1).ID(), "unknown"},
	}
	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("got %q, want %q", tt.got, tt.expected)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#422006", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#GGGGGG", false},
		{"#FFF", false}, // Too short
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}

	c, _ := ParseHexColor("#FF8000")
	if r, g, b := c.RGB(); r != 0xFF || g != 0x80 || b != 0x00 {
		t.Errorf("ParseHexColor(#FF8000) = (%d,%d,%d)", r, g, b)
	}
}

func TestItemStyleFallback(t *testing.T) {
	item := ItemDef{ID: "X", Color: "bad", TextColor: "bad"}
	fg, bg, _ := item.Style().Decompose()
	if bg != tcell.ColorLightBlue || fg != tcell.ColorNavy {
		t.Errorf("Style() fallback = fg %v bg %v", fg, bg)
	}

	logs := Default().MustItem("LOG")
	_, bg, attrs := logs.Style().Decompose()
	want, _ := ParseHexColor(logs.Color)
	if bg != want {
		t.Errorf("LOG background = %v, want %v", bg, want)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("Item style should be bold")
	}
}
