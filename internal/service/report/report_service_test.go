package report

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/cleanocean/coa-backend/internal/domain"
	"github.com/cleanocean/coa-backend/internal/pkg/store"
)

type mockSummaryStore struct {
	groups    []domain.ItemQuantity
	locations map[string][]string
	triples   []domain.LocationTriple
	dateRange domain.DateRange
	values    []string

	gotItemOpts     store.ItemQuantitiesOpts
	gotTaxonomyOpts store.MaterialTaxonomyOpts
	gotRangeColumn  string
	gotRangeName    string
	gotItemColumn   string
}

func (m *mockSummaryStore) SelectItemQuantities(_ context.Context, opts store.ItemQuantitiesOpts) ([]domain.ItemQuantity, error) {
	m.gotItemOpts = opts
	return m.groups, nil
}

func (m *mockSummaryStore) SelectMaterialTaxonomy(_ context.Context, opts store.MaterialTaxonomyOpts) ([]domain.ItemQuantity, error) {
	m.gotTaxonomyOpts = opts
	return m.groups, nil
}

func (m *mockSummaryStore) SelectDistinctLocations(_ context.Context, column string) ([]string, error) {
	return m.locations[column], nil
}

func (m *mockSummaryStore) SelectLocationTriples(context.Context) ([]domain.LocationTriple, error) {
	return m.triples, nil
}

func (m *mockSummaryStore) SelectDateRange(_ context.Context, column, name string) (*domain.DateRange, error) {
	m.gotRangeColumn, m.gotRangeName = column, name
	return &m.dateRange, nil
}

func (m *mockSummaryStore) SelectDistinctItemValues(_ context.Context, column string) ([]string, error) {
	m.gotItemColumn = column
	return m.values, nil
}

func quantities(groups ...domain.ItemQuantity) []domain.ItemQuantity {
	return groups
}

func TestDirtyDozenRanking(t *testing.T) {
	mock := &mockSummaryStore{groups: quantities(
		domain.ItemQuantity{ItemName: "Straws", Category: "Food related", Material: "Plastic", QuantitySum: 50},
		domain.ItemQuantity{ItemName: "Bottle caps", Category: "Caps", Material: "Plastic", QuantitySum: 100},
		domain.ItemQuantity{ItemName: "Glass shards", Category: "Fragments", Material: "Glass", QuantitySum: 30},
	)}
	svc := NewService(mock)

	entries, err := svc.DirtyDozen(context.Background(), domain.CategorySite, "Union Beach", date(2016, 1, 1), date(2020, 1, 1), 2)
	if err != nil {
		t.Fatalf("DirtyDozen: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ItemName != "Bottle caps" || entries[0].Count != 100 {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].ItemName != "Straws" || entries[1].Count != 50 {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}

	// Percentages are against the full total (180), not just the top 2.
	if entries[0].Percentage != 55.56 {
		t.Errorf("expected 55.56, got %v", entries[0].Percentage)
	}
	if entries[1].Percentage != 27.78 {
		t.Errorf("expected 27.78, got %v", entries[1].Percentage)
	}
}

func TestDirtyDozenTieBreak(t *testing.T) {
	mock := &mockSummaryStore{groups: quantities(
		domain.ItemQuantity{ItemName: "Zip ties", QuantitySum: 10},
		domain.ItemQuantity{ItemName: "Balloons", QuantitySum: 10},
		domain.ItemQuantity{ItemName: "Cans", QuantitySum: 10},
	)}
	svc := NewService(mock)

	entries, err := svc.DirtyDozen(context.Background(), domain.CategorySite, "x", date(2016, 1, 1), date(2020, 1, 1), 0)
	if err != nil {
		t.Fatalf("DirtyDozen: %v", err)
	}

	want := []string{"Balloons", "Cans", "Zip ties"}
	for i, name := range want {
		if entries[i].ItemName != name {
			t.Errorf("entry %d: expected %q, got %q", i, name, entries[i].ItemName)
		}
	}
}

func TestDirtyDozenDefaultLimit(t *testing.T) {
	var groups []domain.ItemQuantity
	for i := int64(0); i < 20; i++ {
		groups = append(groups, domain.ItemQuantity{ItemName: string(rune('A' + i)), QuantitySum: i + 1})
	}
	mock := &mockSummaryStore{groups: groups}
	svc := NewService(mock)

	entries, err := svc.DirtyDozen(context.Background(), domain.CategorySite, "x", date(2016, 1, 1), date(2020, 1, 1), 0)
	if err != nil {
		t.Fatalf("DirtyDozen: %v", err)
	}

	if len(entries) != DefaultDirtyDozenLimit {
		t.Fatalf("expected %d entries, got %d", DefaultDirtyDozenLimit, len(entries))
	}
}

func TestDirtyDozenZeroTotal(t *testing.T) {
	mock := &mockSummaryStore{groups: quantities(
		domain.ItemQuantity{ItemName: "Straws", QuantitySum: 0},
	)}
	svc := NewService(mock)

	entries, err := svc.DirtyDozen(context.Background(), domain.CategorySite, "x", date(2016, 1, 1), date(2020, 1, 1), 0)
	if err != nil {
		t.Fatalf("DirtyDozen: %v", err)
	}

	if entries[0].Percentage != 0 {
		t.Errorf("expected 0 percentage on zero total, got %v", entries[0].Percentage)
	}
}

func TestGroupedQuantitiesFilterResolution(t *testing.T) {
	mock := &mockSummaryStore{}
	svc := NewService(mock)

	start, end := date(2016, 1, 1), date(2020, 6, 15)
	if _, err := svc.GroupedQuantities(context.Background(), domain.CategoryTown, "Keansburg", start, end); err != nil {
		t.Fatalf("GroupedQuantities: %v", err)
	}

	want := store.ItemQuantitiesOpts{
		LocationColumn: "town",
		LocationName:   "Keansburg",
		StartDate:      start,
		EndDate:        end,
	}
	if mock.gotItemOpts != want {
		t.Errorf("expected opts %+v, got %+v", want, mock.gotItemOpts)
	}
}

func TestBreakdownTree(t *testing.T) {
	mock := &mockSummaryStore{groups: quantities(
		domain.ItemQuantity{Material: "Plastic", Category: "Caps", ItemName: "Bottle caps", QuantitySum: 40},
		domain.ItemQuantity{Material: "Plastic", Category: "Caps", ItemName: "Lids", QuantitySum: 10},
		domain.ItemQuantity{Material: "Plastic", Category: "Food related", ItemName: "Straws", QuantitySum: 25},
		domain.ItemQuantity{Material: "Glass", Category: "Fragments", ItemName: "Glass shards", QuantitySum: 5},
	)}
	svc := NewService(mock)

	tree, err := svc.Breakdown(context.Background(), domain.CategorySite, "x", date(2016, 1, 1), date(2020, 1, 1))
	if err != nil {
		t.Fatalf("Breakdown: %v", err)
	}

	if tree.Name != "Debris" {
		t.Fatalf("expected root Debris, got %q", tree.Name)
	}
	if len(tree.Children) != 2 {
		t.Fatalf("expected 2 materials, got %d", len(tree.Children))
	}

	plastic := tree.Children[0]
	if plastic.Name != "Plastic" || len(plastic.Children) != 2 {
		t.Fatalf("unexpected first material: %+v", plastic)
	}

	caps := plastic.Children[0]
	if caps.Name != "Caps" || len(caps.Children) != 2 {
		t.Fatalf("unexpected first category: %+v", caps)
	}
	if caps.Children[0].Name != "Bottle caps" || *caps.Children[0].Count != 40 {
		t.Errorf("unexpected leaf: %+v", caps.Children[0])
	}

	glass := tree.Children[1]
	if glass.Name != "Glass" || glass.Children[0].Children[0].Name != "Glass shards" {
		t.Errorf("unexpected second material: %+v", glass)
	}

	// Leaves carry counts, inner nodes never do.
	if plastic.Count != nil || caps.Count != nil {
		t.Error("inner nodes must not carry counts")
	}

	// Sum over leaves equals the sum over input groups.
	var leafSum int64
	var walk func(n *domain.BreakdownNode)
	walk = func(n *domain.BreakdownNode) {
		if n.Count != nil {
			leafSum += *n.Count
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(tree)
	if leafSum != 80 {
		t.Errorf("expected leaf sum 80, got %d", leafSum)
	}
}

func TestBuildBreakdownTreeIdempotent(t *testing.T) {
	groups := quantities(
		domain.ItemQuantity{Material: "Plastic", Category: "Caps", ItemName: "Bottle caps", QuantitySum: 40},
		domain.ItemQuantity{Material: "Glass", Category: "Fragments", ItemName: "Glass shards", QuantitySum: 5},
	)

	first := BuildBreakdownTree(groups)
	second := BuildBreakdownTree(groups)
	if !reflect.DeepEqual(first, second) {
		t.Error("same input must produce the same tree")
	}
}

func TestBuildMaterialTaxonomy(t *testing.T) {
	groups := quantities(
		domain.ItemQuantity{Material: "Plastic", Category: "Caps", ItemName: "Bottle caps"},
		domain.ItemQuantity{Material: "Plastic", Category: "Caps", ItemName: "Bottle caps"},
		domain.ItemQuantity{Material: "Plastic", Category: "Food related", ItemName: ""},
		domain.ItemQuantity{Material: "Glass", Category: "Fragments", ItemName: "Glass shards"},
	)

	materials := BuildMaterialTaxonomy(groups)

	if len(materials) != 2 {
		t.Fatalf("expected 2 materials, got %d", len(materials))
	}
	if materials[0].Material != "Plastic" || materials[1].Material != "Glass" {
		t.Errorf("expected encounter order Plastic, Glass; got %q, %q", materials[0].Material, materials[1].Material)
	}

	caps := materials[0].Categories[0]
	if len(caps.ItemNames) != 1 {
		t.Errorf("expected duplicate item collapsed, got %+v", caps.ItemNames)
	}

	// A nameless item shows under its category name.
	food := materials[0].Categories[1]
	if food.ItemNames[0].ItemName != "Food related" {
		t.Errorf("expected category fallback, got %q", food.ItemNames[0].ItemName)
	}
}

func TestLocations(t *testing.T) {
	mock := &mockSummaryStore{locations: map[string][]string{
		"site_name": {"Sandy Hook", "Union Beach"},
		"town":      {"Keansburg"},
	}}
	svc := NewService(mock)

	locations, err := svc.Locations(context.Background())
	if err != nil {
		t.Fatalf("Locations: %v", err)
	}

	if len(locations) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(locations))
	}

	want := []domain.LocationGroup{
		{LocationCategory: "site", LocationLabel: "Site", LocationNames: []string{"Sandy Hook", "Union Beach"}},
		{LocationCategory: "town", LocationLabel: "Town", LocationNames: []string{"Keansburg"}},
		{LocationCategory: "county", LocationLabel: "County", LocationNames: []string{}},
	}
	if !reflect.DeepEqual(locations, want) {
		t.Errorf("expected %+v, got %+v", want, locations)
	}
}

func TestLocationsHierarchy(t *testing.T) {
	mock := &mockSummaryStore{triples: []domain.LocationTriple{
		{County: "Monmouth", Town: "Keansburg", SiteName: "Beachway"},
		{County: "Monmouth", Town: "Union Beach", SiteName: "Front St"},
		{County: "Monmouth", Town: "Union Beach", SiteName: "Union Beach"},
		{County: "Ocean", Town: "Seaside", SiteName: "Boardwalk"},
		{County: "", Town: "Nowhere", SiteName: "Orphan"},
	}}
	svc := NewService(mock)

	counties, err := svc.LocationsHierarchy(context.Background())
	if err != nil {
		t.Fatalf("LocationsHierarchy: %v", err)
	}

	if len(counties) != 2 {
		t.Fatalf("expected 2 counties, got %d", len(counties))
	}

	monmouth := counties[0]
	if monmouth.County != "Monmouth" || len(monmouth.Towns) != 2 {
		t.Fatalf("unexpected county: %+v", monmouth)
	}
	if got := monmouth.Towns[1].Sites; !reflect.DeepEqual(got, []string{"Front St", "Union Beach"}) {
		t.Errorf("unexpected sites: %v", got)
	}
}

func TestValidMaterialsFilter(t *testing.T) {
	mock := &mockSummaryStore{}
	svc := NewService(mock)

	if _, err := svc.ValidMaterials(context.Background(), domain.CategoryCounty, "Monmouth"); err != nil {
		t.Fatalf("ValidMaterials: %v", err)
	}
	if mock.gotTaxonomyOpts.LocationColumn != "county" || mock.gotTaxonomyOpts.LocationName != "Monmouth" {
		t.Errorf("expected county filter, got %+v", mock.gotTaxonomyOpts)
	}

	if _, err := svc.ValidMaterials(context.Background(), domain.CategorySite, ""); err != nil {
		t.Fatalf("ValidMaterials: %v", err)
	}
	if mock.gotTaxonomyOpts != (store.MaterialTaxonomyOpts{}) {
		t.Errorf("expected unfiltered taxonomy, got %+v", mock.gotTaxonomyOpts)
	}
}

func TestValidDateRange(t *testing.T) {
	first, last := date(2016, 4, 1), date(2021, 10, 1)
	mock := &mockSummaryStore{dateRange: domain.DateRange{FirstDate: &first, LastDate: &last}}
	svc := NewService(mock)

	r, err := svc.ValidDateRange(context.Background(), domain.CategorySite, "Union Beach")
	if err != nil {
		t.Fatalf("ValidDateRange: %v", err)
	}

	if r.FirstDate != "2016-04-01" || r.LastDate != "2021-10-01" {
		t.Errorf("unexpected range: %+v", r)
	}
	if mock.gotRangeColumn != "site_name" || mock.gotRangeName != "Union Beach" {
		t.Errorf("unexpected filter: %s=%s", mock.gotRangeColumn, mock.gotRangeName)
	}
}

func TestValidDateRangeEmpty(t *testing.T) {
	mock := &mockSummaryStore{}
	svc := NewService(mock)

	r, err := svc.ValidDateRange(context.Background(), domain.CategorySite, "Nowhere Beach")
	if err != nil {
		t.Fatalf("ValidDateRange: %v", err)
	}

	if r != (domain.ReportDateRange{}) {
		t.Errorf("expected empty range, got %+v", r)
	}
}

func TestItemsListColumnResolution(t *testing.T) {
	cases := []struct {
		itemType string
		want     string
	}{
		{"material", "material"},
		{"item_name", "item_name"},
		{"category", "category"},
		{"bogus", "category"},
	}

	for _, tc := range cases {
		mock := &mockSummaryStore{values: []string{"a"}}
		svc := NewService(mock)

		if _, err := svc.ItemsList(context.Background(), tc.itemType); err != nil {
			t.Fatalf("ItemsList(%q): %v", tc.itemType, err)
		}
		if mock.gotItemColumn != tc.want {
			t.Errorf("itemType %q: expected column %q, got %q", tc.itemType, tc.want, mock.gotItemColumn)
		}
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
