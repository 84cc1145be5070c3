package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/cleanocean/coa-backend/internal/domain"
	"github.com/cleanocean/coa-backend/internal/pkg/store"
)

// DefaultDirtyDozenLimit is how many ranked items the dirty-dozen report
// returns unless the caller asks for fewer or more.
const DefaultDirtyDozenLimit = 12

// Service is the aggregation engine: a stateless read-only transform layer
// over the summary store. Every method is a pure function of its arguments
// and the store contents, so concurrent requests need no coordination here.
type Service struct {
	store store.SummaryStore
}

func NewService(store store.SummaryStore) *Service {
	return &Service{store: store}
}

// GroupedQuantities returns per-item quantity sums for one location and date
// window, both bounds inclusive.
func (s *Service) GroupedQuantities(
	ctx context.Context,
	category domain.LocationCategory,
	name string,
	start, end time.Time,
) ([]domain.ItemQuantity, error) {
	groups, err := s.store.SelectItemQuantities(ctx, store.ItemQuantitiesOpts{
		LocationColumn: category.Column(),
		LocationName:   name,
		StartDate:      start,
		EndDate:        end,
	})
	if err != nil {
		return nil, fmt.Errorf("store.SelectItemQuantities: %w", err)
	}

	return groups, nil
}

// DirtyDozen ranks the grouped quantities descending and keeps the top limit.
// Ties break on item name ascending so output is reproducible. Percentages
// are taken against the total across all groups, not just the ranked ones.
func (s *Service) DirtyDozen(
	ctx context.Context,
	category domain.LocationCategory,
	name string,
	start, end time.Time,
	limit int,
) ([]domain.DirtyDozenEntry, error) {
	groups, err := s.GroupedQuantities(ctx, category, name, start, end)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultDirtyDozenLimit
	}

	var total int64
	for _, g := range groups {
		total += g.QuantitySum
	}

	ranked := make([]domain.ItemQuantity, len(groups))
	copy(ranked, groups)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].QuantitySum != ranked[j].QuantitySum {
			return ranked[i].QuantitySum > ranked[j].QuantitySum
		}
		return ranked[i].ItemName < ranked[j].ItemName
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	entries := make([]domain.DirtyDozenEntry, 0, len(ranked))
	for _, g := range ranked {
		entries = append(entries, domain.DirtyDozenEntry{
			ItemName:     g.ItemName,
			ItemID:       g.ItemID,
			CategoryName: g.Category,
			MaterialName: g.Material,
			Count:        g.QuantitySum,
			Percentage:   percentage(g.QuantitySum, total),
		})
	}

	return entries, nil
}

// percentage is count/total*100 rounded to two decimals, 0 when there is
// nothing to divide by.
func percentage(count, total int64) float64 {
	if total == 0 {
		return 0
	}

	return decimal.NewFromInt(count).
		Div(decimal.NewFromInt(total)).
		Mul(decimal.NewFromInt(100)).
		Round(2).
		InexactFloat64()
}

// Breakdown builds the sunburst tree for one location and date window.
func (s *Service) Breakdown(
	ctx context.Context,
	category domain.LocationCategory,
	name string,
	start, end time.Time,
) (*domain.BreakdownNode, error) {
	groups, err := s.GroupedQuantities(ctx, category, name, start, end)
	if err != nil {
		return nil, err
	}

	return BuildBreakdownTree(groups), nil
}

// Locations lists the known names of every location category, each sorted
// ascending. The three distinct queries are independent and run in parallel.
func (s *Service) Locations(ctx context.Context) ([]domain.LocationGroup, error) {
	res := make([]domain.LocationGroup, len(domain.LocationCategories))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, category := range domain.LocationCategories {
		i, category := i, category
		eg.Go(func() error {
			names, err := s.store.SelectDistinctLocations(egCtx, category.Column())
			if err != nil {
				return fmt.Errorf("store.SelectDistinctLocations, category-%s: %w", category, err)
			}
			if names == nil {
				names = []string{}
			}

			res[i] = domain.LocationGroup{
				LocationCategory: string(category),
				LocationLabel:    category.Label(),
				LocationNames:    names,
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return res, nil
}

// LocationsHierarchy nests the known locations county → town → site.
func (s *Service) LocationsHierarchy(ctx context.Context) ([]*domain.CountyNode, error) {
	triples, err := s.store.SelectLocationTriples(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.SelectLocationTriples: %w", err)
	}

	return BuildLocationHierarchy(triples), nil
}

// ValidMaterials returns the material → category → item taxonomy of
// everything actually collected (quantity > 0), optionally restricted to one
// location. An empty name means no location filter.
func (s *Service) ValidMaterials(
	ctx context.Context,
	category domain.LocationCategory,
	name string,
) ([]*domain.MaterialNode, error) {
	opts := store.MaterialTaxonomyOpts{}
	if name != "" {
		opts.LocationColumn = category.Column()
		opts.LocationName = name
	}

	groups, err := s.store.SelectMaterialTaxonomy(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("store.SelectMaterialTaxonomy: %w", err)
	}

	return BuildMaterialTaxonomy(groups), nil
}

// ValidDateRange returns the first and last volunteer date recorded for one
// location. No matching rows is not an error: the result is empty.
func (s *Service) ValidDateRange(
	ctx context.Context,
	category domain.LocationCategory,
	name string,
) (domain.ReportDateRange, error) {
	r, err := s.store.SelectDateRange(ctx, category.Column(), name)
	if err != nil {
		return domain.ReportDateRange{}, fmt.Errorf("store.SelectDateRange: %w", err)
	}

	var out domain.ReportDateRange
	if r.FirstDate != nil {
		out.FirstDate = domain.FormatDate(*r.FirstDate)
	}
	if r.LastDate != nil {
		out.LastDate = domain.FormatDate(*r.LastDate)
	}

	return out, nil
}

// ItemsList returns the distinct values of one item column. Unknown item
// types fall open to category; order is the store's natural distinct order.
func (s *Service) ItemsList(ctx context.Context, itemType string) ([]string, error) {
	values, err := s.store.SelectDistinctItemValues(ctx, domain.ItemTypeColumn(itemType))
	if err != nil {
		return nil, fmt.Errorf("store.SelectDistinctItemValues: %w", err)
	}
	if values == nil {
		values = []string{}
	}

	return values, nil
}
