package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/cleanocean/coa-backend/internal/domain"
	"github.com/cleanocean/coa-backend/internal/pkg/store/xpgx"
)

// groupedColumns aggregate everything except the grouping key. Grouping is by
// item_name alone; min() picks the representative id/category/material for
// names shared across items.
var groupedColumns = []string{
	"coalesce(item_name, '') as item_name",
	"min(item_id) as item_id",
	"min(category) as category",
	"min(material) as material",
	"sum(quantity)::bigint as quantity_sum",
}

type ItemQuantitiesOpts struct {
	LocationColumn string
	LocationName   string
	StartDate      time.Time
	EndDate        time.Time
}

// SelectItemQuantities returns per-item quantity sums for one location over a
// date window, both bounds inclusive. Rows come back ordered by material,
// category, item_name so downstream tree building is reproducible.
func (s *store) SelectItemQuantities(ctx context.Context, opts ItemQuantitiesOpts) ([]domain.ItemQuantity, error) {
	query := builder().Select(groupedColumns...).
		From(viewSummary).
		Where(sq.Eq{opts.LocationColumn: opts.LocationName}).
		Where(sq.GtOrEq{"volunteer_date": opts.StartDate}).
		Where(sq.LtOrEq{"volunteer_date": opts.EndDate}).
		GroupBy("coalesce(item_name, '')").
		OrderBy("min(material)", "min(category)", "coalesce(item_name, '')")

	selected, err := xpgx.Selectx[domain.ItemQuantity](ctx, s.pool, query)
	if err != nil {
		return nil, fmt.Errorf("select item quantities: %w", wrapErr(err))
	}

	return selected, nil
}

type MaterialTaxonomyOpts struct {
	// LocationColumn/LocationName restrict the taxonomy to one location when
	// both are set.
	LocationColumn string
	LocationName   string
}

// SelectMaterialTaxonomy returns the grouped rows feeding the valid-materials
// taxonomy: only rows with a positive quantity, optionally filtered to one
// location, ordered material, category, item_name.
func (s *store) SelectMaterialTaxonomy(ctx context.Context, opts MaterialTaxonomyOpts) ([]domain.ItemQuantity, error) {
	query := builder().Select(groupedColumns...).
		From(viewSummary).
		Where(sq.Gt{"quantity": 0}).
		GroupBy("coalesce(item_name, '')").
		OrderBy("min(material)", "min(category)", "coalesce(item_name, '')")

	if opts.LocationColumn != "" && opts.LocationName != "" {
		query = query.Where(sq.Eq{opts.LocationColumn: opts.LocationName})
	}

	selected, err := xpgx.Selectx[domain.ItemQuantity](ctx, s.pool, query)
	if err != nil {
		return nil, fmt.Errorf("select material taxonomy: %w", wrapErr(err))
	}

	return selected, nil
}

// SelectDistinctLocations returns the distinct non-empty values of one
// location column, sorted ascending.
func (s *store) SelectDistinctLocations(ctx context.Context, column string) ([]string, error) {
	query := builder().Select(column).
		Distinct().
		From(viewSummary).
		Where(sq.NotEq{column: nil}).
		Where(sq.NotEq{column: ""}).
		OrderBy(column)

	selected, err := xpgx.SelectScalarx[string](ctx, s.pool, query)
	if err != nil {
		return nil, fmt.Errorf("select distinct %s: %w", column, wrapErr(err))
	}

	return selected, nil
}

// SelectLocationTriples returns every distinct (county, town, site) combination.
func (s *store) SelectLocationTriples(ctx context.Context) ([]domain.LocationTriple, error) {
	query := builder().Select("county", "town", "site_name").
		Distinct().
		From(viewSummary).
		Where(sq.NotEq{"site_name": nil}).
		Where(sq.NotEq{"site_name": ""}).
		OrderBy("county", "town", "site_name")

	selected, err := xpgx.Selectx[domain.LocationTriple](ctx, s.pool, query)
	if err != nil {
		return nil, fmt.Errorf("select location triples: %w", wrapErr(err))
	}

	return selected, nil
}

// SelectDateRange returns the min and max volunteer_date for one location.
// The aggregate row always exists; both fields are NULL when nothing matched.
func (s *store) SelectDateRange(ctx context.Context, column, name string) (*domain.DateRange, error) {
	query := builder().Select(
		"min(volunteer_date) as first_date",
		"max(volunteer_date) as last_date",
	).
		From(viewSummary).
		Where(sq.Eq{column: name})

	selected, err := xpgx.Getx[domain.DateRange](ctx, s.pool, query)
	if err != nil {
		return nil, fmt.Errorf("select date range: %w", wrapErr(err))
	}

	return selected, nil
}

// SelectDistinctItemValues returns the distinct non-empty values of an item
// column in natural scan order. Deliberately unsorted.
func (s *store) SelectDistinctItemValues(ctx context.Context, column string) ([]string, error) {
	query := builder().Select(column).
		Distinct().
		From(viewSummary).
		Where(sq.NotEq{column: nil}).
		Where(sq.NotEq{column: ""})

	selected, err := xpgx.SelectScalarx[string](ctx, s.pool, query)
	if err != nil {
		return nil, fmt.Errorf("select distinct %s: %w", column, wrapErr(err))
	}

	return selected, nil
}
