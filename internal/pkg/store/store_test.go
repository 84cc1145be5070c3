package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/cleanocean/coa-backend/internal/pkg/constants"
)

// errStop short-circuits query execution so tests can inspect the generated
// SQL without a database.
var errStop = errors.New("stop")

type fakePool struct {
	sql  string
	args []any
}

func (f *fakePool) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.sql, f.args = sql, args
	return nil, errStop
}

func (f *fakePool) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.sql, f.args = sql, args
	return pgconn.CommandTag{}, errStop
}

func TestWrapErr(t *testing.T) {
	if got := wrapErr(pgx.ErrNoRows); !errors.Is(got, constants.ErrDBNotFound) {
		t.Errorf("expected ErrDBNotFound, got %v", got)
	}
	if got := wrapErr(fmt.Errorf("query: %w", pgx.ErrNoRows)); !errors.Is(got, constants.ErrDBNotFound) {
		t.Errorf("expected ErrDBNotFound through wrapping, got %v", got)
	}

	other := errors.New("connection refused")
	if got := wrapErr(other); got != other {
		t.Errorf("expected passthrough, got %v", got)
	}
}

func TestSelectItemQuantitiesSQL(t *testing.T) {
	pool := &fakePool{}
	s := &store{pool: pool}

	start := time.Date(2016, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, time.June, 15, 0, 0, 0, 0, time.UTC)
	_, err := s.SelectItemQuantities(context.Background(), ItemQuantitiesOpts{
		LocationColumn: "town",
		LocationName:   "Keansburg",
		StartDate:      start,
		EndDate:        end,
	})
	if !errors.Is(err, errStop) {
		t.Fatalf("expected errStop, got %v", err)
	}

	for _, want := range []string{
		"coalesce(item_name, '') as item_name",
		"sum(quantity)::bigint as quantity_sum",
		"FROM coa_data.summary_view",
		"town = $1",
		"volunteer_date >= $2",
		"volunteer_date <= $3",
		"GROUP BY coalesce(item_name, '')",
	} {
		if !strings.Contains(pool.sql, want) {
			t.Errorf("expected SQL to contain %q, got:\n%s", want, pool.sql)
		}
	}

	if len(pool.args) != 3 || pool.args[0] != "Keansburg" {
		t.Errorf("unexpected args: %v", pool.args)
	}
}

func TestSelectMaterialTaxonomySQL(t *testing.T) {
	pool := &fakePool{}
	s := &store{pool: pool}

	_, err := s.SelectMaterialTaxonomy(context.Background(), MaterialTaxonomyOpts{})
	if !errors.Is(err, errStop) {
		t.Fatalf("expected errStop, got %v", err)
	}
	if !strings.Contains(pool.sql, "quantity > $1") {
		t.Errorf("expected positive-quantity filter, got:\n%s", pool.sql)
	}
	if strings.Contains(pool.sql, "site_name =") {
		t.Errorf("expected no location filter, got:\n%s", pool.sql)
	}

	_, err = s.SelectMaterialTaxonomy(context.Background(), MaterialTaxonomyOpts{
		LocationColumn: "site_name",
		LocationName:   "Union Beach",
	})
	if !errors.Is(err, errStop) {
		t.Fatalf("expected errStop, got %v", err)
	}
	if !strings.Contains(pool.sql, "site_name = $2") {
		t.Errorf("expected location filter, got:\n%s", pool.sql)
	}
}

func TestSelectDistinctItemValuesSQL(t *testing.T) {
	pool := &fakePool{}
	s := &store{pool: pool}

	_, err := s.SelectDistinctItemValues(context.Background(), "material")
	if !errors.Is(err, errStop) {
		t.Fatalf("expected errStop, got %v", err)
	}

	if !strings.Contains(pool.sql, "SELECT DISTINCT material") {
		t.Errorf("expected distinct select, got:\n%s", pool.sql)
	}
	if strings.Contains(pool.sql, "ORDER BY") {
		t.Errorf("distinct item values must stay unsorted, got:\n%s", pool.sql)
	}
}

func TestListEventsSQL(t *testing.T) {
	pool := &fakePool{}
	s := &store{pool: pool}

	_, err := s.ListEvents(context.Background(), 2021, "Fall")
	if !errors.Is(err, errStop) {
		t.Fatalf("expected errStop, got %v", err)
	}

	for _, want := range []string{
		"coalesce(sum(cei.quantity), 0)::bigint as trash_items_cnt",
		"LEFT JOIN coa_data.event_items as cei",
		"GROUP BY cde.event_id",
	} {
		if !strings.Contains(pool.sql, want) {
			t.Errorf("expected SQL to contain %q, got:\n%s", want, pool.sql)
		}
	}
}
