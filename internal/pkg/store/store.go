package store

import (
	"context"

	"github.com/cleanocean/coa-backend/internal/domain"
	"github.com/cleanocean/coa-backend/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

// SummaryStore is the read-only slice of the store the reporting engine
// depends on.
type SummaryStore interface {
	SelectItemQuantities(ctx context.Context, opts ItemQuantitiesOpts) ([]domain.ItemQuantity, error)
	SelectMaterialTaxonomy(ctx context.Context, opts MaterialTaxonomyOpts) ([]domain.ItemQuantity, error)
	SelectDistinctLocations(ctx context.Context, column string) ([]string, error)
	SelectLocationTriples(ctx context.Context) ([]domain.LocationTriple, error)
	SelectDateRange(ctx context.Context, column, name string) (*domain.DateRange, error)
	SelectDistinctItemValues(ctx context.Context, column string) ([]string, error)
}

type Store interface {
	SummaryStore

	ListItems(ctx context.Context) ([]domain.Item, error)
	InsertItem(ctx context.Context, opts SaveItemOpts) error
	UpdateItem(ctx context.Context, itemID int64, opts SaveItemOpts) error
	DeleteItem(ctx context.Context, itemID int64) error

	ListSites(ctx context.Context) ([]domain.Site, error)
	InsertSite(ctx context.Context, opts SaveSiteOpts) error
	UpdateSite(ctx context.Context, siteID int64, opts SaveSiteOpts) error
	DeleteSite(ctx context.Context, siteID int64) error

	ListEvents(ctx context.Context, year int, season string) ([]domain.EventSummary, error)
	InsertEvent(ctx context.Context, opts SaveEventOpts) error
	UpdateEvent(ctx context.Context, eventID int64, opts SaveEventOpts) error
	DeleteEvent(ctx context.Context, eventID int64) error

	ListEventItems(ctx context.Context, eventID int64) ([]domain.EventItem, error)
	InsertEventItem(ctx context.Context, opts SaveEventItemOpts) error
	UpdateEventItem(ctx context.Context, recordID int64, opts SaveEventItemOpts) error
	DeleteEventItem(ctx context.Context, recordID int64) error

	GetUserPassword(ctx context.Context, username string) (string, error)
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}
