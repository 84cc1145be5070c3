package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/cleanocean/coa-backend/internal/domain"
	"github.com/cleanocean/coa-backend/internal/pkg/store/xpgx"
)

var siteColumns = []string{
	"site_id", "site_name", "state", "county", "town", "street", "zipcode", "lat", "long",
}

type SaveSiteOpts struct {
	SiteName string
	State    string
	County   string
	Town     string
	Street   string
	Zipcode  string
	Lat      *float64
	Long     *float64
}

func (s *store) ListSites(ctx context.Context) ([]domain.Site, error) {
	query := builder().Select(siteColumns...).
		From(tableSite).
		OrderBy("site_id")

	selected, err := xpgx.Selectx[domain.Site](ctx, s.pool, query)
	if err != nil {
		return nil, fmt.Errorf("list sites: %w", wrapErr(err))
	}

	return selected, nil
}

func (s *store) InsertSite(ctx context.Context, opts SaveSiteOpts) error {
	query := builder().Insert(tableSite).
		Columns(siteColumns[1:]...).
		Values(opts.SiteName, opts.State, opts.County, opts.Town, opts.Street, opts.Zipcode, opts.Lat, opts.Long)

	if _, err := xpgx.Execx(ctx, s.pool, query); err != nil {
		return fmt.Errorf("insert site: %w", wrapErr(err))
	}

	return nil
}

func (s *store) UpdateSite(ctx context.Context, siteID int64, opts SaveSiteOpts) error {
	query := builder().Update(tableSite).
		Set("site_name", opts.SiteName).
		Set("state", opts.State).
		Set("county", opts.County).
		Set("town", opts.Town).
		Set("street", opts.Street).
		Set("zipcode", opts.Zipcode).
		Set("lat", opts.Lat).
		Set("long", opts.Long).
		Where(sq.Eq{"site_id": siteID})

	if _, err := xpgx.Execx(ctx, s.pool, query); err != nil {
		return fmt.Errorf("update site: %w", wrapErr(err))
	}

	return nil
}

func (s *store) DeleteSite(ctx context.Context, siteID int64) error {
	query := builder().Delete(tableSite).
		Where(sq.Eq{"site_id": siteID})

	if _, err := xpgx.Execx(ctx, s.pool, query); err != nil {
		return fmt.Errorf("delete site: %w", wrapErr(err))
	}

	return nil
}
