package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/cleanocean/coa-backend/internal/domain"
	"github.com/cleanocean/coa-backend/internal/pkg/store/xpgx"
)

type SaveEventOpts struct {
	SiteID          int64
	VolunteerYear   int
	VolunteerSeason string
	// VolunteerDate is derived from year+season by the service layer.
	VolunteerDate   time.Time
	VolunteerCnt    *int64
	TrashbagCnt     *float64
	TrashWeight     *float64
	WalkingDistance *float64
	UpdatedBy       string
}

// ListEvents returns the events of one season with the summed item quantity
// of each event joined in.
func (s *store) ListEvents(ctx context.Context, year int, season string) ([]domain.EventSummary, error) {
	query := builder().Select(
		"cde.event_id",
		"cde.site_id",
		"cde.volunteer_year",
		"cde.volunteer_season",
		"cde.volunteer_cnt",
		"cde.trashbag_cnt",
		"cde.trash_weight",
		"cde.walking_distance",
		"cde.updated_by",
		"cde.updated_tsp",
		"coalesce(sum(cei.quantity), 0)::bigint as trash_items_cnt",
	).
		From(tableEvent + " as cde").
		LeftJoin(tableEventItems + " as cei on cei.event_id = cde.event_id").
		Where(sq.Eq{"cde.volunteer_year": year, "cde.volunteer_season": season}).
		GroupBy("cde.event_id").
		OrderBy("cde.event_id")

	selected, err := xpgx.Selectx[domain.EventSummary](ctx, s.pool, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", wrapErr(err))
	}

	return selected, nil
}

func (s *store) InsertEvent(ctx context.Context, opts SaveEventOpts) error {
	query := builder().Insert(tableEvent).
		Columns(
			"site_id", "volunteer_year", "volunteer_season", "volunteer_date",
			"volunteer_cnt", "trashbag_cnt", "trash_weight", "walking_distance", "updated_by",
		).
		Values(
			opts.SiteID, opts.VolunteerYear, opts.VolunteerSeason, opts.VolunteerDate,
			opts.VolunteerCnt, opts.TrashbagCnt, opts.TrashWeight, opts.WalkingDistance, opts.UpdatedBy,
		)

	if _, err := xpgx.Execx(ctx, s.pool, query); err != nil {
		return fmt.Errorf("insert event: %w", wrapErr(err))
	}

	return nil
}

func (s *store) UpdateEvent(ctx context.Context, eventID int64, opts SaveEventOpts) error {
	query := builder().Update(tableEvent).
		Set("site_id", opts.SiteID).
		Set("volunteer_year", opts.VolunteerYear).
		Set("volunteer_season", opts.VolunteerSeason).
		Set("volunteer_date", opts.VolunteerDate).
		Set("volunteer_cnt", opts.VolunteerCnt).
		Set("trashbag_cnt", opts.TrashbagCnt).
		Set("trash_weight", opts.TrashWeight).
		Set("walking_distance", opts.WalkingDistance).
		Set("updated_by", opts.UpdatedBy).
		Set("updated_tsp", sq.Expr("now()")).
		Where(sq.Eq{"event_id": eventID})

	if _, err := xpgx.Execx(ctx, s.pool, query); err != nil {
		return fmt.Errorf("update event: %w", wrapErr(err))
	}

	return nil
}

func (s *store) DeleteEvent(ctx context.Context, eventID int64) error {
	query := builder().Delete(tableEvent).
		Where(sq.Eq{"event_id": eventID})

	if _, err := xpgx.Execx(ctx, s.pool, query); err != nil {
		return fmt.Errorf("delete event: %w", wrapErr(err))
	}

	return nil
}
