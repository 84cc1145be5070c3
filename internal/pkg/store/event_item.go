package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/cleanocean/coa-backend/internal/domain"
	"github.com/cleanocean/coa-backend/internal/pkg/store/xpgx"
)

var eventItemColumns = []string{
	"record_id", "event_id", "item_id", "quantity", "updated_by", "updated_tsp",
}

type SaveEventItemOpts struct {
	EventID   int64
	ItemID    int64
	Quantity  int64
	UpdatedBy string
}

func (s *store) ListEventItems(ctx context.Context, eventID int64) ([]domain.EventItem, error) {
	query := builder().Select(eventItemColumns...).
		From(tableEventItems).
		Where(sq.Eq{"event_id": eventID}).
		OrderBy("record_id")

	selected, err := xpgx.Selectx[domain.EventItem](ctx, s.pool, query)
	if err != nil {
		return nil, fmt.Errorf("list event items: %w", wrapErr(err))
	}

	return selected, nil
}

func (s *store) InsertEventItem(ctx context.Context, opts SaveEventItemOpts) error {
	query := builder().Insert(tableEventItems).
		Columns("event_id", "item_id", "quantity", "updated_by").
		Values(opts.EventID, opts.ItemID, opts.Quantity, opts.UpdatedBy)

	if _, err := xpgx.Execx(ctx, s.pool, query); err != nil {
		return fmt.Errorf("insert event item: %w", wrapErr(err))
	}

	return nil
}

func (s *store) UpdateEventItem(ctx context.Context, recordID int64, opts SaveEventItemOpts) error {
	query := builder().Update(tableEventItems).
		Set("event_id", opts.EventID).
		Set("item_id", opts.ItemID).
		Set("quantity", opts.Quantity).
		Set("updated_by", opts.UpdatedBy).
		Set("updated_tsp", sq.Expr("now()")).
		Where(sq.Eq{"record_id": recordID})

	if _, err := xpgx.Execx(ctx, s.pool, query); err != nil {
		return fmt.Errorf("update event item: %w", wrapErr(err))
	}

	return nil
}

func (s *store) DeleteEventItem(ctx context.Context, recordID int64) error {
	query := builder().Delete(tableEventItems).
		Where(sq.Eq{"record_id": recordID})

	if _, err := xpgx.Execx(ctx, s.pool, query); err != nil {
		return fmt.Errorf("delete event item: %w", wrapErr(err))
	}

	return nil
}
