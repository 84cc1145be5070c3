package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/cleanocean/coa-backend/internal/domain"
	"github.com/cleanocean/coa-backend/internal/pkg/store/xpgx"
)

var itemColumns = []string{
	"item_id",
	"material",
	"category",
	"coalesce(item_name, '') as item_name",
}

type SaveItemOpts struct {
	Material string
	Category string
	ItemName string
}

func (s *store) ListItems(ctx context.Context) ([]domain.Item, error) {
	query := builder().Select(itemColumns...).
		From(tableItem).
		OrderBy("item_id")

	selected, err := xpgx.Selectx[domain.Item](ctx, s.pool, query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", wrapErr(err))
	}

	return selected, nil
}

func (s *store) InsertItem(ctx context.Context, opts SaveItemOpts) error {
	query := builder().Insert(tableItem).
		Columns("material", "category", "item_name").
		Values(opts.Material, opts.Category, opts.ItemName)

	if _, err := xpgx.Execx(ctx, s.pool, query); err != nil {
		return fmt.Errorf("insert item: %w", wrapErr(err))
	}

	return nil
}

func (s *store) UpdateItem(ctx context.Context, itemID int64, opts SaveItemOpts) error {
	query := builder().Update(tableItem).
		Set("material", opts.Material).
		Set("category", opts.Category).
		Set("item_name", opts.ItemName).
		Where(sq.Eq{"item_id": itemID})

	if _, err := xpgx.Execx(ctx, s.pool, query); err != nil {
		return fmt.Errorf("update item: %w", wrapErr(err))
	}

	return nil
}

func (s *store) DeleteItem(ctx context.Context, itemID int64) error {
	query := builder().Delete(tableItem).
		Where(sq.Eq{"item_id": itemID})

	if _, err := xpgx.Execx(ctx, s.pool, query); err != nil {
		return fmt.Errorf("delete item: %w", wrapErr(err))
	}

	return nil
}
