package records

import (
	"context"
	"fmt"

	"github.com/cleanocean/coa-backend/internal/domain"
	"github.com/cleanocean/coa-backend/internal/pkg/store"
)

func (svc *Service) ListItems(ctx context.Context) ([]domain.Item, error) {
	items, err := svc.store.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListItems: %w", err)
	}

	return items, nil
}

func (svc *Service) AddItem(ctx context.Context, opts store.SaveItemOpts) error {
	if err := svc.store.InsertItem(ctx, opts); err != nil {
		return fmt.Errorf("store.InsertItem: %w", err)
	}

	return nil
}

func (svc *Service) UpdateItem(ctx context.Context, itemID int64, opts store.SaveItemOpts) error {
	if err := svc.store.UpdateItem(ctx, itemID, opts); err != nil {
		return fmt.Errorf("store.UpdateItem: %w", err)
	}

	return nil
}

func (svc *Service) RemoveItem(ctx context.Context, itemID int64) error {
	if err := svc.store.DeleteItem(ctx, itemID); err != nil {
		return fmt.Errorf("store.DeleteItem: %w", err)
	}

	return nil
}
