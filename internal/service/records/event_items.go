package records

import (
	"context"
	"fmt"

	"github.com/cleanocean/coa-backend/internal/domain"
	"github.com/cleanocean/coa-backend/internal/pkg/store"
)

func (svc *Service) ListEventItems(ctx context.Context, eventID int64) ([]domain.EventItem, error) {
	items, err := svc.store.ListEventItems(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("store.ListEventItems: %w", err)
	}

	return items, nil
}

func (svc *Service) AddEventItem(ctx context.Context, opts store.SaveEventItemOpts) error {
	if err := svc.store.InsertEventItem(ctx, opts); err != nil {
		return fmt.Errorf("store.InsertEventItem: %w", err)
	}

	return nil
}

func (svc *Service) UpdateEventItem(ctx context.Context, recordID int64, opts store.SaveEventItemOpts) error {
	if err := svc.store.UpdateEventItem(ctx, recordID, opts); err != nil {
		return fmt.Errorf("store.UpdateEventItem: %w", err)
	}

	return nil
}

func (svc *Service) RemoveEventItem(ctx context.Context, recordID int64) error {
	if err := svc.store.DeleteEventItem(ctx, recordID); err != nil {
		return fmt.Errorf("store.DeleteEventItem: %w", err)
	}

	return nil
}
