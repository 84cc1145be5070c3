package records

import (
	"context"
	"fmt"

	"github.com/cleanocean/coa-backend/internal/domain"
	"github.com/cleanocean/coa-backend/internal/pkg/store"
)

func (svc *Service) ListEvents(ctx context.Context, year int, season string) ([]domain.EventSummary, error) {
	events, err := svc.store.ListEvents(ctx, year, season)
	if err != nil {
		return nil, fmt.Errorf("store.ListEvents: %w", err)
	}

	return events, nil
}

// AddEvent derives the nominal volunteer date from year+season before the
// row is written; callers never supply it directly.
func (svc *Service) AddEvent(ctx context.Context, opts store.SaveEventOpts) error {
	date, err := domain.VolunteerDate(opts.VolunteerYear, opts.VolunteerSeason)
	if err != nil {
		return err
	}
	opts.VolunteerDate = date

	if err := svc.store.InsertEvent(ctx, opts); err != nil {
		return fmt.Errorf("store.InsertEvent: %w", err)
	}

	return nil
}

func (svc *Service) UpdateEvent(ctx context.Context, eventID int64, opts store.SaveEventOpts) error {
	date, err := domain.VolunteerDate(opts.VolunteerYear, opts.VolunteerSeason)
	if err != nil {
		return err
	}
	opts.VolunteerDate = date

	if err := svc.store.UpdateEvent(ctx, eventID, opts); err != nil {
		return fmt.Errorf("store.UpdateEvent: %w", err)
	}

	return nil
}

func (svc *Service) RemoveEvent(ctx context.Context, eventID int64) error {
	if err := svc.store.DeleteEvent(ctx, eventID); err != nil {
		return fmt.Errorf("store.DeleteEvent: %w", err)
	}

	return nil
}
