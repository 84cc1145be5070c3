package records

import (
	"context"
	"fmt"

	"github.com/cleanocean/coa-backend/internal/domain"
	"github.com/cleanocean/coa-backend/internal/pkg/store"
)

func (svc *Service) ListSites(ctx context.Context) ([]domain.Site, error) {
	sites, err := svc.store.ListSites(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListSites: %w", err)
	}

	return sites, nil
}

func (svc *Service) AddSite(ctx context.Context, opts store.SaveSiteOpts) error {
	if err := svc.store.InsertSite(ctx, opts); err != nil {
		return fmt.Errorf("store.InsertSite: %w", err)
	}

	return nil
}

func (svc *Service) UpdateSite(ctx context.Context, siteID int64, opts store.SaveSiteOpts) error {
	if err := svc.store.UpdateSite(ctx, siteID, opts); err != nil {
		return fmt.Errorf("store.UpdateSite: %w", err)
	}

	return nil
}

func (svc *Service) RemoveSite(ctx context.Context, siteID int64) error {
	if err := svc.store.DeleteSite(ctx, siteID); err != nil {
		return fmt.Errorf("store.DeleteSite: %w", err)
	}

	return nil
}
