package records

import (
	"github.com/cleanocean/coa-backend/internal/pkg/store"
)

// Service owns the CRUD side of the backend: the item taxonomy, sites,
// events and the per-event item records. Reporting never goes through here.
type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}
