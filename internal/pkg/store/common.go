package store

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/cleanocean/coa-backend/internal/pkg/constants"
)

const (
	tableItem       = "coa_data.item"
	tableSite       = "coa_data.site"
	tableEvent      = "coa_data.event"
	tableEventItems = "coa_data.event_items"
	tableUsers      = "coa_data.app_user"

	// viewSummary joins event_items x event x item x site. Reporting reads
	// only this view.
	viewSummary = "coa_data.summary_view"
)

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder returns a squirrel builder with postgres placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
