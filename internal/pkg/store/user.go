package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/cleanocean/coa-backend/internal/pkg/store/xpgx"
)

type userRecord struct {
	Password string `db:"password"`
}

// GetUserPassword returns the stored password hash of an active user.
func (s *store) GetUserPassword(ctx context.Context, username string) (string, error) {
	query := builder().Select("password").
		From(tableUsers).
		Where(sq.Eq{"username": username, "active": true})

	selected, err := xpgx.Getx[userRecord](ctx, s.pool, query)
	if err != nil {
		return "", fmt.Errorf("get user password: %w", wrapErr(err))
	}

	return selected.Password, nil
}
