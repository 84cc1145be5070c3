package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/cleanocean/coa-backend/internal/pkg/constants"
	"github.com/cleanocean/coa-backend/internal/pkg/logger"
	"github.com/cleanocean/coa-backend/internal/pkg/store"
	"github.com/cleanocean/coa-backend/internal/pkg/utils"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

// Login checks the credentials against the user table and issues an auth
// token. Unknown users and wrong passwords are indistinguishable to the
// caller.
func (svc *Service) Login(ctx context.Context, username, password string) (string, error) {
	hash, err := svc.store.GetUserPassword(ctx, username)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return "", constants.ErrUnauthorized
		}
		return "", fmt.Errorf("store.GetUserPassword: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", constants.ErrUnauthorized
	}

	token, err := utils.GenerateAuthToken(username)
	if err != nil {
		return "", fmt.Errorf("utils.GenerateAuthToken: %w", err)
	}

	logger.Debugf(ctx, "login: username [%s]", username)

	return token, nil
}
