package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/cleanocean/coa-backend/internal/pkg/constants"
)

const tokenTTL = 6 * time.Hour

// GenerateAuthToken issues an HS256 token for the given username,
// valid for six hours.
func GenerateAuthToken(username string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.StandardClaims{
		Id:        uuid.NewString(),
		Subject:   username,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(viper.GetString(constants.ViperSecretKey)))
}

// ParseAuthToken validates the signature and expiry of a token and returns
// the username it was issued for.
func ParseAuthToken(tokenStr string) (string, error) {
	var claims jwt.StandardClaims
	_, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, constants.ErrInvalidToken
		}
		return []byte(viper.GetString(constants.ViperSecretKey)), nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return "", constants.ErrExpiredToken
		}
		return "", constants.ErrInvalidToken
	}

	return claims.Subject, nil
}
