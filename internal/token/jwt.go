// Package token issues and verifies HS256 signed JWTs whose subject is the id
// of the user they were issued for.
package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-stories/internal/models"
	"github.com/adanyl0v/go-todo-stories/internal/result"
)

type JWT struct {
	logger     zerolog.Logger
	issuer     string
	signingKey []byte
	ttl        time.Duration
	now        func() time.Time
}

func NewJWT(logger zerolog.Logger, issuer string, signingKey []byte, ttl time.Duration) *JWT {
	return &JWT{
		logger:     logger,
		issuer:     issuer,
		signingKey: signingKey,
		ttl:        ttl,
		now:        time.Now,
	}
}

func (j *JWT) Generate(_ context.Context, user *models.User) result.Result[string, *models.Error] {
	tokenUUID, err := uuid.NewRandom()
	if err != nil {
		j.logger.Error().
			Err(err).
			Msg("failed to generate token id")
		return result.Err[string](models.NewErrorf(models.CodeTokenError, err.Error()))
	}

	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        tokenUUID.String(),
		Issuer:    j.issuer,
		Subject:   user.ID,
		ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		NotBefore: jwt.NewNumericDate(now),
		IssuedAt:  jwt.NewNumericDate(now),
	})

	signed, err := token.SignedString(j.signingKey)
	if err != nil {
		j.logger.Error().
			Err(err).
			Str("user_id", user.ID).
			Msg("failed to sign token")
		return result.Err[string](models.NewErrorf(models.CodeTokenError, fmt.Errorf("sign token: %w", err).Error()))
	}
	j.logger.Debug().
		Str("user_id", user.ID).
		Str("token_id", tokenUUID.String()).
		Msg("generated token")

	return result.Ok[string, *models.Error](signed)
}

func (j *JWT) GetUserID(_ context.Context, tokenString string) result.Result[string, *models.Error] {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return j.signingKey, nil
		},
		jwt.WithIssuer(j.issuer),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			j.logger.Debug().
				Err(err).
				Msg("token is expired")
			return result.Err[string](models.NewError(models.CodeTokenExpired))
		}

		j.logger.Debug().
			Err(err).
			Msg("failed to parse token")
		return result.Err[string](models.NewErrorf(models.CodeInvalidToken, err.Error()))
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		j.logger.Debug().Msg("token has no subject")
		return result.Err[string](models.NewError(models.CodeInvalidToken))
	}
	return result.Ok[string, *models.Error](claims.Subject)
}
