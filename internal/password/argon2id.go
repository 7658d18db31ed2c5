// Package password hashes and verifies user passwords. Argon2id is the default
// scheme, Bcrypt is kept for stores that already hold bcrypt hashes.
package password

import (
	"context"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-stories/internal/models"
	"github.com/adanyl0v/go-todo-stories/internal/result"
)

type Argon2id struct {
	logger zerolog.Logger
	params *argon2id.Params
}

// NewArgon2id uses argon2id.DefaultParams when params is nil.
func NewArgon2id(logger zerolog.Logger, params *argon2id.Params) *Argon2id {
	if params == nil {
		params = argon2id.DefaultParams
	}
	return &Argon2id{logger: logger, params: params}
}

func (h *Argon2id) Hash(_ context.Context, password string) result.Result[string, *models.Error] {
	hash, err := argon2id.CreateHash(password, h.params)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to hash password")
		return result.Err[string](models.NewErrorf(models.CodePasswordHashError, err.Error()))
	}
	return result.Ok[string, *models.Error](hash)
}

func (h *Argon2id) Compare(_ context.Context, hash, password string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, hash)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to compare password")
		return false
	}
	return match
}
