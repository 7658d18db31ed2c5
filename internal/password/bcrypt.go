package password

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/adanyl0v/go-todo-stories/internal/models"
	"github.com/adanyl0v/go-todo-stories/internal/result"
)

const DefaultBcryptCost = 12

type Bcrypt struct {
	logger zerolog.Logger
	cost   int
}

// NewBcrypt falls back to DefaultBcryptCost when cost is outside the range
// bcrypt accepts.
func NewBcrypt(logger zerolog.Logger, cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &Bcrypt{logger: logger, cost: cost}
}

// Hash fails for passwords longer than 72 bytes.
func (h *Bcrypt) Hash(_ context.Context, password string) result.Result[string, *models.Error] {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to hash password")
		return result.Err[string](models.NewErrorf(models.CodePasswordHashError, err.Error()))
	}
	return result.Ok[string, *models.Error](string(hash))
}

func (h *Bcrypt) Compare(_ context.Context, hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
