package memory

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-stories/internal/models"
	"github.com/adanyl0v/go-todo-stories/internal/option"
	"github.com/adanyl0v/go-todo-stories/internal/result"
)

// UserRepository enforces unique usernames atomically on Create.
type UserRepository struct {
	logger zerolog.Logger

	mu         sync.RWMutex
	users      map[string]*models.User
	byUsername map[string]string
}

func NewUserRepository(logger zerolog.Logger) *UserRepository {
	return &UserRepository{
		logger:     logger,
		users:      make(map[string]*models.User),
		byUsername: make(map[string]string),
	}
}

func (r *UserRepository) Create(_ context.Context, user *models.User) result.Result[*models.User, *models.Error] {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUsername[user.Username]; ok {
		r.logger.Error().
			Str("username", user.Username).
			Msg("user with this username already exists")
		return result.Err[*models.User](models.NewError(models.CodeUsernameAlreadyExists))
	}
	if _, ok := r.users[user.ID]; ok {
		r.logger.Error().
			Str("user_id", user.ID).
			Msg("user already exists")
		return result.Err[*models.User](models.NewErrorf(models.CodeUserRepositoryError, "user "+user.ID+" already exists"))
	}
	r.users[user.ID] = user.Clone()
	r.byUsername[user.Username] = user.ID

	r.logger.Debug().
		Str("user_id", user.ID).
		Msg("inserted user")
	return result.Ok[*models.User, *models.Error](user.Clone())
}

func (r *UserRepository) FindByID(_ context.Context, id string) result.Result[option.Option[*models.User], *models.Error] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return result.Ok[option.Option[*models.User], *models.Error](r.lookup(id))
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) result.Result[option.Option[*models.User], *models.Error] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[username]
	if !ok {
		return result.Ok[option.Option[*models.User], *models.Error](option.None[*models.User]())
	}
	return result.Ok[option.Option[*models.User], *models.Error](r.lookup(id))
}

func (r *UserRepository) lookup(id string) option.Option[*models.User] {
	user, ok := r.users[id]
	if !ok {
		return option.None[*models.User]()
	}
	return option.Some(user.Clone())
}
