package stories

import (
	"context"

	"github.com/adanyl0v/go-todo-stories/internal/models"
	"github.com/adanyl0v/go-todo-stories/internal/option"
	"github.com/adanyl0v/go-todo-stories/internal/result"
)

// TaskRepository persists tasks. Implementations report storage failures as
// Err with models.CodeTaskRepositoryError and must return fresh values on
// every read.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) result.Result[*models.Task, *models.Error]
	Update(ctx context.Context, task *models.Task) result.Result[*models.Task, *models.Error]
	Delete(ctx context.Context, task *models.Task) result.Result[struct{}, *models.Error]

	// FindByID returns Ok(None) when no task has the given id.
	FindByID(ctx context.Context, id string) result.Result[option.Option[*models.Task], *models.Error]

	// FindAll applies every filter and the pagination of the given filter.
	// Callers pass a filter with defaults already applied.
	FindAll(ctx context.Context, filter models.TaskFilter) result.Result[models.Paged[*models.Task], *models.Error]
}

// UserRepository persists users. Storage failures are reported as Err with
// models.CodeUserRepositoryError. Implementations backed by a store with a
// unique index on username should report a violation on Create as
// models.CodeUsernameAlreadyExists.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) result.Result[*models.User, *models.Error]
	FindByID(ctx context.Context, id string) result.Result[option.Option[*models.User], *models.Error]
	FindByUsername(ctx context.Context, username string) result.Result[option.Option[*models.User], *models.Error]
}

type TokenPort interface {
	// Generate issues a token identifying user. It only fails when the
	// signer is misconfigured, with models.CodeTokenError.
	Generate(ctx context.Context, user *models.User) result.Result[string, *models.Error]

	// GetUserID resolves the user id carried by token, or fails with
	// models.CodeInvalidToken or models.CodeTokenExpired.
	GetUserID(ctx context.Context, token string) result.Result[string, *models.Error]
}

type PasswordHashPort interface {
	Hash(ctx context.Context, password string) result.Result[string, *models.Error]

	// Compare never fails: a malformed hash does not match any password.
	Compare(ctx context.Context, hash, password string) bool
}
