package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-stories/internal/models"
	"github.com/adanyl0v/go-todo-stories/internal/option"
	"github.com/adanyl0v/go-todo-stories/internal/result"
)

type UserRepository struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewUserRepository(logger zerolog.Logger, pgPool *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		logger: logger,
		pgPool: pgPool,
	}
}

// Create relies on the unique index on username, so concurrent registrations
// of the same name fail with models.CodeUsernameAlreadyExists.
func (r *UserRepository) Create(ctx context.Context, user *models.User) result.Result[*models.User, *models.Error] {
	const insertUserQuery = `
INSERT INTO users (id,
                   username,
                   password,
                   created_at,
                   updated_at)
VALUES ($1, $2, $3, $4, $5)
`
	_, err := r.pgPool.Exec(
		ctx,
		insertUserQuery,
		user.ID,
		user.Username,
		user.Password,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			r.logger.Error().
				Str("username", user.Username).
				Msg("user with this username already exists")
			return result.Err[*models.User](models.NewError(models.CodeUsernameAlreadyExists))
		}

		r.logger.Error().
			Err(err).
			Msg("failed to insert user")
		return result.Err[*models.User](repositoryError(models.CodeUserRepositoryError, fmt.Errorf("insert user: %w", err)))
	}
	r.logger.Debug().
		Str("user_id", user.ID).
		Str("username", user.Username).
		Msg("inserted user")

	return result.Ok[*models.User, *models.Error](user.Clone())
}

func (r *UserRepository) FindByID(ctx context.Context, id string) result.Result[option.Option[*models.User], *models.Error] {
	const selectUserByIDQuery = `
SELECT id,
       username,
       password,
       created_at,
       updated_at
FROM users
WHERE id = $1
`
	return r.selectOne(ctx, selectUserByIDQuery, "user_id", id)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) result.Result[option.Option[*models.User], *models.Error] {
	const selectUserByUsernameQuery = `
SELECT id,
       username,
       password,
       created_at,
       updated_at
FROM users
WHERE username = $1
`
	return r.selectOne(ctx, selectUserByUsernameQuery, "username", username)
}

func (r *UserRepository) selectOne(ctx context.Context, query, key, value string) result.Result[option.Option[*models.User], *models.Error] {
	user := &models.User{}
	err := r.pgPool.QueryRow(ctx, query, value).Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().
				Str(key, value).
				Msg("user not found")
			return result.Ok[option.Option[*models.User], *models.Error](option.None[*models.User]())
		}

		r.logger.Error().
			Err(err).
			Str(key, value).
			Msg("failed to select user")
		return result.Err[option.Option[*models.User]](repositoryError(models.CodeUserRepositoryError, fmt.Errorf("select user: %w", err)))
	}
	r.logger.Debug().
		Str("user_id", user.ID).
		Msg("selected user")

	return result.Ok[option.Option[*models.User], *models.Error](option.Some(user))
}
