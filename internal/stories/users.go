package stories

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-stories/internal/models"
	"github.com/adanyl0v/go-todo-stories/internal/option"
	"github.com/adanyl0v/go-todo-stories/internal/result"
)

type Credentials struct {
	Username string
	Password string
}

// RegisterUser creates a user with a unique username and a hashed password.
//
// The uniqueness check and the insert are two separate repository calls, so
// two concurrent registrations of the same username may both pass the check.
// Repositories backed by a unique index close that gap by failing Create with
// models.CodeUsernameAlreadyExists.
type RegisterUser struct {
	logger zerolog.Logger
	users  UserRepository
	hasher PasswordHashPort
}

func NewRegisterUser(logger zerolog.Logger, users UserRepository, hasher PasswordHashPort) *RegisterUser {
	return &RegisterUser{logger: logger, users: users, hasher: hasher}
}

func (s *RegisterUser) Execute(ctx context.Context, in *Credentials) result.Result[*models.User, *models.Error] {
	if in == nil || in.Username == "" || in.Password == "" {
		s.logger.Warn().Msg("missing credentials")
		return result.Err[*models.User](models.NewError(models.CodeMissingCredentials))
	}

	available := result.AndThen(s.users.FindByUsername(ctx, in.Username),
		func(existing option.Option[*models.User]) result.Result[string, *models.Error] {
			if existing.IsSome() {
				return result.Err[string](models.NewError(models.CodeUsernameAlreadyExists))
			}
			return result.Ok[string, *models.Error](in.Password)
		})
	hashed := result.AndThenCtx(ctx, available, s.hasher.Hash)
	user := result.AndThen(hashed, func(hash string) result.Result[*models.User, *models.Error] {
		return models.NewUser(models.UserInput{
			Username: in.Username,
			Password: hash,
		})
	})
	res := result.AndThenCtx(ctx, user, s.users.Create)
	if res.IsErr() {
		logFailure(s.logger, res.UnwrapErr(), "failed to register user", "username", in.Username)
		return res
	}

	s.logger.Info().
		Str("user_id", res.Unwrap().ID).
		Str("username", in.Username).
		Msg("registered user")
	return res
}

type LoginOutput struct {
	User  *models.User
	Token string
}

// LoginUser checks credentials and issues a token. A missing field, an
// unknown username and a wrong password all fail with the same
// models.CodeInvalidCredentials so that callers cannot tell which one it was.
type LoginUser struct {
	logger zerolog.Logger
	users  UserRepository
	tokens TokenPort
	hasher PasswordHashPort
}

func NewLoginUser(logger zerolog.Logger, users UserRepository, tokens TokenPort, hasher PasswordHashPort) *LoginUser {
	return &LoginUser{logger: logger, users: users, tokens: tokens, hasher: hasher}
}

func (s *LoginUser) Execute(ctx context.Context, in *Credentials) result.Result[LoginOutput, *models.Error] {
	if in == nil || in.Username == "" || in.Password == "" {
		s.logger.Warn().Msg("missing credentials")
		return result.Err[LoginOutput](models.NewError(models.CodeInvalidCredentials))
	}

	invalid := models.NewError(models.CodeInvalidCredentials)

	found := result.AndThen(s.users.FindByUsername(ctx, in.Username),
		func(user option.Option[*models.User]) result.Result[*models.User, *models.Error] {
			return result.OkOr(user, invalid)
		})
	verified := result.AndThenCtx(ctx, found, func(ctx context.Context, user *models.User) result.Result[*models.User, *models.Error] {
		if !s.hasher.Compare(ctx, user.Password, in.Password) {
			return result.Err[*models.User](invalid)
		}
		return result.Ok[*models.User, *models.Error](user)
	})
	res := result.AndThenCtx(ctx, verified, func(ctx context.Context, user *models.User) result.Result[LoginOutput, *models.Error] {
		return result.Map(s.tokens.Generate(ctx, user), func(token string) LoginOutput {
			return LoginOutput{User: user, Token: token}
		})
	})
	if res.IsErr() {
		logFailure(s.logger, res.UnwrapErr(), "failed to login", "username", in.Username)
		return res
	}

	s.logger.Info().
		Str("user_id", res.Unwrap().User.ID).
		Msg("logged in")
	return res
}

// GetCurrentUser resolves the user a token was issued for. Every failure,
// including a valid token for a user that no longer exists, is reported as
// models.CodeUserUnauthenticated.
type GetCurrentUser struct {
	logger zerolog.Logger
	users  UserRepository
	tokens TokenPort
}

func NewGetCurrentUser(logger zerolog.Logger, users UserRepository, tokens TokenPort) *GetCurrentUser {
	return &GetCurrentUser{logger: logger, users: users, tokens: tokens}
}

func (s *GetCurrentUser) Execute(ctx context.Context, token string) result.Result[*models.User, *models.Error] {
	unauthenticated := models.NewError(models.CodeUserUnauthenticated)
	if token == "" {
		s.logger.Debug().Msg("missing token")
		return result.Err[*models.User](unauthenticated)
	}

	userID := s.tokens.GetUserID(ctx, token)
	found := result.AndThenCtx(ctx, userID, s.users.FindByID)
	user := result.AndThen(found, func(user option.Option[*models.User]) result.Result[*models.User, *models.Error] {
		return result.OkOr(user, unauthenticated)
	})
	if user.IsErr() {
		logFailure(s.logger, user.UnwrapErr(), "failed to resolve current user")
		return result.MapErr(user, func(*models.Error) *models.Error { return unauthenticated })
	}

	s.logger.Debug().
		Str("user_id", user.Unwrap().ID).
		Msg("resolved current user")
	return user
}
