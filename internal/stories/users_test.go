package stories

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-todo-stories/internal/models"
)

func register(t *testing.T, users *countingUsers, username, password string) *models.User {
	t.Helper()
	res := NewRegisterUser(zerolog.Nop(), users, &fakeHasher{}).Execute(context.Background(), &Credentials{
		Username: username,
		Password: password,
	})
	require.True(t, res.IsOk(), res.String())
	return res.Unwrap()
}

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a hashed password", func(t *testing.T) {
		users := newCountingUsers()
		hasher := &fakeHasher{}

		res := NewRegisterUser(zerolog.Nop(), users, hasher).Execute(ctx, &Credentials{Username: "alice", Password: "secret"})
		require.True(t, res.IsOk(), res.String())

		user := res.Unwrap()
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, fakeHashPrefix+"secret", user.Password)
		assert.Equal(t, 1, hasher.hashCalls)

		stored := users.UserRepository.FindByUsername(ctx, "alice").Unwrap()
		assert.Equal(t, user.ID, stored.Unwrap().ID)
	})

	t.Run("missing credentials", func(t *testing.T) {
		users := newCountingUsers()
		story := NewRegisterUser(zerolog.Nop(), users, &fakeHasher{})

		for _, in := range []*Credentials{nil, {}, {Username: "alice"}, {Password: "secret"}} {
			res := story.Execute(ctx, in)
			require.True(t, res.IsErr())
			assert.Equal(t, models.CodeMissingCredentials, res.UnwrapErr().Code)
		}
		assert.Empty(t, users.calls)
	})

	t.Run("username taken", func(t *testing.T) {
		users := newCountingUsers()
		register(t, users, "alice", "secret")

		hasher := &fakeHasher{}
		res := NewRegisterUser(zerolog.Nop(), users, hasher).Execute(ctx, &Credentials{Username: "alice", Password: "other"})
		require.True(t, res.IsErr())
		assert.Equal(t, models.CodeUsernameAlreadyExists, res.UnwrapErr().Code)
		assert.Zero(t, hasher.hashCalls)
		assert.Equal(t, 1, users.calls["Create"])
	})

	t.Run("repository failure on lookup", func(t *testing.T) {
		users := newCountingUsers()
		users.fail["FindByUsername"] = models.NewError(models.CodeUserRepositoryError)

		res := NewRegisterUser(zerolog.Nop(), users, &fakeHasher{}).Execute(ctx, &Credentials{Username: "a", Password: "b"})
		require.True(t, res.IsErr())
		assert.Equal(t, models.CodeUserRepositoryError, res.UnwrapErr().Code)
		assert.Zero(t, users.calls["Create"])
	})
}

func TestLoginUser(t *testing.T) {
	ctx := context.Background()
	users := newCountingUsers()
	alice := register(t, users, "alice", "secret")

	tests := []struct {
		name     string
		in       *Credentials
		wantCode models.ErrorCode
	}{
		{name: "valid", in: &Credentials{Username: "alice", Password: "secret"}},
		{name: "wrong password", in: &Credentials{Username: "alice", Password: "nope"}, wantCode: models.CodeInvalidCredentials},
		{name: "unknown user", in: &Credentials{Username: "mallory", Password: "secret"}, wantCode: models.CodeInvalidCredentials},
		{name: "empty password", in: &Credentials{Username: "alice"}, wantCode: models.CodeInvalidCredentials},
		{name: "nil input", in: nil, wantCode: models.CodeInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := &fakeTokens{}
			res := NewLoginUser(zerolog.Nop(), users, tokens, &fakeHasher{}).Execute(ctx, tt.in)

			if tt.wantCode != "" {
				require.True(t, res.IsErr())
				assert.Equal(t, tt.wantCode, res.UnwrapErr().Code)
				assert.Zero(t, tokens.generateCalls)
				return
			}

			require.True(t, res.IsOk(), res.String())
			assert.Equal(t, alice.ID, res.Unwrap().User.ID)
			assert.Equal(t, "token:"+alice.ID, res.Unwrap().Token)
			assert.Equal(t, 1, tokens.generateCalls)
		})
	}

	t.Run("repository failure propagates", func(t *testing.T) {
		broken := newCountingUsers()
		broken.fail["FindByUsername"] = models.NewError(models.CodeUserRepositoryError)

		res := NewLoginUser(zerolog.Nop(), broken, &fakeTokens{}, &fakeHasher{}).Execute(ctx, &Credentials{Username: "alice", Password: "secret"})
		require.True(t, res.IsErr())
		assert.Equal(t, models.CodeUserRepositoryError, res.UnwrapErr().Code)
	})
}

func TestGetCurrentUser(t *testing.T) {
	ctx := context.Background()
	users := newCountingUsers()
	alice := register(t, users, "alice", "secret")

	story := NewGetCurrentUser(zerolog.Nop(), users, &fakeTokens{})

	res := story.Execute(ctx, "token:"+alice.ID)
	require.True(t, res.IsOk(), res.String())
	assert.Equal(t, alice.ID, res.Unwrap().ID)

	for _, token := range []string{"", "garbage", "expired", "token:deleted-user"} {
		t.Run("unauthenticated "+token, func(t *testing.T) {
			res := story.Execute(ctx, token)
			require.True(t, res.IsErr())
			assert.Equal(t, models.CodeUserUnauthenticated, res.UnwrapErr().Code)
		})
	}

	t.Run("repository failure", func(t *testing.T) {
		broken := newCountingUsers()
		broken.fail["FindByID"] = models.NewError(models.CodeUserRepositoryError)

		res := NewGetCurrentUser(zerolog.Nop(), broken, &fakeTokens{}).Execute(ctx, "token:"+alice.ID)
		require.True(t, res.IsErr())
		assert.Equal(t, models.CodeUserUnauthenticated, res.UnwrapErr().Code)
	})
}
