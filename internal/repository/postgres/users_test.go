package postgres

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-todo-stories/internal/models"
)

func TestUserRepository(t *testing.T) {
	repo := NewUserRepository(zerolog.Nop(), testPool(t))
	ctx := context.Background()

	alice := models.NewUser(models.UserInput{Username: "alice", Password: "hash"}).Expect("new user")
	require.True(t, repo.Create(ctx, alice).IsOk())

	byName := repo.FindByUsername(ctx, "alice").Unwrap()
	require.True(t, byName.IsSome())
	assert.Equal(t, alice.ID, byName.Unwrap().ID)
	assert.Equal(t, "hash", byName.Unwrap().Password)

	byID := repo.FindByID(ctx, alice.ID).Unwrap()
	require.True(t, byID.IsSome())
	assert.Equal(t, "alice", byID.Unwrap().Username)

	assert.True(t, repo.FindByUsername(ctx, "bob").Unwrap().IsNone())
	assert.True(t, repo.FindByID(ctx, "missing").Unwrap().IsNone())

	again := models.NewUser(models.UserInput{Username: "alice", Password: "other"}).Expect("new user")
	res := repo.Create(ctx, again)
	require.True(t, res.IsErr())
	assert.Equal(t, models.CodeUsernameAlreadyExists, res.UnwrapErr().Code)
}
