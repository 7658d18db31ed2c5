package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-todo-stories/internal/option"
)

func TestNewUser(t *testing.T) {
	user := NewUser(UserInput{Username: "alice", Password: "hash"}).Expect("failed to create user")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)
}

func TestNewUser_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input UserInput
		field string
	}{
		{name: "missing username", input: UserInput{Password: "hash"}, field: "username"},
		{name: "missing password", input: UserInput{Username: "alice"}, field: "password"},
		{name: "both missing reports username", input: UserInput{}, field: "username"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewUser(tt.input)
			require.True(t, res.IsErr())

			err := res.UnwrapErr()
			assert.Equal(t, CodeUserError, err.Code)
			require.Len(t, err.Errors, 1)
			assert.Equal(t, tt.field, err.Errors[0].Field)
			assert.Equal(t, "'"+tt.field+"' is required", err.Errors[0].Message)
		})
	}
}

func TestUser_Assign(t *testing.T) {
	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	setNow(t, created)
	user := NewUser(UserInput{Username: "alice", Password: "hash"}).Expect("failed to create user")

	setNow(t, created.Add(time.Minute))
	got := user.Assign(UserPatch{Password: option.Some("new-hash")}).Expect("failed to assign")

	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "new-hash", got.Password)
	assert.Equal(t, created.Add(time.Minute), got.UpdatedAt)

	res := user.Assign(UserPatch{Username: option.Some("")})
	assert.True(t, res.IsErr())
}
