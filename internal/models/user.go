package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/adanyl0v/go-todo-stories/internal/option"
	"github.com/adanyl0v/go-todo-stories/internal/result"
)

// User holds the password as a hash, never as plaintext.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserInput struct {
	ID        string
	Username  string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserPatch struct {
	Username option.Option[string]
	Password option.Option[string]
}

func NewUser(in UserInput) result.Result[*User, *Error] {
	user := &User{
		ID:        in.ID,
		Username:  in.Username,
		Password:  in.Password,
		CreatedAt: in.CreatedAt,
		UpdatedAt: in.UpdatedAt,
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = timeNow()
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = user.CreatedAt
	}
	return user.Validate()
}

// Assign applies the fields present in patch, refreshes UpdatedAt and
// validates. On Err the receiver is left modified and must not be reused.
func (u *User) Assign(patch UserPatch) result.Result[*User, *Error] {
	if username, ok := patch.Username.Get(); ok {
		u.Username = username
	}
	if password, ok := patch.Password.Get(); ok {
		u.Password = password
	}

	now := timeNow()
	if now.Before(u.CreatedAt) {
		now = u.CreatedAt
	}
	u.UpdatedAt = now

	return u.Validate()
}

func (u *User) Validate() result.Result[*User, *Error] {
	if u.Username == "" {
		return result.Err[*User](newValidationError(CodeUserError, "username", "'username' is required"))
	}
	if u.Password == "" {
		return result.Err[*User](newValidationError(CodeUserError, "password", "'password' is required"))
	}
	return result.Ok[*User, *Error](u)
}

func (u *User) Clone() *User {
	c := *u
	return &c
}
