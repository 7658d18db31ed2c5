package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	assert.Equal(t, "TaskNotFound", NewError(CodeTaskNotFound).Error())
	assert.Equal(t, "TaskRepositoryError: connection refused",
		NewErrorf(CodeTaskRepositoryError, "connection refused").Error())
	assert.Equal(t, "TaskError: 'title' is required",
		newValidationError(CodeTaskError, "title", "'title' is required").Error())
}

func TestError_Is(t *testing.T) {
	err := fmt.Errorf("delete: %w", NewErrorf(CodeUserIsNotOwner, "task t1"))

	assert.True(t, errors.Is(err, NewError(CodeUserIsNotOwner)))
	assert.False(t, errors.Is(err, NewError(CodeTaskNotFound)))
}
