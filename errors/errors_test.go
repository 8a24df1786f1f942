package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorWrapping(t *testing.T) {
	cause := errors.New("boom")
	appErr := NewAppError(ErrCodeDBError, "could not save", cause)

	assert.Equal(t, "[DB_ERROR] could not save: boom", appErr.Error())
	assert.ErrorIs(t, appErr, cause)

	wrapped := fmt.Errorf("update hours: %w", appErr)
	assert.True(t, IsAppError(wrapped))
	assert.Equal(t, appErr, GetAppError(wrapped))
	assert.False(t, GetAppError(wrapped).IsClientError())

	assert.Nil(t, GetAppError(cause))
	assert.Equal(t, "[VALIDATION_ERROR] title is required", Validation("title is required").Error())
	assert.True(t, Validation("x").IsClientError())
}
