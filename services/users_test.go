package services

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paju/constants"
	"paju/dto"
	"paju/errors"
	"paju/repository"
)

func TestUserService(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	s := NewUserService(UserServiceOptions{Users: store.Users})

	admin, err := s.Create(ctx, dto.CreateUserInput{Username: "admin", Password: "secret1", Role: constants.RoleAdmin})
	require.NoError(t, err)
	editor, err := s.Create(ctx, dto.CreateUserInput{Username: "cook", Password: "secret2"})
	require.NoError(t, err)
	assert.Equal(t, constants.RoleEditor, editor.Role)
	assert.True(t, editor.IsActive)

	stored, err := store.Users.GetByID(ctx, editor.ID)
	require.NoError(t, err)
	assert.True(t, CheckPassword(stored.PasswordHash, "secret2"))

	b, err := json.Marshal(editor)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "password")

	t.Run("Duplicate", func(t *testing.T) {
		_, err := s.Create(ctx, dto.CreateUserInput{Username: "cook", Password: "secret3"})
		assert.Equal(t, errors.ErrCodeUserExists, codeOf(err))
	})

	t.Run("Validation", func(t *testing.T) {
		_, err := s.Create(ctx, dto.CreateUserInput{Username: "ab", Password: "secret3"})
		assert.Error(t, err)
		_, err = s.Create(ctx, dto.CreateUserInput{Username: "abc", Password: "123"})
		assert.Error(t, err)
		_, err = s.Create(ctx, dto.CreateUserInput{Username: "abc", Password: "secret3", Role: "owner"})
		assert.Equal(t, errors.ErrCodeInvalidRole, codeOf(err))
	})

	t.Run("SelfProtection", func(t *testing.T) {
		_, err := s.Update(ctx, admin.ID, admin.ID, dto.UpdateUserInput{IsActive: ptr(false)})
		assert.Equal(t, errors.ErrCodeSelfOperation, codeOf(err))
		_, err = s.Update(ctx, admin.ID, admin.ID, dto.UpdateUserInput{Role: ptr(constants.RoleEditor)})
		assert.Equal(t, errors.ErrCodeSelfOperation, codeOf(err))
		assert.Equal(t, errors.ErrCodeSelfOperation, codeOf(s.Delete(ctx, admin.ID, admin.ID)))

		self, err := s.Update(ctx, admin.ID, admin.ID, dto.UpdateUserInput{Password: ptr("newsecret")})
		require.NoError(t, err)
		assert.Equal(t, constants.RoleAdmin, self.Role)
	})

	t.Run("UpdateOther", func(t *testing.T) {
		updated, err := s.Update(ctx, admin.ID, editor.ID, dto.UpdateUserInput{IsActive: ptr(false), Role: ptr(constants.RoleAdmin)})
		require.NoError(t, err)
		assert.False(t, updated.IsActive)
		assert.Equal(t, constants.RoleAdmin, updated.Role)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, admin.ID, editor.ID))
		err := s.Delete(ctx, admin.ID, editor.ID)
		assert.True(t, stderrors.Is(err, repository.ErrNotFound))

		users, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "admin", users[0].Username)
	})
}
