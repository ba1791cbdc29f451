package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maynagashev/nextflix/internal/mocks"
	"github.com/maynagashev/nextflix/internal/models"
	"github.com/maynagashev/nextflix/internal/services"
)

func TestUserService_ListUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("Список пользователей", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		repo.EXPECT().ListUsers(ctx).Return([]models.User{{ID: "u1"}, {ID: "u2"}}, nil).Once()

		users, err := services.NewUserService(repo).ListUsers(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("Ошибка репозитория", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		repo.EXPECT().ListUsers(ctx).Return(nil, errors.New("db down")).Once()

		_, err := services.NewUserService(repo).ListUsers(ctx)
		assert.Error(t, err)
	})
}
