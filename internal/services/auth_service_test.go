package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/maynagashev/nextflix/internal/mocks"
	"github.com/maynagashev/nextflix/internal/models"
	"github.com/maynagashev/nextflix/internal/repository"
	"github.com/maynagashev/nextflix/internal/services"
)

func newTestAuthService(t *testing.T) (services.AuthService, *mocks.UserRepository, *services.BcryptHasher, *services.TokenManager) {
	t.Helper()
	repo := mocks.NewUserRepository(t)
	hasher, err := services.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)
	tokens, err := services.NewTokenManager(testSecret, time.Hour)
	require.NoError(t, err)
	return services.NewAuthService(repo, hasher, tokens, zap.NewNop()), repo, hasher, tokens
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()
	req := models.SignupRequest{Name: "A", Email: "a@x.com", Username: "a", Password: "secret"}

	tests := []struct {
		name          string
		mockSetup     func(repo *mocks.UserRepository)
		expectedError error
	}{
		{
			name: "Успешная регистрация",
			mockSetup: func(repo *mocks.UserRepository) {
				repo.EXPECT().ExistsByUsernameOrEmail(ctx, "a", "a@x.com").Return(false, nil).Once()
				repo.EXPECT().CreateUser(ctx, mock.AnythingOfType("*models.User")).
					RunAndReturn(func(_ context.Context, u *models.User) (*models.User, error) {
						created := *u
						created.ID = "u1"
						return &created, nil
					}).Once()
			},
		},
		{
			name: "Пользователь уже существует",
			mockSetup: func(repo *mocks.UserRepository) {
				repo.EXPECT().ExistsByUsernameOrEmail(ctx, "a", "a@x.com").Return(true, nil).Once()
			},
			expectedError: services.ErrUserExists,
		},
		{
			name: "Гонка регистраций ловится индексом",
			mockSetup: func(repo *mocks.UserRepository) {
				repo.EXPECT().ExistsByUsernameOrEmail(ctx, "a", "a@x.com").Return(false, nil).Once()
				repo.EXPECT().CreateUser(ctx, mock.Anything).Return(nil, repository.ErrUserExists).Once()
			},
			expectedError: services.ErrUserExists,
		},
		{
			name: "Ошибка репозитория",
			mockSetup: func(repo *mocks.UserRepository) {
				repo.EXPECT().ExistsByUsernameOrEmail(ctx, "a", "a@x.com").Return(false, errors.New("db down")).Once()
			},
			expectedError: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, hasher, tokens := newTestAuthService(t)
			tt.mockSetup(repo)

			user, token, err := svc.Signup(ctx, req)

			if tt.expectedError != nil {
				require.Error(t, err)
				if errors.Is(tt.expectedError, services.ErrUserExists) {
					assert.ErrorIs(t, err, services.ErrUserExists)
				} else {
					assert.Contains(t, err.Error(), tt.expectedError.Error())
				}
				assert.Nil(t, user)
				assert.Empty(t, token.Value)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "u1", user.ID)
			assert.Equal(t, []string{}, user.Favorites)
			assert.Equal(t, []string{}, user.Watchlist)
			assert.True(t, hasher.Verify("secret", user.PasswordHash), "в хранилище попадает хеш пароля")

			userID, err := tokens.Verify(ctx, token.Value)
			require.NoError(t, err)
			assert.Equal(t, "u1", userID)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		username      string
		password      string
		mockSetup     func(repo *mocks.UserRepository, digest string)
		expectedError error
	}{
		{
			name:     "Успешный вход",
			username: "a",
			password: "secret",
			mockSetup: func(repo *mocks.UserRepository, digest string) {
				repo.EXPECT().GetUserByUsername(ctx, "a").
					Return(&models.User{ID: "u1", Username: "a", PasswordHash: digest}, nil).Once()
			},
		},
		{
			name:     "Неверный пароль",
			username: "a",
			password: "wrong",
			mockSetup: func(repo *mocks.UserRepository, digest string) {
				repo.EXPECT().GetUserByUsername(ctx, "a").
					Return(&models.User{ID: "u1", Username: "a", PasswordHash: digest}, nil).Once()
			},
			expectedError: services.ErrInvalidCredentials,
		},
		{
			name:     "Неизвестный пользователь",
			username: "ghost",
			password: "secret",
			mockSetup: func(repo *mocks.UserRepository, _ string) {
				repo.EXPECT().GetUserByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound).Once()
			},
			expectedError: services.ErrInvalidCredentials,
		},
		{
			name:          "Пустые учетные данные",
			username:      "",
			password:      "",
			mockSetup:     func(*mocks.UserRepository, string) {},
			expectedError: services.ErrInvalidCredentials,
		},
		{
			name:     "Ошибка репозитория",
			username: "a",
			password: "secret",
			mockSetup: func(repo *mocks.UserRepository, _ string) {
				repo.EXPECT().GetUserByUsername(ctx, "a").Return(nil, errors.New("db down")).Once()
			},
			expectedError: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, hasher, tokens := newTestAuthService(t)
			digest, err := hasher.Hash("secret")
			require.NoError(t, err)
			tt.mockSetup(repo, digest)

			user, token, err := svc.Login(ctx, tt.username, tt.password)

			if tt.expectedError != nil {
				require.Error(t, err)
				if errors.Is(tt.expectedError, services.ErrInvalidCredentials) {
					assert.ErrorIs(t, err, services.ErrInvalidCredentials)
				} else {
					assert.Contains(t, err.Error(), tt.expectedError.Error())
					assert.NotErrorIs(t, err, services.ErrInvalidCredentials)
				}
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "u1", user.ID)
			userID, err := tokens.Verify(ctx, token.Value)
			require.NoError(t, err)
			assert.Equal(t, "u1", userID)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	svc, _, _, tokens := newTestAuthService(t)

	// Без denylist выход не требует обращения к хранилищам
	assert.NoError(t, svc.Logout(ctx, ""))

	token, err := tokens.Issue("u1")
	require.NoError(t, err)
	assert.NoError(t, svc.Logout(ctx, token.Value))
}
