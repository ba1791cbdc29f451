package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/maynagashev/nextflix/internal/models"
	"github.com/maynagashev/nextflix/internal/repository"
)

// AuthService определяет интерфейс для сервиса аутентификации.
type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (*models.User, Token, error)
	Login(ctx context.Context, username, password string) (*models.User, Token, error)
	Logout(ctx context.Context, token string) error
}

// Убедимся, что authService удовлетворяет интерфейсу AuthService.
var _ AuthService = (*authService)(nil)

type authService struct {
	users  repository.UserRepository
	hasher PasswordHasher
	tokens *TokenManager
	log    *zap.Logger
}

// NewAuthService создает новый экземпляр сервиса аутентификации.
func NewAuthService(
	users repository.UserRepository,
	hasher PasswordHasher,
	tokens *TokenManager,
	log *zap.Logger,
) AuthService {
	return &authService{users: users, hasher: hasher, tokens: tokens, log: log.Named("auth")}
}

// Signup регистрирует пользователя и выпускает токен сессии.
func (s *authService) Signup(ctx context.Context, req models.SignupRequest) (*models.User, Token, error) {
	exists, err := s.users.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, Token{}, fmt.Errorf("проверка уникальности пользователя: %w", err)
	}
	if exists {
		s.log.Info("Попытка регистрации с занятым именем или email", zap.String("username", req.Username))
		return nil, Token{}, ErrUserExists
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, Token{}, fmt.Errorf("хеширование пароля: %w", err)
	}

	user, err := s.users.CreateUser(ctx, &models.User{
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: digest,
		Favorites:    []string{},
		Watchlist:    []string{},
	})
	if err != nil {
		// Гонка двух регистраций ловится уникальными индексами хранилища
		if errors.Is(err, repository.ErrUserExists) {
			return nil, Token{}, ErrUserExists
		}
		return nil, Token{}, fmt.Errorf("создание пользователя: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, Token{}, fmt.Errorf("выпуск токена: %w", err)
	}

	s.log.Info("Пользователь зарегистрирован", zap.String("id", user.ID), zap.String("username", user.Username))
	return user, token, nil
}

// Login проверяет учетные данные. Неизвестный пользователь и неверный пароль
// неразличимы ни по ошибке, ни по времени ответа.
func (s *authService) Login(ctx context.Context, username, password string) (*models.User, Token, error) {
	if username == "" || password == "" {
		return nil, Token{}, ErrInvalidCredentials
	}

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.hasher.VerifyDummy(password)
			s.log.Info("Неудачная попытка входа", zap.String("username", username))
			return nil, Token{}, ErrInvalidCredentials
		}
		return nil, Token{}, fmt.Errorf("поиск пользователя: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.log.Info("Неудачная попытка входа", zap.String("username", username))
		return nil, Token{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, Token{}, fmt.Errorf("выпуск токена: %w", err)
	}

	s.log.Info("Пользователь вошел", zap.String("id", user.ID))
	return user, token, nil
}

// Logout отзывает токен, если отзыв включен. Без denylist токен остается
// валидным до истечения срока, клиент лишь теряет cookie.
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.tokens.Revoke(ctx, token); err != nil {
		return fmt.Errorf("отзыв токена: %w", err)
	}
	return nil
}

// Кастомные ошибки сервиса.
var (
	ErrInvalidCredentials = errors.New("неверное имя пользователя или пароль")
	ErrUserExists         = errors.New("пользователь уже существует")
)
