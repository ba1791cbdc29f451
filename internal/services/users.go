package services

import (
	"context"
	"fmt"

	"github.com/maynagashev/nextflix/internal/models"
	"github.com/maynagashev/nextflix/internal/repository"
)

// UserService отдает список пользователей.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

type userService struct {
	users repository.UserRepository
}

// NewUserService создает сервис пользователей.
func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("получение списка пользователей: %w", err)
	}
	return users, nil
}
