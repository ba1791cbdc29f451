package repository

import (
	"context"
	"errors"

	"github.com/maynagashev/nextflix/internal/models"
)

// UserRepository определяет методы для работы с данными пользователей в хранилище.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя, заполняя ID и временные метки.
	// Возвращает ErrUserExists при нарушении уникальности username/email.
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	// ExistsByUsernameOrEmail сообщает, занят ли username или email.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	// SetList перезаписывает один список пользователя одной операцией записи
	// и возвращает обновленного пользователя.
	SetList(ctx context.Context, id string, list models.ListName, ids []string) (*models.User, error)
}

// Кастомные ошибки репозитория.
var (
	ErrUserNotFound = errors.New("пользователь не найден")
	ErrUserExists   = errors.New("пользователь с таким именем или email уже существует")
	ErrUnknownList  = errors.New("неизвестный список")
)
