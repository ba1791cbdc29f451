package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/maynagashev/nextflix/internal/models"
	"github.com/maynagashev/nextflix/internal/repository"
)

// Action - результат переключения членства фильма в списке.
type Action string

const (
	ActionAdded   Action = "added"
	ActionRemoved Action = "removed"
)

// ToggleResult описывает выполненное действие и состояние пользователя после него.
type ToggleResult struct {
	List   models.ListName
	Action Action
	User   *models.User
}

// Message возвращает текст для ответа API.
func (r ToggleResult) Message() string {
	if r.Action == ActionRemoved {
		return fmt.Sprintf("Movie removed from %s", r.List)
	}
	return fmt.Sprintf("Movie added to %s successfully", r.List)
}

// ToggleMembership удаляет id из списка, если он там есть (все вхождения, порядок
// остальных сохраняется), иначе добавляет в конец. Исходный срез не изменяется.
func ToggleMembership(ids []string, id string) ([]string, Action) {
	result := make([]string, 0, len(ids)+1)
	found := false
	for _, existing := range ids {
		if existing == id {
			found = true
			continue
		}
		result = append(result, existing)
	}
	if found {
		return result, ActionRemoved
	}
	return append(result, id), ActionAdded
}

// MembershipService управляет списками избранного и «посмотреть позже».
type MembershipService interface {
	Toggle(ctx context.Context, userID string, list models.ListName, movieID string) (ToggleResult, error)
	// ListMovies возвращает фильмы списка в порядке добавления.
	ListMovies(ctx context.Context, userID string, list models.ListName) ([]models.Movie, error)
}

type membershipService struct {
	users   repository.UserRepository
	catalog CatalogService
	log     *zap.Logger
}

// NewMembershipService создает сервис списков пользователя.
func NewMembershipService(
	users repository.UserRepository,
	catalog CatalogService,
	log *zap.Logger,
) MembershipService {
	return &membershipService{users: users, catalog: catalog, log: log.Named("membership")}
}

// Toggle выполняет чтение-изменение-запись документа пользователя.
// При конкурентных вызовах для одного пользователя побеждает последняя запись.
func (s *membershipService) Toggle(
	ctx context.Context,
	userID string,
	list models.ListName,
	movieID string,
) (ToggleResult, error) {
	if !list.Valid() {
		return ToggleResult{}, fmt.Errorf("%w: %q", ErrInvalidList, list)
	}
	if movieID == "" {
		return ToggleResult{}, ErrEmptyMovieID
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ToggleResult{}, ErrUserNotFound
		}
		return ToggleResult{}, fmt.Errorf("получение пользователя: %w", err)
	}

	ids, action := ToggleMembership(user.List(list), movieID)

	updated, err := s.users.SetList(ctx, userID, list, ids)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ToggleResult{}, ErrUserNotFound
		}
		return ToggleResult{}, fmt.Errorf("сохранение списка %s: %w", list, err)
	}

	s.log.Debug("Список обновлен",
		zap.String("user", userID), zap.String("list", string(list)),
		zap.String("movie", movieID), zap.String("action", string(action)))
	return ToggleResult{List: list, Action: action, User: updated}, nil
}

// ListMovies гидратирует список ID в полные записи фильмов.
func (s *membershipService) ListMovies(
	ctx context.Context,
	userID string,
	list models.ListName,
) ([]models.Movie, error) {
	if !list.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidList, list)
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("получение пользователя: %w", err)
	}

	return s.catalog.HydrateMovies(ctx, user.List(list))
}

// Ошибки сервиса списков.
var (
	ErrUserNotFound = errors.New("пользователь не найден")
	ErrInvalidList  = errors.New("неизвестный список")
	ErrEmptyMovieID = errors.New("не указан ID фильма")
)
