package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/maynagashev/nextflix/internal/models"
	"github.com/maynagashev/nextflix/internal/repository"
	"github.com/maynagashev/nextflix/internal/storage"
)

// CatalogService предоставляет доступ к каталогу фильмов.
type CatalogService interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	GetMovie(ctx context.Context, id string) (*models.Movie, error)
	InsertMovie(ctx context.Context, movie *models.Movie) (*models.Movie, error)
	// DeleteMovie удаляет фильм и возвращает оставшийся каталог.
	DeleteMovie(ctx context.Context, id string) ([]models.Movie, error)
	// HydrateMovies преобразует список ID в записи фильмов в том же порядке.
	// ID удаленных фильмов молча отбрасываются.
	HydrateMovies(ctx context.Context, ids []string) ([]models.Movie, error)
}

type catalogService struct {
	movies  repository.MovieRepository
	posters storage.FileStorage // nil, если хранилище постеров не настроено
	log     *zap.Logger
}

// NewCatalogService создает сервис каталога. posters может быть nil.
func NewCatalogService(
	movies repository.MovieRepository,
	posters storage.FileStorage,
	log *zap.Logger,
) CatalogService {
	return &catalogService{movies: movies, posters: posters, log: log.Named("catalog")}
}

func (s *catalogService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	movies, err := s.movies.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("получение каталога: %w", err)
	}
	return movies, nil
}

func (s *catalogService) GetMovie(ctx context.Context, id string) (*models.Movie, error) {
	movie, err := s.movies.GetMovieByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("получение фильма: %w", err)
	}
	return movie, nil
}

func (s *catalogService) InsertMovie(ctx context.Context, movie *models.Movie) (*models.Movie, error) {
	created, err := s.movies.CreateMovie(ctx, movie)
	if err != nil {
		if errors.Is(err, repository.ErrMovieTitleTaken) {
			return nil, ErrMovieExists
		}
		return nil, fmt.Errorf("добавление фильма: %w", err)
	}
	s.log.Info("Фильм добавлен в каталог", zap.String("id", created.ID), zap.String("title", created.Title))
	return created, nil
}

func (s *catalogService) DeleteMovie(ctx context.Context, id string) ([]models.Movie, error) {
	deleted, err := s.movies.DeleteMovie(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("удаление фильма: %w", err)
	}
	s.log.Info("Фильм удален из каталога", zap.String("id", deleted.ID), zap.String("title", deleted.Title))

	s.removePoster(ctx, deleted.PosterURL)

	remaining, err := s.movies.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("получение каталога после удаления: %w", err)
	}
	return remaining, nil
}

// removePoster удаляет постер из нашего бакета. Ошибка только логируется:
// фильм уже удален, и осиротевший объект не мешает работе.
func (s *catalogService) removePoster(ctx context.Context, posterURL string) {
	if s.posters == nil || posterURL == "" {
		return
	}
	key, ok := s.posters.ObjectKeyFromURL(posterURL)
	if !ok {
		return
	}
	if err := s.posters.DeleteFile(ctx, key); err != nil {
		s.log.Warn("Не удалось удалить постер", zap.String("key", key), zap.Error(err))
	}
}

func (s *catalogService) HydrateMovies(ctx context.Context, ids []string) ([]models.Movie, error) {
	if len(ids) == 0 {
		return []models.Movie{}, nil
	}

	order := make(map[string]int, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, seen := order[id]; seen {
			continue
		}
		order[id] = len(unique)
		unique = append(unique, id)
	}

	found, err := s.movies.GetMoviesByIDs(ctx, unique)
	if err != nil {
		return nil, fmt.Errorf("гидратация списка фильмов: %w", err)
	}

	slots := make([]*models.Movie, len(unique))
	for i := range found {
		if pos, ok := order[found[i].ID]; ok {
			slots[pos] = &found[i]
		}
	}

	movies := make([]models.Movie, 0, len(found))
	for _, m := range slots {
		if m != nil {
			movies = append(movies, *m)
		}
	}
	return movies, nil
}

// Ошибки каталога.
var (
	ErrMovieNotFound = errors.New("фильм не найден")
	ErrMovieExists   = errors.New("фильм уже существует")
)
