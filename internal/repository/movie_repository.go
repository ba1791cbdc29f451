package repository

import (
	"context"
	"errors"

	"github.com/maynagashev/nextflix/internal/models"
)

// MovieRepository определяет методы для работы с каталогом фильмов.
type MovieRepository interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	GetMovieByID(ctx context.Context, id string) (*models.Movie, error)
	// GetMoviesByIDs возвращает найденные фильмы в произвольном порядке.
	// Несуществующие и некорректные ID пропускаются без ошибки.
	GetMoviesByIDs(ctx context.Context, ids []string) ([]models.Movie, error)
	// CreateMovie возвращает ErrMovieTitleTaken, если фильм с таким названием уже есть.
	CreateMovie(ctx context.Context, movie *models.Movie) (*models.Movie, error)
	// DeleteMovie удаляет фильм и возвращает удаленную запись.
	DeleteMovie(ctx context.Context, id string) (*models.Movie, error)
}

// Кастомные ошибки репозитория фильмов.
var (
	ErrMovieNotFound   = errors.New("фильм не найден")
	ErrMovieTitleTaken = errors.New("фильм с таким названием уже существует")
)

func normalizeMovie(m *models.Movie) {
	if m.Cast == nil {
		m.Cast = []string{}
	}
}
