package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/maynagashev/nextflix/internal/mocks"
	"github.com/maynagashev/nextflix/internal/models"
	"github.com/maynagashev/nextflix/internal/repository"
	"github.com/maynagashev/nextflix/internal/services"
)

func TestCatalogService_GetMovie(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		repoMovie     *models.Movie
		repoErr       error
		expectedError error
	}{
		{name: "Фильм найден", repoMovie: &models.Movie{ID: "m1", Title: "Inception"}},
		{name: "Фильм не найден", repoErr: repository.ErrMovieNotFound, expectedError: services.ErrMovieNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			movies := mocks.NewMovieRepository(t)
			svc := services.NewCatalogService(movies, nil, zap.NewNop())
			movies.EXPECT().GetMovieByID(ctx, "m1").Return(tt.repoMovie, tt.repoErr).Once()

			movie, err := svc.GetMovie(ctx, "m1")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.repoMovie, movie)
		})
	}
}

func TestCatalogService_InsertMovie(t *testing.T) {
	ctx := context.Background()
	input := &models.Movie{Title: "Inception"}

	t.Run("Фильм добавлен", func(t *testing.T) {
		movies := mocks.NewMovieRepository(t)
		svc := services.NewCatalogService(movies, nil, zap.NewNop())
		movies.EXPECT().CreateMovie(ctx, input).Return(&models.Movie{ID: "m1", Title: "Inception"}, nil).Once()

		created, err := svc.InsertMovie(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "m1", created.ID)
	})

	t.Run("Название занято", func(t *testing.T) {
		movies := mocks.NewMovieRepository(t)
		svc := services.NewCatalogService(movies, nil, zap.NewNop())
		movies.EXPECT().CreateMovie(ctx, input).Return(nil, repository.ErrMovieTitleTaken).Once()

		_, err := svc.InsertMovie(ctx, input)
		assert.ErrorIs(t, err, services.ErrMovieExists)
	})
}

func TestCatalogService_DeleteMovie(t *testing.T) {
	ctx := context.Background()
	remaining := []models.Movie{{ID: "m2", Title: "Matrix"}}

	t.Run("Удаление без хранилища постеров", func(t *testing.T) {
		movies := mocks.NewMovieRepository(t)
		svc := services.NewCatalogService(movies, nil, zap.NewNop())
		movies.EXPECT().DeleteMovie(ctx, "m1").
			Return(&models.Movie{ID: "m1", PosterURL: "http://cdn/p.jpg"}, nil).Once()
		movies.EXPECT().ListMovies(ctx).Return(remaining, nil).Once()

		result, err := svc.DeleteMovie(ctx, "m1")
		require.NoError(t, err)
		assert.Equal(t, remaining, result)
	})

	t.Run("Постер из нашего бакета удаляется", func(t *testing.T) {
		movies := mocks.NewMovieRepository(t)
		files := mocks.NewFileStorage(t)
		svc := services.NewCatalogService(movies, files, zap.NewNop())

		movies.EXPECT().DeleteMovie(ctx, "m1").
			Return(&models.Movie{ID: "m1", PosterURL: "http://minio/posters/posters/a.jpg"}, nil).Once()
		files.EXPECT().ObjectKeyFromURL("http://minio/posters/posters/a.jpg").Return("posters/a.jpg", true).Once()
		files.EXPECT().DeleteFile(ctx, "posters/a.jpg").Return(nil).Once()
		movies.EXPECT().ListMovies(ctx).Return(remaining, nil).Once()

		_, err := svc.DeleteMovie(ctx, "m1")
		require.NoError(t, err)
	})

	t.Run("Ошибка удаления постера не мешает удалению фильма", func(t *testing.T) {
		movies := mocks.NewMovieRepository(t)
		files := mocks.NewFileStorage(t)
		svc := services.NewCatalogService(movies, files, zap.NewNop())

		movies.EXPECT().DeleteMovie(ctx, "m1").
			Return(&models.Movie{ID: "m1", PosterURL: "http://minio/posters/posters/a.jpg"}, nil).Once()
		files.EXPECT().ObjectKeyFromURL("http://minio/posters/posters/a.jpg").Return("posters/a.jpg", true).Once()
		files.EXPECT().DeleteFile(ctx, "posters/a.jpg").Return(errors.New("minio down")).Once()
		movies.EXPECT().ListMovies(ctx).Return(remaining, nil).Once()

		result, err := svc.DeleteMovie(ctx, "m1")
		require.NoError(t, err)
		assert.Equal(t, remaining, result)
	})

	t.Run("Внешний постер не трогаем", func(t *testing.T) {
		movies := mocks.NewMovieRepository(t)
		files := mocks.NewFileStorage(t)
		svc := services.NewCatalogService(movies, files, zap.NewNop())

		movies.EXPECT().DeleteMovie(ctx, "m1").
			Return(&models.Movie{ID: "m1", PosterURL: "https://res.cloudinary.com/x.jpg"}, nil).Once()
		files.EXPECT().ObjectKeyFromURL("https://res.cloudinary.com/x.jpg").Return("", false).Once()
		movies.EXPECT().ListMovies(ctx).Return(remaining, nil).Once()

		_, err := svc.DeleteMovie(ctx, "m1")
		require.NoError(t, err)
	})

	t.Run("Фильм не найден", func(t *testing.T) {
		movies := mocks.NewMovieRepository(t)
		svc := services.NewCatalogService(movies, nil, zap.NewNop())
		movies.EXPECT().DeleteMovie(ctx, "nope").Return(nil, repository.ErrMovieNotFound).Once()

		_, err := svc.DeleteMovie(ctx, "nope")
		assert.ErrorIs(t, err, services.ErrMovieNotFound)
	})
}

func TestCatalogService_HydrateMovies(t *testing.T) {
	ctx := context.Background()

	t.Run("Дубликаты запрашиваются один раз", func(t *testing.T) {
		movies := mocks.NewMovieRepository(t)
		svc := services.NewCatalogService(movies, nil, zap.NewNop())
		movies.EXPECT().GetMoviesByIDs(ctx, []string{"m1", "m2"}).
			Return([]models.Movie{{ID: "m2"}, {ID: "m1"}}, nil).Once()

		result, err := svc.HydrateMovies(ctx, []string{"m1", "m2", "m1"})
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "m1", result[0].ID)
		assert.Equal(t, "m2", result[1].ID)
	})

	t.Run("Все фильмы удалены", func(t *testing.T) {
		movies := mocks.NewMovieRepository(t)
		svc := services.NewCatalogService(movies, nil, zap.NewNop())
		movies.EXPECT().GetMoviesByIDs(ctx, []string{"gone"}).Return([]models.Movie{}, nil).Once()

		result, err := svc.HydrateMovies(ctx, []string{"gone"})
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}
