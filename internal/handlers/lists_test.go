package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/maynagashev/nextflix/internal/handlers"
	"github.com/maynagashev/nextflix/internal/middleware"
	"github.com/maynagashev/nextflix/internal/models"
	"github.com/maynagashev/nextflix/internal/services"
)

// setupListRouter подставляет userID в контекст вместо проверки токена.
func setupListRouter(h *handlers.ListHandler, userID string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if userID != "" {
				req = req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey, userID))
			}
			next.ServeHTTP(w, req)
		})
	})
	r.Post("/movies/watch/{id}", h.ToggleWatchlist)
	r.Post("/movies/fav/{id}", h.ToggleFavorite)
	r.Get("/watchlist", h.Watchlist)
	r.Get("/favorites", h.Favorites)
	return r
}

func TestListHandler_Toggle(t *testing.T) {
	user := &models.User{ID: "u1", Favorites: []string{}, Watchlist: []string{"m1"}}

	tests := []struct {
		name           string
		path           string
		list           models.ListName
		result         services.ToggleResult
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "Добавление в watchlist",
			path:           "/movies/watch/m1",
			list:           models.ListWatchlist,
			result:         services.ToggleResult{List: models.ListWatchlist, Action: services.ActionAdded, User: user},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Movie added to watchlist successfully",
		},
		{
			name:           "Удаление из избранного",
			path:           "/movies/fav/m1",
			list:           models.ListFavorites,
			result:         services.ToggleResult{List: models.ListFavorites, Action: services.ActionRemoved, User: user},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Movie removed from favorites",
		},
		{
			name:           "Пользователь удален",
			path:           "/movies/fav/m1",
			list:           models.ListFavorites,
			err:            services.ErrUserNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Ошибка хранилища",
			path:           "/movies/watch/m1",
			list:           models.ListWatchlist,
			err:            errors.New("db down"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockMembershipService)
			svc.On("Toggle", mock.Anything, "u1", tt.list, "m1").Return(tt.result, tt.err).Once()

			rr := httptest.NewRecorder()
			setupListRouter(handlers.NewListHandler(svc, zap.NewNop()), "u1").
				ServeHTTP(rr, httptest.NewRequest(http.MethodPost, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp models.ToggleResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedMsg, resp.Message)
				require.NotNil(t, resp.User)
				assert.Equal(t, "u1", resp.User.ID)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestListHandler_List(t *testing.T) {
	t.Run("Фильмы списка в порядке добавления", func(t *testing.T) {
		svc := new(MockMembershipService)
		svc.On("ListMovies", mock.Anything, "u1", models.ListWatchlist).
			Return([]models.Movie{{ID: "m2"}, {ID: "m1"}}, nil).Once()

		rr := httptest.NewRecorder()
		setupListRouter(handlers.NewListHandler(svc, zap.NewNop()), "u1").
			ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/watchlist", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		var movies []models.Movie
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &movies))
		require.Len(t, movies, 2)
		assert.Equal(t, "m2", movies[0].ID)
	})

	t.Run("Пустое избранное", func(t *testing.T) {
		svc := new(MockMembershipService)
		svc.On("ListMovies", mock.Anything, "u1", models.ListFavorites).Return([]models.Movie{}, nil).Once()

		rr := httptest.NewRecorder()
		setupListRouter(handlers.NewListHandler(svc, zap.NewNop()), "u1").
			ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/favorites", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("Нет пользователя в контексте", func(t *testing.T) {
		svc := new(MockMembershipService)

		rr := httptest.NewRecorder()
		setupListRouter(handlers.NewListHandler(svc, zap.NewNop()), "").
			ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/favorites", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		svc.AssertNotCalled(t, "ListMovies", mock.Anything, mock.Anything, mock.Anything)
	})
}
