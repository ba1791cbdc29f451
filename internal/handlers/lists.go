package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/maynagashev/nextflix/internal/middleware"
	"github.com/maynagashev/nextflix/internal/models"
	"github.com/maynagashev/nextflix/internal/response"
	"github.com/maynagashev/nextflix/internal/services"
)

// MembershipService определяет операции со списками пользователя.
type MembershipService interface {
	Toggle(ctx context.Context, userID string, list models.ListName, movieID string) (services.ToggleResult, error)
	ListMovies(ctx context.Context, userID string, list models.ListName) ([]models.Movie, error)
}

// ListHandler обрабатывает запросы к избранному и списку «посмотреть позже».
type ListHandler struct {
	membership MembershipService
	log        *zap.Logger
}

// NewListHandler создает обработчик списков.
func NewListHandler(m MembershipService, log *zap.Logger) *ListHandler {
	return &ListHandler{membership: m, log: log.Named("list_handler")}
}

// ToggleWatchlist добавляет или удаляет фильм из списка «посмотреть позже».
func (h *ListHandler) ToggleWatchlist(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, models.ListWatchlist)
}

// ToggleFavorite добавляет или удаляет фильм из избранного.
func (h *ListHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, models.ListFavorites)
}

// Watchlist отдает фильмы списка «посмотреть позже».
func (h *ListHandler) Watchlist(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, models.ListWatchlist)
}

// Favorites отдает избранные фильмы.
func (h *ListHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, models.ListFavorites)
}

func (h *ListHandler) toggle(w http.ResponseWriter, r *http.Request, list models.ListName) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Error(w, h.log, http.StatusUnauthorized, "Unauthorized")
		return
	}

	result, err := h.membership.Toggle(r.Context(), userID, list, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, h.log, http.StatusOK, models.ToggleResponse{
		Message: result.Message(),
		User:    result.User,
	})
}

func (h *ListHandler) list(w http.ResponseWriter, r *http.Request, list models.ListName) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Error(w, h.log, http.StatusUnauthorized, "Unauthorized")
		return
	}

	movies, err := h.membership.ListMovies(r.Context(), userID, list)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, h.log, http.StatusOK, movies)
}

func (h *ListHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		response.Error(w, h.log, http.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrEmptyMovieID):
		response.Error(w, h.log, http.StatusBadRequest, "Movie id is required")
	default:
		h.log.Error("Ошибка работы со списком", zap.Error(err))
		response.Error(w, h.log, http.StatusInternalServerError, msgInternalError)
	}
}
