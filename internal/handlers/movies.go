package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/maynagashev/nextflix/internal/models"
	"github.com/maynagashev/nextflix/internal/response"
	"github.com/maynagashev/nextflix/internal/services"
)

// CatalogService определяет операции каталога, нужные обработчикам.
type CatalogService interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	GetMovie(ctx context.Context, id string) (*models.Movie, error)
	InsertMovie(ctx context.Context, movie *models.Movie) (*models.Movie, error)
	DeleteMovie(ctx context.Context, id string) ([]models.Movie, error)
}

// MovieHandler обрабатывает запросы к каталогу фильмов.
type MovieHandler struct {
	catalog  CatalogService
	validate *validator.Validate
	log      *zap.Logger
}

// NewMovieHandler создает обработчик каталога.
func NewMovieHandler(catalog CatalogService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{catalog: catalog, validate: newValidator(), log: log.Named("movie_handler")}
}

// Home отдает весь каталог.
func (h *MovieHandler) Home(w http.ResponseWriter, r *http.Request) {
	movies, err := h.catalog.ListMovies(r.Context())
	if err != nil {
		h.log.Error("Ошибка получения каталога", zap.Error(err))
		response.Error(w, h.log, http.StatusInternalServerError, msgInternalError)
		return
	}
	response.JSON(w, h.log, http.StatusOK, movies)
}

// GetMovie отдает фильм по ID.
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	movie, err := h.catalog.GetMovie(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, services.ErrMovieNotFound) {
			response.Error(w, h.log, http.StatusNotFound, "Movie not found")
			return
		}
		h.log.Error("Ошибка получения фильма", zap.Error(err))
		response.Error(w, h.log, http.StatusInternalServerError, msgInternalError)
		return
	}
	response.JSON(w, h.log, http.StatusOK, movie)
}

// Insert добавляет фильм в каталог.
func (h *MovieHandler) Insert(w http.ResponseWriter, r *http.Request) {
	var req models.InsertMovieRequest
	if err := decodeJSON(r, &req); err != nil {
		h.log.Debug("Ошибка декодирования фильма", zap.Error(err))
		response.Error(w, h.log, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Error(w, h.log, http.StatusBadRequest, validationMessage(err))
		return
	}

	movie, err := h.catalog.InsertMovie(r.Context(), req.ToMovie())
	if err != nil {
		if errors.Is(err, services.ErrMovieExists) {
			response.Error(w, h.log, http.StatusBadRequest, "Movie already exists")
			return
		}
		h.log.Error("Ошибка добавления фильма", zap.Error(err))
		response.Error(w, h.log, http.StatusInternalServerError, msgInternalError)
		return
	}
	response.JSON(w, h.log, http.StatusCreated, movie)
}

// Delete удаляет фильм и возвращает оставшийся каталог.
func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	remaining, err := h.catalog.DeleteMovie(r.Context(), chi.URLParam(r, "movieId"))
	if err != nil {
		if errors.Is(err, services.ErrMovieNotFound) {
			response.Error(w, h.log, http.StatusNotFound, "Movie not found")
			return
		}
		h.log.Error("Ошибка удаления фильма", zap.Error(err))
		response.Error(w, h.log, http.StatusInternalServerError, msgInternalError)
		return
	}
	response.JSON(w, h.log, http.StatusOK, models.DeleteMovieResponse{
		Message:   "Movie deleted successfully",
		NewMovies: remaining,
	})
}
