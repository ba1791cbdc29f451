package handlers

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"

	"go.uber.org/zap"

	"github.com/maynagashev/nextflix/internal/models"
	"github.com/maynagashev/nextflix/internal/response"
	"github.com/maynagashev/nextflix/internal/services"
)

const posterFormField = "poster"

// PosterService загружает постеры.
type PosterService interface {
	Upload(ctx context.Context, r io.Reader) (string, error)
}

// PosterHandler обрабатывает загрузку постеров.
type PosterHandler struct {
	service PosterService
	log     *zap.Logger
}

// NewPosterHandler создает обработчик постеров.
func NewPosterHandler(s PosterService, log *zap.Logger) *PosterHandler {
	return &PosterHandler{service: s, log: log.Named("poster_handler")}
}

// Upload принимает изображение из multipart-поля "poster" или из тела запроса целиком.
func (h *PosterHandler) Upload(w http.ResponseWriter, r *http.Request) {
	body := io.Reader(r.Body)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		file, _, err := r.FormFile(posterFormField)
		if err != nil {
			h.log.Debug("Поле постера не найдено в форме", zap.Error(err))
			response.Error(w, h.log, http.StatusBadRequest, "poster file is required")
			return
		}
		defer file.Close()
		body = file
	}

	url, err := h.service.Upload(r.Context(), body)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPostersDisabled):
			response.Error(w, h.log, http.StatusServiceUnavailable, "Poster storage is not configured")
		case errors.Is(err, services.ErrEmptyPoster):
			response.Error(w, h.log, http.StatusBadRequest, "poster file is required")
		case errors.Is(err, services.ErrPosterTooLarge):
			response.Error(w, h.log, http.StatusRequestEntityTooLarge, "Poster is too large")
		case errors.Is(err, services.ErrUnsupportedPoster):
			response.Error(w, h.log, http.StatusUnsupportedMediaType, "Unsupported poster type")
		default:
			h.log.Error("Ошибка загрузки постера", zap.Error(err))
			response.Error(w, h.log, http.StatusInternalServerError, msgInternalError)
		}
		return
	}
	response.JSON(w, h.log, http.StatusCreated, models.PosterResponse{PosterURL: url})
}
