package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/maynagashev/nextflix/internal/models"
	"github.com/maynagashev/nextflix/internal/response"
)

// UserService отдает список пользователей.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// UserHandler обрабатывает запросы к списку пользователей.
type UserHandler struct {
	service UserService
	log     *zap.Logger
}

// NewUserHandler создает обработчик пользователей.
func NewUserHandler(s UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{service: s, log: log.Named("user_handler")}
}

// List отдает всех пользователей без хешей паролей.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		h.log.Error("Ошибка получения пользователей", zap.Error(err))
		response.Error(w, h.log, http.StatusInternalServerError, msgInternalError)
		return
	}
	response.JSON(w, h.log, http.StatusOK, users)
}
