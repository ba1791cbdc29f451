// Package response содержит помощники для записи JSON-ответов API.
package response

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/maynagashev/nextflix/internal/models"
)

// JSON кодирует v в тело ответа с указанным статусом.
func JSON(w http.ResponseWriter, log *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil && log != nil {
		// Заголовки уже отправлены, остается только залогировать
		log.Error("Ошибка кодирования JSON ответа", zap.Error(err))
	}
}

// Error пишет ответ вида {"error": msg}.
func Error(w http.ResponseWriter, log *zap.Logger, status int, msg string) {
	JSON(w, log, status, models.ErrorResponse{Error: msg})
}

// Message пишет ответ вида {"message": msg}.
func Message(w http.ResponseWriter, log *zap.Logger, status int, msg string) {
	JSON(w, log, status, models.MessageResponse{Message: msg})
}
