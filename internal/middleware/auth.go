package middleware

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/maynagashev/nextflix/internal/response"
)

// Тип для ключа контекста.
type contextKey string

// UserIDKey - ключ для хранения ID пользователя в контексте.
const UserIDKey contextKey = "userID"

// TokenVerifier проверяет токен сессии и возвращает ID пользователя.
type TokenVerifier interface {
	Verify(ctx context.Context, raw string) (string, error)
}

// NewAuthenticator возвращает middleware, пропускающий только запросы
// с действующей cookie сессии. Любая причина отказа (нет cookie, подпись,
// срок действия) дает одинаковый ответ 401.
func NewAuthenticator(verifier TokenVerifier, cookieName string, log *zap.Logger) func(http.Handler) http.Handler {
	log = log.Named("auth")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				log.Debug("Cookie сессии отсутствует", zap.String("path", r.URL.Path))
				response.Error(w, log, http.StatusUnauthorized, "Unauthorized")
				return
			}

			userID, err := verifier.Verify(r.Context(), cookie.Value)
			if err != nil {
				log.Debug("Невалидный токен сессии", zap.String("path", r.URL.Path), zap.Error(err))
				response.Error(w, log, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext извлекает ID пользователя из контекста запроса.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok && userID != ""
}
