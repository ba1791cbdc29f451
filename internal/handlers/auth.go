package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/maynagashev/nextflix/internal/models"
	"github.com/maynagashev/nextflix/internal/response"
	"github.com/maynagashev/nextflix/internal/services"
)

// AuthService определяет интерфейс для сервиса аутентификации.
// Это позволит нам легко подменять реализацию (например, для тестов).
type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (*models.User, services.Token, error)
	Login(ctx context.Context, username, password string) (*models.User, services.Token, error)
	Logout(ctx context.Context, token string) error
}

// CookieConfig описывает параметры cookie сессии.
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// AuthHandler обрабатывает HTTP-запросы, связанные с аутентификацией.
type AuthHandler struct {
	service  AuthService
	cookie   CookieConfig
	validate *validator.Validate
	log      *zap.Logger
}

// NewAuthHandler создает новый экземпляр AuthHandler.
func NewAuthHandler(s AuthService, cookie CookieConfig, log *zap.Logger) *AuthHandler {
	return &AuthHandler{service: s, cookie: cookie, validate: newValidator(), log: log.Named("auth_handler")}
}

// Signup обрабатывает запрос на регистрацию нового пользователя.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := decodeJSON(r, &req); err != nil {
		h.log.Debug("Ошибка декодирования запроса регистрации", zap.Error(err))
		response.Error(w, h.log, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Error(w, h.log, http.StatusBadRequest, validationMessage(err))
		return
	}

	user, token, err := h.service.Signup(r.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			response.Error(w, h.log, http.StatusBadRequest, "User already exists")
			return
		}
		// bcrypt ограничен 72 байтами, валидатор считает символы
		if errors.Is(err, services.ErrPasswordTooLong) {
			response.Error(w, h.log, http.StatusBadRequest, "password must be at most 72 bytes long")
			return
		}
		h.log.Error("Ошибка регистрации", zap.Error(err))
		response.Error(w, h.log, http.StatusInternalServerError, msgInternalError)
		return
	}

	h.setSessionCookie(w, token)
	response.JSON(w, h.log, http.StatusOK, user)
}

// Login обрабатывает запрос на вход пользователя.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.log.Debug("Ошибка декодирования запроса входа", zap.Error(err))
		response.Error(w, h.log, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Error(w, h.log, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		h.log.Error("Ошибка входа", zap.Error(err))
		response.Error(w, h.log, http.StatusInternalServerError, msgInternalError)
		return
	}

	h.setSessionCookie(w, token)
	response.JSON(w, h.log, http.StatusOK, user)
}

// Logout удаляет cookie сессии и, если включено, отзывает токен.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var raw string
	if c, err := r.Cookie(h.cookie.Name); err == nil {
		raw = c.Value
	}

	h.clearSessionCookie(w)

	if err := h.service.Logout(r.Context(), raw); err != nil {
		h.log.Error("Ошибка выхода", zap.Error(err))
		response.Error(w, h.log, http.StatusInternalServerError, msgInternalError)
		return
	}
	response.Message(w, h.log, http.StatusOK, "Logged out successfully")
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token services.Token) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    token.Value,
		Path:     "/",
		MaxAge:   int(h.cookie.TTL / time.Second),
		Expires:  token.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}
