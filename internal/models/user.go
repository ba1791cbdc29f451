package models

import "time"

// User представляет пользователя приложения.
// Хеш пароля никогда не сериализуется в JSON.
type User struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Favorites    []string  `json:"favorites"`
	Watchlist    []string  `json:"watchlist"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// List возвращает список ID фильмов, соответствующий name.
func (u *User) List(name ListName) []string {
	switch name {
	case ListFavorites:
		return u.Favorites
	case ListWatchlist:
		return u.Watchlist
	default:
		return nil
	}
}

// SetList заменяет список name новым набором ID.
func (u *User) SetList(name ListName, ids []string) {
	switch name {
	case ListFavorites:
		u.Favorites = ids
	case ListWatchlist:
		u.Watchlist = ids
	}
}

// Normalize гарантирует, что списки не nil (в JSON всегда [] вместо null).
func (u *User) Normalize() {
	if u.Favorites == nil {
		u.Favorites = []string{}
	}
	if u.Watchlist == nil {
		u.Watchlist = []string{}
	}
}

// ListName - имя пользовательского списка фильмов.
type ListName string

const (
	ListFavorites ListName = "favorites"
	ListWatchlist ListName = "watchlist"
)

// Valid сообщает, является ли имя списка известным.
func (n ListName) Valid() bool {
	return n == ListFavorites || n == ListWatchlist
}

// SignupRequest представляет тело запроса на регистрацию.
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest представляет тело запроса на вход.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ToggleResponse - ответ на добавление/удаление фильма из списка.
type ToggleResponse struct {
	Message string `json:"message"`
	User    *User  `json:"user"`
}

// MessageResponse - ответ, содержащий только сообщение.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse - тело любого ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}
