package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenTTL - срок жизни сессии по умолчанию (15 дней).
const DefaultTokenTTL = 15 * 24 * time.Hour

// TokenDenylist хранит отозванные токены. Реализация опциональна:
// без нее выход из системы только удаляет cookie на клиенте.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Token - подписанный токен сессии и момент его истечения.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// sessionClaims - полезная нагрузка JWT.
type sessionClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// TokenManager выпускает и проверяет токены сессии (HS256).
type TokenManager struct {
	secret   []byte
	ttl      time.Duration
	denylist TokenDenylist
	now      func() time.Time
}

// TokenOption настраивает TokenManager.
type TokenOption func(*TokenManager)

// WithDenylist включает отзыв токенов при выходе.
func WithDenylist(d TokenDenylist) TokenOption {
	return func(m *TokenManager) { m.denylist = d }
}

// WithClock подменяет источник времени.
func WithClock(now func() time.Time) TokenOption {
	return func(m *TokenManager) { m.now = now }
}

// NewTokenManager создает менеджер токенов. Секрет обязателен.
func NewTokenManager(secret string, ttl time.Duration, opts ...TokenOption) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("секрет подписи токенов не задан")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("некорректный срок жизни токена: %s", ttl)
	}
	m := &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// TTL возвращает срок жизни выпускаемых токенов.
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// Issue выпускает токен для пользователя.
func (m *TokenManager) Issue(userID string) (Token, error) {
	if userID == "" {
		return Token{}, errors.New("нельзя выпустить токен без userID")
	}

	now := m.now()
	expiresAt := now.Add(m.ttl)
	claims := sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return Token{}, fmt.Errorf("ошибка подписи JWT: %w", err)
	}
	return Token{Value: signed, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// Verify проверяет токен и возвращает ID пользователя.
// Любая причина отказа дает одну и ту же ошибку ErrInvalidToken.
func (m *TokenManager) Verify(ctx context.Context, raw string) (string, error) {
	claims, err := m.parse(raw)
	if err != nil {
		return "", err
	}

	if m.denylist != nil {
		revoked, dErr := m.denylist.IsRevoked(ctx, claims.ID)
		if dErr != nil || revoked {
			return "", ErrInvalidToken
		}
	}
	return claims.UserID, nil
}

// Revoke отзывает токен до момента его истечения, если подключен denylist.
// Невалидный токен отзывать не нужно.
func (m *TokenManager) Revoke(ctx context.Context, raw string) error {
	if m.denylist == nil {
		return nil
	}
	claims, err := m.parse(raw)
	if err != nil {
		return nil //nolint:nilerr // невалидный токен и так не пройдет проверку
	}
	return m.denylist.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
}

func (m *TokenManager) parse(raw string) (*sessionClaims, error) {
	if raw == "" {
		return nil, ErrInvalidToken
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !token.Valid || claims.UserID == "" || claims.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ErrInvalidToken - токен отсутствует, поврежден, подписан чужим ключом, истек или отозван.
var ErrInvalidToken = errors.New("невалидный токен")
