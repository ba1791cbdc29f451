package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost совпадает с количеством раундов соли прежней версии сервиса.
const DefaultBcryptCost = 10

// PasswordHasher хеширует и проверяет пароли.
type PasswordHasher interface {
	// Hash возвращает соленый хеш; для одинаковых паролей хеши различаются.
	Hash(plain string) (string, error)
	// Verify сравнивает пароль с хешем за время, не зависящее от места расхождения.
	Verify(plain, digest string) bool
	// VerifyDummy выполняет ту же работу, что и Verify, с фиктивным хешем.
	// Вызывается, когда пользователь не найден, чтобы время ответа не выдавало этот факт.
	VerifyDummy(plain string)
}

// BcryptHasher реализует PasswordHasher на bcrypt.
type BcryptHasher struct {
	cost  int
	dummy []byte
}

var _ PasswordHasher = (*BcryptHasher)(nil)

// NewBcryptHasher создает хешер с заданной стоимостью.
func NewBcryptHasher(cost int) (*BcryptHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("стоимость bcrypt %d вне диапазона [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte("nextflix-timing-equalizer"), cost)
	if err != nil {
		return nil, fmt.Errorf("ошибка генерации фиктивного хеша: %w", err)
	}
	return &BcryptHasher{cost: cost, dummy: dummy}, nil
}

// Hash хеширует пароль. Пустой пароль отклоняется.
func (h *BcryptHasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", fmt.Errorf("ошибка хеширования пароля: %w", err)
	}
	return string(digest), nil
}

// Verify проверяет пароль. Пустой пароль или хеш никогда не проходят проверку.
func (h *BcryptHasher) Verify(plain, digest string) bool {
	if plain == "" || digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}

// VerifyDummy сжигает столько же времени, сколько успешная проверка существующего пользователя.
func (h *BcryptHasher) VerifyDummy(plain string) {
	_ = bcrypt.CompareHashAndPassword(h.dummy, []byte(plain))
}

// Ошибки хеширования паролей.
var (
	ErrEmptyPassword   = errors.New("пароль не может быть пустым")
	ErrPasswordTooLong = errors.New("пароль длиннее 72 байт")
)
