package services_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/maynagashev/nextflix/internal/services"
)

func TestNewBcryptHasher(t *testing.T) {
	tests := []struct {
		name    string
		cost    int
		wantErr bool
	}{
		{name: "Минимальная стоимость", cost: bcrypt.MinCost},
		{name: "Стоимость по умолчанию", cost: services.DefaultBcryptCost},
		{name: "Слишком низкая стоимость", cost: bcrypt.MinCost - 1, wantErr: true},
		{name: "Слишком высокая стоимость", cost: bcrypt.MaxCost + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := services.NewBcryptHasher(tt.cost)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, h)
		})
	}
}

func TestBcryptHasher(t *testing.T) {
	h, err := services.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("Хеш проверяется исходным паролем", func(t *testing.T) {
		digest, err := h.Hash("secret")
		require.NoError(t, err)
		assert.NotEqual(t, "secret", digest)
		assert.True(t, h.Verify("secret", digest))
		assert.False(t, h.Verify("Secret", digest))
	})

	t.Run("Соль делает хеши различными", func(t *testing.T) {
		d1, err := h.Hash("secret")
		require.NoError(t, err)
		d2, err := h.Hash("secret")
		require.NoError(t, err)
		assert.NotEqual(t, d1, d2)
	})

	t.Run("Пустой пароль", func(t *testing.T) {
		_, err := h.Hash("")
		assert.ErrorIs(t, err, services.ErrEmptyPassword)

		digest, err := h.Hash("secret")
		require.NoError(t, err)
		assert.False(t, h.Verify("", digest))
	})

	t.Run("Пустой или поврежденный хеш", func(t *testing.T) {
		assert.False(t, h.Verify("secret", ""))
		assert.False(t, h.Verify("secret", "not-a-bcrypt-hash"))
	})

	t.Run("Пароль длиннее 72 байт", func(t *testing.T) {
		_, err := h.Hash(strings.Repeat("a", 73))
		assert.ErrorIs(t, err, services.ErrPasswordTooLong)
	})

	t.Run("Фиктивная проверка не паникует", func(t *testing.T) {
		assert.NotPanics(t, func() { h.VerifyDummy("anything") })
	})
}
