package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/maynagashev/nextflix/internal/storage"
)

// MaxPosterBytes - максимальный размер загружаемого постера.
const MaxPosterBytes = 5 << 20

const posterKeyPrefix = "posters/"

// Допустимые типы изображений постеров.
var posterTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

// PosterService загружает изображения постеров в объектное хранилище.
type PosterService interface {
	// Upload сохраняет изображение и возвращает его публичный адрес.
	Upload(ctx context.Context, r io.Reader) (string, error)
}

type posterService struct {
	files storage.FileStorage
	log   *zap.Logger
}

// NewPosterService создает сервис постеров. files может быть nil: тогда загрузка отключена.
func NewPosterService(files storage.FileStorage, log *zap.Logger) PosterService {
	return &posterService{files: files, log: log.Named("posters")}
}

func (s *posterService) Upload(ctx context.Context, r io.Reader) (string, error) {
	if s.files == nil {
		return "", ErrPostersDisabled
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxPosterBytes+1))
	if err != nil {
		return "", fmt.Errorf("чтение постера: %w", err)
	}
	if len(data) == 0 {
		return "", ErrEmptyPoster
	}
	if len(data) > MaxPosterBytes {
		return "", ErrPosterTooLarge
	}

	mt := mimetype.Detect(data)
	if !mimetype.EqualsAny(mt.String(), posterTypes...) {
		s.log.Info("Отклонен постер неподдерживаемого типа", zap.String("type", mt.String()))
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPoster, mt.String())
	}

	key := posterKeyPrefix + uuid.NewString() + mt.Extension()
	if err = s.files.UploadFile(ctx, key, bytes.NewReader(data), int64(len(data)), mt.String()); err != nil {
		return "", fmt.Errorf("загрузка постера: %w", err)
	}

	url := s.files.PublicURL(key)
	s.log.Info("Постер загружен", zap.String("key", key), zap.Int("size", len(data)))
	return url, nil
}

// Ошибки загрузки постеров.
var (
	ErrPostersDisabled   = errors.New("хранилище постеров не настроено")
	ErrEmptyPoster       = errors.New("пустой файл постера")
	ErrPosterTooLarge    = errors.New("постер превышает допустимый размер")
	ErrUnsupportedPoster = errors.New("неподдерживаемый тип изображения")
)
