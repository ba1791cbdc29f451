package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// FileStorage определяет интерфейс для взаимодействия с объектным хранилищем.
type FileStorage interface {
	UploadFile(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) error
	DeleteFile(ctx context.Context, objectKey string) error
	// PublicURL возвращает адрес, по которому объект доступен клиентам.
	PublicURL(objectKey string) string
	// ObjectKeyFromURL выполняет обратное преобразование. ok=false, если URL указывает не в наш бакет.
	ObjectKeyFromURL(url string) (key string, ok bool)
}

// MinioClient реализует FileStorage для MinIO.
type MinioClient struct {
	client     *minio.Client
	bucketName string
	publicURL  string
	log        *zap.Logger
}

// MinioConfig содержит параметры для подключения к MinIO.
type MinioConfig struct {
	Endpoint        string // Адрес MinIO (например, "localhost:9000")
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
	BucketName      string
	Region          string
	// PublicURL - базовый адрес для ссылок на постеры (например, CDN перед MinIO).
	// Если пуст, используется адрес эндпоинта.
	PublicURL string
}

// NewMinioClient создает новый клиент MinIO и при необходимости создает бакет.
func NewMinioClient(ctx context.Context, cfg MinioConfig, log *zap.Logger) (*MinioClient, error) {
	log = log.Named("minio")
	log.Info("Инициализация клиента MinIO", zap.String("endpoint", cfg.Endpoint))

	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации клиента MinIO: %w", err)
	}

	exists, err := minioClient.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("ошибка проверки существования бакета '%s': %w", cfg.BucketName, err)
	}
	if !exists {
		log.Info("Бакет не найден, создаем", zap.String("bucket", cfg.BucketName))
		err = minioClient.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{Region: cfg.Region})
		if err != nil {
			return nil, fmt.Errorf("ошибка создания бакета '%s': %w", cfg.BucketName, err)
		}
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicURL = scheme + "://" + cfg.Endpoint
	}

	log.Info("Клиент MinIO инициализирован", zap.String("bucket", cfg.BucketName))
	return &MinioClient{
		client:     minioClient,
		bucketName: cfg.BucketName,
		publicURL:  strings.TrimRight(publicURL, "/"),
		log:        log,
	}, nil
}

// UploadFile загружает файл в MinIO.
func (c *MinioClient) UploadFile(
	ctx context.Context,
	objectKey string,
	reader io.Reader,
	size int64,
	contentType string,
) error {
	opts := minio.PutObjectOptions{ContentType: contentType}

	uploadInfo, err := c.client.PutObject(ctx, c.bucketName, objectKey, reader, size, opts)
	if err != nil {
		return fmt.Errorf("ошибка загрузки файла в MinIO: %w", err)
	}

	c.log.Debug("Файл загружен",
		zap.String("key", objectKey), zap.Int64("size", uploadInfo.Size), zap.String("etag", uploadInfo.ETag))
	return nil
}

// DeleteFile удаляет объект. Отсутствие объекта ошибкой не считается.
func (c *MinioClient) DeleteFile(ctx context.Context, objectKey string) error {
	err := c.client.RemoveObject(ctx, c.bucketName, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		var minioErr minio.ErrorResponse
		if errors.As(err, &minioErr) && minioErr.Code == "NoSuchKey" {
			return nil
		}
		return fmt.Errorf("ошибка удаления файла из MinIO: %w", err)
	}
	c.log.Debug("Файл удален", zap.String("key", objectKey))
	return nil
}

// PublicURL строит адрес объекта в формате path-style: <base>/<bucket>/<key>.
func (c *MinioClient) PublicURL(objectKey string) string {
	return c.publicURL + "/" + c.bucketName + "/" + objectKey
}

// ObjectKeyFromURL извлекает ключ объекта из адреса, выданного PublicURL.
func (c *MinioClient) ObjectKeyFromURL(url string) (string, bool) {
	return objectKeyFromURL(c.publicURL, c.bucketName, url)
}

func objectKeyFromURL(base, bucket, url string) (string, bool) {
	prefix := base + "/" + bucket + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, prefix)
	if key == "" {
		return "", false
	}
	return key, true
}
