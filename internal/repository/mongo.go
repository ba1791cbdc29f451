package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Имена коллекций совпадают с теми, что создавал mongoose, чтобы работать с существующими данными.
const (
	usersCollection  = "users"
	moviesCollection = "movies"
)

const (
	mongoConnectTimeout         = 10 * time.Second
	mongoServerSelectionTimeout = 5 * time.Second
	mongoMaxPoolSize            = 100
)

// NewMongoClient подключается к MongoDB и проверяет соединение.
func NewMongoClient(ctx context.Context, uri string, log *zap.Logger) (*mongo.Client, error) {
	log.Info("Подключение к MongoDB...")

	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(mongoConnectTimeout).
		SetServerSelectionTimeout(mongoServerSelectionTimeout).
		SetMaxPoolSize(mongoMaxPoolSize)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к MongoDB: %w", err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		if dErr := client.Disconnect(ctx); dErr != nil {
			log.Warn("Ошибка отключения от MongoDB после неудачного пинга", zap.Error(dErr))
		}
		return nil, fmt.Errorf("ошибка проверки соединения с MongoDB (ping): %w", err)
	}

	log.Info("Подключение к MongoDB успешно установлено")
	return client, nil
}

// EnsureMongoIndexes создает уникальные индексы, на которые полагаются репозитории
// для обнаружения дубликатов (username, email, title).
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	unique := func(field string) mongo.IndexModel {
		return mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		}
	}

	if _, err := db.Collection(usersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		unique("username"),
		unique("email"),
	}); err != nil {
		return fmt.Errorf("ошибка создания индексов коллекции %s: %w", usersCollection, err)
	}

	if _, err := db.Collection(moviesCollection).Indexes().CreateOne(ctx, unique("title")); err != nil {
		return fmt.Errorf("ошибка создания индексов коллекции %s: %w", moviesCollection, err)
	}
	return nil
}
