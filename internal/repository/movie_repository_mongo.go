package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/maynagashev/nextflix/internal/models"
)

// movieDocument - документ коллекции movies.
type movieDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Year      int                `bson:"year"`
	Genre     string             `bson:"genre"`
	Runtime   string             `bson:"runtime"`
	Rating    float64            `bson:"rating"`
	Cast      []string           `bson:"cast"`
	Plot      string             `bson:"plot"`
	PosterURL string             `bson:"posterUrl"`
}

func (d *movieDocument) toModel() models.Movie {
	m := models.Movie{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Year:      d.Year,
		Genre:     d.Genre,
		Runtime:   d.Runtime,
		Rating:    d.Rating,
		Cast:      d.Cast,
		Plot:      d.Plot,
		PosterURL: d.PosterURL,
	}
	normalizeMovie(&m)
	return m
}

// mongoMovieRepository реализует MovieRepository для MongoDB.
type mongoMovieRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

// NewMongoMovieRepository создает репозиторий фильмов поверх коллекции movies.
func NewMongoMovieRepository(db *mongo.Database, log *zap.Logger) MovieRepository {
	return &mongoMovieRepository{
		coll: db.Collection(moviesCollection),
		log:  log.Named("repo.movies.mongo"),
	}
}

func (r *mongoMovieRepository) ListMovies(ctx context.Context) ([]models.Movie, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoMovieRepository) GetMovieByID(ctx context.Context, id string) (*models.Movie, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrMovieNotFound
	}

	var doc movieDocument
	if err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("ошибка получения фильма: %w", err)
	}
	m := doc.toModel()
	return &m, nil
}

// GetMoviesByIDs выполняет запрос $in. ID, не являющиеся ObjectID, пропускаются:
// такие ссылки не могут указывать на существующий фильм.
func (r *mongoMovieRepository) GetMoviesByIDs(ctx context.Context, ids []string) ([]models.Movie, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			r.log.Debug("Пропуск некорректного ID фильма", zap.String("id", id))
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return []models.Movie{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": oids}})
}

func (r *mongoMovieRepository) find(ctx context.Context, filter bson.M) ([]models.Movie, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка фильмов: %w", err)
	}

	var docs []movieDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("ошибка чтения списка фильмов: %w", err)
	}

	movies := make([]models.Movie, 0, len(docs))
	for i := range docs {
		movies = append(movies, docs[i].toModel())
	}
	return movies, nil
}

func (r *mongoMovieRepository) CreateMovie(ctx context.Context, movie *models.Movie) (*models.Movie, error) {
	doc := movieDocument{
		ID:        primitive.NewObjectID(),
		Title:     movie.Title,
		Year:      movie.Year,
		Genre:     movie.Genre,
		Runtime:   movie.Runtime,
		Rating:    movie.Rating,
		Cast:      nonNil(movie.Cast),
		Plot:      movie.Plot,
		PosterURL: movie.PosterURL,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrMovieTitleTaken
		}
		return nil, fmt.Errorf("ошибка добавления фильма: %w", err)
	}

	r.log.Debug("Фильм добавлен", zap.String("id", doc.ID.Hex()), zap.String("title", doc.Title))
	m := doc.toModel()
	return &m, nil
}

func (r *mongoMovieRepository) DeleteMovie(ctx context.Context, id string) (*models.Movie, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrMovieNotFound
	}

	var doc movieDocument
	if err = r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("ошибка удаления фильма: %w", err)
	}
	m := doc.toModel()
	return &m, nil
}
