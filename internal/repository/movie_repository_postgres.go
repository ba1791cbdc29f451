package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/maynagashev/nextflix/internal/models"
)

const movieColumns = `id, title, year, genre, runtime, rating, cast_members, plot, poster_url`

type movieRow struct {
	ID        string         `db:"id"`
	Title     string         `db:"title"`
	Year      int            `db:"year"`
	Genre     string         `db:"genre"`
	Runtime   string         `db:"runtime"`
	Rating    float64        `db:"rating"`
	Cast      pq.StringArray `db:"cast_members"`
	Plot      string         `db:"plot"`
	PosterURL string         `db:"poster_url"`
}

func (r *movieRow) toModel() models.Movie {
	m := models.Movie{
		ID:        r.ID,
		Title:     r.Title,
		Year:      r.Year,
		Genre:     r.Genre,
		Runtime:   r.Runtime,
		Rating:    r.Rating,
		Cast:      []string(r.Cast),
		Plot:      r.Plot,
		PosterURL: r.PosterURL,
	}
	normalizeMovie(&m)
	return m
}

// postgresMovieRepository реализует MovieRepository для PostgreSQL.
type postgresMovieRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

// NewPostgresMovieRepository создает репозиторий фильмов для PostgreSQL.
func NewPostgresMovieRepository(db *sqlx.DB, log *zap.Logger) MovieRepository {
	return &postgresMovieRepository{db: db, log: log.Named("repo.movies.pg")}
}

func (r *postgresMovieRepository) ListMovies(ctx context.Context) ([]models.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies ORDER BY id`
	return r.selectMovies(ctx, query)
}

func (r *postgresMovieRepository) GetMovieByID(ctx context.Context, id string) (*models.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`
	var row movieRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("ошибка получения фильма: %w", err)
	}
	m := row.toModel()
	return &m, nil
}

func (r *postgresMovieRepository) GetMoviesByIDs(ctx context.Context, ids []string) ([]models.Movie, error) {
	if len(ids) == 0 {
		return []models.Movie{}, nil
	}
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = ANY($1)`
	return r.selectMovies(ctx, query, pq.StringArray(ids))
}

func (r *postgresMovieRepository) selectMovies(ctx context.Context, query string, args ...any) ([]models.Movie, error) {
	var rows []movieRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("ошибка получения списка фильмов: %w", err)
	}
	movies := make([]models.Movie, 0, len(rows))
	for i := range rows {
		movies = append(movies, rows[i].toModel())
	}
	return movies, nil
}

func (r *postgresMovieRepository) CreateMovie(ctx context.Context, movie *models.Movie) (*models.Movie, error) {
	created := *movie
	created.ID = ulid.Make().String()
	normalizeMovie(&created)

	query := `INSERT INTO movies (` + movieColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query,
		created.ID, created.Title, created.Year, created.Genre, created.Runtime,
		created.Rating, pq.StringArray(created.Cast), created.Plot, created.PosterURL,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			return nil, ErrMovieTitleTaken
		}
		return nil, fmt.Errorf("ошибка добавления фильма: %w", err)
	}

	r.log.Debug("Фильм добавлен", zap.String("id", created.ID), zap.String("title", created.Title))
	return &created, nil
}

func (r *postgresMovieRepository) DeleteMovie(ctx context.Context, id string) (*models.Movie, error) {
	query := `DELETE FROM movies WHERE id = $1 RETURNING ` + movieColumns
	var row movieRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("ошибка удаления фильма: %w", err)
	}
	m := row.toModel()
	return &m, nil
}
