package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/maynagashev/nextflix/internal/models"
)

// Коды ошибок PostgreSQL.
const (
	pgUniqueViolationCode = "23505"
)

const userColumns = `id, name, username, email, password_hash, favorites, watchlist, created_at, updated_at`

// userRow - представление строки таблицы users.
type userRow struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Username     string         `db:"username"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	Favorites    pq.StringArray `db:"favorites"`
	Watchlist    pq.StringArray `db:"watchlist"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (r *userRow) toModel() *models.User {
	u := &models.User{
		ID:           r.ID,
		Name:         r.Name,
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Favorites:    []string(r.Favorites),
		Watchlist:    []string(r.Watchlist),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	u.Normalize()
	return u
}

// postgresUserRepository реализует UserRepository для PostgreSQL.
type postgresUserRepository struct {
	db  *sqlx.DB
	log *zap.Logger
	now func() time.Time
}

// NewPostgresUserRepository создает новый экземпляр репозитория пользователей для PostgreSQL.
func NewPostgresUserRepository(db *sqlx.DB, log *zap.Logger) UserRepository {
	return &postgresUserRepository{db: db, log: log.Named("repo.users.pg"), now: time.Now}
}

// CreateUser создает нового пользователя в базе данных.
func (r *postgresUserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	now := r.now().UTC()
	created := *user
	created.ID = ulid.Make().String()
	created.CreatedAt = now
	created.UpdatedAt = now
	created.Normalize()

	query := `INSERT INTO users (` + userColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query,
		created.ID, created.Name, created.Username, created.Email, created.PasswordHash,
		pq.StringArray(created.Favorites), pq.StringArray(created.Watchlist),
		created.CreatedAt, created.UpdatedAt,
	)
	if err != nil {
		// Проверяем на ошибку нарушения уникальности (duplicate key)
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			r.log.Debug("Пользователь уже существует", zap.String("username", user.Username))
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("ошибка выполнения запроса на создание пользователя: %w", err)
	}

	r.log.Debug("Пользователь создан", zap.String("id", created.ID), zap.String("username", created.Username))
	return &created, nil
}

// GetUserByID находит пользователя по ID.
func (r *postgresUserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetUserByUsername находит пользователя по его имени.
func (r *postgresUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.getOne(ctx, query, username)
}

func (r *postgresUserRepository) getOne(ctx context.Context, query string, arg string) (*models.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("ошибка выполнения запроса на получение пользователя: %w", err)
	}
	return row.toModel(), nil
}

// ExistsByUsernameOrEmail проверяет, занят ли username или email.
func (r *postgresUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1 OR email = $2)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, username, email); err != nil {
		return false, fmt.Errorf("ошибка проверки существования пользователя: %w", err)
	}
	return exists, nil
}

// ListUsers возвращает всех пользователей в порядке регистрации.
func (r *postgresUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at, id`
	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("ошибка получения списка пользователей: %w", err)
	}

	users := make([]models.User, 0, len(rows))
	for i := range rows {
		users = append(users, *rows[i].toModel())
	}
	return users, nil
}

// SetList перезаписывает список пользователя одним UPDATE.
func (r *postgresUserRepository) SetList(
	ctx context.Context,
	id string,
	list models.ListName,
	ids []string,
) (*models.User, error) {
	column, err := listColumn(list)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}

	query := `UPDATE users SET ` + column + ` = $1, updated_at = $2 WHERE id = $3 RETURNING ` + userColumns
	var row userRow
	if err = r.db.GetContext(ctx, &row, query, pq.StringArray(ids), r.now().UTC(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("ошибка обновления списка %s: %w", list, err)
	}
	return row.toModel(), nil
}

// listColumn возвращает имя колонки для списка. Имя колонки подставляется в SQL,
// поэтому допускаются только известные значения.
func listColumn(list models.ListName) (string, error) {
	switch list {
	case models.ListFavorites:
		return "favorites", nil
	case models.ListWatchlist:
		return "watchlist", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownList, list)
	}
}
