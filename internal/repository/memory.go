package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/maynagashev/nextflix/internal/models"
)

// MemoryUserRepository - потокобезопасная реализация UserRepository в памяти.
// Используется для локальной разработки и тестов.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*models.User
	now   func() time.Time
}

// NewMemoryUserRepository создает пустой репозиторий пользователей в памяти.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]*models.User), now: time.Now}
}

var _ UserRepository = (*MemoryUserRepository)(nil)

func (r *MemoryUserRepository) CreateUser(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, ErrUserExists
		}
	}

	now := r.now().UTC()
	created := copyUser(user)
	created.ID = ulid.Make().String()
	created.CreatedAt = now
	created.UpdatedAt = now
	r.users[created.ID] = created
	return copyUser(created), nil
}

func (r *MemoryUserRepository) GetUserByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return copyUser(u), nil
}

func (r *MemoryUserRepository) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return copyUser(u), nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *MemoryUserRepository) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryUserRepository) ListUsers(_ context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *copyUser(u))
	}
	// ULID монотонно растет, сортировка по ID дает порядок создания
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *MemoryUserRepository) SetList(
	_ context.Context,
	id string,
	list models.ListName,
	ids []string,
) (*models.User, error) {
	if _, err := listColumn(list); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	u.SetList(list, append([]string{}, ids...))
	u.UpdatedAt = r.now().UTC()
	return copyUser(u), nil
}

func copyUser(u *models.User) *models.User {
	c := *u
	c.Favorites = append([]string{}, u.Favorites...)
	c.Watchlist = append([]string{}, u.Watchlist...)
	return &c
}

// MemoryMovieRepository - реализация MovieRepository в памяти.
type MemoryMovieRepository struct {
	mu     sync.RWMutex
	movies map[string]*models.Movie
}

// NewMemoryMovieRepository создает пустой каталог в памяти.
func NewMemoryMovieRepository() *MemoryMovieRepository {
	return &MemoryMovieRepository{movies: make(map[string]*models.Movie)}
}

var _ MovieRepository = (*MemoryMovieRepository)(nil)

func (r *MemoryMovieRepository) ListMovies(_ context.Context) ([]models.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedLocked(func(*models.Movie) bool { return true }), nil
}

func (r *MemoryMovieRepository) GetMovieByID(_ context.Context, id string) (*models.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.movies[id]
	if !ok {
		return nil, ErrMovieNotFound
	}
	c := copyMovie(m)
	return &c, nil
}

func (r *MemoryMovieRepository) GetMoviesByIDs(_ context.Context, ids []string) ([]models.Movie, error) {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedLocked(func(m *models.Movie) bool {
		_, ok := wanted[m.ID]
		return ok
	}), nil
}

func (r *MemoryMovieRepository) CreateMovie(_ context.Context, movie *models.Movie) (*models.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.movies {
		if m.Title == movie.Title {
			return nil, ErrMovieTitleTaken
		}
	}

	created := copyMovie(movie)
	created.ID = ulid.Make().String()
	r.movies[created.ID] = &created
	return &created, nil
}

func (r *MemoryMovieRepository) DeleteMovie(_ context.Context, id string) (*models.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.movies[id]
	if !ok {
		return nil, ErrMovieNotFound
	}
	delete(r.movies, id)
	c := copyMovie(m)
	return &c, nil
}

func (r *MemoryMovieRepository) sortedLocked(keep func(*models.Movie) bool) []models.Movie {
	movies := make([]models.Movie, 0, len(r.movies))
	for _, m := range r.movies {
		if keep(m) {
			movies = append(movies, copyMovie(m))
		}
	}
	sort.Slice(movies, func(i, j int) bool { return movies[i].ID < movies[j].ID })
	return movies
}

func copyMovie(m *models.Movie) models.Movie {
	c := *m
	c.Cast = append([]string{}, m.Cast...)
	return c
}
