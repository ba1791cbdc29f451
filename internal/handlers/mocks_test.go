package handlers_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/maynagashev/nextflix/internal/models"
	"github.com/maynagashev/nextflix/internal/services"
)

// --- Mock AuthService --- //

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, req models.SignupRequest) (*models.User, services.Token, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*models.User)
	return user, args.Get(1).(services.Token), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*models.User, services.Token, error) {
	args := m.Called(ctx, username, password)
	user, _ := args.Get(0).(*models.User)
	return user, args.Get(1).(services.Token), args.Error(2)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// --- Mock CatalogService --- //

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	args := m.Called(ctx)
	movies, _ := args.Get(0).([]models.Movie)
	return movies, args.Error(1)
}

func (m *MockCatalogService) GetMovie(ctx context.Context, id string) (*models.Movie, error) {
	args := m.Called(ctx, id)
	movie, _ := args.Get(0).(*models.Movie)
	return movie, args.Error(1)
}

func (m *MockCatalogService) InsertMovie(ctx context.Context, movie *models.Movie) (*models.Movie, error) {
	args := m.Called(ctx, movie)
	created, _ := args.Get(0).(*models.Movie)
	return created, args.Error(1)
}

func (m *MockCatalogService) DeleteMovie(ctx context.Context, id string) ([]models.Movie, error) {
	args := m.Called(ctx, id)
	movies, _ := args.Get(0).([]models.Movie)
	return movies, args.Error(1)
}

// --- Mock MembershipService --- //

type MockMembershipService struct {
	mock.Mock
}

func (m *MockMembershipService) Toggle(
	ctx context.Context,
	userID string,
	list models.ListName,
	movieID string,
) (services.ToggleResult, error) {
	args := m.Called(ctx, userID, list, movieID)
	return args.Get(0).(services.ToggleResult), args.Error(1)
}

func (m *MockMembershipService) ListMovies(
	ctx context.Context,
	userID string,
	list models.ListName,
) ([]models.Movie, error) {
	args := m.Called(ctx, userID, list)
	movies, _ := args.Get(0).([]models.Movie)
	return movies, args.Error(1)
}

// --- Mock PosterService --- //

type MockPosterService struct {
	mock.Mock
}

func (m *MockPosterService) Upload(ctx context.Context, r io.Reader) (string, error) {
	data, _ := io.ReadAll(r)
	args := m.Called(ctx, data)
	return args.String(0), args.Error(1)
}

// --- Mock UserService --- //

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}
