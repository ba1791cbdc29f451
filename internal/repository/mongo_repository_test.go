package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"

	"github.com/maynagashev/nextflix/internal/models"
	"github.com/maynagashev/nextflix/internal/repository"
)

func userDoc(id primitive.ObjectID, username string, watchlist bson.A) bson.D {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: "Alice"},
		{Key: "username", Value: username},
		{Key: "email", Value: username + "@x.com"},
		{Key: "password", Value: "hash"},
		{Key: "favorites", Value: bson.A{}},
		{Key: "watchlist", Value: watchlist},
		{Key: "createdAt", Value: now},
		{Key: "updatedAt", Value: now},
	}
}

func movieDoc(id primitive.ObjectID, title string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "title", Value: title},
		{Key: "year", Value: int32(2010)},
		{Key: "genre", Value: "Sci-Fi"},
		{Key: "runtime", Value: "148 min"},
		{Key: "rating", Value: 8.8},
		{Key: "cast", Value: bson.A{"Leo"}},
		{Key: "plot", Value: "Dreams"},
		{Key: "posterUrl", Value: "http://p/1.jpg"},
	}
}

func TestMongoUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Создание пользователя", func(mt *mtest.T) {
		repo := repository.NewMongoUserRepository(mt.DB, zap.NewNop())
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		user, err := repo.CreateUser(mt.Context(), &models.User{Name: "Alice", Username: "alice", Email: "a@x.com"})
		require.NoError(mt, err)
		assert.Len(mt, user.ID, 24)
		assert.Equal(mt, []string{}, user.Favorites)
		assert.Equal(mt, []string{}, user.Watchlist)
	})

	mt.Run("Дубликат пользователя", func(mt *mtest.T) {
		repo := repository.NewMongoUserRepository(mt.DB, zap.NewNop())
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "duplicate key error",
		}))

		_, err := repo.CreateUser(mt.Context(), &models.User{Username: "alice", Email: "a@x.com"})
		assert.ErrorIs(mt, err, repository.ErrUserExists)
	})

	mt.Run("Поиск по ID", func(mt *mtest.T) {
		repo := repository.NewMongoUserRepository(mt.DB, zap.NewNop())
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.users", mtest.FirstBatch,
			userDoc(id, "alice", bson.A{"m1"})))

		user, err := repo.GetUserByID(mt.Context(), id.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, id.Hex(), user.ID)
		assert.Equal(mt, "hash", user.PasswordHash)
		assert.Equal(mt, []string{"m1"}, user.Watchlist)
	})

	mt.Run("Пользователь не найден", func(mt *mtest.T) {
		repo := repository.NewMongoUserRepository(mt.DB, zap.NewNop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.users", mtest.FirstBatch))

		_, err := repo.GetUserByUsername(mt.Context(), "ghost")
		assert.ErrorIs(mt, err, repository.ErrUserNotFound)
	})

	mt.Run("Некорректный ID считается отсутствующим", func(mt *mtest.T) {
		repo := repository.NewMongoUserRepository(mt.DB, zap.NewNop())

		_, err := repo.GetUserByID(mt.Context(), "not-an-object-id")
		assert.ErrorIs(mt, err, repository.ErrUserNotFound)
	})

	mt.Run("Проверка существования", func(mt *mtest.T) {
		repo := repository.NewMongoUserRepository(mt.DB, zap.NewNop())
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "db.users", mtest.FirstBatch, bson.D{{Key: "_id", Value: primitive.NewObjectID()}}),
			mtest.CreateCursorResponse(0, "db.users", mtest.FirstBatch),
		)

		exists, err := repo.ExistsByUsernameOrEmail(mt.Context(), "alice", "a@x.com")
		require.NoError(mt, err)
		assert.True(mt, exists)

		exists, err = repo.ExistsByUsernameOrEmail(mt.Context(), "bob", "b@x.com")
		require.NoError(mt, err)
		assert.False(mt, exists)
	})

	mt.Run("Обновление списка", func(mt *mtest.T) {
		repo := repository.NewMongoUserRepository(mt.DB, zap.NewNop())
		id := primitive.NewObjectID()
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: userDoc(id, "alice", bson.A{"m1", "m2"})},
		})

		user, err := repo.SetList(mt.Context(), id.Hex(), models.ListWatchlist, []string{"m1", "m2"})
		require.NoError(mt, err)
		assert.Equal(mt, []string{"m1", "m2"}, user.Watchlist)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "findAndModify", started.CommandName)
	})

	mt.Run("Обновление списка отсутствующего пользователя", func(mt *mtest.T) {
		repo := repository.NewMongoUserRepository(mt.DB, zap.NewNop())
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: nil}})

		_, err := repo.SetList(mt.Context(), primitive.NewObjectID().Hex(), models.ListFavorites, []string{"m1"})
		assert.ErrorIs(mt, err, repository.ErrUserNotFound)
	})

	mt.Run("Список пользователей", func(mt *mtest.T) {
		repo := repository.NewMongoUserRepository(mt.DB, zap.NewNop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.users", mtest.FirstBatch,
			userDoc(primitive.NewObjectID(), "alice", bson.A{}),
			userDoc(primitive.NewObjectID(), "bob", bson.A{}),
		))

		users, err := repo.ListUsers(mt.Context())
		require.NoError(mt, err)
		require.Len(mt, users, 2)
		assert.Equal(mt, "bob", users[1].Username)
	})
}

func TestMongoMovieRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Каталог", func(mt *mtest.T) {
		repo := repository.NewMongoMovieRepository(mt.DB, zap.NewNop())
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.movies", mtest.FirstBatch, movieDoc(id, "Inception")))

		movies, err := repo.ListMovies(mt.Context())
		require.NoError(mt, err)
		require.Len(mt, movies, 1)
		assert.Equal(mt, models.Movie{
			ID: id.Hex(), Title: "Inception", Year: 2010, Genre: "Sci-Fi", Runtime: "148 min", Rating: 8.8,
			Cast: []string{"Leo"}, Plot: "Dreams", PosterURL: "http://p/1.jpg",
		}, movies[0])
	})

	mt.Run("Выборка по ID пропускает некорректные", func(mt *mtest.T) {
		repo := repository.NewMongoMovieRepository(mt.DB, zap.NewNop())
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.movies", mtest.FirstBatch, movieDoc(id, "Inception")))

		movies, err := repo.GetMoviesByIDs(mt.Context(), []string{"bad-id", id.Hex()})
		require.NoError(mt, err)
		require.Len(mt, movies, 1)
		assert.Equal(mt, id.Hex(), movies[0].ID)
	})

	mt.Run("Только некорректные ID не обращаются к базе", func(mt *mtest.T) {
		repo := repository.NewMongoMovieRepository(mt.DB, zap.NewNop())

		movies, err := repo.GetMoviesByIDs(mt.Context(), []string{"bad-id"})
		require.NoError(mt, err)
		assert.Empty(mt, movies)
		assert.Nil(mt, mt.GetStartedEvent())
	})

	mt.Run("Дубликат названия", func(mt *mtest.T) {
		repo := repository.NewMongoMovieRepository(mt.DB, zap.NewNop())
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "duplicate key error",
		}))

		_, err := repo.CreateMovie(mt.Context(), &models.Movie{Title: "Inception"})
		assert.ErrorIs(mt, err, repository.ErrMovieTitleTaken)
	})

	mt.Run("Удаление", func(mt *mtest.T) {
		repo := repository.NewMongoMovieRepository(mt.DB, zap.NewNop())
		id := primitive.NewObjectID()
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: movieDoc(id, "Inception")}})

		deleted, err := repo.DeleteMovie(mt.Context(), id.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, "Inception", deleted.Title)
	})

	mt.Run("Удаление отсутствующего фильма", func(mt *mtest.T) {
		repo := repository.NewMongoMovieRepository(mt.DB, zap.NewNop())
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: nil}})

		_, err := repo.DeleteMovie(mt.Context(), primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, repository.ErrMovieNotFound)
	})
}
