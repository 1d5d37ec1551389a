//go:build unit

package user

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shop-api/pkg/cerror"
	"shop-api/pkg/config"
)

const (
	TestMongoDbUserName = "root"
	TestMongoDbPassword = "12345"

	TestMongoDbDatabaseName   = "shop"
	TestMongoDbUserCollection = "users"
)

func TestNewRepository(t *testing.T) {
	userRepository := NewRepository(nil, nil)

	assert.Implements(t, (*Repository)(nil), userRepository)
}

func TestRepository_InsertUser(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()
		userRepository := setupTestRepository(t, ctx)

		userId, err := userRepository.InsertUser(ctx, buildTestUserDocument())

		assert.NoError(t, err)
		assert.Equal(t, TestUserId, userId)
	})

	t.Run("when email is already taken should return bad request error", func(t *testing.T) {
		ctx := context.Background()
		userRepository := setupTestRepository(t, ctx)

		_, err := userRepository.InsertUser(ctx, buildTestUserDocument())
		assert.NoError(t, err)

		duplicate := buildTestUserDocument()
		duplicate.Id = "another-user-id"
		duplicate.Mobile = "+905559998877"
		_, err = userRepository.InsertUser(ctx, duplicate)

		var customError *cerror.CustomError
		assert.ErrorAs(t, err, &customError)
		assert.Equal(t, http.StatusBadRequest, customError.HttpStatusCode)
		assert.Equal(t, "email already in use", customError.LogMessage)
	})

	t.Run("when mobile is already taken should return bad request error", func(t *testing.T) {
		ctx := context.Background()
		userRepository := setupTestRepository(t, ctx)

		_, err := userRepository.InsertUser(ctx, buildTestUserDocument())
		assert.NoError(t, err)

		duplicate := buildTestUserDocument()
		duplicate.Id = "another-user-id"
		duplicate.Email = "another@test.com"
		_, err = userRepository.InsertUser(ctx, duplicate)

		var customError *cerror.CustomError
		assert.ErrorAs(t, err, &customError)
		assert.Equal(t, http.StatusBadRequest, customError.HttpStatusCode)
		assert.Equal(t, "mobile already in use", customError.LogMessage)
	})
}

func TestRepository_FindUserWithId(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()
		userRepository := setupTestRepository(t, ctx)

		_, err := userRepository.InsertUser(ctx, buildTestUserDocument())
		assert.NoError(t, err)

		user, err := userRepository.FindUserWithId(ctx, TestUserId)

		assert.NoError(t, err)
		assert.Equal(t, TestEmail, user.Email)
	})

	t.Run("when user does not exist should return not found error", func(t *testing.T) {
		ctx := context.Background()
		userRepository := setupTestRepository(t, ctx)

		user, err := userRepository.FindUserWithId(ctx, "unknown-user-id")

		assert.Nil(t, user)

		var customError *cerror.CustomError
		assert.ErrorAs(t, err, &customError)
		assert.Equal(t, http.StatusNotFound, customError.HttpStatusCode)
	})
}

func TestRepository_FindUserWithEmail(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()
		userRepository := setupTestRepository(t, ctx)

		_, err := userRepository.InsertUser(ctx, buildTestUserDocument())
		assert.NoError(t, err)

		user, err := userRepository.FindUserWithEmail(ctx, TestEmail)

		assert.NoError(t, err)
		assert.Equal(t, TestUserId, user.Id)
	})

	t.Run("when user does not exist should return not found error", func(t *testing.T) {
		ctx := context.Background()
		userRepository := setupTestRepository(t, ctx)

		user, err := userRepository.FindUserWithEmail(ctx, "unknown@test.com")

		assert.Nil(t, user)

		var customError *cerror.CustomError
		assert.ErrorAs(t, err, &customError)
		assert.Equal(t, http.StatusNotFound, customError.HttpStatusCode)
	})
}

func TestRepository_RefreshTokenLifecycle(t *testing.T) {
	t.Run("set find and clear refresh token", func(t *testing.T) {
		ctx := context.Background()
		userRepository := setupTestRepository(t, ctx)

		_, err := userRepository.InsertUser(ctx, buildTestUserDocument())
		assert.NoError(t, err)

		expiresAt := time.Now().UTC().Add(72 * time.Hour).Unix()
		err = userRepository.SetRefreshToken(ctx, TestUserId, TestRefreshToken, expiresAt)
		assert.NoError(t, err)

		user, err := userRepository.FindUserWithRefreshToken(ctx, TestRefreshToken)
		assert.NoError(t, err)
		assert.Equal(t, TestUserId, user.Id)

		err = userRepository.ClearRefreshToken(ctx, TestRefreshToken)
		assert.NoError(t, err)

		user, err = userRepository.FindUserWithRefreshToken(ctx, TestRefreshToken)
		assert.Nil(t, user)
		assert.Error(t, err)
	})

	t.Run("when user does not exist should return not found error", func(t *testing.T) {
		ctx := context.Background()
		userRepository := setupTestRepository(t, ctx)

		err := userRepository.SetRefreshToken(ctx, "unknown-user-id", TestRefreshToken, 0)

		var customError *cerror.CustomError
		assert.ErrorAs(t, err, &customError)
		assert.Equal(t, http.StatusNotFound, customError.HttpStatusCode)
	})

	t.Run("clear refresh token is idempotent", func(t *testing.T) {
		ctx := context.Background()
		userRepository := setupTestRepository(t, ctx)

		err := userRepository.ClearRefreshToken(ctx, "unknown-refresh-token")

		assert.NoError(t, err)
	})
}

func TestRepository_FindAllUsers(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()
		userRepository := setupTestRepository(t, ctx)

		_, err := userRepository.InsertUser(ctx, buildTestUserDocument())
		assert.NoError(t, err)

		second := buildTestUserDocument()
		second.Id = "another-user-id"
		second.Email = "another@test.com"
		second.Mobile = "+905559998877"
		_, err = userRepository.InsertUser(ctx, second)
		assert.NoError(t, err)

		users, err := userRepository.FindAllUsers(ctx)

		assert.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("when collection is empty should return empty slice", func(t *testing.T) {
		ctx := context.Background()
		userRepository := setupTestRepository(t, ctx)

		users, err := userRepository.FindAllUsers(ctx)

		assert.NoError(t, err)
		assert.Empty(t, users)
	})
}

func TestRepository_UpdateUserById(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()
		userRepository := setupTestRepository(t, ctx)

		_, err := userRepository.InsertUser(ctx, buildTestUserDocument())
		assert.NoError(t, err)

		user, err := userRepository.UpdateUserById(ctx, TestUserId, &UpdateUserPayload{
			Id:        TestUserId,
			Firstname: "Updated",
			Role:      RoleAdmin,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Updated", user.Firstname)
		assert.Equal(t, RoleAdmin, user.Role)
		assert.Equal(t, TestLastname, user.Lastname)
	})

	t.Run("when user does not exist should return not found error", func(t *testing.T) {
		ctx := context.Background()
		userRepository := setupTestRepository(t, ctx)

		user, err := userRepository.UpdateUserById(ctx, "unknown-user-id", &UpdateUserPayload{
			Id:        "unknown-user-id",
			Firstname: "Updated",
		})

		assert.Nil(t, user)

		var customError *cerror.CustomError
		assert.ErrorAs(t, err, &customError)
		assert.Equal(t, http.StatusNotFound, customError.HttpStatusCode)
	})
}

func TestRepository_DeleteUserById(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()
		userRepository := setupTestRepository(t, ctx)

		_, err := userRepository.InsertUser(ctx, buildTestUserDocument())
		assert.NoError(t, err)

		err = userRepository.DeleteUserById(ctx, TestUserId)
		assert.NoError(t, err)

		user, err := userRepository.FindUserWithId(ctx, TestUserId)
		assert.Nil(t, user)
		assert.Error(t, err)
	})

	t.Run("when user does not exist should return not found error", func(t *testing.T) {
		ctx := context.Background()
		userRepository := setupTestRepository(t, ctx)

		err := userRepository.DeleteUserById(ctx, "unknown-user-id")

		var customError *cerror.CustomError
		assert.ErrorAs(t, err, &customError)
		assert.Equal(t, http.StatusNotFound, customError.HttpStatusCode)
	})
}

func TestRepository_SetBlockStatus(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()
		userRepository := setupTestRepository(t, ctx)

		_, err := userRepository.InsertUser(ctx, buildTestUserDocument())
		assert.NoError(t, err)

		user, err := userRepository.SetBlockStatus(ctx, TestUserId, true)
		assert.NoError(t, err)
		assert.True(t, user.IsBlocked)

		user, err = userRepository.SetBlockStatus(ctx, TestUserId, false)
		assert.NoError(t, err)
		assert.False(t, user.IsBlocked)
	})
}

func TestRepository_ClearExpiredRefreshTokens(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()
		userRepository := setupTestRepository(t, ctx)

		_, err := userRepository.InsertUser(ctx, buildTestUserDocument())
		assert.NoError(t, err)

		expiredAt := time.Now().UTC().Add(-time.Hour).Unix()
		err = userRepository.SetRefreshToken(ctx, TestUserId, TestRefreshToken, expiredAt)
		assert.NoError(t, err)

		cleared, err := userRepository.ClearExpiredRefreshTokens(ctx, time.Now().UTC().Unix())

		assert.NoError(t, err)
		assert.Equal(t, int64(1), cleared)

		user, err := userRepository.FindUserWithRefreshToken(ctx, TestRefreshToken)
		assert.Nil(t, user)
		assert.Error(t, err)
	})
}

func buildTestUserDocument() *UserDocument {
	now := time.Now().UTC().Unix()
	return &UserDocument{
		Id:        TestUserId,
		Firstname: TestFirstname,
		Lastname:  TestLastname,
		Email:     TestEmail,
		Mobile:    TestMobile,
		Password:  TestPassword,
		Role:      RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func setupTestRepository(t *testing.T, ctx context.Context) Repository {
	container := setupMongoDbContainer(t, ctx)
	mongodbUri, err := container.Endpoint(ctx, "mongodb")
	if err != nil {
		t.Fatal(fmt.Errorf("failed to get endpoint: %w", err))
	}

	credentials := options.Client().
		ApplyURI(mongodbUri).
		SetAuth(options.Credential{
			Username: TestMongoDbUserName,
			Password: TestMongoDbPassword,
		})

	mongoClient, err := mongo.Connect(ctx, credentials)
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		_ = mongoClient.Disconnect(ctx)
	})

	userRepository := NewRepository(mongoClient, &config.MongodbConfig{
		Uri:      mongodbUri,
		Username: TestMongoDbUserName,
		Password: TestMongoDbPassword,
		Database: TestMongoDbDatabaseName,
		Collections: map[string]string{
			config.MongodbUserCollection: TestMongoDbUserCollection,
		},
	})

	err = userRepository.EnsureIndexes(ctx)
	if err != nil {
		t.Fatal(err)
	}

	return userRepository
}

func setupMongoDbContainer(t *testing.T, ctx context.Context) testcontainers.Container {
	req := testcontainers.ContainerRequest{
		Image: "mongo",
		Env: map[string]string{
			"MONGO_INITDB_ROOT_USERNAME": TestMongoDbUserName,
			"MONGO_INITDB_ROOT_PASSWORD": TestMongoDbPassword,
		},
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor: wait.ForAll(
			wait.ForLog("Waiting for connections"),
			wait.ForListeningPort("27017/tcp"),
		),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	})

	return container
}
