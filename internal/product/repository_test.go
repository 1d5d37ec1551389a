//go:build unit

package product

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

	TestMongoDbDatabaseName      = "shop"
	TestMongoDbProductCollection = "products"
)

func TestNewRepository(t *testing.T) {
	productRepository := NewRepository(nil, nil)

	assert.Implements(t, (*Repository)(nil), productRepository)
}

func TestRepository_InsertProduct(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()
		productRepository := setupTestRepository(t, ctx)

		productId, err := productRepository.InsertProduct(ctx, buildTestProductDocument())

		assert.NoError(t, err)
		assert.Equal(t, TestProductId, productId)
	})

	t.Run("when slug is already taken should return bad request error", func(t *testing.T) {
		ctx := context.Background()
		productRepository := setupTestRepository(t, ctx)

		_, err := productRepository.InsertProduct(ctx, buildTestProductDocument())
		assert.NoError(t, err)

		duplicate := buildTestProductDocument()
		duplicate.Id = "another-product-id"
		_, err = productRepository.InsertProduct(ctx, duplicate)

		var customError *cerror.CustomError
		assert.ErrorAs(t, err, &customError)
		assert.Equal(t, http.StatusBadRequest, customError.HttpStatusCode)
	})
}

func TestRepository_FindProductWithId(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()
		productRepository := setupTestRepository(t, ctx)

		_, err := productRepository.InsertProduct(ctx, buildTestProductDocument())
		assert.NoError(t, err)

		product, err := productRepository.FindProductWithId(ctx, TestProductId)

		assert.NoError(t, err)
		assert.Equal(t, TestProductTitle, product.Title)
	})

	t.Run("when product does not exist should return not found error", func(t *testing.T) {
		ctx := context.Background()
		productRepository := setupTestRepository(t, ctx)

		product, err := productRepository.FindProductWithId(ctx, "unknown-product-id")

		assert.Nil(t, product)

		var customError *cerror.CustomError
		assert.ErrorAs(t, err, &customError)
		assert.Equal(t, http.StatusNotFound, customError.HttpStatusCode)
	})
}

func TestRepository_FindProducts(t *testing.T) {
	seedProducts := func(t *testing.T, ctx context.Context, productRepository Repository) {
		cheap := buildTestProductDocument()
		cheap.Id = "cheap-product-id"
		cheap.Slug = "cheap-product"
		cheap.Price = 10
		cheap.Category = "accessories"
		_, err := productRepository.InsertProduct(ctx, cheap)
		assert.NoError(t, err)

		expensive := buildTestProductDocument()
		expensive.Id = "expensive-product-id"
		expensive.Slug = "expensive-product"
		expensive.Price = 200
		_, err = productRepository.InsertProduct(ctx, expensive)
		assert.NoError(t, err)
	}

	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()
		productRepository := setupTestRepository(t, ctx)
		seedProducts(t, ctx, productRepository)

		products, total, err := productRepository.FindProducts(ctx, &ListFilter{
			Page:  1,
			Limit: 20,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, products, 2)
	})

	t.Run("should filter by category", func(t *testing.T) {
		ctx := context.Background()
		productRepository := setupTestRepository(t, ctx)
		seedProducts(t, ctx, productRepository)

		products, total, err := productRepository.FindProducts(ctx, &ListFilter{
			Category: "accessories",
			Page:     1,
			Limit:    20,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, "cheap-product-id", products[0].Id)
	})

	t.Run("should filter by price range", func(t *testing.T) {
		ctx := context.Background()
		productRepository := setupTestRepository(t, ctx)
		seedProducts(t, ctx, productRepository)

		products, total, err := productRepository.FindProducts(ctx, &ListFilter{
			MinPrice: 100,
			Page:     1,
			Limit:    20,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, "expensive-product-id", products[0].Id)
	})

	t.Run("should sort by price ascending", func(t *testing.T) {
		ctx := context.Background()
		productRepository := setupTestRepository(t, ctx)
		seedProducts(t, ctx, productRepository)

		products, _, err := productRepository.FindProducts(ctx, &ListFilter{
			SortBy: SortByPriceAsc,
			Page:   1,
			Limit:  20,
		})

		assert.NoError(t, err)
		assert.Equal(t, "cheap-product-id", products[0].Id)
	})

	t.Run("should paginate results", func(t *testing.T) {
		ctx := context.Background()
		productRepository := setupTestRepository(t, ctx)
		seedProducts(t, ctx, productRepository)

		products, total, err := productRepository.FindProducts(ctx, &ListFilter{
			SortBy: SortByPriceAsc,
			Page:   2,
			Limit:  1,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, products, 1)
		assert.Equal(t, "expensive-product-id", products[0].Id)
	})
}

func TestRepository_UpdateProductById(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()
		productRepository := setupTestRepository(t, ctx)

		_, err := productRepository.InsertProduct(ctx, buildTestProductDocument())
		assert.NoError(t, err)

		product, err := productRepository.UpdateProductById(ctx, TestProductId, &ProductDocument{
			Title:    "New Title",
			Slug:     "new-title",
			Quantity: 5,
		})

		assert.NoError(t, err)
		assert.Equal(t, "New Title", product.Title)
		assert.Equal(t, "new-title", product.Slug)
		assert.Equal(t, int64(5), product.Quantity)
	})

	t.Run("should not touch quantity when sentinel is negative", func(t *testing.T) {
		ctx := context.Background()
		productRepository := setupTestRepository(t, ctx)

		_, err := productRepository.InsertProduct(ctx, buildTestProductDocument())
		assert.NoError(t, err)

		product, err := productRepository.UpdateProductById(ctx, TestProductId, &ProductDocument{
			Title:    "New Title",
			Slug:     "new-title",
			Quantity: -1,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(10), product.Quantity)
	})

	t.Run("when product does not exist should return not found error", func(t *testing.T) {
		ctx := context.Background()
		productRepository := setupTestRepository(t, ctx)

		product, err := productRepository.UpdateProductById(ctx, "unknown-product-id", &ProductDocument{
			Title:    "New Title",
			Quantity: -1,
		})

		assert.Nil(t, product)

		var customError *cerror.CustomError
		assert.ErrorAs(t, err, &customError)
		assert.Equal(t, http.StatusNotFound, customError.HttpStatusCode)
	})
}

func TestRepository_DeleteProductById(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()
		productRepository := setupTestRepository(t, ctx)

		_, err := productRepository.InsertProduct(ctx, buildTestProductDocument())
		assert.NoError(t, err)

		err = productRepository.DeleteProductById(ctx, TestProductId)
		assert.NoError(t, err)

		product, err := productRepository.FindProductWithId(ctx, TestProductId)
		assert.Nil(t, product)
		assert.Error(t, err)
	})

	t.Run("when product does not exist should return not found error", func(t *testing.T) {
		ctx := context.Background()
		productRepository := setupTestRepository(t, ctx)

		err := productRepository.DeleteProductById(ctx, "unknown-product-id")

		var customError *cerror.CustomError
		assert.ErrorAs(t, err, &customError)
		assert.Equal(t, http.StatusNotFound, customError.HttpStatusCode)
	})
}

func buildTestProductDocument() *ProductDocument {
	now := time.Now().UTC().Unix()
	return &ProductDocument{
		Id:          TestProductId,
		Title:       TestProductTitle,
		Slug:        TestProductSlug,
		Description: "A wireless mouse",
		Price:       49.99,
		Category:    "electronics",
		Brand:       "Acme",
		Quantity:    10,
		CreatedAt:   now,
		UpdatedAt:   now,
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

	productRepository := NewRepository(mongoClient, &config.MongodbConfig{
		Uri:      mongodbUri,
		Username: TestMongoDbUserName,
		Password: TestMongoDbPassword,
		Database: TestMongoDbDatabaseName,
		Collections: map[string]string{
			config.MongodbProductCollection: TestMongoDbProductCollection,
		},
	})

	err = productRepository.EnsureIndexes(ctx)
	if err != nil {
		t.Fatal(err)
	}

	return productRepository
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
