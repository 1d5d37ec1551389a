package product

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"shop-api/pkg/cerror"
	"shop-api/pkg/config"
)

type Repository interface {
	EnsureIndexes(ctx context.Context) error
	InsertProduct(ctx context.Context, product *ProductDocument) (string, error)
	FindProductWithId(ctx context.Context, productId string) (*ProductDocument, error)
	FindProducts(ctx context.Context, filter *ListFilter) ([]*ProductDocument, int64, error)
	UpdateProductById(ctx context.Context, productId string, update *ProductDocument) (*ProductDocument, error)
	DeleteProductById(ctx context.Context, productId string) error
}

type repository struct {
	mongoClient *mongo.Client
	config      *config.MongodbConfig
}

func NewRepository(
	mongoClient *mongo.Client,
	config *config.MongodbConfig,
) Repository {
	return &repository{
		mongoClient: mongoClient,
		config:      config,
	}
}

func (r *repository) collection() *mongo.Collection {
	return r.mongoClient.
		Database(r.config.Database).
		Collection(r.config.Collections[config.MongodbProductCollection])
}

func (r *repository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "category", Value: 1}, {Key: "brand", Value: 1}},
		},
	}

	_, err := r.collection().Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while creating product indexes",
			zap.Error(err),
		)
	}

	return nil
}

func (r *repository) InsertProduct(ctx context.Context, product *ProductDocument) (string, error) {
	result, err := r.collection().InsertOne(ctx, product)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", cerror.NewError(
				fiber.StatusBadRequest,
				"product with same title already exists",
			).SetSeverity(zapcore.WarnLevel)
		}

		return "", cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while insert product",
			zap.Error(err),
		)
	}

	productId, ok := result.InsertedID.(string)
	if !ok {
		return "", cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while type casting for product id",
		)
	}

	return productId, nil
}

func (r *repository) FindProductWithId(ctx context.Context, productId string) (*ProductDocument, error) {
	var product ProductDocument

	filter := bson.D{{Key: "_id", Value: productId}}
	err := r.collection().FindOne(ctx, &filter).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.NewError(
				fiber.StatusNotFound,
				"product not found",
			).SetSeverity(zapcore.WarnLevel)
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find product with id",
			zap.Error(err),
		)
	}

	return &product, nil
}

func (r *repository) FindProducts(
	ctx context.Context,
	filter *ListFilter,
) ([]*ProductDocument, int64, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Brand != "" {
		query["brand"] = filter.Brand
	}

	priceRange := bson.M{}
	if filter.MinPrice > 0 {
		priceRange["$gte"] = filter.MinPrice
	}
	if filter.MaxPrice > 0 {
		priceRange["$lte"] = filter.MaxPrice
	}
	if len(priceRange) > 0 {
		query["price"] = priceRange
	}

	total, err := r.collection().CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while count products",
			zap.Error(err),
		)
	}

	sort := bson.D{{Key: "createdAt", Value: -1}}
	switch filter.SortBy {
	case SortByPriceAsc:
		sort = bson.D{{Key: "price", Value: 1}}
	case SortByPriceDesc:
		sort = bson.D{{Key: "price", Value: -1}}
	}

	findOptions := options.Find().
		SetSort(sort).
		SetSkip((filter.Page - 1) * filter.Limit).
		SetLimit(filter.Limit)

	cursor, err := r.collection().Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find products",
			zap.Error(err),
		)
	}
	defer cursor.Close(ctx) //nolint:errcheck

	products := make([]*ProductDocument, 0)
	err = cursor.All(ctx, &products)
	if err != nil {
		return nil, 0, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while decode products",
			zap.Error(err),
		)
	}

	return products, total, nil
}

func (r *repository) UpdateProductById(
	ctx context.Context,
	productId string,
	update *ProductDocument,
) (*ProductDocument, error) {
	fields := bson.M{
		"updatedAt": time.Now().UTC().Unix(),
	}
	if update.Title != "" {
		fields["title"] = update.Title
	}
	if update.Slug != "" {
		fields["slug"] = update.Slug
	}
	if update.Description != "" {
		fields["description"] = update.Description
	}
	if update.Price > 0 {
		fields["price"] = update.Price
	}
	if update.Category != "" {
		fields["category"] = update.Category
	}
	if update.Brand != "" {
		fields["brand"] = update.Brand
	}
	if update.Quantity >= 0 {
		fields["quantity"] = update.Quantity
	}
	if update.Images != nil {
		fields["images"] = update.Images
	}

	filter := bson.D{{Key: "_id", Value: productId}}
	findOneAndUpdateOptions := options.FindOneAndUpdate().
		SetReturnDocument(options.After)

	var product ProductDocument
	err := r.collection().
		FindOneAndUpdate(ctx, &filter, bson.M{"$set": fields}, findOneAndUpdateOptions).
		Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.NewError(
				fiber.StatusNotFound,
				"product not found",
			).SetSeverity(zapcore.WarnLevel)
		}

		if mongo.IsDuplicateKeyError(err) {
			return nil, cerror.NewError(
				fiber.StatusBadRequest,
				"product with same title already exists",
			).SetSeverity(zapcore.WarnLevel)
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while update product",
			zap.Error(err),
		)
	}

	return &product, nil
}

func (r *repository) DeleteProductById(ctx context.Context, productId string) error {
	filter := bson.D{{Key: "_id", Value: productId}}
	result, err := r.collection().DeleteOne(ctx, &filter)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while delete product",
			zap.Error(err),
		)
	}

	if result.DeletedCount == 0 {
		return cerror.NewError(
			fiber.StatusNotFound,
			"product not found",
		).SetSeverity(zapcore.WarnLevel)
	}

	return nil
}
