package user

import (
	"context"
	"errors"
	"strings"
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
	InsertUser(ctx context.Context, user *UserDocument) (string, error)
	FindUserWithId(ctx context.Context, userId string) (*UserDocument, error)
	FindUserWithEmail(ctx context.Context, email string) (*UserDocument, error)
	FindUserWithRefreshToken(ctx context.Context, refreshToken string) (*UserDocument, error)
	FindAllUsers(ctx context.Context) ([]*UserDocument, error)
	UpdateUserById(ctx context.Context, userId string, payload *UpdateUserPayload) (*UserDocument, error)
	DeleteUserById(ctx context.Context, userId string) error
	SetRefreshToken(ctx context.Context, userId, refreshToken string, expiresAt int64) error
	ClearRefreshToken(ctx context.Context, refreshToken string) error
	SetBlockStatus(ctx context.Context, userId string, isBlocked bool) (*UserDocument, error)
	ClearExpiredRefreshTokens(ctx context.Context, now int64) (int64, error)
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

// duplicateFieldMessage names the unique field violated by a duplicate
// key error so the client knows which value is already taken.
func duplicateFieldMessage(err error) string {
	message := err.Error()
	if strings.Contains(message, "email") {
		return "email already in use"
	}
	if strings.Contains(message, "mobile") {
		return "mobile already in use"
	}

	return "user already exists"
}

func (r *repository) collection() *mongo.Collection {
	return r.mongoClient.
		Database(r.config.Database).
		Collection(r.config.Collections[config.MongodbUserCollection])
}

func (r *repository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "mobile", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "refreshToken", Value: 1}},
			Options: options.Index().
				SetSparse(true),
		},
	}

	_, err := r.collection().Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while creating user indexes",
			zap.Error(err),
		)
	}

	return nil
}

func (r *repository) InsertUser(ctx context.Context, user *UserDocument) (string, error) {
	result, err := r.collection().InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", cerror.NewError(
				fiber.StatusBadRequest,
				duplicateFieldMessage(err),
			).SetSeverity(zapcore.WarnLevel)
		}

		return "", cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while insert user",
			zap.Error(err),
		)
	}

	userId, ok := result.InsertedID.(string)
	if !ok {
		return "", cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while type casting for user id",
		)
	}

	return userId, nil
}

func (r *repository) FindUserWithId(ctx context.Context, userId string) (*UserDocument, error) {
	var user UserDocument

	filter := bson.D{{Key: "_id", Value: userId}}
	err := r.collection().FindOne(ctx, &filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.NewError(
				fiber.StatusNotFound,
				"user not found",
			).SetSeverity(zapcore.WarnLevel)
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find user with id",
			zap.Error(err),
		)
	}

	return &user, nil
}

func (r *repository) FindUserWithEmail(ctx context.Context, email string) (*UserDocument, error) {
	var user UserDocument

	filter := bson.D{{Key: "email", Value: email}}
	err := r.collection().FindOne(ctx, &filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.NewError(
				fiber.StatusNotFound,
				"user not found",
			).SetSeverity(zapcore.WarnLevel)
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find user with email",
			zap.Error(err),
		)
	}

	return &user, nil
}

func (r *repository) FindUserWithRefreshToken(
	ctx context.Context,
	refreshToken string,
) (*UserDocument, error) {
	var user UserDocument

	filter := bson.D{{Key: "refreshToken", Value: refreshToken}}
	err := r.collection().FindOne(ctx, &filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.NewError(
				fiber.StatusNotFound,
				"refresh token not found",
			).SetSeverity(zapcore.WarnLevel)
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find user with refresh token",
			zap.Error(err),
		)
	}

	return &user, nil
}

func (r *repository) FindAllUsers(ctx context.Context) ([]*UserDocument, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection().Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find all users",
			zap.Error(err),
		)
	}
	defer cursor.Close(ctx) //nolint:errcheck

	users := make([]*UserDocument, 0)
	err = cursor.All(ctx, &users)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while decode users",
			zap.Error(err),
		)
	}

	return users, nil
}

func (r *repository) UpdateUserById(
	ctx context.Context,
	userId string,
	payload *UpdateUserPayload,
) (*UserDocument, error) {
	fields := bson.M{
		"updatedAt": time.Now().UTC().Unix(),
	}
	if payload.Firstname != "" {
		fields["firstname"] = payload.Firstname
	}
	if payload.Lastname != "" {
		fields["lastname"] = payload.Lastname
	}
	if payload.Email != "" {
		fields["email"] = payload.Email
	}
	if payload.Mobile != "" {
		fields["mobile"] = payload.Mobile
	}
	if payload.Role != "" {
		fields["role"] = payload.Role
	}

	filter := bson.D{{Key: "_id", Value: userId}}
	update := bson.M{"$set": fields}
	findOneAndUpdateOptions := options.FindOneAndUpdate().
		SetReturnDocument(options.After)

	var user UserDocument
	err := r.collection().
		FindOneAndUpdate(ctx, &filter, update, findOneAndUpdateOptions).
		Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.NewError(
				fiber.StatusNotFound,
				"user not found",
			).SetSeverity(zapcore.WarnLevel)
		}

		if mongo.IsDuplicateKeyError(err) {
			return nil, cerror.NewError(
				fiber.StatusBadRequest,
				duplicateFieldMessage(err),
			).SetSeverity(zapcore.WarnLevel)
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while update user",
			zap.Error(err),
		)
	}

	return &user, nil
}

func (r *repository) DeleteUserById(ctx context.Context, userId string) error {
	filter := bson.D{{Key: "_id", Value: userId}}
	result, err := r.collection().DeleteOne(ctx, &filter)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while delete user",
			zap.Error(err),
		)
	}

	if result.DeletedCount == 0 {
		return cerror.NewError(
			fiber.StatusNotFound,
			"user not found",
		).SetSeverity(zapcore.WarnLevel)
	}

	return nil
}

func (r *repository) SetRefreshToken(
	ctx context.Context,
	userId, refreshToken string,
	expiresAt int64,
) error {
	filter := bson.D{{Key: "_id", Value: userId}}
	update := bson.M{"$set": bson.M{
		"refreshToken":          refreshToken,
		"refreshTokenExpiresAt": expiresAt,
	}}

	result, err := r.collection().UpdateOne(ctx, &filter, update)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while set refresh token",
			zap.Error(err),
		)
	}

	if result.MatchedCount == 0 {
		return cerror.NewError(
			fiber.StatusNotFound,
			"user not found",
		).SetSeverity(zapcore.WarnLevel)
	}

	return nil
}

func (r *repository) ClearRefreshToken(ctx context.Context, refreshToken string) error {
	filter := bson.D{{Key: "refreshToken", Value: refreshToken}}
	update := bson.M{"$unset": bson.M{
		"refreshToken":          "",
		"refreshTokenExpiresAt": "",
	}}

	_, err := r.collection().UpdateOne(ctx, &filter, update)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while clear refresh token",
			zap.Error(err),
		)
	}

	return nil
}

func (r *repository) SetBlockStatus(
	ctx context.Context,
	userId string,
	isBlocked bool,
) (*UserDocument, error) {
	filter := bson.D{{Key: "_id", Value: userId}}
	update := bson.M{"$set": bson.M{
		"isBlocked": isBlocked,
		"updatedAt": time.Now().UTC().Unix(),
	}}
	findOneAndUpdateOptions := options.FindOneAndUpdate().
		SetReturnDocument(options.After)

	var user UserDocument
	err := r.collection().
		FindOneAndUpdate(ctx, &filter, update, findOneAndUpdateOptions).
		Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cerror.NewError(
				fiber.StatusNotFound,
				"user not found",
			).SetSeverity(zapcore.WarnLevel)
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while update block status",
			zap.Error(err),
		)
	}

	return &user, nil
}

func (r *repository) ClearExpiredRefreshTokens(ctx context.Context, now int64) (int64, error) {
	filter := bson.M{
		"refreshTokenExpiresAt": bson.M{"$lt": now},
	}
	update := bson.M{"$unset": bson.M{
		"refreshToken":          "",
		"refreshTokenExpiresAt": "",
	}}

	result, err := r.collection().UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while clear expired refresh tokens",
			zap.Error(err),
		)
	}

	return result.ModifiedCount, nil
}
