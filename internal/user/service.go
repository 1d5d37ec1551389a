package user

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/crypto/bcrypt"

	"shop-api/internal/auth"
	"shop-api/pkg/cerror"
	"shop-api/pkg/event"
	"shop-api/pkg/jwt_generator"
	"shop-api/pkg/logger"
	"shop-api/pkg/metrics"
)

const (
	AccessTokenExpirationDuration  = 10 * time.Minute
	RefreshTokenExpirationDuration = 72 * time.Hour
)

const (
	EventUserRegistered = "user.registered"
	EventUserLoggedIn   = "user.logged-in"
	EventUserUpdated    = "user.updated"
	EventUserDeleted    = "user.deleted"
	EventUserBlocked    = "user.blocked"
	EventUserUnblocked  = "user.unblocked"
)

type UserEvent struct {
	Type      string `json:"type"`
	UserId    string `json:"userId"`
	Email     string `json:"email,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

type Service interface {
	Register(ctx context.Context, payload *RegisterPayload) (*UserResponse, error)
	Login(ctx context.Context, payload *LoginPayload) (*LoginResult, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
	GetAllUsers(ctx context.Context) ([]*UserResponse, error)
	GetUserById(ctx context.Context, userId string) (*UserResponse, error)
	UpdateUser(ctx context.Context, payload *UpdateUserPayload) (*UserResponse, error)
	DeleteUser(ctx context.Context, userId string) error
	SetBlockStatus(ctx context.Context, userId string, isBlocked bool) (*UserResponse, error)
	ResolveIdentity(ctx context.Context, userId string) (*auth.Identity, error)
}

type service struct {
	userRepository Repository
	jwtGenerator   jwt_generator.JwtGenerator
	eventProducer  event.Producer
}

func NewService(
	userRepository Repository,
	jwtGenerator jwt_generator.JwtGenerator,
	eventProducer event.Producer,
) Service {
	return &service{
		userRepository: userRepository,
		jwtGenerator:   jwtGenerator,
		eventProducer:  eventProducer,
	}
}

func (s *service) Register(ctx context.Context, payload *RegisterPayload) (*UserResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		metrics.RecordRegistration(metrics.StatusFailure)
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while generate hash from password",
			zap.Error(err),
		)
	}

	now := time.Now().UTC().Unix()
	userId, err := s.userRepository.InsertUser(ctx, &UserDocument{
		Id:        uuid.New().String(),
		Firstname: payload.Firstname,
		Lastname:  payload.Lastname,
		Email:     payload.Email,
		Mobile:    payload.Mobile,
		Password:  string(hashedPassword),
		Role:      RoleUser,
		IsBlocked: false,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		metrics.RecordRegistration(metrics.StatusFailure)
		return nil, err
	}

	user, err := s.userRepository.FindUserWithId(ctx, userId)
	if err != nil {
		metrics.RecordRegistration(metrics.StatusFailure)
		return nil, err
	}

	s.publishEvent(ctx, &UserEvent{
		Type:      EventUserRegistered,
		UserId:    userId,
		Email:     user.Email,
		Timestamp: now,
	})
	metrics.RecordRegistration(metrics.StatusSuccess)

	return user.ToResponse(), nil
}

func (s *service) Login(ctx context.Context, payload *LoginPayload) (*LoginResult, error) {
	user, err := s.userRepository.FindUserWithEmail(ctx, payload.Email)
	if err != nil {
		metrics.RecordLogin(metrics.StatusFailure)

		var customError *cerror.CustomError
		if errors.As(err, &customError) && customError.HttpStatusCode == fiber.StatusNotFound {
			return nil, invalidCredentialsError()
		}

		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password))
	if err != nil {
		metrics.RecordLogin(metrics.StatusFailure)
		return nil, invalidCredentialsError()
	}

	accessTokenExpiresAt := time.Now().UTC().Add(AccessTokenExpirationDuration)
	accessToken, err := s.jwtGenerator.GenerateAccessToken(
		accessTokenExpiresAt,
		user.Email,
		user.Role,
		user.Id,
	)
	if err != nil {
		metrics.RecordLogin(metrics.StatusFailure)
		return nil, cerror.ErrorGenerateAccessToken
	}

	refreshTokenExpiresAt := time.Now().UTC().Add(RefreshTokenExpirationDuration)
	refreshToken, err := s.jwtGenerator.GenerateRefreshToken(refreshTokenExpiresAt, user.Id)
	if err != nil {
		metrics.RecordLogin(metrics.StatusFailure)
		return nil, cerror.ErrorGenerateRefreshToken
	}

	// A user holds a single live refresh token. Logging in again
	// invalidates the token issued by the previous login.
	err = s.userRepository.SetRefreshToken(
		ctx,
		user.Id,
		refreshToken,
		refreshTokenExpiresAt.Unix(),
	)
	if err != nil {
		metrics.RecordLogin(metrics.StatusFailure)
		return nil, err
	}

	s.publishEvent(ctx, &UserEvent{
		Type:      EventUserLoggedIn,
		UserId:    user.Id,
		Email:     user.Email,
		Timestamp: time.Now().UTC().Unix(),
	})
	metrics.RecordLogin(metrics.StatusSuccess)

	return &LoginResult{
		UserResponse: user.ToResponse(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *service) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	user, err := s.userRepository.FindUserWithRefreshToken(ctx, refreshToken)
	if err != nil {
		metrics.RecordTokenRefresh(metrics.StatusFailure)

		var customError *cerror.CustomError
		if errors.As(err, &customError) && customError.HttpStatusCode == fiber.StatusNotFound {
			return "", cerror.NewError(
				fiber.StatusForbidden,
				"refresh token is not valid",
			).SetSeverity(zapcore.WarnLevel)
		}

		return "", err
	}

	_, err = s.jwtGenerator.VerifyRefreshToken(refreshToken)
	if err != nil {
		metrics.RecordTokenRefresh(metrics.StatusFailure)
		return "", cerror.NewError(
			fiber.StatusForbidden,
			"refresh token is not valid",
			zap.Error(err),
		).SetSeverity(zapcore.WarnLevel)
	}

	accessTokenExpiresAt := time.Now().UTC().Add(AccessTokenExpirationDuration)
	accessToken, err := s.jwtGenerator.GenerateAccessToken(
		accessTokenExpiresAt,
		user.Email,
		user.Role,
		user.Id,
	)
	if err != nil {
		metrics.RecordTokenRefresh(metrics.StatusFailure)
		return "", cerror.ErrorGenerateAccessToken
	}

	metrics.RecordTokenRefresh(metrics.StatusSuccess)

	return accessToken, nil
}

func (s *service) Logout(ctx context.Context, refreshToken string) error {
	err := s.userRepository.ClearRefreshToken(ctx, refreshToken)
	if err != nil {
		return err
	}

	metrics.RecordLogout()

	return nil
}

func (s *service) GetAllUsers(ctx context.Context) ([]*UserResponse, error) {
	users, err := s.userRepository.FindAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, user.ToResponse())
	}

	return responses, nil
}

func (s *service) GetUserById(ctx context.Context, userId string) (*UserResponse, error) {
	user, err := s.userRepository.FindUserWithId(ctx, userId)
	if err != nil {
		return nil, err
	}

	return user.ToResponse(), nil
}

func (s *service) UpdateUser(ctx context.Context, payload *UpdateUserPayload) (*UserResponse, error) {
	user, err := s.userRepository.UpdateUserById(ctx, payload.Id, payload)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, &UserEvent{
		Type:      EventUserUpdated,
		UserId:    user.Id,
		Email:     user.Email,
		Timestamp: time.Now().UTC().Unix(),
	})

	return user.ToResponse(), nil
}

func (s *service) DeleteUser(ctx context.Context, userId string) error {
	err := s.userRepository.DeleteUserById(ctx, userId)
	if err != nil {
		return err
	}

	s.publishEvent(ctx, &UserEvent{
		Type:      EventUserDeleted,
		UserId:    userId,
		Timestamp: time.Now().UTC().Unix(),
	})

	return nil
}

func (s *service) SetBlockStatus(
	ctx context.Context,
	userId string,
	isBlocked bool,
) (*UserResponse, error) {
	user, err := s.userRepository.SetBlockStatus(ctx, userId, isBlocked)
	if err != nil {
		return nil, err
	}

	eventType := EventUserUnblocked
	if isBlocked {
		eventType = EventUserBlocked
	}
	s.publishEvent(ctx, &UserEvent{
		Type:      eventType,
		UserId:    user.Id,
		Email:     user.Email,
		Timestamp: time.Now().UTC().Unix(),
	})

	return user.ToResponse(), nil
}

func (s *service) ResolveIdentity(ctx context.Context, userId string) (*auth.Identity, error) {
	user, err := s.userRepository.FindUserWithId(ctx, userId)
	if err != nil {
		return nil, err
	}

	return &auth.Identity{
		Id:        user.Id,
		Firstname: user.Firstname,
		Lastname:  user.Lastname,
		Email:     user.Email,
		Mobile:    user.Mobile,
		Role:      user.Role,
	}, nil
}

// publishEvent is best effort. A broker outage must not fail the
// request that triggered the event.
func (s *service) publishEvent(ctx context.Context, userEvent *UserEvent) {
	err := s.eventProducer.PublishEvent(ctx, event.TopicUserEvents, userEvent.UserId, userEvent)
	if err != nil {
		logger.FromContext(ctx).Warnw(
			"error occurred while publish user event",
			zap.String("eventType", userEvent.Type),
			zap.Error(err),
		)
	}
}

func invalidCredentialsError() error {
	return cerror.NewError(
		fiber.StatusUnauthorized,
		"email or password is wrong",
	).SetSeverity(zapcore.WarnLevel)
}
