package jwt_generator

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"shop-api/pkg/config"
)

type JwtGenerator interface {
	GenerateAccessToken(expirationTime time.Time, email, role, userId string) (string, error)
	GenerateRefreshToken(expirationTime time.Time, userId string) (string, error)
	VerifyAccessToken(rawJwtToken string) (*Claims, error)
	VerifyRefreshToken(rawJwtToken string) (*Claims, error)
}

type jwtGenerator struct {
	secret []byte
}

func NewJwtGenerator(jwtConfig config.JwtConfig) (JwtGenerator, error) {
	if len(jwtConfig.Secret) == 0 {
		return nil, errors.New("empty jwt signing secret")
	}

	return &jwtGenerator{
		secret: jwtConfig.Secret,
	}, nil
}

func (jwtGenerator *jwtGenerator) GenerateAccessToken(
	expirationTime time.Time,
	email, role, userId string,
) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   userId,
			Issuer:    IssuerDefault,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(jwtGenerator.secret)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}

func (jwtGenerator *jwtGenerator) GenerateRefreshToken(expirationTime time.Time, userId string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		ID:        uuid.New().String(),
		Issuer:    IssuerDefault,
		Subject:   userId,
		ExpiresAt: jwt.NewNumericDate(expirationTime),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(jwtGenerator.secret)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}

func (jwtGenerator *jwtGenerator) VerifyAccessToken(rawJwtToken string) (*Claims, error) {
	return jwtGenerator.verifyToken(rawJwtToken)
}

func (jwtGenerator *jwtGenerator) VerifyRefreshToken(rawJwtToken string) (*Claims, error) {
	return jwtGenerator.verifyToken(rawJwtToken)
}

func (jwtGenerator *jwtGenerator) verifyToken(rawJwtToken string) (*Claims, error) {
	var (
		err    error
		claims Claims
	)

	_, err = jwt.ParseWithClaims(rawJwtToken, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("jwt token is not valid signature")
		}

		return jwtGenerator.secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, err
	}

	isValidIssuer := claims.VerifyIssuer(IssuerDefault, true)
	if !isValidIssuer {
		return nil, errors.New("ambiguous jwt token issuer")
	}

	now := time.Now().UTC()
	isJwtTokenNotExpired := claims.VerifyExpiresAt(now, true)
	if !isJwtTokenNotExpired {
		return nil, errors.New("expired jwt token")
	}

	isTokenStarted := claims.VerifyNotBefore(now, false)
	if !isTokenStarted {
		return nil, errors.New("jwt token is not started")
	}

	return &claims, nil
}
