package jwt_generator

import "github.com/golang-jwt/jwt/v4"

const IssuerDefault = "shop-api"

type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}
