package utils

import (
	"errors"
	"time"

	"cosec/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "cosec-api"

var (
	ErrMissingSecret = errors.New("JWT secret not configured")
	ErrInvalidToken  = errors.New("invalid token")
)

// GenerateToken signs an HS256 admin token valid for ttl.
func GenerateToken(email, secret string, ttl time.Duration, now time.Time) (string, error) {
	if secret == "" {
		return "", ErrMissingSecret
	}

	claims := models.AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   email,
		},
		Email: email,
		Role:  models.RoleAdmin,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken validates signature, signing method and expiry.
func ParseToken(tokenStr, secret string) (*models.AdminClaims, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}

	token, err := jwt.ParseWithClaims(tokenStr, &models.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*models.AdminClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
