package utils

import (
	"errors" // Error helpers
	"time"   // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// TokenTTL is the validity window of an admin session token
const TokenTTL = time.Hour

// JWT Claims
type Claims struct {
	UserID               uint `json:"userId"` // Custom claim for user ID
	jwt.RegisteredClaims      // Standard JWT claims
}

// GenerateJWT creates a session token for a given user ID, valid for TokenTTL
func GenerateJWT(userID uint, secret string) (string, error) {
	return GenerateJWTAt(userID, secret, time.Now())
}

// GenerateJWTAt creates a session token as if issued at the given time
func GenerateJWTAt(userID uint, secret string, issuedAt time.Time) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(TokenTTL)), // Token expires one hour after issue
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// ParseJWT parses and validates a JWT token string
func ParseJWT(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		if claims.UserID == 0 {
			return nil, jwt.ErrTokenInvalidClaims // Token without a subject is useless
		}
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
