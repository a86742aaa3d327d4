// Package auth issues and verifies the bearer tokens that identify the
// acting user. Credential checks happen upstream of this service.
package auth

import (
	"errors"
	"time"

	autherrors "github.com/Chayapol0073-141266/HRM-SDcon/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
)

// IssueToken signs an HS256 token carrying user_id.
func IssueToken(secret, userID string, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", autherrors.ErrMissingUserID
	}
	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", autherrors.ErrTokenGenerationFailed
	}
	return signed, nil
}

// ParseToken verifies tokenString and returns its user_id claim.
func ParseToken(secret, tokenString string) (string, error) {
	if tokenString == "" {
		return "", autherrors.ErrTokenNotFound
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", autherrors.ErrTokenExpired
		}
		return "", autherrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", autherrors.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", autherrors.ErrMissingUserID
	}
	return userID, nil
}
