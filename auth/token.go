package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ecomdemo/storefront-api/models"
)

// TokenTTL is how long an issued bearer token stays valid. There is no
// refresh mechanism; clients log in again after expiry.
const TokenTTL = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is what a verified token proves about the caller.
type Claims struct {
	UserID string
	Email  string
}

// IssueToken signs a bearer token for the given user.
func IssueToken(user models.User, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifyToken parses and validates a bearer token, returning the claims
// it carries. Expired, tampered and wrongly-signed tokens all come back
// as ErrInvalidToken.
func VerifyToken(tokenString string, secret []byte) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	userID, _ := mapClaims["user_id"].(string)
	email, _ := mapClaims["email"].(string)
	if userID == "" {
		return Claims{}, ErrInvalidToken
	}

	return Claims{UserID: userID, Email: email}, nil
}
