package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomdemo/storefront-api/auth"
	"github.com/ecomdemo/storefront-api/models"
)

var secret = []byte("unit-test-secret")

func TestIssueAndVerify(t *testing.T) {
	user := models.User{ID: "u1", Email: "a@x.com"}

	token, err := auth.IssueToken(user, secret)
	require.NoError(t, err)

	claims, err := auth.VerifyToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := auth.VerifyToken(tok, secret)
		assert.ErrorIs(t, err, auth.ErrInvalidToken, "token %q", tok)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := auth.IssueToken(models.User{ID: "u1"}, secret)
	require.NoError(t, err)

	_, err = auth.VerifyToken(token, []byte("other-secret"))
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerifyRejectsExpired(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": "u1",
		"email":   "a@x.com",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)

	_, err = auth.VerifyToken(expired, secret)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerifyRejectsUnsignedAlg(t *testing.T) {
	claims := jwt.MapClaims{"user_id": "u1"}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = auth.VerifyToken(unsigned, secret)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
