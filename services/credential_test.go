package services_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomdemo/storefront-api/auth"
	"github.com/ecomdemo/storefront-api/services"
)

var testSecret = []byte("test-secret")

func newCredentials(t *testing.T) *services.CredentialService {
	t.Helper()
	return services.NewCredentialService(newStore(t), testSecret)
}

func TestRegisterAndLogin(t *testing.T) {
	creds := newCredentials(t)
	email := gofakeit.Email()

	result, err := creds.Register("Alice", email, "pw123")
	require.NoError(t, err)
	assert.Equal(t, email, result.User.Email)
	assert.NotEmpty(t, result.User.ID)
	assert.NotEmpty(t, result.Token)

	claims, err := auth.VerifyToken(result.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)

	login, err := creds.Login(email, "pw123")
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, login.User.ID)
}

func TestRegisterValidation(t *testing.T) {
	creds := newCredentials(t)

	_, err := creds.Register("Bob", "", "pw123")
	require.ErrorIs(t, err, services.ErrInvalidInput)

	_, err = creds.Register("Bob", gofakeit.Email(), "")
	require.ErrorIs(t, err, services.ErrInvalidInput)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	creds := newCredentials(t)
	email := gofakeit.Email()

	_, err := creds.Register("First", email, "pw123")
	require.NoError(t, err)

	_, err = creds.Register("Second", email, "other")
	require.ErrorIs(t, err, services.ErrDuplicateUser)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	creds := newCredentials(t)
	email := gofakeit.Email()

	_, err := creds.Register("Carol", email, "pw123")
	require.NoError(t, err)

	_, wrongPassword := creds.Login(email, "not-the-password")
	_, unknownEmail := creds.Login("nobody-"+email, "pw123")

	// both must be the identical error so login responses cannot be used
	// to enumerate registered emails
	require.ErrorIs(t, wrongPassword, services.ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, services.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestPasswordIsStoredHashed(t *testing.T) {
	st := newStore(t)
	creds := services.NewCredentialService(st, testSecret)
	email := gofakeit.Email()

	_, err := creds.Register("Dave", email, "pw123")
	require.NoError(t, err)

	db, err := st.Load()
	require.NoError(t, err)
	require.Len(t, db.Users, 1)
	assert.NotEqual(t, "pw123", db.Users[0].PasswordHash)
	assert.NotContains(t, db.Users[0].PasswordHash, "pw123")
}
