package services

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecomdemo/storefront-api/auth"
	"github.com/ecomdemo/storefront-api/models"
	"github.com/ecomdemo/storefront-api/store"
)

// CredentialService registers and authenticates users and issues bearer
// tokens for them.
type CredentialService struct {
	Store     *store.Store
	JWTSecret []byte
}

func NewCredentialService(s *store.Store, secret []byte) *CredentialService {
	return &CredentialService{Store: s, JWTSecret: secret}
}

// AuthResult is what both Register and Login hand back: the public view
// of the user plus a fresh bearer token.
type AuthResult struct {
	User  models.PublicUser `json:"user"`
	Token string            `json:"token"`
}

// Register creates a user and logs them in. The email is the unique key
// (exact, case-sensitive match). The password is bcrypt-hashed before it
// touches the store; the plaintext is never persisted or returned.
func (s *CredentialService) Register(name, email, password string) (AuthResult, error) {
	if email == "" || password == "" {
		return AuthResult{}, ErrInvalidInput
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		CreatedAt:    time.Now(),
	}

	err = s.Store.Update(func(db *models.Dataset) error {
		for _, u := range db.Users {
			if u.Email == email {
				return ErrDuplicateUser
			}
		}
		db.Users = append(db.Users, user)
		return nil
	})
	if err != nil {
		return AuthResult{}, err
	}

	token, err := auth.IssueToken(user, s.JWTSecret)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user.Public(), Token: token}, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password both return ErrInvalidCredentials so the response cannot be
// used to probe which emails are registered.
func (s *CredentialService) Login(email, password string) (AuthResult, error) {
	db, err := s.Store.Load()
	if err != nil {
		return AuthResult{}, err
	}

	var user models.User
	found := false
	for _, u := range db.Users {
		if u.Email == email {
			user = u
			found = true
			break
		}
	}
	if !found {
		return AuthResult{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := auth.IssueToken(user, s.JWTSecret)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user.Public(), Token: token}, nil
}
