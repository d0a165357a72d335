package services

import "errors"

// Error taxonomy surfaced to the HTTP layer. Controllers map these to
// status codes; anything not in this list is a 500.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInvalidCredentials deliberately covers both "no such user" and
	// "wrong password" so login failures cannot be used to enumerate
	// accounts. Do not split it.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrNotFound  = errors.New("not found")
	ErrEmptyCart = errors.New("cart is empty")
)
