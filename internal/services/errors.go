package services

import "errors"

var (
	// ErrEmailTaken is returned when a registration or account edit would
	// reuse another user's email address.
	ErrEmailTaken = errors.New("email address already in use")

	// ErrInvalidCredentials is returned on any login failure. Unknown email
	// and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound is returned when a record does not exist or is not owned
	// by the requesting user. The two cases are deliberately
	// indistinguishable.
	ErrNotFound = errors.New("record not found")
)
