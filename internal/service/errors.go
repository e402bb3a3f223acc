package service

import "errors"

var (
	// ErrNotFound is returned when an update or delete matched no row.
	ErrNotFound = errors.New("record not found")
	// ErrEmptyUpdate is returned when a partial update sets no field.
	ErrEmptyUpdate = errors.New("update must set at least one field")
	// ErrDuplicateAccount is returned when a username or email is already taken.
	ErrDuplicateAccount = errors.New("username or email already exists")
	// ErrAccountHasDependents is returned by the restrict delete policy.
	ErrAccountHasDependents = errors.New("account still owns food items, recipes or posts")
	// ErrInvalidCredentials is returned when a login matches no account or the password is wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned when a token fails validation or has expired.
	ErrInvalidToken = errors.New("invalid token")
)
