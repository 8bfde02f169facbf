package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrDuplicatePackageCode is returned when a package is stored with a code
	// that already belongs to another package.
	ErrDuplicatePackageCode = errors.New("duplicate package code")
	// ErrInvalidPackage is returned when the backend rejects a package because
	// a required field is missing or empty.
	ErrInvalidPackage = errors.New("invalid package")
	// ErrUnavailable is returned when the backend cannot be reached.
	ErrUnavailable = errors.New("storage unavailable")
)
