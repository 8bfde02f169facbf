// Package storage defines the core storage interfaces that the application relies on.
// It abstracts persistence of catalog records so that different backends
// (e.g. PostgreSQL) can provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"travelcatalog/pkg/domain"
)

// PackageStorage defines the persistence operations for travel packages.
// Uniqueness of package codes must be enforced atomically by the backend;
// callers never check for an existing code before storing.
type PackageStorage interface {
	// Packages returns every stored package in insertion order. An empty
	// store yields an empty, non-nil slice.
	Packages(ctx context.Context) ([]domain.Package, error)
	// StorePackage inserts a package and returns it as stored, including the
	// generated ID. The ID of the argument is ignored.
	// It returns ErrDuplicatePackageCode when the code is already taken and
	// ErrInvalidPackage when a required field is missing.
	StorePackage(ctx context.Context, pkg domain.Package) (*domain.Package, error)
	// DeletePackage removes the package with the given ID. Deleting an ID
	// that does not exist is not an error; the returned flag reports whether
	// a row was actually removed.
	DeletePackage(ctx context.Context, ID domain.PackageID) (bool, error)
}

// Storage describes a storage handle together with its lifecycle management.
type Storage interface {
	PackageStorage

	// Ping verifies that the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases any resources held by the storage implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error
}
