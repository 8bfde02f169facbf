package domain

import (
	"time"

	"github.com/google/uuid"
)

// PackageID uniquely identifies a travel package.
// It wraps uuid.UUID to provide type safety at the domain layer.
type PackageID uuid.UUID

// ParsePackageID parses the textual form of a PackageID.
func ParsePackageID(s string) (PackageID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return PackageID{}, err //nolint: wrapcheck
	}

	return PackageID(id), nil
}

// String returns the canonical textual form of the ID.
func (id PackageID) String() string { return uuid.UUID(id).String() }

// Package is a travel offering listed in the catalog.
type Package struct {
	// ID is assigned by the store on creation and never changes afterwards.
	ID PackageID

	// Name is the human-readable title of the package.
	Name string
	// Code is the business key of the package. No two packages share a code.
	Code string
	// Destination is where the trip goes.
	Destination string
	// Duration is the length of the trip in days.
	Duration int
	// Price is the currency amount charged for the package.
	Price float64

	// CreatedAt is set by the store.
	CreatedAt time.Time
}
