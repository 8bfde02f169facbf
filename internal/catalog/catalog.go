package catalog

import (
	"context"
	"errors"
	"travelcatalog/pkg/domain"
	"travelcatalog/pkg/logger"
	"travelcatalog/pkg/serrors"
	"travelcatalog/pkg/storage"

	"go.uber.org/zap"
)

// catalog is the concrete implementation of the Catalog interface.
// It validates client input and classifies storage failures into semantic
// error kinds.
type catalog struct {
	// storage persists the packages and enforces code uniqueness.
	storage storage.PackageStorage
}

// List returns every package in the catalog.
func (c catalog) List(ctx context.Context) ([]domain.Package, error) {
	pkgs, err := c.storage.Packages(ctx)
	if err != nil {
		return nil, classify(err, "could not list packages")
	}
	if pkgs == nil {
		pkgs = []domain.Package{}
	}

	return pkgs, nil
}

// Add validates in and stores it as a new package. Uniqueness of the code is
// left to the storage so that concurrent adds cannot both succeed.
func (c catalog) Add(ctx context.Context, in Input) (*domain.Package, error) {
	pkg, err := in.Package()
	if err != nil {
		logger.Debug(ctx, "rejected package input", zap.Stringer("input", in), zap.Error(err))

		return nil, err
	}

	stored, err := c.storage.StorePackage(ctx, pkg)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicatePackageCode) {
			return nil, serrors.Wrap(serrors.ErrDuplicateKey, err, "Package with code %s already exists", pkg.Code)
		}

		return nil, classify(err, "could not store package")
	}

	logger.Info(ctx, "package added",
		zap.Stringer("id", stored.ID),
		zap.String("code", stored.Code))

	return stored, nil
}

// Delete removes the package with the given ID. A well-formed ID that does
// not exist is treated as already deleted.
func (c catalog) Delete(ctx context.Context, rawID string) error {
	id, err := domain.ParsePackageID(rawID)
	if err != nil {
		return serrors.Wrap(serrors.ErrValidation, err, "invalid package id %q", rawID)
	}

	deleted, err := c.storage.DeletePackage(ctx, id)
	if err != nil {
		return classify(err, "could not delete package")
	}

	if !deleted {
		logger.Debug(ctx, "package to delete was not found", zap.Stringer("id", id))

		return nil
	}

	logger.Info(ctx, "package deleted", zap.Stringer("id", id))

	return nil
}

// classify wraps a storage error with the matching semantic kind.
func classify(err error, msg string) error {
	switch {
	case errors.Is(err, storage.ErrInvalidPackage):
		return serrors.Wrap(serrors.ErrValidation, err, "%s", validationPrefix+"missing required field")
	case errors.Is(err, storage.ErrUnavailable):
		return serrors.Wrap(serrors.ErrUnavailable, err, "%s", msg)
	default:
		return serrors.Wrap(serrors.ErrInternal, err, "%s", msg)
	}
}

// New constructs a Catalog backed by the given storage.
func New(storage storage.PackageStorage) Catalog {
	return &catalog{
		storage: storage,
	}
}
