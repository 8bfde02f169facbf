package postgres

import (
	"context"
	"errors"
	"fmt"
	"travelcatalog/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	packagesTable = "packages"
)

// Packages returns all packages in insertion order.
func (p *PgSQL) Packages(ctx context.Context) ([]domain.Package, error) {
	var rows []PgPackage
	if err := p.Builder.From(packagesTable).
		Order(goqu.I("seq").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch packages from pg: %w", classifyError(err))
	}

	return pgPackagesToDomain(rows), nil
}

// StorePackage inserts a package and returns the stored row. The unique index
// on package_code is the only duplicate check.
func (p *PgSQL) StorePackage(ctx context.Context, pkg domain.Package) (*domain.Package, error) {
	var row PgPackage
	row.FromDomain(pkg)

	var stored PgPackage
	found, err := p.Builder.Insert(packagesTable).
		Rows(row).
		Returning(&PgPackage{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not store package into pg: %w", classifyError(err))
	}
	if !found {
		return nil, errors.New("could not store package into pg: no row returned")
	}

	res := stored.ToDomain()

	return &res, nil
}

// DeletePackage removes a package by ID and reports whether a row was deleted.
func (p *PgSQL) DeletePackage(ctx context.Context, id domain.PackageID) (bool, error) {
	res, err := p.Builder.Delete(packagesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete package in pg: %w", classifyError(err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}
