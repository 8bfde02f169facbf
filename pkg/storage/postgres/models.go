package postgres

import (
	"time"
	"travelcatalog/pkg/domain"

	"github.com/google/uuid"
)

type PgPackage struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`
	// Seq is a sequence value that orders rows by insertion.
	Seq int64 `db:"seq" goqu:"skipinsert"`

	Name        string  `db:"package_name"`
	Code        string  `db:"package_code"`
	Destination string  `db:"destination"`
	Duration    int     `db:"duration"`
	Price       float64 `db:"price"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgPackage) ToDomain() domain.Package {
	return domain.Package{
		ID:          domain.PackageID(p.ID),
		Name:        p.Name,
		Code:        p.Code,
		Destination: p.Destination,
		Duration:    p.Duration,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
	}
}

func (p *PgPackage) FromDomain(pkg domain.Package) {
	*p = PgPackage{
		ID:          uuid.UUID(pkg.ID),
		Name:        pkg.Name,
		Code:        pkg.Code,
		Destination: pkg.Destination,
		Duration:    pkg.Duration,
		Price:       pkg.Price,
		CreatedAt:   pkg.CreatedAt,
	}
}

func pgPackagesToDomain(pkgs []PgPackage) []domain.Package {
	out := make([]domain.Package, 0, len(pkgs))
	for i := range pkgs {
		out = append(out, pkgs[i].ToDomain())
	}

	return out
}
