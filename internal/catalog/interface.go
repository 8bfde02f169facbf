package catalog

import (
	"context"
	"travelcatalog/pkg/domain"
)

//go:generate mockgen -package mockcatalog -source=interface.go -destination=mock/mockcatalog.go *
type Catalog interface {
	List(ctx context.Context) ([]domain.Package, error)
	Add(ctx context.Context, in Input) (*domain.Package, error)
	Delete(ctx context.Context, ID string) error
}
