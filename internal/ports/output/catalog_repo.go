package output

import (
	"context"

	"walletl10n/internal/domain/entities"
)

// CatalogRepository persists whole locale catalogs.
type CatalogRepository interface {
	// Save replaces everything stored for the catalog's locale.
	Save(ctx context.Context, catalog *entities.Catalog) error
	FindByLocale(ctx context.Context, locale string) (*entities.Catalog, error)
	ListLocales(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, locale string) error
}
