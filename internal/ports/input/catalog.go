package input

import (
	"context"
	"io/fs"

	"walletl10n/internal/domain/entities"
)

type CatalogUseCase interface {
	Load(localeID string, data []byte) (*entities.Catalog, error)
	LoadFormat(localeID, format string, data []byte) (*entities.Catalog, error)
	LoadFS(fsys fs.FS, pattern string) ([]string, error)
	Lookup(localeID, contextName, sourceText string) string
	LookupDisambiguated(localeID, contextName, sourceText, comment string) string
	LookupPlural(localeID, contextName, sourceText string, n int) string
	HasLocale(localeID string) bool
	Locales() []string
	Catalog(localeID string) (*entities.Catalog, bool)
	Catalogs() []*entities.Catalog
	Persist(ctx context.Context, localeID string) error
	PersistAll(ctx context.Context) error
	Restore(ctx context.Context) ([]string, error)
}
