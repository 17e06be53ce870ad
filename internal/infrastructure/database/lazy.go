package database

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"

	"walletl10n/internal/domain/entities"
	"walletl10n/internal/ports/output"
)

var _ output.CatalogRepository = (*LazyCatalogRepository)(nil)

// LazyCatalogRepository se connecte et applique les migrations au premier
// appel. Un échec n'est pas mémorisé : l'appel suivant réessaie.
type LazyCatalogRepository struct {
	dsn  string
	open func(ctx context.Context, dsn string) (*pgxpool.Pool, error)

	mu   sync.Mutex
	pool *pgxpool.Pool
	repo *CatalogRepository
}

func NewLazyCatalogRepository(dsn string) *LazyCatalogRepository {
	return &LazyCatalogRepository{dsn: dsn, open: openMigrated}
}

func openMigrated(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := NewPool(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connexion postgres: %w", err)
	}
	if err := RunMigrations(pool); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func (l *LazyCatalogRepository) get(ctx context.Context) (*CatalogRepository, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.repo != nil {
		return l.repo, nil
	}
	pool, err := l.open(ctx, l.dsn)
	if err != nil {
		return nil, err
	}
	l.pool = pool
	l.repo = NewCatalogRepository(pool)
	return l.repo, nil
}

func (l *LazyCatalogRepository) Save(ctx context.Context, catalog *entities.Catalog) error {
	repo, err := l.get(ctx)
	if err != nil {
		return err
	}
	return repo.Save(ctx, catalog)
}

func (l *LazyCatalogRepository) FindByLocale(ctx context.Context, locale string) (*entities.Catalog, error) {
	repo, err := l.get(ctx)
	if err != nil {
		return nil, err
	}
	return repo.FindByLocale(ctx, locale)
}

func (l *LazyCatalogRepository) ListLocales(ctx context.Context) ([]string, error) {
	repo, err := l.get(ctx)
	if err != nil {
		return nil, err
	}
	return repo.ListLocales(ctx)
}

func (l *LazyCatalogRepository) Delete(ctx context.Context, locale string) error {
	repo, err := l.get(ctx)
	if err != nil {
		return err
	}
	return repo.Delete(ctx, locale)
}

// Close libère le pool s'il a été ouvert.
func (l *LazyCatalogRepository) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pool != nil {
		l.pool.Close()
		l.pool, l.repo = nil, nil
	}
}
