package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"walletl10n/internal/domain"
	"walletl10n/internal/domain/entities"
	"walletl10n/internal/ports/output"
)

var _ output.CatalogRepository = (*CatalogRepository)(nil)

var messageColumns = []string{
	"context_id", "position", "source", "comment", "translation", "status", "numerus", "forms",
}

// CatalogRepository implements output.CatalogRepository with pgx.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// Save replaces the stored locale in a single transaction.
func (r *CatalogRepository) Save(ctx context.Context, catalog *entities.Catalog) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin save catalog: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM catalog_locales WHERE locale = $1`, catalog.Locale); err != nil {
		return fmt.Errorf("delete previous catalog: %w", err)
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO catalog_locales (locale, source_language, version, duplicates) VALUES ($1, $2, $3, $4)`,
		catalog.Locale, catalog.SourceLanguage, catalog.Version, catalog.Duplicates,
	); err != nil {
		return fmt.Errorf("insert locale: %w", err)
	}

	batch := &pgx.Batch{}
	for pos, cx := range catalog.Contexts {
		batch.Queue(
			`INSERT INTO catalog_contexts (locale, name, position) VALUES ($1, $2, $3) RETURNING id`,
			catalog.Locale, cx.Name, pos,
		)
	}
	ids := make([]int64, len(catalog.Contexts))
	br := tx.SendBatch(ctx, batch)
	for i := range ids {
		if err := br.QueryRow().Scan(&ids[i]); err != nil {
			_ = br.Close()
			return fmt.Errorf("insert context %q: %w", catalog.Contexts[i].Name, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("insert contexts: %w", err)
	}

	var rows [][]any
	for i, cx := range catalog.Contexts {
		for pos, m := range cx.Messages {
			rows = append(rows, []any{
				ids[i], pos, m.Source, m.Comment, m.Translation, string(m.Status), m.Numerus, formsColumn(m),
			})
		}
	}
	if len(rows) > 0 {
		if _, err := tx.CopyFrom(ctx, pgx.Identifier{"catalog_messages"}, messageColumns, pgx.CopyFromRows(rows)); err != nil {
			return fmt.Errorf("copy messages: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit save catalog: %w", err)
	}
	return nil
}

// FindByLocale rebuilds a stored catalog.
func (r *CatalogRepository) FindByLocale(ctx context.Context, locale string) (*entities.Catalog, error) {
	doc := entities.Document{Language: locale}
	var duplicates int
	err := r.pool.QueryRow(ctx,
		`SELECT source_language, version, duplicates FROM catalog_locales WHERE locale = $1`, locale,
	).Scan(&doc.SourceLanguage, &doc.Version, &duplicates)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get catalog %q: %w", locale, domain.ErrLocaleNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get catalog %q: %w", locale, err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT c.name, m.source, m.comment, m.translation, m.status, m.numerus, m.forms
		FROM catalog_contexts c
		LEFT JOIN catalog_messages m ON m.context_id = c.id
		WHERE c.locale = $1
		ORDER BY c.position, m.position`, locale)
	if err != nil {
		return nil, fmt.Errorf("get catalog messages: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var row messageRow
		if err := rows.Scan(
			&row.ContextName, &row.Source, &row.Comment, &row.Translation,
			&row.Status, &row.Numerus, &row.Forms,
		); err != nil {
			return nil, fmt.Errorf("scan catalog message: %w", err)
		}
		if n := len(doc.Contexts); n == 0 || doc.Contexts[n-1].Name != row.ContextName {
			doc.Contexts = append(doc.Contexts, entities.Context{Name: row.ContextName})
		}
		if row.hasMessage() {
			last := &doc.Contexts[len(doc.Contexts)-1]
			last.Messages = append(last.Messages, messageToDomain(row))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read catalog messages: %w", err)
	}

	c := entities.NewCatalog(locale, doc)
	c.Duplicates = duplicates
	return c, nil
}

func (r *CatalogRepository) ListLocales(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT locale FROM catalog_locales ORDER BY locale`)
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	locales, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	return locales, nil
}

func (r *CatalogRepository) Delete(ctx context.Context, locale string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM catalog_locales WHERE locale = $1`, locale)
	if err != nil {
		return fmt.Errorf("delete catalog: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete catalog %q: %w", locale, domain.ErrLocaleNotFound)
	}
	return nil
}
