package application

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strconv"
	"strings"
	"sync"

	"walletl10n/internal/domain"
	"walletl10n/internal/domain/entities"
	"walletl10n/internal/domain/plural"
	"walletl10n/internal/ports/input"
	"walletl10n/internal/ports/output"
)

var _ input.CatalogUseCase = (*CatalogService)(nil)

// CatalogService holds one immutable catalog per locale. Loading a locale
// swaps its catalog in one step; lookups never block each other.
type CatalogService struct {
	decoders      map[string]output.ResourceDecoder
	defaultFormat string
	filePrefix    string
	repo          output.CatalogRepository
	log           *slog.Logger

	mu       sync.RWMutex
	catalogs map[string]*entities.Catalog
}

// CatalogOption configures a CatalogService.
type CatalogOption func(*CatalogService)

// WithRepository enables Persist, PersistAll and Restore.
func WithRepository(repo output.CatalogRepository) CatalogOption {
	return func(s *CatalogService) { s.repo = repo }
}

// WithFilePrefix sets the prefix stripped from file names when a document
// does not declare its language, e.g. "stock_" for stock_ro.ts.
func WithFilePrefix(prefix string) CatalogOption {
	return func(s *CatalogService) { s.filePrefix = prefix }
}

func WithLogger(log *slog.Logger) CatalogOption {
	return func(s *CatalogService) { s.log = log }
}

// NewCatalogService registers decoders by format name. The first decoder is
// the one Load uses.
func NewCatalogService(decoders []output.ResourceDecoder, opts ...CatalogOption) *CatalogService {
	s := &CatalogService{
		decoders: make(map[string]output.ResourceDecoder, len(decoders)),
		log:      slog.Default(),
		catalogs: make(map[string]*entities.Catalog),
	}
	for _, d := range decoders {
		if s.defaultFormat == "" {
			s.defaultFormat = d.Format()
		}
		s.decoders[d.Format()] = d
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func normalizeLocale(id string) string {
	return strings.TrimSpace(id)
}

// Load parses data with the default decoder and installs it as localeID's
// catalog.
func (s *CatalogService) Load(localeID string, data []byte) (*entities.Catalog, error) {
	return s.LoadFormat(localeID, s.defaultFormat, data)
}

func (s *CatalogService) LoadFormat(localeID, format string, data []byte) (*entities.Catalog, error) {
	locale := normalizeLocale(localeID)
	if locale == "" {
		return nil, domain.ErrEmptyLocale
	}
	doc, err := s.decode(locale, format, data)
	if err != nil {
		return nil, err
	}
	return s.install(entities.NewCatalog(locale, doc)), nil
}

func (s *CatalogService) decode(locale, format string, data []byte) (entities.Document, error) {
	dec, ok := s.decoders[format]
	if !ok {
		return entities.Document{}, fmt.Errorf("%w: %q", domain.ErrUnknownFormat, format)
	}
	doc, err := dec.Decode(data)
	if err != nil {
		return entities.Document{}, &domain.ParseError{Locale: locale, Format: format, Err: err}
	}
	return doc, nil
}

func (s *CatalogService) install(c *entities.Catalog) *entities.Catalog {
	locale := c.Locale

	s.mu.Lock()
	s.catalogs[locale] = c
	s.mu.Unlock()

	st := c.Stats()
	s.log.Info("catalog loaded",
		"locale", locale,
		"contexts", st.Contexts,
		"messages", st.Messages,
		"translated", st.Translated,
	)
	if c.Duplicates > 0 {
		s.log.Warn("duplicate messages dropped", "locale", locale, "count", c.Duplicates)
	}
	return c
}

// LoadFS loads every file in fsys matching pattern. The decoder is chosen by
// file extension; files no decoder handles (compiled .qm tables, say) are
// skipped. The locale is the document's declared language, or the file name
// without prefix and extension. Files are loaded in name order and loading
// stops at the first error; locales loaded before it stay loaded.
func (s *CatalogService) LoadFS(fsys fs.FS, pattern string) ([]string, error) {
	paths, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	sort.Strings(paths)

	loaded := make([]string, 0, len(paths))
	for _, p := range paths {
		format := strings.TrimPrefix(path.Ext(p), ".")
		if _, ok := s.decoders[format]; !ok {
			s.log.Debug("resource skipped, no decoder", "file", p, "format", format)
			continue
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return loaded, fmt.Errorf("read %s: %w", p, err)
		}
		fallback := strings.TrimPrefix(strings.TrimSuffix(path.Base(p), path.Ext(p)), s.filePrefix)
		doc, err := s.decode(fallback, format, data)
		if err != nil {
			return loaded, fmt.Errorf("load %s: %w", p, err)
		}
		locale := normalizeLocale(doc.Language)
		if locale == "" {
			locale = normalizeLocale(fallback)
		}
		if locale == "" {
			return loaded, fmt.Errorf("load %s: %w", p, domain.ErrEmptyLocale)
		}
		s.install(entities.NewCatalog(locale, doc))
		loaded = append(loaded, locale)
	}
	return loaded, nil
}

func (s *CatalogService) get(localeID string) *entities.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalogs[normalizeLocale(localeID)]
}

// Lookup returns the translation of sourceText, or sourceText itself when
// the locale, context or message is unknown or the translation is empty.
func (s *CatalogService) Lookup(localeID, contextName, sourceText string) string {
	if tr, ok := s.get(localeID).Translate(contextName, sourceText, ""); ok {
		return tr
	}
	return sourceText
}

// LookupDisambiguated looks the message up with its disambiguation comment
// first and without it second.
func (s *CatalogService) LookupDisambiguated(localeID, contextName, sourceText, comment string) string {
	c := s.get(localeID)
	if tr, ok := c.Translate(contextName, sourceText, comment); ok {
		return tr
	}
	if comment != "" {
		if tr, ok := c.Translate(contextName, sourceText, ""); ok {
			return tr
		}
	}
	return sourceText
}

// LookupPlural picks the numerus form for n and replaces %n with n.
func (s *CatalogService) LookupPlural(localeID, contextName, sourceText string, n int) string {
	text := sourceText
	if c := s.get(localeID); c != nil {
		if m, ok := c.Find(contextName, sourceText, ""); ok && m.Usable() {
			if m.Numerus {
				if form := plural.Select(c.Locale, m.Forms, n); form != "" {
					text = form
				}
			} else {
				text = m.Translation
			}
		}
	}
	return strings.ReplaceAll(text, "%n", strconv.Itoa(n))
}

func (s *CatalogService) HasLocale(localeID string) bool {
	return s.get(localeID) != nil
}

func (s *CatalogService) Locales() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.catalogs))
	for l := range s.catalogs {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

func (s *CatalogService) Catalog(localeID string) (*entities.Catalog, bool) {
	c := s.get(localeID)
	return c, c != nil
}

// Catalogs returns every loaded catalog ordered by locale.
func (s *CatalogService) Catalogs() []*entities.Catalog {
	locales := s.Locales()
	out := make([]*entities.Catalog, 0, len(locales))
	for _, l := range locales {
		if c := s.get(l); c != nil {
			out = append(out, c)
		}
	}
	return out
}

func (s *CatalogService) Persist(ctx context.Context, localeID string) error {
	if s.repo == nil {
		return domain.ErrPersistenceDisabled
	}
	c := s.get(localeID)
	if c == nil {
		return fmt.Errorf("persist %q: %w", localeID, domain.ErrLocaleNotFound)
	}
	if err := s.repo.Save(ctx, c); err != nil {
		return fmt.Errorf("persist %q: %w", c.Locale, err)
	}
	s.log.Info("catalog persisted", "locale", c.Locale)
	return nil
}

func (s *CatalogService) PersistAll(ctx context.Context) error {
	if s.repo == nil {
		return domain.ErrPersistenceDisabled
	}
	for _, l := range s.Locales() {
		if err := s.Persist(ctx, l); err != nil {
			return err
		}
	}
	return nil
}

// Restore installs every locale stored in the repository, replacing
// in-memory catalogs of the same locale.
func (s *CatalogService) Restore(ctx context.Context) ([]string, error) {
	if s.repo == nil {
		return nil, domain.ErrPersistenceDisabled
	}
	locales, err := s.repo.ListLocales(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stored locales: %w", err)
	}
	restored := make([]string, 0, len(locales))
	for _, l := range locales {
		stored, err := s.repo.FindByLocale(ctx, l)
		if err != nil {
			return restored, fmt.Errorf("restore %q: %w", l, err)
		}
		s.install(stored)
		restored = append(restored, stored.Locale)
	}
	return restored, nil
}
