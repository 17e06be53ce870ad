package i18n

import (
	"io"
	"io/fs"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walletl10n/internal/domain/entities"
	"walletl10n/internal/infrastructure/tsfile"
	"walletl10n/locales"
)

func shippedCatalog(t *testing.T, file string) *entities.Catalog {
	t.Helper()
	data, err := fs.ReadFile(locales.FS, file)
	require.NoError(t, err)
	doc, err := tsfile.NewDecoder().Decode(data)
	require.NoError(t, err)
	return entities.NewCatalog(doc.Language, doc)
}

func newTestTranslator(t *testing.T, catalogs ...*entities.Catalog) *Translator {
	t.Helper()
	return NewTranslator("en", catalogs, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestTranslateCatalogMessages(t *testing.T) {
	tr := newTestTranslator(t, shippedCatalog(t, "stock_ro.ts"), shippedCatalog(t, "stock_ru_RU.ts"))

	key := MessageID("AddressBookPage", "&New", "")
	assert.Equal(t, "Nou", tr.T("ro", key, nil))
	assert.Equal(t, "Новый", tr.T("ru_RU", key, nil))
	assert.Equal(t, "Новый", tr.T("ru", key, nil), "base language negotiates to the regional catalog")
	assert.Equal(t, "&New", tr.T("de", key, nil))
	assert.Equal(t, "Missing", tr.T("ro", MessageID("AddressBookPage", "Missing", ""), nil))
	assert.Equal(t, "", tr.T("ro", "", nil))
}

func TestTranslateNumerus(t *testing.T) {
	ru := entities.NewCatalog("ru_RU", entities.Document{Contexts: []entities.Context{
		{Name: "StockGUI", Messages: []entities.Message{
			{Source: "%n active connection(s)", Numerus: true, Forms: []string{
				"%n активное соединение", "%n активных соединения", "%n активных соединений",
			}},
			{Source: "Processed %n block(s)", Numerus: true, Forms: []string{"", "", ""}},
		}},
	}})
	tr := newTestTranslator(t, ru)

	key := MessageID("StockGUI", "%n active connection(s)", "")
	assert.Equal(t, "1 активное соединение", tr.T("ru_RU", key, map[string]any{"Count": 1}))
	assert.Equal(t, "3 активных соединения", tr.T("ru_RU", key, map[string]any{"Count": 3}))
	assert.Equal(t, "11 активных соединений", tr.T("ru_RU", key, map[string]any{"Count": 11}))

	empty := MessageID("StockGUI", "Processed %n block(s)", "")
	assert.Equal(t, "Processed 4 block(s)", tr.T("ru_RU", empty, map[string]any{"Count": 4}))
}

func TestApplicationMessages(t *testing.T) {
	tr := newTestTranslator(t)

	assert.Equal(t, "No translations are loaded for xx.",
		tr.T("en", "error.locale_not_found", map[string]any{"Locale": "xx"}))
	assert.Equal(t, "Nu există traduceri încărcate pentru xx.",
		tr.T("ro", "error.locale_not_found", map[string]any{"Locale": "xx"}))
	assert.Equal(t, "Для xx переводы не загружены.",
		tr.T("ru", "error.locale_not_found", map[string]any{"Locale": "xx"}))
	assert.Equal(t, "A locale identifier is required.", tr.T("ja", "error.empty_locale", nil))
	assert.Equal(t, "no.such.key", tr.T("en", "no.such.key", nil))
}

func TestInvalidCatalogLocaleIsSkipped(t *testing.T) {
	bad := entities.NewCatalog("not a tag!", entities.Document{Contexts: []entities.Context{
		{Name: "A", Messages: []entities.Message{{Source: "b", Translation: "c"}}},
	}})
	tr := newTestTranslator(t, bad, shippedCatalog(t, "stock_ro.ts"))

	assert.Equal(t, "Nou", tr.T("ro", MessageID("AddressBookPage", "&New", ""), nil))
}

func TestFallbackText(t *testing.T) {
	assert.Equal(t, "&New", fallbackText(MessageID("AddressBookPage", "&New", "toolbar")))
	assert.Equal(t, "cli.loaded", fallbackText("cli.loaded"))
}

func TestMissKeepsCallerSpelling(t *testing.T) {
	precomposed := "\u00cenchide"
	decomposed := "I\u0302nchide"
	c := entities.NewCatalog("ro", entities.Document{Contexts: []entities.Context{
		{Name: "SendCoinsDialog", Messages: []entities.Message{{Source: precomposed, Translation: "Închide fereastra"}}},
	}})
	tr := newTestTranslator(t, c)

	assert.Equal(t, "Închide fereastra", tr.T("ro", MessageID("SendCoinsDialog", decomposed, ""), nil))
	assert.Equal(t, decomposed, tr.T("de", MessageID("SendCoinsDialog", decomposed, ""), nil))
	assert.Equal(t, decomposed, tr.T("ro", MessageID("OtherDialog", decomposed, ""), nil))
}
