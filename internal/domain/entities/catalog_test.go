package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateMatchesCanonicallyEquivalentSource(t *testing.T) {
	// I + combining circumflex versus precomposed U+00CE
	decomposed := "I\u0302nchide"
	c := NewCatalog("ro", Document{Contexts: []Context{
		{Name: "AddressBookPage", Messages: []Message{{Source: decomposed, Translation: "Close"}}},
	}})

	got, ok := c.Translate("AddressBookPage", "\u00cenchide", "")
	assert.True(t, ok)
	assert.Equal(t, "Close", got)

	m, _ := c.Find("AddressBookPage", "\u00cenchide", "")
	assert.Equal(t, decomposed, m.Source, "stored text is kept verbatim")
}

func TestStats(t *testing.T) {
	c := NewCatalog("ru_RU", Document{Contexts: []Context{
		{Name: "CoinControlDialog", Messages: []Message{
			{Source: "Date", Translation: "Дата"},
			{Source: "Amount", Translation: "Сумма", Status: StatusUnfinished},
			{Source: "Label"},
			{Source: "Fee", Translation: "Комиссия", Status: StatusObsolete},
			{Source: "%n input(s)", Numerus: true, Forms: []string{"", "", ""}},
			{Source: "Date", Translation: "Число"},
		}},
		{Name: "AddressTableModel"},
	}})

	assert.Equal(t, CatalogStats{
		Contexts:   2,
		Messages:   5,
		Translated: 2,
		Empty:      2,
		Unfinished: 1,
		Retired:    1,
		Duplicates: 1,
	}, c.Stats())
	assert.True(t, c.HasContext("AddressTableModel"))
	assert.False(t, c.HasContext("Intro"))
}

func TestNilCatalogLookups(t *testing.T) {
	var c *Catalog
	_, ok := c.Translate("A", "b", "")
	assert.False(t, ok)
	assert.False(t, c.HasContext("A"))
	assert.Nil(t, c.ContextNames())
	assert.Equal(t, Document{}, c.Document())
	assert.Equal(t, CatalogStats{}, c.Stats())
}

func TestReturnedFormsAreCopies(t *testing.T) {
	forms := []string{"%n adresă", "%n adrese", "%n de adrese"}
	c := NewCatalog("ro", Document{Contexts: []Context{{Name: "AddressBookPage", Messages: []Message{
		{Source: "%n address(es)", Numerus: true, Forms: forms},
	}}}})
	forms[0] = "changed by decoder"

	m, ok := c.Find("AddressBookPage", "%n address(es)", "")
	require.True(t, ok)
	m.Forms[0] = "changed by caller"

	doc := c.Document()
	doc.Contexts[0].Messages[0].Forms[1] = "changed through document"

	again, ok := c.Find("AddressBookPage", "%n address(es)", "")
	require.True(t, ok)
	assert.Equal(t, []string{"%n adresă", "%n adrese", "%n de adrese"}, again.Forms)
}

func TestDocumentPreservesOrder(t *testing.T) {
	doc := Document{Language: "ro", Version: "2.1", Contexts: []Context{
		{Name: "WalletView", Messages: []Message{{Source: "b"}, {Source: "a", Translation: "A"}}},
		{Name: "AddressBookPage"},
	}}
	c := NewCatalog("ro", doc)

	out := c.Document()
	assert.Equal(t, "ro", out.Language)
	assert.Equal(t, "WalletView", out.Contexts[0].Name)
	assert.Equal(t, []Message{{Source: "b"}, {Source: "a", Translation: "A"}}, out.Contexts[0].Messages)
	assert.Equal(t, []string{"AddressBookPage", "WalletView"}, c.ContextNames())
}
