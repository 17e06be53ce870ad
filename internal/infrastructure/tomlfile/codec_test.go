package tomlfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walletl10n/internal/domain/entities"
)

func TestDecode(t *testing.T) {
	const input = `
language = "ro"
source_language = "en"

[[context]]
name = "AddressBookPage"

[[context.message]]
source = "&New"
translation = "Nou"

[[context.message]]
source = "&Edit"
translation = ""
status = "unfinished"

[[context]]
name = "AddressTableModel"

[[context]]
name = "TransactionView"

[[context.message]]
source = "%n day(s)"
translation = ""
numerus = true
forms = ["%n zi", "%n zile", "%n de zile"]
`
	doc, err := NewCodec().Decode([]byte(input))
	require.NoError(t, err)

	assert.Equal(t, "ro", doc.Language)
	assert.Equal(t, "en", doc.SourceLanguage)
	require.Len(t, doc.Contexts, 3)
	assert.Equal(t, []entities.Message{
		{Source: "&New", Translation: "Nou"},
		{Source: "&Edit", Status: entities.StatusUnfinished},
	}, doc.Contexts[0].Messages)
	assert.Empty(t, doc.Contexts[1].Messages)
	assert.Equal(t, []string{"%n zi", "%n zile", "%n de zile"}, doc.Contexts[2].Messages[0].Forms)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"empty":          "  \n",
		"syntax":         "language = \"ro\"\n[[context]\n",
		"unknown key":    "language = \"ro\"\ncolour = \"red\"\n",
		"missing name":   "[[context]]\n[[context.message]]\nsource = \"a\"\n",
		"missing source": "[[context]]\nname = \"A\"\n[[context.message]]\ntranslation = \"b\"\n",
		"bad status":     "[[context]]\nname = \"A\"\n[[context.message]]\nsource = \"a\"\nstatus = \"done\"\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewCodec().Decode([]byte(input))
			assert.Error(t, err)
		})
	}
}

func TestEncodeIsReadBack(t *testing.T) {
	doc := entities.Document{
		Language: "ru_RU",
		Contexts: []entities.Context{
			{Name: "AddressBookPage", Messages: []entities.Message{
				{Source: "&New", Translation: "Новый"},
				{Source: "Label", Comment: "column", Status: entities.StatusObsolete},
			}},
			{Name: "BanTableModel"},
		},
	}

	out, err := NewCodec().Encode(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Новый")

	back, err := NewCodec().Decode(out)
	require.NoError(t, err)
	assert.Equal(t, doc.Language, back.Language)
	require.Len(t, back.Contexts, 2)
	assert.Equal(t, doc.Contexts[0].Messages, back.Contexts[0].Messages)
	assert.Equal(t, "BanTableModel", back.Contexts[1].Name)
	assert.Empty(t, back.Contexts[1].Messages)
}
