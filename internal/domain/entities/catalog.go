package entities

import (
	"sort"

	"golang.org/x/text/unicode/norm"
)

type messageKey struct {
	source  string
	comment string
}

func keyOf(source, comment string) messageKey {
	return messageKey{source: norm.NFC.String(source), comment: comment}
}

// Catalog holds every context and message of one locale. It is never
// modified after NewCatalog returns.
type Catalog struct {
	Locale         string
	SourceLanguage string
	Version        string
	Contexts       []Context
	// Duplicates counts messages dropped because an earlier message in the
	// same context had the same source and comment.
	Duplicates int

	index map[string]map[messageKey]*Message
}

// CatalogStats summarises translation coverage of a catalog.
type CatalogStats struct {
	Contexts   int
	Messages   int
	Translated int
	Empty      int
	Unfinished int
	Retired    int
	Duplicates int
}

// NewCatalog builds the lookup structure for locale from a decoded document.
// Context blocks sharing a name are merged in document order and the first
// message for a given (source, comment) key wins.
func NewCatalog(locale string, doc Document) *Catalog {
	c := &Catalog{
		Locale:         locale,
		SourceLanguage: doc.SourceLanguage,
		Version:        doc.Version,
		index:          make(map[string]map[messageKey]*Message),
	}

	positions := make(map[string]int)
	for _, dc := range doc.Contexts {
		pos, ok := positions[dc.Name]
		if !ok {
			pos = len(c.Contexts)
			positions[dc.Name] = pos
			c.Contexts = append(c.Contexts, Context{Name: dc.Name})
		}
		seen := make(map[messageKey]struct{}, len(c.Contexts[pos].Messages)+len(dc.Messages))
		for _, m := range c.Contexts[pos].Messages {
			seen[keyOf(m.Source, m.Comment)] = struct{}{}
		}
		for _, m := range dc.Messages {
			k := keyOf(m.Source, m.Comment)
			if _, dup := seen[k]; dup {
				c.Duplicates++
				continue
			}
			seen[k] = struct{}{}
			c.Contexts[pos].Messages = append(c.Contexts[pos].Messages, m.clone())
		}
	}

	for i := range c.Contexts {
		ctx := &c.Contexts[i]
		byKey := make(map[messageKey]*Message, len(ctx.Messages))
		for j := range ctx.Messages {
			m := &ctx.Messages[j]
			byKey[keyOf(m.Source, m.Comment)] = m
		}
		c.index[ctx.Name] = byKey
	}
	return c
}

// Find returns the stored message for the key, whether usable or not.
func (c *Catalog) Find(context, source, comment string) (Message, bool) {
	if c == nil {
		return Message{}, false
	}
	m, ok := c.index[context][keyOf(source, comment)]
	if !ok {
		return Message{}, false
	}
	return m.clone(), true
}

// Translate returns the translation for the key when one is usable.
func (c *Catalog) Translate(context, source, comment string) (string, bool) {
	m, ok := c.Find(context, source, comment)
	if !ok || m.Numerus || !m.Usable() {
		return "", false
	}
	return m.Translation, true
}

// HasContext reports whether a context with this name exists.
func (c *Catalog) HasContext(name string) bool {
	if c == nil {
		return false
	}
	_, ok := c.index[name]
	return ok
}

// ContextNames returns the context names sorted alphabetically.
func (c *Catalog) ContextNames() []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.Contexts))
	for _, ctx := range c.Contexts {
		out = append(out, ctx.Name)
	}
	sort.Strings(out)
	return out
}

// Document returns the catalog contents as a document, suitable for
// encoding or persisting.
func (c *Catalog) Document() Document {
	if c == nil {
		return Document{}
	}
	doc := Document{
		Language:       c.Locale,
		SourceLanguage: c.SourceLanguage,
		Version:        c.Version,
		Contexts:       make([]Context, len(c.Contexts)),
	}
	for i, ctx := range c.Contexts {
		msgs := make([]Message, len(ctx.Messages))
		for j, m := range ctx.Messages {
			msgs[j] = m.clone()
		}
		doc.Contexts[i] = Context{Name: ctx.Name, Messages: msgs}
	}
	return doc
}

func (c *Catalog) Stats() CatalogStats {
	if c == nil {
		return CatalogStats{}
	}
	st := CatalogStats{Contexts: len(c.Contexts), Duplicates: c.Duplicates}
	for _, ctx := range c.Contexts {
		for _, m := range ctx.Messages {
			st.Messages++
			switch {
			case m.Retired():
				st.Retired++
			case !m.Usable():
				st.Empty++
			default:
				st.Translated++
				if m.Status == StatusUnfinished {
					st.Unfinished++
				}
			}
		}
	}
	return st
}
