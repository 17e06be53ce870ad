// Package tomlfile reads and writes catalogs as TOML documents:
//
//	language = "ro"
//
//	[[context]]
//	name = "AddressBookPage"
//
//	[[context.message]]
//	source = "&New"
//	translation = "Nou"
package tomlfile

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"walletl10n/internal/domain/entities"
	"walletl10n/internal/ports/output"
)

const Format = "toml"

var _ output.ResourceDecoder = (*Codec)(nil)

type tomlDocument struct {
	Language       string        `toml:"language"`
	SourceLanguage string        `toml:"source_language,omitempty"`
	Version        string        `toml:"version,omitempty"`
	Contexts       []tomlContext `toml:"context"`
}

type tomlContext struct {
	Name     *string       `toml:"name"`
	Messages []tomlMessage `toml:"message,omitempty"`
}

type tomlMessage struct {
	Source      *string  `toml:"source"`
	Translation string   `toml:"translation"`
	Comment     string   `toml:"comment,omitempty"`
	Status      string   `toml:"status,omitempty"`
	Numerus     bool     `toml:"numerus,omitempty"`
	Forms       []string `toml:"forms,omitempty"`
}

type Codec struct{}

func NewCodec() *Codec { return &Codec{} }

func (*Codec) Format() string { return Format }

// Decode parses data strictly: unknown keys are errors.
func (*Codec) Decode(data []byte) (entities.Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return entities.Document{}, errors.New("empty document")
	}
	var raw tomlDocument
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return entities.Document{}, err
	}

	doc := entities.Document{
		Language:       raw.Language,
		SourceLanguage: raw.SourceLanguage,
		Version:        raw.Version,
		Contexts:       make([]entities.Context, 0, len(raw.Contexts)),
	}
	for ci, rc := range raw.Contexts {
		if rc.Name == nil {
			return entities.Document{}, fmt.Errorf("context #%d: missing name", ci+1)
		}
		ctx := entities.Context{Name: *rc.Name, Messages: make([]entities.Message, 0, len(rc.Messages))}
		for mi, rm := range rc.Messages {
			if rm.Source == nil {
				return entities.Document{}, fmt.Errorf("context %q message #%d: missing source", ctx.Name, mi+1)
			}
			status := entities.MessageStatus(rm.Status)
			if !status.Valid() {
				return entities.Document{}, fmt.Errorf("context %q message #%d: unknown status %q", ctx.Name, mi+1, rm.Status)
			}
			ctx.Messages = append(ctx.Messages, entities.Message{
				Source:      *rm.Source,
				Comment:     rm.Comment,
				Translation: rm.Translation,
				Status:      status,
				Numerus:     rm.Numerus,
				Forms:       rm.Forms,
			})
		}
		doc.Contexts = append(doc.Contexts, ctx)
	}
	return doc, nil
}

// Encode renders doc in the format Decode reads.
func (*Codec) Encode(doc entities.Document) ([]byte, error) {
	raw := tomlDocument{
		Language:       doc.Language,
		SourceLanguage: doc.SourceLanguage,
		Version:        doc.Version,
		Contexts:       make([]tomlContext, 0, len(doc.Contexts)),
	}
	for _, ctx := range doc.Contexts {
		name := ctx.Name
		rc := tomlContext{Name: &name}
		for _, m := range ctx.Messages {
			source := m.Source
			rc.Messages = append(rc.Messages, tomlMessage{
				Source:      &source,
				Translation: m.Translation,
				Comment:     m.Comment,
				Status:      string(m.Status),
				Numerus:     m.Numerus,
				Forms:       m.Forms,
			})
		}
		raw.Contexts = append(raw.Contexts, rc)
	}
	out, err := toml.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("encode toml: %w", err)
	}
	return out, nil
}
