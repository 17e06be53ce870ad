// Package tsfile decodes Qt Linguist translation source (.ts) documents.
package tsfile

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"

	"walletl10n/internal/domain/entities"
	"walletl10n/internal/ports/output"
)

// Format is the name the decoder registers under.
const Format = "ts"

var _ output.ResourceDecoder = (*Decoder)(nil)

type tsDocument struct {
	XMLName        xml.Name    `xml:"TS"`
	Version        string      `xml:"version,attr"`
	Language       string      `xml:"language,attr"`
	SourceLanguage string      `xml:"sourcelanguage,attr"`
	Contexts       []tsContext `xml:"context"`
}

type tsContext struct {
	Name     *string     `xml:"name"`
	Messages []tsMessage `xml:"message"`
}

type tsMessage struct {
	Numerus     string         `xml:"numerus,attr"`
	Source      *string        `xml:"source"`
	Comment     string         `xml:"comment"`
	Translation *tsTranslation `xml:"translation"`
}

type tsTranslation struct {
	Type  string   `xml:"type,attr"`
	Text  string   `xml:",chardata"`
	Forms []string `xml:"numerusform"`
}

// Decoder reads TS XML into a document.
type Decoder struct{}

func NewDecoder() *Decoder { return &Decoder{} }

func (*Decoder) Format() string { return Format }

// Decode parses data. The whole document must be well formed; anything but
// whitespace, comments or processing instructions after </TS> is rejected.
func (*Decoder) Decode(data []byte) (entities.Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = true
	dec.CharsetReader = charsetReader

	var raw tsDocument
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return entities.Document{}, errors.New("empty document")
		}
		return entities.Document{}, err
	}
	if err := expectEOF(dec); err != nil {
		return entities.Document{}, err
	}
	return raw.toDocument()
}

func (raw tsDocument) toDocument() (entities.Document, error) {
	doc := entities.Document{
		Language:       strings.TrimSpace(raw.Language),
		SourceLanguage: strings.TrimSpace(raw.SourceLanguage),
		Version:        raw.Version,
		Contexts:       make([]entities.Context, 0, len(raw.Contexts)),
	}
	for ci, rc := range raw.Contexts {
		if rc.Name == nil {
			return entities.Document{}, fmt.Errorf("context #%d: missing <name>", ci+1)
		}
		ctx := entities.Context{Name: *rc.Name, Messages: make([]entities.Message, 0, len(rc.Messages))}
		for mi, rm := range rc.Messages {
			m, err := rm.toMessage()
			if err != nil {
				return entities.Document{}, fmt.Errorf("context %q message #%d: %w", ctx.Name, mi+1, err)
			}
			ctx.Messages = append(ctx.Messages, m)
		}
		doc.Contexts = append(doc.Contexts, ctx)
	}
	return doc, nil
}

func (rm tsMessage) toMessage() (entities.Message, error) {
	if rm.Source == nil {
		return entities.Message{}, errors.New("missing <source>")
	}
	m := entities.Message{
		Source:  *rm.Source,
		Comment: rm.Comment,
		Numerus: rm.Numerus == "yes",
	}
	if rm.Translation == nil {
		return m, nil
	}
	m.Status = entities.MessageStatus(rm.Translation.Type)
	if !m.Status.Valid() {
		return entities.Message{}, fmt.Errorf("unknown translation type %q", rm.Translation.Type)
	}
	if m.Numerus {
		m.Forms = rm.Translation.Forms
	} else {
		m.Translation = rm.Translation.Text
	}
	return m, nil
}

func expectEOF(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return errors.New("unexpected text after </TS>")
			}
		case xml.Comment, xml.ProcInst, xml.Directive:
		default:
			return fmt.Errorf("unexpected %T after </TS>", tok)
		}
	}
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}
