package entities

// MessageStatus mirrors the type attribute of a translation.
type MessageStatus string

const (
	StatusFinished   MessageStatus = ""
	StatusUnfinished MessageStatus = "unfinished"
	StatusObsolete   MessageStatus = "obsolete"
	StatusVanished   MessageStatus = "vanished"
)

// Valid reports whether s is one of the known statuses.
func (s MessageStatus) Valid() bool {
	switch s {
	case StatusFinished, StatusUnfinished, StatusObsolete, StatusVanished:
		return true
	}
	return false
}

// Message is one source string and its translation within a context.
type Message struct {
	Source      string
	Comment     string // disambiguation, part of the lookup key
	Translation string // empty = not yet translated
	Status      MessageStatus
	Numerus     bool
	Forms       []string // plural forms, only when Numerus
}

// Retired reports whether the message was dropped from the UI.
func (m Message) Retired() bool {
	return m.Status == StatusObsolete || m.Status == StatusVanished
}

// Usable reports whether the message carries text that may be shown instead
// of its source.
func (m Message) Usable() bool {
	if m.Retired() {
		return false
	}
	if m.Numerus {
		for _, f := range m.Forms {
			if f != "" {
				return true
			}
		}
		return false
	}
	return m.Translation != ""
}

func (m Message) clone() Message {
	if m.Forms != nil {
		m.Forms = append([]string(nil), m.Forms...)
	}
	return m
}

// Context is a named group of messages belonging to one UI surface.
type Context struct {
	Name     string
	Messages []Message
}

// Document is a decoded resource file before duplicate resolution.
type Document struct {
	Language       string
	SourceLanguage string
	Version        string
	Contexts       []Context
}
