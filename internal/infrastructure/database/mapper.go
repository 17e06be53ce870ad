package database

import (
	"github.com/jackc/pgx/v5/pgtype"

	"walletl10n/internal/domain/entities"
)

// messageRow is one row of the context/message join. Message columns are
// NULL for contexts without messages.
type messageRow struct {
	ContextName string
	Source      pgtype.Text
	Comment     pgtype.Text
	Translation pgtype.Text
	Status      pgtype.Text
	Numerus     pgtype.Bool
	Forms       []string
}

func (r messageRow) hasMessage() bool {
	return r.Source.Valid
}

func messageToDomain(r messageRow) entities.Message {
	m := entities.Message{
		Source:      r.Source.String,
		Comment:     r.Comment.String,
		Translation: r.Translation.String,
		Status:      entities.MessageStatus(r.Status.String),
		Numerus:     r.Numerus.Valid && r.Numerus.Bool,
	}
	if m.Numerus {
		m.Forms = r.Forms
	}
	return m
}

// formsColumn never returns nil so the NOT NULL column always gets an array.
func formsColumn(m entities.Message) []string {
	if m.Forms == nil {
		return []string{}
	}
	return m.Forms
}
