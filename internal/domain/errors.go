package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrParse               = errors.New("malformed translation resource")
	ErrLocaleNotFound      = errors.New("locale not found")
	ErrEmptyLocale         = errors.New("locale identifier is empty")
	ErrUnknownFormat       = errors.New("unknown resource format")
	ErrPersistenceDisabled = errors.New("catalog persistence is not configured")
)

// ParseError reports a resource document that could not be decoded for a locale.
type ParseError struct {
	Locale string
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Locale == "" {
		return fmt.Sprintf("parse %s resource: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("parse %s resource for locale %q: %v", e.Format, e.Locale, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is makes every ParseError match ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// Code returns a stable machine-readable code for a domain error, or "" when
// err is not one.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrParse):
		return "parse_error"
	case errors.Is(err, ErrLocaleNotFound):
		return "locale_not_found"
	case errors.Is(err, ErrEmptyLocale):
		return "empty_locale"
	case errors.Is(err, ErrUnknownFormat):
		return "unknown_format"
	case errors.Is(err, ErrPersistenceDisabled):
		return "persistence_disabled"
	default:
		return ""
	}
}
