package cli

import (
	"errors"

	"walletl10n/internal/domain"
)

// errorMessage maps an error to a user-facing message in the UI language.
// Domain errors get their own text; anything else is shown as-is.
func (a *App) errorMessage(err error) string {
	if err == nil {
		return ""
	}
	data := map[string]any{
		"Locale": a.lang,
		"Detail": err.Error(),
	}
	var perr *domain.ParseError
	if errors.As(err, &perr) {
		data["Locale"] = perr.Locale
		data["Detail"] = perr.Err.Error()
	}
	var lerr *localeError
	if errors.As(err, &lerr) {
		data["Locale"] = lerr.locale
	}

	code := domain.Code(err)
	if code == "" {
		code = "unknown"
	}
	return a.translator.T(a.lang, "error."+code, data)
}

// localeError attaches the requested locale to a domain error.
type localeError struct {
	locale string
	err    error
}

func (e *localeError) Error() string { return e.locale + ": " + e.err.Error() }

func (e *localeError) Unwrap() error { return e.err }
