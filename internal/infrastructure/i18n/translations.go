package i18n

import (
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"walletl10n/internal/domain/entities"
	"walletl10n/internal/domain/plural"
	"walletl10n/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Ensure Translator implements the output.Translator port.
var _ output.T = (*Translator)(nil)

// keySep separates context, comment and source in catalog message IDs.
const keySep = "\x04"

// MessageID builds the key T expects for a catalog message.
func MessageID(context, source, comment string) string {
	return context + keySep + comment + keySep + source
}

// bundleID is the ID a key is registered under: its source part in NFC, so
// canonically equivalent spellings share one message.
func bundleID(key string) string {
	parts := strings.SplitN(key, keySep, 3)
	if len(parts) != 3 {
		return key
	}
	return parts[0] + keySep + parts[1] + keySep + norm.NFC.String(parts[2])
}

// fallbackText is what T shows when nothing matches: the source text of a
// catalog key, or the key itself for application messages.
func fallbackText(key string) string {
	parts := strings.SplitN(key, keySep, 3)
	if len(parts) == 3 {
		return parts[2]
	}
	return key
}

// Translator is a thin wrapper around go-i18n's Bundle/Localizer holding the
// embedded application messages plus every loaded catalog.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	numerus         map[string]struct{}
	log             *slog.Logger
}

// NewTranslator builds a Translator using the given default locale (e.g.
// "en"). Catalogs whose locale is not a valid language tag, or that go-i18n
// has no plural rule for, are skipped with a warning.
func NewTranslator(defaultLocale string, catalogs []*entities.Catalog, log *slog.Logger) *Translator {
	if log == nil {
		log = slog.Default()
	}
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.en.toml", "active.ro.toml", "active.ru-RU.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Warn("i18n: failed to load message file", "file", file, "error", err)
		}
	}

	t := &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		numerus:         make(map[string]struct{}),
		log:             log,
	}
	for _, c := range catalogs {
		if err := t.addCatalog(c); err != nil {
			log.Warn("i18n: catalog skipped", "locale", c.Locale, "error", err)
		}
	}
	return t
}

func (t *Translator) addCatalog(c *entities.Catalog) error {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return fmt.Errorf("parse locale tag %q: %w", c.Locale, err)
	}
	categories := plural.Categories(c.Locale)

	var messages []*i18n.Message
	for _, ctx := range c.Contexts {
		for _, m := range ctx.Messages {
			if !m.Usable() {
				continue
			}
			id := bundleID(MessageID(ctx.Name, m.Source, m.Comment))
			msg := &i18n.Message{ID: id}
			if m.Numerus {
				setForms(msg, categories, m.Forms)
				t.numerus[id] = struct{}{}
			} else {
				msg.Other = m.Translation
			}
			messages = append(messages, msg)
		}
	}
	if err := t.bundle.AddMessages(tag, messages...); err != nil {
		return fmt.Errorf("add messages: %w", err)
	}
	return nil
}

func setForms(msg *i18n.Message, categories, forms []string) {
	for i, form := range forms {
		if i >= len(categories) {
			break
		}
		switch categories[i] {
		case plural.One:
			msg.One = form
		case plural.Few:
			msg.Few = form
		case plural.Many:
			msg.Many = form
		case plural.Other:
			msg.Other = form
		}
	}
	if msg.Other == "" && len(forms) > 0 {
		msg.Other = forms[len(forms)-1]
	}
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the source text (or the key itself).
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, strings.ReplaceAll(locale, "_", "-"))
	}
	languages = append(languages, t.defaultLanguage.String())

	id := bundleID(key)
	cfg := &i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	}
	count, hasCount := data["Count"]
	if _, ok := t.numerus[id]; ok && hasCount {
		cfg.PluralCount = count
	}

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(cfg)
	if err != nil {
		t.log.Debug("i18n: localize failed", "locale", locale, "error", err)
		msg = fallbackText(key)
	}
	if hasCount {
		msg = strings.ReplaceAll(msg, "%n", fmt.Sprint(count))
	}
	return msg
}
