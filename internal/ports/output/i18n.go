package output

// T exposes translation with language negotiation over loaded catalogs.
type T interface {
	// T renders the message identified by key for the given locale, falling
	// back to the default locale and then to the source text in the key.
	// data may carry "Count" for numerus messages (may be nil).
	T(locale, key string, data map[string]any) string
}
