package output

import "walletl10n/internal/domain/entities"

// ResourceDecoder turns raw resource bytes into a document. Implementations
// must reject malformed input rather than return a partial document.
type ResourceDecoder interface {
	Format() string
	Decode(data []byte) (entities.Document, error)
}
