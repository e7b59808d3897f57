package driven

import (
	"context"

	"github.com/cbvtrading/quotegen-cli/internal/core/domain"
)

// DocumentRenderer turns an assembled document model into the bytes of
// the primary artifact. The renderer must emit the sections in model
// order; it decides typography only.
type DocumentRenderer interface {
	// Render produces the artifact bytes for the document.
	Render(ctx context.Context, doc *domain.QuoteDocument) ([]byte, error)

	// Extension returns the artifact file extension without the dot.
	Extension() string
}
