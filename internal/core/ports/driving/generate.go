package driving

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/cbvtrading/quotegen-cli/internal/core/domain"
)

// Result describes the outcome of one successful generation run.
// ConversionWarning is non-nil when the secondary artifact could not be
// produced; the primary artifact still exists in that case.
type Result struct {
	Customer          string
	Date              string
	ItemCount         int
	GrandTotal        decimal.Decimal
	ArtifactPath      string
	ConversionWarning error
}

// QuotationGenerator runs the full pipeline: parse (batch mode), price,
// assemble, render, write, convert.
type QuotationGenerator interface {
	// GenerateFromFile decodes one structured batch file and generates
	// its artifacts. Batch mode enforces the payment/warranty terms.
	GenerateFromFile(ctx context.Context, path string) (*Result, error)

	// Generate renders an already collected quotation, as produced by
	// the interactive wizard.
	Generate(ctx context.Context, q *domain.Quotation) (*Result, error)
}
