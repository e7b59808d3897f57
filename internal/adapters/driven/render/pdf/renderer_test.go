package pdf

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbvtrading/quotegen-cli/internal/core/domain"
)

func sampleDocument() *domain.QuoteDocument {
	return &domain.QuoteDocument{
		Company:          domain.DefaultCompanyInfo(),
		Date:             "01/15/2024",
		Customer:         "Acme Corp",
		CustomerLocation: "Mandaue City",
		Attention:        "Mr. Reyes | 0917-555-1234",
		Salutation:       "Sir/Madame,",
		Opening:          "This is with reference to your request for quotation.",
		Pleased:          "We are pleased to quote the following:",
		Heading:          "Summary of Quotations",
		Items: []domain.ItemBlock{
			{
				Header:   "1. Window Type Unit - Carrier X100",
				Tasks:    []string{"1. General cleaning – ₱400 × 2 = ₱800", "2. Repair – ₱3,550"},
				Total:    "Total Price – ₱ 4,350.00",
				Warranty: "30 days",
			},
			{
				Header: "2. Split Type Unit",
				Tasks:  []string{"1. Installation – ₱7,500"},
				Total:  "Total Price – ₱ 7,500.00",
			},
		},
		GrandTotal: "Total Price of All Items – ₱ 11,850.00",
		Payment:    "50% downpayment",
		Warranty:   "Twelve (12) Months Only",
		Closing:    "Thank you very much.",
		Farewell:   "Very Truly Yours,",
		Manager:    "J.B Yap Jr.",
		BaseName:   "Acme Corp-01_15_2024",
	}
}

func TestRender_ProducesPDF(t *testing.T) {
	r := NewRenderer()

	data, err := r.Render(context.Background(), sampleDocument())

	require.NoError(t, err)
	require.Greater(t, len(data), 4)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRender_MinimalDocument(t *testing.T) {
	doc := &domain.QuoteDocument{
		Company:    domain.DefaultCompanyInfo(),
		Date:       "01/15/2024",
		Customer:   "Acme Corp",
		Salutation: "Sir/Madame,",
		Opening:    "Opening.",
		Pleased:    "Pleased.",
		Heading:    "Job to be done:",
		Items: []domain.ItemBlock{
			{Header: "1. Unit A", Tasks: []string{"1. Cleaning – ₱400"}, Total: "Total Price – ₱ 400.00"},
		},
		Closing:  "Thanks.",
		Farewell: "Very Truly Yours,",
		Manager:  "J.B Yap Jr.",
	}

	data, err := NewRenderer().Render(context.Background(), doc)

	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestCustomerLines_Labels(t *testing.T) {
	doc := sampleDocument()

	lines := customerLines(doc)

	require.Len(t, lines, 4)
	assert.Equal(t, "Date: 01/15/2024", lines[0].text)
	assert.Equal(t, "To: Acme Corp", lines[1].text)
	assert.True(t, lines[0].bold)
	assert.True(t, lines[1].bold)
	assert.Equal(t, "Mandaue City", lines[2].text)
	assert.Equal(t, "Attention: Mr. Reyes | 0917-555-1234", lines[3].text)
}

func TestCustomerLines_SkipsEmptyFields(t *testing.T) {
	lines := customerLines(&domain.QuoteDocument{Date: "01/15/2024", Customer: "Acme Corp"})

	require.Len(t, lines, 2)
	assert.Equal(t, "Date: 01/15/2024", lines[0].text)
	assert.Equal(t, "To: Acme Corp", lines[1].text)
}

func TestSignatureLines_IncludesDateRow(t *testing.T) {
	lines := signatureLines("J.B Yap Jr.")

	require.Len(t, lines, 3)
	assert.Equal(t, [2]string{"J.B Yap Jr.", "Conforme:_______________"}, lines[0])
	assert.Equal(t, [2]string{"Manager", "Signature over printed name"}, lines[1])
	assert.Equal(t, [2]string{"", "Date:_______________"}, lines[2])
}

func TestRender_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRenderer().Render(ctx, sampleDocument())

	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtension(t *testing.T) {
	assert.Equal(t, "pdf", NewRenderer().Extension())
}
