package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbvtrading/quotegen-cli/internal/core/domain"
)

func newTestAssembler() *Assembler {
	return NewAssembler(domain.DefaultCompanyInfo(), "")
}

func costedTask(name string, cost, qty int64) domain.Task {
	return domain.Task{
		Name:     name,
		UnitCost: decimal.NewFromInt(cost),
		Quantity: decimal.NewFromInt(qty),
	}
}

func TestAssemble_SingleItem(t *testing.T) {
	q := &domain.Quotation{
		Header: domain.Header{
			Date:         time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			CustomerName: "Acme Corp",
			DocType:      domain.DocTypeJob,
			Payment:      "50% downpayment",
			Warranty:     "1 year on parts",
		},
		Items: []domain.Item{
			{
				Name:  "Window Type Unit",
				Tasks: []domain.Task{costedTask("Repair", 3550, 1)},
			},
		},
	}

	doc, err := newTestAssembler().Assemble(q, true)

	require.NoError(t, err)
	assert.Equal(t, "Cebu Best Value Trading Corp.", doc.Company.Name)
	assert.Equal(t, "01/15/2024", doc.Date)
	assert.Equal(t, "Acme Corp", doc.Customer)
	assert.Equal(t, "Sir/Madame,", doc.Salutation)
	assert.Equal(t, "Job to be done:", doc.Heading)
	assert.Equal(t, "J.B Yap Jr.", doc.Manager)
	assert.Equal(t, "Acme Corp-01_15_2024", doc.BaseName)

	require.Len(t, doc.Items, 1)
	assert.Equal(t, "1. Window Type Unit", doc.Items[0].Header)
	require.Len(t, doc.Items[0].Tasks, 1)
	assert.Equal(t, "1. Repair – ₱3,550", doc.Items[0].Tasks[0])
	assert.Equal(t, "Total Price – ₱ 3,550.00", doc.Items[0].Total)

	// One item: the grand total line is suppressed.
	assert.Empty(t, doc.GrandTotal)
}

func TestAssemble_MultipleItemsShowGrandTotal(t *testing.T) {
	q := &domain.Quotation{
		Header: domain.Header{
			Date:         time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			CustomerName: "Acme Corp",
		},
		Items: []domain.Item{
			{Name: "Unit A", Tasks: []domain.Task{costedTask("Cleaning", 400, 2)}},
			{Name: "Unit B", Tasks: []domain.Task{costedTask("Installation", 7500, 1)}},
		},
	}

	doc, err := newTestAssembler().Assemble(q, false)

	require.NoError(t, err)
	assert.Equal(t, "Summary of Quotations", doc.Heading)
	assert.Equal(t, "Total Price of All Items – ₱ 8,300.00", doc.GrandTotal)

	// Quantity over one shows the multiplication on the task line.
	assert.Equal(t, "1. Cleaning – ₱400 × 2 = ₱800", doc.Items[0].Tasks[0])
	assert.Equal(t, "Total Price – ₱ 800.00", doc.Items[0].Total)
}

func TestAssemble_ItemHeaderBrandAndModel(t *testing.T) {
	tests := []struct {
		name  string
		brand string
		model string
		want  string
	}{
		{"brand and model", "Carrier", "X100", "1. Unit A - Carrier X100"},
		{"brand only", "Carrier", "", "1. Unit A - Carrier"},
		{"model without brand", "", "X100", "1. Unit A X100"},
		{"neither", "", "", "1. Unit A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &domain.Quotation{
				Header: domain.Header{CustomerName: "Acme Corp", Date: time.Now()},
				Items: []domain.Item{
					{
						Name:    "Unit A",
						ACBrand: tt.brand,
						ACModel: tt.model,
						Tasks:   []domain.Task{costedTask("Cleaning", 400, 1)},
					},
				},
			}

			doc, err := newTestAssembler().Assemble(q, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, doc.Items[0].Header)
		})
	}
}

func TestAssemble_AttentionLine(t *testing.T) {
	tests := []struct {
		name      string
		attention string
		phone     string
		want      string
	}{
		{"attention with phone", "Mr. Reyes", "0917-555-1234", "Mr. Reyes | 0917-555-1234"},
		{"attention only", "Mr. Reyes", "", "Mr. Reyes"},
		{"phone without attention is dropped", "", "0917-555-1234", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := attentionLine(domain.Header{Attention: tt.attention, Phone: tt.phone})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAssemble_OpeningIncludesInstallationLocation(t *testing.T) {
	got := openingLine(domain.Header{InstallationLocation: "Rooftop, Bldg 2"})
	assert.Equal(t, openingText+" Rooftop, Bldg 2", got)

	assert.Equal(t, openingText, openingLine(domain.Header{}))
}

func TestAssemble_HeadingByDocType(t *testing.T) {
	assert.Equal(t, "Summary of Quotations", heading(domain.DocTypeSummary))
	assert.Equal(t, "Job to be done:", heading(domain.DocTypeJob))

	// An unset doc_type reads as a summary.
	assert.Equal(t, "Summary of Quotations", heading(""))
}

func TestAssemble_ManagerOverride(t *testing.T) {
	q := &domain.Quotation{
		Header: domain.Header{
			Date:         time.Now(),
			CustomerName: "Acme Corp",
			Manager:      "A. Santos",
		},
		Items: []domain.Item{
			{Name: "Unit A", Tasks: []domain.Task{costedTask("Cleaning", 400, 1)}},
		},
	}

	doc, err := newTestAssembler().Assemble(q, false)

	require.NoError(t, err)
	assert.Equal(t, "A. Santos", doc.Manager)
}

func TestAssemble_ValidationStopsAssembly(t *testing.T) {
	q := &domain.Quotation{
		Header: domain.Header{Date: time.Now(), CustomerName: "Acme Corp"},
		Items: []domain.Item{
			{Name: "Unit A", Tasks: []domain.Task{costedTask("Cleaning", 400, 1)}},
		},
	}

	// Terms required but payment and warranty are absent.
	doc, err := newTestAssembler().Assemble(q, true)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Nil(t, doc)
}
