package services

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cbvtrading/quotegen-cli/internal/core/domain"
)

var one = decimal.NewFromInt(1)

// Fixed document copy.
const (
	salutationText = "Sir/Madame,"
	openingText    = "This is with reference to your request for quotation for the installation/repair of the " +
		"following air-conditioner to be installed at:"
	pleasedText    = "We are pleased to quote the following:"
	headingSummary = "Summary of Quotations"
	headingJob     = "Job to be done:"
	closingText    = "Thank you very much for giving us the opportunity to quote and we hope to have the pleasure of serving you."
	farewellText   = "Very Truly Yours,"
)

// Assembler builds the ordered document model from a validated
// quotation. The letterhead and fallback manager come from configuration.
type Assembler struct {
	company        domain.CompanyInfo
	defaultManager string
}

// NewAssembler creates an assembler with the given letterhead and
// default manager name.
func NewAssembler(company domain.CompanyInfo, defaultManager string) *Assembler {
	if defaultManager == "" {
		defaultManager = domain.DefaultManager
	}
	return &Assembler{company: company, defaultManager: defaultManager}
}

// Assemble validates the quotation and produces the document model.
// Nothing may be written before validation passes; a validation failure
// here guarantees no partial output exists.
func (a *Assembler) Assemble(q *domain.Quotation, requireTerms bool) (*domain.QuoteDocument, error) {
	if err := q.Validate(requireTerms); err != nil {
		return nil, err
	}

	doc := &domain.QuoteDocument{
		Company:          a.company,
		Date:             q.Header.Date.Format("01/02/2006"),
		Customer:         q.Header.CustomerName,
		CustomerLocation: q.Header.CustomerLocation,
		Attention:        attentionLine(q.Header),
		Salutation:       salutationText,
		Opening:          openingLine(q.Header),
		Pleased:          pleasedText,
		Heading:          heading(q.Header.DocType),
		Note:             q.Header.Note,
		Payment:          q.Header.Payment,
		Warranty:         q.Header.Warranty,
		Exceptions:       q.Header.Exceptions,
		Closing:          closingText,
		Farewell:         farewellText,
		Manager:          managerName(q.Header.Manager, a.defaultManager),
		BaseName:         q.ArtifactBaseName(),
	}

	for i, item := range q.Items {
		doc.Items = append(doc.Items, itemBlock(i+1, item))
	}

	// A single-item quotation never shows the redundant grand total.
	if len(q.Items) > 1 {
		doc.GrandTotal = fmt.Sprintf("Total Price of All Items – ₱ %s", FormatAmount(q.GrandTotal(), 2))
	}

	return doc, nil
}

// attentionLine builds the attention value; the phone rides along only
// when a contact person is present.
func attentionLine(h domain.Header) string {
	if h.Attention == "" {
		return ""
	}
	if h.Phone != "" {
		return h.Attention + " | " + h.Phone
	}
	return h.Attention
}

// openingLine appends the installation location clause when provided.
func openingLine(h domain.Header) string {
	if h.InstallationLocation == "" {
		return openingText
	}
	return openingText + " " + h.InstallationLocation
}

func heading(t domain.DocType) string {
	if t == domain.DocTypeJob {
		return headingJob
	}
	// Absent doc_type defaults to the summary framing.
	return headingSummary
}

func managerName(fromRecord, fallback string) string {
	if strings.TrimSpace(fromRecord) == "" {
		return fallback
	}
	return fromRecord
}

// itemBlock renders one item: numbered header with optional brand and
// model, numbered task lines, bold total line and optional warranty.
func itemBlock(index int, item domain.Item) domain.ItemBlock {
	header := fmt.Sprintf("%d. %s", index, item.Name)
	if item.ACBrand != "" {
		header += " - " + item.ACBrand
	}
	if item.ACModel != "" {
		header += " " + item.ACModel
	}

	block := domain.ItemBlock{
		Header:   header,
		Total:    fmt.Sprintf("Total Price – ₱ %s", FormatAmount(item.Total(), 2)),
		Warranty: item.Warranty,
	}

	for j, task := range item.Tasks {
		line := fmt.Sprintf("%d. %s – ₱%s", j+1, task.Name, FormatAmount(task.UnitCost, 0))
		if task.Quantity.GreaterThan(one) {
			line += fmt.Sprintf(" × %s = ₱%s", task.Quantity, FormatAmount(task.LineTotal(), 0))
		}
		block.Tasks = append(block.Tasks, line)
	}
	return block
}
