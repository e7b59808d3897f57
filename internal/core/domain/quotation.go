package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DocType selects the framing of the generated document.
type DocType string

const (
	// DocTypeSummary frames the document as a summary of multiple
	// independent items or departments.
	DocTypeSummary DocType = "summary"

	// DocTypeJob frames the document as a single job, possibly multi-task.
	DocTypeJob DocType = "job"
)

// ParseDocType parses a wire value into a DocType.
// An empty value defaults to DocTypeSummary.
func ParseDocType(s string) (DocType, error) {
	switch strings.TrimSpace(s) {
	case "", string(DocTypeSummary):
		return DocTypeSummary, nil
	case string(DocTypeJob):
		return DocTypeJob, nil
	default:
		return "", fmt.Errorf("%w: unknown doc_type %q", ErrValidation, s)
	}
}

// Header carries the customer and boilerplate fields of one quotation.
// Optional fields are absent when empty; decoding trims every value so an
// empty string always means "not provided".
type Header struct {
	Date                 time.Time
	CustomerName         string
	CustomerLocation     string
	Attention            string
	Phone                string
	InstallationLocation string
	DocType              DocType
	Note                 string
	Payment              string
	Warranty             string
	Exceptions           string
	Manager              string
}

// Task is one chargeable line of work within an item.
type Task struct {
	Name     string
	UnitCost decimal.Decimal
	Quantity decimal.Decimal
}

// LineTotal is the billable amount for this task.
// Installation tasks arrive here with the distance surcharge already
// folded into UnitCost and Quantity fixed at 1.
func (t Task) LineTotal() decimal.Decimal {
	return t.UnitCost.Mul(t.Quantity)
}

// Item is one billable unit, department or job grouping one or more tasks.
// Name acts as the grouping key during batch decoding.
type Item struct {
	Name     string
	ACBrand  string
	ACModel  string
	Warranty string
	Tasks    []Task
}

// Total sums the line totals of the item's tasks.
func (i Item) Total() decimal.Decimal {
	total := decimal.Zero
	for _, t := range i.Tasks {
		total = total.Add(t.LineTotal())
	}
	return total
}

// Quotation is the complete in-memory quotation: header plus ordered items.
// It lives only for the duration of one generation run; the rendered
// artifacts are the only persistent output.
type Quotation struct {
	Header Header
	Items  []Item
}

// GrandTotal sums the item totals. The rendered document only shows this
// when the quotation carries more than one item.
func (q Quotation) GrandTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range q.Items {
		total = total.Add(item.Total())
	}
	return total
}

// Validate enforces the quotation invariants before any document work
// begins. With requireTerms set (batch mode) the payment and warranty
// boilerplate must also be present.
func (q Quotation) Validate(requireTerms bool) error {
	if strings.TrimSpace(q.Header.CustomerName) == "" {
		return fmt.Errorf("%w: customer_name is required", ErrValidation)
	}
	if len(q.Items) == 0 {
		return fmt.Errorf("%w: quotation has no items", ErrValidation)
	}
	for _, item := range q.Items {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("%w: item with empty name", ErrValidation)
		}
		if len(item.Tasks) == 0 {
			return fmt.Errorf("%w: item %q has no tasks", ErrValidation, item.Name)
		}
		for _, task := range item.Tasks {
			if task.UnitCost.IsNegative() {
				return fmt.Errorf("%w: task %q has negative cost", ErrValidation, task.Name)
			}
			if !task.Quantity.IsPositive() {
				return fmt.Errorf("%w: task %q has non-positive quantity", ErrValidation, task.Name)
			}
		}
	}
	if requireTerms {
		if strings.TrimSpace(q.Header.Payment) == "" {
			return fmt.Errorf("%w: payment terms are required", ErrValidation)
		}
		if strings.TrimSpace(q.Header.Warranty) == "" {
			return fmt.Errorf("%w: warranty terms are required", ErrValidation)
		}
	}
	return nil
}

// ArtifactBaseName derives the deterministic output name for this
// quotation: "{customer}-{MM_DD_YYYY}".
func (q Quotation) ArtifactBaseName() string {
	return fmt.Sprintf("%s-%s", q.Header.CustomerName, q.Header.Date.Format("01_02_2006"))
}
