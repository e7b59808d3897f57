package pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/cbvtrading/quotegen-cli/internal/core/domain"
	"github.com/cbvtrading/quotegen-cli/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.DocumentRenderer = (*Renderer)(nil)

// Renderer produces the PDF artifact for a quotation letter.
type Renderer struct{}

// NewRenderer creates a PDF renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Extension returns the artifact file extension.
func (r *Renderer) Extension() string { return "pdf" }

// Render lays out the letter top to bottom in document-model order.
func (r *Renderer) Render(ctx context.Context, doc *domain.QuoteDocument) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(12).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	addLetterhead(m, doc.Company)
	addCustomerBlock(m, doc)
	addOpening(m, doc)
	addItems(m, doc)
	addSummary(m, doc)
	addClosing(m, doc)

	rendered, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate pdf: %w", err)
	}
	return rendered.GetBytes(), nil
}

// addLetterhead adds the centered company block and its service lines.
func addLetterhead(m core.Maroto, company domain.CompanyInfo) {
	m.AddRows(
		row.New(9).Add(
			col.New(12).Add(text.New(company.Name, props.Text{
				Size:  15,
				Style: fontstyle.Bold,
				Align: align.Center,
			})),
		),
		row.New(5).Add(
			col.New(12).Add(text.New(company.Location, props.Text{
				Size:  9,
				Align: align.Center,
			})),
		),
		row.New(5).Add(
			col.New(12).Add(text.New(
				fmt.Sprintf("Tel: %s | Sun: %s | Globe: %s", company.Phone, company.MobileSun, company.MobileGlobe),
				props.Text{Size: 9, Align: align.Center},
			)),
		),
	)

	for _, line := range strings.Split(company.Services, "\n") {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(text.New(line, props.Text{
					Size:  9,
					Style: fontstyle.Bold,
					Align: align.Center,
				})),
			),
		)
	}

	m.AddRows(row.New(4))
}

type blockLine struct {
	text string
	bold bool
}

// customerLines returns the addressee block in display order.
func customerLines(doc *domain.QuoteDocument) []blockLine {
	lines := []blockLine{
		{"Date: " + doc.Date, true},
		{"To: " + doc.Customer, true},
	}
	if doc.CustomerLocation != "" {
		lines = append(lines, blockLine{doc.CustomerLocation, false})
	}
	if doc.Attention != "" {
		lines = append(lines, blockLine{"Attention: " + doc.Attention, true})
	}
	return lines
}

// addCustomerBlock adds the labelled date and addressee lines.
func addCustomerBlock(m core.Maroto, doc *domain.QuoteDocument) {
	for _, line := range customerLines(doc) {
		style := props.Text{Size: 10, Align: align.Left}
		if line.bold {
			style.Style = fontstyle.Bold
		}
		m.AddRows(row.New(6).Add(col.New(12).Add(text.New(line.text, style))))
	}

	m.AddRows(row.New(3))
}

// addOpening adds the salutation and the fixed opening paragraphs.
func addOpening(m core.Maroto, doc *domain.QuoteDocument) {
	bodyStyle := props.Text{Size: 10, Align: align.Left}

	m.AddRows(
		row.New(6).Add(col.New(12).Add(text.New(doc.Salutation, bodyStyle))),
		row.New(12).Add(col.New(12).Add(text.New(doc.Opening, bodyStyle))),
		row.New(6).Add(col.New(12).Add(text.New(doc.Pleased, bodyStyle))),
		row.New(3),
		row.New(7).Add(col.New(12).Add(text.New(doc.Heading, props.Text{
			Size:  11,
			Style: fontstyle.Bold,
			Align: align.Left,
		}))),
	)
}

// addItems adds the numbered item blocks and the grand total line.
func addItems(m core.Maroto, doc *domain.QuoteDocument) {
	headerStyle := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Left}
	taskStyle := props.Text{Size: 10, Align: align.Left, Left: 5}
	totalStyle := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Left, Left: 5}
	warrantyStyle := props.Text{Size: 9, Style: fontstyle.Italic, Align: align.Left, Left: 5}

	for _, item := range doc.Items {
		m.AddRows(row.New(6).Add(col.New(12).Add(text.New(item.Header, headerStyle))))
		for _, task := range item.Tasks {
			m.AddRows(row.New(5).Add(col.New(12).Add(text.New(task, taskStyle))))
		}
		m.AddRows(row.New(6).Add(col.New(12).Add(text.New(item.Total, totalStyle))))
		if item.Warranty != "" {
			m.AddRows(row.New(5).Add(col.New(12).Add(
				text.New("Warranty: "+item.Warranty, warrantyStyle),
			)))
		}
		m.AddRows(row.New(2))
	}

	if doc.GrandTotal != "" {
		m.AddRows(row.New(7).Add(col.New(12).Add(text.New(doc.GrandTotal, props.Text{
			Size:  11,
			Style: fontstyle.Bold,
			Align: align.Left,
		}))))
		m.AddRows(row.New(2))
	}
}

// addSummary adds the labelled summary fields in fixed order.
func addSummary(m core.Maroto, doc *domain.QuoteDocument) {
	fields := []struct{ label, value string }{
		{"Note", doc.Note},
		{"Payment", doc.Payment},
		{"Warranty", doc.Warranty},
		{"Exceptions", doc.Exceptions},
	}

	labelStyle := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Left}
	valueStyle := props.Text{Size: 10, Align: align.Left}

	for _, f := range fields {
		if f.value == "" {
			continue
		}
		m.AddRows(
			row.New(6).Add(
				col.New(2).Add(text.New(f.label+":", labelStyle)),
				col.New(10).Add(text.New(f.value, valueStyle)),
			),
		)
	}

	m.AddRows(row.New(3))
}

// signatureLines returns the two-column signature block rows, manager
// side left, customer counter-signature side right.
func signatureLines(manager string) [][2]string {
	return [][2]string{
		{manager, "Conforme:_______________"},
		{"Manager", "Signature over printed name"},
		{"", "Date:_______________"},
	}
}

// addClosing adds the thanks paragraph and the signature block.
func addClosing(m core.Maroto, doc *domain.QuoteDocument) {
	bodyStyle := props.Text{Size: 10, Align: align.Left}
	captionStyle := props.Text{Size: 9, Align: align.Left}
	managerStyle := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Left}

	m.AddRows(
		row.New(10).Add(col.New(12).Add(text.New(doc.Closing, bodyStyle))),
		row.New(3),
		row.New(6).Add(col.New(12).Add(text.New(doc.Farewell, bodyStyle))),
		row.New(10),
	)

	for i, line := range signatureLines(doc.Manager) {
		leftStyle, rightStyle := captionStyle, captionStyle
		if i == 0 {
			leftStyle, rightStyle = managerStyle, bodyStyle
		}
		m.AddRows(row.New(6).Add(
			col.New(6).Add(text.New(line[0], leftStyle)),
			col.New(6).Add(text.New(line[1], rightStyle)),
		))
	}
}
