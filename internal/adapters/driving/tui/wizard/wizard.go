// Package wizard provides the interactive quotation entry flow.
package wizard

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/cbvtrading/quotegen-cli/internal/adapters/driving/tui/styles"
	"github.com/cbvtrading/quotegen-cli/internal/core/domain"
	"github.com/cbvtrading/quotegen-cli/internal/core/services"
)

// Step tracks the current step in the wizard.
type Step int

const (
	StepHeader Step = iota
	StepDocType
	StepItem
	StepTask
	StepTaskDetail
	StepItemWarranty
	StepItemMore
	StepWarranty
	StepPayment
	StepExtras
	StepPreview
	StepDone
)

// Key constants.
const (
	keyEnter = "enter"
	keyDown  = "down"
	keyUp    = "up"
)

// customTarget names the field a free-text entry feeds.
type customTarget int

const (
	customNone customTarget = iota
	customItemWarranty
	customWarranty
	customPayment
)

const skipOption = "Skip"

// Model is the wizard state machine. It only collects a Quotation; the
// caller runs generation after the program exits.
type Model struct {
	styles  *styles.Styles
	options domain.OptionTables

	step Step

	// Form inputs for the current step.
	inputs []textinput.Model
	labels []string
	focus  int

	// Selection list state.
	selected int

	// Free-text entry for a "Custom" menu choice.
	customTarget customTarget
	customInput  textinput.Model

	// Collected data.
	header  domain.Header
	docType domain.DocType
	items   []domain.Item
	current *domain.Item
	// template is the chosen task template, nil for a custom task.
	template *domain.TaskTemplate

	payment  string
	warranty string

	err       error
	cancelled bool
	confirmed bool
}

// NewModel creates a wizard over the given option tables.
func NewModel(options domain.OptionTables) *Model {
	m := &Model{
		styles:  styles.DefaultStyles(),
		options: options,
		step:    StepHeader,
	}
	m.initHeaderInputs()
	return m
}

// Cancelled reports whether the operator aborted the session.
func (m *Model) Cancelled() bool { return m.cancelled }

// Confirmed reports whether the operator confirmed the preview.
func (m *Model) Confirmed() bool { return m.confirmed }

// Quotation returns the collected quotation after a confirmed run.
func (m *Model) Quotation() *domain.Quotation {
	header := m.header
	header.DocType = m.docType
	header.Payment = m.payment
	header.Warranty = m.warranty
	return &domain.Quotation{Header: header, Items: m.items}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c":
		m.cancelled = true
		return m, tea.Quit
	case "esc":
		return m.goBack()
	}

	if m.customTarget != customNone {
		return m.handleCustomInput(keyMsg)
	}

	switch m.step {
	case StepHeader, StepItem, StepTaskDetail, StepExtras:
		return m.handleFormInput(keyMsg)
	case StepDocType, StepTask, StepItemWarranty, StepItemMore, StepWarranty, StepPayment:
		return m.handleSelect(keyMsg)
	case StepPreview:
		if keyMsg.String() == keyEnter {
			m.confirmed = true
			m.step = StepDone
			return m, tea.Quit
		}
	}
	return m, nil
}

// goBack steps backwards through the flow; at the first step it cancels.
func (m *Model) goBack() (tea.Model, tea.Cmd) {
	m.err = nil

	if m.customTarget != customNone {
		m.customTarget = customNone
		return m, nil
	}

	switch m.step {
	case StepHeader:
		m.cancelled = true
		return m, tea.Quit
	case StepDocType:
		m.step = StepHeader
		m.initHeaderInputs()
	case StepItem:
		m.step = StepDocType
	case StepTask:
		m.step = StepItem
	case StepTaskDetail:
		m.step = StepTask
		m.selected = 0
	case StepItemWarranty:
		m.step = StepTask
		m.selected = 0
	case StepItemMore:
		// Reopen the item that was just closed.
		last := m.items[len(m.items)-1]
		m.items = m.items[:len(m.items)-1]
		m.current = &last
		m.step = StepTask
		m.selected = 0
	case StepWarranty:
		m.step = StepItemMore
		m.selected = 0
	case StepPayment:
		m.step = StepWarranty
		m.selected = 0
	case StepExtras:
		m.step = StepPayment
		m.selected = 0
	case StepPreview:
		m.step = StepExtras
		m.initExtrasInputs()
	}
	return m, nil
}

// ── Form steps ─────────────────────────────────────────────────────

func (m *Model) initHeaderInputs() {
	m.setInputs(
		[]string{"Date (YYYY-MM-DD, blank for today)", "Customer name *", "Customer location", "Attention / contact person", "Phone number", "Installation location"},
		[]string{"", "", "", "", "", ""},
	)
}

func (m *Model) initItemInputs() {
	m.setInputs(
		[]string{"Item name (department / location / job) *", "AC unit brand", "AC unit model / HP"},
		[]string{"", "e.g. Panasonic, Daikin", "e.g. 2.5Hp, 5Trs"},
	)
}

func (m *Model) initExtrasInputs() {
	m.setInputs(
		[]string{"Exceptions", "Note (e.g. payee info)", "Manager name (blank for default)"},
		[]string{"", "", domain.DefaultManager},
	)
}

// initTaskDetailInputs builds the detail form for the chosen task kind.
func (m *Model) initTaskDetailInputs() {
	switch {
	case m.template == nil:
		m.setInputs(
			[]string{"Task description *", "Cost *", "Quantity (blank for 1)"},
			[]string{"", "", "1"},
		)
	case m.template.Key == "installation":
		m.setInputs(
			[]string{"Base installation cost", "Piping distance in feet (0 if N/A)"},
			[]string{m.template.Cost.String(), "0"},
		)
	default:
		m.setInputs(
			[]string{"Cost"},
			[]string{m.template.Cost.String()},
		)
	}
}

func (m *Model) setInputs(labels, placeholders []string) {
	m.labels = labels
	m.inputs = make([]textinput.Model, len(labels))
	for i := range labels {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 120
		m.inputs[i] = ti
	}
	m.focus = 0
	m.inputs[0].Focus()
}

func (m *Model) handleFormInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", keyDown:
		return m, m.moveFocus(1)
	case "shift+tab", keyUp:
		return m, m.moveFocus(-1)
	case keyEnter:
		return m.submitForm()
	default:
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

func (m *Model) value(i int) string {
	return strings.TrimSpace(m.inputs[i].Value())
}

func (m *Model) submitForm() (tea.Model, tea.Cmd) {
	switch m.step {
	case StepHeader:
		return m.submitHeader()
	case StepItem:
		return m.submitItem()
	case StepTaskDetail:
		return m.submitTaskDetail()
	case StepExtras:
		return m.submitExtras()
	}
	return m, nil
}

func (m *Model) submitHeader() (tea.Model, tea.Cmd) {
	date := time.Now()
	if raw := m.value(0); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			m.err = fmt.Errorf("invalid date %q, use YYYY-MM-DD", raw)
			return m, nil
		}
		date = parsed
	}
	if m.value(1) == "" {
		m.err = fmt.Errorf("customer name is required")
		return m, nil
	}

	m.header = domain.Header{
		Date:                 date,
		CustomerName:         m.value(1),
		CustomerLocation:     m.value(2),
		Attention:            m.value(3),
		Phone:                m.value(4),
		InstallationLocation: m.value(5),
	}
	m.err = nil
	m.step = StepDocType
	m.selected = 0
	return m, nil
}

func (m *Model) submitItem() (tea.Model, tea.Cmd) {
	if m.value(0) == "" {
		m.err = fmt.Errorf("item name is required")
		return m, nil
	}
	m.current = &domain.Item{
		Name:    m.value(0),
		ACBrand: m.value(1),
		ACModel: m.value(2),
	}
	m.err = nil
	m.step = StepTask
	m.selected = 0
	return m, nil
}

func (m *Model) submitTaskDetail() (tea.Model, tea.Cmd) {
	task, err := m.buildTask()
	if err != nil {
		m.err = err
		return m, nil
	}
	m.current.Tasks = append(m.current.Tasks, task)
	m.err = nil
	m.step = StepTask
	m.selected = 0
	return m, nil
}

// buildTask turns the detail form into a task. Installation tasks fold
// the distance surcharge into the cost and record the computation in
// the task name.
func (m *Model) buildTask() (domain.Task, error) {
	one := decimal.NewFromInt(1)

	if m.template == nil {
		name := m.value(0)
		if name == "" {
			return domain.Task{}, fmt.Errorf("task description is required")
		}
		if m.value(1) == "" {
			return domain.Task{}, fmt.Errorf("cost is required")
		}
		cost, err := parseAmount(m.value(1), decimal.Decimal{})
		if err != nil || cost.IsNegative() {
			return domain.Task{}, fmt.Errorf("invalid cost %q", m.value(1))
		}
		quantity, err := parseAmount(m.value(2), one)
		if err != nil || !quantity.IsPositive() {
			return domain.Task{}, fmt.Errorf("invalid quantity %q", m.value(2))
		}
		return domain.Task{Name: name, UnitCost: cost, Quantity: quantity}, nil
	}

	if m.template.Key == "installation" {
		base, err := parseAmount(m.value(0), m.template.Cost)
		if err != nil || base.IsNegative() {
			return domain.Task{}, fmt.Errorf("invalid cost %q", m.value(0))
		}
		distance, err := parseAmount(m.value(1), decimal.Zero)
		if err != nil || distance.IsNegative() {
			return domain.Task{}, fmt.Errorf("invalid distance %q", m.value(1))
		}
		name := fmt.Sprintf("%s (base ₱%s, %sft distance, excess ₱%s)",
			m.template.Name,
			services.FormatAmount(base, 0),
			distance,
			services.FormatAmount(services.ExcessCharge(distance), 0),
		)
		return domain.Task{
			Name:     name,
			UnitCost: services.InstallationCost(base, distance),
			Quantity: one,
		}, nil
	}

	cost, err := parseAmount(m.value(0), m.template.Cost)
	if err != nil || cost.IsNegative() {
		return domain.Task{}, fmt.Errorf("invalid cost %q", m.value(0))
	}
	return domain.Task{Name: m.template.Name, UnitCost: cost, Quantity: one}, nil
}

func (m *Model) submitExtras() (tea.Model, tea.Cmd) {
	m.header.Exceptions = m.value(0)
	m.header.Note = m.value(1)
	m.header.Manager = m.value(2)
	m.err = nil
	m.step = StepPreview
	return m, nil
}

// parseAmount reads a decimal value, falling back to def when blank.
func parseAmount(raw string, def decimal.Decimal) (decimal.Decimal, error) {
	if raw == "" {
		return def, nil
	}
	return decimal.NewFromString(raw)
}

// ── Selection steps ────────────────────────────────────────────────

// selectOptions returns the menu entries for the current step.
func (m *Model) selectOptions() []string {
	switch m.step {
	case StepDocType:
		return []string{
			"Summary of Quotations (multiple items / departments)",
			"Job to Be Done (single or multi-task job)",
		}
	case StepTask:
		opts := make([]string, 0, len(m.options.TaskTemplates)+2)
		for _, t := range m.options.TaskTemplates {
			opts = append(opts, fmt.Sprintf("%s (default ₱%s)", t.Name, services.FormatAmount(t.Cost, 0)))
		}
		return append(opts, "Custom task", "Done with tasks")
	case StepItemWarranty:
		return append([]string{skipOption}, m.options.Warranties...)
	case StepItemMore:
		return []string{"Add another item", "Continue to terms"}
	case StepWarranty:
		return m.options.Warranties
	case StepPayment:
		return m.options.Payments
	}
	return nil
}

func (m *Model) handleSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	options := m.selectOptions()

	switch msg.String() {
	case keyUp, "k":
		if m.selected > 0 {
			m.selected--
		}
	case keyDown, "j":
		if m.selected < len(options)-1 {
			m.selected++
		}
	case keyEnter:
		return m.confirmSelect(options[m.selected])
	}
	return m, nil
}

func (m *Model) confirmSelect(choice string) (tea.Model, tea.Cmd) {
	switch m.step {
	case StepDocType:
		if m.selected == 0 {
			m.docType = domain.DocTypeSummary
		} else {
			m.docType = domain.DocTypeJob
		}
		m.step = StepItem
		m.initItemInputs()

	case StepTask:
		switch m.selected {
		case len(m.options.TaskTemplates): // custom task
			m.template = nil
			m.step = StepTaskDetail
			m.initTaskDetailInputs()
		case len(m.options.TaskTemplates) + 1: // done with tasks
			if len(m.current.Tasks) == 0 {
				m.err = fmt.Errorf("add at least one task")
				return m, nil
			}
			m.err = nil
			m.step = StepItemWarranty
			m.selected = 0
		default:
			m.template = &m.options.TaskTemplates[m.selected]
			m.step = StepTaskDetail
			m.initTaskDetailInputs()
		}

	case StepItemWarranty:
		if choice == domain.OptionCustom {
			return m.startCustomInput(customItemWarranty)
		}
		if choice != skipOption {
			m.current.Warranty = choice
		}
		m.finishItem()

	case StepItemMore:
		if m.selected == 0 {
			m.step = StepItem
			m.initItemInputs()
		} else {
			m.step = StepWarranty
			m.selected = 0
		}

	case StepWarranty:
		if choice == domain.OptionCustom {
			return m.startCustomInput(customWarranty)
		}
		m.warranty = choice
		m.step = StepPayment
		m.selected = 0

	case StepPayment:
		if choice == domain.OptionCustom {
			return m.startCustomInput(customPayment)
		}
		m.payment = choice
		m.step = StepExtras
		m.initExtrasInputs()
	}
	return m, nil
}

// finishItem closes the item under construction and moves on.
func (m *Model) finishItem() {
	m.items = append(m.items, *m.current)
	m.current = nil
	m.step = StepItemMore
	m.selected = 0
}

// ── Custom free-text entry ─────────────────────────────────────────

func (m *Model) startCustomInput(target customTarget) (tea.Model, tea.Cmd) {
	m.customTarget = target
	m.customInput = textinput.New()
	m.customInput.CharLimit = 200
	return m, m.customInput.Focus()
}

func (m *Model) handleCustomInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() != keyEnter {
		var cmd tea.Cmd
		m.customInput, cmd = m.customInput.Update(msg)
		return m, cmd
	}

	value := strings.TrimSpace(m.customInput.Value())
	if value == "" {
		m.err = fmt.Errorf("a value is required")
		return m, nil
	}
	m.err = nil

	target := m.customTarget
	m.customTarget = customNone

	switch target {
	case customItemWarranty:
		m.current.Warranty = value
		m.finishItem()
	case customWarranty:
		m.warranty = value
		m.step = StepPayment
		m.selected = 0
	case customPayment:
		m.payment = value
		m.step = StepExtras
		m.initExtrasInputs()
	}
	return m, nil
}

// ── Rendering ──────────────────────────────────────────────────────

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("New Quotation"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
	}

	switch {
	case m.customTarget != customNone:
		b.WriteString(m.styles.Subtitle.Render(m.customPrompt()))
		b.WriteString("\n")
		b.WriteString(m.customInput.View())
	case m.step == StepPreview:
		b.WriteString(m.renderPreview())
	case m.step == StepDone:
		b.WriteString(m.styles.Success.Render("Generating..."))
	default:
		if options := m.selectOptions(); options != nil {
			b.WriteString(m.renderSelect(options))
		} else {
			b.WriteString(m.renderForm())
		}
	}

	b.WriteString("\n\n")
	b.WriteString(m.styles.Help.Render(m.helpLine()))
	return b.String()
}

func (m *Model) customPrompt() string {
	switch m.customTarget {
	case customItemWarranty, customWarranty:
		return "Enter warranty text:"
	case customPayment:
		return "Enter payment terms:"
	}
	return ""
}

func (m *Model) stepTitle() string {
	switch m.step {
	case StepHeader:
		return "Customer details"
	case StepDocType:
		return "Document type"
	case StepItem:
		return fmt.Sprintf("Item %d", len(m.items)+1)
	case StepTask:
		return fmt.Sprintf("Item %d, task %d", len(m.items)+1, len(m.current.Tasks)+1)
	case StepTaskDetail:
		if m.template == nil {
			return "Custom task"
		}
		return m.template.Name
	case StepItemWarranty:
		return "Warranty for this item"
	case StepItemMore:
		return "More items?"
	case StepWarranty:
		return "Quotation warranty"
	case StepPayment:
		return "Payment terms"
	case StepExtras:
		return "Final details"
	}
	return ""
}

func (m *Model) renderForm() string {
	var b strings.Builder

	b.WriteString(m.styles.Subtitle.Render(m.stepTitle()))
	b.WriteString("\n\n")

	for i, label := range m.labels {
		b.WriteString(m.styles.Normal.Render(label + ":"))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) renderSelect(options []string) string {
	var b strings.Builder

	b.WriteString(m.styles.Subtitle.Render(m.stepTitle()))
	b.WriteString("\n\n")

	for i, option := range options {
		line := "  " + option
		if i == m.selected {
			line = "> " + option
			b.WriteString(m.styles.Selected.Render(line))
		} else {
			b.WriteString(m.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) renderPreview() string {
	var b strings.Builder

	b.WriteString(m.styles.Subtitle.Render("Review"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Normal.Render("Customer: " + m.header.CustomerName))
	b.WriteString("\n")

	grand := decimal.Zero
	for i, item := range m.items {
		total := item.Total()
		grand = grand.Add(total)
		b.WriteString(m.styles.Normal.Render(
			fmt.Sprintf("%d. %s, %d task(s), ₱%s", i+1, item.Name, len(item.Tasks), services.FormatAmount(total, 2))))
		b.WriteString("\n")
	}

	if len(m.items) > 1 {
		b.WriteString(m.styles.Normal.Render("Total of all items: ₱" + services.FormatAmount(grand, 2)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Success.Render("Press enter to generate the quotation."))
	return b.String()
}

func (m *Model) helpLine() string {
	if m.customTarget != customNone {
		return "[enter] confirm  [esc] back"
	}
	switch m.step {
	case StepHeader, StepItem, StepTaskDetail, StepExtras:
		return "[tab] next field  [enter] continue  [esc] back"
	case StepPreview:
		return "[enter] generate  [esc] back"
	default:
		return "[j/k] navigate  [enter] select  [esc] back"
	}
}

// Run executes the wizard and returns the collected quotation.
// A session the operator backed out of returns domain.ErrCancelled.
func Run(options domain.OptionTables) (*domain.Quotation, error) {
	model := NewModel(options)

	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("wizard error: %w", err)
	}

	result, ok := final.(*Model)
	if !ok || result.Cancelled() || !result.Confirmed() {
		return nil, domain.ErrCancelled
	}
	return result.Quotation(), nil
}
