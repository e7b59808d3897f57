package domain

// CompanyInfo is the static letterhead block. It comes from configuration,
// never from the input record.
type CompanyInfo struct {
	Name        string
	Location    string
	Phone       string
	MobileSun   string
	MobileGlobe string
	Services    string
}

// ItemBlock is one rendered item: numbered header line, numbered task
// lines, a bold total line and an optional warranty line.
type ItemBlock struct {
	Header   string
	Tasks    []string
	Total    string
	Warranty string
}

// QuoteDocument is the fully assembled document model, ready for
// rendering. Sections appear in the order the fields are declared and the
// renderer must not reorder them. Optional fields are omitted when empty.
type QuoteDocument struct {
	Company CompanyInfo

	// Customer block.
	Date             string
	Customer         string
	CustomerLocation string
	Attention        string

	// Fixed salutation and opening paragraphs. Opening carries the
	// installation location clause when one was provided.
	Salutation string
	Opening    string
	Pleased    string

	// Heading depends on the document type.
	Heading string

	Items []ItemBlock

	// GrandTotal is only set when the quotation has more than one item.
	GrandTotal string

	// Summary block, fixed order: note, payment, warranty, exceptions.
	Note       string
	Payment    string
	Warranty   string
	Exceptions string

	// Closing paragraph and signature block.
	Closing  string
	Farewell string
	Manager  string

	// BaseName is the deterministic artifact name without extension.
	BaseName string
}
