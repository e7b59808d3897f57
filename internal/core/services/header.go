package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/cbvtrading/quotegen-cli/internal/core/domain"
)

// Date layouts accepted on the wire. The first is the canonical form.
var dateLayouts = []string{"2006-01-02", "01/02/2006"}

// DecodeHeader decodes the header block into a Header. The block is a
// one-record columnar table; every value is trimmed and an empty value
// means "not provided". A missing customer_name fails before any
// document work begins.
func DecodeHeader(block []string) (domain.Header, error) {
	rows, err := readTable(block)
	if err != nil {
		return domain.Header{}, err
	}
	if len(rows) == 0 {
		return domain.Header{}, fmt.Errorf("%w: header block has no data row", domain.ErrFormat)
	}
	row := rows[0]

	header := domain.Header{
		CustomerName:         row["customer_name"],
		CustomerLocation:     row["customer_location"],
		Attention:            row["attention"],
		Phone:                row["phone"],
		InstallationLocation: row["installation_location"],
		Note:                 row["note"],
		Payment:              row["payment"],
		Warranty:             row["warranty"],
		Exceptions:           row["exceptions"],
		Manager:              row["manager"],
	}

	if strings.TrimSpace(header.CustomerName) == "" {
		return domain.Header{}, fmt.Errorf("%w: customer_name is required", domain.ErrValidation)
	}

	header.Date, err = parseDate(row["date"])
	if err != nil {
		return domain.Header{}, err
	}

	header.DocType, err = domain.ParseDocType(row["doc_type"])
	if err != nil {
		return domain.Header{}, err
	}

	return header, nil
}

// parseDate accepts the supported layouts; an absent date means today.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparseable date %q", domain.ErrValidation, value)
}
