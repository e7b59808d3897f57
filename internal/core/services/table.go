package services

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/cbvtrading/quotegen-cli/internal/core/domain"
)

// readTable decodes a columnar text block: line one names the columns,
// every further line is a data row. Rows come back as column-name keyed
// maps with trimmed values; short rows leave trailing columns absent.
func readTable(block []string) ([]map[string]string, error) {
	if len(block) == 0 {
		return nil, nil
	}

	reader := csv.NewReader(strings.NewReader(strings.Join(block, "\n")))
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFormat, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	columns := records[0]
	for i, name := range columns {
		columns[i] = strings.TrimSpace(name)
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(columns))
		for i, name := range columns {
			if name == "" {
				continue
			}
			if i < len(record) {
				row[name] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
