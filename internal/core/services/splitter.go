package services

import (
	"fmt"
	"strings"

	"github.com/cbvtrading/quotegen-cli/internal/core/domain"
)

// ItemsMarker separates the header block from the items block in a
// structured input file.
const ItemsMarker = "[ITEMS]"

// SplitSections divides raw input lines into a header block and an items
// block. The header block starts at the first non-blank line that does
// not begin with '[' and runs up to the marker line; the items block is
// everything after it. A file with a header but no marker is header-only.
// A file with neither is a format error.
//
// The split is marker-based rather than line-number based so blank and
// bracketed comment lines before the marker are tolerated.
func SplitSections(lines []string) (header, items []string, err error) {
	headerStart := -1
	markerAt := -1

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == ItemsMarker {
			markerAt = i
			break
		}
		if headerStart == -1 && trimmed != "" && !strings.HasPrefix(trimmed, "[") {
			headerStart = i
		}
	}

	switch {
	case headerStart >= 0 && markerAt >= 0:
		return lines[headerStart:markerAt], lines[markerAt+1:], nil
	case headerStart >= 0:
		return lines[headerStart:], nil, nil
	default:
		return nil, nil, fmt.Errorf("%w: expected a header block or %s marker", domain.ErrFormat, ItemsMarker)
	}
}
