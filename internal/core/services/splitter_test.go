package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbvtrading/quotegen-cli/internal/core/domain"
)

func TestSplitSections_HeaderAndItems(t *testing.T) {
	lines := []string{
		"date,customer_name",
		"2024-01-15,Acme Corp",
		"[ITEMS]",
		"item_name,task_name",
		"Unit A,Repair",
	}

	header, items, err := SplitSections(lines)

	require.NoError(t, err)
	assert.Equal(t, lines[0:2], header)
	assert.Equal(t, lines[3:5], items)
}

func TestSplitSections_MarkerToleratesSurroundingNoise(t *testing.T) {
	lines := []string{
		"",
		"[HEADER]",
		"date,customer_name",
		"2024-01-15,Acme Corp",
		"  [ITEMS]  ",
		"item_name,task_name",
	}

	header, items, err := SplitSections(lines)

	require.NoError(t, err)
	assert.Equal(t, []string{"date,customer_name", "2024-01-15,Acme Corp"}, header)
	assert.Equal(t, []string{"item_name,task_name"}, items)
}

func TestSplitSections_HeaderOnly(t *testing.T) {
	lines := []string{
		"date,customer_name",
		"2024-01-15,Acme Corp",
	}

	header, items, err := SplitSections(lines)

	require.NoError(t, err)
	assert.Equal(t, lines, header)
	assert.Empty(t, items)
}

func TestSplitSections_NoStructure(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"empty input", nil},
		{"only blank lines", []string{"", "   ", ""}},
		{"only bracketed lines", []string{"[HEADER]", "[FOOTER]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := SplitSections(tt.lines)
			assert.ErrorIs(t, err, domain.ErrFormat)
		})
	}
}

func TestSplitSections_MarkerWithoutHeaderFails(t *testing.T) {
	// Items alone are not a quotation: the header carries the customer.
	_, _, err := SplitSections([]string{"[ITEMS]", "item_name,task_name"})

	assert.ErrorIs(t, err, domain.ErrFormat)
}
