package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbvtrading/quotegen-cli/internal/core/domain"
)

type fakeRenderer struct {
	data []byte
	err  error
}

func (f *fakeRenderer) Render(_ context.Context, _ *domain.QuoteDocument) ([]byte, error) {
	return f.data, f.err
}

func (f *fakeRenderer) Extension() string { return "pdf" }

type fakeConverter struct {
	err   error
	calls int
	src   string
}

func (f *fakeConverter) Convert(_ context.Context, srcPath, _ string) error {
	f.calls++
	f.src = srcPath
	return f.err
}

const batchContent = `date,customer_name,payment,warranty
2024-01-15,Acme Corp,50% downpayment,1 year on parts
[ITEMS]
item_name,task_name,task_cost,quantity
Unit A,General cleaning,400,2
Unit A,Repair,3550,
Unit B,Installation,7500,
`

func writeBatchFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "acme.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGenerateFromFile(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	renderer := &fakeRenderer{data: []byte("%PDF-stub")}
	converter := &fakeConverter{}
	gen := NewGenerator(newTestAssembler(), renderer, converter, outDir)

	result, err := gen.GenerateFromFile(context.Background(), writeBatchFile(t, batchContent))

	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", result.Customer)
	assert.Equal(t, "01/15/2024", result.Date)
	assert.Equal(t, 2, result.ItemCount)
	assert.True(t, result.GrandTotal.Equal(decimal.NewFromInt(11850)))
	assert.NoError(t, result.ConversionWarning)

	wantPath := filepath.Join(outDir, "Acme Corp-01_15_2024.pdf")
	assert.Equal(t, wantPath, result.ArtifactPath)

	written, err := os.ReadFile(wantPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-stub"), written)

	assert.Equal(t, 1, converter.calls)
	assert.Equal(t, wantPath, converter.src)
}

func TestGenerateFromFile_CRLFInput(t *testing.T) {
	crlf := "customer_name,payment,warranty\r\nAcme Corp,Cash,30 days\r\n[ITEMS]\r\nitem_name,task_name,task_cost\r\nUnit A,Cleaning,400\r\n"
	gen := NewGenerator(newTestAssembler(), &fakeRenderer{data: []byte("x")}, nil, t.TempDir())

	result, err := gen.GenerateFromFile(context.Background(), writeBatchFile(t, crlf))

	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", result.Customer)
}

func TestGenerateFromFile_ConversionFailureKeepsPrimaryArtifact(t *testing.T) {
	outDir := t.TempDir()
	convErr := fmt.Errorf("%w: soffice returned exit status 1", domain.ErrConversion)
	gen := NewGenerator(newTestAssembler(), &fakeRenderer{data: []byte("%PDF-stub")}, &fakeConverter{err: convErr}, outDir)

	result, err := gen.GenerateFromFile(context.Background(), writeBatchFile(t, batchContent))

	require.NoError(t, err)
	assert.ErrorIs(t, result.ConversionWarning, domain.ErrConversion)
	assert.FileExists(t, result.ArtifactPath)
}

func TestGenerateFromFile_ValidationFailureWritesNothing(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	noTerms := `customer_name
Acme Corp
[ITEMS]
item_name,task_name,task_cost
Unit A,Cleaning,400
`
	converter := &fakeConverter{}
	gen := NewGenerator(newTestAssembler(), &fakeRenderer{data: []byte("x")}, converter, outDir)

	_, err := gen.GenerateFromFile(context.Background(), writeBatchFile(t, noTerms))

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, converter.calls)
	assert.NoDirExists(t, outDir)
}

func TestGenerateFromFile_RenderFailureWritesNothing(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	gen := NewGenerator(newTestAssembler(), &fakeRenderer{err: errors.New("boom")}, nil, outDir)

	_, err := gen.GenerateFromFile(context.Background(), writeBatchFile(t, batchContent))

	assert.Error(t, err)
	assert.NoDirExists(t, outDir)
}

func TestGenerateFromFile_MissingFile(t *testing.T) {
	gen := NewGenerator(newTestAssembler(), &fakeRenderer{}, nil, t.TempDir())

	_, err := gen.GenerateFromFile(context.Background(), filepath.Join(t.TempDir(), "absent.csv"))

	assert.Error(t, err)
}

func TestParseQuotation(t *testing.T) {
	lines := splitLines(batchContent)

	q, err := ParseQuotation(lines)

	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", q.Header.CustomerName)
	require.Len(t, q.Items, 2)
	assert.Len(t, q.Items[0].Tasks, 2)
	assert.Len(t, q.Items[1].Tasks, 1)
}
