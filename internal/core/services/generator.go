package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cbvtrading/quotegen-cli/internal/core/domain"
	"github.com/cbvtrading/quotegen-cli/internal/core/ports/driven"
	"github.com/cbvtrading/quotegen-cli/internal/core/ports/driving"
	"github.com/cbvtrading/quotegen-cli/internal/logger"
)

// Ensure Generator implements the interface.
var _ driving.QuotationGenerator = (*Generator)(nil)

// Generator runs the full pipeline for one quotation: parse (batch),
// validate, assemble, render, write the primary artifact, then invoke
// the external converter for the secondary one. Conversion failures are
// warnings; the primary artifact stays on disk.
type Generator struct {
	assembler *Assembler
	renderer  driven.DocumentRenderer
	converter driven.ArtifactConverter
	outDir    string
}

// NewGenerator creates a generator writing into outDir. The converter
// may be nil, in which case no secondary artifact is attempted.
func NewGenerator(
	assembler *Assembler,
	renderer driven.DocumentRenderer,
	converter driven.ArtifactConverter,
	outDir string,
) *Generator {
	return &Generator{
		assembler: assembler,
		renderer:  renderer,
		converter: converter,
		outDir:    outDir,
	}
}

// ParseQuotation decodes the lines of one structured batch record.
func ParseQuotation(lines []string) (*domain.Quotation, error) {
	headerBlock, itemsBlock, err := SplitSections(lines)
	if err != nil {
		return nil, err
	}

	header, err := DecodeHeader(headerBlock)
	if err != nil {
		return nil, err
	}

	items, err := DecodeItems(itemsBlock)
	if err != nil {
		return nil, err
	}

	return &domain.Quotation{Header: header, Items: items}, nil
}

// GenerateFromFile decodes one batch file and generates its artifacts.
func (g *Generator) GenerateFromFile(ctx context.Context, path string) (*driving.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	quotation, err := ParseQuotation(splitLines(string(data)))
	if err != nil {
		return nil, err
	}

	logger.Debug("parsed %s: customer %q, %d items", path, quotation.Header.CustomerName, len(quotation.Items))
	return g.generate(ctx, quotation)
}

// Generate renders an already collected quotation, as produced by the
// interactive wizard.
func (g *Generator) Generate(ctx context.Context, q *domain.Quotation) (*driving.Result, error) {
	return g.generate(ctx, q)
}

func (g *Generator) generate(ctx context.Context, q *domain.Quotation) (*driving.Result, error) {
	doc, err := g.assembler.Assemble(q, true)
	if err != nil {
		return nil, err
	}

	data, err := g.renderer.Render(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("render document: %w", err)
	}

	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(g.outDir, doc.BaseName+"."+g.renderer.Extension())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write artifact: %w", err)
	}
	logger.Info("wrote %s", path)

	result := &driving.Result{
		Customer:     q.Header.CustomerName,
		Date:         doc.Date,
		ItemCount:    len(q.Items),
		GrandTotal:   q.GrandTotal(),
		ArtifactPath: path,
	}

	if g.converter != nil {
		if err := g.converter.Convert(ctx, path, g.outDir); err != nil {
			// Non-fatal for the primary artifact.
			logger.Warn("secondary artifact not produced: %v", err)
			result.ConversionWarning = err
		}
	}

	return result, nil
}

// splitLines splits raw file content into lines, tolerating CRLF.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	return lines
}
