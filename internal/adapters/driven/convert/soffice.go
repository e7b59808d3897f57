package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/cbvtrading/quotegen-cli/internal/core/domain"
	"github.com/cbvtrading/quotegen-cli/internal/core/ports/driven"
	"github.com/cbvtrading/quotegen-cli/internal/logger"
)

// Ensure SofficeConverter implements the interface.
var _ driven.ArtifactConverter = (*SofficeConverter)(nil)

// DefaultTimeout bounds a single conversion run. LibreOffice cold starts
// are slow, so this is generous.
const DefaultTimeout = 60 * time.Second

// fallbackCommands are tried in order when the configured command is not
// on PATH. Linux installs commonly expose libreoffice but not soffice.
var fallbackCommands = []string{"soffice", "libreoffice"}

// SofficeConverter shells out to a LibreOffice-compatible binary in
// headless mode to convert the primary artifact to the target format.
type SofficeConverter struct {
	command string
	format  string
	timeout time.Duration
}

// NewSofficeConverter creates a converter running command, producing the
// given target format. Empty arguments fall back to soffice, docx and
// the default timeout.
func NewSofficeConverter(command, format string, timeout time.Duration) *SofficeConverter {
	if command == "" {
		command = fallbackCommands[0]
	}
	if format == "" {
		format = "docx"
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &SofficeConverter{command: command, format: format, timeout: timeout}
}

// Convert runs the external converter on srcPath, writing the derived
// file into outDir. The process is opaque; success is its exit status.
func (c *SofficeConverter) Convert(ctx context.Context, srcPath, outDir string) error {
	command, err := c.resolveCommand()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, command,
		"--headless",
		"--convert-to", c.format,
		"--outdir", outDir,
		srcPath,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	logger.Debug("running %s on %s", command, srcPath)
	runErr := cmd.Run()
	if runErr == nil {
		return nil
	}

	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("%w after %s", domain.ErrConverterTimeout, c.timeout)
	}

	detail := strings.TrimSpace(stderr.String())
	if detail != "" {
		return fmt.Errorf("%w: %v: %s", domain.ErrConverterFailed, runErr, detail)
	}
	return fmt.Errorf("%w: %v", domain.ErrConverterFailed, runErr)
}

// resolveCommand locates the converter binary. The fallback list is
// only consulted for the stock command; an explicitly configured one is
// honoured alone.
func (c *SofficeConverter) resolveCommand() (string, error) {
	candidates := []string{c.command}
	if c.command == fallbackCommands[0] {
		candidates = fallbackCommands
	}

	for _, candidate := range candidates {
		if path, err := exec.LookPath(candidate); err == nil {
			return path, nil
		} else if !errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: %v", domain.ErrConverterNotFound, err)
		}
	}
	return "", fmt.Errorf("%w: tried %s", domain.ErrConverterNotFound, strings.Join(candidates, ", "))
}
