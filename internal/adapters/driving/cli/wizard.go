package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cbvtrading/quotegen-cli/internal/adapters/driving/tui/wizard"
	"github.com/cbvtrading/quotegen-cli/internal/core/domain"
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Build a quotation interactively",
	Long: `Launches the interactive wizard: customer details, items and tasks,
warranty and payment terms, then a preview. Confirming the preview
generates the documents.

Controls:
  tab      - Next field
  ↑/k, ↓/j - Navigate choices
  Enter    - Confirm / Continue
  Esc      - Back / Cancel`,
	RunE: runWizard,
}

func init() {
	rootCmd.AddCommand(wizardCmd)
}

func runWizard(cmd *cobra.Command, _ []string) error {
	if services == nil || services.Generator == nil {
		return errors.New("generator not configured")
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("the wizard needs an interactive terminal, use generate for scripted runs")
	}

	quotation, err := wizard.Run(services.Options)
	if errors.Is(err, domain.ErrCancelled) {
		cmd.Println("Cancelled, nothing written.")
		return nil
	}
	if err != nil {
		return err
	}

	result, err := services.Generator.Generate(cmd.Context(), quotation)
	if err != nil {
		return err
	}

	cmd.Printf("wrote %s (%d items)\n", result.ArtifactPath, result.ItemCount)
	if result.ConversionWarning != nil {
		cmd.PrintErrf("warning: %v\n", result.ConversionWarning)
	}
	return nil
}
