package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cbvtrading/quotegen-cli/internal/adapters/driven/report"
)

var reportPath string

var generateCmd = &cobra.Command{
	Use:   "generate <file>...",
	Short: "Generate quotation documents from batch files",
	Long: `Reads one or more structured batch files and generates a quotation
document for each. A failing file does not stop the run; the remaining
files are still processed and the command exits non-zero at the end.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&reportPath, "report", "", "write an xlsx run report to this path")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if services == nil || services.Generator == nil {
		return errors.New("generator not configured")
	}

	rows := make([]report.Row, 0, len(args))
	failed := 0

	for _, path := range args {
		result, err := services.Generator.GenerateFromFile(cmd.Context(), path)
		if err != nil {
			failed++
			cmd.PrintErrf("%s: %v\n", path, err)
			rows = append(rows, report.Row{
				File:   path,
				Status: report.StatusFailed,
				Detail: err.Error(),
			})
			continue
		}

		row := report.Row{
			File:       path,
			Customer:   result.Customer,
			ItemCount:  result.ItemCount,
			GrandTotal: result.GrandTotal,
			Artifact:   result.ArtifactPath,
			Status:     report.StatusOK,
		}
		if result.ConversionWarning != nil {
			row.Status = report.StatusWarning
			row.Detail = result.ConversionWarning.Error()
		}
		rows = append(rows, row)

		cmd.Printf("%s: wrote %s (%d items)\n", path, result.ArtifactPath, result.ItemCount)
	}

	if reportPath != "" && services.Report != nil {
		if err := services.Report.Write(reportPath, rows); err != nil {
			return fmt.Errorf("write run report: %w", err)
		}
		cmd.Printf("run report written to %s\n", reportPath)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}
