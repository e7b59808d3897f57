package main

import (
	"fmt"
	"os"

	"github.com/cbvtrading/quotegen-cli/internal/adapters/driven/config/file"
	"github.com/cbvtrading/quotegen-cli/internal/adapters/driven/convert"
	"github.com/cbvtrading/quotegen-cli/internal/adapters/driven/render/pdf"
	"github.com/cbvtrading/quotegen-cli/internal/adapters/driven/report"
	"github.com/cbvtrading/quotegen-cli/internal/adapters/driving/cli"
	"github.com/cbvtrading/quotegen-cli/internal/core/ports/driven"
	"github.com/cbvtrading/quotegen-cli/internal/core/services"
)

func main() {
	cli.SetInitializer(wireServices)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// wireServices builds the service graph from configuration. It runs
// after flag parsing so --config-dir is honoured.
func wireServices() error {
	store, err := file.NewStore(cli.ConfigDir())
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	settings := store.Settings()

	assembler := services.NewAssembler(settings.CompanyInfo(), settings.Manager)

	var converter driven.ArtifactConverter
	if !settings.Converter.Disabled {
		converter = convert.NewSofficeConverter(
			settings.Converter.Command,
			settings.Converter.Format,
			settings.ConverterTimeout(),
		)
	}

	generator := services.NewGenerator(assembler, pdf.NewRenderer(), converter, settings.Output.Dir)

	cli.SetServices(&cli.Services{
		Generator: generator,
		Options:   settings.OptionTables(),
		Report:    report.NewWriter(),
	})
	return nil
}
