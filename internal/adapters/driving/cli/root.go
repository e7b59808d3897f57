package cli

import (
	"github.com/spf13/cobra"

	"github.com/cbvtrading/quotegen-cli/internal/adapters/driven/report"
	"github.com/cbvtrading/quotegen-cli/internal/core/domain"
	"github.com/cbvtrading/quotegen-cli/internal/core/ports/driving"
	"github.com/cbvtrading/quotegen-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services holds the wired driving-side dependencies. Commands read it
// through the package variable set by main before Execute.
type Services struct {
	Generator driving.QuotationGenerator
	Options   domain.OptionTables
	Report    *report.Writer
}

// services holds the current service configuration.
var services *Services

// SetServices sets the service configuration for all commands.
func SetServices(s *Services) {
	services = s
}

// initializer builds the services once flags are parsed, so the
// --config-dir value is available to the wiring.
var initializer func() error

// SetInitializer registers the service wiring run before any command.
func SetInitializer(f func() error) {
	initializer = f
}

var (
	verbose   bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "quotegen",
	Short: "Generate customer quotation documents",
	Long: `Quotegen turns structured batch files or an interactive wizard session
into formal quotation letters, rendered as PDF with an optional
converted copy for editing.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if services == nil && initializer != nil {
			return initializer()
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.quotegen)")
}

// ConfigDir returns the configuration directory flag value.
func ConfigDir() string {
	return configDir
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
