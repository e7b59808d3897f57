package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var templateForce bool

const templateContent = `date,customer_name,customer_location,attention,phone,installation_location,doc_type,note,payment,warranty,exceptions,manager
2024-01-15,Acme Corp,Cebu City,,,,summary,,COD (Cash on delivery),Twelve (12) Months Only,,
[ITEMS]
item_name,ac_brand,ac_model,item_warranty,task_name,task_cost,quantity
Window Type Unit,Carrier,X100,,General cleaning,400,2
Window Type Unit,,,,Repair,3550,
Split Type Unit,Daikin,,,Installation,7500,
`

var templateCmd = &cobra.Command{
	Use:   "template [path]",
	Short: "Write a starter batch file",
	Long: `Writes an example batch file showing the header and items sections.
Edit the values and run "quotegen generate" on the result.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTemplate,
}

func init() {
	templateCmd.Flags().BoolVarP(&templateForce, "force", "f", false, "overwrite an existing file")
	rootCmd.AddCommand(templateCmd)
}

func runTemplate(cmd *cobra.Command, args []string) error {
	path := "quotation-template.csv"
	if len(args) == 1 {
		path = args[0]
	}

	if !templateForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists, use --force to overwrite", path)
		}
	}

	if err := os.WriteFile(path, []byte(templateContent), 0o644); err != nil {
		return fmt.Errorf("write template: %w", err)
	}
	cmd.Printf("template written to %s\n", path)
	return nil
}
