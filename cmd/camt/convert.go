// Package camt handles camt statement processing commands
package camt

import (
	camtparse "fjacquet/sepa-pain/internal/camt"

	"fjacquet/sepa-pain/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the camt command
var Cmd = &cobra.Command{
	Use:   "camt",
	Short: "Convert camt.052/053 statements to CSV",
	Long:  `Convert camt.052 account report and camt.053 statement XML files to CSV format.`,
	Run:   camtFunc,
}

func camtFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Camt convert command called")
	root.Log.Infof("Input XML file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output CSV file: %s", root.SharedFlags.Output)

	if root.SharedFlags.Input == "" || root.SharedFlags.Output == "" {
		root.Log.Fatal("Input and output files must be specified")
	}

	if root.SharedFlags.Validate {
		root.Log.Info("Validating format...")
		valid, err := camtparse.ValidateFormat(root.SharedFlags.Input)
		if err != nil {
			root.Log.Fatalf("Error validating file: %v", err)
		}
		if !valid {
			root.Log.Fatal("The file is not a camt.052/053 statement")
		}
		root.Log.Info("Validation successful.")
	}

	if err := camtparse.ConvertToCSV(root.SharedFlags.Input, root.SharedFlags.Output); err != nil {
		root.Log.Fatalf("Error converting statement to CSV: %v", err)
	}
	root.Log.Info("Statement to CSV conversion completed successfully!")
}
