// Package debit handles direct debit initiation commands
package debit

import (
	"fjacquet/sepa-pain/cmd/common"
	"fjacquet/sepa-pain/cmd/root"

	"github.com/spf13/cobra"
)

var (
	schemaFlag string
	prettyFlag bool
)

// Cmd represents the debit command
var Cmd = &cobra.Command{
	Use:   "debit",
	Short: "Generate a pain.008 direct debit file",
	Long: `Generate a SEPA direct debit initiation document (pain.008) from a
YAML batch file describing the creditor and the collections to make.`,
	Run: debitFunc,
}

func init() {
	Cmd.Flags().StringVar(&schemaFlag, "schema", "", "Schema version to emit (e.g. pain.008.001.02)")
	Cmd.Flags().BoolVar(&prettyFlag, "pretty", false, "Indent the XML output")
}

func debitFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Debit command called")
	root.Log.Infof("Input batch file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output XML file: %s", root.SharedFlags.Output)

	opts := common.Options{
		Schema:   schemaFlag,
		Pretty:   prettyFlag,
		Validate: root.SharedFlags.Validate,
	}
	if err := common.GeneratePainFile(root.SharedFlags.Input, root.SharedFlags.Output, true, opts, root.GetLogrusAdapter()); err != nil {
		root.Log.Fatalf("Error generating direct debit file: %v", err)
	}
	root.Log.Info("Direct debit file generated successfully!")
}
