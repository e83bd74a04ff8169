// Package transfer handles credit transfer initiation commands
package transfer

import (
	"fjacquet/sepa-pain/cmd/common"
	"fjacquet/sepa-pain/cmd/root"

	"github.com/spf13/cobra"
)

var (
	schemaFlag string
	prettyFlag bool
)

// Cmd represents the transfer command
var Cmd = &cobra.Command{
	Use:   "transfer",
	Short: "Generate a pain.001 credit transfer file",
	Long: `Generate a SEPA credit transfer initiation document (pain.001) from a
YAML batch file describing the debtor and the payments to send.`,
	Run: transferFunc,
}

func init() {
	Cmd.Flags().StringVar(&schemaFlag, "schema", "", "Schema version to emit (e.g. pain.001.001.03)")
	Cmd.Flags().BoolVar(&prettyFlag, "pretty", false, "Indent the XML output")
}

func transferFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Transfer command called")
	root.Log.Infof("Input batch file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output XML file: %s", root.SharedFlags.Output)

	opts := common.Options{
		Schema:   schemaFlag,
		Pretty:   prettyFlag,
		Validate: root.SharedFlags.Validate,
	}
	if err := common.GeneratePainFile(root.SharedFlags.Input, root.SharedFlags.Output, false, opts, root.GetLogrusAdapter()); err != nil {
		root.Log.Fatalf("Error generating credit transfer file: %v", err)
	}
	root.Log.Info("Credit transfer file generated successfully!")
}
