// Package batch handles batch processing of statement files
package batch

import (
	"fmt"

	camtparse "fjacquet/sepa-pain/internal/camt"

	"fjacquet/sepa-pain/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch convert camt statements from a directory",
	Long: `Batch convert all camt.052/053 XML files from an input directory into CSV
files in an output directory. Files that are not valid statements are skipped.

Example:
  sepa-pain batch -i statements/ -o csv/`,
	Run: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Batch command called")

	// For batch, -i and -o refer to directories
	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output
	root.Log.Infof("Input directory: %s", inputDir)
	root.Log.Infof("Output directory: %s", outputDir)

	if inputDir == "" || outputDir == "" {
		root.Log.Fatal("Input and output directories must be specified")
	}

	count, err := camtparse.BatchConvert(inputDir, outputDir)
	if err != nil {
		root.Log.Fatalf("Error during batch conversion: %v", err)
	}
	root.Log.Info(fmt.Sprintf("Batch processing completed. %d files converted.", count))
}
