// Package root contains the root command for the application
package root

import (
	"fjacquet/sepa-pain/internal/batchfile"
	"fjacquet/sepa-pain/internal/camt"
	"fjacquet/sepa-pain/internal/config"
	"fjacquet/sepa-pain/internal/dateutils"
	"fjacquet/sepa-pain/internal/logging"
	"fjacquet/sepa-pain/internal/sepa"
	"fjacquet/sepa-pain/internal/xmlvalidate"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "sepa-pain",
		Short: "A CLI tool to generate SEPA pain.001/pain.008 payment files and read camt statements.",
		Long: `sepa-pain builds ISO 20022 payment initiation documents from YAML batch files:
credit transfers (pain.001) and direct debits (pain.008). It also converts
camt.052/053 bank statements to CSV.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to sepa-pain!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			// Set the configured logger on every package that logs
			sepa.SetLogger(Log)
			batchfile.SetLogger(Log)
			camt.SetLogger(Log)
			xmlvalidate.SetLogger(Log)
			dateutils.SetLogger(Log)

			// Ensure CSV delimiter is updated after the configuration is loaded
			if delim := config.GetCSVDelimiter(); delim != "" {
				Log.WithField("delimiter", delim).Debug("Setting CSV delimiter from configuration")
				camt.SetDelimiter([]rune(delim)[0])
			}
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// GetLogrusAdapter wraps the shared logger in the structured logging
// interface used by command helpers.
func GetLogrusAdapter() logging.Logger {
	return logging.NewLogrusAdapter(Log)
}

// Init initializes the root command and all flags
func Init() {
	// Add persistent flags to root command for common options
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate the input or output before writing")
}
