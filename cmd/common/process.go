// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"os"

	"fjacquet/sepa-pain/internal/batchfile"
	"fjacquet/sepa-pain/internal/config"
	"fjacquet/sepa-pain/internal/logging"
	"fjacquet/sepa-pain/internal/schema"
	"fjacquet/sepa-pain/internal/sepa"
)

// Options carry the per-command overrides for pain file generation. Zero
// values defer to the batch file and the application configuration.
type Options struct {
	// Schema overrides both the configured default and the batch file's
	// schema element.
	Schema string
	// Pretty forces indented output.
	Pretty bool
	// Validate forces structural validation of the output.
	Validate bool
}

// GeneratePainFile reads a YAML batch file, assembles the pain document it
// describes and writes the XML to outputFile. The debit flag selects which
// message kind the command expects; a batch file naming a schema of the
// other kind is rejected.
func GeneratePainFile(inputFile, outputFile string, debit bool, opts Options, log logging.Logger) error {
	if inputFile == "" || outputFile == "" {
		return fmt.Errorf("input and output files must be specified")
	}

	cfg := config.GetGlobalConfig()
	defaultSchema := cfg.Sepa.TransferSchema
	if debit {
		defaultSchema = cfg.Sepa.DebitSchema
	}
	f, err := batchfile.Load(inputFile, defaultSchema, cfg.Sepa.Currency)
	if err != nil {
		return err
	}
	if opts.Schema != "" {
		v, err := schema.Parse(opts.Schema)
		if err != nil {
			return err
		}
		f.Version = v
	}
	if f.Version.IsDebit() != debit {
		return fmt.Errorf("schema %s does not match the command kind", f.Version)
	}

	var msgOpts []sepa.Option
	if !cfg.Sepa.Clean {
		msgOpts = append(msgOpts, sepa.WithoutCleaning())
	}

	var msg *sepa.Message
	if debit {
		msg, err = sepa.NewDirectDebit(f.Config, f.Version, msgOpts...)
	} else {
		msg, err = sepa.NewTransfer(f.Config, f.Version, msgOpts...)
	}
	if err != nil {
		return err
	}

	for i, p := range f.Payments {
		if err := msg.AddPayment(p); err != nil {
			return fmt.Errorf("payment %d: %w", i+1, err)
		}
	}

	out, err := msg.Export(sepa.ExportOptions{
		Validate: opts.Validate || cfg.Sepa.Validate,
		Pretty:   opts.Pretty || cfg.Sepa.Pretty,
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputFile, out, 0o600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	log.Info("Payment file written",
		logging.Field{Key: logging.FieldInputFile, Value: inputFile},
		logging.Field{Key: logging.FieldOutputFile, Value: outputFile},
		logging.Field{Key: logging.FieldSchema, Value: f.Version.String()},
		logging.Field{Key: logging.FieldCount, Value: len(f.Payments)})
	return nil
}
