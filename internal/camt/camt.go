// Package camt parses camt.052 account reports and camt.053 statements
// and converts their entries to CSV. It is the inbound counterpart of the
// pain document builders: the statements a bank returns for the payment
// files this tool produces.
package camt

import (
	"encoding/csv"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	xmlpath "gopkg.in/xmlpath.v2"
)

var (
	log       = logrus.New()
	delimiter = ','
)

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// SetDelimiter sets the field delimiter used for CSV output.
func SetDelimiter(d rune) {
	delimiter = d
}

// ReportEntry is one statement entry flattened for CSV export.
type ReportEntry struct {
	Statement    string `csv:"Statement"`
	IBAN         string `csv:"IBAN"`
	BookingDate  string `csv:"BookingDate"`
	ValueDate    string `csv:"ValueDate"`
	Amount       string `csv:"Amount"`
	Currency     string `csv:"Currency"`
	CreditDebit  string `csv:"CreditDebit"`
	Status       string `csv:"Status"`
	EndToEndID   string `csv:"EndToEndId"`
	Counterparty string `csv:"Counterparty"`
	Description  string `csv:"Description"`
}

// ParseFile parses a camt.052 or camt.053 XML file and returns its
// entries flattened to report rows.
func ParseFile(xmlFile string) ([]ReportEntry, error) {
	log.WithField("file", xmlFile).Info("Parsing CAMT XML file")

	data, err := os.ReadFile(xmlFile) // #nosec G304 -- user-supplied input path
	if err != nil {
		log.WithError(err).Error("Failed to read XML file")
		return nil, fmt.Errorf("error reading XML file: %w", err)
	}

	var doc Document
	if err := xml.Unmarshal(data, &doc); err != nil {
		log.WithError(err).Error("Failed to parse XML file")
		return nil, fmt.Errorf("error parsing XML file: %w", err)
	}

	var entries []ReportEntry
	for _, stmt := range doc.statements() {
		for _, ntry := range stmt.Ntry {
			entries = append(entries, flattenEntry(stmt, ntry))
		}
	}

	log.WithField("count", len(entries)).Info("Successfully extracted entries from CAMT file")
	return entries, nil
}

// flattenEntry maps one statement entry to a CSV row. Transaction details
// are taken from the first TxDtls element when present.
func flattenEntry(stmt Statement, ntry Entry) ReportEntry {
	entry := ReportEntry{
		Statement:   stmt.ID,
		IBAN:        stmt.Acct.ID.IBAN,
		BookingDate: ntry.BookgDt.Dt,
		ValueDate:   ntry.ValDt.Dt,
		Amount:      normalizeAmount(ntry.Amt.Text),
		Currency:    ntry.Amt.Ccy,
		CreditDebit: ntry.CdtDbtInd,
		Status:      ntry.Sts,
		Description: ntry.AddtlNtryInf,
	}
	if len(ntry.NtryDtls.TxDtls) > 0 {
		tx := ntry.NtryDtls.TxDtls[0]
		entry.EndToEndID = tx.Refs.EndToEndID
		if ntry.CdtDbtInd == "CRDT" {
			entry.Counterparty = tx.RltdPties.Dbtr.Nm
		} else {
			entry.Counterparty = tx.RltdPties.Cdtr.Nm
		}
		if len(tx.RmtInf.Ustrd) > 0 {
			entry.Description = strings.Join(tx.RmtInf.Ustrd, " ")
		}
	}
	return entry
}

// normalizeAmount renders a reported amount with two decimal places. The
// original text is kept when it does not parse as a decimal.
func normalizeAmount(s string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return s
	}
	return d.StringFixed(2)
}

// WriteToCSV writes report entries to a CSV file.
func WriteToCSV(entries []ReportEntry, csvFile string) error {
	f, err := os.Create(csvFile) // #nosec G304 -- user-supplied output path
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close CSV file")
		}
	}()

	w := csv.NewWriter(f)
	w.Comma = delimiter
	if err := gocsv.MarshalCSV(&entries, gocsv.NewSafeCSVWriter(w)); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	return nil
}

// ConvertToCSV converts a CAMT XML file to a CSV file.
// This is a convenience function that combines ParseFile and WriteToCSV.
func ConvertToCSV(xmlFile, csvFile string) error {
	valid, err := ValidateFormat(xmlFile)
	if err != nil {
		return err
	}
	if !valid {
		return fmt.Errorf("not a CAMT account report or statement: %s", xmlFile)
	}

	entries, err := ParseFile(xmlFile)
	if err != nil {
		return err
	}
	return WriteToCSV(entries, csvFile)
}

// BatchConvert converts all XML files in a directory to CSV files.
// It processes all files with a .xml extension in the specified directory.
func BatchConvert(inputDir, outputDir string) (int, error) {
	log.WithFields(logrus.Fields{
		"inputDir":  inputDir,
		"outputDir": outputDir,
	}).Info("Batch converting CAMT XML files")

	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		log.WithError(err).Error("Failed to create output directory")
		return 0, fmt.Errorf("error creating output directory: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(inputDir, "*.xml"))
	if err != nil {
		log.WithError(err).Error("Failed to read input directory")
		return 0, fmt.Errorf("error reading input directory: %w", err)
	}

	var processed int
	for _, file := range files {
		baseName := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		outputFile := filepath.Join(outputDir, baseName+".csv")

		if err := ConvertToCSV(file, outputFile); err != nil {
			log.WithFields(logrus.Fields{
				"file":  file,
				"error": err,
			}).Warning("Failed to convert file, skipping")
			continue
		}
		processed++
	}

	log.WithField("count", processed).Info("Batch conversion completed")
	return processed, nil
}

// ValidateFormat checks if a file is a camt.052 or camt.053 XML file.
// It uses xmlpath to check for the required elements.
func ValidateFormat(xmlFile string) (bool, error) {
	log.WithField("file", xmlFile).Debug("Validating CAMT format")

	f, err := os.Open(xmlFile) // #nosec G304 -- user-supplied input path
	if err != nil {
		log.WithError(err).Error("Failed to open XML file")
		return false, fmt.Errorf("error opening XML file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close XML file")
		}
	}()

	root, err := xmlpath.Parse(f)
	if err != nil {
		log.WithError(err).Debug("File is not valid XML")
		return false, nil // File is not valid XML, but we don't return an error
	}

	if xmlpath.MustCompile("//BkToCstmrStmt/Stmt/Id").Exists(root) {
		return true, nil
	}
	if xmlpath.MustCompile("//BkToCstmrAcctRpt/Rpt/Id").Exists(root) {
		return true, nil
	}
	log.Debug("Missing account report elements, not a CAMT file")
	return false, nil
}
