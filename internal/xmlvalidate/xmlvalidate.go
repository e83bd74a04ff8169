// Package xmlvalidate performs structural checks on serialized payment
// initiation documents. It verifies the element skeleton with XPath and
// cross-checks the declared transaction counts and control sums against
// the transaction entries.
package xmlvalidate

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	xmlpath "gopkg.in/xmlpath.v2"

	"fjacquet/sepa-pain/internal/money"
	"fjacquet/sepa-pain/internal/schema"
)

var log = logrus.New()

// SetLogger allows setting a configured logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// ValidationError lists every structural problem found in a document.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("document failed validation: %s", strings.Join(e.Problems, "; "))
}

// headerPaths are the group header elements every document must carry.
var headerPaths = []string{
	"GrpHdr/MsgId",
	"GrpHdr/CreDtTm",
	"GrpHdr/NbOfTxs",
	"GrpHdr/CtrlSum",
	"GrpHdr/InitgPty/Nm",
}

// blockPaths are the elements every payment block must carry.
var blockPaths = []string{
	"PmtInfId",
	"PmtMtd",
	"NbOfTxs",
	"CtrlSum",
	"ChrgBr",
}

// Validate checks the serialized document against the expected structure
// of the given schema version.
func Validate(doc []byte, v schema.Version) error {
	root, err := xmlpath.Parse(bytes.NewReader(doc))
	if err != nil {
		return &ValidationError{Problems: []string{"not well formed: " + err.Error()}}
	}

	var problems []string
	base := "/Document/" + v.RootElement() + "/"

	if !xmlpath.MustCompile("/Document/" + v.RootElement()).Exists(root) {
		return &ValidationError{Problems: []string{"missing root element " + v.RootElement()}}
	}
	for _, p := range headerPaths {
		if !xmlpath.MustCompile(base + p).Exists(root) {
			problems = append(problems, "missing "+p)
		}
	}

	txName, amtPath := "CdtTrfTxInf", "Amt/InstdAmt"
	if v.IsDebit() {
		txName, amtPath = "DrctDbtTxInf", "InstdAmt"
	}

	blockCount := 0
	iter := xmlpath.MustCompile(base + "PmtInf").Iter(root)
	for iter.Next() {
		blockCount++
		block := iter.Node()
		for _, p := range blockPaths {
			if !xmlpath.MustCompile(p).Exists(block) {
				problems = append(problems, fmt.Sprintf("payment block %d: missing %s", blockCount, p))
			}
		}
		problems = append(problems, checkBlockTotals(block, txName, amtPath, blockCount)...)
	}
	if blockCount == 0 {
		problems = append(problems, "no payment blocks")
	}

	problems = append(problems, checkHeaderTotals(root, base, txName, amtPath)...)

	if len(problems) > 0 {
		log.WithField("problems", len(problems)).Warn("Document failed structural validation")
		return &ValidationError{Problems: problems}
	}
	return nil
}

// checkBlockTotals verifies the block-level NbOfTxs and CtrlSum against
// the transaction entries inside the block.
func checkBlockTotals(block *xmlpath.Node, txName, amtPath string, n int) []string {
	var problems []string

	count := 0
	sum := decimal.Zero
	iter := xmlpath.MustCompile(txName).Iter(block)
	for iter.Next() {
		count++
		amt, ok := xmlpath.MustCompile(amtPath).String(iter.Node())
		if !ok {
			problems = append(problems, fmt.Sprintf("payment block %d: transaction %d has no amount", n, count))
			continue
		}
		d, err := money.ParseReported(amt)
		if err != nil {
			problems = append(problems, fmt.Sprintf("payment block %d: bad amount %q", n, amt))
			continue
		}
		sum = sum.Add(d)
	}

	if declared, ok := xmlpath.MustCompile("NbOfTxs").String(block); ok {
		if c, err := strconv.Atoi(declared); err != nil || c != count {
			problems = append(problems, fmt.Sprintf("payment block %d: NbOfTxs %s but %d transactions", n, declared, count))
		}
	}
	if declared, ok := xmlpath.MustCompile("CtrlSum").String(block); ok {
		if d, err := money.ParseReported(declared); err != nil || !d.Equal(sum) {
			problems = append(problems, fmt.Sprintf("payment block %d: CtrlSum %s but transactions total %s", n, declared, sum))
		}
	}
	return problems
}

// checkHeaderTotals verifies the group header totals against every
// transaction in the document.
func checkHeaderTotals(root *xmlpath.Node, base, txName, amtPath string) []string {
	var problems []string

	count := 0
	sum := decimal.Zero
	iter := xmlpath.MustCompile(base + "PmtInf/" + txName + "/" + amtPath).Iter(root)
	for iter.Next() {
		count++
		d, err := money.ParseReported(iter.Node().String())
		if err != nil {
			continue
		}
		sum = sum.Add(d)
	}

	if declared, ok := xmlpath.MustCompile(base + "GrpHdr/NbOfTxs").String(root); ok {
		if c, err := strconv.Atoi(declared); err != nil || c != count {
			problems = append(problems, fmt.Sprintf("header NbOfTxs %s but %d transactions", declared, count))
		}
	}
	if declared, ok := xmlpath.MustCompile(base + "GrpHdr/CtrlSum").String(root); ok {
		if d, err := money.ParseReported(declared); err != nil || !d.Equal(sum) {
			problems = append(problems, fmt.Sprintf("header CtrlSum %s but transactions total %s", declared, sum))
		}
	}
	return problems
}

// Pretty re-indents a serialized document for human consumption.
func Pretty(doc []byte) ([]byte, error) {
	parsed := etree.NewDocument()
	if err := parsed.ReadFromBytes(doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	parsed.Indent(2)
	out, err := parsed.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}
	return out, nil
}
