package xmlvalidate

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/sepa-pain/internal/schema"
)

func transferDoc(nbOfTxs, ctrlSum, txAmount string) []byte {
	return []byte(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<Document xmlns="urn:iso:std:iso:20022:tech:xsd:pain.001.001.03">
  <CstmrCdtTrfInitn>
    <GrpHdr>
      <MsgId>MSG-1</MsgId>
      <CreDtTm>2017-01-20T10:30:00</CreDtTm>
      <NbOfTxs>%s</NbOfTxs>
      <CtrlSum>%s</CtrlSum>
      <InitgPty><Nm>TestCreditor</Nm></InitgPty>
    </GrpHdr>
    <PmtInf>
      <PmtInfId>PMT-1</PmtInfId>
      <PmtMtd>TRF</PmtMtd>
      <NbOfTxs>%s</NbOfTxs>
      <CtrlSum>%s</CtrlSum>
      <ChrgBr>SLEV</ChrgBr>
      <CdtTrfTxInf>
        <PmtId><EndToEndId>NOTPROVIDED</EndToEndId></PmtId>
        <Amt><InstdAmt Ccy="EUR">%s</InstdAmt></Amt>
      </CdtTrfTxInf>
    </PmtInf>
  </CstmrCdtTrfInitn>
</Document>`, nbOfTxs, ctrlSum, nbOfTxs, ctrlSum, txAmount))
}

func TestValidateAcceptsConsistentDocument(t *testing.T) {
	err := Validate(transferDoc("1", "10.12", "10.12"), schema.Pain001001003)
	assert.NoError(t, err)
}

func TestValidateWrongRootElement(t *testing.T) {
	err := Validate(transferDoc("1", "10.12", "10.12"), schema.Pain008003002)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Problems, 1)
	assert.Contains(t, verr.Problems[0], "missing root element CstmrDrctDbtInitn")
}

func TestValidateCountMismatch(t *testing.T) {
	err := Validate(transferDoc("2", "10.12", "10.12"), schema.Pain001001003)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	joined := strings.Join(verr.Problems, "; ")
	assert.Contains(t, joined, "NbOfTxs 2 but 1 transactions")
}

func TestValidateControlSumMismatch(t *testing.T) {
	err := Validate(transferDoc("1", "99.99", "10.12"), schema.Pain001001003)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	joined := strings.Join(verr.Problems, "; ")
	assert.Contains(t, joined, "CtrlSum 99.99")
	assert.Contains(t, joined, "10.12")
}

func TestValidateMissingHeaderElement(t *testing.T) {
	doc := transferDoc("1", "10.12", "10.12")
	broken := strings.Replace(string(doc), "<MsgId>MSG-1</MsgId>", "", 1)

	err := Validate([]byte(broken), schema.Pain001001003)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, strings.Join(verr.Problems, "; "), "missing GrpHdr/MsgId")
}

func TestValidateNoPaymentBlocks(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<Document><CstmrCdtTrfInitn>
  <GrpHdr>
    <MsgId>M</MsgId><CreDtTm>2017-01-20T10:30:00</CreDtTm>
    <NbOfTxs>0</NbOfTxs><CtrlSum>0.00</CtrlSum>
    <InitgPty><Nm>X</Nm></InitgPty>
  </GrpHdr>
</CstmrCdtTrfInitn></Document>`

	err := Validate([]byte(doc), schema.Pain001001003)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, strings.Join(verr.Problems, "; "), "no payment blocks")
}

func TestValidateMalformedXML(t *testing.T) {
	err := Validate([]byte("<Document><unclosed>"), schema.Pain001001003)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Problems[0], "not well formed")
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Problems: []string{"a", "b"}}
	assert.Equal(t, "document failed validation: a; b", err.Error())
	assert.True(t, errors.As(error(err), new(*ValidationError)))
}

func TestPrettyIndentsDocument(t *testing.T) {
	compact := []byte(`<?xml version="1.0" encoding="UTF-8"?><Document><A><B>x</B></A></Document>`)

	out, err := Pretty(compact)
	require.NoError(t, err)
	assert.Contains(t, string(out), "\n  <A>")
	assert.Contains(t, string(out), "<B>x</B>")
}

func TestPrettyRejectsGarbage(t *testing.T) {
	_, err := Pretty([]byte("<not-xml"))
	assert.Error(t, err)
}
