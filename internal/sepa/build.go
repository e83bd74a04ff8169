package sepa

import (
	"strconv"

	"github.com/beevik/etree"

	"fjacquet/sepa-pain/internal/dateutils"
	"fjacquet/sepa-pain/internal/money"
	"fjacquet/sepa-pain/internal/schema"
)

// appendAgent adds a financial institution element under parent. Without a
// BIC the NOTPROVIDED identifier is used on schema versions that accept
// it; older versions get a bare FinInstnId.
func appendAgent(parent *etree.Element, tag, bic string, v schema.Version) {
	agent := parent.CreateElement(tag)
	fin := agent.CreateElement("FinInstnId")
	switch {
	case bic != "":
		fin.CreateElement("BIC").SetText(bic)
	case v.SupportsNotProvidedAgent():
		fin.CreateElement("Othr").CreateElement("Id").SetText("NOTPROVIDED")
	}
}

// appendIBANAccount adds an account element holding just an IBAN.
func appendIBANAccount(parent *etree.Element, tag, iban string) {
	parent.CreateElement(tag).CreateElement("Id").CreateElement("IBAN").SetText(iban)
}

// appendRemittance adds the RmtInf element. A structured reference is
// carried as an SCOR creditor reference, free text as Ustrd.
func appendRemittance(parent *etree.Element, p Payment) {
	rmt := parent.CreateElement("RmtInf")
	ref := p.StructuredDescription
	if ref == "" {
		ref = p.StructuredReference
	}
	if ref == "" {
		rmt.CreateElement("Ustrd").SetText(p.Description)
		return
	}
	refInf := rmt.CreateElement("Strd").CreateElement("CdtrRefInf")
	refInf.CreateElement("Tp").CreateElement("CdOrPrtry").CreateElement("Cd").SetText("SCOR")
	refInf.CreateElement("Ref").SetText(ref)
}

// appendMandate adds the DrctDbtTx mandate element including the
// amendment details when the debtor account changed since signature.
func appendMandate(parent *etree.Element, p Payment) {
	mndt := parent.CreateElement("DrctDbtTx").CreateElement("MndtRltdInf")
	mndt.CreateElement("MndtId").SetText(p.MandateID)
	mndt.CreateElement("DtOfSgntr").SetText(dateutils.ToISODate(p.MandateDate))

	changed := p.OriginalIBAN != "" && p.OriginalIBAN != p.IBAN
	mndt.CreateElement("AmdmntInd").SetText(strconv.FormatBool(changed))
	if !changed {
		return
	}
	acctID := mndt.CreateElement("AmdmntInfDtls").
		CreateElement("OrgnlDbtrAcct").CreateElement("Id")
	if p.OriginalIBAN == SMNDA {
		acctID.CreateElement("Othr").CreateElement("Id").SetText(SMNDA)
	} else {
		acctID.CreateElement("IBAN").SetText(p.OriginalIBAN)
	}
}

// appendUltimateCreditor adds the UltmtCdtr element for collections made
// on behalf of a third party.
func appendUltimateCreditor(parent *etree.Element, uc *UltimateCreditor) {
	if uc == nil {
		return
	}
	el := parent.CreateElement("UltmtCdtr")
	if uc.Name != "" {
		el.CreateElement("Nm").SetText(uc.Name)
	}
	if uc.BICOrBEI == "" && uc.ID == "" {
		return
	}
	org := el.CreateElement("Id").CreateElement("OrgId")
	if uc.BICOrBEI != "" {
		org.CreateElement("BICOrBEI").SetText(uc.BICOrBEI)
	}
	if uc.ID != "" {
		othr := org.CreateElement("Othr")
		othr.CreateElement("Id").SetText(uc.ID)
		if uc.SchemeName != "" {
			othr.CreateElement("SchmeNm").CreateElement("Prtry").SetText(uc.SchemeName)
		}
	}
}

// buildHeader appends the group header. NbOfTxs and CtrlSum stay empty
// until export fills in the grand totals.
func (m *Message) buildHeader() {
	hdr := m.root.CreateElement("GrpHdr")
	hdr.CreateElement("MsgId").SetText(m.msgID)
	hdr.CreateElement("CreDtTm").SetText(dateutils.ToISODateTime(m.createdAt))
	m.hdrNbOfTxs = hdr.CreateElement("NbOfTxs")
	m.hdrCtrlSum = hdr.CreateElement("CtrlSum")

	initg := hdr.CreateElement("InitgPty")
	name := m.cfg.InitiatingParty
	if name == "" {
		name = m.cfg.Name
	}
	initg.CreateElement("Nm").SetText(name)
	if m.version.IsDebit() {
		id := m.cfg.InitiatingPartyID
		if id == "" {
			id = m.cfg.CreditorID
		}
		initg.CreateElement("Id").CreateElement("OrgId").
			CreateElement("Othr").CreateElement("Id").SetText(id)
	}
}

// newPaymentInfo builds a PmtInf element carrying everything up to the
// transaction entries. seqType and date come from the batch key; count
// and total are the block-level NbOfTxs and CtrlSum.
func (m *Message) newPaymentInfo(key batchKey, count int, total int64) *etree.Element {
	cfg := m.cfg
	inf := etree.NewElement("PmtInf")
	inf.CreateElement("PmtInfId").SetText(m.gen.PaymentID(cfg.Name))
	if m.version.IsDebit() {
		inf.CreateElement("PmtMtd").SetText("DD")
	} else {
		inf.CreateElement("PmtMtd").SetText("TRF")
	}
	inf.CreateElement("BtchBookg").SetText(strconv.FormatBool(cfg.Batch))
	inf.CreateElement("NbOfTxs").SetText(strconv.Itoa(count))
	inf.CreateElement("CtrlSum").SetText(money.CentsToDecimal(total))

	m.appendPaymentType(inf, key)

	if m.version.IsDebit() {
		inf.CreateElement("ReqdColltnDt").SetText(key.date)
		cdtr := inf.CreateElement("Cdtr")
		cdtr.CreateElement("Nm").SetText(cfg.Name)
		appendAddress(cdtr, cfg.Address)
		appendIBANAccount(inf, "CdtrAcct", cfg.IBAN)
		appendAgent(inf, "CdtrAgt", cfg.BIC, m.version)
		appendUltimateCreditor(inf, cfg.UltimateCreditor)
		inf.CreateElement("ChrgBr").SetText("SLEV")

		othr := inf.CreateElement("CdtrSchmeId").CreateElement("Id").
			CreateElement("PrvtId").CreateElement("Othr")
		othr.CreateElement("Id").SetText(cfg.CreditorID)
		othr.CreateElement("SchmeNm").CreateElement("Prtry").SetText("SEPA")
		return inf
	}

	if key.date != "" {
		inf.CreateElement("ReqdExctnDt").SetText(key.date)
	}
	dbtr := inf.CreateElement("Dbtr")
	dbtr.CreateElement("Nm").SetText(cfg.Name)
	appendAddress(dbtr, cfg.Address)
	appendIBANAccount(inf, "DbtrAcct", cfg.IBAN)
	appendAgent(inf, "DbtrAgt", cfg.BIC, m.version)
	inf.CreateElement("ChrgBr").SetText("SLEV")
	return inf
}

// appendPaymentType adds the PmtTpInf element. Domestic transfers without
// the instant flag carry no payment type at all.
func (m *Message) appendPaymentType(inf *etree.Element, key batchKey) {
	if m.version.IsDebit() {
		tp := inf.CreateElement("PmtTpInf")
		tp.CreateElement("SvcLvl").CreateElement("Cd").SetText("SEPA")
		tp.CreateElement("LclInstrm").CreateElement("Cd").SetText(m.instrument())
		tp.CreateElement("SeqTp").SetText(key.seqType)
		return
	}
	if m.cfg.Domestic && !key.instant {
		return
	}
	tp := inf.CreateElement("PmtTpInf")
	if !m.cfg.Domestic {
		tp.CreateElement("SvcLvl").CreateElement("Cd").SetText("SEPA")
	}
	if key.instant {
		tp.CreateElement("LclInstrm").CreateElement("Cd").SetText("INST")
	}
}

func (m *Message) instrument() string {
	if m.cfg.Instrument == "" {
		return "CORE"
	}
	return m.cfg.Instrument
}

// newTransaction builds the transaction entry for one validated payment.
func (m *Message) newTransaction(p Payment) *etree.Element {
	currency := p.Currency
	if currency == "" {
		currency = m.cfg.Currency
	}
	amount := money.CentsToDecimal(p.Amount)

	if m.version.IsDebit() {
		tx := etree.NewElement("DrctDbtTxInf")
		tx.CreateElement("PmtId").CreateElement("EndToEndId").SetText(m.endToEndID(p))
		instd := tx.CreateElement("InstdAmt")
		instd.CreateAttr("Ccy", currency)
		instd.SetText(amount)
		appendMandate(tx, p)
		appendAgent(tx, "DbtrAgt", p.BIC, m.version)
		dbtr := tx.CreateElement("Dbtr")
		dbtr.CreateElement("Nm").SetText(p.Name)
		appendAddress(dbtr, p.Address)
		appendIBANAccount(tx, "DbtrAcct", p.IBAN)
		appendRemittance(tx, p)
		return tx
	}

	tx := etree.NewElement("CdtTrfTxInf")
	tx.CreateElement("PmtId").CreateElement("EndToEndId").SetText(m.endToEndID(p))
	instd := tx.CreateElement("Amt").CreateElement("InstdAmt")
	instd.CreateAttr("Ccy", currency)
	instd.SetText(amount)
	// A transfer without a creditor BIC carries no agent element at all;
	// the receiving bank derives it from the IBAN.
	if p.BIC != "" {
		appendAgent(tx, "CdtrAgt", p.BIC, m.version)
	}
	cdtr := tx.CreateElement("Cdtr")
	cdtr.CreateElement("Nm").SetText(p.Name)
	appendAddress(cdtr, p.Address)
	appendIBANAccount(tx, "CdtrAcct", p.IBAN)
	appendRemittance(tx, p)
	return tx
}

// endToEndID returns the payment's end-to-end identifier. Direct debits
// without one get a generated identifier, transfers fall back to the
// NOTPROVIDED placeholder.
func (m *Message) endToEndID(p Payment) string {
	if p.EndToEndID != "" {
		return p.EndToEndID
	}
	if m.version.IsDebit() {
		return m.gen.PaymentID(m.cfg.Name)
	}
	return "NOTPROVIDED"
}
