package camt

import "encoding/xml"

// Document is the root of a camt.052 account report or camt.053 statement.
// Exactly one of the two report containers is populated.
type Document struct {
	XMLName        xml.Name        `xml:"Document"`
	BkToCstmrStmt  *ReportEnvelope `xml:"BkToCstmrStmt"`
	BkToCstmrAcctR *ReportEnvelope `xml:"BkToCstmrAcctRpt"`
}

// ReportEnvelope holds the group header and the statements or reports.
// camt.052 calls them Rpt, camt.053 calls them Stmt; the payload shape is
// the same for our purposes.
type ReportEnvelope struct {
	GrpHdr GroupHeader `xml:"GrpHdr"`
	Stmt   []Statement `xml:"Stmt"`
	Rpt    []Statement `xml:"Rpt"`
}

// GroupHeader identifies the report message.
type GroupHeader struct {
	MsgID   string `xml:"MsgId"`
	CreDtTm string `xml:"CreDtTm"`
}

// Statement is one account statement or intraday report.
type Statement struct {
	ID      string    `xml:"Id"`
	CreDtTm string    `xml:"CreDtTm"`
	Acct    Account   `xml:"Acct"`
	Bal     []Balance `xml:"Bal"`
	Ntry    []Entry   `xml:"Ntry"`
}

// Account identifies the reported account.
type Account struct {
	ID struct {
		IBAN string `xml:"IBAN"`
	} `xml:"Id"`
	Ccy  string `xml:"Ccy"`
	Ownr struct {
		Nm string `xml:"Nm"`
	} `xml:"Ownr"`
}

// Balance is an opening or closing balance.
type Balance struct {
	Tp struct {
		CdOrPrtry struct {
			Cd string `xml:"Cd"`
		} `xml:"CdOrPrtry"`
	} `xml:"Tp"`
	Amt       Amount `xml:"Amt"`
	CdtDbtInd string `xml:"CdtDbtInd"`
	Dt        struct {
		Dt string `xml:"Dt"`
	} `xml:"Dt"`
}

// Amount is a currency-tagged decimal value.
type Amount struct {
	Text string `xml:",chardata"`
	Ccy  string `xml:"Ccy,attr"`
}

// Entry is one booked or pending movement on the account.
type Entry struct {
	NtryRef      string `xml:"NtryRef"`
	Amt          Amount `xml:"Amt"`
	CdtDbtInd    string `xml:"CdtDbtInd"`
	Sts          string `xml:"Sts"`
	BookgDt      Date   `xml:"BookgDt"`
	ValDt        Date   `xml:"ValDt"`
	AcctSvcrRef  string `xml:"AcctSvcrRef"`
	BkTxCd       BkTxCd `xml:"BkTxCd"`
	NtryDtls     struct {
		TxDtls []TxDtls `xml:"TxDtls"`
	} `xml:"NtryDtls"`
	AddtlNtryInf string `xml:"AddtlNtryInf"`
}

// Date wraps the Dt element used for booking and value dates.
type Date struct {
	Dt string `xml:"Dt"`
}

// BkTxCd is the bank transaction code of an entry.
type BkTxCd struct {
	Domn struct {
		Cd   string `xml:"Cd"`
		Fmly struct {
			Cd        string `xml:"Cd"`
			SubFmlyCd string `xml:"SubFmlyCd"`
		} `xml:"Fmly"`
	} `xml:"Domn"`
}

// TxDtls carries the transaction-level references and parties.
type TxDtls struct {
	Refs struct {
		MsgID      string `xml:"MsgId"`
		EndToEndID string `xml:"EndToEndId"`
		TxID       string `xml:"TxId"`
		PmtInfID   string `xml:"PmtInfId"`
	} `xml:"Refs"`
	RltdPties struct {
		Dbtr struct {
			Nm string `xml:"Nm"`
		} `xml:"Dbtr"`
		Cdtr struct {
			Nm string `xml:"Nm"`
		} `xml:"Cdtr"`
	} `xml:"RltdPties"`
	RmtInf struct {
		Ustrd []string `xml:"Ustrd"`
	} `xml:"RmtInf"`
}

// statements returns the statement list regardless of report flavor.
func (d *Document) statements() []Statement {
	if d.BkToCstmrStmt != nil {
		return d.BkToCstmrStmt.Stmt
	}
	if d.BkToCstmrAcctR != nil {
		return d.BkToCstmrAcctR.Rpt
	}
	return nil
}
