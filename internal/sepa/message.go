// Package sepa builds ISO 20022 payment initiation documents, pain.001
// credit transfers and pain.008 direct debits. Payments are added one at
// a time, optionally grouped into batches, and exported as an XML byte
// stream with the control sums filled in.
package sepa

import (
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"

	"fjacquet/sepa-pain/internal/dateutils"
	"fjacquet/sepa-pain/internal/idgen"
	"fjacquet/sepa-pain/internal/money"
	"fjacquet/sepa-pain/internal/schema"
	"fjacquet/sepa-pain/internal/textutils"
	"fjacquet/sepa-pain/internal/xmlvalidate"
)

var log = logrus.New()

// SetLogger allows setting a configured logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

const xmlProlog = `<?xml version="1.0" encoding="UTF-8"?>`

// Message is a payment initiation document under construction. It is not
// safe for concurrent use.
type Message struct {
	cfg     Config
	version schema.Version
	clean   bool

	gen       idgen.Generator
	clock     idgen.Clock
	createdAt time.Time
	msgID     string

	doc        *etree.Document
	root       *etree.Element
	hdrNbOfTxs *etree.Element
	hdrCtrlSum *etree.Element

	batches   *batchList
	txCount   int
	total     int64
	finalized bool
}

// Option adjusts message construction, mainly to make output
// deterministic in tests.
type Option func(*Message)

// WithGenerator replaces the random message and payment id generator.
func WithGenerator(g idgen.Generator) Option {
	return func(m *Message) { m.gen = g }
}

// WithClock replaces the clock used for the creation timestamp and for
// generated identifiers.
func WithClock(c idgen.Clock) Option {
	return func(m *Message) { m.clock = c }
}

// WithoutCleaning disables transliteration of party names and
// descriptions to the SEPA character set.
func WithoutCleaning() Option {
	return func(m *Message) { m.clean = false }
}

// ExportOptions control document serialization.
type ExportOptions struct {
	// Validate runs structural checks on the serialized document.
	Validate bool
	// Pretty re-indents the output for human consumption.
	Pretty bool
}

// NewTransfer creates a pain.001 credit transfer message.
func NewTransfer(cfg Config, v schema.Version, opts ...Option) (*Message, error) {
	if v.IsDebit() {
		return nil, &ConfigError{Missing: []string{"credit transfer schema version"}}
	}
	return newMessage(cfg, v, opts)
}

// NewDirectDebit creates a pain.008 direct debit message.
func NewDirectDebit(cfg Config, v schema.Version, opts ...Option) (*Message, error) {
	if !v.IsDebit() {
		return nil, &ConfigError{Missing: []string{"direct debit schema version"}}
	}
	return newMessage(cfg, v, opts)
}

func newMessage(cfg Config, v schema.Version, opts []Option) (*Message, error) {
	if err := cfg.validate(v); err != nil {
		return nil, err
	}

	m := &Message{
		cfg:     cfg,
		version: v,
		clean:   true,
		clock:   time.Now,
		batches: newBatchList(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.createdAt = m.clock()
	if m.gen == nil {
		m.gen = idgen.Random{Now: m.clock}
	}

	if m.clean {
		m.cfg.Name = textutils.Sanitize(m.cfg.Name, 70)
	} else {
		m.cfg.Name = textutils.Truncate(m.cfg.Name, 70)
	}
	if m.cfg.MessageID != "" {
		m.msgID = textutils.Truncate(m.cfg.MessageID, 35)
	} else {
		m.msgID = m.gen.MessageID()
	}

	m.doc = etree.NewDocument()
	docEl := m.doc.CreateElement("Document")
	docEl.CreateAttr("xmlns", v.Namespace())
	docEl.CreateAttr("xmlns:xsi", "http://www.w3.org/2001/XMLSchema-instance")
	m.root = docEl.CreateElement(v.RootElement())
	m.buildHeader()

	log.WithFields(logrus.Fields{
		"schema": v.String(),
		"msgId":  m.msgID,
	}).Debug("Created payment initiation message")
	return m, nil
}

// AddPayment validates, normalizes and folds one payment into the
// document. On error the message is left exactly as it was.
func (m *Message) AddPayment(p Payment) error {
	if m.finalized {
		return &PaymentError{Field: "message", Reason: "is already exported"}
	}
	p, err := p.validate(m.version.IsDebit(), m.clean)
	if err != nil {
		return err
	}
	if m.version.IsDebit() && p.BIC == "" && m.version.RequiresBIC() {
		return &PaymentError{Field: "BIC", Reason: "is required for this schema version"}
	}

	tx := m.newTransaction(p)
	key := m.batchKey(p)

	if m.cfg.Batch {
		m.batches.add(key, tx, p.Amount)
	} else {
		inf := m.newPaymentInfo(key, 1, p.Amount)
		inf.AddChild(tx)
		m.root.AddChild(inf)
	}
	m.txCount++
	m.total += p.Amount

	log.WithFields(logrus.Fields{
		"amount": money.CentsToDecimal(p.Amount),
		"batch":  m.cfg.Batch,
	}).Debug("Added payment")
	return nil
}

func (m *Message) batchKey(p Payment) batchKey {
	if m.version.IsDebit() {
		return batchKey{
			seqType: p.SequenceType,
			date:    dateutils.ToISODate(p.CollectionDate),
		}
	}
	key := batchKey{instant: p.Instant}
	if !p.ExecutionDate.IsZero() {
		key.date = dateutils.ToISODate(p.ExecutionDate)
	}
	return key
}

// finalize folds pending batches into the tree and fills in the group
// header totals. Calling it twice is a no-op, so repeated exports yield
// identical documents.
func (m *Message) finalize() {
	if m.finalized {
		return
	}
	if m.cfg.Batch {
		for _, b := range m.batches.all() {
			inf := m.newPaymentInfo(b.key, b.count, b.total)
			for _, tx := range b.txs {
				inf.AddChild(tx)
			}
			m.root.AddChild(inf)
		}
	}
	m.hdrNbOfTxs.SetText(strconv.Itoa(m.txCount))
	m.hdrCtrlSum.SetText(money.CentsToDecimal(m.total))
	m.finalized = true
}

// Export serializes the document. With Validate set the serialized bytes
// are checked structurally; they are returned alongside the validation
// error so callers can inspect the offending output.
func (m *Message) Export(opts ExportOptions) ([]byte, error) {
	m.finalize()

	body, err := m.doc.WriteToBytes()
	if err != nil {
		return nil, err
	}
	out := append([]byte(xmlProlog), body...)

	if opts.Pretty {
		out, err = xmlvalidate.Pretty(out)
		if err != nil {
			return nil, err
		}
	}
	if opts.Validate {
		if err := xmlvalidate.Validate(out, m.version); err != nil {
			return out, err
		}
	}

	log.WithFields(logrus.Fields{
		"transactions": m.txCount,
		"controlSum":   money.CentsToDecimal(m.total),
	}).Debug("Exported payment initiation message")
	return out, nil
}
