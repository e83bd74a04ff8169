package sepa

import "github.com/beevik/etree"

// batchKey groups payments into one payment block. For direct debits the
// sequence type and collection date both matter; for transfers the
// execution date and instant flag do.
type batchKey struct {
	seqType string
	date    string
	instant bool
}

type batch struct {
	key     batchKey
	txs     []*etree.Element
	total   int64
	count   int
}

// batchList keeps batches in first-seen order so the emitted payment
// blocks are stable across runs.
type batchList struct {
	order []batchKey
	byKey map[batchKey]*batch
}

func newBatchList() *batchList {
	return &batchList{byKey: make(map[batchKey]*batch)}
}

func (l *batchList) add(key batchKey, tx *etree.Element, cents int64) {
	b, ok := l.byKey[key]
	if !ok {
		b = &batch{key: key}
		l.byKey[key] = b
		l.order = append(l.order, key)
	}
	b.txs = append(b.txs, tx)
	b.total += cents
	b.count++
}

func (l *batchList) all() []*batch {
	out := make([]*batch, 0, len(l.order))
	for _, key := range l.order {
		out = append(out, l.byKey[key])
	}
	return out
}
