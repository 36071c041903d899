package txledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// column names of the input header.
const (
	colType   = "type"
	colClient = "client"
	colTx     = "tx"
	colAmount = "amount"
)

// Decoder reads transactions from a CSV stream with a "type,client,tx,amount"
// header.
//
// Columns are located by name, and the amount column may be missing
// altogether, or left empty on dispute, resolve and chargeback rows.
type Decoder struct {
	r       *csv.Reader
	columns map[string]int // index of columns by name, nil until the header is read.
}

// NewDecoder returns a decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // trailing empty amount is often omitted.
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	return &Decoder{r: cr}
}

// Decode reads the next transaction. It returns io.EOF when the input is
// exhausted.
func (d *Decoder) Decode() (Transaction, error) {
	if d.columns == nil {
		if err := d.readHeader(); err != nil {
			return Transaction{}, err
		}
	}

	record, err := d.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Transaction{}, io.EOF
		}
		return Transaction{}, fmt.Errorf("cannot read transaction: %w", err)
	}
	line, _ := d.r.FieldPos(0)

	tx, err := d.parse(record)
	if err != nil {
		return Transaction{}, fmt.Errorf("line %d: %w", line, err)
	}
	return tx, nil
}

// Transactions iterates over all remaining transactions. Iteration stops
// after the first error.
func (d *Decoder) Transactions() iter.Seq2[Transaction, error] {
	return func(yield func(Transaction, error) bool) {
		for {
			tx, err := d.Decode()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(tx, err) || err != nil {
				return
			}
		}
	}
}

func (d *Decoder) readHeader() error {
	header, err := d.r.Read()
	if errors.Is(err, io.EOF) {
		return errors.New("missing header")
	}
	if err != nil {
		return fmt.Errorf("cannot read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range []string{colType, colClient, colTx} {
		if _, ok := columns[name]; !ok {
			return fmt.Errorf("missing %q column in header %q", name, strings.Join(header, ","))
		}
	}
	d.columns = columns
	return nil
}

// field returns the trimmed value of the named column, or "" if absent from
// this record.
func (d *Decoder) field(record []string, name string) string {
	i, ok := d.columns[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func (d *Decoder) parse(record []string) (Transaction, error) {
	var tx Transaction
	var err error

	if tx.Kind, err = ParseKind(d.field(record, colType)); err != nil {
		return tx, err
	}

	client, err := strconv.ParseUint(d.field(record, colClient), 10, 16)
	if err != nil {
		return tx, fmt.Errorf("invalid client: %w", err)
	}
	tx.Client = ClientID(client)

	id, err := strconv.ParseUint(d.field(record, colTx), 10, 32)
	if err != nil {
		return tx, fmt.Errorf("invalid tx: %w", err)
	}
	tx.Tx = TxID(id)

	// amounts on dispute, resolve and chargeback are meaningless, do not fail
	// on them.
	if amount := d.field(record, colAmount); amount != "" && tx.Kind.movesFunds() {
		if tx.Amount, err = ParseAmount(amount); err != nil {
			return tx, err
		}
		tx.HasAmount = true
	}
	return tx, nil
}
