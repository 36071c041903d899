package txledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// ReportHeader is the header row of the CSV report.
var ReportHeader = []string{"client", "available", "held", "total", "locked"}

// EncodeReport writes the ledger accounts to w as CSV, one row per account
// after the ReportHeader. Every row, including the last, ends with a newline.
func EncodeReport(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ReportHeader); err != nil {
		return fmt.Errorf("cannot write report header: %w", err)
	}
	for a := range l.Accounts() {
		row := []string{
			strconv.FormatUint(uint64(a.Client()), 10),
			a.Available().String(),
			a.Held().String(),
			a.Total().String(),
			strconv.FormatBool(a.Locked()),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write account %d: %w", a.Client(), err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("cannot write report: %w", err)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Account.
func (a *Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("client", a.client)
	w.Append("available", a.available)
	w.Append("held", a.held)
	w.Append("total", a.total)
	w.Append("locked", a.locked)
	return w.MarshalJSON()
}

// EncodeReportJSONL writes the ledger accounts to w as JSONL, one account
// object per line.
func EncodeReportJSONL(w io.Writer, l *Ledger) error {
	for a := range l.Accounts() {
		data, err := a.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot marshal account %d: %w", a.Client(), err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write report: %w", err)
		}
	}
	return nil
}
