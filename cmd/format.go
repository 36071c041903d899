package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/txledger"
	"github.com/etnz/txledger/renderer"
)

// Format is a report output format.
type Format string

// Supported report formats.
const (
	FormatCSV      Format = "csv"
	FormatJSONL    Format = "jsonl"
	FormatMarkdown Format = "md"
	FormatTerminal Format = "term"
)

// Formats lists the supported report formats.
var Formats = []Format{FormatCSV, FormatJSONL, FormatMarkdown, FormatTerminal}

// ParseFormat parses a report format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatCSV, FormatJSONL, FormatMarkdown, FormatTerminal:
		return f, nil
	default:
		return "", fmt.Errorf("unknown report format: %q", s)
	}
}

// writeReport writes the ledger to w in the given format.
func writeReport(w io.Writer, l *txledger.Ledger, format Format) error {
	switch format {
	case FormatCSV:
		return txledger.EncodeReport(w, l)
	case FormatJSONL:
		return txledger.EncodeReportJSONL(w, l)
	case FormatMarkdown:
		_, err := io.WriteString(w, renderer.RenderAccounts(l))
		return err
	case FormatTerminal:
		md := renderer.RenderAccounts(l)
		out, err := renderMarkdown(md)
		if err != nil {
			out = md
		}
		_, err = io.WriteString(w, out)
		return err
	default:
		return fmt.Errorf("unknown report format: %q", format)
	}
}
