package ledger

import (
	"bytes"
	"encoding/csv"
)

// OutputHeader lists the emitted CSV columns in order
var OutputHeader = []string{
	"Debtor Reference",
	"Document Number",
	"Document Date",
	"Document Balance",
	"Document Type",
}

// Document type labels
const (
	DocTypeInvoice    = "INV"
	DocTypeCreditNote = "CRD"
)

// RawTable is a positional table parsed from an upload. There is no header
// row; column index is the only addressing mechanism. Rows may be ragged,
// short rows read as blank beyond their length.
type RawTable struct {
	Rows [][]Cell
}

// Width returns the maximum row length across all rows
func (t *RawTable) Width() int {
	width := 0
	for _, row := range t.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// cellAt returns the cell at (row, col), blank when the row is shorter
func cellAt(rows [][]Cell, row, col int) Cell {
	r := rows[row]
	if col >= len(r) {
		return BlankCell()
	}
	return r[col]
}

// NormalizedRecord is one output row of the normalizer
type NormalizedRecord struct {
	DebtorReference string
	DocumentNumber  string
	DocumentDate    string
	DocumentBalance string
	DocumentType    string
}

// NormalizedTable holds emitted records in input row order. Order is
// load-bearing: debtor references are forward-filled from the nearest
// preceding non-blank value.
type NormalizedTable struct {
	Records []NormalizedRecord
}

// Len returns the record count
func (t *NormalizedTable) Len() int {
	return len(t.Records)
}

// CSV renders the table as UTF-8 CSV with the fixed five-column header
func (t *NormalizedTable) CSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(OutputHeader); err != nil {
		return nil, err
	}
	for _, rec := range t.Records {
		row := []string{
			rec.DebtorReference,
			rec.DocumentNumber,
			rec.DocumentDate,
			rec.DocumentBalance,
			rec.DocumentType,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
