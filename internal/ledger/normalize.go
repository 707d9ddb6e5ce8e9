package ledger

import (
	"strings"

	"github.com/dminhvu/GSD-222/internal"
	"github.com/dminhvu/GSD-222/internal/errors"
)

// logger for controlled pipeline verbosity
var logger = internal.NewDefaultLogger()

// sourceColumns are the retained input positions: debtor reference,
// document number, document date, document balance
var sourceColumns = [4]int{0, 2, 3, 13}

const (
	// headerRows is the fixed banner region dropped from every export
	headerRows = 13
	// minColumns is the narrowest layout the pipeline accepts
	minColumns = 14
)

// Normalize runs the full pipeline over an uploaded file: parse, trim the
// fixed header region, select the four source columns, shift the reference
// column down one row, derive the output fields, and drop rows missing
// either key. Per-cell failures degrade to defaults; only the parse and
// shape checks fail the whole operation.
func Normalize(data []byte, filename string) (*NormalizedTable, error) {
	table, err := ReadTable(data, filename)
	if err != nil {
		return nil, err
	}
	return normalizeTable(table)
}

func normalizeTable(table *RawTable) (*NormalizedTable, error) {
	if table.Width() < minColumns {
		return nil, errors.InsufficientColumns()
	}

	rows := table.Rows
	if len(rows) > headerRows {
		rows = rows[headerRows:]
	} else {
		rows = nil
	}

	selected := selectColumns(rows)
	shiftReferenceColumn(selected)

	out, dropped := deriveRecords(selected)
	logger.Info("Normalized %d rows into %d records", len(selected), out.Len())
	if dropped > 0 {
		logger.Debug("Dropped %d rows missing a debtor reference or document number", dropped)
	}
	return out, nil
}

// selectColumns keeps the four source positions of every row, reading blank
// where a ragged row is too short
func selectColumns(rows [][]Cell) [][4]Cell {
	selected := make([][4]Cell, len(rows))
	for i := range rows {
		for j, col := range sourceColumns {
			selected[i][j] = cellAt(rows, i, col)
		}
	}
	return selected
}

// shiftReferenceColumn moves the reference column down one row in place.
// The source layout places each debtor reference one row above the block it
// labels; row 0 becomes blank. The other columns are not shifted.
func shiftReferenceColumn(selected [][4]Cell) {
	for i := len(selected) - 1; i > 0; i-- {
		selected[i][0] = selected[i-1][0]
	}
	if len(selected) > 0 {
		selected[0][0] = BlankCell()
	}
}

// deriveRecords builds output records from the selected columns and
// reports how many rows the blank-key filter removed. The forward fill
// runs over every row before filtering so the running reference
// propagates across rows that end up dropped.
func deriveRecords(selected [][4]Cell) (*NormalizedTable, int) {
	out := &NormalizedTable{}

	dropped := 0
	currentRef := ""
	for _, row := range selected {
		if !row[0].IsBlank() {
			currentRef = row[0].String()
		}

		balance, docType := ParseBalance(row[3])
		rec := NormalizedRecord{
			DebtorReference: currentRef,
			DocumentNumber:  row[1].String(),
			DocumentDate:    NormalizeDate(row[2].String()),
			DocumentBalance: balance,
			DocumentType:    docType,
		}

		if strings.TrimSpace(rec.DebtorReference) == "" || strings.TrimSpace(rec.DocumentNumber) == "" {
			dropped++
			continue
		}
		out.Records = append(out.Records, rec)
	}

	return out, dropped
}
