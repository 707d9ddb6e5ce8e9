package ledger

import (
	"bytes"
	"encoding/csv"
	"log"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/dminhvu/GSD-222/internal/errors"
)

// ReadTable parses uploaded bytes into a RawTable, dispatching on the
// filename extension. CSV input is comma delimited with no header row;
// Excel input is the first sheet with no header row.
func ReadTable(data []byte, filename string) (*RawTable, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var (
		table *RawTable
		err   error
	)
	switch ext {
	case ".csv":
		table, err = readCSV(data)
	case ".xls", ".xlsx":
		table, err = readWorkbook(data)
	default:
		return nil, errors.UnsupportedFormat()
	}
	if err != nil {
		return nil, err
	}

	if len(table.Rows) == 0 {
		return nil, errors.EmptyInput()
	}

	log.Printf("[Reader] Parsed %s (%d rows, %d columns)", filename, len(table.Rows), table.Width())
	return table, nil
}

// readCSV reads comma-delimited bytes. Rows may carry differing field
// counts; short rows read as blank beyond their length.
func readCSV(data []byte) (*RawTable, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV input")
	}

	table := &RawTable{Rows: make([][]Cell, 0, len(rows))}
	for _, row := range rows {
		cells := make([]Cell, len(row))
		for i, field := range row {
			cells[i] = TextCell(field)
		}
		table.Rows = append(table.Rows, cells)
	}
	return table, nil
}

// readWorkbook reads the first sheet of an Excel workbook
func readWorkbook(data []byte) (*RawTable, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open workbook")
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.EmptyInput()
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %q", sheet)
	}

	table := &RawTable{Rows: make([][]Cell, 0, len(rows))}
	for rowIdx, row := range rows {
		cells := make([]Cell, len(row))
		for colIdx, raw := range row {
			cells[colIdx] = workbookCell(f, sheet, colIdx, rowIdx, raw)
		}
		table.Rows = append(table.Rows, cells)
	}
	return table, nil
}

// workbookCell types a sheet cell from its native cell type. Numeric cells
// are usually stored with no explicit type attribute, so unset cells that
// parse cleanly count as numbers; everything else stays text.
func workbookCell(f *excelize.File, sheet string, colIdx, rowIdx int, raw string) Cell {
	if raw == "" {
		return BlankCell()
	}

	ref, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
	if err != nil {
		return TextCell(raw)
	}
	cellType, err := f.GetCellType(sheet, ref)
	if err != nil {
		return TextCell(raw)
	}

	switch cellType {
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		num, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
		if err != nil {
			return TextCell(raw)
		}
		return NumberCell(num, raw)
	default:
		return TextCell(raw)
	}
}
