package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CellKind defines the storage type for raw table cells
type CellKind string

const (
	CellBlank  CellKind = "blank"
	CellText   CellKind = "text"
	CellNumber CellKind = "number"
)

// Cell represents one typed value in a raw table. Raw always carries the
// source text exactly as parsed; Num is populated only for CellNumber.
type Cell struct {
	Kind CellKind
	Raw  string
	Num  decimal.Decimal
}

// BlankCell creates a blank cell
func BlankCell() Cell {
	return Cell{Kind: CellBlank}
}

// TextCell creates a text cell; empty source text collapses to blank
func TextCell(s string) Cell {
	if s == "" {
		return BlankCell()
	}
	return Cell{Kind: CellText, Raw: s}
}

// NumberCell creates a numeric cell keeping the formatted source text
func NumberCell(num decimal.Decimal, raw string) Cell {
	return Cell{Kind: CellNumber, Raw: raw, Num: num}
}

// String returns the source text of the cell
func (c Cell) String() string {
	return c.Raw
}

// IsBlank reports whether the cell has no usable text after trimming
func (c Cell) IsBlank() bool {
	return c.Kind == CellBlank || strings.TrimSpace(c.Raw) == ""
}
