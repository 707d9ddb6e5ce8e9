package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// defaultBalance is emitted when a balance cell cannot be parsed
const defaultBalance = "0.00"

// ParseBalance converts a balance cell into its fixed two-decimal string
// and the document type derived from its sign. Unparseable cells fall back
// to "0.00" and INV.
func ParseBalance(c Cell) (balance, docType string) {
	num, ok := balanceValue(c)
	if !ok {
		return defaultBalance, DocTypeInvoice
	}
	if num.IsNegative() {
		return num.StringFixed(2), DocTypeCreditNote
	}
	return num.StringFixed(2), DocTypeInvoice
}

// balanceValue extracts the numeric value of a balance cell. Text cells are
// cleaned of thousands separators and the currency symbol before parsing.
func balanceValue(c Cell) (decimal.Decimal, bool) {
	switch c.Kind {
	case CellNumber:
		return c.Num, true
	case CellText:
		clean := strings.ReplaceAll(c.Raw, ",", "")
		clean = strings.ReplaceAll(clean, "$", "")
		clean = strings.TrimSpace(clean)
		if clean == "" {
			return decimal.Decimal{}, false
		}
		num, err := decimal.NewFromString(clean)
		if err != nil {
			return decimal.Decimal{}, false
		}
		return num, true
	default:
		return decimal.Decimal{}, false
	}
}
