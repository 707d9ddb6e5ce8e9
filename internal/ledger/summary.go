package ledger

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// Summary aggregates a normalized table for the result preview
type Summary struct {
	Records     int
	Invoices    int
	CreditNotes int
	Total       decimal.Decimal
	Mean        float64
	Min         float64
	Max         float64
}

// Summarize computes balance aggregates over the emitted records
func Summarize(table *NormalizedTable) Summary {
	s := Summary{Records: table.Len(), Total: decimal.Zero}

	balances := make([]float64, 0, table.Len())
	for _, rec := range table.Records {
		if rec.DocumentType == DocTypeCreditNote {
			s.CreditNotes++
		} else {
			s.Invoices++
		}

		num, err := decimal.NewFromString(rec.DocumentBalance)
		if err != nil {
			continue
		}
		s.Total = s.Total.Add(num)
		f, _ := num.Float64()
		balances = append(balances, f)
	}

	if len(balances) > 0 {
		s.Mean, _ = stats.Mean(balances)
		s.Min, _ = stats.Min(balances)
		s.Max, _ = stats.Max(balances)
	}
	return s
}

// TotalDisplay renders the summed balance with two decimals
func (s Summary) TotalDisplay() string {
	return s.Total.StringFixed(2)
}

// String renders the one-line summary printed by the CLI
func (s Summary) String() string {
	return fmt.Sprintf("records=%d invoices=%d credit_notes=%d total=%s mean=%.2f min=%.2f max=%.2f",
		s.Records, s.Invoices, s.CreditNotes, s.TotalDisplay(), s.Mean, s.Min, s.Max)
}
