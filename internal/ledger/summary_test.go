package ledger

import (
	"testing"
)

func TestSummarize(t *testing.T) {
	table := &NormalizedTable{Records: []NormalizedRecord{
		{DebtorReference: "D1", DocumentNumber: "N1", DocumentBalance: "100.00", DocumentType: DocTypeInvoice},
		{DebtorReference: "D1", DocumentNumber: "N2", DocumentBalance: "-20.00", DocumentType: DocTypeCreditNote},
		{DebtorReference: "D2", DocumentNumber: "N3", DocumentBalance: "50.50", DocumentType: DocTypeInvoice},
	}}

	s := Summarize(table)

	if s.Records != 3 {
		t.Errorf("Records = %d, want 3", s.Records)
	}
	if s.Invoices != 2 || s.CreditNotes != 1 {
		t.Errorf("Counts = %d/%d, want 2/1", s.Invoices, s.CreditNotes)
	}
	if got := s.TotalDisplay(); got != "130.50" {
		t.Errorf("Total = %s, want 130.50", got)
	}
	if s.Mean != 43.5 {
		t.Errorf("Mean = %v, want 43.5", s.Mean)
	}
	if s.Min != -20 || s.Max != 100 {
		t.Errorf("Min/Max = %v/%v, want -20/100", s.Min, s.Max)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(&NormalizedTable{})

	if s.Records != 0 || s.Invoices != 0 || s.CreditNotes != 0 {
		t.Errorf("Expected zero counts, got %+v", s)
	}
	if got := s.TotalDisplay(); got != "0.00" {
		t.Errorf("Total = %s, want 0.00", got)
	}
}
