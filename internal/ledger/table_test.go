package ledger

import (
	"strings"
	"testing"
)

func TestNormalizedTableCSV(t *testing.T) {
	table := &NormalizedTable{Records: []NormalizedRecord{
		{DebtorReference: "D1", DocumentNumber: "N1", DocumentDate: "15/01/2024", DocumentBalance: "100.00", DocumentType: DocTypeInvoice},
		{DebtorReference: "D, 2", DocumentNumber: "N2", DocumentDate: "", DocumentBalance: "-20.00", DocumentType: DocTypeCreditNote},
	}}

	data, err := table.CSV()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "Debtor Reference,Document Number,Document Date,Document Balance,Document Type" {
		t.Errorf("Unexpected header: %s", lines[0])
	}
	if lines[1] != "D1,N1,15/01/2024,100.00,INV" {
		t.Errorf("Unexpected row 1: %s", lines[1])
	}

	// References containing commas must be quoted
	if lines[2] != `"D, 2",N2,,-20.00,CRD` {
		t.Errorf("Unexpected row 2: %s", lines[2])
	}
}

func TestNormalizedTableCSV_Empty(t *testing.T) {
	table := &NormalizedTable{}

	data, err := table.CSV()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := strings.TrimRight(string(data), "\n"); got != strings.Join(OutputHeader, ",") {
		t.Errorf("Expected header only, got %q", got)
	}
}

func TestRawTableWidth(t *testing.T) {
	table := &RawTable{Rows: [][]Cell{
		make([]Cell, 2),
		make([]Cell, 14),
		make([]Cell, 5),
	}}
	if got := table.Width(); got != 14 {
		t.Errorf("Width = %d, want 14", got)
	}

	empty := &RawTable{}
	if got := empty.Width(); got != 0 {
		t.Errorf("Empty width = %d, want 0", got)
	}
}
