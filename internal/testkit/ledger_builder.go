package testkit

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

// exportWidth is the column count of the aged-debtors export layout
const exportWidth = 14

// LedgerBuilderConfig configures the synthetic ledger export builder
type LedgerBuilderConfig struct {
	DebtorCount      int
	MaxDocsPerDebtor int
	CreditRate       float64
	StartDate        time.Time
	Seed             int64
}

// DefaultLedgerConfig returns sensible defaults for fixture generation
func DefaultLedgerConfig() LedgerBuilderConfig {
	return LedgerBuilderConfig{
		DebtorCount:      3,
		MaxDocsPerDebtor: 4,
		CreditRate:       0.25,
		StartDate:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Seed:             42,
	}
}

// LedgerBuilder generates aged-debtors exports in the fixed positional
// layout the normalizer expects: a 13-row banner region, then debtor blocks
// where the reference sits one row above the documents it labels.
type LedgerBuilder struct {
	config LedgerBuilderConfig
	rng    *rand.Rand
}

// NewLedgerBuilder creates a new builder seeded from the config
func NewLedgerBuilder(config LedgerBuilderConfig) *LedgerBuilder {
	return &LedgerBuilder{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Fixture is one generated export plus the facts tests assert against
type Fixture struct {
	Rows      [][]string
	Documents int
	Debtors   []string
}

// Build generates a complete export deterministically for the seed
func (b *LedgerBuilder) Build() *Fixture {
	fixture := &Fixture{Rows: bannerRows()}

	issue := b.config.StartDate
	for d := 0; d < b.config.DebtorCount; d++ {
		ref := fmt.Sprintf("RED%03d", d+1)
		fixture.Debtors = append(fixture.Debtors, ref)
		fixture.Rows = append(fixture.Rows, blockHeaderRow(ref))

		docs := 1 + b.rng.Intn(b.config.MaxDocsPerDebtor)
		for i := 0; i < docs; i++ {
			fixture.Rows = append(fixture.Rows, b.documentRow(d, i, issue))
			fixture.Documents++
			issue = issue.AddDate(0, 0, 1+b.rng.Intn(3))
		}
	}

	return fixture
}

// bannerRows reproduces the fixed 13-row report banner above the data
func bannerRows() [][]string {
	lines := [][]string{
		{"Redpath & Sons Pty Ltd"},
		{"Aged Debtors Ledger"},
		{},
		{"Report date:", "31/01/2024"},
		{"Ledger:", "Sales"},
		{"Currency:", "AUD"},
		{},
		{"Ageing periods:", "30", "60", "90", "120"},
		{"Include paid:", "No"},
		{},
		{"Account", "", "Document", "Date", "", "", "", "", "", "", "", "", "", "Balance"},
		{},
		{},
	}

	rows := make([][]string, len(lines))
	for i, line := range lines {
		rows[i] = padRow(line)
	}
	return rows
}

// blockHeaderRow carries only the debtor reference in the first column
func blockHeaderRow(ref string) []string {
	return padRow([]string{ref})
}

// documentRow builds one document line: number in the third column, date in
// the fourth, balance in the last
func (b *LedgerBuilder) documentRow(debtor, seq int, issue time.Time) []string {
	row := make([]string, exportWidth)
	row[1] = "Sales"
	row[2] = fmt.Sprintf("INV-%d%03d", 10+debtor, seq+1)
	row[3] = issue.Format(b.dateLayout())
	row[13] = b.balanceText()
	return row
}

// dateLayout rotates through the forms the source system emits
func (b *LedgerBuilder) dateLayout() string {
	layouts := []string{"02/01/2006", "2006-01-02", "02-Jan-2006"}
	return layouts[b.rng.Intn(len(layouts))]
}

// balanceText renders an amount the way the export does: sometimes plain,
// sometimes currency formatted, negative for credit notes
func (b *LedgerBuilder) balanceText() string {
	amount := float64(int((b.rng.Float64()*5000+10)*100)) / 100
	if b.rng.Float64() < b.config.CreditRate {
		amount = -amount
	}

	plain := strconv.FormatFloat(amount, 'f', 2, 64)
	switch b.rng.Intn(3) {
	case 0:
		return plain
	case 1:
		return withThousands(plain)
	default:
		if amount < 0 {
			return "-$" + withThousands(plain[1:])
		}
		return "$" + withThousands(plain)
	}
}

// withThousands inserts comma separators into a plain 2-decimal amount
func withThousands(plain string) string {
	intPart := plain[:len(plain)-3]
	frac := plain[len(plain)-3:]
	for i := len(intPart) - 3; i > 0; i -= 3 {
		intPart = intPart[:i] + "," + intPart[i:]
	}
	return intPart + frac
}

func padRow(cells []string) []string {
	row := make([]string, exportWidth)
	copy(row, cells)
	return row
}

// CSVBytes renders the fixture as the comma-delimited export
func (f *Fixture) CSVBytes() []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, row := range f.Rows {
		if err := w.Write(row); err != nil {
			return nil
		}
	}
	w.Flush()
	return buf.Bytes()
}

// XLSXBytes renders the fixture as a single-sheet workbook. Plain numeric
// text becomes native number cells, everything else stays a string.
func (f *Fixture) XLSXBytes() ([]byte, error) {
	xf := excelize.NewFile()
	defer xf.Close()

	sheet := xf.GetSheetName(0)
	for r, row := range f.Rows {
		for c, v := range row {
			if v == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, err
			}
			if num, err := strconv.ParseFloat(v, 64); err == nil {
				if err := xf.SetCellValue(sheet, cell, num); err != nil {
					return nil, err
				}
				continue
			}
			if err := xf.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := xf.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
