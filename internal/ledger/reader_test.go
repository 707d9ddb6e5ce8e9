package ledger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dminhvu/GSD-222/internal/errors"
)

func TestReadTable_UnsupportedFormat(t *testing.T) {
	for _, name := range []string{"ledger.txt", "ledger.pdf", "ledger", "ledger.csv.bak"} {
		_, err := ReadTable([]byte("a,b"), name)
		require.Error(t, err, name)
		assert.Equal(t, errors.CodeUnsupportedFormat, errors.GetCode(err), name)
		assert.Equal(t, "Unsupported file format. Please upload a CSV or Excel file.", errors.UserMessage(err))
	}
}

func TestReadTable_EmptyInput(t *testing.T) {
	_, err := ReadTable(nil, "ledger.csv")
	require.Error(t, err)
	assert.Equal(t, errors.CodeEmptyInput, errors.GetCode(err))
	assert.Equal(t, "The uploaded file is empty.", errors.UserMessage(err))
}

func TestReadTable_ExtensionCaseInsensitive(t *testing.T) {
	table, err := ReadTable([]byte("a,b\n"), "LEDGER.CSV")
	require.NoError(t, err)
	assert.Len(t, table.Rows, 1)
}

func TestReadTable_CSVCells(t *testing.T) {
	data := []byte("00123,,  x\n\"a,b\",2\n")

	table, err := ReadTable(data, "ledger.csv")
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)

	// Leading zeros and embedded commas survive, empty fields are blank
	assert.Equal(t, CellText, table.Rows[0][0].Kind)
	assert.Equal(t, "00123", table.Rows[0][0].String())
	assert.True(t, table.Rows[0][1].IsBlank())
	assert.Equal(t, "  x", table.Rows[0][2].String())
	assert.Equal(t, "a,b", table.Rows[1][0].String())
}

func TestReadTable_RaggedRows(t *testing.T) {
	data := []byte("a,b\nc,d,e,f\ng\n")

	table, err := ReadTable(data, "ledger.csv")
	require.NoError(t, err)
	assert.Equal(t, 4, table.Width())
	assert.Len(t, table.Rows, 3)
	assert.True(t, cellAt(table.Rows, 2, 3).IsBlank())
}

func TestReadTable_Workbook(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "A1", "ref"))
	require.NoError(t, f.SetCellValue(sheet, "B2", 42.5))
	require.NoError(t, f.SetCellValue(sheet, "C2", "note"))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	table, err := ReadTable(buf.Bytes(), "ledger.xlsx")
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)

	assert.Equal(t, CellText, cellAt(table.Rows, 0, 0).Kind)
	assert.Equal(t, "ref", cellAt(table.Rows, 0, 0).String())

	num := cellAt(table.Rows, 1, 1)
	assert.Equal(t, CellNumber, num.Kind)
	assert.Equal(t, "42.5", num.Num.String())

	assert.Equal(t, CellText, cellAt(table.Rows, 1, 2).Kind)
}

func TestReadTable_WorkbookGarbage(t *testing.T) {
	_, err := ReadTable([]byte("not a zip archive"), "ledger.xlsx")
	require.Error(t, err)
}
