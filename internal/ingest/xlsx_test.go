package ingest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

func createTestXLSX(t *testing.T, sheetName string, rows [][]string) string {
	t.Helper()

	f := xlsx.NewFile()
	sheet, err := f.AddSheet(sheetName)
	require.NoError(t, err)

	for _, row := range rows {
		r := sheet.AddRow()
		for _, cell := range row {
			r.AddCell().SetString(cell)
		}
	}

	path := filepath.Join(t.TempDir(), "customers.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

func TestReadXLSX(t *testing.T) {
	path := createTestXLSX(t, "Customers", [][]string{
		{"customer_id", "name", "email", "purchase_amount"},
		{"101", "John Doe", "john@example.com", "200"},
		{"102", "Jane Smith", "", "NA"},
	})

	records, err := ReadXLSX(path, XLSXOptions{})
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, 101, records[0].ID)
	assert.Equal(t, "John Doe", records[0].Name)
	assert.InDelta(t, 200.0, records[0].Amount.Float64, 1e-9)

	assert.True(t, records[1].Email.Missing())
	assert.True(t, records[1].Amount.Missing())
}

func TestReadXLSX_SheetByName(t *testing.T) {
	path := createTestXLSX(t, "Export", [][]string{
		{"customer_id", "name", "email", "purchase_amount"},
		{"1", "A", "a@example.com", "50"},
	})

	records, err := ReadXLSX(path, XLSXOptions{SheetName: "Export"})
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = ReadXLSX(path, XLSXOptions{SheetName: "Missing"})
	assert.Error(t, err)
}

func TestReadXLSX_SheetIndexOutOfRange(t *testing.T) {
	path := createTestXLSX(t, "Sheet1", [][]string{
		{"customer_id", "name", "email", "purchase_amount"},
	})

	_, err := ReadXLSX(path, XLSXOptions{SheetIndex: 3})
	assert.Error(t, err)
}

func TestReadFile_XLSXExtension(t *testing.T) {
	path := createTestXLSX(t, "Sheet1", [][]string{
		{"customer_id", "name", "email", "purchase_amount"},
		{"7", "G", "g@example.com", "75"},
	})

	records, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 7, records[0].ID)
}
