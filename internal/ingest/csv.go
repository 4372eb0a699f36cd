package ingest

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/cleanse-cli/internal/model"
)

// ReadCSV reads a headered CSV file into customer records.
func ReadCSV(path string) ([]model.Customer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "ingest: open csv")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "ingest: read csv")
	}
	if len(rows) == 0 {
		return nil, eris.New("ingest: csv has no header row")
	}

	return recordsFromRows(rows[0], rows[1:])
}

// ReadFile reads customer records from path, dispatching on the file
// extension: .xlsx is parsed as a workbook, everything else as CSV.
func ReadFile(path string) ([]model.Customer, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ReadXLSX(path, XLSXOptions{})
	}
	return ReadCSV(path)
}
