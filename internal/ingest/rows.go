// Package ingest turns raw tabular input (CSV, XLSX) into typed
// customer records, and loads the pluggable correction table.
package ingest

import (
	"strings"

	"github.com/spf13/cast"
	"golang.org/x/text/unicode/norm"

	"github.com/sells-group/cleanse-cli/internal/model"
)

// missingMarkers are the cell values treated as absent, compared
// case-insensitively after trimming.
var missingMarkers = map[string]bool{
	"":     true,
	"na":   true,
	"n/a":  true,
	"nan":  true,
	"null": true,
}

func isMissing(cell string) bool {
	return missingMarkers[strings.ToLower(strings.TrimSpace(cell))]
}

// recordsFromRows converts a header row plus data rows into customer
// records. The schema is validated once here: a required column absent
// from the header, or a row without a parseable customer_id, is a
// model.SchemaError.
func recordsFromRows(header []string, rows [][]string) ([]model.Customer, error) {
	colIdx := make(map[string]int, len(header))
	for i, col := range header {
		colIdx[strings.ToLower(strings.TrimSpace(col))] = i
	}

	for _, col := range model.Fields {
		if _, ok := colIdx[col]; !ok {
			return nil, &model.SchemaError{Field: col}
		}
	}

	records := make([]model.Customer, 0, len(rows))
	for _, row := range rows {
		idCell := getCol(row, colIdx, model.FieldCustomerID)
		if isMissing(idCell) {
			return nil, &model.SchemaError{Field: model.FieldCustomerID, Detail: "empty value"}
		}
		id, err := cast.ToIntE(strings.TrimSpace(idCell))
		if err != nil {
			return nil, &model.SchemaError{Field: model.FieldCustomerID, Detail: "not an integer: " + idCell}
		}

		rec := model.Customer{
			ID:   id,
			Name: norm.NFC.String(strings.TrimSpace(getCol(row, colIdx, model.FieldName))),
		}

		if emailCell := getCol(row, colIdx, model.FieldEmail); !isMissing(emailCell) {
			rec.Email = model.StringOf(norm.NFC.String(strings.TrimSpace(emailCell)))
		}

		if amountCell := getCol(row, colIdx, model.FieldPurchaseAmount); !isMissing(amountCell) {
			amount, err := cast.ToFloat64E(strings.TrimSpace(amountCell))
			if err != nil {
				return nil, &model.SchemaError{Field: model.FieldPurchaseAmount, Detail: "not numeric: " + amountCell}
			}
			rec.Amount = model.FloatOf(amount)
		}

		records = append(records, rec)
	}
	return records, nil
}

// getCol returns the cell for a named column, or "" when the row is
// shorter than the header.
func getCol(row []string, colIdx map[string]int, col string) string {
	idx, ok := colIdx[col]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}
