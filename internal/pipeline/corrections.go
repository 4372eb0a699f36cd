package pipeline

import (
	"github.com/sells-group/cleanse-cli/internal/model"
)

// CorrectionTable maps known-incorrect name values to their corrected
// spellings. Matching is exact and case-sensitive; a value absent from
// the table is left unchanged.
type CorrectionTable map[string]string

// ApplyCorrections substitutes corrected names into every record whose
// name matches a table key. The output has the same cardinality and
// order as the input. An empty or nil table is a no-op.
func ApplyCorrections(ds *model.Dataset, table CorrectionTable) *model.Dataset {
	if len(table) == 0 {
		return ds.Replace(ds.Records())
	}

	out := make([]model.Customer, ds.Len())
	for i, rec := range ds.Records() {
		if corrected, ok := table[rec.Name]; ok {
			rec.Name = corrected
		}
		out[i] = rec
	}
	return ds.Replace(out)
}
