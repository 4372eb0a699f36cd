package pipeline

import (
	"github.com/sells-group/cleanse-cli/internal/model"
)

// CountMissing tallies missing values per field across the store.
// Only the nullable fields can be missing; present fields report zero.
func CountMissing(ds *model.Dataset) map[string]int {
	counts := map[string]int{
		model.FieldEmail:          0,
		model.FieldPurchaseAmount: 0,
	}
	for _, rec := range ds.Records() {
		if rec.Email.Missing() {
			counts[model.FieldEmail]++
		}
		if rec.Amount.Missing() {
			counts[model.FieldPurchaseAmount]++
		}
	}
	return counts
}

// ImputeAmounts fills every missing purchase amount with the median of
// the present amounts across the current store, returning the new
// store along with the median used. Records with a present amount are
// unchanged. Returns an InsufficientDataError when no present values
// exist, since the median is undefined there.
func ImputeAmounts(ds *model.Dataset) (*model.Dataset, float64, error) {
	var present []float64
	for _, rec := range ds.Records() {
		if !rec.Amount.Missing() {
			present = append(present, rec.Amount.Float64)
		}
	}
	if len(present) == 0 {
		return nil, 0, &InsufficientDataError{Field: model.FieldPurchaseAmount}
	}

	med := median(present)
	out := make([]model.Customer, ds.Len())
	for i, rec := range ds.Records() {
		if rec.Amount.Missing() {
			rec.Amount = model.FloatOf(med)
		}
		out[i] = rec
	}
	return ds.Replace(out), med, nil
}

// DropMissingEmail removes every record whose email is missing.
// Must run after ImputeAmounts so the imputation median is computed
// from the pre-filter dataset.
func DropMissingEmail(ds *model.Dataset) *model.Dataset {
	out := make([]model.Customer, 0, ds.Len())
	for _, rec := range ds.Records() {
		if rec.Email.Missing() {
			continue
		}
		out = append(out, rec)
	}
	return ds.Replace(out)
}
