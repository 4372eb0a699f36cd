package pipeline

import (
	"github.com/sells-group/cleanse-cli/internal/model"
)

// Bounds holds the interquartile fences used for outlier filtering.
type Bounds struct {
	Q1    float64 `json:"q1"`
	Q3    float64 `json:"q3"`
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// IQR returns Q3 - Q1.
func (b Bounds) IQR() float64 {
	return b.Q3 - b.Q1
}

// Contains reports whether v lies inside the fences, inclusive on both
// ends.
func (b Bounds) Contains(v float64) bool {
	return v >= b.Lower && v <= b.Upper
}

// AmountBounds computes IQR fences over purchase amounts at the given
// multiplier. Every amount must be present by this point; a missing
// one is a contract violation surfaced as a PreconditionError.
func AmountBounds(ds *model.Dataset, multiplier float64) (Bounds, error) {
	values := make([]float64, 0, ds.Len())
	for _, rec := range ds.Records() {
		if rec.Amount.Missing() {
			return Bounds{}, &PreconditionError{Field: model.FieldPurchaseAmount, CustomerID: rec.ID}
		}
		values = append(values, rec.Amount.Float64)
	}
	if len(values) == 0 {
		return Bounds{}, &InsufficientDataError{Field: model.FieldPurchaseAmount}
	}

	q1 := quantile(values, 0.25)
	q3 := quantile(values, 0.75)
	iqr := q3 - q1
	return Bounds{
		Q1:    q1,
		Q3:    q3,
		Lower: q1 - multiplier*iqr,
		Upper: q3 + multiplier*iqr,
	}, nil
}

// FilterOutliers removes records whose purchase amount falls outside
// the IQR fences computed from the current store.
//
// When every amount is identical the IQR is zero and the fences
// collapse to a single point, so any deviating record would be
// dropped. keepUniform skips the filter entirely in that case; with
// keepUniform false the collapsed fences apply as-is.
func FilterOutliers(ds *model.Dataset, multiplier float64, keepUniform bool) (*model.Dataset, Bounds, error) {
	if ds.Len() == 0 {
		return ds.Replace(nil), Bounds{}, nil
	}

	bounds, err := AmountBounds(ds, multiplier)
	if err != nil {
		return nil, Bounds{}, err
	}

	if keepUniform && bounds.IQR() == 0 {
		return ds.Replace(ds.Records()), bounds, nil
	}

	out := make([]model.Customer, 0, ds.Len())
	for _, rec := range ds.Records() {
		if bounds.Contains(rec.Amount.Float64) {
			out = append(out, rec)
		}
	}
	return ds.Replace(out), bounds, nil
}
