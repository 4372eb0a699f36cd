package pipeline

import (
	"go.uber.org/zap"

	"github.com/sells-group/cleanse-cli/internal/config"
	"github.com/sells-group/cleanse-cli/internal/model"
)

// Cleaner runs the cleaning stages in fixed order over a dataset:
// name corrections, missing-value handling, deduplication, outlier
// filtering. Stages pass dataset values forward; the input dataset is
// never mutated.
type Cleaner struct {
	corrections CorrectionTable
	multiplier  float64
	keepUniform bool
}

// New creates a Cleaner from config and a correction table.
func New(cfg config.CleanConfig, corrections CorrectionTable) *Cleaner {
	multiplier := cfg.IQRMultiplier
	if multiplier <= 0 {
		multiplier = 1.5
	}
	return &Cleaner{
		corrections: corrections,
		multiplier:  multiplier,
		keepUniform: cfg.KeepUniform,
	}
}

// Result is the outcome of a full cleaning run.
type Result struct {
	Dataset *model.Dataset
	Summary model.Summary
	Median  float64
	Bounds  Bounds
}

// Run executes the full pipeline over ds. The first stage error aborts
// the run; no partially cleaned dataset is returned.
func (c *Cleaner) Run(ds *model.Dataset) (*Result, error) {
	log := zap.L().With(zap.Int("records_in", ds.Len()))

	// Reporting snapshots against the raw store.
	missingCounts := CountMissing(ds)
	duplicateGroups := DuplicateGroups(ds)
	totalBefore := sumAmounts(ds)

	cur := ApplyCorrections(ds, c.corrections)
	log.Debug("corrections applied", zap.Int("table_size", len(c.corrections)))

	cur, med, err := ImputeAmounts(cur)
	if err != nil {
		return nil, err
	}
	cur = DropMissingEmail(cur)
	log.Debug("missing values handled",
		zap.Float64("imputed_median", med),
		zap.Int("records", cur.Len()),
	)

	beforeDedupe := cur.Len()
	cur = Deduplicate(cur)
	duplicatesRemoved := beforeDedupe - cur.Len()
	log.Debug("deduplicated", zap.Int("removed", duplicatesRemoved))

	beforeOutliers := cur.Len()
	cur, bounds, err := FilterOutliers(cur, c.multiplier, c.keepUniform)
	if err != nil {
		return nil, err
	}
	outliersRemoved := beforeOutliers - cur.Len()
	log.Debug("outliers filtered",
		zap.Float64("lower", bounds.Lower),
		zap.Float64("upper", bounds.Upper),
		zap.Int("removed", outliersRemoved),
	)

	result := &Result{
		Dataset: cur,
		Summary: model.Summary{
			MissingCounts:     missingCounts,
			DuplicateGroups:   duplicateGroups,
			DuplicatesRemoved: duplicatesRemoved,
			OutliersRemoved:   outliersRemoved,
			TotalBefore:       totalBefore,
			TotalAfter:        sumAmounts(cur),
			RecordsIn:         ds.Len(),
			RecordsOut:        cur.Len(),
		},
		Median: med,
		Bounds: bounds,
	}

	log.Info("cleaning complete",
		zap.Int("records_out", result.Summary.RecordsOut),
		zap.Int("duplicate_groups", result.Summary.DuplicateGroups),
		zap.Float64("total_before", result.Summary.TotalBefore),
		zap.Float64("total_after", result.Summary.TotalAfter),
	)
	return result, nil
}

// sumAmounts totals the present purchase amounts in the store.
func sumAmounts(ds *model.Dataset) float64 {
	var total float64
	for _, rec := range ds.Records() {
		if !rec.Amount.Missing() {
			total += rec.Amount.Float64
		}
	}
	return total
}
