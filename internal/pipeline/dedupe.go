package pipeline

import (
	"github.com/sells-group/cleanse-cli/internal/model"
)

// Deduplicate removes records sharing a customer ID with an earlier
// record, keeping the first occurrence in store order. Relative order
// of survivors is preserved.
func Deduplicate(ds *model.Dataset) *model.Dataset {
	seen := make(map[int]bool, ds.Len())
	out := make([]model.Customer, 0, ds.Len())
	for _, rec := range ds.Records() {
		if seen[rec.ID] {
			continue
		}
		seen[rec.ID] = true
		out = append(out, rec)
	}
	return ds.Replace(out)
}

// DuplicateGroups counts customer IDs that appear on more than one
// record. The pipeline reports this against the pre-cleaning store,
// which can differ from what Deduplicate later removes.
func DuplicateGroups(ds *model.Dataset) int {
	counts := make(map[int]int, ds.Len())
	for _, rec := range ds.Records() {
		counts[rec.ID]++
	}
	groups := 0
	for _, n := range counts {
		if n > 1 {
			groups++
		}
	}
	return groups
}
