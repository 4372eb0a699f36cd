package model

// Dataset is an ordered collection of customer records sharing one
// schema. It is the unit every cleaning stage consumes and produces.
// Order only matters for keep-first-occurrence semantics; stages treat
// a Dataset as a value and return a new one via Replace rather than
// mutating in place.
type Dataset struct {
	records []Customer
}

// NewDataset builds a Dataset over the given records. The slice is
// taken as-is; callers must not mutate it afterwards.
func NewDataset(records []Customer) *Dataset {
	return &Dataset{records: records}
}

// Records returns the record sequence in store order. Callers must
// treat it as read-only; derive a new store with Replace instead.
func (d *Dataset) Records() []Customer {
	return d.records
}

// Len returns the record count.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Replace returns a new Dataset whose record sequence is records,
// leaving the receiver untouched.
func (d *Dataset) Replace(records []Customer) *Dataset {
	return &Dataset{records: records}
}
