package model

import "time"

// RunStatus represents the current state of a cleaning run.
type RunStatus string

const (
	RunStatusRunning  RunStatus = "running"
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// Summary is the structured report produced alongside a cleaned
// dataset. MissingCounts and DuplicateGroups are measured against the
// pre-cleaning store; DuplicatesRemoved reflects what deduplication
// actually discarded from the then-current pipeline state, so the two
// duplicate figures are deliberately separate.
type Summary struct {
	MissingCounts     map[string]int `json:"missing_counts"`
	DuplicateGroups   int            `json:"duplicate_groups"`
	DuplicatesRemoved int            `json:"duplicates_removed"`
	OutliersRemoved   int            `json:"outliers_removed"`
	TotalBefore       float64        `json:"total_before"`
	TotalAfter        float64        `json:"total_after"`
	RecordsIn         int            `json:"records_in"`
	RecordsOut        int            `json:"records_out"`
}

// Run represents a single cleaning run over one input.
type Run struct {
	ID        string    `json:"id"`
	Input     string    `json:"input"`
	Status    RunStatus `json:"status"`
	Summary   *Summary  `json:"summary,omitempty"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
