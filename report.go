package newsdigest

import "sync"

// Status is the terminal state of one source within a run.
type Status string

// Source outcomes.
const (
	StatusSuccess Status = "success"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Outcome records what happened to a single source.
type Outcome struct {
	Status Status

	// Reason is a short human readable explanation for skipped and failed
	// sources.
	Reason string

	// Err is set for failed sources.
	Err error

	// Artifact is set for successful sources.
	Artifact *Artifact
}

// Success returns a successful outcome carrying a.
func Success(a *Artifact) Outcome {
	return Outcome{Status: StatusSuccess, Artifact: a}
}

// Skipped returns a skipped outcome.
func Skipped(reason string) Outcome {
	return Outcome{Status: StatusSkipped, Reason: reason}
}

// Failed returns a failed outcome. The reason is the error text.
func Failed(err error) Outcome {
	return Outcome{Status: StatusFailed, Reason: err.Error(), Err: err}
}

// ReportEntry pairs a source with its outcome.
type ReportEntry struct {
	SourceName string
	Outcome    Outcome
}

// Counts tallies outcomes by status.
type Counts struct {
	Success int
	Skipped int
	Failed  int
}

// Total returns the number of reported sources.
func (c Counts) Total() int {
	return c.Success + c.Skipped + c.Failed
}

// RunReport holds one entry per source in configuration order.
// Set is safe for concurrent use; the report is read-only once the run ends.
type RunReport struct {
	RunID string

	mu      sync.Mutex
	entries []ReportEntry
	set     []bool
}

// NewRunReport creates a report with one slot per source name.
func NewRunReport(runID string, sourceNames []string) *RunReport {
	r := &RunReport{
		RunID:   runID,
		entries: make([]ReportEntry, len(sourceNames)),
		set:     make([]bool, len(sourceNames)),
	}
	for i, name := range sourceNames {
		r.entries[i].SourceName = name
	}
	return r
}

// Set records the outcome for the source at index i.
func (r *RunReport) Set(i int, o Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[i].Outcome = o
	r.set[i] = true
}

// IsSet reports whether an outcome was recorded for index i.
func (r *RunReport) IsSet(i int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.set[i]
}

// Entries returns a copy of the entries in source order.
func (r *RunReport) Entries() []ReportEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ReportEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Counts tallies the recorded outcomes.
func (r *RunReport) Counts() Counts {
	var c Counts
	for _, e := range r.Entries() {
		switch e.Outcome.Status {
		case StatusSuccess:
			c.Success++
		case StatusSkipped:
			c.Skipped++
		case StatusFailed:
			c.Failed++
		}
	}
	return c
}

// Artifacts returns the artifacts of successful sources in source order.
func (r *RunReport) Artifacts() []*Artifact {
	var out []*Artifact
	for _, e := range r.Entries() {
		if e.Outcome.Status == StatusSuccess && e.Outcome.Artifact != nil {
			out = append(out, e.Outcome.Artifact)
		}
	}
	return out
}
