package domain

import (
	"fmt"
	"strings"
	"time"
)

// Stage represents an ingestion stage
type Stage string

const (
	StageCatalog  Stage = "catalog"
	StageListings Stage = "listings"
)

// ParseStage parses a stage name. An empty name selects the catalog stage.
func ParseStage(s string) (Stage, error) {
	switch Stage(strings.TrimSpace(s)) {
	case "", StageCatalog:
		return StageCatalog, nil
	case StageListings:
		return StageListings, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownStage, s)
	}
}

// UnknownStageMessage returns the user facing message for an unsupported stage
func UnknownStageMessage(s string) string {
	return fmt.Sprintf("Unknown stage: %s. Supported stages: 'catalog', 'listings'.", s)
}

// Stats is the outcome of one ingestion run or of one step of it.
// Steps return their own Stats and callers fold them together with Merge.
type Stats struct {
	MakesProcessed   int      `json:"makesProcessed"`
	ModelsProcessed  int      `json:"modelsProcessed"`
	TrimsProcessed   int      `json:"trimsProcessed"`
	MPGEnriched      int      `json:"mpgEnriched"`
	ListingsFetched  int      `json:"listingsFetched"`
	ListingsLinked   int      `json:"listingsLinked"`
	ListingsUnlinked int      `json:"listingsUnlinked"`
	TrimsPriced      int      `json:"trimsPriced"`
	Errors           []string `json:"errors"`
}

// NewStats returns empty stats with a non-nil error list
func NewStats() Stats {
	return Stats{Errors: []string{}}
}

// Merge adds the counters and errors of other into s
func (s *Stats) Merge(other Stats) {
	s.MakesProcessed += other.MakesProcessed
	s.ModelsProcessed += other.ModelsProcessed
	s.TrimsProcessed += other.TrimsProcessed
	s.MPGEnriched += other.MPGEnriched
	s.ListingsFetched += other.ListingsFetched
	s.ListingsLinked += other.ListingsLinked
	s.ListingsUnlinked += other.ListingsUnlinked
	s.TrimsPriced += other.TrimsPriced
	if len(other.Errors) > 0 {
		s.Errors = append(s.Errors, other.Errors...)
	}
}

// AddError records a non-fatal failure
func (s *Stats) AddError(format string, args ...interface{}) {
	s.Errors = append(s.Errors, fmt.Sprintf(format, args...))
}

// RunStatus represents the lifecycle state of an ingestion run
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusSucceeded RunStatus = "succeeded"
	RunStatusFailed    RunStatus = "failed"
)

// RunResult describes a finished ingestion run. It is returned even when the run fails.
type RunResult struct {
	RunID      string    `json:"runId"`
	Stage      Stage     `json:"stage"`
	Status     RunStatus `json:"status"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	Stats      Stats     `json:"stats"`
	Error      string    `json:"error,omitempty"`
}

// RunCompletedEvent is published when an ingestion run finishes
type RunCompletedEvent struct {
	RunID      string    `json:"runId"`
	Stage      Stage     `json:"stage"`
	Status     RunStatus `json:"status"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	Stats      Stats     `json:"stats"`
	Error      string    `json:"error,omitempty"`
}

// NewRunCompletedEvent builds the event for a finished run
func NewRunCompletedEvent(r *RunResult) *RunCompletedEvent {
	return &RunCompletedEvent{
		RunID:      r.RunID,
		Stage:      r.Stage,
		Status:     r.Status,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
		Stats:      r.Stats,
		Error:      r.Error,
	}
}
