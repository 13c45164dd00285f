package dto

import (
	"time"

	"github.com/affordable-sports-cars/catalog-indexer/internal/domain"
)

// IngestResponse is the body returned by the ingestion trigger.
// Failed runs still carry the stats gathered before the failure.
type IngestResponse struct {
	OK        bool          `json:"ok"`
	Stage     domain.Stage  `json:"stage,omitempty"`
	Timestamp *time.Time    `json:"timestamp,omitempty"`
	RunID     string        `json:"runId,omitempty"`
	Stats     *domain.Stats `json:"stats,omitempty"`
	Error     string        `json:"error,omitempty"`
}

// MapRunResultToIngestResponse builds the response of a finished run
func MapRunResultToIngestResponse(result *domain.RunResult) *IngestResponse {
	resp := &IngestResponse{
		OK:    result.Status == domain.RunStatusSucceeded,
		Stage: result.Stage,
		RunID: result.RunID,
		Error: result.Error,
	}
	if !result.FinishedAt.IsZero() {
		ts := result.FinishedAt
		resp.Timestamp = &ts
	}
	stats := result.Stats
	resp.Stats = &stats
	return resp
}
