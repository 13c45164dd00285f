package dto

import (
	"encoding/json"
	"time"

	"github.com/affordable-sports-cars/catalog-indexer/internal/store/schema"
)

// IngestionRunResponse represents one entry of the ingestion run log
type IngestionRunResponse struct {
	ID           string          `json:"id"`
	Stage        string          `json:"stage"`
	Status       string          `json:"status"`
	StartedAt    time.Time       `json:"startedAt"`
	FinishedAt   *time.Time      `json:"finishedAt"`
	Stats        json.RawMessage `json:"stats,omitempty"`
	ErrorMessage *string         `json:"error,omitempty"`
}

// IngestionRunListResponse is a page of ingestion runs, newest first
type IngestionRunListResponse struct {
	Runs   []IngestionRunResponse `json:"runs"`
	Total  int64                  `json:"total"`
	Limit  int                    `json:"limit"`
	Offset int                    `json:"offset"`
}

// MapIngestionRunToDTO maps a schema.IngestionRun to an IngestionRunResponse
func MapIngestionRunToDTO(run schema.IngestionRun) IngestionRunResponse {
	resp := IngestionRunResponse{
		ID:           run.ID,
		Stage:        run.Stage,
		Status:       string(run.Status),
		StartedAt:    run.StartedAt,
		FinishedAt:   run.FinishedAt,
		ErrorMessage: run.ErrorMessage,
	}
	if len(run.Stats) > 0 {
		resp.Stats = json.RawMessage(run.Stats)
	}
	return resp
}
