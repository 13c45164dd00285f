package schema

import (
	"time"

	"gorm.io/datatypes"
)

// IngestionRunStatus is the lifecycle state of an ingestion run
type IngestionRunStatus string

const (
	// IngestionRunStatusRunning is the status of a run that has not finished
	IngestionRunStatusRunning IngestionRunStatus = "running"
	// IngestionRunStatusSucceeded is the status of a run that completed
	IngestionRunStatusSucceeded IngestionRunStatus = "succeeded"
	// IngestionRunStatusFailed is the status of a run aborted by a hard failure
	IngestionRunStatusFailed IngestionRunStatus = "failed"
)

// IngestionRun represents the ingestion_runs table - audit log of pipeline runs
type IngestionRun struct {
	// ID is the run id (ULID for time-sortable uniqueness)
	ID string `gorm:"column:id;primaryKey;type:varchar(26)"`
	// Stage is the ingestion stage that ran (catalog or listings)
	Stage string `gorm:"column:stage;not null;type:varchar(20)"`
	// Status indicates the current status: running, succeeded, failed
	Status IngestionRunStatus `gorm:"column:status;not null;default:running"`
	// StartedAt is the timestamp when the run started
	StartedAt time.Time `gorm:"column:started_at;not null;type:timestamptz"`
	// FinishedAt is the timestamp when the run finished, nil while running
	FinishedAt *time.Time `gorm:"column:finished_at;type:timestamptz"`
	// Stats is the run statistics as JSON
	Stats datatypes.JSON `gorm:"column:stats;type:jsonb"`
	// ErrorMessage contains the hard failure that aborted the run
	ErrorMessage *string `gorm:"column:error_message;type:text"`
}

// TableName specifies the table name for the IngestionRun model
func (IngestionRun) TableName() string {
	return "ingestion_runs"
}
