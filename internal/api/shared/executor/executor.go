package executor

import (
	"context"
	"fmt"

	"github.com/affordable-sports-cars/catalog-indexer/internal/api/shared/constants"
	"github.com/affordable-sports-cars/catalog-indexer/internal/api/shared/dto"
	apierrors "github.com/affordable-sports-cars/catalog-indexer/internal/api/shared/errors"
	"github.com/affordable-sports-cars/catalog-indexer/internal/domain"
	"github.com/affordable-sports-cars/catalog-indexer/internal/ingest"
	"github.com/affordable-sports-cars/catalog-indexer/internal/store"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// TriggerIngestion runs one ingestion stage to completion.
	// The result is non-nil whenever the run started, including failed runs.
	TriggerIngestion(ctx context.Context, stage domain.Stage) (*domain.RunResult, error)

	// ListIngestionRuns retrieves the ingestion run log, newest first
	ListIngestionRuns(ctx context.Context, limit, offset int) (*dto.IngestionRunListResponse, error)

	// ListCars retrieves a page of car cards
	ListCars(ctx context.Context, filter store.CarsFilter) (*dto.CarListResponse, error)

	// GetCar retrieves a trim and its cheapest linked listings, nil when the trim does not exist
	GetCar(ctx context.Context, trimID uint64) (*dto.CarDetailResponse, error)
}

type executor struct {
	store  store.Store
	runner ingest.Runner
}

func NewExecutor(store store.Store, runner ingest.Runner) Executor {
	return &executor{store: store, runner: runner}
}

func (e *executor) TriggerIngestion(ctx context.Context, stage domain.Stage) (*domain.RunResult, error) {
	return e.runner.Run(ctx, stage)
}

func (e *executor) ListIngestionRuns(ctx context.Context, limit, offset int) (*dto.IngestionRunListResponse, error) {
	if limit <= 0 {
		limit = constants.DEFAULT_RUNS_LIMIT
	}

	runs, total, err := e.store.ListIngestionRuns(ctx, limit, offset)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list ingestion runs: %v", err))
	}

	resp := &dto.IngestionRunListResponse{
		Runs:   make([]dto.IngestionRunResponse, 0, len(runs)),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for _, run := range runs {
		resp.Runs = append(resp.Runs, dto.MapIngestionRunToDTO(run))
	}
	return resp, nil
}

func (e *executor) ListCars(ctx context.Context, filter store.CarsFilter) (*dto.CarListResponse, error) {
	page, err := e.store.ListCars(ctx, filter)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list cars: %v", err))
	}
	return dto.MapCarsPageToDTO(page), nil
}

func (e *executor) GetCar(ctx context.Context, trimID uint64) (*dto.CarDetailResponse, error) {
	detail, err := e.store.GetCar(ctx, trimID, constants.CAR_DETAIL_LISTINGS_LIMIT)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get car: %v", err))
	}
	if detail == nil {
		return nil, nil
	}
	return dto.MapCarDetailToDTO(detail), nil
}
