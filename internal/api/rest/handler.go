package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/affordable-sports-cars/catalog-indexer/internal/api/shared/dto"
	"github.com/affordable-sports-cars/catalog-indexer/internal/api/shared/executor"
	"github.com/affordable-sports-cars/catalog-indexer/internal/domain"
	"github.com/affordable-sports-cars/catalog-indexer/internal/logger"
	"github.com/affordable-sports-cars/catalog-indexer/internal/store"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
type Handler interface {
	// TriggerIngestion runs an ingestion stage and reports its stats
	// GET /api/v1/ingest?stage=<catalog|listings>
	TriggerIngestion(c *gin.Context)

	// ListIngestionRuns retrieves the ingestion run log
	// GET /api/v1/ingest/runs?limit=<limit>&offset=<offset>
	ListIngestionRuns(c *gin.Context)

	// ListCars retrieves car cards with optional filters
	// GET /api/v1/cars?make=<prefix>&q=<text>&maxPrice=<usd>&page=<page>&perPage=<perPage>
	ListCars(c *gin.Context)

	// GetCar retrieves a trim with its cheapest linked listings
	// GET /api/v1/cars/:id
	GetCar(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

// TriggerIngestion runs an ingestion stage and reports its stats
func (h *handler) TriggerIngestion(c *gin.Context) {
	rawStage := c.Query("stage")
	stage, err := domain.ParseStage(rawStage)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.IngestResponse{
			OK:    false,
			Error: domain.UnknownStageMessage(rawStage),
		})
		return
	}

	ctx := c.Request.Context()
	logger.InfoCtx(ctx, "Ingestion triggered over HTTP")

	// A client disconnect must not abort a run half way through
	result, err := h.executor.TriggerIngestion(context.WithoutCancel(ctx), stage)
	switch {
	case errors.Is(err, domain.ErrRunInProgress):
		c.JSON(http.StatusConflict, dto.IngestResponse{
			OK:    false,
			Stage: stage,
			Error: err.Error(),
		})
	case errors.Is(err, domain.ErrUnknownStage):
		c.JSON(http.StatusBadRequest, dto.IngestResponse{
			OK:    false,
			Error: domain.UnknownStageMessage(rawStage),
		})
	case err != nil:
		resp := dto.IngestResponse{
			OK:    false,
			Stage: stage,
			Error: err.Error(),
		}
		if result != nil {
			resp = *dto.MapRunResultToIngestResponse(result)
			resp.OK = false
			resp.Error = err.Error()
		}
		c.JSON(http.StatusInternalServerError, resp)
	default:
		c.JSON(http.StatusOK, dto.MapRunResultToIngestResponse(result))
	}
}

// ListIngestionRuns retrieves the ingestion run log
func (h *handler) ListIngestionRuns(c *gin.Context) {
	queryParams, err := ParseListIngestionRunsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	err = queryParams.Validate()
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ListIngestionRuns(c.Request.Context(), queryParams.Limit, queryParams.Offset)
	if err != nil {
		respondInternalError(c, err, "Failed to list ingestion runs")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListCars retrieves car cards with optional filters
func (h *handler) ListCars(c *gin.Context) {
	queryParams, err := ParseListCarsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	err = queryParams.Validate()
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ListCars(c.Request.Context(), store.CarsFilter{
		Make:     queryParams.Make,
		Query:    queryParams.Query,
		MaxPrice: queryParams.MaxPrice,
		Page:     queryParams.Page,
		PerPage:  queryParams.PerPage,
	})
	if err != nil {
		respondInternalError(c, err, "Failed to list cars")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetCar retrieves a trim with its cheapest linked listings
func (h *handler) GetCar(c *gin.Context) {
	trimID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || trimID == 0 {
		respondBadRequest(c, "Invalid car id")
		return
	}

	car, err := h.executor.GetCar(c.Request.Context(), trimID)
	if err != nil {
		respondInternalError(c, err, "Failed to get car")
		return
	}

	if car == nil {
		respondNotFound(c, "Car not found")
		return
	}

	c.JSON(http.StatusOK, car)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "catalog-indexer-api",
	})
}
