package rest

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/affordable-sports-cars/catalog-indexer/internal/api/shared/constants"
)

// ListIngestionRunsQueryParams holds query parameters for GET /ingest/runs
type ListIngestionRunsQueryParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListCarsQueryParams holds query parameters for GET /cars
type ListCarsQueryParams struct {
	// Filters
	Make     string `form:"make"`
	Query    string `form:"q"`
	MaxPrice int    `form:"maxPrice,default=200000"`

	// Pagination
	Page    int `form:"page,default=1"`
	PerPage int `form:"perPage,default=20"`
}

// ParseListIngestionRunsQuery parses query parameters for GET /ingest/runs
func ParseListIngestionRunsQuery(c *gin.Context) (*ListIngestionRunsQueryParams, error) {
	var params ListIngestionRunsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Cap limit
	if params.Limit > constants.MAX_RUNS_LIMIT {
		params.Limit = constants.MAX_RUNS_LIMIT
	}

	return &params, nil
}

// Validate validates the query parameters
func (p *ListIngestionRunsQueryParams) Validate() error {
	if p.Limit < 1 {
		return fmt.Errorf("limit must be at least 1")
	}
	if p.Offset < 0 {
		return fmt.Errorf("offset must not be negative")
	}
	return nil
}

// ParseListCarsQuery parses query parameters for GET /cars
func ParseListCarsQuery(c *gin.Context) (*ListCarsQueryParams, error) {
	var params ListCarsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Cap page size
	if params.PerPage > constants.MAX_CARS_PER_PAGE {
		params.PerPage = constants.MAX_CARS_PER_PAGE
	}

	return &params, nil
}

// Validate validates the query parameters
func (p *ListCarsQueryParams) Validate() error {
	if p.MaxPrice < 1 {
		return fmt.Errorf("maxPrice must be positive")
	}
	if p.Page < 1 {
		return fmt.Errorf("page must be at least 1")
	}
	if p.PerPage < 1 {
		return fmt.Errorf("perPage must be at least 1")
	}
	return nil
}
