package vpic

import (
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/affordable-sports-cars/catalog-indexer/internal/adapter"
	"github.com/affordable-sports-cars/catalog-indexer/internal/logger"
	"github.com/affordable-sports-cars/catalog-indexer/internal/ratelimit"
)

const PROVIDER_NAME = "vpic"

// Model is a raw taxonomy record returned by getmodelsformake
type Model struct {
	MakeID    int    `json:"Make_ID"`
	MakeName  string `json:"Make_Name"`
	ModelID   int    `json:"Model_ID"`
	ModelName string `json:"Model_Name"`
}

// ModelsResponse represents the response of the getmodelsformake endpoint
type ModelsResponse struct {
	Count          int     `json:"Count"`
	Message        string  `json:"Message"`
	SearchCriteria string  `json:"SearchCriteria"`
	Results        []Model `json:"Results"`
}

// Client defines the interface for the NHTSA vPIC taxonomy API to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../../mocks/vpic_client.go -package=mocks -mock_names=Client=MockVPICClient
type Client interface {
	// GetModelsForMake returns every model vPIC knows for a make name.
	// An empty result is not an error.
	GetModelsForMake(ctx context.Context, makeName string) ([]Model, error)
}

// VPICClient implements the vPIC client
type VPICClient struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	apiURL         string
	json           adapter.JSON
}

// NewClient creates a new vPIC client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, apiURL string, json adapter.JSON) Client {
	return &VPICClient{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		apiURL:         apiURL,
		json:           json,
	}
}

func (c *VPICClient) GetModelsForMake(ctx context.Context, makeName string) ([]Model, error) {
	endpoint := fmt.Sprintf("%s/getmodelsformake/%s?format=json", c.apiURL, url.PathEscape(makeName))

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, endpoint, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call vPIC API: %w", err)
	}

	var response ModelsResponse
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vPIC response: %w", err)
	}

	if response.Count == 0 || len(response.Results) == 0 {
		logger.WarnCtx(ctx, "No models returned from vPIC", zap.String("make", makeName))
		return []Model{}, nil
	}

	return response.Results, nil
}
