package carquery

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/affordable-sports-cars/catalog-indexer/internal/adapter"
	"github.com/affordable-sports-cars/catalog-indexer/internal/logger"
	"github.com/affordable-sports-cars/catalog-indexer/internal/ratelimit"
	"github.com/affordable-sports-cars/catalog-indexer/internal/types"
)

const PROVIDER_NAME = "carquery"

// Trim is a raw spec record returned by getTrims.
// CarQuery encodes most numbers as strings and unknown values as null or "".
type Trim struct {
	ModelID               string           `json:"model_id"`
	MakeID                string           `json:"model_make_id"`
	MakeDisplay           string           `json:"model_make_display"`
	Name                  string           `json:"model_name"`
	Trim                  string           `json:"model_trim"`
	Year                  types.FlexNumber `json:"model_year"`
	Body                  string           `json:"model_body"`
	EnginePosition        string           `json:"model_engine_position"`
	EngineCC              types.FlexNumber `json:"model_engine_cc"`
	EngineCylinders       types.FlexNumber `json:"model_engine_cyl"`
	EngineType            string           `json:"model_engine_type"`
	EnginePowerPS         types.FlexNumber `json:"model_engine_power_ps"`
	EngineTorqueNm        types.FlexNumber `json:"model_engine_torque_nm"`
	EngineFuel            string           `json:"model_engine_fuel"`
	TopSpeedKph           types.FlexNumber `json:"model_top_speed_kph"`
	ZeroTo100Kph          types.FlexNumber `json:"model_0_to_100_kph"`
	Drive                 string           `json:"model_drive"`
	TransmissionType      string           `json:"model_transmission_type"`
	Seats                 types.FlexNumber `json:"model_seats"`
	Doors                 types.FlexNumber `json:"model_doors"`
	WeightKg              types.FlexNumber `json:"model_weight_kg"`
	LitresPer100kmHighway types.FlexNumber `json:"model_lkm_hwy"`
	LitresPer100kmMixed   types.FlexNumber `json:"model_lkm_mixed"`
	LitresPer100kmCity    types.FlexNumber `json:"model_lkm_city"`
	SoldInUS              types.FlexNumber `json:"model_sold_in_us"`
}

// TrimsResponse represents the response of the getTrims command.
// The list is documented under "Trims"; some mirrors answer with "Models".
type TrimsResponse struct {
	Trims  []Trim `json:"Trims"`
	Models []Trim `json:"Models"`
}

func (r *TrimsResponse) list() []Trim {
	if len(r.Trims) > 0 {
		return r.Trims
	}
	return r.Models
}

// Client defines the interface for the CarQuery spec API to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../../mocks/carquery_client.go -package=mocks -mock_names=Client=MockCarQueryClient
type Client interface {
	// GetTrims returns every year/trim spec record for a make and model.
	// An empty result is not an error.
	GetTrims(ctx context.Context, makeName, modelName string) ([]Trim, error)
}

// CarQueryClient implements the CarQuery client
type CarQueryClient struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	apiURL         string
	json           adapter.JSON
}

// NewClient creates a new CarQuery client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, apiURL string, json adapter.JSON) Client {
	return &CarQueryClient{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		apiURL:         apiURL,
		json:           json,
	}
}

func (c *CarQueryClient) GetTrims(ctx context.Context, makeName, modelName string) ([]Trim, error) {
	query := url.Values{}
	query.Set("cmd", "getTrims")
	query.Set("make", makeName)
	query.Set("model", modelName)
	endpoint := fmt.Sprintf("%s/?%s", c.apiURL, query.Encode())

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, endpoint, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call CarQuery API: %w", err)
	}

	var response TrimsResponse
	if err := c.json.Unmarshal(stripJSONP(respBody), &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal CarQuery response: %w", err)
	}

	trims := response.list()
	if len(trims) == 0 {
		logger.WarnCtx(ctx, "No trims returned from CarQuery",
			zap.String("make", makeName),
			zap.String("model", modelName))
		return []Trim{}, nil
	}

	return trims, nil
}

// stripJSONP returns the JSON document inside a JSONP callback wrapper such as `?({...});`.
// Payloads that already start with an object or array are returned unchanged.
func stripJSONP(data []byte) []byte {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] == '{' || trimmed[0] == '[' {
		return trimmed
	}

	start := bytes.IndexByte(trimmed, '(')
	end := bytes.LastIndexByte(trimmed, ')')
	if start < 0 || end <= start {
		return trimmed
	}

	return bytes.TrimSpace(trimmed[start+1 : end])
}
