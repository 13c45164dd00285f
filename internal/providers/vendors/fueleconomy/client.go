package fueleconomy

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/affordable-sports-cars/catalog-indexer/internal/adapter"
	"github.com/affordable-sports-cars/catalog-indexer/internal/logger"
	"github.com/affordable-sports-cars/catalog-indexer/internal/ratelimit"
	"github.com/affordable-sports-cars/catalog-indexer/internal/types"
)

const (
	PROVIDER_NAME = "fueleconomy"

	// MAX_MENU_OPTIONS bounds the vehicle detail lookups made for one year/make/model
	MAX_MENU_OPTIONS = 6
)

// MenuItem is one vehicle option of a year/make/model menu
type MenuItem struct {
	Text  string `json:"text"`
	Value string `json:"value"`
}

// MenuResponse represents the response of the menu/options endpoint.
// A single option is returned as a bare object instead of a list.
type MenuResponse struct {
	MenuItem types.FlexList[MenuItem] `json:"menuItem"`
}

// Vehicle is a raw vehicle record returned by /vehicle/{id}
type Vehicle struct {
	ID        types.FlexNumber `json:"id"`
	Year      types.FlexNumber `json:"year"`
	Make      string           `json:"make"`
	Model     string           `json:"model"`
	FuelType  string           `json:"fuelType"`
	Trany     string           `json:"trany"`
	Displ     types.FlexNumber `json:"displ"`
	Cylinders types.FlexNumber `json:"cylinders"`
	City08    types.FlexNumber `json:"city08"`
	Highway08 types.FlexNumber `json:"highway08"`
	Comb08    types.FlexNumber `json:"comb08"`
	VClass    string           `json:"VClass"`
}

// MPG is the city and highway fuel economy of a vehicle
type MPG struct {
	City    int
	Highway int
}

// Query identifies the catalog trim to find fuel economy for
type Query struct {
	Year         int
	Make         string
	Model        string
	Engine       string
	Transmission string
}

// Client defines the interface for the fueleconomy.gov API to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../../mocks/fueleconomy_client.go -package=mocks -mock_names=Client=MockFuelEconomyClient
type Client interface {
	// GetMenuOptions lists the vehicle options for a year, make and model
	GetMenuOptions(ctx context.Context, year int, makeName, modelName string) ([]MenuItem, error)

	// GetVehicle fetches a single vehicle record
	GetVehicle(ctx context.Context, id string) (*Vehicle, error)

	// FindBestMPG returns the fuel economy of the option that best fits q,
	// or nil when no option carries usable figures
	FindBestMPG(ctx context.Context, q Query) (*MPG, error)
}

// FuelEconomyClient implements the fueleconomy.gov client
type FuelEconomyClient struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	apiURL         string
	json           adapter.JSON
}

// NewClient creates a new fueleconomy.gov client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, apiURL string, json adapter.JSON) Client {
	return &FuelEconomyClient{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		apiURL:         apiURL,
		json:           json,
	}
}

var jsonHeaders = map[string]string{"Accept": "application/json"}

func (c *FuelEconomyClient) GetMenuOptions(ctx context.Context, year int, makeName, modelName string) ([]MenuItem, error) {
	query := url.Values{}
	query.Set("year", strconv.Itoa(year))
	query.Set("make", makeName)
	query.Set("model", modelName)
	endpoint := fmt.Sprintf("%s/menu/options?%s", c.apiURL, query.Encode())

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, endpoint, jsonHeaders)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call FuelEconomy API: %w", err)
	}

	// an unknown year/make/model answers with an empty body
	if len(respBody) == 0 {
		return []MenuItem{}, nil
	}

	var response MenuResponse
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal FuelEconomy menu response: %w", err)
	}

	return []MenuItem(response.MenuItem), nil
}

func (c *FuelEconomyClient) GetVehicle(ctx context.Context, id string) (*Vehicle, error) {
	endpoint := fmt.Sprintf("%s/%s", c.apiURL, url.PathEscape(id))

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, endpoint, jsonHeaders)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call FuelEconomy API: %w", err)
	}

	var vehicle Vehicle
	if err := c.json.Unmarshal(respBody, &vehicle); err != nil {
		return nil, fmt.Errorf("failed to unmarshal FuelEconomy vehicle response: %w", err)
	}

	return &vehicle, nil
}

func (c *FuelEconomyClient) FindBestMPG(ctx context.Context, q Query) (*MPG, error) {
	var options []MenuItem
	for _, model := range ModelAliases(q.Model) {
		var err error
		options, err = c.GetMenuOptions(ctx, q.Year, q.Make, model)
		if err != nil {
			return nil, err
		}
		if len(options) > 0 {
			break
		}
	}

	if len(options) == 0 {
		logger.DebugCtx(ctx, "No fuel economy options found",
			zap.Int("year", q.Year),
			zap.String("make", q.Make),
			zap.String("model", q.Model))
		return nil, nil
	}

	if len(options) > MAX_MENU_OPTIONS {
		options = options[:MAX_MENU_OPTIONS]
	}

	var best *MPG
	bestScore := -1
	for _, option := range options {
		vehicle, err := c.GetVehicle(ctx, option.Value)
		if err != nil {
			return nil, err
		}

		city, highway := vehicle.City08.Int(), vehicle.Highway08.Int()
		if city <= 0 || highway <= 0 {
			continue
		}

		// first option wins ties
		score := ScoreOption(option.Text, vehicle.FuelType, q.Engine, q.Transmission)
		if score > bestScore {
			bestScore = score
			best = &MPG{City: city, Highway: highway}
		}
	}

	return best, nil
}
