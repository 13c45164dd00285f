package ebay

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"

	"github.com/affordable-sports-cars/catalog-indexer/internal/adapter"
	"github.com/affordable-sports-cars/catalog-indexer/internal/domain"
	"github.com/affordable-sports-cars/catalog-indexer/internal/ratelimit"
)

const (
	PROVIDER_NAME = "ebay"

	// MOTORS_CATEGORY_ID is the eBay Motors cars and trucks category
	MOTORS_CATEGORY_ID = "6001"
	// USED_CONDITION_FILTER keeps used, very good and excellent listings
	USED_CONDITION_FILTER = "conditionIds:{3000|4000|5000}"
	// SORT_BY_PRICE orders results by ascending price
	SORT_BY_PRICE = "price"
)

// Token is an OAuth2 client-credentials access token
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Amount is a monetary value as returned by the Browse API
type Amount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

// Image is a listing image
type Image struct {
	ImageURL string `json:"imageUrl"`
}

// Location is the location of the item
type Location struct {
	City            string `json:"city"`
	StateOrProvince string `json:"stateOrProvince"`
	PostalCode      string `json:"postalCode"`
	Country         string `json:"country"`
}

// ItemSummary is a raw listing record returned by item_summary/search
type ItemSummary struct {
	ItemID               string    `json:"itemId"`
	Title                string    `json:"title"`
	Price                *Amount   `json:"price"`
	ItemWebURL           string    `json:"itemWebUrl"`
	Image                *Image    `json:"image"`
	ItemLocation         *Location `json:"itemLocation"`
	Condition            string    `json:"condition"`
	ListingMarketplaceID string    `json:"listingMarketplaceId"`
	BuyingOptions        []string  `json:"buyingOptions"`
	ItemCreationDate     string    `json:"itemCreationDate"`
	ItemEndDate          string    `json:"itemEndDate"`
}

// SearchResponse is a page of search results
type SearchResponse struct {
	Href          string        `json:"href"`
	Total         int           `json:"total"`
	Limit         int           `json:"limit"`
	Offset        int           `json:"offset"`
	ItemSummaries []ItemSummary `json:"itemSummaries"`
}

// SearchParams holds the caller controlled part of a search
type SearchParams struct {
	Query  string
	Limit  int
	Offset int
}

// Config holds the eBay client configuration
type Config struct {
	APIURL        string
	OAuthURL      string
	Scope         string
	MarketplaceID string
	AppID         string
	AppSecret     string
}

// Client defines the interface for the eBay Browse API to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../../mocks/ebay_client.go -package=mocks -mock_names=Client=MockEbayClient
type Client interface {
	// GetAccessToken obtains an application token with the client-credentials grant
	GetAccessToken(ctx context.Context) (*Token, error)

	// Search returns one page of used-car listings for a free-text query
	Search(ctx context.Context, token string, params SearchParams) (*SearchResponse, error)
}

// EbayClient implements the eBay client
type EbayClient struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	config         Config
	json           adapter.JSON
}

// NewClient creates a new eBay client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, cfg Config, json adapter.JSON) Client {
	return &EbayClient{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		config:         cfg,
		json:           json,
	}
}

func (c *EbayClient) GetAccessToken(ctx context.Context) (*Token, error) {
	if c.config.AppID == "" || c.config.AppSecret == "" {
		return nil, domain.ErrMissingCredentials
	}

	credentials := base64.StdEncoding.EncodeToString([]byte(c.config.AppID + ":" + c.config.AppSecret))
	headers := map[string]string{
		"Authorization": "Basic " + credentials,
	}
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("scope", c.config.Scope)

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.PostForm(ctx, c.config.OAuthURL, headers, form)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get eBay token: %w", err)
	}

	var token Token
	if err := c.json.Unmarshal(respBody, &token); err != nil {
		return nil, fmt.Errorf("failed to unmarshal eBay token response: %w", err)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("eBay token response has no access token")
	}

	return &token, nil
}

func (c *EbayClient) Search(ctx context.Context, token string, params SearchParams) (*SearchResponse, error) {
	query := url.Values{}
	query.Set("q", params.Query)
	query.Set("category_ids", MOTORS_CATEGORY_ID)
	query.Set("limit", strconv.Itoa(params.Limit))
	query.Set("offset", strconv.Itoa(params.Offset))
	query.Set("sort", SORT_BY_PRICE)
	query.Set("filter", USED_CONDITION_FILTER)
	endpoint := fmt.Sprintf("%s/buy/browse/v1/item_summary/search?%s", c.config.APIURL, query.Encode())

	headers := map[string]string{
		"Authorization": "Bearer " + token,
		"Content-Type":  "application/json",
	}
	if c.config.MarketplaceID != "" {
		headers["X-EBAY-C-MARKETPLACE-ID"] = c.config.MarketplaceID
	}

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, endpoint, headers)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call eBay search API: %w", err)
	}

	var response SearchResponse
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal eBay search response: %w", err)
	}
	if response.ItemSummaries == nil {
		response.ItemSummaries = []ItemSummary{}
	}

	return &response, nil
}
