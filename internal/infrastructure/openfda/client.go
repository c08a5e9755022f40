package openfda

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"pharma-info-service/config"
)

// ErrNoResults is returned when the provider reports no matching records
// (openFDA answers 404 instead of an empty result set).
var ErrNoResults = errors.New("no matching records found")

const (
	labelEndpoint       = "/drug/label.json"
	eventEndpoint       = "/drug/event.json"
	enforcementEndpoint = "/drug/enforcement.json"
)

// Client queries the openFDA drug-information API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg config.FDAConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// LabelSearchQuery builds the disjunctive text search used for drug lookups.
func LabelSearchQuery(q string) string {
	return fmt.Sprintf(`openfda.generic_name:"%s" OR openfda.brand_name:"%s" OR openfda.substance_name:"%s"`, q, q, q)
}

// LabelDetailQuery matches a single label by application number or record id.
func LabelDetailQuery(drugID string) string {
	return fmt.Sprintf(`openfda.application_number:"%s" OR id:"%s"`, drugID, drugID)
}

// EventSearchQuery matches adverse-event reports implicating the named drug.
func EventSearchQuery(drug string) string {
	return fmt.Sprintf(`patient.drug.medicinalproduct:"%s" OR patient.drug.openfda.generic_name:"%s" OR patient.drug.openfda.brand_name:"%s"`, drug, drug, drug)
}

// EnforcementSearchQuery matches recall records by product or recall reason.
func EnforcementSearchQuery(drug string) string {
	return fmt.Sprintf(`product_description:"%s" OR reason_for_recall:"%s"`, drug, drug)
}

func (c *Client) SearchLabels(ctx context.Context, search string, limit int) (*LabelResponse, error) {
	var result LabelResponse
	if err := c.get(ctx, labelEndpoint, search, limit, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) SearchEvents(ctx context.Context, search string, limit int) (*EventResponse, error) {
	var result EventResponse
	if err := c.get(ctx, eventEndpoint, search, limit, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) SearchEnforcements(ctx context.Context, search string, limit int) (*EnforcementResponse, error) {
	var result EnforcementResponse
	if err := c.get(ctx, enforcementEndpoint, search, limit, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) get(ctx context.Context, endpoint, search string, limit int, result interface{}) error {
	params := url.Values{}
	if search != "" {
		params.Set("search", search)
	}
	params.Set("limit", strconv.Itoa(limit))
	if c.apiKey != "" {
		params.Set("api_key", c.apiKey)
	}

	reqURL := c.baseURL + endpoint + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNoResults
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("provider returned status %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode provider response: %w", err)
	}
	return nil
}
