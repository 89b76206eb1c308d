package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iyhunko/product-catalog/internal/model"
)

// Client performs read-only GET requests against the PokeAPI.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a Client. Every request is bounded by timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Pokemon fetches /pokemon/{name}.
func (c *Client) Pokemon(ctx context.Context, name string) (model.Pokemon, error) {
	var out model.Pokemon
	err := c.getJSON(ctx, "pokemon/"+url.PathEscape(name), &out)
	return out, err
}

// Ability fetches /ability/{name}.
func (c *Client) Ability(ctx context.Context, name string) (model.Ability, error) {
	var out model.Ability
	err := c.getJSON(ctx, "ability/"+url.PathEscape(name), &out)
	return out, err
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+path, nil)
	if err != nil {
		return &FetchError{Resource: path, Kind: KindNetwork, Err: fmt.Errorf("failed to build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &FetchError{Resource: path, Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &FetchError{Resource: path, Kind: KindHTTPStatus, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &FetchError{Resource: path, Kind: KindParse, StatusCode: resp.StatusCode, Err: err}
	}
	return nil
}
