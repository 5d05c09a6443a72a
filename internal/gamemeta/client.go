// Package gamemeta is the boundary to the external game metadata
// provider. Only the Client contract matters to the rest of the
// platform; the HTTP implementation is interchangeable.
package gamemeta

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// GameMeta is the provider's view of a game.
type GameMeta struct {
	ExternalID  string     `json:"external_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CoverURL    string     `json:"cover_url"`
	ReleaseDate *time.Time `json:"release_date"`
	Developer   string     `json:"developer"`
	Publisher   string     `json:"publisher"`
	Genres      []string   `json:"genres"`
}

type Client interface {
	Search(ctx context.Context, query string) ([]GameMeta, error)
	GetByExternalID(ctx context.Context, externalID string) (*GameMeta, error)
}

type HTTPClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *HTTPClient) Search(ctx context.Context, query string) ([]GameMeta, error) {
	var out []GameMeta
	endpoint := fmt.Sprintf("%s/games?search=%s", c.baseURL, url.QueryEscape(query))
	if err := c.get(ctx, endpoint, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetByExternalID(ctx context.Context, externalID string) (*GameMeta, error) {
	var out GameMeta
	endpoint := fmt.Sprintf("%s/games/%s", c.baseURL, url.PathEscape(externalID))
	if err := c.get(ctx, endpoint, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("game metadata request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("game metadata provider returned %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
