package newsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"mrm-cyber-api/dto"
)

const DefaultBaseURL = "https://newsdata.io/api/1/latest"
const requestTimeout = 8 * time.Second

// Client calls the NewsData.io latest endpoint. One outbound request per
// call, bounded by an 8 second timeout, no retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func New(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
	}
}

// NewWithBaseURL is used by tests to point the client at a fake provider.
func NewWithBaseURL(apiKey, baseURL string) *Client {
	c := New(apiKey)
	c.baseURL = baseURL
	return c
}

// providerArticle mirrors the provider's result shape; URL and Link are
// alternate keys for the same concept.
type providerArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	URL         string `json:"url"`
	ImageURL    string `json:"image_url"`
	SourceID    string `json:"source_id"`
	PubDate     string `json:"pubDate"`
}

type providerResponse struct {
	Results []providerArticle `json:"results"`
}

// Latest fetches up to limit articles and maps them into NewsItem, applying
// the per-field fallback chains (title defaults to "Untitled", link falls
// back to url).
func (c *Client) Latest(ctx context.Context, query, countries, language string, limit int) ([]dto.NewsItem, error) {
	q := url.Values{}
	q.Set("apikey", c.apiKey)
	q.Set("q", query)
	q.Set("country", countries)
	q.Set("language", language)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news provider returned status %d", resp.StatusCode)
	}

	var body providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	results := body.Results
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	items := make([]dto.NewsItem, 0, len(results))
	for _, a := range results {
		title := a.Title
		if title == "" {
			title = "Untitled"
		}
		link := a.Link
		if link == "" {
			link = a.URL
		}
		items = append(items, dto.NewsItem{
			Title:       title,
			Description: a.Description,
			URL:         link,
			ImageURL:    a.ImageURL,
			Source:      a.SourceID,
			PublishedAt: a.PubDate,
		})
	}
	return items, nil
}
