package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Item is one record returned by the news search API. Content and
// Description may be empty; decoding maps JSON null to "".
type Item struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Description string `json:"description"`
	Source      Source `json:"source"`
	URL         string `json:"url"`
}

// Source is the item's originating outlet.
type Source struct {
	Name string `json:"name"`
}

// ContentText selects the text handed to the generation stages: content,
// else description, else title, first non-empty wins.
func (i Item) ContentText() string {
	for _, candidate := range []string{i.Content, i.Description, i.Title} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return ""
}

// searchResponse represents the search endpoint's response envelope.
type searchResponse struct {
	Status       string `json:"status"`
	TotalResults int    `json:"totalResults"`
	Articles     []Item `json:"articles"`
}

// Client handles news search API operations
type Client struct {
	apiKey     string
	baseURL    string
	query      string
	language   string
	httpClient *http.Client
}

// NewClient creates a new news search client
func NewClient(apiKey, baseURL, query, language string) *Client {
	return &Client{
		apiKey:   apiKey,
		baseURL:  baseURL,
		query:    query,
		language: language,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchItems fetches the current search results for the configured query.
// An empty result set is not an error; the caller decides what an empty
// run means.
func (c *Client) FetchItems(ctx context.Context) ([]Item, error) {
	endpoint := fmt.Sprintf("%s?q=%s&language=%s&apiKey=%s",
		c.baseURL,
		url.QueryEscape(c.query),
		url.QueryEscape(c.language),
		url.QueryEscape(c.apiKey),
	)

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching news: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("news API request failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var searchResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("decoding news response: %w", err)
	}

	return searchResp.Articles, nil
}
