package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pep299/article-generator/internal/model"
)

// Client handles Slack notifications
type Client struct {
	botToken   string
	channel    string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Slack client
func NewClient(botToken, channel string) *Client {
	return &Client{
		botToken: botToken,
		channel:  channel,
		baseURL:  "https://slack.com/api",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ChatPostMessageRequest represents a Slack chat.postMessage request
type ChatPostMessageRequest struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

type chatPostMessageResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// SendArticleNotification announces a freshly generated article.
func (c *Client) SendArticleNotification(ctx context.Context, article model.Article) error {
	return c.sendMessage(ctx, c.formatArticleMessage(article))
}

func (c *Client) formatArticleMessage(article model.Article) string {
	imageNote := "con immagine"
	if article.Image.DataURI == "" {
		imageNote = "senza immagine"
	}

	return fmt.Sprintf(`🆕 *Nuovo articolo generato*

*%s*
📰 Fonte: %s
🔗 URL: %s
📄 Sezioni: %d (%s)
🕐 Creato: %s`,
		article.Title,
		article.Source.Name,
		article.Source.URL,
		len(article.Body.Sections),
		imageNote,
		article.CreatedAt.Format("2006-01-02 15:04:05"),
	)
}

func (c *Client) sendMessage(ctx context.Context, message string) error {
	reqBody := ChatPostMessageRequest{
		Channel: c.channel,
		Text:    message,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshaling Slack request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat.postMessage", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating Slack request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.botToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending Slack message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("Slack API request failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var slackResp chatPostMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&slackResp); err != nil {
		return fmt.Errorf("decoding Slack response: %w", err)
	}

	if !slackResp.OK {
		return fmt.Errorf("Slack API error: %s", slackResp.Error)
	}

	return nil
}
