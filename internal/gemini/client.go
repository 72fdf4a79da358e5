package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// textPromptTemplate asks for the article schema by name in prose. The
// transport enforces nothing: compliance is advisory and the normalizer
// recovers whatever comes back.
const textPromptTemplate = `Genera un articolo strutturato in JSON secondo lo schema seguente (senza delimitatori markdown):
{
  "titolo": string,
  "introduzione": string,
  "paragrafi": [
    {
      "sottotitolo": string,
      "testo": string
    }
  ],
  "conclusione": string
}
Return: Article JSON.
Basati sulla seguente notizia:
%s`

const imagePromptTemplate = `Genera un'immagine ad alta definizione che rappresenti la seguente notizia come se fosse una scena 3D realistica e dettagliata. L'immagine deve includere:
1. Un titolo sovrapposto in alto che riassuma il tema principale.
2. Una breve descrizione in basso che evidenzi il messaggio.
Notizia:
%s`

// Client handles Gemini generation operations for article text and images.
type Client struct {
	client     *genai.Client
	textModel  string
	imageModel string
}

// NewClient creates a new Gemini client backed by the Gemini API.
func NewClient(ctx context.Context, apiKey, textModel, imageModel string) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return &Client{
		client:     client,
		textModel:  textModel,
		imageModel: imageModel,
	}, nil
}

// BuildTextPrompt embeds the selected news text into the article prompt.
func BuildTextPrompt(newsText string) string {
	return fmt.Sprintf(textPromptTemplate, newsText)
}

// BuildImagePrompt embeds the selected news text into the image prompt.
func BuildImagePrompt(newsText string) string {
	return fmt.Sprintf(imagePromptTemplate, newsText)
}

// GenerateText asks the text model for a structured article based on the
// news text and returns the raw response text.
func (c *Client) GenerateText(ctx context.Context, newsText string) (string, error) {
	prompt := BuildTextPrompt(newsText)

	resp, err := c.client.Models.GenerateContent(ctx, c.textModel, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generating article text: %w", err)
	}

	return resp.Text(), nil
}

// GenerateImage asks the image model for an illustration of the news text.
// It returns the response parts as received plus the prompt used, so the
// caller can extract image data and keep the prompt traceable on failure.
func (c *Client) GenerateImage(ctx context.Context, newsText string) ([]*genai.Part, string, error) {
	prompt := BuildImagePrompt(newsText)

	resp, err := c.client.Models.GenerateContent(ctx, c.imageModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	})
	if err != nil {
		return nil, prompt, fmt.Errorf("generating article image: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, prompt, nil
	}

	return resp.Candidates[0].Content.Parts, prompt, nil
}
