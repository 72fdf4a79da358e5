package repository

import (
	"context"

	"google.golang.org/genai"

	"github.com/pep299/article-generator/internal/gemini"
)

type GenerativeRepository interface {
	GenerateText(ctx context.Context, newsText string) (string, error)
	GenerateImage(ctx context.Context, newsText string) ([]*genai.Part, string, error)
}

type generativeRepository struct {
	client *gemini.Client
}

func NewGenerativeRepository(client *gemini.Client) GenerativeRepository {
	return &generativeRepository{
		client: client,
	}
}

func (g *generativeRepository) GenerateText(ctx context.Context, newsText string) (string, error) {
	return g.client.GenerateText(ctx, newsText)
}

func (g *generativeRepository) GenerateImage(ctx context.Context, newsText string) ([]*genai.Part, string, error) {
	return g.client.GenerateImage(ctx, newsText)
}
