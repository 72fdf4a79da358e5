package repository

import (
	"context"

	"github.com/pep299/article-generator/internal/news"
)

type NewsRepository interface {
	FetchItems(ctx context.Context) ([]news.Item, error)
}

type newsRepository struct {
	client *news.Client
}

func NewNewsRepository(client *news.Client) NewsRepository {
	return &newsRepository{
		client: client,
	}
}

func (n *newsRepository) FetchItems(ctx context.Context) ([]news.Item, error) {
	return n.client.FetchItems(ctx)
}
