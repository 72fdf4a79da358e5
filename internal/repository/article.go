package repository

import (
	"context"

	"github.com/pep299/article-generator/internal/model"
	"github.com/pep299/article-generator/internal/store"
)

type ArticleRepository interface {
	Load(ctx context.Context) error
	Append(ctx context.Context, article model.Article) error
	List() []model.Article
	FindByID(id string) (*model.Article, error)
	Stats(ctx context.Context) (*store.Stats, error)
	Close() error
}

type articleRepository struct {
	store *store.ArticleStore
}

func NewArticleRepository(articles *store.ArticleStore) ArticleRepository {
	return &articleRepository{
		store: articles,
	}
}

func (a *articleRepository) Load(ctx context.Context) error {
	return a.store.Load(ctx)
}

func (a *articleRepository) Append(ctx context.Context, article model.Article) error {
	return a.store.Append(ctx, article)
}

func (a *articleRepository) List() []model.Article {
	return a.store.List()
}

func (a *articleRepository) FindByID(id string) (*model.Article, error) {
	return a.store.FindByID(id)
}

func (a *articleRepository) Stats(ctx context.Context) (*store.Stats, error) {
	return a.store.Stats(ctx)
}

func (a *articleRepository) Close() error {
	return a.store.Close()
}
