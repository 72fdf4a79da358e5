package mocks

import (
	"context"

	"github.com/pep299/article-generator/internal/model"
	"github.com/pep299/article-generator/internal/store"
)

// MockArticleRepo records appended articles in memory.
type MockArticleRepo struct {
	Articles  []model.Article
	AppendErr error
}

func (m *MockArticleRepo) Load(ctx context.Context) error {
	return nil
}

func (m *MockArticleRepo) Append(ctx context.Context, article model.Article) error {
	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.Articles = append(m.Articles, article)
	return nil
}

func (m *MockArticleRepo) List() []model.Article {
	return m.Articles
}

func (m *MockArticleRepo) FindByID(id string) (*model.Article, error) {
	for i := range m.Articles {
		if m.Articles[i].ID == id {
			article := m.Articles[i]
			return &article, nil
		}
	}
	return nil, store.ErrArticleNotFound
}

func (m *MockArticleRepo) Stats(ctx context.Context) (*store.Stats, error) {
	return &store.Stats{TotalObjects: len(m.Articles)}, nil
}

func (m *MockArticleRepo) Close() error {
	return nil
}
