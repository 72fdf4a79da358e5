package mocks

import (
	"context"

	"github.com/pep299/article-generator/internal/model"
)

// MockNotificationRepo records notified articles.
type MockNotificationRepo struct {
	Notified []model.Article
	Err      error
}

func (m *MockNotificationRepo) NotifyArticle(ctx context.Context, article model.Article) error {
	if m.Err != nil {
		return m.Err
	}
	m.Notified = append(m.Notified, article)
	return nil
}
