package mocks

import (
	"context"

	"github.com/pep299/article-generator/internal/news"
)

// MockNewsRepo returns a canned set of news items.
type MockNewsRepo struct {
	Items []news.Item
	Err   error
}

func (m *MockNewsRepo) FetchItems(ctx context.Context) ([]news.Item, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Items, nil
}
