package repository

import (
	"context"

	"github.com/pep299/article-generator/internal/model"
	"github.com/pep299/article-generator/internal/slack"
)

type NotificationRepository interface {
	NotifyArticle(ctx context.Context, article model.Article) error
}

type slackRepository struct {
	client *slack.Client
}

func NewSlackRepository(client *slack.Client) NotificationRepository {
	return &slackRepository{
		client: client,
	}
}

func (s *slackRepository) NotifyArticle(ctx context.Context, article model.Article) error {
	return s.client.SendArticleNotification(ctx, article)
}
