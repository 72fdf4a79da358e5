package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"google.golang.org/genai"

	"github.com/pep299/article-generator/internal/mocks"
	"github.com/pep299/article-generator/internal/news"
)

func newsItem() news.Item {
	return news.Item{
		Title:       "Titolo della notizia",
		Content:     "Contenuto completo della notizia.",
		Description: "Descrizione breve.",
		Source:      news.Source{Name: "Testata"},
		URL:         "https://example.com/notizia",
	}
}

func structuredText() string {
	return `{"introduzione": "Intro generata.", "paragrafi": [{"sottotitolo": "S1", "testo": "T1"}], "conclusione": "Fine."}`
}

func imageParts() []*genai.Part {
	return []*genai.Part{
		{Text: "Ecco l'immagine."},
		{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte("ABC")}},
	}
}

func TestGenerateArticle_Success(t *testing.T) {
	articles := &mocks.MockArticleRepo{}
	notifier := &mocks.MockNotificationRepo{}
	generator := NewGenerator(
		&mocks.MockNewsRepo{Items: []news.Item{newsItem()}},
		&mocks.MockGenerativeRepo{Text: structuredText(), Parts: imageParts()},
		articles,
		notifier,
	)

	article, err := generator.GenerateArticle(context.Background())
	if err != nil {
		t.Fatalf("GenerateArticle failed: %v", err)
	}

	if article.ID == "" {
		t.Error("Expected a non-empty article ID")
	}
	if article.Title != "Titolo della notizia" {
		t.Errorf("Expected news title, got '%s'", article.Title)
	}
	if article.Body.Introduction != "Intro generata." {
		t.Errorf("Expected normalized introduction, got '%s'", article.Body.Introduction)
	}
	if len(article.Body.Sections) != 1 || article.Body.Sections[0].Subtitle != "S1" {
		t.Errorf("Expected normalized sections, got %+v", article.Body.Sections)
	}
	if article.Image.DataURI != "data:image/png;base64,QUJD" {
		t.Errorf("Expected extracted image data URI, got '%s'", article.Image.DataURI)
	}
	if !strings.Contains(article.Image.PromptUsed, "Contenuto completo della notizia.") {
		t.Error("Expected image prompt to embed the selected news text")
	}
	if article.Source.Name != "Testata" || article.Source.URL != "https://example.com/notizia" {
		t.Errorf("Expected news source, got %+v", article.Source)
	}
	if len(article.Tags) != 3 {
		t.Errorf("Expected the fixed tag set, got %v", article.Tags)
	}
	if article.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}

	if len(articles.Articles) != 1 {
		t.Fatalf("Expected 1 persisted article, got %d", len(articles.Articles))
	}
	if articles.Articles[0].ID != article.ID {
		t.Error("Expected the returned article to be the persisted one")
	}
	if len(notifier.Notified) != 1 {
		t.Errorf("Expected 1 notification, got %d", len(notifier.Notified))
	}
}

func TestGenerateArticle_NoNewsItems(t *testing.T) {
	articles := &mocks.MockArticleRepo{}
	generator := NewGenerator(
		&mocks.MockNewsRepo{Items: nil},
		&mocks.MockGenerativeRepo{Text: structuredText(), Parts: imageParts()},
		articles,
		nil,
	)

	article, err := generator.GenerateArticle(context.Background())
	if err != ErrNoNews {
		t.Errorf("Expected ErrNoNews, got %v", err)
	}
	if article != nil {
		t.Error("Expected no article when the search is empty")
	}
	if len(articles.Articles) != 0 {
		t.Errorf("Expected store to be unchanged, got %d articles", len(articles.Articles))
	}
}

func TestGenerateArticle_NewsFetchError(t *testing.T) {
	generator := NewGenerator(
		&mocks.MockNewsRepo{Err: fmt.Errorf("network down")},
		&mocks.MockGenerativeRepo{},
		&mocks.MockArticleRepo{},
		nil,
	)

	if _, err := generator.GenerateArticle(context.Background()); err != ErrNoNews {
		t.Errorf("Expected ErrNoNews on fetch failure, got %v", err)
	}
}

func TestGenerateArticle_TextGenerationFails(t *testing.T) {
	articles := &mocks.MockArticleRepo{}
	generator := NewGenerator(
		&mocks.MockNewsRepo{Items: []news.Item{newsItem()}},
		&mocks.MockGenerativeRepo{TextErr: fmt.Errorf("model unavailable"), Parts: imageParts()},
		articles,
		nil,
	)

	article, err := generator.GenerateArticle(context.Background())
	if err != nil {
		t.Fatalf("Expected degraded article, got error: %v", err)
	}

	if article.Body.Introduction != "" {
		t.Errorf("Expected empty introduction, got '%s'", article.Body.Introduction)
	}
	if len(article.Body.Sections) != 0 {
		t.Errorf("Expected no sections, got %d", len(article.Body.Sections))
	}
	if article.Image.DataURI == "" {
		t.Error("Expected image to survive the text failure")
	}
	if len(articles.Articles) != 1 {
		t.Errorf("Expected the degraded article to be persisted, got %d", len(articles.Articles))
	}
}

func TestGenerateArticle_ImageGenerationFails(t *testing.T) {
	generator := NewGenerator(
		&mocks.MockNewsRepo{Items: []news.Item{newsItem()}},
		&mocks.MockGenerativeRepo{Text: structuredText(), ImageErr: fmt.Errorf("quota exceeded")},
		&mocks.MockArticleRepo{},
		nil,
	)

	article, err := generator.GenerateArticle(context.Background())
	if err != nil {
		t.Fatalf("Expected degraded article, got error: %v", err)
	}

	if article.Image.DataURI != "" {
		t.Errorf("Expected empty data URI, got '%s'", article.Image.DataURI)
	}
	if article.Image.PromptUsed == "" {
		t.Error("Expected prompt to stay traceable on image failure")
	}
	if article.Body.Introduction != "Intro generata." {
		t.Error("Expected body to survive the image failure")
	}
}

func TestGenerateArticle_SourceFallbacks(t *testing.T) {
	item := newsItem()
	item.Source.Name = ""
	item.URL = ""

	generator := NewGenerator(
		&mocks.MockNewsRepo{Items: []news.Item{item}},
		&mocks.MockGenerativeRepo{Text: structuredText(), Parts: imageParts()},
		&mocks.MockArticleRepo{},
		nil,
	)

	article, err := generator.GenerateArticle(context.Background())
	if err != nil {
		t.Fatalf("GenerateArticle failed: %v", err)
	}

	if article.Source.Name != "Sconosciuta" {
		t.Errorf("Expected 'Sconosciuta' fallback, got '%s'", article.Source.Name)
	}
	if article.Source.URL != "#" {
		t.Errorf("Expected '#' fallback, got '%s'", article.Source.URL)
	}
}

func TestGenerateArticle_SequentialRunsGetDistinctIDs(t *testing.T) {
	generator := NewGenerator(
		&mocks.MockNewsRepo{Items: []news.Item{newsItem()}},
		&mocks.MockGenerativeRepo{Text: structuredText(), Parts: imageParts()},
		&mocks.MockArticleRepo{},
		nil,
	)

	first, err := generator.GenerateArticle(context.Background())
	if err != nil {
		t.Fatalf("First run failed: %v", err)
	}
	second, err := generator.GenerateArticle(context.Background())
	if err != nil {
		t.Fatalf("Second run failed: %v", err)
	}

	if first.ID == second.ID {
		t.Errorf("Expected distinct IDs, both runs produced '%s'", first.ID)
	}
}

func TestGenerateArticle_RejectsConcurrentRun(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	generator := NewGenerator(
		&mocks.MockNewsRepo{Items: []news.Item{newsItem()}},
		&mocks.MockGenerativeRepo{Text: structuredText(), Parts: imageParts(), Entered: entered, Release: release},
		&mocks.MockArticleRepo{},
		nil,
	)

	firstDone := make(chan error, 1)
	go func() {
		_, err := generator.GenerateArticle(context.Background())
		firstDone <- err
	}()

	// Wait until the first run is parked inside text generation.
	<-entered

	if _, err := generator.GenerateArticle(context.Background()); err != ErrGenerationInProgress {
		t.Errorf("Expected ErrGenerationInProgress, got %v", err)
	}

	close(release)

	if err := <-firstDone; err != nil {
		t.Errorf("Expected first run to complete, got %v", err)
	}
}

func TestGenerateArticle_NotifierFailureIsNonFatal(t *testing.T) {
	generator := NewGenerator(
		&mocks.MockNewsRepo{Items: []news.Item{newsItem()}},
		&mocks.MockGenerativeRepo{Text: structuredText(), Parts: imageParts()},
		&mocks.MockArticleRepo{},
		&mocks.MockNotificationRepo{Err: fmt.Errorf("slack down")},
	)

	if _, err := generator.GenerateArticle(context.Background()); err != nil {
		t.Errorf("Expected notifier failure to be absorbed, got %v", err)
	}
}
