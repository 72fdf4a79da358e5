package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/pep299/article-generator/internal/gemini"
	"github.com/pep299/article-generator/internal/model"
	"github.com/pep299/article-generator/internal/normalizer"
	"github.com/pep299/article-generator/internal/repository"
)

var (
	// ErrNoNews is returned when the news search yields no items. It is the
	// only pipeline failure visible to the caller; every other stage
	// degrades its field and the run completes.
	ErrNoNews = fmt.Errorf("no news items available")

	// ErrGenerationInProgress is returned when a run is already outstanding.
	// Runs are not queued: the caller retries later.
	ErrGenerationInProgress = fmt.Errorf("article generation already in progress")
)

const (
	unknownSourceName = "Sconosciuta"
	unknownSourceURL  = "#"
)

// Generator orchestrates one article generation run: news acquisition,
// text generation, normalization, image generation and persistence. It runs
// at most one pipeline at a time.
type Generator struct {
	news     repository.NewsRepository
	gen      repository.GenerativeRepository
	articles repository.ArticleRepository
	notifier repository.NotificationRepository // optional, may be nil

	mu      sync.Mutex
	running bool
}

// NewGenerator creates a new pipeline orchestrator. notifier may be nil to
// disable notifications.
func NewGenerator(
	news repository.NewsRepository,
	gen repository.GenerativeRepository,
	articles repository.ArticleRepository,
	notifier repository.NotificationRepository,
) *Generator {
	return &Generator{
		news:     news,
		gen:      gen,
		articles: articles,
		notifier: notifier,
	}
}

// GenerateArticle runs the full pipeline and returns the persisted article.
// Collaborator failures after news acquisition degrade the corresponding
// field instead of aborting: an article is always produced and persisted
// once a news item is found. No stage is retried.
func (g *Generator) GenerateArticle(ctx context.Context) (*model.Article, error) {
	if !g.beginRun() {
		return nil, ErrGenerationInProgress
	}
	defer g.endRun()

	startTime := time.Now()
	log.Printf("🗞️ Article generation started")

	// 1. Acquire
	items, err := g.news.FetchItems(ctx)
	if err != nil {
		log.Printf("Error fetching news: %v", err)
		return nil, ErrNoNews
	}
	if len(items) == 0 {
		log.Printf("News search returned no items")
		return nil, ErrNoNews
	}
	item := items[0]

	// 2. Select input text
	newsText := item.ContentText()

	// 3. Generate text (failure degrades to empty raw output)
	rawText, err := g.gen.GenerateText(ctx, newsText)
	if err != nil {
		log.Printf("Error generating article text: %v", err)
		rawText = ""
	}

	// 4. Normalize, unconditionally
	body := normalizer.Normalize(rawText)

	// 5-6. Generate image and extract payload (failure degrades to empty URI)
	parts, prompt, err := g.gen.GenerateImage(ctx, newsText)
	if err != nil {
		log.Printf("Error generating article image: %v", err)
	}
	image := gemini.ExtractImage(parts, prompt)

	// 7. Assemble
	article := model.Article{
		ID:        strconv.FormatInt(time.Now().UnixNano(), 10),
		Title:     item.Title,
		Body:      body,
		Image:     image,
		CreatedAt: time.Now(),
		Source:    articleSource(item.Source.Name, item.URL),
		Tags:      model.DefaultTags,
	}

	// 8. Persist
	if err := g.articles.Append(ctx, article); err != nil {
		return nil, fmt.Errorf("persisting article: %w", err)
	}

	if g.notifier != nil {
		if err := g.notifier.NotifyArticle(ctx, article); err != nil {
			log.Printf("Error sending article notification: %v", err)
		}
	}

	log.Printf("✅ Article generation completed id=%s title=%q duration_ms=%d",
		article.ID, article.Title, time.Since(startTime).Milliseconds())
	return &article, nil
}

func articleSource(name, url string) model.Source {
	if name == "" {
		name = unknownSourceName
	}
	if url == "" {
		url = unknownSourceURL
	}
	return model.Source{Name: name, URL: url}
}

func (g *Generator) beginRun() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running {
		return false
	}
	g.running = true
	return true
}

func (g *Generator) endRun() {
	g.mu.Lock()
	g.running = false
	g.mu.Unlock()
}
