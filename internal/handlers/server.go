package handlers

import (
	"context"
	"fmt"

	"github.com/gorilla/mux"

	"github.com/pep299/article-generator/internal/config"
	"github.com/pep299/article-generator/internal/gemini"
	"github.com/pep299/article-generator/internal/model"
	"github.com/pep299/article-generator/internal/news"
	"github.com/pep299/article-generator/internal/repository"
	"github.com/pep299/article-generator/internal/service"
	"github.com/pep299/article-generator/internal/slack"
	"github.com/pep299/article-generator/internal/store"
)

// ArticleGenerator runs one generation pipeline.
type ArticleGenerator interface {
	GenerateArticle(ctx context.Context) (*model.Article, error)
}

// Server holds the dependencies for article generation and retrieval
type Server struct {
	config    *config.Config
	generator ArticleGenerator
	articles  repository.ArticleRepository
}

// NewServer creates a new server instance wiring the real collaborators.
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	objects, err := newObjectStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating object store: %w", err)
	}

	articleStore := store.NewArticleStore(objects)
	if err := articleStore.Load(ctx); err != nil {
		return nil, fmt.Errorf("loading article collection: %w", err)
	}

	geminiClient, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.TextModel, cfg.ImageModel)
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	newsRepo := repository.NewNewsRepository(
		news.NewClient(cfg.NewsAPIKey, cfg.NewsBaseURL, cfg.NewsQuery, cfg.NewsLanguage))
	generativeRepo := repository.NewGenerativeRepository(geminiClient)
	articleRepo := repository.NewArticleRepository(articleStore)

	var notifier repository.NotificationRepository
	if cfg.SlackBotToken != "" {
		notifier = repository.NewSlackRepository(slack.NewClient(cfg.SlackBotToken, cfg.SlackChannel))
	}

	return &Server{
		config:    cfg,
		generator: service.NewGenerator(newsRepo, generativeRepo, articleRepo, notifier),
		articles:  articleRepo,
	}, nil
}

// NewServerWithDeps creates a new server instance with provided dependencies (for testing)
func NewServerWithDeps(cfg *config.Config, generator ArticleGenerator, articles repository.ArticleRepository) *Server {
	return &Server{
		config:    cfg,
		generator: generator,
		articles:  articles,
	}
}

func newObjectStore(ctx context.Context, cfg *config.Config) (store.ObjectStore, error) {
	switch cfg.StorageBackend {
	case "memory":
		return store.NewMemoryStore(), nil
	case "cloud-storage":
		return store.NewGCSStore(ctx, cfg.StorageBucket)
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.StorageBackend)
	}
}

// SetupRoutes configures the HTTP routes
func (s *Server) SetupRoutes() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/articles/generate", s.generateArticleHandler).Methods("POST")
	router.HandleFunc("/articles", s.listArticlesHandler).Methods("GET")
	router.HandleFunc("/articles/{id}", s.getArticleHandler).Methods("GET")
	router.HandleFunc("/status", s.statusHandler).Methods("GET")

	return router
}

// Generate runs one generation pipeline outside the HTTP surface, for
// scheduled and one-shot invocations.
func (s *Server) Generate(ctx context.Context) (*model.Article, error) {
	return s.generator.GenerateArticle(ctx)
}

// Close releases the server's resources.
func (s *Server) Close() error {
	return s.articles.Close()
}
