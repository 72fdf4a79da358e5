package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/pep299/article-generator/internal/model"
)

const (
	// collectionKey holds the serialized article collection.
	collectionKey = "articles/collection.json"
	// legacyArticleKey held a single serialized article before the
	// collection existed. Read-only: it is migrated into the in-memory
	// collection at load time and never written again.
	legacyArticleKey = "articles/article.json"
)

// ArticleStore owns the in-memory article collection and its durable write
// path. Load runs once at startup; Append is the only mutator and writes the
// whole collection back synchronously, so persisted state always equals the
// in-memory state when it returns. The full-collection write cost is a
// deliberate policy: collections stay small and the object store has no
// partial-update semantics.
type ArticleStore struct {
	objects  ObjectStore
	mutex    sync.RWMutex
	articles []model.Article
}

// NewArticleStore creates an article store over the given object store.
func NewArticleStore(objects ObjectStore) *ArticleStore {
	return &ArticleStore{
		objects:  objects,
		articles: []model.Article{},
	}
}

// Load reads the persisted collection into memory. Missing or malformed
// persisted state is logged and treated as empty, never surfaced as an
// error: the store must always come up.
func (s *ArticleStore) Load(ctx context.Context) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.articles = []model.Article{}

	data, err := s.objects.Get(ctx, collectionKey)
	if err == ErrObjectNotExist {
		return s.loadLegacy(ctx)
	}
	if err != nil {
		log.Printf("Warning: reading article collection: %v", err)
		return nil
	}

	var articles []model.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		log.Printf("Warning: discarding malformed article collection: %v", err)
		return nil
	}

	s.articles = articles
	return nil
}

// loadLegacy migrates the single-article key into the collection. Caller
// holds the lock.
func (s *ArticleStore) loadLegacy(ctx context.Context) error {
	data, err := s.objects.Get(ctx, legacyArticleKey)
	if err == ErrObjectNotExist {
		return nil
	}
	if err != nil {
		log.Printf("Warning: reading legacy article: %v", err)
		return nil
	}

	var article model.Article
	if err := json.Unmarshal(data, &article); err != nil {
		log.Printf("Warning: discarding malformed legacy article: %v", err)
		return nil
	}

	s.articles = []model.Article{article}
	return nil
}

// Append adds an article to the collection and persists the updated
// collection before returning.
func (s *ArticleStore) Append(ctx context.Context, article model.Article) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	updated := append(append([]model.Article{}, s.articles...), article)

	data, err := json.Marshal(updated)
	if err != nil {
		return fmt.Errorf("marshaling article collection: %w", err)
	}

	if err := s.objects.Set(ctx, collectionKey, data); err != nil {
		return fmt.Errorf("persisting article collection: %w", err)
	}

	s.articles = updated
	return nil
}

// List returns the articles in insertion order.
func (s *ArticleStore) List() []model.Article {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]model.Article, len(s.articles))
	copy(out, s.articles)
	return out
}

// FindByID returns the article with the given id, or ErrArticleNotFound.
func (s *ArticleStore) FindByID(id string) (*model.Article, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for i := range s.articles {
		if s.articles[i].ID == id {
			article := s.articles[i]
			return &article, nil
		}
	}

	return nil, ErrArticleNotFound
}

// Stats reports the underlying object store's usage.
func (s *ArticleStore) Stats(ctx context.Context) (*Stats, error) {
	return s.objects.GetStats(ctx)
}

// Close closes the underlying object store.
func (s *ArticleStore) Close() error {
	return s.objects.Close()
}

// ErrArticleNotFound is returned when no article matches the requested id.
var ErrArticleNotFound = fmt.Errorf("article not found")
