package store

import (
	"context"
	"testing"
	"time"

	"github.com/pep299/article-generator/internal/model"
)

func testArticle(id string) model.Article {
	return model.Article{
		ID:    id,
		Title: "Titolo " + id,
		Body: model.ArticleBody{
			Introduction: "Introduzione",
			Sections: []model.Section{
				{Subtitle: "Sezione", Text: "Testo"},
			},
			Conclusion: "Conclusione",
		},
		Image: model.GeneratedImage{
			DataURI:    "data:image/png;base64,QUJD",
			PromptUsed: "prompt",
		},
		CreatedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Source:    model.Source{Name: "Testata", URL: "https://example.com"},
		Tags:      model.DefaultTags,
	}
}

func TestArticleStore_LoadEmpty(t *testing.T) {
	ctx := context.Background()
	articles := NewArticleStore(NewMemoryStore())

	if err := articles.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(articles.List()) != 0 {
		t.Errorf("Expected empty collection, got %d articles", len(articles.List()))
	}
}

func TestArticleStore_AppendRoundTrip(t *testing.T) {
	ctx := context.Background()
	objects := NewMemoryStore()

	first := NewArticleStore(objects)
	if err := first.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	article := testArticle("1")
	if err := first.Append(ctx, article); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	// Fresh store over the same objects simulates a process restart.
	second := NewArticleStore(objects)
	if err := second.Load(ctx); err != nil {
		t.Fatalf("Load after restart failed: %v", err)
	}

	loaded := second.List()
	if len(loaded) != 1 {
		t.Fatalf("Expected 1 article after reload, got %d", len(loaded))
	}

	got := loaded[0]
	if got.ID != article.ID {
		t.Errorf("Expected ID '%s', got '%s'", article.ID, got.ID)
	}
	if got.Title != article.Title {
		t.Errorf("Expected title '%s', got '%s'", article.Title, got.Title)
	}
	if got.Body.Introduction != article.Body.Introduction {
		t.Errorf("Expected introduction to round-trip, got '%s'", got.Body.Introduction)
	}
	if len(got.Body.Sections) != 1 || got.Body.Sections[0].Subtitle != "Sezione" {
		t.Errorf("Expected sections to round-trip, got %+v", got.Body.Sections)
	}
	if got.Image.DataURI != article.Image.DataURI {
		t.Errorf("Expected image data URI to round-trip, got '%s'", got.Image.DataURI)
	}
	if got.Image.PromptUsed != article.Image.PromptUsed {
		t.Errorf("Expected image prompt to round-trip, got '%s'", got.Image.PromptUsed)
	}
	if !got.CreatedAt.Equal(article.CreatedAt) {
		t.Errorf("Expected created_at to round-trip, got %v", got.CreatedAt)
	}
	if got.Source != article.Source {
		t.Errorf("Expected source to round-trip, got %+v", got.Source)
	}
	if len(got.Tags) != len(article.Tags) {
		t.Errorf("Expected tags to round-trip, got %v", got.Tags)
	}
}

func TestArticleStore_AppendPreservesOrder(t *testing.T) {
	ctx := context.Background()
	articles := NewArticleStore(NewMemoryStore())

	for _, id := range []string{"1", "2", "3"} {
		if err := articles.Append(ctx, testArticle(id)); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	list := articles.List()
	if len(list) != 3 {
		t.Fatalf("Expected 3 articles, got %d", len(list))
	}
	for i, id := range []string{"1", "2", "3"} {
		if list[i].ID != id {
			t.Errorf("Expected article %d to have ID '%s', got '%s'", i, id, list[i].ID)
		}
	}
}

func TestArticleStore_FindByID(t *testing.T) {
	ctx := context.Background()
	articles := NewArticleStore(NewMemoryStore())

	if err := articles.Append(ctx, testArticle("42")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	found, err := articles.FindByID("42")
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found.ID != "42" {
		t.Errorf("Expected ID '42', got '%s'", found.ID)
	}

	if _, err := articles.FindByID("missing"); err != ErrArticleNotFound {
		t.Errorf("Expected ErrArticleNotFound, got %v", err)
	}
}

func TestArticleStore_MalformedCollectionDiscarded(t *testing.T) {
	ctx := context.Background()
	objects := NewMemoryStore()
	if err := objects.Set(ctx, collectionKey, []byte("not json at all")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	articles := NewArticleStore(objects)
	if err := articles.Load(ctx); err != nil {
		t.Fatalf("Expected malformed state to be absorbed, got %v", err)
	}

	if len(articles.List()) != 0 {
		t.Errorf("Expected empty collection after malformed load, got %d", len(articles.List()))
	}
}

func TestArticleStore_LegacySingleArticleMigrated(t *testing.T) {
	ctx := context.Background()
	objects := NewMemoryStore()
	if err := objects.Set(ctx, legacyArticleKey, []byte(`{"id":"legacy-1","title":"Vecchio articolo"}`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	articles := NewArticleStore(objects)
	if err := articles.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	list := articles.List()
	if len(list) != 1 {
		t.Fatalf("Expected legacy article to be loaded, got %d articles", len(list))
	}
	if list[0].ID != "legacy-1" {
		t.Errorf("Expected legacy ID, got '%s'", list[0].ID)
	}

	// The collection key wins over the legacy key once it exists.
	if err := articles.Append(ctx, testArticle("new")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	reloaded := NewArticleStore(objects)
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(reloaded.List()) != 2 {
		t.Errorf("Expected 2 articles after migration and append, got %d", len(reloaded.List()))
	}
}

func TestMemoryStore_GetMissingKey(t *testing.T) {
	objects := NewMemoryStore()

	if _, err := objects.Get(context.Background(), "nope"); err != ErrObjectNotExist {
		t.Errorf("Expected ErrObjectNotExist, got %v", err)
	}
}

func TestMemoryStore_GetStats(t *testing.T) {
	ctx := context.Background()
	objects := NewMemoryStore()

	if err := objects.Set(ctx, "a", []byte("12345")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := objects.Set(ctx, "b", []byte("678")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	stats, err := objects.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.TotalObjects != 2 {
		t.Errorf("Expected 2 objects, got %d", stats.TotalObjects)
	}
	if stats.TotalBytes != 8 {
		t.Errorf("Expected 8 bytes, got %d", stats.TotalBytes)
	}
}
