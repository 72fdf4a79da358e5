package model

import "time"

// Section is one titled paragraph of a generated article body.
type Section struct {
	Subtitle string `json:"subtitle"`
	Text     string `json:"text"`
}

// ArticleBody is the structured narrative content of a generated article.
// It is always present: when generation does not yield valid structured
// output, Introduction carries the raw model text and Sections is empty.
type ArticleBody struct {
	Introduction string    `json:"introduction"`
	Sections     []Section `json:"sections"`
	Conclusion   string    `json:"conclusion"`
}

// GeneratedImage holds the illustrative image payload and the prompt that
// produced it. An empty DataURI means no image was produced; PromptUsed is
// populated even then so the attempted input stays traceable.
type GeneratedImage struct {
	DataURI    string `json:"data_uri"`
	PromptUsed string `json:"prompt_used"`
}

// Source identifies the news source an article was generated from.
type Source struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Article is the immutable persisted record combining source, body and image.
// Regeneration creates a new record with a new ID; records are never edited
// in place.
type Article struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Body      ArticleBody    `json:"body"`
	Image     GeneratedImage `json:"image"`
	CreatedAt time.Time      `json:"created_at"`
	Source    Source         `json:"source"`
	Tags      []string       `json:"tags"`
}

// DefaultTags is the fixed tag set assigned to every generated article.
var DefaultTags = []string{"Lavoro", "News", "AI Generated"}
