package mocks

import (
	"context"

	"google.golang.org/genai"

	"github.com/pep299/article-generator/internal/gemini"
)

// MockGenerativeRepo returns canned generation results. When Entered and
// Release are set, GenerateText signals Entered and then parks until Release
// is closed, so tests can hold a run open mid-pipeline.
type MockGenerativeRepo struct {
	Text     string
	TextErr  error
	Parts    []*genai.Part
	ImageErr error
	Entered  chan struct{}
	Release  chan struct{}
}

func (m *MockGenerativeRepo) GenerateText(ctx context.Context, newsText string) (string, error) {
	if m.Entered != nil {
		m.Entered <- struct{}{}
	}
	if m.Release != nil {
		<-m.Release
	}
	if m.TextErr != nil {
		return "", m.TextErr
	}
	return m.Text, nil
}

func (m *MockGenerativeRepo) GenerateImage(ctx context.Context, newsText string) ([]*genai.Part, string, error) {
	prompt := gemini.BuildImagePrompt(newsText)
	if m.ImageErr != nil {
		return nil, prompt, m.ImageErr
	}
	return m.Parts, prompt, nil
}
