package normalizer

import (
	"encoding/json"
	"strings"

	"github.com/pep299/article-generator/internal/model"
)

// rawSection mirrors the section object the model is asked to emit. The
// Italian names come from the generation prompt; the English aliases are
// accepted because the model occasionally translates the schema.
type rawSection struct {
	Sottotitolo string `json:"sottotitolo"`
	Subtitle    string `json:"subtitle"`
	Testo       string `json:"testo"`
	Text        string `json:"text"`
}

type rawBody struct {
	Introduzione string       `json:"introduzione"`
	Introduction string       `json:"introduction"`
	Paragrafi    []rawSection `json:"paragrafi"`
	Sections     []rawSection `json:"sections"`
	Conclusione  string       `json:"conclusione"`
	Conclusion   string       `json:"conclusion"`
}

// Normalize extracts a well-formed article body from raw generative-model
// output. It never fails: when no JSON object can be recovered, the raw text
// becomes the introduction so the pipeline always has renderable content.
//
// The scan takes the first '{' through the last '}' in the text. This is a
// deliberate simplification: it assumes the model emits at most one JSON
// object and no '}' in trailing free text. It also strips the ```json code
// fences the model tends to wrap its output in.
func Normalize(raw string) model.ArticleBody {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		var body rawBody
		if err := json.Unmarshal([]byte(raw[start:end+1]), &body); err == nil {
			return toArticleBody(body)
		}
	}

	return model.ArticleBody{
		Introduction: raw,
		Sections:     []model.Section{},
		Conclusion:   "",
	}
}

func toArticleBody(body rawBody) model.ArticleBody {
	rawSections := body.Paragrafi
	if len(rawSections) == 0 {
		rawSections = body.Sections
	}

	sections := make([]model.Section, 0, len(rawSections))
	for _, s := range rawSections {
		sections = append(sections, model.Section{
			Subtitle: firstNonEmpty(s.Sottotitolo, s.Subtitle),
			Text:     firstNonEmpty(s.Testo, s.Text),
		})
	}

	return model.ArticleBody{
		Introduction: firstNonEmpty(body.Introduzione, body.Introduction),
		Sections:     sections,
		Conclusion:   firstNonEmpty(body.Conclusione, body.Conclusion),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
