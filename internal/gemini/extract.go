package gemini

import (
	"encoding/base64"
	"fmt"
	"log"

	"google.golang.org/genai"

	"github.com/pep299/article-generator/internal/model"
)

// ExtractImage scans response parts in order and keeps the payload of the
// last part carrying inline binary data. The response is not expected to
// contain more than one image; later parts simply override earlier ones.
// When no binary part is present the result has an empty data URI and the
// prompt is preserved for traceability.
//
// The data URI always declares image/png: the format is assumed, not
// negotiated from the part's declared mime type.
func ExtractImage(parts []*genai.Part, prompt string) model.GeneratedImage {
	var payload []byte
	for _, part := range parts {
		if part == nil || part.InlineData == nil {
			continue
		}
		if len(part.InlineData.Data) > 0 {
			payload = part.InlineData.Data
		}
	}

	if len(payload) == 0 {
		log.Printf("Warning: no inline image data found in response parts")
		return model.GeneratedImage{DataURI: "", PromptUsed: prompt}
	}

	return model.GeneratedImage{
		DataURI:    fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(payload)),
		PromptUsed: prompt,
	}
}
