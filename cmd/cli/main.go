package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/pep299/article-generator/internal/config"
	"github.com/pep299/article-generator/internal/handlers"
	"github.com/pep299/article-generator/internal/service"
)

// One-shot article generation: runs the pipeline once and prints the
// resulting article as JSON.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	server, err := handlers.NewServer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}
	defer server.Close()

	article, err := server.Generate(ctx)
	if err == service.ErrNoNews {
		log.Println("No news items available, nothing generated")
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(article); err != nil {
		log.Fatalf("Failed to encode article: %v", err)
	}
}
