package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pep299/article-generator/internal/service"
	"github.com/pep299/article-generator/internal/store"
)

// generateArticleHandler runs the generation pipeline once
func (s *Server) generateArticleHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	article, err := s.generator.GenerateArticle(ctx)
	switch {
	case err == service.ErrNoNews:
		http.Error(w, "No news items available", http.StatusNotFound)
		return
	case err == service.ErrGenerationInProgress:
		http.Error(w, "Generation already in progress", http.StatusConflict)
		return
	case err != nil:
		http.Error(w, fmt.Sprintf("Error generating article: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(article)
}

// listArticlesHandler returns the article collection for the list view
func (s *Server) listArticlesHandler(w http.ResponseWriter, r *http.Request) {
	articles := s.articles.List()

	response := map[string]interface{}{
		"articles": articles,
		"count":    len(articles),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// getArticleHandler returns a single article for the detail view
func (s *Server) getArticleHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	article, err := s.articles.FindByID(id)
	if err == store.ErrArticleNotFound {
		http.Error(w, fmt.Sprintf("Article %s not found", id), http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, fmt.Sprintf("Error finding article: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(article)
}

// statusHandler returns system status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":          "running",
		"articles":        len(s.articles.List()),
		"news_query":      s.config.NewsQuery,
		"text_model":      s.config.TextModel,
		"image_model":     s.config.ImageModel,
		"storage_backend": s.config.StorageBackend,
	}

	stats, err := s.articles.Stats(r.Context())
	if err != nil {
		log.Printf("Warning: getting storage stats: %v", err)
	} else {
		response["storage"] = stats
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
