package generator

import (
	"log"
	"net/http"
	"os"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	"github.com/pep299/article-generator/internal/config"
	"github.com/pep299/article-generator/internal/handlers"
)

func init() {
	functionTarget := os.Getenv("FUNCTION_TARGET")
	if functionTarget == "" {
		return
	}

	log.Printf("✅ Registering function: %s", functionTarget)
	functions.HTTP(functionTarget, handleRequest)
}

// handleRequest builds the handler per invocation, Cloud Functions style:
// no long-lived state beyond what the object store persists.
func handleRequest(w http.ResponseWriter, r *http.Request) {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	server, err := handlers.NewServer(r.Context(), cfg)
	if err != nil {
		log.Printf("Failed to create server: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	defer server.Close()

	server.SetupRoutes().ServeHTTP(w, r)
}
