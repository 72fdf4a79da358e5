package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/pep299/article-generator/internal/config"
	"github.com/pep299/article-generator/internal/handlers"
	"github.com/pep299/article-generator/internal/service"
)

var (
	Version   string = "dev"
	Commit    string = "unknown"
	BuildTime string = "unknown"
)

func main() {
	var (
		showHelp    = flag.Bool("help", false, "Show help message")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showHelp {
		fmt.Printf("AI News Article Generator Server\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nEnvironment Variables:\n")
		fmt.Printf("  NEWS_API_KEY          News search API key (required)\n")
		fmt.Printf("  GEMINI_API_KEY        Gemini API key (required)\n")
		fmt.Printf("  NEWS_QUERY            Search query (default: lavoro)\n")
		fmt.Printf("  NEWS_LANGUAGE         Search language (default: it)\n")
		fmt.Printf("  PORT                  Server port (default: 8080)\n")
		fmt.Printf("  HOST                  Server host (default: 0.0.0.0)\n")
		fmt.Printf("  STORAGE_BACKEND       Storage backend: memory or cloud-storage (default: memory)\n")
		fmt.Printf("  STORAGE_BUCKET        Cloud Storage bucket name\n")
		fmt.Printf("  SLACK_BOT_TOKEN       Slack bot token (optional)\n")
		fmt.Printf("  GENERATE_SCHEDULE     Cron expression for scheduled generation (optional)\n")
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("AI News Article Generator Server\n")
		fmt.Printf("Version: %s\n", Version)
		fmt.Printf("Commit: %s\n", Commit)
		fmt.Printf("Build Time: %s\n", BuildTime)
		os.Exit(0)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create server
	server, err := handlers.NewServer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}
	defer server.Close()

	// Setup routes
	router := server.SetupRoutes()

	// Create HTTP server
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Schedule unattended generation when configured
	c := cron.New()
	if cfg.GenerateSchedule != "" {
		_, err := c.AddFunc(cfg.GenerateSchedule, func() {
			log.Printf("🕐 Scheduled article generation starting")
			article, err := server.Generate(ctx)
			switch {
			case err == service.ErrNoNews:
				log.Printf("📋 No news items available, nothing generated")
			case err != nil:
				log.Printf("❌ Scheduled generation failed: %v", err)
			default:
				log.Printf("✅ Scheduled generation completed id=%s", article.ID)
			}
		})
		if err != nil {
			log.Fatalf("Failed to schedule generation (%s): %v", cfg.GenerateSchedule, err)
		}
		log.Printf("📅 Scheduled article generation with cron: %s", cfg.GenerateSchedule)
		c.Start()
		defer c.Stop()
	}

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server
	go func() {
		log.Printf("🚀 Starting server on %s:%s", cfg.Host, cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	log.Println("🛑 Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
