package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xiaot623/ticketbot/internal/adapter/llm"
	"github.com/xiaot623/ticketbot/internal/adapter/optimizer"
	"github.com/xiaot623/ticketbot/internal/catalog"
	"github.com/xiaot623/ticketbot/internal/compose"
	"github.com/xiaot623/ticketbot/internal/config"
	"github.com/xiaot623/ticketbot/internal/engine"
	"github.com/xiaot623/ticketbot/internal/intent"
	"github.com/xiaot623/ticketbot/internal/service"
	transporthttp "github.com/xiaot623/ticketbot/internal/transport/http"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log.Printf("Starting ticketbot...")
	log.Printf("HTTP Port: %d", cfg.HTTPPort)
	log.Printf("LLM Base URL: %s", cfg.LLMBaseURL)
	log.Printf("Mood match mode: %s", cfg.MoodMatchMode)

	// Initialize catalog
	var cat *catalog.Memory
	if cfg.CatalogDB != "" {
		log.Printf("Catalog DB: %s", cfg.CatalogDB)
		var err error
		cat, err = catalog.OpenSQLite(cfg.CatalogDB)
		if err != nil {
			log.Fatalf("Failed to initialize catalog: %v", err)
		}
	} else {
		cat = catalog.New(catalog.SeedEvents())
	}

	// Initialize LLM completer (nil means deterministic responses only)
	completer := llm.NewCompleter(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTimeout)
	if completer == nil {
		log.Printf("No LLM API key configured, responses are deterministic")
	}

	// Initialize response composer and conversation engine
	composer := compose.New(completer, compose.WithTimeout(cfg.LLMTimeout))
	eng := engine.New(cat, composer, intent.ParseMatchMode(cfg.MoodMatchMode))

	// Initialize image optimizer (nil means optimization disabled)
	var opt *optimizer.Client
	if cfg.OptimizerAPIKey != "" {
		opt = optimizer.NewClient(cfg.OptimizerURL, cfg.OptimizerAPIKey, 10*time.Second)
	}

	// Initialize service and HTTP server
	svc := service.New(cat, eng, opt, cfg)
	e := transporthttp.NewServer(svc)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("API started on port %d", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down ticketbot...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("Ticketbot stopped")
}
