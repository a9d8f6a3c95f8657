package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"portfolioai/internal/config"
	"portfolioai/internal/enhance"
	"portfolioai/internal/extract"
	"portfolioai/internal/model"
)

func main() {
	resumePath := flag.String("resume", "", "resume file to extract and rewrite (.docx, .pdf or .txt)")
	portfolioPath := flag.String("portfolio", "", "portfolio JSON file whose project descriptions are rewritten")
	flag.Parse()

	if (*resumePath == "") == (*portfolioPath == "") {
		fmt.Fprintln(os.Stderr, "usage: enhance -resume <file> | -portfolio <file.json>")
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: could not read .env: %v", err)
	}

	// Load configuration
	cfg := config.Load()
	if cfg.GoogleAPIKey == "" {
		log.Fatal("GOOGLE_API_KEY is required")
	}

	ctx := context.Background()
	generator, err := enhance.NewGeminiGenerator(ctx, cfg.GoogleAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("Failed to create model client: %v", err)
	}
	svc := enhance.NewService(generator, enhance.Config{
		Timeout:     cfg.EnhanceTimeout,
		Concurrency: cfg.EnhanceConcurrency,
	})

	if *resumePath != "" {
		if err := enhanceResume(ctx, svc, *resumePath); err != nil {
			log.Fatalf("Failed to enhance resume: %v", err)
		}
		return
	}
	if err := enhancePortfolio(ctx, svc, *portfolioPath); err != nil {
		log.Fatalf("Failed to enhance portfolio: %v", err)
	}
}

// enhanceResume prints the rewritten resume as markdown on stdout.
func enhanceResume(ctx context.Context, svc *enhance.Service, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	text, err := extract.NewExtractor().Extract(filepath.Base(path), data)
	if err != nil {
		return err
	}
	log.Printf("Extracted %d characters from %s", len(text), path)

	enhanced, err := svc.EnhanceResume(ctx, text)
	if err != nil {
		return err
	}
	fmt.Println(enhanced)
	return nil
}

// enhancePortfolio prints the portfolio with rewritten project descriptions as JSON on stdout.
func enhancePortfolio(ctx context.Context, svc *enhance.Service, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var portfolio model.Portfolio
	if err := json.Unmarshal(data, &portfolio); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	log.Printf("Enhancing %d projects", len(portfolio.Projects))

	enhanced, err := svc.EnhancePortfolio(ctx, portfolio)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(enhanced)
}
