package main

import (
	"context"
	"fmt"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"cjdelfin.dev/internal/config"
	"cjdelfin.dev/internal/export"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: generate <output-dir>")
		os.Exit(1)
	}

	outputDir := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendering %d projects to %s...\n", len(cfg.Portfolio.Projects), outputDir)

	files, err := export.Site(context.Background(), outputDir, cfg.Portfolio, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "  ERROR: %v\n", err)
		os.Exit(1)
	}

	for _, f := range files {
		fmt.Printf("  Created %s (%d bytes)\n", f.Path, f.Bytes)
	}

	fmt.Println("Done!")
}
