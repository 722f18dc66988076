package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sphere-stl/internal/batch"
	"sphere-stl/internal/config"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	levelList := flag.String("levels", "", "Levels to export, e.g. 1-5 or 2,4 (default: config level)")
	format := flag.String("format", "", "STL variant: ascii or binary (default: binary)")
	outputDir := flag.String("output", "", "Output directory (default: out)")
	previewExt := flag.String("preview", "", "Preview image format: webp, tga or none")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	levels, err := config.ParseLevels(*levelList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Levels:    levels,
		Format:    *format,
		OutputDir: *outputDir,
		Preview:   *previewExt,
		Workers:   *workers,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Unit sphere → STL (%s)\n", cfg.Format)
	fmt.Printf("Levels: %v, Workers: %d\n", cfg.Levels, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir: cfg.OutputDir,
		Format:    cfg.Format,
		Preview:   cfg.Preview,
		Camera:    cfg.Camera(),
		Workers:   cfg.Workers,
	}, cfg.Levels)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	failed := 0
	for _, r := range results {
		if r.Success {
			fmt.Printf("  level %d: %d triangles → %s\n", r.Level, r.Triangles, r.File)
			continue
		}
		failed++
		fmt.Printf("  level %d: FAILED: %s\n", r.Level, r.Error)
	}
	fmt.Printf("Exported: %d/%d\n", len(results)-failed, len(results))

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if err := batch.WriteManifest(manifestPath, cfg.Format, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
