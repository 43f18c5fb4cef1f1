package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"whitted-renderer/internal/batch"
	"whitted-renderer/internal/config"
	"whitted-renderer/internal/raster"
	"whitted-renderer/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	scenes := flag.String("scenes", "", "Comma-separated built-in scene names or scene JSON files (default: default)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	format := flag.String("format", "", "Image format: ppm, png, webp or tga (default: png)")
	width := flag.Int("width", 0, "Image width (default: scene camera)")
	height := flag.Int("height", 0, "Image height (default: scene camera)")
	supersample := flag.Int("supersample", 0, "Render at N× size and downsample (default: 1)")
	depth := flag.Int("depth", 0, "Reflection/refraction bounce limit (default: 5)")
	workers := flag.Int("workers", 0, "Row workers per scene (default: NumCPU)")
	jobs := flag.Int("jobs", 1, "Scenes rendered concurrently")
	list := flag.Bool("list", false, "List built-in scenes and exit")

	flag.Parse()

	if *list {
		for _, name := range scene.Names() {
			fmt.Println(name)
		}
		return
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Positional arguments are scenes too.
	var sceneFlags []string
	if *scenes != "" {
		sceneFlags = strings.Split(*scenes, ",")
	}
	sceneFlags = append(sceneFlags, flag.Args()...)

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Scenes:      sceneFlags,
		OutputDir:   *outputDir,
		Format:      *format,
		Width:       *width,
		Height:      *height,
		Supersample: *supersample,
		MaxDepth:    *depth,
		Workers:     *workers,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	imgFormat, _ := raster.ParseFormat(cfg.Format)

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	// Print summary
	fmt.Printf("Whitted ray tracer → %s\n", strings.ToUpper(cfg.Format))
	fmt.Printf("Scenes: %d, Workers: %d, Depth: %d, Supersample: %d\n",
		len(cfg.Scenes), cfg.Workers, cfg.MaxDepth, cfg.Supersample)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()

	// Run batch
	batchCfg := batch.Config{
		OutputDir:   cfg.OutputDir,
		Format:      imgFormat,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		MaxDepth:    cfg.MaxDepth,
		Workers:     cfg.Workers,
		Jobs:        *jobs,
	}

	results := batch.Run(ctx, batchCfg, cfg.Scenes)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := batch.Summary(results)
	for _, r := range results {
		if r.Success {
			fmt.Printf("  %s → %s (%dx%d, %.1fs)\n", r.Name, r.Image, r.Width, r.Height, r.Duration.Seconds())
		}
	}
	fmt.Printf("Rendered: %d/%d\n", success, len(results))

	if failed > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		for _, r := range results {
			if !r.Success {
				fmt.Printf("  %s: %s\n", r.Name, r.Error)
			}
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
