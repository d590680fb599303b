package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-sdf-raymarcher/pkg/loaders"
	"github.com/df07/go-sdf-raymarcher/pkg/renderer"
	"github.com/df07/go-sdf-raymarcher/pkg/scene"
)

// workersEnv overrides the default worker count when -workers is not given
const workersEnv = "RAYMARCH_WORKERS"

func main() {
	defaults := renderer.DefaultConfig()

	// Parse command line flags
	sceneRef := flag.String("scene", "sphere", "Scene: built-in name, 'file:<name>' or path to a .json scene")
	width := flag.Int("width", defaults.Width, "Image width in pixels")
	height := flag.Int("height", defaults.Height, "Image height in pixels")
	tileSize := flag.Int("tile", defaults.TileSize, "Tile edge length in pixels")
	workers := flag.Int("workers", defaultWorkers(), "Number of parallel workers (0 = CPU count, env "+workersEnv+")")
	gamma := flag.Float64("gamma", float64(defaults.Gamma), "Output gamma (1 = linear, 2.2 = sRGB-ish)")
	alpha := flag.Bool("alpha", false, "Write background pixels as transparent")
	out := flag.String("out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	scenesDir := flag.String("scenes", "scenes", "Directory holding .json scene files")
	list := flag.Bool("list", false, "List available scenes and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		printHelp()
		return
	}

	if *list {
		if err := printScenes(*scenesDir); err != nil {
			log.Fatalf("Error listing scenes: %v", err)
		}
		return
	}

	fmt.Println("Starting SDF Raymarcher...")

	s, err := loaders.ResolveScene(*sceneRef, *scenesDir)
	if err != nil {
		log.Fatalf("Error loading scene %q: %v", *sceneRef, err)
	}
	fmt.Printf("Using %s scene...\n", s.Name)

	config := defaults
	config.Width = *width
	config.Height = *height
	config.TileSize = *tileSize
	config.NumWorkers = *workers
	config.Gamma = float32(*gamma)
	config.Alpha = *alpha

	r, err := renderer.NewRenderer(s, config, renderer.NewDefaultLogger())
	if err != nil {
		log.Fatalf("Error configuring render: %v", err)
	}

	// Ctrl-C cancels outstanding tiles
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	img, stats, err := r.Render(ctx, progressPrinter())
	if err != nil {
		log.Fatalf("Render failed: %v", err)
	}

	fmt.Printf("Pixels: %d (%d hits, %d misses), steps per pixel: %.1f avg, %d max\n",
		stats.TotalPixels, stats.Hits, stats.Misses, stats.AverageSteps, stats.MaxSteps)

	filename := *out
	if filename == "" {
		filename = outputFilename(*sceneRef, time.Now())
	}
	if err := loaders.SavePNG(filename, img); err != nil {
		log.Fatalf("Error saving PNG: %v", err)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

func printHelp() {
	fmt.Println("SDF Raymarcher")
	fmt.Println("Usage: raymarcher [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Built-in scenes:")
	for _, info := range scene.ListBuiltinScenes() {
		fmt.Printf("  %-8s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Scene files are loaded with -scene file:<name> (from -scenes) or -scene path/to/scene.json")
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
}

func printScenes(dir string) error {
	all, err := scene.ListAllScenes(dir)
	if err != nil {
		return err
	}
	for _, group := range all.Groups {
		fmt.Printf("%s:\n", group.Name)
		for _, info := range group.Scenes {
			fmt.Printf("  %-24s %s\n", info.ID, info.Description)
		}
	}
	return nil
}

// progressPrinter reports tile completion on one line
func progressPrinter() func(renderer.TileCompletionResult) {
	return func(tile renderer.TileCompletionResult) {
		fmt.Printf("\rTiles: %d/%d", tile.TileNumber, tile.TotalTiles)
		if tile.TileNumber == tile.TotalTiles {
			fmt.Println()
		}
	}
}

// defaultWorkers reads the worker override from the environment, falling back to auto-detect
func defaultWorkers() int {
	value := os.Getenv(workersEnv)
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		log.Printf("Ignoring %s=%q: expected a non-negative integer", workersEnv, value)
		return 0
	}
	return n
}

// outputFilename builds output/<scene>/render_<timestamp>.png for a scene reference
func outputFilename(sceneRef string, now time.Time) string {
	name := strings.TrimPrefix(sceneRef, "file:")
	name = strings.TrimSuffix(filepath.Base(name), ".json")
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "scene"
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", name, fmt.Sprintf("render_%s.png", timestamp))
}
