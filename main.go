package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
)

func createScene(sceneType string) (*scene.Scene, error) {
	switch sceneType {
	case "reference":
		return scene.NewReferenceScene(), nil
	case "showcase":
		return scene.NewShowcaseScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "reference", "Scene type: 'reference' or 'showcase'")
	width := flag.Int("width", 1200, "Image width in pixels")
	height := flag.Int("height", 800, "Image height in pixels")
	power := flag.Float64("power", 100, "Phong specular exponent")
	intensityScale := flag.Float64("intensity-scale", 20000, "Global light intensity scale (built-in scenes use nominal intensities with physical inverse-square falloff)")
	ambient := flag.Bool("ambient", false, "Add a flat ambient term once per shaded point")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = CPU count)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Raycaster")
		fmt.Println("Usage: raycaster [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  reference - Ground plane, purple sphere, one point light and one spotlight")
		fmt.Println("  showcase  - Reference scene plus a back wall, two more spheres, and extra lights")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.png")
		return
	}

	logger := renderer.NewDefaultLogger()

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}

	// Create output directory for this scene type
	outputDir := filepath.Join("output", *sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	config := renderer.DefaultRenderConfig()
	config.Width = *width
	config.Height = *height
	config.NumWorkers = *workers
	config.Shader.Power = *power
	config.Shader.IntensityScale = *intensityScale
	config.Shader.Ambient = *ambient

	raytracer := renderer.NewRaytracer(selectedScene, config, logger)

	logger.Printf("Using '%s' scene...\n", *sceneType)
	startTime := time.Now()
	img, stats := raytracer.Render()
	renderTime := time.Since(startTime)

	logger.Printf("Render completed in %v\n", renderTime)
	logger.Printf("Shaded %d of %d pixels (%d background, %d invalid rays)\n",
		stats.ShadedPixels, stats.TotalPixels, stats.BackgroundPixels, stats.InvalidRays)

	// Create timestamped filename
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	logger.Printf("Render saved as %s\n", filename)
}
