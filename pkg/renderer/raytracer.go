package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// RenderConfig contains rendering configuration. All knobs are passed
// in explicitly; the renderer keeps no hidden global state.
type RenderConfig struct {
	Width      int          // Image width in pixels
	Height     int          // Image height in pixels
	Background core.Vec3    // Color for rays that hit nothing
	TileSize   int          // Size of each worker tile
	NumWorkers int          // Number of parallel workers (0 = use CPU count)
	Shader     ShaderConfig // Shading knobs
}

// DefaultRenderConfig returns sensible default values at the reference
// resolution
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:      1200,
		Height:     800,
		Background: core.Vec3{}, // black
		TileSize:   64,
		NumWorkers: 0,
		Shader:     DefaultShaderConfig(),
	}
}

// Raytracer renders a scene into an image grid. It is a pure function
// of its inputs: rendering the same scene twice produces byte-identical
// images.
type Raytracer struct {
	scene       *scene.Scene
	config      RenderConfig
	intersector *Intersector
	shader      *Shader
	logger      core.Logger
}

// NewRaytracer creates a raytracer for the given scene and configuration
func NewRaytracer(s *scene.Scene, config RenderConfig, logger core.Logger) *Raytracer {
	if config.TileSize <= 0 {
		config.TileSize = 64
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	intersector := NewIntersector(s.Objects)
	shader := NewShader(intersector, s.Lights, s.SpotLights, s.Camera.Position(), config.Shader)

	return &Raytracer{
		scene:       s,
		config:      config,
		intersector: intersector,
		shader:      shader,
		logger:      logger,
	}
}

// Shader returns the shading engine, e.g. to substitute the spotlight
// cone test before rendering
func (rt *Raytracer) Shader() *Shader {
	return rt.shader
}

// Render renders the full image using a pool of tile workers and
// returns the image along with aggregate statistics
func (rt *Raytracer) Render() (*image.RGBA, RenderStats) {
	img := image.NewRGBA(image.Rect(0, 0, rt.config.Width, rt.config.Height))
	tiles := NewTileGrid(rt.config.Width, rt.config.Height, rt.config.TileSize)

	pool := NewWorkerPool(rt, img, len(tiles), rt.config.NumWorkers)
	rt.logger.Printf("Rendering %dx%d using %d workers across %d tiles...\n",
		rt.config.Width, rt.config.Height, pool.GetNumWorkers(), len(tiles))
	pool.Start()

	for id, bounds := range tiles {
		pool.SubmitTask(TileTask{TaskID: id, Bounds: bounds})
	}

	var stats RenderStats
	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.Merge(result.Stats)
	}
	pool.Stop()

	return img, stats
}

// RenderBounds renders the pixels within bounds directly into img.
// Tiles have disjoint bounds, so concurrent calls are safe as long as
// each call owns its rectangle.
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, img *image.RGBA) RenderStats {
	var stats RenderStats
	width := float64(rt.config.Width)
	height := float64(rt.config.Height)
	background := rt.vec3ToColor(rt.config.Background)

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			stats.TotalPixels++

			// Sample through the pixel center; flip v so row 0 is the image top
			u := (float64(i) + 0.5) / width
			v := 1 - (float64(j)+0.5)/height

			ray, err := rt.scene.Camera.GetRay(u, v)
			if err != nil {
				// Caller contract violation: abort this ray only
				stats.InvalidRays++
				img.SetRGBA(i, j, background)
				continue
			}

			hit, isHit := rt.intersector.NearestHit(ray)
			if !isHit {
				stats.BackgroundPixels++
				img.SetRGBA(i, j, background)
				continue
			}

			stats.ShadedPixels++
			img.SetRGBA(i, j, rt.vec3ToColor(rt.shader.Shade(hit)))
		}
	}

	return stats
}

// vec3ToColor converts a Vec3 color to RGBA with clamping. Colors stay
// in raw linear space; no gamma correction is applied.
func (rt *Raytracer) vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}

// NewTileGrid splits a width x height image into tiles covering every
// pixel exactly once
func NewTileGrid(width, height, tileSize int) []image.Rectangle {
	var tiles []image.Rectangle

	// Ceiling division
	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, image.Rect(x0, y0, x1, y1))
		}
	}

	return tiles
}
