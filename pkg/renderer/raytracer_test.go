package renderer

import (
	"bytes"
	"image"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/scene"
)

// testLogger discards log output during tests
type testLogger struct{}

func (testLogger) Printf(format string, args ...interface{}) {}

func testRenderConfig(width, height int) RenderConfig {
	config := DefaultRenderConfig()
	config.Width = width
	config.Height = height
	// The reference scene uses nominal light intensities; scale them up
	// to survive physical inverse-square falloff at scene distances
	config.Shader.IntensityScale = 20000
	return config
}

func TestNewTileGrid(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		tileSize      int
		expectedTiles int
	}{
		{"exact fit", 128, 64, 64, 2},
		{"partial tiles", 100, 100, 64, 4},
		{"single tile", 32, 32, 64, 1},
		{"tall image", 10, 200, 64, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := NewTileGrid(tt.width, tt.height, tt.tileSize)
			if len(tiles) != tt.expectedTiles {
				t.Errorf("Expected %d tiles, got %d", tt.expectedTiles, len(tiles))
			}

			// Tiles must cover every pixel exactly once
			covered := 0
			for _, bounds := range tiles {
				covered += bounds.Dx() * bounds.Dy()
				if !bounds.In(image.Rect(0, 0, tt.width, tt.height)) {
					t.Errorf("Tile %v exceeds image bounds", bounds)
				}
			}
			if covered != tt.width*tt.height {
				t.Errorf("Expected %d covered pixels, got %d", tt.width*tt.height, covered)
			}
		})
	}
}

func TestRaytracer_Render_ReferenceScene(t *testing.T) {
	const width, height = 120, 80
	s := scene.NewReferenceScene()
	rt := NewRaytracer(s, testRenderConfig(width, height), testLogger{})

	img, stats := rt.Render()

	if stats.TotalPixels != width*height {
		t.Errorf("Expected %d total pixels, got %d", width*height, stats.TotalPixels)
	}
	if stats.InvalidRays != 0 {
		t.Errorf("Expected no invalid rays, got %d", stats.InvalidRays)
	}
	if stats.ShadedPixels == 0 || stats.BackgroundPixels == 0 {
		t.Errorf("Expected both shaded and background pixels, got %+v", stats)
	}

	// The purple sphere sits just above the image center; its
	// silhouette must be a contiguous run of lit pixels
	sphereRow := 25
	run := 0
	maxRun := 0
	for i := 0; i < width; i++ {
		c := img.RGBAAt(i, sphereRow)
		if c.R > 0 || c.G > 0 || c.B > 0 {
			run++
			maxRun = max(maxRun, run)
		} else {
			run = 0
		}
	}
	if maxRun < 5 {
		t.Errorf("Expected a contiguous sphere silhouette on row %d, longest lit run was %d", sphereRow, maxRun)
	}

	center := img.RGBAAt(width/2, sphereRow)
	if center.R == 0 && center.B == 0 {
		t.Errorf("Expected the purple sphere at the image center, got %+v", center)
	}

	// Rays through the top corners point above the scene: background
	for _, x := range []int{0, width - 1} {
		c := img.RGBAAt(x, 0)
		if c.R != 0 || c.G != 0 || c.B != 0 {
			t.Errorf("Expected background at top corner (%d, 0), got %+v", x, c)
		}
		if c.A != 255 {
			t.Errorf("Expected opaque pixel at (%d, 0), got alpha %d", x, c.A)
		}
	}
}

func TestRaytracer_Render_ShadedColorsAreFinite(t *testing.T) {
	s := scene.NewReferenceScene()
	rt := NewRaytracer(s, testRenderConfig(64, 64), testLogger{})

	// Walk the pixel grid through the shading path directly and verify
	// no NaN or infinite color values are produced
	for j := 0; j < 64; j += 4 {
		for i := 0; i < 64; i += 4 {
			u := (float64(i) + 0.5) / 64
			v := 1 - (float64(j)+0.5)/64

			ray, err := s.Camera.GetRay(u, v)
			if err != nil {
				t.Fatalf("Unexpected camera error at (%d, %d): %v", i, j, err)
			}
			hit, isHit := rt.intersector.NearestHit(ray)
			if !isHit {
				continue
			}
			if shaded := rt.shader.Shade(hit); !shaded.IsFinite() {
				t.Fatalf("Non-finite color %v at pixel (%d, %d)", shaded, i, j)
			}
		}
	}
}

func TestRaytracer_Render_Idempotent(t *testing.T) {
	// Identical inputs must produce byte-identical output grids
	s := scene.NewReferenceScene()

	first, _ := NewRaytracer(s, testRenderConfig(60, 40), testLogger{}).Render()
	second, _ := NewRaytracer(s, testRenderConfig(60, 40), testLogger{}).Render()

	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("Expected byte-identical images from identical inputs")
	}
}

func TestRaytracer_Render_DeterministicAcrossWorkerCounts(t *testing.T) {
	// Pixel results are independent, so worker count must not change
	// the output
	s := scene.NewShowcaseScene()

	serial := testRenderConfig(60, 40)
	serial.NumWorkers = 1
	serial.TileSize = 8

	parallel := testRenderConfig(60, 40)
	parallel.NumWorkers = 4
	parallel.TileSize = 16

	serialImg, serialStats := NewRaytracer(s, serial, testLogger{}).Render()
	parallelImg, parallelStats := NewRaytracer(s, parallel, testLogger{}).Render()

	if !bytes.Equal(serialImg.Pix, parallelImg.Pix) {
		t.Error("Expected identical images regardless of worker count")
	}
	if serialStats.ShadedPixels != parallelStats.ShadedPixels {
		t.Errorf("Expected identical shaded pixel counts, got %d and %d",
			serialStats.ShadedPixels, parallelStats.ShadedPixels)
	}
}

func TestRaytracer_Render_EmptyScene(t *testing.T) {
	// Every pixel resolves to background; not an error
	s := scene.New(scene.NewReferenceScene().Camera)
	rt := NewRaytracer(s, testRenderConfig(16, 16), testLogger{})

	img, stats := rt.Render()

	if stats.BackgroundPixels != 16*16 {
		t.Errorf("Expected all pixels to be background, got %+v", stats)
	}
	c := img.RGBAAt(8, 8)
	if c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("Expected black background, got %+v", c)
	}
}

func TestRaytracer_Render_CustomBackground(t *testing.T) {
	s := scene.New(scene.NewReferenceScene().Camera)
	config := testRenderConfig(8, 8)
	config.Background = core.NewVec3(0.25, 0.5, 1)

	img, _ := NewRaytracer(s, config, testLogger{}).Render()

	c := img.RGBAAt(4, 4)
	if c.R != 63 || c.G != 127 || c.B != 255 {
		t.Errorf("Expected background color (63, 127, 255), got %+v", c)
	}
}
