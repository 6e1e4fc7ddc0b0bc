package renderer

import (
	"image"
	"runtime"
	"sync"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	TaskID int             // For deterministic result accounting
	Bounds image.Rectangle // Pixel bounds of the tile
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID int
	Stats  RenderStats
}

// WorkerPool manages parallel tile rendering. Workers share the scene
// (read-only during a pass) and write into disjoint regions of the
// output image, so no locking is needed on the pixel grid.
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	raytracer   *Raytracer
	img         *image.RGBA
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool rendering into img with the
// specified number of workers
func NewWorkerPool(raytracer *Raytracer, img *image.RGBA, maxTiles, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		taskQueue:   make(chan TileTask, maxTiles),   // Buffer for all tiles
		resultQueue: make(chan TileResult, maxTiles), // Buffer for all results
		raytracer:   raytracer,
		img:         img,
		numWorkers:  numWorkers,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		// Each tile has non-overlapping bounds, so writing into the
		// shared image is thread-safe
		stats := wp.raytracer.RenderBounds(task.Bounds, wp.img)

		wp.resultQueue <- TileResult{
			TaskID: task.TaskID,
			Stats:  stats,
		}
	}
}
