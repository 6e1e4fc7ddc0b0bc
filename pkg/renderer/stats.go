package renderer

// RenderStats contains statistics about a render pass
type RenderStats struct {
	TotalPixels      int // Total number of pixels rendered
	ShadedPixels     int // Pixels whose primary ray hit an object
	BackgroundPixels int // Pixels whose primary ray hit nothing
	InvalidRays      int // Primary rays aborted by a caller contract violation
}

// Merge accumulates another stats record into this one
func (rs *RenderStats) Merge(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	rs.ShadedPixels += other.ShadedPixels
	rs.BackgroundPixels += other.BackgroundPixels
	rs.InvalidRays += other.InvalidRays
}
