// Package silhouette provides the binary silhouette raster and its pixel
// index used by the skeleton fitter.
package silhouette

import "math"

// Pixel is a position in silhouette space. Row grows downward (toward the
// feet), Col grows toward the subject's right.
type Pixel struct {
	Row int
	Col int
}

// Missing marks a landmark that could not be located.
var Missing = Pixel{Row: 1000, Col: 1000}

// Dist returns the Euclidean distance between two pixels.
func Dist(a, b Pixel) float64 {
	dr := float64(a.Row - b.Row)
	dc := float64(a.Col - b.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

// InBounds reports whether p lies within [0,rows) x [0,cols).
func InBounds(p Pixel, rows, cols int) bool {
	return p.Row >= 0 && p.Row < rows && p.Col >= 0 && p.Col < cols
}
