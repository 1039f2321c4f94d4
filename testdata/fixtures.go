// Package testdata provides synthetic silhouette fixtures for tests.
package testdata

import "github.com/odeycodey/peoplefinder/internal/silhouette"

// Mask is a filled-shape description in silhouette space.
type Mask [silhouette.Rows][silhouette.Cols]bool

// FillRect marks the inclusive cell range [r0,r1] x [c0,c1].
func (m *Mask) FillRect(r0, c0, r1, c1 int) {
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			if r >= 0 && r < silhouette.Rows && c >= 0 && c < silhouette.Cols {
				m[r][c] = true
			}
		}
	}
}

// Raster converts the mask into an outline-only raster: every filled cell
// with a 4-neighbour outside the mask (or outside the raster) becomes an
// outline pixel. The enclosed cells stay exterior; the fitter's flood turns
// them interior.
func (m *Mask) Raster() *silhouette.Raster {
	r := silhouette.NewRaster()
	for row := 0; row < silhouette.Rows; row++ {
		for col := 0; col < silhouette.Cols; col++ {
			if !m[row][col] {
				continue
			}
			if m.edge(row, col) {
				r.Set(row, col, silhouette.Outline)
			}
		}
	}
	return r
}

func (m *Mask) edge(row, col int) bool {
	for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		nr, nc := row+d[0], col+d[1]
		if nr < 0 || nr >= silhouette.Rows || nc < 0 || nc >= silhouette.Cols {
			return true
		}
		if !m[nr][nc] {
			return true
		}
	}
	return false
}

// PersonMask returns a standing figure: head, neck, torso with both arms,
// hips and two legs, centred on the seed column.
func PersonMask() *Mask {
	m := &Mask{}
	m.FillRect(8, 26, 20, 38)   // head
	m.FillRect(21, 29, 25, 35)  // neck
	m.FillRect(26, 18, 30, 46)  // shoulders, full span
	m.FillRect(26, 24, 63, 40)  // torso
	m.FillRect(31, 18, 60, 20)  // left arm
	m.FillRect(31, 44, 60, 46)  // right arm
	m.FillRect(64, 22, 79, 42)  // hips
	m.FillRect(80, 24, 122, 30) // left leg
	m.FillRect(80, 34, 122, 40) // right leg
	return m
}

// PersonRaster returns the outline raster of PersonMask. The skeleton fitter
// completes on it without raising the failure flag.
func PersonRaster() *silhouette.Raster {
	return PersonMask().Raster()
}

// BoxRaster returns the outline of a plain filled rectangle covering
// [r0,r1] x [c0,c1].
func BoxRaster(r0, c0, r1, c1 int) *silhouette.Raster {
	m := &Mask{}
	m.FillRect(r0, c0, r1, c1)
	return m.Raster()
}

// OpenContourRaster returns a rectangle outline with a hole punched in its
// left wall, so a flood from the seed bleeds out to the raster corner.
func OpenContourRaster() *silhouette.Raster {
	r := BoxRaster(30, 10, 90, 50)
	r.Set(60, 10, silhouette.Exterior)
	return r
}

// SeedOnOutlineRaster returns a rectangle outline whose wall crosses the
// flood seed pixel.
func SeedOnOutlineRaster() *silhouette.Raster {
	return BoxRaster(64, 32, 90, 50)
}
