package silhouette

import "sort"

// Silhouette wraps a prepared raster together with its interior and outline
// pixel sequences. Both sequences are in row-major order: row ascending, col
// ascending within a row. The detectors depend on that ordering.
type Silhouette struct {
	Raster   *Raster
	Interior []Pixel
	Outline  []Pixel
}

// Build validates a raster and indexes its pixels. The raster is mutated: the
// flood that produces the interior class runs here. A nil Silhouette is
// returned together with ErrSeedOnOutline or ErrOpenContour when the raster
// is not fit for fitting.
func Build(r *Raster) (*Silhouette, error) {
	if err := r.prepare(); err != nil {
		return nil, err
	}

	s := &Silhouette{Raster: r}
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			switch r.At(row, col) {
			case Interior:
				s.Interior = append(s.Interior, Pixel{row, col})
			case Outline:
				s.Outline = append(s.Outline, Pixel{row, col})
			}
		}
	}
	return s, nil
}

// SeekRow returns the index of the first pixel at or after from whose row is
// at least row. Returns len(pixels) when no such pixel exists. pixels must be
// in row-major order.
func SeekRow(pixels []Pixel, from, row int) int {
	if from < 0 {
		from = 0
	}
	if from >= len(pixels) {
		return len(pixels)
	}
	return from + sort.Search(len(pixels)-from, func(i int) bool {
		return pixels[from+i].Row >= row
	})
}
