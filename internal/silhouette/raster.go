package silhouette

import "errors"

// Canonical silhouette dimensions. Every raster handed to the fitter has been
// normalised to this size by the loader or the blob extractor.
const (
	Rows = 128
	Cols = 64
)

// Seed is the pixel assumed to fall inside any well-formed silhouette. The
// flood fill that produces the interior starts here.
var Seed = Pixel{Row: 64, Col: 32}

// Pixel classes.
const (
	Exterior byte = iota
	Outline
	Interior
)

// Validation errors.
var (
	ErrSeedOnOutline = errors.New("silhouette: seed pixel lies on the outline")
	ErrOpenContour   = errors.New("silhouette: flood reached the corner, contour is open")
)

// Raster is a fixed-size three-class silhouette image. The zero value is all
// exterior.
type Raster struct {
	cells [Rows * Cols]byte
}

// NewRaster returns an all-exterior raster.
func NewRaster() *Raster {
	return &Raster{}
}

// FromInterior returns a raster whose every pixel is interior.
func FromInterior() *Raster {
	r := &Raster{}
	for i := range r.cells {
		r.cells[i] = Interior
	}
	return r
}

// At returns the class of the pixel at (row, col). Out-of-bounds positions
// read as exterior.
func (r *Raster) At(row, col int) byte {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return Exterior
	}
	return r.cells[row*Cols+col]
}

// Set assigns a class to the pixel at (row, col). Out-of-bounds positions are
// ignored.
func (r *Raster) Set(row, col int, class byte) {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return
	}
	r.cells[row*Cols+col] = class
}

// Clone returns a deep copy of the raster.
func (r *Raster) Clone() *Raster {
	c := *r
	return &c
}

// prepare makes the raster fit for indexing. If the seed pixel is not already
// interior it runs a 4-connected flood from the seed that recolours reachable
// exterior into interior. The raster is rejected when the seed sits on the
// outline, or when a flood that ran bled out to the (0,0) corner, which means
// the contour is not closed.
func (r *Raster) prepare() error {
	flooded := false
	if r.At(Seed.Row, Seed.Col) != Interior {
		r.flood(Seed)
		flooded = true
	}
	if r.At(Seed.Row, Seed.Col) == Outline {
		return ErrSeedOnOutline
	}
	if flooded && r.At(0, 0) == Interior {
		return ErrOpenContour
	}
	return nil
}

// flood recolours every exterior pixel 4-connected to from into interior,
// stopping at outline pixels.
func (r *Raster) flood(from Pixel) {
	stack := make([]Pixel, 0, 256)
	stack = append(stack, from)
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !InBounds(p, Rows, Cols) {
			continue
		}
		if r.At(p.Row, p.Col) != Exterior {
			continue
		}
		r.Set(p.Row, p.Col, Interior)
		stack = append(stack,
			Pixel{p.Row + 1, p.Col},
			Pixel{p.Row - 1, p.Col},
			Pixel{p.Row, p.Col + 1},
			Pixel{p.Row, p.Col - 1},
		)
	}
}
