package silhouette

import (
	"errors"
	"math"
	"testing"
)

func TestDist(t *testing.T) {
	tests := []struct {
		name string
		a, b Pixel
		want float64
	}{
		{"same pixel", Pixel{10, 10}, Pixel{10, 10}, 0},
		{"horizontal", Pixel{5, 0}, Pixel{5, 10}, 10},
		{"vertical", Pixel{0, 7}, Pixel{12, 7}, 12},
		{"diagonal 3-4-5", Pixel{0, 0}, Pixel{3, 4}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dist(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Dist(%v, %v) = %f, want %f", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestInBounds(t *testing.T) {
	tests := []struct {
		name string
		p    Pixel
		want bool
	}{
		{"origin", Pixel{0, 0}, true},
		{"last pixel", Pixel{Rows - 1, Cols - 1}, true},
		{"row at bound", Pixel{Rows, 0}, false},
		{"col at bound", Pixel{0, Cols}, false},
		{"negative row", Pixel{-1, 5}, false},
		{"negative col", Pixel{5, -1}, false},
		{"missing sentinel", Missing, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InBounds(tt.p, Rows, Cols); got != tt.want {
				t.Errorf("InBounds(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRaster_AtSet(t *testing.T) {
	r := NewRaster()

	if got := r.At(10, 10); got != Exterior {
		t.Errorf("fresh raster At(10,10) = %d, want exterior", got)
	}

	r.Set(10, 10, Outline)
	if got := r.At(10, 10); got != Outline {
		t.Errorf("At(10,10) = %d, want outline", got)
	}

	// Out-of-bounds access is inert.
	r.Set(-1, 0, Interior)
	r.Set(Rows, 0, Interior)
	r.Set(0, Cols, Interior)
	if got := r.At(-1, 0); got != Exterior {
		t.Errorf("out-of-bounds At = %d, want exterior", got)
	}
}

// ring builds a closed rectangle outline covering [r0,r1] x [c0,c1].
func ring(r0, c0, r1, c1 int) *Raster {
	r := NewRaster()
	for col := c0; col <= c1; col++ {
		r.Set(r0, col, Outline)
		r.Set(r1, col, Outline)
	}
	for row := r0; row <= r1; row++ {
		r.Set(row, c0, Outline)
		r.Set(row, c1, Outline)
	}
	return r
}

func TestBuild_FloodsClosedContour(t *testing.T) {
	r := ring(30, 10, 90, 50)

	sil, err := Build(r)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	wantInterior := (90 - 30 - 1) * (50 - 10 - 1)
	if len(sil.Interior) != wantInterior {
		t.Errorf("interior pixels = %d, want %d", len(sil.Interior), wantInterior)
	}

	if r.At(Seed.Row, Seed.Col) != Interior {
		t.Error("seed pixel not interior after flood")
	}
	if r.At(0, 0) != Exterior {
		t.Error("flood escaped the contour")
	}
}

func TestBuild_RowMajorOrder(t *testing.T) {
	sil, err := Build(ring(30, 10, 90, 50))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	for _, pixels := range [][]Pixel{sil.Interior, sil.Outline} {
		for i := 1; i < len(pixels); i++ {
			prev, cur := pixels[i-1], pixels[i]
			if cur.Row < prev.Row || (cur.Row == prev.Row && cur.Col <= prev.Col) {
				t.Fatalf("pixels not in row-major order: %v before %v", prev, cur)
			}
		}
	}
}

func TestBuild_EmptyRasterRejected(t *testing.T) {
	// All exterior: the flood bleeds straight out to the corner.
	if _, err := Build(NewRaster()); !errors.Is(err, ErrOpenContour) {
		t.Errorf("Build(empty) error = %v, want ErrOpenContour", err)
	}
}

func TestBuild_OpenContourRejected(t *testing.T) {
	r := ring(30, 10, 90, 50)
	r.Set(60, 10, Exterior) // hole in the left wall

	if _, err := Build(r); !errors.Is(err, ErrOpenContour) {
		t.Errorf("Build(open contour) error = %v, want ErrOpenContour", err)
	}
}

func TestBuild_SeedOnOutlineRejected(t *testing.T) {
	r := ring(Seed.Row, Seed.Col, 90, 50)

	if _, err := Build(r); !errors.Is(err, ErrSeedOnOutline) {
		t.Errorf("Build(seed on outline) error = %v, want ErrSeedOnOutline", err)
	}
}

func TestBuild_FullyInteriorAccepted(t *testing.T) {
	sil, err := Build(FromInterior())
	if err != nil {
		t.Fatalf("Build(fully interior) error = %v", err)
	}
	if len(sil.Interior) != Rows*Cols {
		t.Errorf("interior pixels = %d, want %d", len(sil.Interior), Rows*Cols)
	}
	if len(sil.Outline) != 0 {
		t.Errorf("outline pixels = %d, want 0", len(sil.Outline))
	}
}

func TestSeekRow(t *testing.T) {
	pixels := []Pixel{
		{2, 0}, {2, 1},
		{5, 0}, {5, 1}, {5, 2},
		{9, 3},
	}

	tests := []struct {
		name string
		from int
		row  int
		want int
	}{
		{"row before all", 0, 0, 0},
		{"exact row", 0, 5, 2},
		{"between rows", 0, 3, 2},
		{"past all rows", 0, 10, 6},
		{"from past target stays put", 3, 2, 3},
		{"from out of range", 99, 2, 6},
		{"negative from", -4, 9, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SeekRow(pixels, tt.from, tt.row); got != tt.want {
				t.Errorf("SeekRow(from=%d, row=%d) = %d, want %d", tt.from, tt.row, got, tt.want)
			}
		})
	}
}
