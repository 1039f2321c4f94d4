package overlay

import (
	"image"
	"testing"

	"gocv.io/x/gocv"

	"github.com/odeycodey/peoplefinder/internal/silhouette"
	"github.com/odeycodey/peoplefinder/internal/skeleton"
	"github.com/odeycodey/peoplefinder/testdata"
)

func TestDrawSkeleton(t *testing.T) {
	res := skeleton.NewFitter().Fit(testdata.PersonRaster())
	if res.Failed {
		t.Fatal("fixture fit failed")
	}

	img := gocv.NewMatWithSize(silhouette.Rows, silhouette.Cols, gocv.MatTypeCV8UC3)
	defer img.Close()

	DrawSkeleton(&img, res.Skeleton)

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)
	if gocv.CountNonZero(gray) == 0 {
		t.Error("DrawSkeleton left the image untouched")
	}
}

func TestDrawSkeleton_SkipsMissingLandmarks(t *testing.T) {
	img := gocv.NewMatWithSize(silhouette.Rows, silhouette.Cols, gocv.MatTypeCV8UC3)
	defer img.Close()

	DrawSkeleton(&img, skeleton.NewSkeleton())

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)
	if gocv.CountNonZero(gray) != 0 {
		t.Error("DrawSkeleton drew landmarks that are missing")
	}
}

func TestToImage_TransposesAxes(t *testing.T) {
	p := silhouette.Pixel{Row: 10, Col: 20}
	if got, want := toImage(p), image.Pt(20, 10); got != want {
		t.Errorf("toImage(%v) = %v, want %v", p, got, want)
	}
}

func TestDrawable(t *testing.T) {
	tests := []struct {
		name string
		p    silhouette.Pixel
		want bool
	}{
		{"inside", silhouette.Pixel{Row: 10, Col: 20}, true},
		{"missing", silhouette.Missing, false},
		{"row out of bounds", silhouette.Pixel{Row: silhouette.Rows, Col: 0}, false},
		{"negative col", silhouette.Pixel{Row: 0, Col: -1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := drawable(tt.p); got != tt.want {
				t.Errorf("drawable(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}
