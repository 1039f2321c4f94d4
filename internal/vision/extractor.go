// Package vision extracts silhouette rasters from images and video frames
// using GoCV (OpenCV). It is the boundary between image space, where points
// are (x,y), and silhouette space, where pixels are (row,col).
package vision

import (
	"errors"
	"image"

	"github.com/google/uuid"
	"gocv.io/x/gocv"

	"github.com/odeycodey/peoplefinder/internal/silhouette"
)

// ErrEmptyFrame is returned when a frame holds no data.
var ErrEmptyFrame = errors.New("vision: empty frame")

// Shape is one blob cut out of a frame, normalised to the canonical
// silhouette size. The raster carries outline pixels only; the fitter's flood
// produces the interior.
type Shape struct {
	ID     uuid.UUID
	Raster *silhouette.Raster
	Bounds image.Rectangle // blob bounding box in the source frame
}

// Config holds extraction settings.
type Config struct {
	// Threshold is the binarisation cut applied before contour detection.
	Threshold float32
	// MinArea drops contours smaller than this many pixels.
	MinArea float64
}

// DefaultConfig returns sensible extraction defaults.
func DefaultConfig() Config {
	return Config{
		Threshold: 128,
		MinArea:   100,
	}
}

// Extractor turns frames into silhouette rasters.
type Extractor struct {
	cfg Config
}

// NewExtractor creates an Extractor with the given configuration.
func NewExtractor(cfg Config) *Extractor {
	if cfg.Threshold <= 0 {
		cfg.Threshold = DefaultConfig().Threshold
	}
	return &Extractor{cfg: cfg}
}

// FromGray traces the contours of a normalised single-channel image into an
// outline raster. Used for the training corpus, where each image is exactly
// one silhouette.
func (e *Extractor) FromGray(g *image.Gray) (*silhouette.Raster, error) {
	mat, err := gocv.ImageGrayToMatGray(g)
	if err != nil {
		return nil, err
	}
	defer mat.Close()
	return e.outline(mat)
}

// Shapes finds every blob in a frame and returns one canonical-size outline
// raster per blob, preserving frame order. Each shape carries a fresh UUID so
// verdicts can be traced back to blobs.
func (e *Extractor) Shapes(frame gocv.Mat) ([]Shape, error) {
	if frame.Empty() {
		return nil, ErrEmptyFrame
	}

	gray := gocv.NewMat()
	defer gray.Close()
	if frame.Channels() > 1 {
		gocv.CvtColor(frame, &gray, gocv.ColorBGRToGray)
	} else {
		frame.CopyTo(&gray)
	}

	bin := gocv.NewMat()
	defer bin.Close()
	gocv.Threshold(gray, &bin, e.cfg.Threshold, 255, gocv.ThresholdBinary)

	contours := gocv.FindContours(bin, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	var shapes []Shape
	for i := 0; i < contours.Size(); i++ {
		contour := contours.At(i)
		if gocv.ContourArea(contour) < e.cfg.MinArea {
			continue
		}
		rect := gocv.BoundingRect(contour)

		region := gray.Region(rect)
		resized := gocv.NewMat()
		gocv.Resize(region, &resized, image.Pt(silhouette.Cols, silhouette.Rows), 0, 0, gocv.InterpolationLinear)
		region.Close()

		raster, err := e.outline(resized)
		resized.Close()
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, Shape{
			ID:     uuid.New(),
			Raster: raster,
			Bounds: rect,
		})
	}
	return shapes, nil
}

// outline binarises a canonical-size single-channel Mat and marks every
// boundary point of its external contours as an outline pixel. Image (x,y)
// becomes silhouette (row=y, col=x) here and nowhere deeper.
func (e *Extractor) outline(mat gocv.Mat) (*silhouette.Raster, error) {
	if mat.Empty() {
		return nil, ErrEmptyFrame
	}

	src := mat
	if mat.Rows() != silhouette.Rows || mat.Cols() != silhouette.Cols {
		src = gocv.NewMat()
		defer src.Close()
		gocv.Resize(mat, &src, image.Pt(silhouette.Cols, silhouette.Rows), 0, 0, gocv.InterpolationLinear)
	}

	bin := gocv.NewMat()
	defer bin.Close()
	gocv.Threshold(src, &bin, e.cfg.Threshold, 255, gocv.ThresholdBinary)

	contours := gocv.FindContours(bin, gocv.RetrievalExternal, gocv.ChainApproxNone)
	defer contours.Close()

	raster := silhouette.NewRaster()
	for i := 0; i < contours.Size(); i++ {
		contour := contours.At(i)
		for j := 0; j < contour.Size(); j++ {
			p := contour.At(j)
			raster.Set(p.Y, p.X, silhouette.Outline)
		}
	}
	return raster, nil
}
