// Package dataset loads and normalises the training corpus: a flat directory
// of images, each one a ground-truth pedestrian silhouette.
package dataset

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/odeycodey/peoplefinder/internal/silhouette"
)

// ErrNoImages is returned when the corpus directory holds no loadable images.
var ErrNoImages = errors.New("dataset: no loadable images in directory")

// Image is one normalised corpus entry: single channel, canonical size.
type Image struct {
	Name string
	Gray *image.Gray
}

var extensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".gif":  true,
	".tif":  true,
	".tiff": true,
}

// Load reads every image in dir (non-recursive), converts it to a single
// channel and resizes it to the canonical 64x128 silhouette size. Files that
// are not images, or fail to decode, are skipped.
func Load(dir string) ([]Image, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("dataset: read directory: %w", err)
	}

	var images []Image
	for _, entry := range entries {
		if entry.IsDir() || !extensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		img, err := imaging.Open(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		images = append(images, Image{
			Name: entry.Name(),
			Gray: Normalize(img),
		})
	}
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	return images, nil
}

// Normalize converts any image to a canonical-size single-channel frame.
func Normalize(img image.Image) *image.Gray {
	resized := imaging.Resize(img, silhouette.Cols, silhouette.Rows, imaging.Lanczos)
	gray := image.NewGray(image.Rect(0, 0, silhouette.Cols, silhouette.Rows))
	draw.Draw(gray, gray.Bounds(), imaging.Grayscale(resized), image.Point{}, draw.Src)
	return gray
}
