// Package finder wires the corpus loader, silhouette extractor, skeleton
// fitter and range classifier into the training and testing drivers.
package finder

import (
	"fmt"
	"image"
	"log"

	"github.com/odeycodey/peoplefinder/internal/classifier"
	"github.com/odeycodey/peoplefinder/internal/dataset"
	"github.com/odeycodey/peoplefinder/internal/silhouette"
	"github.com/odeycodey/peoplefinder/internal/skeleton"
)

// Extractor produces an outline raster from a normalised corpus image.
// vision.Extractor is the production implementation; tests inject their own.
type Extractor interface {
	FromGray(g *image.Gray) (*silhouette.Raster, error)
}

// Config holds finder settings.
type Config struct {
	// TrainingDir is the directory of ground-truth pedestrian silhouettes.
	TrainingDir string
	// Threshold is the detector row tolerance. Zero means the default.
	Threshold int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{Threshold: skeleton.DefaultThreshold}
}

// Finder trains the range model from a silhouette corpus and classifies test
// silhouettes against it. It is not safe for concurrent use: callers that
// interleave Train and Classify across goroutines must serialise them.
type Finder struct {
	cfg       Config
	extractor Extractor
	fitter    *skeleton.Fitter
	trainer   *classifier.Trainer
	model     *classifier.Model
}

// New creates a Finder. Until Train succeeds the model is untrained and every
// skeleton classifies as noise.
func New(cfg Config, extractor Extractor) *Finder {
	if cfg.Threshold <= 0 {
		cfg.Threshold = skeleton.DefaultThreshold
	}
	trainer := classifier.NewTrainer()
	return &Finder{
		cfg:       cfg,
		extractor: extractor,
		fitter:    &skeleton.Fitter{Threshold: cfg.Threshold},
		trainer:   trainer,
		model:     trainer.Snapshot(),
	}
}

// Train fits a skeleton onto every corpus image and folds the successful fits
// into a fresh range model. Fits that raise the failure flag are dropped.
// On error the previous model, untrained for a new Finder, stays in place.
func (f *Finder) Train() error {
	images, err := dataset.Load(f.cfg.TrainingDir)
	if err != nil {
		return fmt.Errorf("finder: load training corpus: %w", err)
	}

	f.trainer.Reset()
	log.Printf("Training the pedestrian classifier on %d images...", len(images))

	skipped := 0
	for _, img := range images {
		raster, err := f.extractor.FromGray(img.Gray)
		if err != nil {
			log.Printf("Skipping %s: %v", img.Name, err)
			skipped++
			continue
		}
		result := f.fitter.Fit(raster)
		if result.Failed {
			skipped++
			continue
		}
		f.trainer.Update(result.Skeleton)
	}

	f.model = f.trainer.Snapshot()
	log.Printf("Classifier trained: %d skeletons kept, %d skipped", f.trainer.Samples(), skipped)
	return nil
}

// Model returns the current range model snapshot.
func (f *Finder) Model() *classifier.Model {
	return f.model
}

// Fit runs the skeleton fitter on a single raster.
func (f *Finder) Fit(r *silhouette.Raster) skeleton.Result {
	return f.fitter.Fit(r)
}

// Classify fits and judges each raster, returning one verdict per raster in
// input order. A failed fit taints the skeleton but is still judged; its
// missing landmarks score nothing and it comes out as noise.
func (f *Finder) Classify(rasters []*silhouette.Raster) []classifier.Verdict {
	verdicts := make([]classifier.Verdict, len(rasters))
	for i, r := range rasters {
		result := f.fitter.Fit(r)
		verdicts[i] = f.model.Classify(result.Skeleton)
	}
	return verdicts
}
