package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"

	"github.com/disintegration/imaging"
	"gocv.io/x/gocv"

	"github.com/odeycodey/peoplefinder/internal/classifier"
	"github.com/odeycodey/peoplefinder/internal/dataset"
	"github.com/odeycodey/peoplefinder/internal/finder"
	"github.com/odeycodey/peoplefinder/internal/overlay"
	"github.com/odeycodey/peoplefinder/internal/silhouette"
	"github.com/odeycodey/peoplefinder/internal/skeleton"
	"github.com/odeycodey/peoplefinder/internal/vision"
)

func main() {
	trainDir := flag.String("train", "", "directory of ground-truth pedestrian silhouettes")
	threshold := flag.Int("threshold", skeleton.DefaultThreshold, "detector row tolerance")
	camera := flag.Int("camera", -1, "camera device id for live classification")
	demo := flag.Bool("demo", false, "re-fit the training corpus and show each skeleton overlay")
	flag.Parse()

	fmt.Println("Peoplefinder - Pedestrian Silhouette Classifier")

	if *trainDir == "" {
		fmt.Fprintln(os.Stderr, "a training corpus is required: -train <dir>")
		flag.Usage()
		os.Exit(2)
	}

	extractor := vision.NewExtractor(vision.DefaultConfig())
	f := finder.New(finder.Config{
		TrainingDir: *trainDir,
		Threshold:   *threshold,
	}, extractor)

	if err := f.Train(); err != nil {
		log.Fatalf("Training failed: %v", err)
	}

	switch {
	case *demo:
		if err := runDemo(f, extractor, *trainDir); err != nil {
			log.Fatalf("Demo failed: %v", err)
		}
	case *camera >= 0:
		if err := runCamera(f, extractor, *camera); err != nil {
			log.Fatalf("Camera loop failed: %v", err)
		}
	case flag.NArg() > 0:
		classifyFiles(f, extractor, flag.Args())
	default:
		fmt.Println("Nothing to classify; pass image files or -camera.")
	}
}

// classifyFiles judges each image file as a single silhouette and prints one
// verdict per line.
func classifyFiles(f *finder.Finder, extractor *vision.Extractor, paths []string) {
	for _, path := range paths {
		img, err := imaging.Open(path)
		if err != nil {
			log.Printf("Skipping %s: %v", path, err)
			continue
		}
		raster, err := extractor.FromGray(dataset.Normalize(img))
		if err != nil {
			log.Printf("Skipping %s: %v", path, err)
			continue
		}
		verdicts := f.Classify([]*silhouette.Raster{raster})
		fmt.Printf("%s: %s\n", path, verdicts[0])
	}
}

// renderDemoFrame fits one corpus image and returns a BGR frame with the
// skeleton overlay and verdict label drawn onto it.
func renderDemoFrame(f *finder.Finder, extractor *vision.Extractor, img dataset.Image) (gocv.Mat, error) {
	gray, err := gocv.ImageGrayToMatGray(img.Gray)
	if err != nil {
		return gocv.Mat{}, err
	}
	defer gray.Close()

	frame := gocv.NewMat()
	gocv.CvtColor(gray, &frame, gocv.ColorGrayToBGR)

	raster, err := extractor.FromGray(img.Gray)
	if err != nil {
		frame.Close()
		return gocv.Mat{}, err
	}
	res := f.Fit(raster)
	verdict := f.Model().Classify(res.Skeleton)

	overlay.DrawSkeleton(&frame, res.Skeleton)
	gocv.PutText(&frame, string(verdict), image.Pt(2, 12),
		gocv.FontHersheySimplex, 0.4, verdictColor(verdict), 1)
	return frame, nil
}

// runDemo re-fits every corpus image and shows its skeleton overlay, waiting
// for a key press between images. ESC quits early.
func runDemo(f *finder.Finder, extractor *vision.Extractor, dir string) error {
	images, err := dataset.Load(dir)
	if err != nil {
		return err
	}

	window := gocv.NewWindow("peoplefinder demo")
	defer window.Close()

	for _, img := range images {
		frame, err := renderDemoFrame(f, extractor, img)
		if err != nil {
			log.Printf("Skipping %s: %v", img.Name, err)
			continue
		}
		window.IMShow(frame)
		key := window.WaitKey(0)
		frame.Close()
		if key == 27 {
			return nil
		}
	}
	return nil
}

// runCamera classifies every blob in the live feed, labelling the frame and
// rendering the fitted skeleton of the first blob in a side window. ESC quits.
func runCamera(f *finder.Finder, extractor *vision.Extractor, device int) error {
	cam, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return fmt.Errorf("open camera %d: %w", device, err)
	}
	defer cam.Close()

	window := gocv.NewWindow("peoplefinder")
	defer window.Close()
	skeletonWindow := gocv.NewWindow("skeleton")
	defer skeletonWindow.Close()

	frame := gocv.NewMat()
	defer frame.Close()

	for {
		if ok := cam.Read(&frame); !ok || frame.Empty() {
			continue
		}

		shapes, err := extractor.Shapes(frame)
		if err != nil {
			log.Printf("Frame dropped: %v", err)
			continue
		}

		for i, shape := range shapes {
			res := f.Fit(shape.Raster)
			verdict := f.Model().Classify(res.Skeleton)

			gocv.Rectangle(&frame, shape.Bounds, verdictColor(verdict), 2)
			gocv.PutText(&frame, string(verdict),
				image.Pt(shape.Bounds.Min.X, shape.Bounds.Min.Y-4),
				gocv.FontHersheySimplex, 0.5, verdictColor(verdict), 1)

			if i == 0 {
				canvas := gocv.NewMatWithSize(silhouette.Rows, silhouette.Cols, gocv.MatTypeCV8UC3)
				overlay.DrawSkeleton(&canvas, res.Skeleton)
				skeletonWindow.IMShow(canvas)
				canvas.Close()
			}
		}

		window.IMShow(frame)
		if window.WaitKey(1) == 27 {
			return nil
		}
	}
}

func verdictColor(v classifier.Verdict) color.RGBA {
	switch v {
	case classifier.VerdictPedestrian:
		return color.RGBA{G: 255}
	case classifier.VerdictSomething:
		return color.RGBA{R: 255, G: 255}
	default:
		return color.RGBA{R: 255}
	}
}
