// Package overlay draws fitted skeletons onto frames for visual inspection.
// It is the only consumer of skeleton landmarks that speaks image (x,y);
// everything upstream stays in (row,col).
package overlay

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/odeycodey/peoplefinder/internal/silhouette"
	"github.com/odeycodey/peoplefinder/internal/skeleton"
)

var (
	limbColor = color.RGBA{R: 255, G: 0, B: 255, A: 0}
	nodeColor = color.RGBA{R: 0, G: 255, B: 0, A: 0}
)

// The limb graph: head down the spine to both feet, and both arms off the
// torso.
var limbs = [10][2]int{
	{skeleton.Head, skeleton.Torso},
	{skeleton.Torso, skeleton.Waist},
	{skeleton.Waist, skeleton.LeftFoot},
	{skeleton.Waist, skeleton.RightFoot},
	{skeleton.Torso, skeleton.LeftShoulder},
	{skeleton.LeftShoulder, skeleton.LeftElbow},
	{skeleton.LeftElbow, skeleton.LeftHand},
	{skeleton.Torso, skeleton.RightShoulder},
	{skeleton.RightShoulder, skeleton.RightElbow},
	{skeleton.RightElbow, skeleton.RightHand},
}

// DrawSkeleton annotates img, assumed to be in canonical silhouette
// proportions, with the skeleton's limb lines and landmark circles. Limbs
// with a missing endpoint and missing landmarks are skipped.
func DrawSkeleton(img *gocv.Mat, s skeleton.Skeleton) {
	for _, limb := range limbs {
		a, b := s[limb[0]], s[limb[1]]
		if !drawable(a) || !drawable(b) {
			continue
		}
		gocv.Line(img, toImage(a), toImage(b), limbColor, 1)
	}
	for _, p := range s {
		if !drawable(p) {
			continue
		}
		gocv.Circle(img, toImage(p), 2, nodeColor, 1)
	}
}

func drawable(p silhouette.Pixel) bool {
	return p != silhouette.Missing && silhouette.InBounds(p, silhouette.Rows, silhouette.Cols)
}

// toImage transposes silhouette (row,col) to image (x,y).
func toImage(p silhouette.Pixel) image.Point {
	return image.Pt(p.Col, p.Row)
}
