// Package skeleton fits an 11-node body-part skeleton onto a silhouette.
package skeleton

import "github.com/odeycodey/peoplefinder/internal/silhouette"

// Landmark indices. Later landmarks depend on earlier ones as anchors, so the
// fitter always resolves them in this order.
const (
	Head          = 0
	Torso         = 1
	Waist         = 2
	LeftFoot      = 3
	RightFoot     = 4
	LeftShoulder  = 5
	RightShoulder = 6
	LeftElbow     = 7
	LeftHand      = 8
	RightElbow    = 9
	RightHand     = 10
	NumLandmarks  = 11
)

// DefaultThreshold is the row-offset tolerance shared by the detectors.
const DefaultThreshold = 5

// Skeleton is the ordered vector of landmark positions for one silhouette.
// Landmarks that could not be located hold silhouette.Missing.
type Skeleton [NumLandmarks]silhouette.Pixel

// NewSkeleton returns a skeleton with every landmark missing.
func NewSkeleton() Skeleton {
	var s Skeleton
	for i := range s {
		s[i] = silhouette.Missing
	}
	return s
}
