package skeleton

import "github.com/odeycodey/peoplefinder/internal/silhouette"

// State tracks the fitter's progress through the detector cascade.
type State int

const (
	Fresh State = iota
	Seeded
	HeadFound
	TorsoFound
	TorsoValidated
	Complete
	Failed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Fresh:
		return "fresh"
	case Seeded:
		return "seeded"
	case HeadFound:
		return "head-found"
	case TorsoFound:
		return "torso-found"
	case TorsoValidated:
		return "torso-validated"
	case Complete:
		return "complete"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of one fit. The skeleton always carries all 11
// landmarks; missing ones hold silhouette.Missing. Failed reports the latched
// failure flag: the fit is tainted but, past the torso gate, still complete.
type Result struct {
	Skeleton Skeleton
	State    State
	Failed   bool
}

// Fitter runs the landmark detectors in their fixed order, threading each
// detector's final interior index into the next as its seed.
type Fitter struct {
	// Threshold is the row-offset tolerance handed to every detector.
	// Non-positive values fall back to DefaultThreshold.
	Threshold int
}

// NewFitter returns a fitter with the default threshold.
func NewFitter() *Fitter {
	return &Fitter{Threshold: DefaultThreshold}
}

// Fit builds the silhouette index for r and fits the skeleton onto it. The
// raster is mutated: validation flood-fills the interior in place.
//
// An invalid silhouette or a torso outside the raster bounds aborts the
// cascade with State Failed. Any later detector that gives up latches the
// failure flag but the remaining detectors still run, anchored on whatever
// landmarks survived.
func (f *Fitter) Fit(r *silhouette.Raster) Result {
	threshold := f.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	res := Result{Skeleton: NewSkeleton(), State: Fresh}

	sil, err := silhouette.Build(r)
	if err != nil {
		res.State = Failed
		res.Failed = true
		return res
	}
	res.State = Seeded

	head, headIdx, ok := findHead(sil.Interior, threshold)
	if !ok {
		res.State = Failed
		res.Failed = true
		return res
	}
	res.Skeleton[Head] = head
	res.State = HeadFound

	torso, torsoIdx, ok := findTorso(sil.Interior, threshold, head, headIdx)
	if ok {
		res.Skeleton[Torso] = torso
	}
	res.State = TorsoFound

	// The torso is the early reject gate for the whole cascade.
	if !ok || !silhouette.InBounds(torso, silhouette.Rows, silhouette.Cols) {
		res.State = Failed
		res.Failed = true
		return res
	}
	res.State = TorsoValidated

	waistIdx := torsoIdx
	waist, idx, ok := findWaist(sil.Interior, threshold, torso, torsoIdx)
	if ok {
		res.Skeleton[Waist] = waist
		waistIdx = idx
	} else {
		res.Failed = true
	}

	halfway, halfwayDist := halfwayTorso(torso, res.Skeleton[Waist])

	if foot, ok := findFoot(sil.Interior, threshold, res.Skeleton[Waist], leftFootCorner, waistIdx); ok {
		res.Skeleton[LeftFoot] = foot
	} else {
		res.Failed = true
	}
	if foot, ok := findFoot(sil.Interior, threshold, res.Skeleton[Waist], rightFootCorner, waistIdx); ok {
		res.Skeleton[RightFoot] = foot
	} else {
		res.Failed = true
	}

	armWidth := 1
	shoulderIdx := torsoIdx
	left, right, width, idx, ok := findShoulders(sil.Interior, threshold, torso, torsoIdx)
	if ok {
		res.Skeleton[LeftShoulder] = left
		res.Skeleton[RightShoulder] = right
		armWidth = width
		shoulderIdx = idx
	} else {
		res.Failed = true
	}

	if elbow, ok := findElbow(sil.Interior, torso, res.Skeleton[LeftShoulder], armWidth, halfwayDist, halfway, shoulderIdx); ok {
		res.Skeleton[LeftElbow] = elbow
	} else {
		res.Failed = true
	}
	if hand, ok := findHand(sil, res.Skeleton[Waist], res.Skeleton[LeftElbow], armWidth, halfwayDist, shoulderIdx); ok {
		res.Skeleton[LeftHand] = hand
	} else {
		res.Failed = true
	}

	if elbow, ok := findElbow(sil.Interior, torso, res.Skeleton[RightShoulder], armWidth, halfwayDist, halfway, shoulderIdx); ok {
		res.Skeleton[RightElbow] = elbow
	} else {
		res.Failed = true
	}
	if hand, ok := findHand(sil, res.Skeleton[Waist], res.Skeleton[RightElbow], armWidth, halfwayDist, shoulderIdx); ok {
		res.Skeleton[RightHand] = hand
	} else {
		res.Failed = true
	}

	res.State = Complete
	return res
}
