package skeleton

import (
	"math"

	"github.com/odeycodey/peoplefinder/internal/silhouette"
)

// Row bounds for the landmark searches, in canonical 128-row space.
const (
	torsoFloorRow = 48 // torso search never goes past mid-image
	waistCeilRow  = 64 // waist search starts at mid-image
	feetCeilRow   = 70 // feet are assumed below this row
	waistFloorRow = 80 // waist search never goes past this row
)

// Corner targets for the foot search.
var (
	leftFootCorner  = silhouette.Pixel{Row: 127, Col: 1}
	rightFootCorner = silhouette.Pixel{Row: 127, Col: 63}
)

// Every detector consumes the row-major interior sequence, a seed index into
// it, and the landmarks resolved before it. Detectors report ok=false on a
// guard violation (exhausted sequence, empty search window); the fitter is the
// only place that turns that into the latched failure flag. Returned seed
// indexes never precede the seed received.

// findHead locates the head. The interior sequence is row-major, so its first
// pixel is the crown; the landmark sits threshold rows inside it.
func findHead(interior []silhouette.Pixel, threshold int) (silhouette.Pixel, int, bool) {
	if len(interior) == 0 {
		return silhouette.Missing, 0, false
	}
	crown := interior[0]
	return silhouette.Pixel{Row: crown.Row + threshold, Col: crown.Col}, 0, true
}

// findTorso locates the neck by scanning rows below the head for the smallest
// run length, down to torsoFloorRow (or one row past the head when the head
// sits lower than that). The landmark is the midpoint of the narrowest row,
// one threshold deeper.
func findTorso(interior []silhouette.Pixel, threshold int, head silhouette.Pixel, seed int) (silhouette.Pixel, int, bool) {
	floor := torsoFloorRow
	if floor < head.Row {
		floor = head.Row + 1
	}

	i := silhouette.SeekRow(interior, seed, head.Row+threshold)
	if i >= len(interior) {
		return silhouette.Missing, seed, false
	}

	best := interior[i]
	bestIdx := i
	shortest := -1
	run := 0
	for i+1 < len(interior) && interior[i].Row < floor {
		i++
		if interior[i].Row == interior[i-1].Row {
			run++
			continue
		}
		if shortest < 0 || run < shortest {
			shortest = run
			best = interior[i-1]
			bestIdx = i - 1
		}
		run = 0
	}
	if shortest < 0 {
		// No complete row inside the search window.
		return silhouette.Missing, seed, false
	}

	node := silhouette.Pixel{Row: best.Row + threshold, Col: best.Col - shortest/2}
	return node, bestIdx, true
}

// findWaist locates the hips by scanning rows below the torso for the largest
// run length, between waistCeilRow and waistFloorRow. Runs are measured with
// an expected-next-pixel rule: the run continues only while each observed
// pixel equals the previous one shifted one column right, so gaps opened by
// arms or hands break the run instead of inflating it.
func findWaist(interior []silhouette.Pixel, threshold int, torso silhouette.Pixel, seed int) (silhouette.Pixel, int, bool) {
	ceil := waistCeilRow
	if ceil < torso.Row {
		ceil = torso.Row + 1
	}

	i := silhouette.SeekRow(interior, seed, ceil+threshold)
	if i >= len(interior) {
		return silhouette.Missing, seed, false
	}

	best := interior[i]
	bestIdx := i
	expected := interior[i]
	largest := 0
	run := 0
	for i+1 < len(interior) && interior[i].Row < waistFloorRow {
		i++
		expected.Col++
		if interior[i] == expected {
			run++
			continue
		}
		if run > largest {
			largest = run
			best = interior[i-1]
			bestIdx = i - 1
		}
		expected = interior[i]
		run = 0
	}

	node := silhouette.Pixel{Row: best.Row - threshold, Col: best.Col - largest/2}
	return node, bestIdx, true
}

// findFoot returns the interior pixel below the feet ceiling closest to the
// given image corner.
func findFoot(interior []silhouette.Pixel, threshold int, waist, corner silhouette.Pixel, seed int) (silhouette.Pixel, bool) {
	ceil := feetCeilRow
	if ceil < waist.Row {
		ceil = waist.Row + 1
	}

	i := silhouette.SeekRow(interior, seed, ceil+threshold)
	best := silhouette.Missing
	bestDist := math.MaxFloat64
	for i+1 < len(interior) {
		i++
		if d := silhouette.Dist(corner, interior[i]); d < bestDist {
			bestDist = d
			best = interior[i]
		}
	}
	if best == silhouette.Missing {
		return silhouette.Missing, false
	}
	return best, true
}

// findShoulders measures the widest row in the threshold-deep band below the
// torso row. The shoulders sit one arm width inside each end of that row, and
// a tenth of the row's width (at least one pixel) becomes the arm width used
// by the elbow and hand searches.
func findShoulders(interior []silhouette.Pixel, threshold int, torso silhouette.Pixel, seed int) (left, right silhouette.Pixel, armWidth, idx int, ok bool) {
	i := silhouette.SeekRow(interior, seed, torso.Row)
	if i >= len(interior) {
		return silhouette.Missing, silhouette.Missing, 1, seed, false
	}

	best := interior[i]
	bestIdx := i
	expected := interior[i]
	largest := 0
	run := 0
	for i+1 < len(interior) && interior[i].Row < torso.Row+threshold {
		i++
		expected.Col++
		if interior[i] == expected {
			run++
			continue
		}
		if run > largest {
			largest = run
			best = interior[i-1]
			bestIdx = i - 1
		}
		expected = interior[i]
		run = 0
	}

	armWidth = largest / 10
	if armWidth == 0 {
		armWidth = 1
	}
	left = silhouette.Pixel{Row: best.Row, Col: best.Col - largest + armWidth}
	right = silhouette.Pixel{Row: best.Row, Col: best.Col - armWidth}
	return left, right, armWidth, bestIdx, true
}

// halfwayTorso returns the midpoint between the torso and waist landmarks and
// its distance to the torso, the expected length of one arm segment.
func halfwayTorso(torso, waist silhouette.Pixel) (silhouette.Pixel, float64) {
	node := silhouette.Pixel{
		Row: torso.Row + (waist.Row-torso.Row)/2,
		Col: torso.Col + (waist.Col-torso.Col)/2,
	}
	return node, silhouette.Dist(node, torso)
}

// findElbow follows the arm-side edge of the shape from the shoulder row down
// to the halfway row. At each row it expects the arm's inner edge one arm
// width inside the observed pixel (outside it for the right arm); among pixels
// matching that expectation it keeps the one whose distance from the shoulder
// comes closest to the halfway distance.
func findElbow(interior []silhouette.Pixel, torso, shoulder silhouette.Pixel, armWidth int, halfwayDist float64, halfway silhouette.Pixel, seed int) (silhouette.Pixel, bool) {
	i := silhouette.SeekRow(interior, seed, shoulder.Row)
	if i >= len(interior) {
		return silhouette.Missing, false
	}

	// The right shoulder sits right of the torso midline; its expected inner
	// pixel is offset from the previous pixel instead of the current one.
	rightSide := shoulder.Col >= torso.Col
	expectedAt := func(at int) silhouette.Pixel {
		if rightSide {
			prev := at
			if prev > 0 {
				prev--
			}
			return silhouette.Pixel{Row: interior[at].Row, Col: interior[prev].Col - armWidth}
		}
		return silhouette.Pixel{Row: interior[at].Row, Col: interior[at].Col + armWidth}
	}

	expected := expectedAt(i)
	best := silhouette.Pixel{Row: interior[i].Row, Col: interior[i].Col + armWidth}
	closest := math.MaxFloat64
	i++
	for i+1 < len(interior) && interior[i].Row <= halfway.Row {
		i++
		if interior[i] == expected {
			d := silhouette.Dist(interior[i], shoulder)
			if halfwayDist-d <= closest {
				closest = halfwayDist - d
				best = interior[i]
			}
		}
		if interior[i].Row != expected.Row {
			expected = expectedAt(i)
		}
	}
	// The fallback anchor is offset from a real pixel and can land past the
	// right raster edge when nothing ever matched.
	if !silhouette.InBounds(best, silhouette.Rows, silhouette.Cols) {
		return silhouette.Missing, false
	}
	return best, true
}

// Neighbour offsets for the outline walk, probed in this order: the three
// pixels below, the two beside, then the three above.
var outlineNeighbours = [8]silhouette.Pixel{
	{Row: 1, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: -1},
	{Row: 0, Col: 1}, {Row: 0, Col: -1},
	{Row: -1, Col: 1}, {Row: -1, Col: 0}, {Row: -1, Col: -1},
}

// findHand walks the outline away from the elbow for half the expected arm
// length, accumulating the step angles. A goal pixel is projected one arm
// length from the elbow along the average direction and snapped onto the
// nearest interior pixel.
func findHand(sil *silhouette.Silhouette, waist, elbow silhouette.Pixel, armWidth int, halfwayDist float64, seed int) (silhouette.Pixel, bool) {
	if elbow == silhouette.Missing || len(sil.Outline) == 0 {
		return silhouette.Missing, false
	}

	startRow := elbow.Row - armWidth
	i := silhouette.SeekRow(sil.Outline, 0, startRow)
	if i >= len(sil.Outline) {
		return silhouette.Missing, false
	}
	j := silhouette.SeekRow(sil.Interior, seed, startRow)

	cur := sil.Outline[i]
	if elbow.Col >= waist.Col && i > 0 {
		// Right arm: the elbow-side outline pixel precedes the row-major hit.
		cur = sil.Outline[i-1]
	}

	prev := silhouette.Missing
	steps := 0
	var sum float64
	for steps <= int(halfwayDist/2) {
		for _, off := range outlineNeighbours {
			n := silhouette.Pixel{Row: cur.Row + off.Row, Col: cur.Col + off.Col}
			if !silhouette.InBounds(n, silhouette.Rows, silhouette.Cols) {
				continue
			}
			if sil.Raster.At(n.Row, n.Col) != silhouette.Outline || n == prev {
				continue
			}
			prev = cur
			cur = n
			sum += math.Atan2(float64(cur.Col-prev.Col), float64(cur.Row-prev.Row))
			break
		}
		steps++
	}

	avg := sum / float64(steps)
	goal := silhouette.Pixel{
		Row: elbow.Row + int(halfwayDist*math.Cos(avg)),
		Col: elbow.Col + int(halfwayDist*math.Sin(avg)),
	}
	return findClosestPixel(sil.Interior, goal, elbow.Row+int(halfwayDist), j)
}

// findClosestPixel returns the interior pixel nearest the goal, scanning from
// n up to the given row bound. It exits early when the goal itself is
// interior. The scan skips 200 entries ahead first; interior pixels that
// close to the shoulder seed sit well above any hand.
func findClosestPixel(interior []silhouette.Pixel, goal silhouette.Pixel, rowBound, n int) (silhouette.Pixel, bool) {
	n += 200
	best := silhouette.Missing
	bestDist := math.MaxFloat64
	for n+1 < len(interior) && interior[n].Row <= rowBound {
		n++
		if interior[n] == goal {
			return goal, true
		}
		if d := silhouette.Dist(goal, interior[n]); d <= bestDist {
			bestDist = d
			best = interior[n]
		}
	}
	if best == silhouette.Missing {
		return silhouette.Missing, false
	}
	return best, true
}
