// Package classifier judges fitted skeletons against per-landmark position
// ranges learned from ground-truth silhouettes.
package classifier

import (
	"github.com/odeycodey/peoplefinder/internal/silhouette"
	"github.com/odeycodey/peoplefinder/internal/skeleton"
)

// Trainer accumulates per-landmark bounding boxes from training skeletons.
// It is the mutable half of the range model; classification happens on the
// immutable Model a Snapshot produces.
type Trainer struct {
	min     [skeleton.NumLandmarks]silhouette.Pixel
	max     [skeleton.NumLandmarks]silhouette.Pixel
	samples int
}

// NewTrainer returns a trainer with every range at its sentinel extremes:
// min at (1000,1000), max at (0,0).
func NewTrainer() *Trainer {
	t := &Trainer{}
	t.Reset()
	return t
}

// Reset restores the sentinel extremes and discards the sample count.
func (t *Trainer) Reset() {
	for i := range t.min {
		t.min[i] = silhouette.Pixel{Row: 1000, Col: 1000}
		t.max[i] = silhouette.Pixel{Row: 0, Col: 0}
	}
	t.samples = 0
}

// Update widens every landmark's range coordinate-wise toward the
// corresponding landmark of s.
func (t *Trainer) Update(s skeleton.Skeleton) {
	for i, p := range s {
		if p.Row < t.min[i].Row {
			t.min[i].Row = p.Row
		}
		if p.Col < t.min[i].Col {
			t.min[i].Col = p.Col
		}
		if p.Row > t.max[i].Row {
			t.max[i].Row = p.Row
		}
		if p.Col > t.max[i].Col {
			t.max[i].Col = p.Col
		}
	}
	t.samples++
}

// Samples returns the number of skeletons folded in since the last reset.
func (t *Trainer) Samples() int {
	return t.samples
}

// Snapshot freezes the accumulated ranges into a read-only model. Containment
// is closed below and half-open above, so every max component is widened by
// one: a model trained on a single skeleton contains that skeleton.
func (t *Trainer) Snapshot() *Model {
	m := &Model{min: t.min, max: t.max, samples: t.samples}
	for i := range m.max {
		m.max[i].Row++
		m.max[i].Col++
	}
	return m
}

// Model is an immutable trained range model.
type Model struct {
	min     [skeleton.NumLandmarks]silhouette.Pixel
	max     [skeleton.NumLandmarks]silhouette.Pixel
	samples int
}

// Samples returns the number of training skeletons behind the model.
func (m *Model) Samples() int {
	return m.samples
}

// Range returns the bounds learned for landmark i. The upper bound is
// exclusive.
func (m *Model) Range(i int) (min, max silhouette.Pixel) {
	return m.min[i], m.max[i]
}

// Contains reports whether p falls inside the range learned for landmark i:
// min.Row <= p.Row < max.Row and min.Col <= p.Col < max.Col.
func (m *Model) Contains(p silhouette.Pixel, i int) bool {
	return p.Row >= m.min[i].Row && p.Row < m.max[i].Row &&
		p.Col >= m.min[i].Col && p.Col < m.max[i].Col
}
