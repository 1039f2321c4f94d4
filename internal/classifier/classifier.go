package classifier

import "github.com/odeycodey/peoplefinder/internal/skeleton"

// Verdict is the classification of one silhouette.
type Verdict string

const (
	// VerdictPedestrian means at least 7 landmarks fell inside their ranges.
	VerdictPedestrian Verdict = "Pedestrian"
	// VerdictSomething means at least 3 landmarks fell inside their ranges.
	VerdictSomething Verdict = "Something"
	// VerdictNoise means fewer than 3 landmarks fell inside their ranges.
	VerdictNoise Verdict = "Noise"
)

// Verdict thresholds on the landmark score.
const (
	pedestrianScore = 7
	somethingScore  = 3
)

// Score counts the landmarks of s that fall inside their trained ranges.
func (m *Model) Score(s skeleton.Skeleton) int {
	score := 0
	for i, p := range s {
		if m.Contains(p, i) {
			score++
		}
	}
	return score
}

// Classify maps a fitted skeleton to a verdict. It is a pure function of the
// skeleton and the model.
func (m *Model) Classify(s skeleton.Skeleton) Verdict {
	switch score := m.Score(s); {
	case score >= pedestrianScore:
		return VerdictPedestrian
	case score >= somethingScore:
		return VerdictSomething
	default:
		return VerdictNoise
	}
}
