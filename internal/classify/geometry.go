package classify

import (
	"math"

	"github.com/al1ina/HackTheBias/internal/landmark"
)

// Geometric thresholds. These were hand-tuned against real tracker output and
// are part of the classifier's behavioral contract; changing any of them
// changes which letters frames resolve to.
const (
	// minPalmScale floors the palm scale so ratios stay bounded when the
	// hand is tiny or the landmarks are degenerate.
	minPalmScale = 0.05

	// extendMargin is the fraction of the palm scale a fingertip must rise
	// above (or sink below) its PIP joint to count as extended (or curled).
	extendMargin = 0.15

	// togetherDist and spreadDist compare raw normalized coordinates, not
	// palm-scaled ones. Known scale-sensitivity, kept as-is.
	togetherDist = 0.08
	spreadDist   = 0.15

	// Thumb posture thresholds.
	thumbOutRatio  = 0.7  // tip this far from the index knuckle, palm-scaled
	thumbCrossDist = 0.02 // IP horizontally over the index knuckle
	thumbTuckDist  = 0.1  // tip resting near the index knuckle
	thumbUpRatio   = 0.2  // tip this far above the knuckle row, palm-scaled

	// spanRatio is the palm-scaled thumb-to-pinky width of a splayed hand.
	spanRatio = 0.8

	// pinchGapDist is the raw thumb-to-index fingertip gap of an open curve.
	pinchGapDist = 0.12
)

// palmScale returns the wrist-to-index-knuckle distance, floored at
// minPalmScale. All scale-relative predicates divide through this so the
// rules hold at any distance from the camera.
func palmScale(f landmark.Frame) float64 {
	s := landmark.Distance(f[landmark.Wrist], f[landmark.IndexMCP])
	if s < minPalmScale {
		s = minPalmScale
	}
	return s
}

// fingerExtended reports whether a fingertip is meaningfully above its PIP
// joint. Image y grows downward, so raised means tip.Y < pip.Y.
func fingerExtended(tip, pip landmark.Point, scale float64) bool {
	return pip.Y-tip.Y > extendMargin*scale
}

// fingerCurled is the mirror predicate: the fingertip has dropped below its
// PIP joint toward the palm.
func fingerCurled(tip, pip landmark.Point, scale float64) bool {
	return tip.Y-pip.Y > extendMargin*scale
}

// fingersTogether reports whether two fingertips touch. The threshold is an
// absolute coordinate distance, not palm-scaled.
func fingersTogether(a, b landmark.Point) bool {
	return landmark.Distance(a, b) < togetherDist
}

// fingersSpread reports whether two fingertips are held clearly apart.
// Absolute threshold, same caveat as fingersTogether.
func fingersSpread(a, b landmark.Point) bool {
	return landmark.Distance(a, b) > spreadDist
}

// thumbOut reports a thumb extended sideways, away from the palm.
func thumbOut(f landmark.Frame, scale float64) bool {
	return landmark.Distance(f[landmark.ThumbTip], f[landmark.IndexMCP]) > thumbOutRatio*scale
}

// thumbTucked reports a thumb folded in against the palm, tip near the index
// knuckle.
func thumbTucked(f landmark.Frame) bool {
	return landmark.Distance(f[landmark.ThumbTip], f[landmark.IndexMCP]) < thumbTuckDist
}

// thumbUp reports a thumb tip raised above the knuckle row.
func thumbUp(f landmark.Frame, scale float64) bool {
	return f[landmark.IndexMCP].Y-f[landmark.ThumbTip].Y > thumbUpRatio*scale
}

// thumbCrossed reports a thumb crossed over the fingers: the IP joint sits
// horizontally on top of the index knuckle.
func thumbCrossed(f landmark.Frame) bool {
	return math.Abs(f[landmark.ThumbIP].X-f[landmark.IndexMCP].X) < thumbCrossDist
}
