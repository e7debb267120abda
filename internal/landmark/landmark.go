// Package landmark defines the 21-point hand landmark model shared by the
// sign classifier and the HTTP boundary.
package landmark

import "math"

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
//
// The indices are an external contract with the upstream hand tracker and
// must never be renumbered.
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point represents a single tracked hand point. X and Y are normalized
// image-relative coordinates in [0,1] with Y growing downward. Z is reported
// by the tracker but unused by the classifier.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z,omitempty"`
}

// Frame is one hand's landmarks for a single camera frame, ordered by the
// index constants above. Wire input may be short; callers must check
// Complete before indexing past the tail.
type Frame []Point

// Complete reports whether the frame carries the full 21-point set.
func (f Frame) Complete() bool {
	return len(f) >= NumLandmarks
}

// Distance calculates the Euclidean distance between two points in the x/y
// plane. Depth is ignored: the classifier operates on the image plane only.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Scale scales every coordinate of the frame by s around the image origin
// and returns a new frame. Useful for simulating the same pose at a
// different distance from the camera.
func (f Frame) Scale(s float64) Frame {
	scaled := make(Frame, len(f))
	for i, p := range f {
		scaled[i] = Point{X: p.X * s, Y: p.Y * s, Z: p.Z}
	}
	return scaled
}
