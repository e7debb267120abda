package landmark

// Preset landmark frames for recognizable hand shapes, used across the test
// suites. Coordinates follow the camera convention: x grows rightward,
// y grows downward, so a raised fingertip has a smaller y than its knuckle.
// All frames share the same wrist and knuckle row so they differ only in
// finger and thumb posture.

// base returns a frame with the wrist and the four finger MCP knuckles
// placed; finger joints and the thumb are left at the zero value for the
// caller to fill in.
func base() Frame {
	f := make(Frame, NumLandmarks)
	f[Wrist] = Point{X: 0.50, Y: 0.85}
	f[IndexMCP] = Point{X: 0.42, Y: 0.60}
	f[MiddleMCP] = Point{X: 0.47, Y: 0.60}
	f[RingMCP] = Point{X: 0.52, Y: 0.60}
	f[PinkyMCP] = Point{X: 0.57, Y: 0.60}
	return f
}

// Fist returns a closed fist with the thumb resting upright alongside the
// index knuckle.
func Fist() Frame {
	f := base()
	f[ThumbCMC] = Point{X: 0.46, Y: 0.76}
	f[ThumbMCP] = Point{X: 0.42, Y: 0.68}
	f[ThumbIP] = Point{X: 0.39, Y: 0.60}
	f[ThumbTip] = Point{X: 0.40, Y: 0.53}

	f[IndexPIP] = Point{X: 0.43, Y: 0.52}
	f[IndexDIP] = Point{X: 0.43, Y: 0.58}
	f[IndexTip] = Point{X: 0.43, Y: 0.64}
	f[MiddlePIP] = Point{X: 0.47, Y: 0.52}
	f[MiddleDIP] = Point{X: 0.47, Y: 0.58}
	f[MiddleTip] = Point{X: 0.47, Y: 0.64}
	f[RingPIP] = Point{X: 0.52, Y: 0.52}
	f[RingDIP] = Point{X: 0.52, Y: 0.58}
	f[RingTip] = Point{X: 0.52, Y: 0.64}
	f[PinkyPIP] = Point{X: 0.57, Y: 0.52}
	f[PinkyDIP] = Point{X: 0.57, Y: 0.58}
	f[PinkyTip] = Point{X: 0.56, Y: 0.64}
	return f
}

// FlatHand returns an open hand with all four fingers raised close together
// and the thumb folded in toward the palm.
func FlatHand() Frame {
	f := base()
	f[ThumbCMC] = Point{X: 0.46, Y: 0.76}
	f[ThumbMCP] = Point{X: 0.44, Y: 0.70}
	f[ThumbIP] = Point{X: 0.44, Y: 0.66}
	f[ThumbTip] = Point{X: 0.44, Y: 0.63}

	f[IndexPIP] = Point{X: 0.42, Y: 0.50}
	f[IndexDIP] = Point{X: 0.42, Y: 0.42}
	f[IndexTip] = Point{X: 0.42, Y: 0.34}
	f[MiddlePIP] = Point{X: 0.46, Y: 0.50}
	f[MiddleDIP] = Point{X: 0.46, Y: 0.41}
	f[MiddleTip] = Point{X: 0.46, Y: 0.33}
	f[RingPIP] = Point{X: 0.51, Y: 0.50}
	f[RingDIP] = Point{X: 0.51, Y: 0.42}
	f[RingTip] = Point{X: 0.50, Y: 0.34}
	f[PinkyPIP] = Point{X: 0.56, Y: 0.51}
	f[PinkyDIP] = Point{X: 0.55, Y: 0.44}
	f[PinkyTip] = Point{X: 0.54, Y: 0.36}
	return f
}

// CuppedHand returns a half-open hand with every finger partially bent and a
// visible gap between the thumb tip and the index fingertip.
func CuppedHand() Frame {
	f := base()
	f[ThumbCMC] = Point{X: 0.45, Y: 0.76}
	f[ThumbMCP] = Point{X: 0.42, Y: 0.71}
	f[ThumbIP] = Point{X: 0.41, Y: 0.68}
	f[ThumbTip] = Point{X: 0.40, Y: 0.66}

	f[IndexPIP] = Point{X: 0.38, Y: 0.50}
	f[IndexDIP] = Point{X: 0.37, Y: 0.49}
	f[IndexTip] = Point{X: 0.36, Y: 0.48}
	f[MiddlePIP] = Point{X: 0.42, Y: 0.49}
	f[MiddleDIP] = Point{X: 0.41, Y: 0.48}
	f[MiddleTip] = Point{X: 0.40, Y: 0.48}
	f[RingPIP] = Point{X: 0.46, Y: 0.50}
	f[RingDIP] = Point{X: 0.45, Y: 0.49}
	f[RingTip] = Point{X: 0.44, Y: 0.48}
	f[PinkyPIP] = Point{X: 0.50, Y: 0.51}
	f[PinkyDIP] = Point{X: 0.49, Y: 0.50}
	f[PinkyTip] = Point{X: 0.48, Y: 0.49}
	return f
}

// PointingIndex returns a hand with only the index finger raised and the
// thumb resting on the curled middle fingertip.
func PointingIndex() Frame {
	f := base()
	f[ThumbCMC] = Point{X: 0.46, Y: 0.76}
	f[ThumbMCP] = Point{X: 0.44, Y: 0.70}
	f[ThumbIP] = Point{X: 0.45, Y: 0.67}
	f[ThumbTip] = Point{X: 0.45, Y: 0.64}

	f[IndexPIP] = Point{X: 0.42, Y: 0.50}
	f[IndexDIP] = Point{X: 0.42, Y: 0.41}
	f[IndexTip] = Point{X: 0.42, Y: 0.33}
	f[MiddlePIP] = Point{X: 0.47, Y: 0.50}
	f[MiddleDIP] = Point{X: 0.47, Y: 0.56}
	f[MiddleTip] = Point{X: 0.47, Y: 0.62}
	f[RingPIP] = Point{X: 0.52, Y: 0.50}
	f[RingDIP] = Point{X: 0.52, Y: 0.56}
	f[RingTip] = Point{X: 0.52, Y: 0.62}
	f[PinkyPIP] = Point{X: 0.57, Y: 0.51}
	f[PinkyDIP] = Point{X: 0.57, Y: 0.57}
	f[PinkyTip] = Point{X: 0.57, Y: 0.62}
	return f
}

// TwoFingersTogether returns a hand with index and middle fingers raised and
// touching while ring and pinky stay curled.
func TwoFingersTogether() Frame {
	f := base()
	f[ThumbCMC] = Point{X: 0.46, Y: 0.76}
	f[ThumbMCP] = Point{X: 0.46, Y: 0.70}
	f[ThumbIP] = Point{X: 0.48, Y: 0.64}
	f[ThumbTip] = Point{X: 0.50, Y: 0.58}

	f[IndexPIP] = Point{X: 0.43, Y: 0.50}
	f[IndexDIP] = Point{X: 0.43, Y: 0.42}
	f[IndexTip] = Point{X: 0.43, Y: 0.34}
	f[MiddlePIP] = Point{X: 0.47, Y: 0.50}
	f[MiddleDIP] = Point{X: 0.47, Y: 0.42}
	f[MiddleTip] = Point{X: 0.47, Y: 0.35}
	f[RingPIP] = Point{X: 0.52, Y: 0.51}
	f[RingDIP] = Point{X: 0.52, Y: 0.57}
	f[RingTip] = Point{X: 0.52, Y: 0.63}
	f[PinkyPIP] = Point{X: 0.57, Y: 0.51}
	f[PinkyDIP] = Point{X: 0.57, Y: 0.57}
	f[PinkyTip] = Point{X: 0.57, Y: 0.63}
	return f
}

// LShape returns a hand with the index finger raised and the thumb extended
// far out to the side, remaining fingers curled.
func LShape() Frame {
	f := base()
	f[ThumbCMC] = Point{X: 0.44, Y: 0.76}
	f[ThumbMCP] = Point{X: 0.36, Y: 0.70}
	f[ThumbIP] = Point{X: 0.29, Y: 0.66}
	f[ThumbTip] = Point{X: 0.22, Y: 0.62}

	f[IndexPIP] = Point{X: 0.42, Y: 0.50}
	f[IndexDIP] = Point{X: 0.42, Y: 0.41}
	f[IndexTip] = Point{X: 0.42, Y: 0.33}
	f[MiddlePIP] = Point{X: 0.47, Y: 0.50}
	f[MiddleDIP] = Point{X: 0.47, Y: 0.57}
	f[MiddleTip] = Point{X: 0.47, Y: 0.64}
	f[RingPIP] = Point{X: 0.52, Y: 0.50}
	f[RingDIP] = Point{X: 0.52, Y: 0.57}
	f[RingTip] = Point{X: 0.52, Y: 0.64}
	f[PinkyPIP] = Point{X: 0.57, Y: 0.51}
	f[PinkyDIP] = Point{X: 0.57, Y: 0.57}
	f[PinkyTip] = Point{X: 0.57, Y: 0.64}
	return f
}

// VictorySpread returns a hand with index and middle fingers raised and
// spread wide apart, ring and pinky curled, thumb folded over the palm.
func VictorySpread() Frame {
	f := base()
	f[ThumbCMC] = Point{X: 0.47, Y: 0.76}
	f[ThumbMCP] = Point{X: 0.46, Y: 0.70}
	f[ThumbIP] = Point{X: 0.46, Y: 0.64}
	f[ThumbTip] = Point{X: 0.47, Y: 0.58}

	f[IndexPIP] = Point{X: 0.40, Y: 0.50}
	f[IndexDIP] = Point{X: 0.38, Y: 0.42}
	f[IndexTip] = Point{X: 0.36, Y: 0.34}
	f[MiddlePIP] = Point{X: 0.50, Y: 0.50}
	f[MiddleDIP] = Point{X: 0.52, Y: 0.42}
	f[MiddleTip] = Point{X: 0.54, Y: 0.34}
	f[RingPIP] = Point{X: 0.52, Y: 0.51}
	f[RingDIP] = Point{X: 0.52, Y: 0.57}
	f[RingTip] = Point{X: 0.52, Y: 0.64}
	f[PinkyPIP] = Point{X: 0.57, Y: 0.51}
	f[PinkyDIP] = Point{X: 0.57, Y: 0.57}
	f[PinkyTip] = Point{X: 0.57, Y: 0.64}
	return f
}

// ThreeFingerSpread returns a hand with index, middle and ring fingers raised
// and fanned apart, pinky curled, thumb folded in.
func ThreeFingerSpread() Frame {
	f := base()
	f[ThumbCMC] = Point{X: 0.46, Y: 0.76}
	f[ThumbMCP] = Point{X: 0.45, Y: 0.70}
	f[ThumbIP] = Point{X: 0.45, Y: 0.65}
	f[ThumbTip] = Point{X: 0.45, Y: 0.60}

	f[IndexPIP] = Point{X: 0.38, Y: 0.50}
	f[IndexDIP] = Point{X: 0.34, Y: 0.42}
	f[IndexTip] = Point{X: 0.30, Y: 0.34}
	f[MiddlePIP] = Point{X: 0.47, Y: 0.50}
	f[MiddleDIP] = Point{X: 0.47, Y: 0.41}
	f[MiddleTip] = Point{X: 0.47, Y: 0.32}
	f[RingPIP] = Point{X: 0.56, Y: 0.50}
	f[RingDIP] = Point{X: 0.60, Y: 0.42}
	f[RingTip] = Point{X: 0.64, Y: 0.34}
	f[PinkyPIP] = Point{X: 0.57, Y: 0.52}
	f[PinkyDIP] = Point{X: 0.57, Y: 0.58}
	f[PinkyTip] = Point{X: 0.58, Y: 0.63}
	return f
}

// HangLoose returns a hand with thumb and pinky extended in opposite
// directions and the three middle fingers curled.
func HangLoose() Frame {
	f := base()
	f[ThumbCMC] = Point{X: 0.44, Y: 0.76}
	f[ThumbMCP] = Point{X: 0.36, Y: 0.70}
	f[ThumbIP] = Point{X: 0.28, Y: 0.65}
	f[ThumbTip] = Point{X: 0.20, Y: 0.60}

	f[IndexPIP] = Point{X: 0.42, Y: 0.52}
	f[IndexDIP] = Point{X: 0.42, Y: 0.58}
	f[IndexTip] = Point{X: 0.42, Y: 0.64}
	f[MiddlePIP] = Point{X: 0.47, Y: 0.52}
	f[MiddleDIP] = Point{X: 0.47, Y: 0.58}
	f[MiddleTip] = Point{X: 0.47, Y: 0.64}
	f[RingPIP] = Point{X: 0.52, Y: 0.52}
	f[RingDIP] = Point{X: 0.52, Y: 0.58}
	f[RingTip] = Point{X: 0.52, Y: 0.64}
	f[PinkyPIP] = Point{X: 0.62, Y: 0.52}
	f[PinkyDIP] = Point{X: 0.65, Y: 0.46}
	f[PinkyTip] = Point{X: 0.68, Y: 0.40}
	return f
}

// ShortFrame returns a frame that is one landmark short of the full set.
func ShortFrame() Frame {
	return FlatHand()[:NumLandmarks-1]
}
