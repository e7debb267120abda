package classify

import "github.com/al1ina/HackTheBias/internal/landmark"

// features is the predicate bundle derived from one landmark frame. It is
// rebuilt on every classification call and shared read-only by all letter
// rules; nothing here survives between frames.
type features struct {
	scale float64

	indexExtended  bool
	middleExtended bool
	ringExtended   bool
	pinkyExtended  bool

	indexCurled  bool
	middleCurled bool
	ringCurled   bool
	pinkyCurled  bool

	// Counts over the four non-thumb fingers.
	extendedCount int
	curledCount   int

	indexMiddleTogether bool
	indexMiddleSpread   bool
	middleRingSpread    bool

	thumbOut     bool
	thumbTucked  bool
	thumbUp      bool
	thumbCrossed bool

	// pinchOpen is an open gap between thumb tip and index fingertip.
	pinchOpen bool
	// thumbOnMiddle is the thumb tip resting on the middle fingertip.
	thumbOnMiddle bool
	// wideSpan is a thumb-to-pinky width wider than most of the palm scale.
	wideSpan bool
}

// extract computes the full predicate bundle for a complete frame.
// The caller must have verified f.Complete().
func extract(f landmark.Frame) *features {
	scale := palmScale(f)

	b := &features{
		scale: scale,

		indexExtended:  fingerExtended(f[landmark.IndexTip], f[landmark.IndexPIP], scale),
		middleExtended: fingerExtended(f[landmark.MiddleTip], f[landmark.MiddlePIP], scale),
		ringExtended:   fingerExtended(f[landmark.RingTip], f[landmark.RingPIP], scale),
		pinkyExtended:  fingerExtended(f[landmark.PinkyTip], f[landmark.PinkyPIP], scale),

		indexCurled:  fingerCurled(f[landmark.IndexTip], f[landmark.IndexPIP], scale),
		middleCurled: fingerCurled(f[landmark.MiddleTip], f[landmark.MiddlePIP], scale),
		ringCurled:   fingerCurled(f[landmark.RingTip], f[landmark.RingPIP], scale),
		pinkyCurled:  fingerCurled(f[landmark.PinkyTip], f[landmark.PinkyPIP], scale),

		indexMiddleTogether: fingersTogether(f[landmark.IndexTip], f[landmark.MiddleTip]),
		indexMiddleSpread:   fingersSpread(f[landmark.IndexTip], f[landmark.MiddleTip]),
		middleRingSpread:    fingersSpread(f[landmark.MiddleTip], f[landmark.RingTip]),

		thumbOut:     thumbOut(f, scale),
		thumbTucked:  thumbTucked(f),
		thumbUp:      thumbUp(f, scale),
		thumbCrossed: thumbCrossed(f),

		pinchOpen:     landmark.Distance(f[landmark.ThumbTip], f[landmark.IndexTip]) > pinchGapDist,
		thumbOnMiddle: landmark.Distance(f[landmark.ThumbTip], f[landmark.MiddleTip]) < thumbTuckDist,
		wideSpan:      landmark.Distance(f[landmark.ThumbTip], f[landmark.PinkyTip]) > spanRatio*scale,
	}

	for _, ext := range []bool{b.indexExtended, b.middleExtended, b.ringExtended, b.pinkyExtended} {
		if ext {
			b.extendedCount++
		}
	}
	for _, curl := range []bool{b.indexCurled, b.middleCurled, b.ringCurled, b.pinkyCurled} {
		if curl {
			b.curledCount++
		}
	}

	return b
}
