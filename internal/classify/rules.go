package classify

// scoreFunc computes one letter's score in [0,1] from the predicate bundle.
// Every rule is evaluated on every frame; rules never short-circuit each
// other, so the nine scores are always directly comparable.
type scoreFunc func(*features) float64

// letterRules is the closed set of supported letters with their scoring
// rules. Order matters: Classify walks the slice front to back and on equal
// scores the earlier letter wins.
var letterRules = []struct {
	letter Letter
	score  scoreFunc
}{
	{LetterA, scoreA},
	{LetterB, scoreB},
	{LetterC, scoreC},
	{LetterD, scoreD},
	{LetterH, scoreH},
	{LetterL, scoreL},
	{LetterV, scoreV},
	{LetterW, scoreW},
	{LetterY, scoreY},
}

// A: closed fist, thumb upright beside the knuckles rather than crossed
// over them.
func scoreA(b *features) float64 {
	s := 0.6 * (float64(b.curledCount) / 4)
	if b.thumbUp {
		s += 0.2
	}
	if !b.thumbCrossed {
		s += 0.2
	}
	return s
}

// B: all four fingers raised, thumb folded across the palm.
func scoreB(b *features) float64 {
	s := 0.7 * (float64(b.extendedCount) / 4)
	if b.thumbTucked {
		s += 0.3
	}
	return s
}

// C: every finger half-bent into a curve, thumb opposing with an open gap.
func scoreC(b *features) float64 {
	var s float64
	if b.extendedCount == 0 && b.curledCount == 0 {
		s += 0.6
	}
	if b.pinchOpen {
		s += 0.4
	}
	return s
}

// D: index raised alone, thumb pressed against the curled middle fingertip.
func scoreD(b *features) float64 {
	var s float64
	if b.indexExtended {
		s += 0.5
	}
	if b.middleCurled && b.ringCurled && b.pinkyCurled {
		s += 0.3
	}
	if b.thumbOnMiddle {
		s += 0.2
	}
	return s
}

// H: index and middle raised touching, ring and pinky retracted.
func scoreH(b *features) float64 {
	var s float64
	if b.indexExtended && b.middleExtended && b.indexMiddleTogether {
		s += 0.8
	}
	if b.ringCurled && b.pinkyCurled {
		s += 0.2
	}
	return s
}

// L: index raised, thumb extended sideways, remaining fingers curled.
func scoreL(b *features) float64 {
	var s float64
	if b.indexExtended {
		s += 0.5
	}
	if b.thumbOut {
		s += 0.3
	}
	if b.middleCurled && b.ringCurled && b.pinkyCurled {
		s += 0.2
	}
	return s
}

// V: index and middle raised spread apart, ring and pinky retracted.
func scoreV(b *features) float64 {
	var s float64
	if b.indexExtended && b.middleExtended && b.indexMiddleSpread {
		s += 0.8
	}
	if b.ringCurled && b.pinkyCurled {
		s += 0.2
	}
	return s
}

// W: index, middle and ring raised and fanned apart, pinky curled.
func scoreW(b *features) float64 {
	var s float64
	if b.indexExtended && b.middleExtended && b.ringExtended {
		s += 0.6
	}
	if b.pinkyCurled {
		s += 0.2
	}
	if b.indexMiddleSpread && b.middleRingSpread {
		s += 0.2
	}
	return s
}

// Y: thumb and pinky extended opposite ways, middle three fingers curled.
func scoreY(b *features) float64 {
	var s float64
	if b.pinkyExtended && b.thumbOut {
		s += 0.5
	}
	if b.indexCurled && b.middleCurled && b.ringCurled {
		s += 0.3
	}
	if b.wideSpan {
		s += 0.2
	}
	return s
}
