// Package classify implements the geometric hand-sign classifier. It maps a
// single 21-point landmark frame to one of a fixed set of letters with a
// confidence score, using hand-tuned geometric rules rather than a learned
// model. The engine is a pure function of its input: no state is kept
// between frames and concurrent calls need no coordination.
package classify

import (
	"math"
	"strings"

	"github.com/al1ina/HackTheBias/internal/landmark"
)

// Letter is a hand-shape class label.
type Letter string

// The closed set of letters the classifier can produce. Letters requiring
// motion or two hands are structurally unreachable.
const (
	LetterA Letter = "A"
	LetterB Letter = "B"
	LetterC Letter = "C"
	LetterD Letter = "D"
	LetterH Letter = "H"
	LetterL Letter = "L"
	LetterV Letter = "V"
	LetterW Letter = "W"
	LetterY Letter = "Y"

	// Unknown is returned when the frame cannot be classified at all,
	// i.e. it carries fewer than the required 21 landmarks.
	Unknown Letter = "unknown"
)

// Result is the outcome of classifying a single landmark frame.
type Result struct {
	Letter     Letter  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Evaluation couples a classification with the letter the caller was
// practicing.
type Evaluation struct {
	Letter     Letter  `json:"label"`
	Confidence float64 `json:"confidence"`
	Target     Letter  `json:"target"`
	Match      bool    `json:"match"`
}

// Classify scores the frame against every supported letter and returns the
// best one with its confidence clamped to [0,1] and rounded to two decimals.
// Ties resolve to the letter listed first in letterRules. A frame with fewer
// than 21 points yields (Unknown, 0).
func Classify(f landmark.Frame) Result {
	if !f.Complete() {
		return Result{Letter: Unknown, Confidence: 0}
	}

	bundle := extract(f)

	best := letterRules[0].letter
	bestScore := letterRules[0].score(bundle)
	for _, rule := range letterRules[1:] {
		if s := rule.score(bundle); s > bestScore {
			best = rule.letter
			bestScore = s
		}
	}

	return Result{Letter: best, Confidence: round2(clamp01(bestScore))}
}

// Evaluate classifies the frame and compares the result against the target
// letter. The comparison is case-insensitive on the target and exact: no
// partial credit. An Unknown result never matches.
func Evaluate(f landmark.Frame, target string) Evaluation {
	res := Classify(f)
	t := Letter(strings.ToUpper(target))
	return Evaluation{
		Letter:     res.Letter,
		Confidence: res.Confidence,
		Target:     t,
		Match:      res.Letter != Unknown && res.Letter == t,
	}
}

// Letters returns the supported letter set in rule order.
func Letters() []Letter {
	out := make([]Letter, len(letterRules))
	for i, rule := range letterRules {
		out[i] = rule.letter
	}
	return out
}

// Supported reports whether the given target letter, in any casing, is a
// member of the supported set.
func Supported(target string) bool {
	t := Letter(strings.ToUpper(target))
	for _, rule := range letterRules {
		if rule.letter == t {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
