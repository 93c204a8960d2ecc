package password

import (
	"math"
	"strings"
)

// Score is a coarse 0..4 strength tier.
type Score int

const (
	ScoreVeryWeak Score = iota
	ScoreWeak
	ScoreFair
	ScoreStrong
	ScoreVeryStrong
)

// Label returns the fixed tier identifier for s. Presentation layers map it
// to display text or color; the core never does.
func (s Score) Label() string {
	switch s {
	case ScoreVeryWeak:
		return "very-weak"
	case ScoreWeak:
		return "weak"
	case ScoreFair:
		return "fair"
	case ScoreStrong:
		return "strong"
	case ScoreVeryStrong:
		return "very-strong"
	default:
		return "unknown"
	}
}

// Strength is the result of evaluating a password.
type Strength struct {
	Score   Score
	Label   string
	Entropy float64 // bits, after pattern deductions
}

// Effective pool sizes per observed character class. Symbol matches the
// printable ASCII punctuation count; other is a conservative stand-in for the
// non-ASCII space.
const (
	upperPoolSize  = 26
	lowerPoolSize  = 26
	digitPoolSize  = 10
	symbolPoolSize = 33
	otherPoolSize  = 50
)

// Deduction constants. Fixed on every call so the score stays monotone in raw
// entropy; a password with none of the patterns loses nothing.
const (
	runPenaltyBits    = 2.0 // per character beyond the second of a run
	commonPenaltyBits = 20.0
)

// Entropy buckets, in bits. Strictly increasing.
var scoreThresholds = [4]float64{28, 36, 60, 100}

// commonTokens is a small embedded list of passwords and weak tokens seen in
// every breach corpus. Matched case-insensitively as a substring.
var commonTokens = []string{
	"password",
	"passwort",
	"123456",
	"12345678",
	"qwerty",
	"letmein",
	"welcome",
	"monkey",
	"dragon",
	"abc123",
	"iloveyou",
	"111111",
	"admin",
	"login",
}

// Evaluate scores an arbitrary string, not only generator output. It is a
// pure function: no randomness, no state carried between calls. An empty
// string is a valid "no password" measurement, not an error.
func Evaluate(pw string) Strength {
	entropy := rawEntropy(pw)

	entropy -= runPenalty(pw)
	entropy -= commonTokenPenalty(pw)
	if entropy < 0 {
		entropy = 0
	}

	score := bucket(entropy)
	return Strength{Score: score, Label: score.Label(), Entropy: entropy}
}

// rawEntropy is length * log2(pool), where pool is the union of the class
// ranges actually observed in the string. The classes the caller asked the
// generator for play no part; the estimator sees only the string.
func rawEntropy(pw string) float64 {
	var hasUpper, hasLower, hasDigit, hasSymbol, hasOther bool
	distinct := make(map[rune]struct{}, len(pw))

	for _, r := range pw {
		distinct[r] = struct{}{}
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case r >= '!' && r <= '~':
			hasSymbol = true
		default:
			hasOther = true
		}
	}

	// A single repeated character has no variety to measure, whatever its
	// class range would suggest.
	if len(distinct) <= 1 {
		return 0
	}

	pool := 0
	if hasUpper {
		pool += upperPoolSize
	}
	if hasLower {
		pool += lowerPoolSize
	}
	if hasDigit {
		pool += digitPoolSize
	}
	if hasSymbol {
		pool += symbolPoolSize
	}
	if hasOther {
		pool += otherPoolSize
	}

	return float64(len([]rune(pw))) * math.Log2(float64(pool))
}

// runPenalty deducts for monotone sequences ("abcd", "9876") and repeated
// single-character runs ("aaaa"), both of which an attacker enumerates far
// more cheaply than the pool size implies.
func runPenalty(pw string) float64 {
	runes := []rune(pw)
	penalty := 0.0

	penalty += directionPenalty(runes, 0)  // repeats
	penalty += directionPenalty(runes, 1)  // ascending
	penalty += directionPenalty(runes, -1) // descending

	return penalty
}

// directionPenalty charges runPenaltyBits per character beyond the second of
// every run where each rune differs from its predecessor by step.
func directionPenalty(runes []rune, step rune) float64 {
	penalty := 0.0
	runLen := 1
	for i := 1; i <= len(runes); i++ {
		if i < len(runes) && runes[i]-runes[i-1] == step {
			runLen++
			continue
		}
		if runLen >= 3 {
			penalty += runPenaltyBits * float64(runLen-2)
		}
		runLen = 1
	}
	return penalty
}

func commonTokenPenalty(pw string) float64 {
	lowered := strings.ToLower(pw)
	for _, token := range commonTokens {
		if strings.Contains(lowered, token) {
			return commonPenaltyBits
		}
	}
	return 0
}

func bucket(entropy float64) Score {
	for i, threshold := range scoreThresholds {
		if entropy < threshold {
			return Score(i)
		}
	}
	return ScoreVeryStrong
}
