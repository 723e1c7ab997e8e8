// Package match decides whether two habit names refer to the same habit.
// It is a heuristic, not a metric: three ordered checks, short-circuiting
// on the first hit.
package match

import (
	"regexp"
	"strings"
)

// overlapThreshold is the minimum token-overlap ratio for two names to be
// treated as the same habit. Unrelated to the intent confidence gate in the
// intelligence package even though both happen to be 0.7.
const overlapThreshold = 0.7

// synonymGroups are domain families of leading phrases. Two names match when
// each independently matches the same group's pattern.
var synonymGroups = []*regexp.Regexp{
	regexp.MustCompile(`\b(read|reading|book)`),
	regexp.MustCompile(`\bwalk`),
	regexp.MustCompile(`\b(meditat|mindful)`),
	regexp.MustCompile(`\b(journal|diary)`),
	regexp.MustCompile(`\bbreath`),
	regexp.MustCompile(`\b(water|hydrat)`),
	regexp.MustCompile(`\b(exercis|workout|gym|run|jog)`),
	regexp.MustCompile(`\b(learn|study)`),
}

// SameHabit reports whether a and b name the same habit. Checks run in
// order: exact match after folding, synonym-group pairing, then token
// overlap. Later stages run only when earlier ones fail.
func SameHabit(a, b string) bool {
	na := fold(a)
	nb := fold(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}
	if sameSynonymGroup(na, nb) {
		return true
	}
	return tokenOverlap(na, nb) > overlapThreshold
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func sameSynonymGroup(a, b string) bool {
	for _, group := range synonymGroups {
		if group.MatchString(a) && group.MatchString(b) {
			return true
		}
	}
	return false
}

// tokenOverlap computes the ratio of tokens from a that share a substring
// relation with some token of b, over the larger token count. Tokens of
// length <= 2 are ignored.
func tokenOverlap(a, b string) float64 {
	ta := tokens(a)
	tb := tokens(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	overlap := 0
	for _, x := range ta {
		for _, y := range tb {
			if strings.Contains(x, y) || strings.Contains(y, x) {
				overlap++
				break
			}
		}
	}

	max := len(ta)
	if len(tb) > max {
		max = len(tb)
	}
	return float64(overlap) / float64(max)
}

func tokens(s string) []string {
	var out []string
	for _, t := range strings.Fields(s) {
		if len(t) > 2 {
			out = append(out, t)
		}
	}
	return out
}
