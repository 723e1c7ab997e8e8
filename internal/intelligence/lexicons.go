package intelligence

import (
	"regexp"
	"strings"
)

// The rule-based classifiers are driven by these fixed term tables. They are
// data, not control flow: tests exercise them without touching the
// classification logic, and tuning a lexicon never means editing a function.

// severeTerms signal acute distress and map straight to very_high.
var severeTerms = []string{
	"panic attack", "can't cope", "cant cope", "can't take it", "cant take it",
	"breaking down", "falling apart", "hopeless", "unbearable", "desperate",
	"at my limit",
}

// positiveTerms signal clear positive affect and map to very_low.
var positiveTerms = []string{
	"happy", "great", "amazing", "wonderful", "fantastic", "joyful",
	"excited", "grateful", "thrilled", "proud", "delighted",
}

// mildPositiveTerms signal settled, neutral-positive affect and map to low.
var mildPositiveTerms = []string{
	"okay", "fine", "alright", "calm", "relaxed", "content", "peaceful",
	"decent", "not bad",
}

// negativeTerms signal stress or anxiety. They map to high only when an
// explicit cause term is also present, otherwise moderate.
var negativeTerms = []string{
	"stressed", "stress", "anxious", "anxiety", "worried", "worry",
	"nervous", "overwhelmed", "frustrated", "upset", "tense", "exhausted",
	"burned out", "burnt out", "drained", "miserable", "sad", "angry",
}

// causeTerms name a concrete stressor. Without one of these, negative
// affect never escalates past moderate.
var causeTerms = []string{
	"work", "job", "boss", "deadline", "relationship", "partner", "family",
	"health", "doctor", "money", "finance", "debt", "bills", "school",
	"exam", "class", "traffic", "commute", "social", "friend",
}

var (
	severePattern       = termsPattern(severeTerms)
	positivePattern     = termsPattern(positiveTerms)
	mildPositivePattern = termsPattern(mildPositiveTerms)
	negativePattern     = termsPattern(negativeTerms)
	causePattern        = termsPattern(causeTerms)
)

// termsPattern compiles a whole-word alternation over the given terms.
func termsPattern(terms []string) *regexp.Regexp {
	escaped := make([]string, len(terms))
	for i, t := range terms {
		escaped[i] = regexp.QuoteMeta(t)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(escaped, "|") + `)\b`)
}

// HasAffectSignal reports whether the text contains any affect-lexicon term
// at all. The orchestrator suppresses stress recording when it returns
// false, since a bare "moderate" would just be the default.
func HasAffectSignal(text string) bool {
	lower := strings.ToLower(text)
	return severePattern.MatchString(lower) ||
		positivePattern.MatchString(lower) ||
		mildPositivePattern.MatchString(lower) ||
		negativePattern.MatchString(lower)
}

// HasCauseToken reports whether the text names an explicit stressor.
func HasCauseToken(text string) bool {
	return causePattern.MatchString(strings.ToLower(text))
}
