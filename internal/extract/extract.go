// Package extract pulls structured activity suggestions out of free-form
// assistant prose. It scans for bulleted or numbered lines, derives a short
// name for each, and infers a category from keyword lexicons.
package extract

import (
	"regexp"
	"strings"

	"github.com/okonkwoa/ataraxia/internal/domain"
)

var (
	bulletLine = regexp.MustCompile(`^\s*(?:[•→*-]|\d+[.)])\s+(.+)$`)

	// clauseEnd terminates the first clause of a line when no colon name
	// is available.
	clauseEnd = regexp.MustCompile(`[.!?;]`)

	// fillerOpeners reject names that lead with a discourse connective
	// rather than an activity ("Repeat this twice a day").
	fillerOpeners = regexp.MustCompile(`(?i)^(?:repeat this|try this|do this|remember to|for example)\b`)

	// bareFragments reject names that are nothing but a pronoun or
	// conjunction.
	bareFragments = regexp.MustCompile(`(?i)^(?:this|that|it|and|or|but|then|also|so)[\s,.]*$`)
)

// categoryLexicons map keywords to a category, checked in fixed precedence.
// A line can match several lexicons; the first hit wins, so mindfulness
// outranks exercise, which outranks reflection, and so on. Health is the
// default when nothing matches.
var categoryLexicons = []struct {
	category domain.ActivityCategory
	keywords []string
}{
	{domain.CategoryMindfulness, []string{"breath", "meditat", "mindful", "calm", "relax", "ground"}},
	{domain.CategoryExercise, []string{"walk", "run", "jog", "stretch", "yoga", "exercise", "workout", "gym", "dance", "move"}},
	{domain.CategoryReflection, []string{"journal", "write", "reflect", "gratitude", "diary", "thought"}},
	{domain.CategoryLearning, []string{"read", "learn", "study", "book", "course", "skill"}},
}

// Activities parses freeText into zero or more activity suggestions. No
// upper bound is enforced here; callers cap the result.
func Activities(freeText string) []domain.ActivitySuggestion {
	var out []domain.ActivitySuggestion
	for _, line := range strings.Split(freeText, "\n") {
		m := bulletLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		body := strings.TrimSpace(m[1])
		if body == "" {
			continue
		}

		name := deriveName(body)
		if name == "" || fillerOpeners.MatchString(name) || bareFragments.MatchString(name) {
			continue
		}

		out = append(out, domain.ActivitySuggestion{
			Title:    name,
			Category: Categorize(body),
		})
	}
	return out
}

// deriveName produces a short activity name from a bullet body: text before
// a colon when present, else the first clause when it is 5-50 characters,
// else a truncation of the whole line.
func deriveName(body string) string {
	if idx := strings.Index(body, ":"); idx > 0 {
		return strings.TrimSpace(body[:idx])
	}

	clause := body
	if loc := clauseEnd.FindStringIndex(body); loc != nil {
		clause = strings.TrimSpace(body[:loc[0]])
	}
	if len(clause) >= 5 && len(clause) <= 50 {
		return clause
	}

	// Truncate on rune boundaries; model text can carry multi-byte runes.
	runes := []rune(body)
	if len(runes) <= 50 {
		return body
	}
	return string(runes[:47]) + "..."
}

// Categorize infers the activity category for a line of text. The lexicon
// precedence is fixed; see categoryLexicons.
func Categorize(text string) domain.ActivityCategory {
	lower := strings.ToLower(text)
	for _, lex := range categoryLexicons {
		for _, kw := range lex.keywords {
			if strings.Contains(lower, kw) {
				return lex.category
			}
		}
	}
	return domain.CategoryHealth
}
