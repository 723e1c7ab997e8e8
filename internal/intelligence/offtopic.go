package intelligence

import "strings"

// offTopicTerms cover subjects the companion does not engage with. A hit
// bypasses classification and the model entirely; the turn short-circuits
// with the fixed redirect reply.
var offTopicTerms = []string{
	// technology
	"computer", "software", "programming", "coding", "laptop", "smartphone",
	"website", "javascript", "python",
	// politics
	"politics", "political", "election", "government", "president",
	// finance and markets
	"stock market", "stocks", "crypto", "bitcoin", "investing", "investment",
	// sports and entertainment
	"football", "soccer", "basketball", "baseball", "movie", "film",
	"netflix", "celebrity", "video game",
	// vehicles
	"car engine", "motorcycle", "car repair",
	// academics unrelated to wellbeing
	"algebra", "calculus", "physics", "chemistry", "homework", "essay",
	// general advice domains
	"recipe", "cooking", "parenting", "dating advice",
}

var offTopicPattern = termsPattern(offTopicTerms)

// IsOffTopic reports whether the text is about a subject outside the
// wellness domain.
func IsOffTopic(text string) bool {
	return offTopicPattern.MatchString(strings.ToLower(text))
}

// RedirectReply is the fixed reply used for off-topic input, steering the
// conversation back to wellness topics.
func RedirectReply() string {
	return strings.Join([]string{
		"I'm here to support your wellbeing, so I'll leave that topic to others. A few things I can help with:",
		"• How you're feeling today, and anything weighing on you",
		"• Building or adjusting your habits",
		"• Ideas for unwinding when things feel like a lot",
	}, "\n")
}
