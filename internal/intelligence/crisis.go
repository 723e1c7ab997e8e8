package intelligence

import "regexp"

// crisisPattern matches self-harm and crisis vocabulary. It runs on every
// user message regardless of branch.
var crisisPattern = regexp.MustCompile(
	`(?i)\b(?:kill myself|suicide|suicidal|end my life|end it all|self[- ]harm|hurt myself|harm myself|no reason to live|don'?t want to (?:live|be here))\b`)

// IsCrisis reports whether the text contains crisis vocabulary.
func IsCrisis(text string) bool {
	return crisisPattern.MatchString(text)
}

// CrisisPreface is prepended to the reply whenever crisis vocabulary is
// detected, regardless of which path produced the reply body.
func CrisisPreface() string {
	return "It sounds like you're going through something very painful. Please reach out for immediate support: " +
		"call or text 988 (Suicide & Crisis Lifeline), or contact your local emergency services. " +
		"You don't have to face this alone."
}
