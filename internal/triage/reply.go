package triage

import "strings"

// Drafter suggests a static reply template based on the email's content.
// Templates contain no interpolation; they are starting points for manual
// editing, not personalized replies.
type Drafter struct {
	rules    []ReplyRule
	fallback string
}

// NewDrafter creates a drafter with the given ordered rules and fallback
// template. Rules are checked in the order given and the first rule with
// any matching keyword wins.
func NewDrafter(rules []ReplyRule, fallback string) *Drafter {
	return &Drafter{rules: rules, fallback: fallback}
}

// Draft returns the template for the first rule whose keyword set matches
// the subject or body (case-insensitive substring search). If no rule
// matches, the fallback template is returned.
func (d *Drafter) Draft(subject, body string) string {
	text := strings.ToLower(subject + " " + body)

	for _, rule := range d.rules {
		if containsAny(text, rule.Keywords) {
			return rule.Template
		}
	}
	return d.fallback
}
