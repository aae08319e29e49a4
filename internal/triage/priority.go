package triage

import "strings"

// Prioritizer assigns a priority label based on keyword membership.
type Prioritizer struct {
	rules PriorityRules
}

// NewPrioritizer creates a prioritizer with the given keyword sets.
func NewPrioritizer(rules PriorityRules) *Prioritizer {
	return &Prioritizer{rules: rules}
}

// Classify returns the priority for an email's subject and body.
// Matching is a case-insensitive substring search over subject and body
// combined. Any High keyword wins outright; otherwise any Medium keyword
// yields Medium; everything else is Low. The result depends only on the
// text content, so Classify never fails.
func (p *Prioritizer) Classify(subject, body string) Priority {
	text := strings.ToLower(subject + " " + body)

	if containsAny(text, p.rules.High) {
		return PriorityHigh
	}
	if containsAny(text, p.rules.Medium) {
		return PriorityMedium
	}
	return PriorityLow
}

// containsAny reports whether text contains any of the keywords.
// Keywords are lowered at match time so rule files may use any casing.
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
