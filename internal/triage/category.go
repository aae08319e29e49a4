package triage

import "strings"

// Categorizer assigns a filing category based on the sender address.
type Categorizer struct {
	rules []CategoryRule
}

// NewCategorizer creates a categorizer with the given ordered pattern rules.
func NewCategorizer(rules []CategoryRule) *Categorizer {
	return &Categorizer{rules: rules}
}

// Categorize returns the category for a sender address. Patterns are
// matched as case-insensitive substrings of the full address, rule by rule
// in declaration order; the first match wins. An empty sender or one
// matching no pattern falls through to General.
func (c *Categorizer) Categorize(sender string) Category {
	address := strings.ToLower(sender)

	for _, rule := range c.rules {
		if containsAny(address, rule.Patterns) {
			return rule.Category
		}
	}
	return CategoryGeneral
}
