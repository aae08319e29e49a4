package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/felo/inbox-triage/internal/triage"
)

// LoadRules reads a YAML rules file and merges it over the built-in
// defaults. Sections absent from the file keep their default rule sets, so
// a file may override just the priority keywords, just the reply templates,
// or just the category patterns. The order of entries in the file is the
// evaluation order.
func LoadRules(path string) (*triage.Rules, error) {
	rules := triage.DefaultRules()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var loaded triage.Rules
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}

	if len(loaded.Priority.High) > 0 {
		rules.Priority.High = loaded.Priority.High
	}
	if len(loaded.Priority.Medium) > 0 {
		rules.Priority.Medium = loaded.Priority.Medium
	}
	if len(loaded.Replies) > 0 {
		rules.Replies = loaded.Replies
	}
	if loaded.ReplyFallback != "" {
		rules.ReplyFallback = loaded.ReplyFallback
	}
	if len(loaded.Categories) > 0 {
		rules.Categories = loaded.Categories
	}

	if err := validateRules(rules); err != nil {
		return nil, fmt.Errorf("invalid rules file %s: %w", path, err)
	}

	return rules, nil
}

// validateRules rejects rule sets that reference unknown categories or
// empty patterns, which would otherwise fail silently at match time.
func validateRules(rules *triage.Rules) error {
	for i, rule := range rules.Categories {
		switch rule.Category {
		case triage.CategoryNewsletter, triage.CategoryPromotions, triage.CategorySocial, triage.CategoryGeneral:
		default:
			return fmt.Errorf("category rule %d: unknown category %q", i, rule.Category)
		}
		if len(rule.Patterns) == 0 {
			return fmt.Errorf("category rule %d: no patterns", i)
		}
	}

	for i, rule := range rules.Replies {
		if len(rule.Keywords) == 0 {
			return fmt.Errorf("reply rule %d: no keywords", i)
		}
		if rule.Template == "" {
			return fmt.Errorf("reply rule %d: empty template", i)
		}
	}

	return nil
}
