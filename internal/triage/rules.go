package triage

// Priority is the coarse urgency label assigned to an email.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Category is the filing bucket derived from the sender address.
type Category string

const (
	CategoryGeneral    Category = "General"
	CategoryNewsletter Category = "Newsletter"
	CategoryPromotions Category = "Promotions"
	CategorySocial     Category = "Social"
)

// PriorityRules holds the keyword sets used for priority classification.
// The High set always outranks the Medium set; a single High keyword
// anywhere in the text wins over any number of Medium keywords.
type PriorityRules struct {
	High   []string `yaml:"high"`
	Medium []string `yaml:"medium"`
}

// ReplyRule maps a keyword set to a static reply template. Rules are
// evaluated in declaration order and the first match wins, so order
// is load-bearing and must not be shuffled.
type ReplyRule struct {
	Keywords []string `yaml:"keywords"`
	Template string   `yaml:"template"`
}

// CategoryRule maps sender substring patterns to a category. Like reply
// rules, category rules are evaluated first-match-wins in declaration order.
type CategoryRule struct {
	Patterns []string `yaml:"patterns"`
	Category Category `yaml:"category"`
}

// Rules bundles every classification rule set. A Rules value is supplied
// to the pipeline at construction time so tests (or a rules file) can
// substitute their own keyword lists.
type Rules struct {
	Priority      PriorityRules  `yaml:"priority"`
	Replies       []ReplyRule    `yaml:"replies"`
	ReplyFallback string         `yaml:"reply_fallback"`
	Categories    []CategoryRule `yaml:"categories"`
}

// DefaultRules returns the built-in rule sets used when no rules file
// is provided.
func DefaultRules() *Rules {
	return &Rules{
		Priority: PriorityRules{
			High:   []string{"urgent", "asap", "deadline", "immediately"},
			Medium: []string{"invoice", "payment", "meeting", "schedule"},
		},
		Replies: []ReplyRule{
			{
				Keywords: []string{"meeting", "schedule"},
				Template: "Hi,\n\nThank you for reaching out about scheduling a meeting. " +
					"I'm reviewing my calendar and will propose some available times shortly.\n\nBest regards,",
			},
			{
				Keywords: []string{"invoice", "payment"},
				Template: "Hello,\n\nI have received your message regarding the invoice. " +
					"I'll review the details and follow up with you soon.\n\nKind regards,",
			},
			{
				Keywords: []string{"thank"},
				Template: "Hi,\n\nYou're very welcome! Let me know if there's anything else you need.\n\nBest,",
			},
		},
		ReplyFallback: "Hello,\n\nThank you for your email. " +
			"I've received your message and will get back to you soon.\n\nBest regards,",
		Categories: []CategoryRule{
			{Patterns: []string{"newsletter", "news", "update", "mailing"}, Category: CategoryNewsletter},
			{Patterns: []string{"promo", "marketing", "offers"}, Category: CategoryPromotions},
			{Patterns: []string{"social", "facebook", "linkedin", "twitter"}, Category: CategorySocial},
		},
	}
}
