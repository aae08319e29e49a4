package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func defaultPrioritizer() *Prioritizer {
	return NewPrioritizer(DefaultRules().Priority)
}

// TestClassify_HighKeyword tests that any High keyword yields High
func TestClassify_HighKeyword(t *testing.T) {
	p := defaultPrioritizer()

	assert.Equal(t, PriorityHigh, p.Classify("Please respond", "This is urgent."))
	assert.Equal(t, PriorityHigh, p.Classify("Deadline tomorrow", "See attached."))
	assert.Equal(t, PriorityHigh, p.Classify("", "Need this done immediately"))
}

// TestClassify_CaseInsensitive tests that keyword matching ignores case
func TestClassify_CaseInsensitive(t *testing.T) {
	p := defaultPrioritizer()

	assert.Equal(t, PriorityHigh, p.Classify("URGENT: server down", ""))
	assert.Equal(t, PriorityMedium, p.Classify("Your INVOICE is attached", ""))
}

// TestClassify_MediumKeyword tests the Medium keyword set
func TestClassify_MediumKeyword(t *testing.T) {
	p := defaultPrioritizer()

	assert.Equal(t, PriorityMedium, p.Classify("Invoice #42", "Please find attached."))
	assert.Equal(t, PriorityMedium, p.Classify("", "Can we schedule a call?"))
}

// TestClassify_HighOutranksMedium tests precedence of the High set over the
// Medium set regardless of match position or count
func TestClassify_HighOutranksMedium(t *testing.T) {
	p := defaultPrioritizer()

	// Multiple Medium keywords plus one High keyword late in the body
	got := p.Classify("Invoice and payment for the meeting",
		"Let's schedule the payment meeting. Also this invoice is urgent.")
	assert.Equal(t, PriorityHigh, got, "A single High keyword should outrank any number of Medium keywords")
}

// TestClassify_Low tests the fallthrough when nothing matches
func TestClassify_Low(t *testing.T) {
	p := defaultPrioritizer()

	assert.Equal(t, PriorityLow, p.Classify("Weekend plans", "See you Saturday."))
	assert.Equal(t, PriorityLow, p.Classify("", ""), "Empty input should classify as Low, not fail")
}

// TestClassify_CustomRules tests substituting the keyword sets
func TestClassify_CustomRules(t *testing.T) {
	p := NewPrioritizer(PriorityRules{
		High:   []string{"outage"},
		Medium: []string{"maintenance"},
	})

	assert.Equal(t, PriorityHigh, p.Classify("", "There is an outage."))
	assert.Equal(t, PriorityMedium, p.Classify("Scheduled maintenance", ""))
	assert.Equal(t, PriorityLow, p.Classify("This is urgent", ""),
		"Default keywords should not apply once replaced")
}
