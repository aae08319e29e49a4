package triage

import "strings"

// Summarizer produces a short extractive summary of an email body by
// taking its leading sentences.
type Summarizer struct {
	maxSentences int
}

// NewSummarizer creates a summarizer that keeps at most maxSentences
// sentences. Values below 1 are clamped to 1.
func NewSummarizer(maxSentences int) *Summarizer {
	if maxSentences < 1 {
		maxSentences = 1
	}
	return &Summarizer{maxSentences: maxSentences}
}

// Summarize returns the first sentences of body joined with single spaces,
// each keeping its own terminating punctuation. An empty or whitespace-only
// body yields the empty string. A body with no terminal punctuation counts
// as a single sentence.
func (s *Summarizer) Summarize(body string) string {
	sentences := splitSentences(body)
	if len(sentences) == 0 {
		return ""
	}
	if len(sentences) > s.maxSentences {
		sentences = sentences[:s.maxSentences]
	}
	return strings.Join(sentences, " ")
}

// splitSentences splits text on sentence terminators (. ! ?), keeping each
// terminator run attached to its sentence. Whitespace-only fragments, such
// as the gap between a terminator and the next sentence, are dropped.
// No attempt is made to special-case abbreviations or decimal numbers.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		current.WriteRune(runes[i])
		if !isTerminator(runes[i]) {
			continue
		}
		// Absorb consecutive terminators ("..." or "?!") into one sentence.
		for i+1 < len(runes) && isTerminator(runes[i+1]) {
			i++
			current.WriteRune(runes[i])
		}
		if s := strings.TrimSpace(current.String()); s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	// Trailing text without a terminator is still a sentence.
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
