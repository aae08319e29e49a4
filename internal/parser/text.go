package parser

import (
	"fmt"
	"os"
	"strings"
)

// ParseTextFile reads a plain-text email file and returns an Email with the
// given identifier.
func ParseTextFile(path, identifier string) (*Email, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseText(string(data), identifier), nil
}

// ParseText builds an Email from a raw text blob. Leading header lines of
// the form "Subject: ..." or "From: ..." (matched case-insensitively, in
// either order) populate Subject and Sender. Header scanning stops for good
// at the first line that is neither; that line and everything after it,
// blank lines included, become the body. A blob with no header lines is all
// body; a blob that is only header lines has an empty body.
//
// ParseText is total: any input, including the empty string, yields a
// well-formed Email.
func ParseText(blob, identifier string) *Email {
	email := &Email{Identifier: identifier}

	lines := strings.Split(blob, "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, "\r")
		if value, ok := headerValue(line, "Subject:"); ok {
			email.Subject = value
			continue
		}
		if value, ok := headerValue(line, "From:"); ok {
			email.Sender = value
			continue
		}
		email.Body = joinBodyLines(lines[i:])
		return email
	}

	return email
}

// headerValue returns the trimmed remainder of line after the given header
// prefix, or false if line does not start with it.
func headerValue(line, prefix string) (string, bool) {
	if len(line) < len(prefix) {
		return "", false
	}
	if !strings.EqualFold(line[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(line[len(prefix):]), true
}

func joinBodyLines(lines []string) string {
	trimmed := make([]string, len(lines))
	for i, line := range lines {
		trimmed[i] = strings.TrimRight(line, "\r")
	}
	return strings.TrimSpace(strings.Join(trimmed, "\n"))
}
