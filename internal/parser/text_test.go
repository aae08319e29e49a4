package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseText_SubjectAndSender tests extracting both header lines
func TestParseText_SubjectAndSender(t *testing.T) {
	blob := "Subject: Lunch meeting next Wednesday\nFrom: alice@example.com\n\nCan we meet Wednesday? I would like to discuss deadlines."

	email := ParseText(blob, "a.txt")

	assert.Equal(t, "a.txt", email.Identifier)
	assert.Equal(t, "Lunch meeting next Wednesday", email.Subject)
	assert.Equal(t, "alice@example.com", email.Sender)
	assert.Equal(t, "Can we meet Wednesday? I would like to discuss deadlines.", email.Body)
}

// TestParseText_HeaderOrder tests that From: before Subject: works the same
func TestParseText_HeaderOrder(t *testing.T) {
	blob := "From: bob@example.com\nSubject: Reversed headers\nBody line."

	email := ParseText(blob, "b.txt")

	assert.Equal(t, "Reversed headers", email.Subject)
	assert.Equal(t, "bob@example.com", email.Sender)
	assert.Equal(t, "Body line.", email.Body)
}

// TestParseText_CaseInsensitiveHeaders tests lowercase header prefixes
func TestParseText_CaseInsensitiveHeaders(t *testing.T) {
	blob := "subject: lowered\nfrom: carol@example.com\nhello"

	email := ParseText(blob, "c.txt")

	assert.Equal(t, "lowered", email.Subject)
	assert.Equal(t, "carol@example.com", email.Sender)
	assert.Equal(t, "hello", email.Body)
}

// TestParseText_NoHeaders tests that a headerless blob is all body
func TestParseText_NoHeaders(t *testing.T) {
	blob := "Just a body.\nWith two lines."

	email := ParseText(blob, "d.txt")

	assert.Empty(t, email.Subject)
	assert.Empty(t, email.Sender)
	assert.Equal(t, "Just a body.\nWith two lines.", email.Body)
}

// TestParseText_OnlyHeaders tests that a header-only blob has an empty body
func TestParseText_OnlyHeaders(t *testing.T) {
	blob := "Subject: No body here\nFrom: dave@example.com\n"

	email := ParseText(blob, "e.txt")

	assert.Equal(t, "No body here", email.Subject)
	assert.Equal(t, "dave@example.com", email.Sender)
	assert.Empty(t, email.Body)
}

// TestParseText_HeaderScanStopsPermanently tests that header-looking lines
// after the first body line stay part of the body
func TestParseText_HeaderScanStopsPermanently(t *testing.T) {
	blob := "Subject: Real subject\nFirst body line.\nFrom: not-a-header@example.com"

	email := ParseText(blob, "f.txt")

	assert.Equal(t, "Real subject", email.Subject)
	assert.Empty(t, email.Sender, "From: after a body line should not be treated as a header")
	assert.Equal(t, "First body line.\nFrom: not-a-header@example.com", email.Body)
}

// TestParseText_RepeatedHeaders tests that a later header line overwrites
// an earlier one while still in the header section
func TestParseText_RepeatedHeaders(t *testing.T) {
	blob := "Subject: first\nSubject: second\nbody"

	email := ParseText(blob, "g.txt")

	assert.Equal(t, "second", email.Subject)
	assert.Equal(t, "body", email.Body)
}

// TestParseText_EmptyBlob tests the degenerate empty input
func TestParseText_EmptyBlob(t *testing.T) {
	email := ParseText("", "h.txt")

	assert.Equal(t, "h.txt", email.Identifier)
	assert.Empty(t, email.Subject)
	assert.Empty(t, email.Sender)
	assert.Empty(t, email.Body)
}

// TestParseText_CRLF tests that Windows line endings are handled
func TestParseText_CRLF(t *testing.T) {
	blob := "Subject: CRLF test\r\nFrom: erin@example.com\r\n\r\nBody text.\r\n"

	email := ParseText(blob, "i.txt")

	assert.Equal(t, "CRLF test", email.Subject)
	assert.Equal(t, "erin@example.com", email.Sender)
	assert.Equal(t, "Body text.", email.Body)
}

// TestParseTextFile_MissingFile tests error handling for unreadable files
func TestParseTextFile_MissingFile(t *testing.T) {
	_, err := ParseTextFile("does-not-exist.txt", "does-not-exist.txt")

	assert.Error(t, err, "Should return error for non-existent file")
	assert.Contains(t, err.Error(), "failed to read file")
}

// TestParseTextFile_ReadsFromDisk tests the file-backed path
func TestParseTextFile_ReadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	err := os.WriteFile(path, []byte("Subject: On disk\n\nHello."), 0644)
	require.NoError(t, err)

	email, err := ParseTextFile(path, "note.txt")

	require.NoError(t, err)
	assert.Equal(t, "note.txt", email.Identifier)
	assert.Equal(t, "On disk", email.Subject)
	assert.Equal(t, "Hello.", email.Body)
}
