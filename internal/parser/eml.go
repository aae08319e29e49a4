package parser

import (
	"fmt"
	"html"
	"io"
	"mime"
	"os"
	"strings"

	"github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/mail"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/encoding/charmap"
)

func init() {
	// Register additional charsets that are commonly used in emails
	charset.RegisterEncoding("windows-1252", charmap.Windows1252)
	charset.RegisterEncoding("iso-8859-1", charmap.ISO8859_1)
	charset.RegisterEncoding("iso-8859-15", charmap.ISO8859_15)
}

// stripTags removes all markup from HTML bodies so they can be classified
// and summarized as plain text.
var stripTags = bluemonday.StrictPolicy()

// ParseEMLFile parses an RFC 5322 .eml file into an Email with the given
// identifier.
func ParseEMLFile(path, identifier string) (*Email, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return ParseEML(f, identifier)
}

// ParseEML parses an email message from a reader. The Subject header (MIME
// words decoded) becomes Subject, the first From address becomes Sender,
// and the first text/plain part becomes Body. If the message carries only
// an HTML body, its tags are stripped and the remaining text is used.
func ParseEML(r io.Reader, identifier string) (*Email, error) {
	mr, err := mail.CreateReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail reader: %w", err)
	}

	email := &Email{Identifier: identifier}

	header := mr.Header
	email.Subject = decodeMIMEWord(header.Get("Subject"))

	if fromAddrs, err := header.AddressList("From"); err == nil && len(fromAddrs) > 0 {
		email.Sender = fromAddrs[0].Address
	}

	var bodyHTML string
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read part: %w", err)
		}

		h, ok := part.Header.(*mail.InlineHeader)
		if !ok {
			// Attachments carry no triage signal; skip them.
			continue
		}

		contentType, _, _ := h.ContentType()
		body, err := io.ReadAll(part.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read body: %w", err)
		}

		if strings.HasPrefix(contentType, "text/plain") {
			if email.Body == "" {
				email.Body = strings.TrimSpace(string(body))
			}
		} else if strings.HasPrefix(contentType, "text/html") {
			bodyHTML = string(body)
		}
	}

	// Fall back to the stripped HTML part when there is no plain text part.
	if email.Body == "" && bodyHTML != "" {
		email.Body = htmlToText(bodyHTML)
	}

	return email, nil
}

// htmlToText strips markup from an HTML body and collapses the result into
// whitespace-normalized plain text.
func htmlToText(bodyHTML string) string {
	text := stripTags.Sanitize(bodyHTML)
	text = html.UnescapeString(text)
	return strings.Join(strings.Fields(text), " ")
}

// decodeMIMEWord decodes MIME-encoded words (RFC 2047)
// Example: =?UTF-8?Q?Invitaci=C3=B3n?= -> Invitación
func decodeMIMEWord(s string) string {
	dec := new(mime.WordDecoder)
	decoded, err := dec.DecodeHeader(s)
	if err != nil {
		// If decoding fails, return original string
		return s
	}
	return decoded
}
