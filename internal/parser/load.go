package parser

import (
	"path/filepath"
	"strings"
)

// LoadFile loads one email file found under root, dispatching on the file
// extension: .eml files go through the RFC 5322 parser, everything else is
// treated as plain text with optional Subject:/From: header lines. The
// slash-normalized relative path doubles as the Email identifier.
func LoadFile(root, relPath string) (*Email, error) {
	fullPath := filepath.Join(root, filepath.FromSlash(relPath))

	if strings.EqualFold(filepath.Ext(relPath), ".eml") {
		return ParseEMLFile(fullPath, relPath)
	}
	return ParseTextFile(fullPath, relPath)
}
